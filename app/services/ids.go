package services

import (
	"fmt"
	"strconv"
)

const (
	taskIDPrefix    = "t"
	subtaskIDPrefix = "s"
)

// nextTaskID derives the next task ID from the store size. Tasks are never
// removed, so the count is monotonic. Callers must hold the write lock.
func (s *TaskService) nextTaskID() string {
	return taskIDPrefix + strconv.Itoa(len(s.order)+1)
}

// nextSubtaskID derives the next subtask ID local to taskID.
// Callers must hold the write lock.
func (s *TaskService) nextSubtaskID(taskID string) (string, error) {
	task, ok := s.tasks[taskID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, taskID)
	}
	return subtaskIDPrefix + strconv.Itoa(len(task.Subtasks)+1), nil
}
