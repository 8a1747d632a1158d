package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"strikethrough/app/models"
)

// TaskService owns every task and subtask for the lifetime of the process.
type TaskService struct {
	mu     sync.RWMutex
	order  []string
	tasks  map[string]*models.Task
	logger *slog.Logger
}

// DeleteSubtaskResult reports the side effects of DeleteSubtask.
type DeleteSubtaskResult struct {
	// ParentDeleted is set when the deletion left no active subtask and the
	// parent task's name was struck as well.
	ParentDeleted bool
}

// NewTaskService creates an empty TaskService. A nil logger discards output.
func NewTaskService(logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &TaskService{
		tasks:  make(map[string]*models.Task),
		logger: logger,
	}
}

// AddTask stores a new task and returns its ID. The due date is kept as given.
func (s *TaskService) AddTask(ctx context.Context, name, dueDate string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextTaskID()
	s.tasks[id] = &models.Task{
		ID:       id,
		Name:     name,
		DueDate:  dueDate,
		Subtasks: []*models.Subtask{},
	}
	s.order = append(s.order, id)

	s.logger.DebugContext(ctx, "task added", "task_id", id, "due_date", dueDate)
	return id, nil
}

// AddSubtask appends a subtask to taskID and returns the subtask ID.
func (s *TaskService) AddSubtask(ctx context.Context, taskID, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextSubtaskID(taskID)
	if err != nil {
		return "", err
	}
	task := s.tasks[taskID]
	task.Subtasks = append(task.Subtasks, &models.Subtask{ID: id, Name: name})

	s.logger.DebugContext(ctx, "subtask added", "task_id", taskID, "subtask_id", id)
	return id, nil
}

// Get returns a copy of the task with the given ID.
func (s *TaskService) Get(ctx context.Context, taskID string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, taskID)
	}
	return task.Clone(), nil
}

// All returns copies of every task in insertion order.
func (s *TaskService) All(ctx context.Context) []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id].Clone())
	}
	return tasks
}

// DeleteTask soft-deletes a task: its name, due date, and every subtask are
// marked deleted. Nothing is removed from the store.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, taskID)
	}
	task.NameDeleted = true
	task.DueDateDeleted = true
	for _, sub := range task.Subtasks {
		sub.Deleted = true
	}

	s.logger.DebugContext(ctx, "task deleted", "task_id", taskID, "subtasks", len(task.Subtasks))
	return nil
}

// DeleteSubtask soft-deletes one subtask. When no active subtask remains the
// parent's name is marked deleted too; its due date is left alone.
func (s *TaskService) DeleteSubtask(ctx context.Context, taskID, subtaskID string) (DeleteSubtaskResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return DeleteSubtaskResult{}, fmt.Errorf("%w: %s", ErrNotFound, taskID)
	}
	sub, ok := task.Subtask(subtaskID)
	if !ok {
		return DeleteSubtaskResult{}, fmt.Errorf("%w: %s/%s", ErrSubtaskNotFound, taskID, subtaskID)
	}
	sub.Deleted = true

	var res DeleteSubtaskResult
	if task.AllSubtasksDeleted() {
		task.NameDeleted = true
		res.ParentDeleted = true
	}

	s.logger.DebugContext(ctx, "subtask deleted",
		"task_id", taskID, "subtask_id", subtaskID, "parent_deleted", res.ParentDeleted)
	return res, nil
}
