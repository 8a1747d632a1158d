package services

import "errors"

var (
	// ErrNotFound is returned when a task ID is not in the store.
	ErrNotFound = errors.New("task id not found")
	// ErrSubtaskNotFound is returned when a subtask ID is not under an existing task.
	ErrSubtaskNotFound = errors.New("subtask id not found")
)
