package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskDisplay(t *testing.T) {
	task := &Task{ID: "t1", Name: "Buy milk", DueDate: "2024-06-01"}
	assert.Equal(t, "Buy milk", task.DisplayName())
	assert.Equal(t, "2024-06-01", task.DisplayDueDate())

	task.NameDeleted = true
	assert.Equal(t, Strikethrough("Buy milk"), task.DisplayName())
	assert.Equal(t, "2024-06-01", task.DisplayDueDate())

	task.DueDateDeleted = true
	assert.Equal(t, Strikethrough("2024-06-01"), task.DisplayDueDate())
}

func TestAllSubtasksDeleted(t *testing.T) {
	task := &Task{ID: "t1"}
	assert.False(t, task.AllSubtasksDeleted(), "no subtasks")

	task.Subtasks = []*Subtask{{ID: "s1", Name: "a", Deleted: true}, {ID: "s2", Name: "b"}}
	assert.False(t, task.AllSubtasksDeleted())

	task.Subtasks[1].Deleted = true
	assert.True(t, task.AllSubtasksDeleted())
}

func TestClone(t *testing.T) {
	task := &Task{ID: "t1", Name: "a", Subtasks: []*Subtask{{ID: "s1", Name: "b"}}}
	c := task.Clone()
	c.Name = "changed"
	c.Subtasks[0].Deleted = true

	assert.Equal(t, "a", task.Name)
	sub, ok := task.Subtask("s1")
	require.True(t, ok)
	assert.False(t, sub.Deleted)

	_, ok = task.Subtask("s2")
	assert.False(t, ok)
}

func TestAllSubtasksDeletedEmptyName(t *testing.T) {
	task := &Task{ID: "t1", Subtasks: []*Subtask{{ID: "s1", Name: ""}, {ID: "s2", Name: "x"}}}
	assert.False(t, task.AllSubtasksDeleted())

	task.Subtasks[1].Deleted = true
	assert.True(t, task.AllSubtasksDeleted(), "an empty name has nothing left to strike")
	assert.False(t, task.Subtasks[0].Deleted)
}
