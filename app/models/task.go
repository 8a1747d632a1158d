package models

// Task represents a main task with its ordered subtasks.
type Task struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	DueDate        string     `json:"due_date"`
	NameDeleted    bool       `json:"name_deleted"`
	DueDateDeleted bool       `json:"due_date_deleted"`
	Subtasks       []*Subtask `json:"subtasks"`
}

// Subtask is a child entry of exactly one task.
type Subtask struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}

// DisplayName returns the name as shown in the table, struck if deleted.
func (t *Task) DisplayName() string {
	if t.NameDeleted {
		return Strikethrough(t.Name)
	}
	return t.Name
}

// DisplayDueDate returns the due date as shown in the table, struck if deleted.
func (t *Task) DisplayDueDate() string {
	if t.DueDateDeleted {
		return Strikethrough(t.DueDate)
	}
	return t.DueDate
}

// Subtask looks up a subtask by ID.
func (t *Task) Subtask(id string) (*Subtask, bool) {
	for _, s := range t.Subtasks {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// AllSubtasksDeleted reports whether the task has subtasks and every one is struck.
func (t *Task) AllSubtasksDeleted() bool {
	if len(t.Subtasks) == 0 {
		return false
	}
	for _, s := range t.Subtasks {
		if !s.Struck() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	c.Subtasks = make([]*Subtask, len(t.Subtasks))
	for i, s := range t.Subtasks {
		sc := *s
		c.Subtasks[i] = &sc
	}
	return &c
}

// Struck reports whether the subtask reads as fully struck: it was deleted,
// or its name has no un-struck character left (an empty name, for one).
func (s *Subtask) Struck() bool {
	return s.Deleted || IsStruck(s.Name)
}

// DisplayName returns the subtask name, struck if deleted.
func (s *Subtask) DisplayName() string {
	if s.Deleted {
		return Strikethrough(s.Name)
	}
	return s.Name
}
