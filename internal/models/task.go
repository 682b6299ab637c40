package models

import (
	"encoding/json"
	"fmt"
)

// TaskStatus tracks where a task is in its lifecycle.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// TaskPriority orders tasks for scheduling.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is a unit of work as returned by the tasks endpoints. Timestamps are
// carried verbatim in whatever format the server emits; CompletedAt is
// empty while the task is still open.
type Task struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   string       `json:"created_at"`
	CompletedAt string       `json:"completed_at,omitempty"`
}

// Validate checks the fields every task record must carry.
func (t *Task) Validate() error {
	switch {
	case len(t.ID) == 0:
		return &FieldError{Entity: "task", Field: "id"}
	case len(t.Name) == 0:
		return &FieldError{Entity: "task", Field: "name"}
	case len(t.Status) == 0:
		return &FieldError{Entity: "task", Field: "status"}
	case len(t.Priority) == 0:
		return &FieldError{Entity: "task", Field: "priority"}
	case len(t.CreatedAt) == 0:
		return &FieldError{Entity: "task", Field: "created_at"}
	}
	return nil
}

// DecodeTask parses and validates a single task payload. An absent payload
// fails validation the same way an empty record would.
func DecodeTask(data json.RawMessage) (*Task, error) {
	var task Task
	if !IsNull(data) {
		if err := json.Unmarshal(data, &task); err != nil {
			return nil, fmt.Errorf("decoding task record: %w", err)
		}
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return &task, nil
}

// DecodeTaskList parses and validates a task collection. An absent payload
// yields an empty slice.
func DecodeTaskList(data json.RawMessage) ([]Task, error) {
	if IsNull(data) {
		return []Task{}, nil
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decoding task list: %w", err)
	}
	for i := range tasks {
		if err := tasks[i].Validate(); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}
