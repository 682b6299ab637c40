package pibuilder

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/pi-builder/sdk-go/internal/models"
)

// taskListFilter collects the optional filters of a list-tasks call.
type taskListFilter struct {
	status   string
	priority string
}

// TaskListOption narrows a list-tasks call.
type TaskListOption func(*taskListFilter)

// WithStatusFilter restricts the listing to tasks in the given status.
func WithStatusFilter(status TaskStatus) TaskListOption {
	return func(f *taskListFilter) {
		f.status = string(status)
	}
}

// WithPriorityFilter restricts the listing to tasks at the given priority.
func WithPriorityFilter(priority TaskPriority) TaskListOption {
	return func(f *taskListFilter) {
		f.priority = string(priority)
	}
}

// taskCreateRequest collects the fields of a create-task call.
type taskCreateRequest struct {
	priority models.TaskPriority
}

// TaskOption customizes a create-task call.
type TaskOption func(*taskCreateRequest)

// WithPriority overrides the default "medium" priority.
func WithPriority(priority TaskPriority) TaskOption {
	return func(r *taskCreateRequest) {
		r.priority = priority
	}
}

// TaskUpdate names one field change of an update-task call. The request
// body carries exactly the supplied changes and nothing else.
type TaskUpdate func(map[string]any)

// SetStatus moves the task to the given status.
func SetStatus(status TaskStatus) TaskUpdate {
	return func(body map[string]any) {
		body["status"] = string(status)
	}
}

// SetPriority reprioritizes the task.
func SetPriority(priority TaskPriority) TaskUpdate {
	return func(body map[string]any) {
		body["priority"] = string(priority)
	}
}

// ListTasks returns tasks, optionally narrowed by status and priority
// filters. A server payload of null is an empty listing, not an error.
func (c *Client) ListTasks(opts ...TaskListOption) ([]Task, error) {
	var filter taskListFilter
	for _, opt := range opts {
		opt(&filter)
	}

	path := "/api/tasks"
	params := make([]string, 0, 2)
	if len(filter.status) > 0 {
		params = append(params, "status="+url.QueryEscape(filter.status))
	}
	if len(filter.priority) > 0 {
		params = append(params, "priority="+url.QueryEscape(filter.priority))
	}
	if len(params) > 0 {
		path += "?" + strings.Join(params, "&")
	}

	data, err := c.engine.Execute(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeTaskList(data)
}

// GetTask fetches a single task by its identifier.
func (c *Client) GetTask(taskID string) (*Task, error) {
	if len(taskID) == 0 {
		return nil, ErrTaskIDRequired
	}

	data, err := c.engine.Execute(http.MethodGet, "/api/tasks/"+taskID, nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeTask(data)
}

// CreateTask submits a new task under the given name. Without options the
// task is created at "medium" priority.
func (c *Client) CreateTask(name string, opts ...TaskOption) (*Task, error) {
	req := taskCreateRequest{
		priority: models.TaskPriorityMedium,
	}
	for _, opt := range opts {
		opt(&req)
	}

	body := map[string]any{
		"name":     name,
		"priority": string(req.priority),
	}

	data, err := c.engine.Execute(http.MethodPost, "/api/tasks", body)
	if err != nil {
		return nil, err
	}
	return models.DecodeTask(data)
}

// UpdateTask applies the given field changes to a task. With no changes the
// request is still issued, carrying no body, and returns the task as the
// server currently has it.
func (c *Client) UpdateTask(taskID string, updates ...TaskUpdate) (*Task, error) {
	if len(taskID) == 0 {
		return nil, ErrTaskIDRequired
	}

	body := map[string]any{}
	for _, update := range updates {
		update(body)
	}

	data, err := c.engine.Execute(http.MethodPut, "/api/tasks/"+taskID, body)
	if err != nil {
		return nil, err
	}
	return models.DecodeTask(data)
}
