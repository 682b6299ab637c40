package pibuilder

import internal "github.com/pi-builder/sdk-go/internal/models"

// Agent is a registered agent as returned by the agents endpoints.
type Agent = internal.Agent

// AgentType labels what kind of worker an agent is. The server owns the
// vocabulary; unknown values pass through untouched.
type AgentType = internal.AgentType

const (
	AgentTypeCustom  = internal.AgentTypeCustom
	AgentTypeBuilder = internal.AgentTypeBuilder
	AgentTypeMonitor = internal.AgentTypeMonitor
)

// Task is a unit of work as returned by the tasks endpoints.
type Task = internal.Task

// TaskStatus tracks where a task is in its lifecycle.
type TaskStatus = internal.TaskStatus

const (
	TaskStatusPending   = internal.TaskStatusPending
	TaskStatusRunning   = internal.TaskStatusRunning
	TaskStatusCompleted = internal.TaskStatusCompleted
	TaskStatusFailed    = internal.TaskStatusFailed
)

// TaskPriority orders tasks for scheduling.
type TaskPriority = internal.TaskPriority

const (
	TaskPriorityLow    = internal.TaskPriorityLow
	TaskPriorityMedium = internal.TaskPriorityMedium
	TaskPriorityHigh   = internal.TaskPriorityHigh
)
