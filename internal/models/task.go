package models

// TaskType is the department a task belongs to.
type TaskType string

const (
	TaskHousekeeping TaskType = "HOUSEKEEPING"
	TaskMaintenance  TaskType = "MAINTENANCE"
	TaskGuestRequest TaskType = "GUEST_REQ"
)

// TaskStatus is the progress of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// TaskPriority orders the work queue.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Task represents a unit of operational work
type Task struct {
	ID          string       `json:"id"`
	Type        TaskType     `json:"type" validate:"required,oneof=HOUSEKEEPING MAINTENANCE GUEST_REQ"`
	Description string       `json:"description" validate:"required,max=200"`
	RoomNumber  string       `json:"roomNumber" validate:"required"`
	Status      TaskStatus   `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Priority    TaskPriority `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
	AssignedTo  string       `json:"assignedTo,omitempty"`
	Time        string       `json:"time"`
}

// Open reports whether the task still needs work.
func (t Task) Open() bool {
	return t.Status != TaskCompleted
}
