package production

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// TaskState represents the lifecycle state of a single work task.
//
// State transitions:
//
//	TODO ──> DOING ──> DONE
//	 │         │
//	 └─────────┴──> FAILED
//
// DONE and FAILED are terminal. Completing or failing a task straight from
// TODO is allowed; stations are not required to report a start.
type TaskState string

const (
	TaskTodo   TaskState = "TODO"
	TaskDoing  TaskState = "DOING"
	TaskDone   TaskState = "DONE"
	TaskFailed TaskState = "FAILED"
)

// Validate checks if the state is one of the defined task states.
func (s TaskState) Validate() error {
	switch s {
	case TaskTodo, TaskDoing, TaskDone, TaskFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("taskState", fmt.Errorf("%q is not a valid task state", string(s)))
	}
}

// String returns the wire form of the state.
func (s TaskState) String() string {
	return string(s)
}

// IsTerminal reports whether the state permits no further transitions.
func (s TaskState) IsTerminal() bool {
	return s == TaskDone || s == TaskFailed
}

// TaskType classifies the kind of work a task represents.
type TaskType string

const (
	TaskTypeBuild    TaskType = "BUILD"
	TaskTypePack     TaskType = "PACK"
	TaskTypeDispatch TaskType = "DISPATCH"
	TaskTypeQC       TaskType = "QC"
)

// Validate checks if the task type is one of the defined kinds.
func (t TaskType) Validate() error {
	switch t {
	case TaskTypeBuild, TaskTypePack, TaskTypeDispatch, TaskTypeQC:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("taskType", fmt.Errorf("%q is not a valid task type", string(t)))
	}
}

// String returns the wire form of the task type.
func (t TaskType) String() string {
	return string(t)
}
