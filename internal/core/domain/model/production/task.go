package production

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrTaskIsNotConstructed is returned when a Task instance was not created
// through the NewTask or RestoreTask factory functions.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask")

// Task is a single station-level unit of work within a work order.
// Tasks are owned by their WorkOrder; all transitions go through the
// aggregate so terminal work orders can refuse them.
type Task struct {
	id            kernel.UUID
	taskType      TaskType
	stationID     *kernel.UUID // optional station assignment
	state         TaskState
	assignedTo    string // optional worker identifier
	startedAt     *time.Time
	finishedAt    *time.Time
	failureReason string // set only when state is FAILED

	isConstructed bool
}

// NewTask creates a task in TODO state, optionally bound to a station.
func NewTask(id kernel.UUID, taskType TaskType, stationID *kernel.UUID) (*Task, error) {
	task := &Task{
		state:         TaskTodo,
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := taskType.Validate(); err != nil {
		return nil, err
	}
	if stationID != nil {
		if err := stationID.Validate(); err != nil {
			return nil, err
		}
	}

	task.id = id
	task.taskType = taskType
	task.stationID = stationID
	return task, nil
}

// RestoreTask reconstructs a task from persistence.
func RestoreTask(
	id kernel.UUID,
	taskType TaskType,
	stationID *kernel.UUID,
	state TaskState,
	assignedTo string,
	startedAt *time.Time,
	finishedAt *time.Time,
	failureReason string,
) (*Task, error) {
	task, err := NewTask(id, taskType, stationID)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}

	task.state = state
	task.assignedTo = assignedTo
	task.startedAt = startedAt
	task.finishedAt = finishedAt
	task.failureReason = failureReason
	return task, nil
}

// Validate ensures the Task was created through a factory function.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// Type returns the kind of work the task represents.
func (t *Task) Type() TaskType {
	return t.taskType
}

// StationID returns the assigned station, or nil if unassigned.
func (t *Task) StationID() *kernel.UUID {
	return t.stationID
}

// State returns the task's current state.
func (t *Task) State() TaskState {
	return t.state
}

// AssignedTo returns the worker identifier, or "" if unassigned.
func (t *Task) AssignedTo() string {
	return t.assignedTo
}

// StartedAt returns when work began, or nil if never started.
func (t *Task) StartedAt() *time.Time {
	return t.startedAt
}

// FinishedAt returns when the task reached a terminal state, or nil.
func (t *Task) FinishedAt() *time.Time {
	return t.finishedAt
}

// FailureReason returns why the task failed; "" unless state is FAILED.
func (t *Task) FailureReason() string {
	return t.failureReason
}

// start moves the task from TODO to DOING and records the worker.
func (t *Task) start(assignedTo string, now time.Time) error {
	if t.state != TaskTodo {
		return errs.NewInvalidTransitionError("task", t.state.String(), TaskDoing.String())
	}

	t.state = TaskDoing
	t.assignedTo = assignedTo
	t.startedAt = &now
	return nil
}

// complete moves the task to DONE. Allowed from TODO and DOING.
func (t *Task) complete(now time.Time) error {
	if t.state.IsTerminal() {
		return errs.NewInvalidTransitionError("task", t.state.String(), TaskDone.String())
	}

	t.state = TaskDone
	t.finishedAt = &now
	return nil
}

// fail moves the task to FAILED with a mandatory reason.
// Allowed from TODO and DOING.
func (t *Task) fail(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("failureReason")
	}
	if t.state.IsTerminal() {
		return errs.NewInvalidTransitionError("task", t.state.String(), TaskFailed.String())
	}

	t.state = TaskFailed
	t.failureReason = reason
	t.finishedAt = &now
	return nil
}
