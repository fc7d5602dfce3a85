package production

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
// created through the NewWorkOrder or RestoreWorkOrder factory functions.
var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")

// WorkOrder is the production-side aggregate root fulfilling exactly one
// customer order. It owns an ordered list of tasks and an append-only list
// of rejections.
//
// WorkOrder follows these invariants:
//   - Bound to exactly one order by reference id; the 1:1 rule is enforced
//     by the create handler, not by a database constraint
//   - Its state is derived from task completion, never set directly by a
//     caller: the first completed task moves OPEN to IN_PROGRESS, completing
//     every task moves it to DONE
//   - A recorded rejection forces REJECTED from any non-terminal state
//   - Once terminal (DONE or REJECTED), every task mutation is refused
//   - A failed task does not fail the work order; only a rejection does
type WorkOrder struct {
	// id is the unique identifier for the work order
	id kernel.UUID

	// orderID is a weak reference to the fulfilled order
	orderID kernel.UUID

	// currentStage is the facility area the work order sits in
	currentStage Stage

	// state is the derived lifecycle state
	state WorkOrderState

	// tasks are the work order's tasks in insertion order
	tasks []*Task

	// rejections is the append-only failure log
	rejections []*Rejection

	createdAt time.Time
	updatedAt time.Time

	// version supports compare-and-swap persistence of concurrent mutations
	version int

	// isConstructed ensures the work order was created via a factory function
	isConstructed bool
}

// NewWorkOrder creates a work order in OPEN state at the PRODUCTION stage
// with no tasks.
func NewWorkOrder(id kernel.UUID, orderID kernel.UUID, now time.Time) (*WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &WorkOrder{
		id:            id,
		orderID:       orderID,
		currentStage:  StageProduction,
		state:         WorkOrderOpen,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreWorkOrder reconstructs a work order from persistence.
func RestoreWorkOrder(
	id kernel.UUID,
	orderID kernel.UUID,
	currentStage Stage,
	state WorkOrderState,
	tasks []*Task,
	rejections []*Rejection,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*WorkOrder, error) {
	wo, err := NewWorkOrder(id, orderID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = currentStage.Validate(); err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}

	for _, task := range tasks {
		if taskErr := task.Validate(); taskErr != nil {
			return nil, taskErr
		}
	}
	for _, rejection := range rejections {
		if rejectionErr := rejection.Validate(); rejectionErr != nil {
			return nil, rejectionErr
		}
	}

	wo.currentStage = currentStage
	wo.state = state
	wo.tasks = append([]*Task(nil), tasks...)
	wo.rejections = append([]*Rejection(nil), rejections...)
	wo.updatedAt = updatedAt
	wo.version = version
	return wo, nil
}

// Validate ensures the WorkOrder was created through a factory function.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by their unique identifiers.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

// OrderID returns the fulfilled order's identifier.
func (w *WorkOrder) OrderID() kernel.UUID {
	return w.orderID
}

// Stage returns the facility area the work order sits in.
func (w *WorkOrder) Stage() Stage {
	return w.currentStage
}

// State returns the derived lifecycle state.
func (w *WorkOrder) State() WorkOrderState {
	return w.state
}

// Tasks returns the work order's tasks in insertion order.
// The returned slice is a copy; the tasks themselves are shared.
func (w *WorkOrder) Tasks() []*Task {
	return append([]*Task(nil), w.tasks...)
}

// Rejections returns the append-only rejection log.
func (w *WorkOrder) Rejections() []*Rejection {
	return append([]*Rejection(nil), w.rejections...)
}

// LatestRejection returns the most recently recorded rejection, or nil.
func (w *WorkOrder) LatestRejection() *Rejection {
	if len(w.rejections) == 0 {
		return nil
	}
	return w.rejections[len(w.rejections)-1]
}

// CreatedAt returns when the work order was created.
func (w *WorkOrder) CreatedAt() time.Time {
	return w.createdAt
}

// UpdatedAt returns when the work order was last mutated.
func (w *WorkOrder) UpdatedAt() time.Time {
	return w.updatedAt
}

// Version returns the aggregate version used for optimistic concurrency.
func (w *WorkOrder) Version() int {
	return w.version
}

// AddTask appends a TODO task. Allowed in any non-terminal state.
// Station existence and activity are checked by the caller against the
// station lookup; the aggregate only validates shape.
func (w *WorkOrder) AddTask(taskID kernel.UUID, taskType TaskType, stationID *kernel.UUID, now time.Time) (*Task, error) {
	if err := w.guardNotTerminal(); err != nil {
		return nil, err
	}

	task, err := NewTask(taskID, taskType, stationID)
	if err != nil {
		return nil, err
	}

	w.tasks = append(w.tasks, task)
	w.touch(now)
	return task, nil
}

// StartTask moves a task from TODO to DOING and records the worker.
func (w *WorkOrder) StartTask(taskID kernel.UUID, assignedTo string, now time.Time) error {
	if err := w.guardNotTerminal(); err != nil {
		return err
	}

	task, err := w.findTask(taskID)
	if err != nil {
		return err
	}
	if err = task.start(assignedTo, now); err != nil {
		return err
	}

	w.touch(now)
	return nil
}

// CompleteTask moves a task to DONE and re-derives the work order state:
// the first completion moves an OPEN work order to IN_PROGRESS, and when
// every task is DONE the work order becomes DONE.
//
// Fails with a TerminalStateError if the work order is terminal, an
// ObjectNotFoundError if the task is unknown, and an InvalidTransitionError
// if the task itself is already DONE or FAILED.
func (w *WorkOrder) CompleteTask(taskID kernel.UUID, now time.Time) error {
	if err := w.guardNotTerminal(); err != nil {
		return err
	}

	task, err := w.findTask(taskID)
	if err != nil {
		return err
	}
	if err = task.complete(now); err != nil {
		return err
	}

	w.deriveState()
	w.touch(now)
	return nil
}

// FailTask moves a task to FAILED with a reason. The work order state is
// unchanged: only a recorded rejection fails a work order.
func (w *WorkOrder) FailTask(taskID kernel.UUID, reason string, now time.Time) error {
	if err := w.guardNotTerminal(); err != nil {
		return err
	}

	task, err := w.findTask(taskID)
	if err != nil {
		return err
	}
	if err = task.fail(reason, now); err != nil {
		return err
	}

	w.touch(now)
	return nil
}

// RecordRejection appends a rejection and forces the work order to REJECTED
// regardless of its current non-terminal state and of task states.
func (w *WorkOrder) RecordRejection(rejectionID kernel.UUID, category string, details string, now time.Time) (*Rejection, error) {
	if err := w.guardNotTerminal(); err != nil {
		return nil, err
	}

	rejection, err := NewRejection(rejectionID, category, details, now)
	if err != nil {
		return nil, err
	}

	w.rejections = append(w.rejections, rejection)
	w.state = WorkOrderRejected
	w.touch(now)
	return rejection, nil
}

// FindTask returns the task with the given id, or an ObjectNotFoundError.
func (w *WorkOrder) FindTask(taskID kernel.UUID) (*Task, error) {
	return w.findTask(taskID)
}

func (w *WorkOrder) findTask(taskID kernel.UUID) (*Task, error) {
	for _, task := range w.tasks {
		if task.ID().IsEqual(taskID) {
			return task, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("task", taskID.String())
}

func (w *WorkOrder) guardNotTerminal() error {
	if w.state.IsTerminal() {
		return errs.NewTerminalStateError("work order", w.state.String())
	}
	return nil
}

// deriveState recomputes the work order state from task completion.
// Rejection is not derived here; RecordRejection forces it directly.
func (w *WorkOrder) deriveState() {
	if len(w.tasks) == 0 {
		return
	}

	allDone := true
	anyDone := false
	for _, task := range w.tasks {
		switch task.State() {
		case TaskDone:
			anyDone = true
		default:
			allDone = false
		}
	}

	if allDone {
		w.state = WorkOrderDone
		return
	}
	if anyDone && w.state == WorkOrderOpen {
		w.state = WorkOrderInProgress
	}
}

func (w *WorkOrder) touch(now time.Time) {
	w.updatedAt = now
	w.version++
}
