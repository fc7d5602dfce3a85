// Package production implements the Production aggregate: the work order that
// fulfills exactly one customer order on the shop floor.
//
// The aggregate root is WorkOrder, which owns an ordered list of work tasks
// and an append-only list of rejections. Task transitions are only reachable
// through the aggregate, which derives its own state from task completion:
// the first completed task moves an OPEN work order to IN_PROGRESS, and
// completing the last remaining task moves it to DONE. A recorded rejection
// forces the work order to REJECTED regardless of task states.
//
// DONE and REJECTED are terminal. Once a work order is terminal, every task
// mutation is refused.
//
// Stations are static lookup entities consumed when tasks are assigned; the
// aggregate never mutates them.
package production
