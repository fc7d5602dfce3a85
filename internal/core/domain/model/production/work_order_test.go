package production_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeWorkOrder(t *testing.T) *production.WorkOrder {
	t.Helper()
	wo, err := production.NewWorkOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return wo
}

func addTask(t *testing.T, wo *production.WorkOrder, taskType production.TaskType) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	_, err := wo.AddTask(id, taskType, nil, time.Now())
	require.NoError(t, err)
	return id
}

func TestNewWorkOrder(t *testing.T) {
	t.Run("should start OPEN at the production stage with no tasks", func(t *testing.T) {
		wo := makeWorkOrder(t)

		require.NoError(t, wo.Validate())
		assert.Equal(t, production.WorkOrderOpen, wo.State())
		assert.Equal(t, production.StageProduction, wo.Stage())
		assert.Empty(t, wo.Tasks())
		assert.Empty(t, wo.Rejections())
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := production.NewWorkOrder(kernel.NewUUID(), invalidID, time.Now())

		require.Error(t, err)
	})

	t.Run("should fail validation for struct literal", func(t *testing.T) {
		err := (&production.WorkOrder{}).Validate()

		require.Error(t, err)
		assert.Equal(t, production.ErrWorkOrderIsNotConstructed, err)
	})
}

func TestWorkOrder_AddTask(t *testing.T) {
	t.Run("should append TODO tasks in insertion order", func(t *testing.T) {
		wo := makeWorkOrder(t)

		first := addTask(t, wo, production.TaskTypeBuild)
		second := addTask(t, wo, production.TaskTypeQC)

		tasks := wo.Tasks()
		require.Len(t, tasks, 2)
		assert.True(t, tasks[0].ID().IsEqual(first))
		assert.True(t, tasks[1].ID().IsEqual(second))
		assert.Equal(t, production.TaskTodo, tasks[0].State())
	})

	t.Run("should allow adding tasks while IN_PROGRESS", func(t *testing.T) {
		wo := makeWorkOrder(t)
		first := addTask(t, wo, production.TaskTypeBuild)
		require.NoError(t, wo.CompleteTask(first, time.Now()))
		require.Equal(t, production.WorkOrderInProgress, wo.State())

		_, err := wo.AddTask(kernel.NewUUID(), production.TaskTypePack, nil, time.Now())

		require.NoError(t, err)
	})

	t.Run("should refuse tasks on a terminal work order", func(t *testing.T) {
		wo := makeWorkOrder(t)
		taskID := addTask(t, wo, production.TaskTypeBuild)
		require.NoError(t, wo.CompleteTask(taskID, time.Now()))
		require.Equal(t, production.WorkOrderDone, wo.State())

		_, err := wo.AddTask(kernel.NewUUID(), production.TaskTypePack, nil, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTerminalState)
	})

	t.Run("should reject unknown task type", func(t *testing.T) {
		wo := makeWorkOrder(t)

		_, err := wo.AddTask(kernel.NewUUID(), production.TaskType("SOLDER"), nil, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWorkOrder_CompleteTask_Derivation(t *testing.T) {
	t.Run("first completion moves OPEN to IN_PROGRESS", func(t *testing.T) {
		wo := makeWorkOrder(t)
		first := addTask(t, wo, production.TaskTypeBuild)
		addTask(t, wo, production.TaskTypeBuild)

		require.NoError(t, wo.CompleteTask(first, time.Now()))

		assert.Equal(t, production.WorkOrderInProgress, wo.State())
	})

	t.Run("completing every task moves the work order to DONE", func(t *testing.T) {
		wo := makeWorkOrder(t)
		first := addTask(t, wo, production.TaskTypeBuild)
		second := addTask(t, wo, production.TaskTypeBuild)

		require.NoError(t, wo.CompleteTask(first, time.Now()))
		require.NoError(t, wo.CompleteTask(second, time.Now()))

		assert.Equal(t, production.WorkOrderDone, wo.State())
	})

	t.Run("derivation is independent of completion order", func(t *testing.T) {
		wo := makeWorkOrder(t)
		ids := []kernel.UUID{
			addTask(t, wo, production.TaskTypeBuild),
			addTask(t, wo, production.TaskTypeQC),
			addTask(t, wo, production.TaskTypePack),
		}

		// complete in reverse insertion order
		require.NoError(t, wo.CompleteTask(ids[2], time.Now()))
		assert.Equal(t, production.WorkOrderInProgress, wo.State())
		require.NoError(t, wo.CompleteTask(ids[0], time.Now()))
		assert.Equal(t, production.WorkOrderInProgress, wo.State())
		require.NoError(t, wo.CompleteTask(ids[1], time.Now()))

		assert.Equal(t, production.WorkOrderDone, wo.State())
	})

	t.Run("should fail on unknown task id", func(t *testing.T) {
		wo := makeWorkOrder(t)
		addTask(t, wo, production.TaskTypeBuild)

		err := wo.CompleteTask(kernel.NewUUID(), time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail on already completed task", func(t *testing.T) {
		wo := makeWorkOrder(t)
		first := addTask(t, wo, production.TaskTypeBuild)
		addTask(t, wo, production.TaskTypeBuild)
		require.NoError(t, wo.CompleteTask(first, time.Now()))

		err := wo.CompleteTask(first, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should refuse completion once the work order is DONE", func(t *testing.T) {
		wo := makeWorkOrder(t)
		only := addTask(t, wo, production.TaskTypeBuild)
		require.NoError(t, wo.CompleteTask(only, time.Now()))

		err := wo.CompleteTask(only, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTerminalState)
	})
}

func TestWorkOrder_StartTask(t *testing.T) {
	t.Run("should move TODO to DOING and record worker and start time", func(t *testing.T) {
		wo := makeWorkOrder(t)
		taskID := addTask(t, wo, production.TaskTypeBuild)
		now := time.Now()

		require.NoError(t, wo.StartTask(taskID, "worker-7", now))

		task, err := wo.FindTask(taskID)
		require.NoError(t, err)
		assert.Equal(t, production.TaskDoing, task.State())
		assert.Equal(t, "worker-7", task.AssignedTo())
		require.NotNil(t, task.StartedAt())
		assert.Equal(t, now, *task.StartedAt())
	})

	t.Run("should not change work order state", func(t *testing.T) {
		wo := makeWorkOrder(t)
		taskID := addTask(t, wo, production.TaskTypeBuild)

		require.NoError(t, wo.StartTask(taskID, "worker-7", time.Now()))

		assert.Equal(t, production.WorkOrderOpen, wo.State())
	})

	t.Run("should fail when the task is already DOING", func(t *testing.T) {
		wo := makeWorkOrder(t)
		taskID := addTask(t, wo, production.TaskTypeBuild)
		require.NoError(t, wo.StartTask(taskID, "worker-7", time.Now()))

		err := wo.StartTask(taskID, "worker-8", time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestWorkOrder_FailTask(t *testing.T) {
	t.Run("should mark the task FAILED without failing the work order", func(t *testing.T) {
		wo := makeWorkOrder(t)
		taskID := addTask(t, wo, production.TaskTypeBuild)
		addTask(t, wo, production.TaskTypeBuild)

		require.NoError(t, wo.FailTask(taskID, "jig misaligned", time.Now()))

		task, err := wo.FindTask(taskID)
		require.NoError(t, err)
		assert.Equal(t, production.TaskFailed, task.State())
		assert.Equal(t, "jig misaligned", task.FailureReason())
		require.NotNil(t, task.FinishedAt())
		assert.Equal(t, production.WorkOrderOpen, wo.State())
	})

	t.Run("should require a reason", func(t *testing.T) {
		wo := makeWorkOrder(t)
		taskID := addTask(t, wo, production.TaskTypeBuild)

		err := wo.FailTask(taskID, "", time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestWorkOrder_RecordRejection(t *testing.T) {
	t.Run("should force REJECTED even with TODO tasks remaining", func(t *testing.T) {
		wo := makeWorkOrder(t)
		first := addTask(t, wo, production.TaskTypeBuild)
		addTask(t, wo, production.TaskTypeQC)
		require.NoError(t, wo.CompleteTask(first, time.Now()))
		require.Equal(t, production.WorkOrderInProgress, wo.State())

		rejection, err := wo.RecordRejection(kernel.NewUUID(), "QC_FAIL", "scratched housing", time.Now())

		require.NoError(t, err)
		assert.Equal(t, production.WorkOrderRejected, wo.State())
		assert.Equal(t, "QC_FAIL", rejection.Category())
		require.Len(t, wo.Rejections(), 1)
		assert.True(t, wo.LatestRejection().ID().IsEqual(rejection.ID()))
	})

	t.Run("subsequent task transitions fail with a terminal state error", func(t *testing.T) {
		wo := makeWorkOrder(t)
		taskID := addTask(t, wo, production.TaskTypeBuild)
		_, err := wo.RecordRejection(kernel.NewUUID(), "QC_FAIL", "cracked weld", time.Now())
		require.NoError(t, err)

		err = wo.CompleteTask(taskID, time.Now())
		require.ErrorIs(t, err, errs.ErrTerminalState)

		err = wo.StartTask(taskID, "worker-1", time.Now())
		require.ErrorIs(t, err, errs.ErrTerminalState)

		err = wo.FailTask(taskID, "moot", time.Now())
		require.ErrorIs(t, err, errs.ErrTerminalState)
	})

	t.Run("should refuse a rejection on a terminal work order", func(t *testing.T) {
		wo := makeWorkOrder(t)
		_, err := wo.RecordRejection(kernel.NewUUID(), "QC_FAIL", "first", time.Now())
		require.NoError(t, err)

		_, err = wo.RecordRejection(kernel.NewUUID(), "QC_FAIL", "second", time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTerminalState)
	})

	t.Run("should require category and details", func(t *testing.T) {
		wo := makeWorkOrder(t)

		_, err := wo.RecordRejection(kernel.NewUUID(), "", "details", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = wo.RecordRejection(kernel.NewUUID(), "QC_FAIL", "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreWorkOrder(t *testing.T) {
	t.Run("should round-trip a work order through restore", func(t *testing.T) {
		wo := makeWorkOrder(t)
		first := addTask(t, wo, production.TaskTypeBuild)
		addTask(t, wo, production.TaskTypeQC)
		require.NoError(t, wo.CompleteTask(first, time.Now()))

		restored, err := production.RestoreWorkOrder(
			wo.ID(), wo.OrderID(), wo.Stage(), wo.State(), wo.Tasks(),
			wo.Rejections(), wo.CreatedAt(), wo.UpdatedAt(), wo.Version(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(wo))
		assert.Equal(t, production.WorkOrderInProgress, restored.State())
		assert.Len(t, restored.Tasks(), 2)
		assert.Equal(t, wo.Version(), restored.Version())
	})

	t.Run("should fail on invalid stored state", func(t *testing.T) {
		wo := makeWorkOrder(t)

		_, err := production.RestoreWorkOrder(
			wo.ID(), wo.OrderID(), wo.Stage(), production.WorkOrderState("BROKEN"),
			nil, nil, wo.CreatedAt(), wo.UpdatedAt(), wo.Version(),
		)

		require.Error(t, err)
	})
}

func TestStation(t *testing.T) {
	t.Run("should create an active station", func(t *testing.T) {
		station, err := production.NewStation(kernel.NewUUID(), "PROD-01", production.StageProduction)

		require.NoError(t, err)
		assert.True(t, station.IsActive())
		assert.Equal(t, "PROD-01", station.Code())
	})

	t.Run("should require a code", func(t *testing.T) {
		_, err := production.NewStation(kernel.NewUUID(), "", production.StageProduction)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should deactivate", func(t *testing.T) {
		station, err := production.NewStation(kernel.NewUUID(), "PACK-01", production.StagePacking)
		require.NoError(t, err)

		station.Deactivate()

		assert.False(t, station.IsActive())
	})
}
