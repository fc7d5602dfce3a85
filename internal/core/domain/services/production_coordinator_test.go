package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "SKU-1", "Widget", price, 1)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), order.GenerateOrderNumber(time.Now()),
		kernel.NewUUID(), []*order.Item{item}, order.DefaultPriority, "", time.Now())
	require.NoError(t, err)

	if status == order.StatusCancelled || status == order.StatusRejected {
		_, err = aggregate.TransitionTo(status, "test", "", time.Now())
		require.NoError(t, err)
	} else {
		path := []order.Status{order.StatusConfirmed, order.StatusInProduction,
			order.StatusPacked, order.StatusShipped, order.StatusClosed}
		for _, next := range path {
			if aggregate.Status() == status {
				break
			}
			_, err = aggregate.TransitionTo(next, "test", "", time.Now())
			require.NoError(t, err)
		}
	}
	require.Equal(t, status, aggregate.Status())
	return aggregate
}

func makeDoneWorkOrder(t *testing.T, orderID kernel.UUID) *production.WorkOrder {
	t.Helper()
	wo, err := production.NewWorkOrder(kernel.NewUUID(), orderID, time.Now())
	require.NoError(t, err)
	taskID := kernel.NewUUID()
	_, err = wo.AddTask(taskID, production.TaskTypeBuild, nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, wo.CompleteTask(taskID, time.Now()))
	require.Equal(t, production.WorkOrderDone, wo.State())
	return wo
}

func makeRejectedWorkOrder(t *testing.T, orderID kernel.UUID, category, details string) *production.WorkOrder {
	t.Helper()
	wo, err := production.NewWorkOrder(kernel.NewUUID(), orderID, time.Now())
	require.NoError(t, err)
	_, err = wo.RecordRejection(kernel.NewUUID(), category, details, time.Now())
	require.NoError(t, err)
	return wo
}

func TestProductionCoordinator_Reconcile(t *testing.T) {
	coordinator := services.NewProductionCoordinator()

	t.Run("should move the order to PACKED when the work order is DONE", func(t *testing.T) {
		aggregate := makeOrderInStatus(t, order.StatusInProduction)
		wo := makeDoneWorkOrder(t, aggregate.ID())

		changed, err := coordinator.Reconcile(aggregate, wo, time.Now())

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StatusPacked, aggregate.Status())

		last := aggregate.History()[len(aggregate.History())-1]
		assert.Equal(t, order.SystemActor, last.ChangedBy())
		assert.Equal(t, "production completed", last.Reason())
	})

	t.Run("should move the order to REJECTED with the rejection as reason", func(t *testing.T) {
		aggregate := makeOrderInStatus(t, order.StatusInProduction)
		wo := makeRejectedWorkOrder(t, aggregate.ID(), "QC_FAIL", "scratched housing")

		changed, err := coordinator.Reconcile(aggregate, wo, time.Now())

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.StatusRejected, aggregate.Status())

		last := aggregate.History()[len(aggregate.History())-1]
		assert.Equal(t, "QC_FAIL: scratched housing", last.Reason())
	})

	t.Run("should do nothing for a non-terminal work order", func(t *testing.T) {
		aggregate := makeOrderInStatus(t, order.StatusInProduction)
		wo, err := production.NewWorkOrder(kernel.NewUUID(), aggregate.ID(), time.Now())
		require.NoError(t, err)

		changed, err := coordinator.Reconcile(aggregate, wo, time.Now())

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.StatusInProduction, aggregate.Status())
	})

	t.Run("should tolerate replays once the order is already PACKED", func(t *testing.T) {
		aggregate := makeOrderInStatus(t, order.StatusInProduction)
		wo := makeDoneWorkOrder(t, aggregate.ID())

		_, err := coordinator.Reconcile(aggregate, wo, time.Now())
		require.NoError(t, err)
		historyLen := len(aggregate.History())

		changed, err := coordinator.Reconcile(aggregate, wo, time.Now())

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Len(t, aggregate.History(), historyLen)
	})

	t.Run("should treat an order that already shipped as reconciled", func(t *testing.T) {
		aggregate := makeOrderInStatus(t, order.StatusShipped)
		wo := makeDoneWorkOrder(t, aggregate.ID())

		changed, err := coordinator.Reconcile(aggregate, wo, time.Now())

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.StatusShipped, aggregate.Status())
	})

	t.Run("should surface a conflict when the order was cancelled meanwhile", func(t *testing.T) {
		aggregate := makeOrderInStatus(t, order.StatusCancelled)
		wo := makeDoneWorkOrder(t, aggregate.ID())

		changed, err := coordinator.Reconcile(aggregate, wo, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.False(t, changed)
		assert.Equal(t, order.StatusCancelled, aggregate.Status())
	})

	t.Run("should refuse a work order belonging to another order", func(t *testing.T) {
		aggregate := makeOrderInStatus(t, order.StatusInProduction)
		wo := makeDoneWorkOrder(t, kernel.NewUUID())

		_, err := coordinator.Reconcile(aggregate, wo, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}
