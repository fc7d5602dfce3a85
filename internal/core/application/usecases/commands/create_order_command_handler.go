package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// maxOrderNumberAttempts bounds the generate-and-insert retry loop.
// The unique index on order numbers is authoritative; a collision rolls the
// attempt back and a fresh number is generated.
const maxOrderNumberAttempts = 5

// ErrOrderNumberExhausted is returned when every generation attempt collided.
// With a six-digit random suffix this indicates something is wrong beyond
// plain bad luck.
var ErrOrderNumberExhausted = errors.New("could not allocate a unique order number")

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in NEW status with a generated human-facing order number.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, items, "", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now created and awaiting confirmation
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the order items, generates an order number and persists the aggregate.
// A duplicate order number aborts only the current attempt; each attempt runs
// in its own transaction because a failed insert poisons the one it ran in.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := h.buildItems(cmd)
	if err != nil {
		return err
	}

	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		err = h.tryCreate(ctx, cmd, items)
		if errors.Is(err, errs.ErrDuplicateOrderNumber) {
			continue
		}
		return err
	}

	return ErrOrderNumberExhausted
}

func (h *CreateOrderCommandHandler) buildItems(cmd CreateOrderCommand) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), spec.ProductID, spec.SKU, spec.Name,
			spec.UnitPrice, spec.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (h *CreateOrderCommandHandler) tryCreate(ctx context.Context, cmd CreateOrderCommand, items []*order.Item) error {
	now := time.Now().UTC()

	aggregate, err := order.NewOrder(cmd.OrderID(), order.GenerateOrderNumber(now),
		cmd.CustomerID(), items, cmd.Priority(), cmd.Notes(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
