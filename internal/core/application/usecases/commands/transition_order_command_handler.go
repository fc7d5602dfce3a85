package commands

import (
	"context"
	"time"
)

// TransitionOrderCommandHandler handles explicit order lifecycle transitions.
// The aggregate decides legality; the handler only loads, applies and saves.
// A request for the status the order already holds is absorbed as a no-op so
// retried calls stay safe.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for order transition operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Loads the order, applies the transition, and persists only when the
// aggregate actually changed.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := aggregate.TransitionTo(cmd.To(), cmd.ChangedBy(), cmd.Reason(), time.Now().UTC())
	if err != nil {
		return err
	}

	if changed {
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
