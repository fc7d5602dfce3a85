package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order and production engines over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	transitionOrderHandler   commands.TransitionOrderCommandHandler
	createWorkOrderHandler   commands.CreateWorkOrderCommandHandler
	addTaskHandler           commands.AddTaskCommandHandler
	startTaskHandler         commands.StartTaskCommandHandler
	completeTaskHandler      commands.CompleteTaskCommandHandler
	failTaskHandler          commands.FailTaskCommandHandler
	recordRejectionHandler   commands.RecordRejectionCommandHandler
	productionOutcomeHandler commands.ProductionOutcomeCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getWorkOrderHandler queries.GetWorkOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	createWorkOrderHandler commands.CreateWorkOrderCommandHandler,
	addTaskHandler commands.AddTaskCommandHandler,
	startTaskHandler commands.StartTaskCommandHandler,
	completeTaskHandler commands.CompleteTaskCommandHandler,
	failTaskHandler commands.FailTaskCommandHandler,
	recordRejectionHandler commands.RecordRejectionCommandHandler,
	productionOutcomeHandler commands.ProductionOutcomeCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getWorkOrderHandler queries.GetWorkOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		transitionOrderHandler:   transitionOrderHandler,
		createWorkOrderHandler:   createWorkOrderHandler,
		addTaskHandler:           addTaskHandler,
		startTaskHandler:         startTaskHandler,
		completeTaskHandler:      completeTaskHandler,
		failTaskHandler:          failTaskHandler,
		recordRejectionHandler:   recordRejectionHandler,
		productionOutcomeHandler: productionOutcomeHandler,
		getOrderHandler:          getOrderHandler,
		getWorkOrderHandler:      getWorkOrderHandler,
	}
}

// RegisterRoutes attaches all fulfillment endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/transition", s.TransitionOrder)

	api.POST("/work-orders", s.CreateWorkOrder)
	api.GET("/work-orders/:id", s.GetWorkOrder)
	api.POST("/work-orders/:id/tasks", s.AddTask)
	api.POST("/work-orders/:id/tasks/:taskID/start", s.StartTask)
	api.POST("/work-orders/:id/tasks/:taskID/complete", s.CompleteTask)
	api.POST("/work-orders/:id/tasks/:taskID/fail", s.FailTask)
	api.POST("/work-orders/:id/rejections", s.RecordRejection)
	api.POST("/work-orders/:id/outcome", s.ProductionOutcome)
}

// CreateOrder handles POST /api/v1/orders - registers a new customer order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body createOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	items := make([]commands.ItemSpec, 0, len(body.Items))
	for _, line := range body.Items {
		spec, specErr := line.toSpec()
		if specErr != nil {
			return badRequest(ctx, "Invalid item: "+specErr.Error())
		}
		items = append(items, spec)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items,
		order.Priority(body.Priority), body.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// TransitionOrder handles POST /api/v1/orders/:id/transition.
// The actor defaults to the system identity, suffixed with the gateway's
// request id when one is present, so history stays attributable.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body transitionOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, order.Status(body.To),
		s.actor(ctx, body.ChangedBy), body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateWorkOrder handles POST /api/v1/work-orders.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var body createWorkOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	workOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(workOrderID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid work order data: "+err.Error())
	}

	if handleErr := s.createWorkOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: workOrderID.String()})
}

// GetWorkOrder handles GET /api/v1/work-orders/:id.
func (s *Server) GetWorkOrder(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	query, err := queries.NewGetWorkOrderQuery(workOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getWorkOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrderResponse(response))
}

// AddTask handles POST /api/v1/work-orders/:id/tasks.
func (s *Server) AddTask(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var body addTaskRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var stationID *kernel.UUID
	if body.StationID != "" {
		parsed, parseErr := kernel.UUIDFromString(body.StationID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid station id: "+parseErr.Error())
		}
		stationID = &parsed
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewAddTaskCommand(workOrderID, taskID,
		production.TaskType(body.TaskType), stationID)
	if err != nil {
		return badRequest(ctx, "Invalid task data: "+err.Error())
	}

	if handleErr := s.addTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: taskID.String()})
}

// StartTask handles POST /api/v1/work-orders/:id/tasks/:taskID/start.
func (s *Server) StartTask(ctx echo.Context) error {
	workOrderID, taskID, err := taskIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body startTaskRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartTaskCommand(workOrderID, taskID, body.AssignedTo)
	if err != nil {
		return badRequest(ctx, "Invalid task data: "+err.Error())
	}

	if handleErr := s.startTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteTask handles POST /api/v1/work-orders/:id/tasks/:taskID/complete.
func (s *Server) CompleteTask(ctx echo.Context) error {
	workOrderID, taskID, err := taskIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteTaskCommand(workOrderID, taskID)
	if err != nil {
		return badRequest(ctx, "Invalid task data: "+err.Error())
	}

	if handleErr := s.completeTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailTask handles POST /api/v1/work-orders/:id/tasks/:taskID/fail.
func (s *Server) FailTask(ctx echo.Context) error {
	workOrderID, taskID, err := taskIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body failTaskRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFailTaskCommand(workOrderID, taskID, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid task data: "+err.Error())
	}

	if handleErr := s.failTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordRejection handles POST /api/v1/work-orders/:id/rejections.
func (s *Server) RecordRejection(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var body recordRejectionRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	rejectionID := kernel.NewUUID()
	cmd, err := commands.NewRecordRejectionCommand(workOrderID, rejectionID, body.Category, body.Details)
	if err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	if handleErr := s.recordRejectionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: rejectionID.String()})
}

// ProductionOutcome handles POST /api/v1/work-orders/:id/outcome.
// Lets the gateway (or an operator) push a terminal work order's outcome to
// the order side immediately instead of waiting for the reconciliation job.
func (s *Server) ProductionOutcome(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	cmd, err := commands.NewProductionOutcomeCommand(workOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.productionOutcomeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actor resolves the history actor for a request. Explicit actors win;
// otherwise the system identity is used, tagged with the gateway's
// correlation id when one was forwarded.
func (s *Server) actor(ctx echo.Context, changedBy string) string {
	if changedBy != "" {
		return changedBy
	}
	if requestID := ctx.Request().Header.Get(echo.HeaderXRequestID); requestID != "" {
		return order.SystemActor + ":" + requestID
	}
	return order.SystemActor
}

func taskIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid work order id")
	}
	taskID, err := kernel.UUIDFromString(ctx.Param("taskID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid task id")
	}
	return workOrderID, taskID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps the error taxonomy onto HTTP status codes: malformed input
// to 400, unknown ids to 404, mis-sequenced transitions to 422, duplicate and
// divergence conflicts to 409, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrTerminalState):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrDuplicateWorkOrder),
		errors.Is(err, errs.ErrDuplicateOrderNumber),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
