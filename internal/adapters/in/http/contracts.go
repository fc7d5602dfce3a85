package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
)

// Request bodies. The gateway forwards these verbatim from clients, so
// every field arrives as JSON and is validated again by the commands.

type createOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []orderItemRequest `json:"items"`
	Priority   string             `json:"priority"`
	Notes      string             `json:"notes"`
}

type orderItemRequest struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

func (r orderItemRequest) toSpec() (commands.ItemSpec, error) {
	productID, err := kernel.UUIDFromString(r.ProductID)
	if err != nil {
		return commands.ItemSpec{}, err
	}

	unitPrice, err := kernel.MoneyFromString(r.UnitPrice)
	if err != nil {
		return commands.ItemSpec{}, err
	}

	return commands.ItemSpec{
		ProductID: productID,
		SKU:       r.SKU,
		Name:      r.Name,
		UnitPrice: unitPrice,
		Quantity:  r.Quantity,
	}, nil
}

type transitionOrderRequest struct {
	To        string `json:"to"`
	ChangedBy string `json:"changed_by"`
	Reason    string `json:"reason"`
}

type createWorkOrderRequest struct {
	OrderID string `json:"order_id"`
}

type addTaskRequest struct {
	TaskType  string `json:"task_type"`
	StationID string `json:"station_id"`
}

type startTaskRequest struct {
	AssignedTo string `json:"assigned_to"`
}

type failTaskRequest struct {
	Reason string `json:"reason"`
}

type recordRejectionRequest struct {
	Category string `json:"category"`
	Details  string `json:"details"`
}

// Response bodies.

type idResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderResponse struct {
	ID          string                 `json:"id"`
	OrderNumber string                 `json:"order_number"`
	CustomerID  string                 `json:"customer_id"`
	Status      string                 `json:"status"`
	Priority    string                 `json:"priority"`
	Notes       string                 `json:"notes,omitempty"`
	Total       string                 `json:"total"`
	Items       []orderItemResponse    `json:"items"`
	History     []orderHistoryResponse `json:"history"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type orderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type orderHistoryResponse struct {
	FromStatus *string   `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type workOrderResponse struct {
	ID         string                    `json:"id"`
	OrderID    string                    `json:"order_id"`
	Stage      string                    `json:"stage"`
	State      string                    `json:"state"`
	Tasks      []workOrderTaskResponse   `json:"tasks"`
	Rejections []workOrderRejectResponse `json:"rejections"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

type workOrderTaskResponse struct {
	ID            string     `json:"id"`
	TaskType      string     `json:"task_type"`
	StationID     *string    `json:"station_id,omitempty"`
	State         string     `json:"state"`
	AssignedTo    string     `json:"assigned_to,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	FailureReason string     `json:"failure_reason,omitempty"`
}

type workOrderRejectResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

func toOrderResponse(model queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, orderItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			SKU:       item.SKU,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.StringFixed(2),
		})
	}

	history := make([]orderHistoryResponse, 0, len(model.History))
	for _, entry := range model.History {
		history = append(history, orderHistoryResponse{
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			ChangedBy:  entry.ChangedBy,
			Reason:     entry.Reason,
			CreatedAt:  entry.CreatedAt,
		})
	}

	return orderResponse{
		ID:          model.ID.String(),
		OrderNumber: model.OrderNumber,
		CustomerID:  model.CustomerID.String(),
		Status:      model.Status,
		Priority:    model.Priority,
		Notes:       model.Notes,
		Total:       model.Total.StringFixed(2),
		Items:       items,
		History:     history,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func toWorkOrderResponse(model queries.GetWorkOrderQueryResponse) workOrderResponse {
	tasks := make([]workOrderTaskResponse, 0, len(model.Tasks))
	for _, task := range model.Tasks {
		var stationID *string
		if task.StationID != nil {
			raw := task.StationID.String()
			stationID = &raw
		}

		tasks = append(tasks, workOrderTaskResponse{
			ID:            task.ID.String(),
			TaskType:      task.TaskType,
			StationID:     stationID,
			State:         task.State,
			AssignedTo:    task.AssignedTo,
			StartedAt:     task.StartedAt,
			FinishedAt:    task.FinishedAt,
			FailureReason: task.FailureReason,
		})
	}

	rejections := make([]workOrderRejectResponse, 0, len(model.Rejections))
	for _, rejection := range model.Rejections {
		rejections = append(rejections, workOrderRejectResponse{
			ID:        rejection.ID.String(),
			Category:  rejection.Category,
			Details:   rejection.Details,
			CreatedAt: rejection.CreatedAt,
		})
	}

	return workOrderResponse{
		ID:         model.ID.String(),
		OrderID:    model.OrderID.String(),
		Stage:      model.Stage,
		State:      model.State,
		Tasks:      tasks,
		Rejections: rejections,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
