// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index; it is the authority behind the
// generate-and-retry number allocation.
type OrderDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OrderNumber string       `gorm:"type:varchar(16);not null;uniqueIndex"`
	CustomerID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	Status      string       `gorm:"type:varchar(16);not null;index"`
	Priority    string       `gorm:"type:varchar(8);not null"`
	Notes       string       `gorm:"type:text"`
	Items       []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History     []HistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time    `gorm:"not null"`
	UpdatedAt   time.Time    `gorm:"not null"`
	Version     int          `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Unit price and line total are stored as
// numeric; the line total is a snapshot written once at creation.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	SKU       string          `gorm:"type:varchar(64);not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"type:int;not null"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// HistoryDTO represents one status change. FromStatus is null only on the
// initial entry written at creation.
type HistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"not null"`
	FromStatus *string   `gorm:"type:varchar(16)"`
	ToStatus   string    `gorm:"type:varchar(16);not null"`
	ChangedBy  string    `gorm:"type:varchar(255);not null"`
	Reason     string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for status history entries.
func (HistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			SKU:       item.SKU(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Decimal(),
			Quantity:  item.Quantity(),
			LineTotal: item.LineTotal().Decimal(),
		})
	}

	history := make([]HistoryDTO, 0, len(aggregate.History()))
	for i, entry := range aggregate.History() {
		var fromStatus *string
		if from := entry.FromStatus(); from != nil {
			raw := from.String()
			fromStatus = &raw
		}

		history = append(history, HistoryDTO{
			ID:         entry.ID().Bytes(),
			OrderID:    orderID,
			Position:   i,
			FromStatus: fromStatus,
			ToStatus:   entry.ToStatus().String(),
			ChangedBy:  entry.ChangedBy(),
			Reason:     entry.Reason(),
			CreatedAt:  entry.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		OrderNumber: aggregate.OrderNumber().String(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Status:      aggregate.Status().String(),
		Priority:    string(aggregate.Priority()),
		Notes:       aggregate.Notes(),
		Items:       items,
		History:     history,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := order.NewOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]*order.HistoryEntry, 0, len(dto.History))
	for _, entryDto := range dto.History {
		entry, entryErr := historyToDomain(entryDto)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(id, orderNumber, customerID, order.Status(dto.Status),
		order.Priority(dto.Priority), dto.Notes, items, history,
		dto.CreatedAt, dto.UpdatedAt, dto.Version)
}

// itemToDomain converts an order line DTO to its domain entity.
// Uses RestoreItem so the stored line total is kept as-is.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, productID, dto.SKU, dto.Name, unitPrice, dto.Quantity, lineTotal)
}

// historyToDomain converts a history DTO to its domain entity.
func historyToDomain(dto HistoryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var fromStatus *order.Status
	if dto.FromStatus != nil {
		status := order.Status(*dto.FromStatus)
		fromStatus = &status
	}

	return order.RestoreHistoryEntry(id, fromStatus, order.Status(dto.ToStatus),
		dto.ChangedBy, dto.Reason, dto.CreatedAt)
}
