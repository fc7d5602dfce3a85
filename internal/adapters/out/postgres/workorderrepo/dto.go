package workorderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"

	"github.com/google/uuid"
)

// WorkOrderDTO is the database representation of a work order.
type WorkOrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Stage      string         `gorm:"type:varchar(16);not null"`
	State      string         `gorm:"type:varchar(16);not null;index"`
	Tasks      []TaskDTO      `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	Rejections []RejectionDTO `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
	Version    int            `gorm:"not null"`
}

// TableName returns the database table name.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// TaskDTO is the database representation of a work order task.
type TaskDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkOrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Position      int        `gorm:"not null"`
	TaskType      string     `gorm:"type:varchar(16);not null"`
	StationID     *uuid.UUID `gorm:"type:uuid"`
	State         string     `gorm:"type:varchar(16);not null"`
	AssignedTo    string     `gorm:"type:varchar(128)"`
	StartedAt     *time.Time
	FinishedAt    *time.Time
	FailureReason string `gorm:"type:text"`
}

// TableName returns the database table name.
func (TaskDTO) TableName() string {
	return "work_order_tasks"
}

// RejectionDTO is the database representation of a quality rejection.
type RejectionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	Category    string    `gorm:"type:varchar(32);not null"`
	Details     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the database table name.
func (RejectionDTO) TableName() string {
	return "work_order_rejections"
}

// fromDomain converts a domain work order to its database representation.
func fromDomain(aggregate *production.WorkOrder) WorkOrderDTO {
	tasks := make([]TaskDTO, 0, len(aggregate.Tasks()))
	for i, task := range aggregate.Tasks() {
		var stationID *uuid.UUID
		if task.StationID() != nil {
			id := task.StationID().Bytes()
			stationID = &id
		}
		tasks = append(tasks, TaskDTO{
			ID:            task.ID().Bytes(),
			WorkOrderID:   aggregate.ID().Bytes(),
			Position:      i,
			TaskType:      task.Type().String(),
			StationID:     stationID,
			State:         task.State().String(),
			AssignedTo:    task.AssignedTo(),
			StartedAt:     task.StartedAt(),
			FinishedAt:    task.FinishedAt(),
			FailureReason: task.FailureReason(),
		})
	}

	rejections := make([]RejectionDTO, 0, len(aggregate.Rejections()))
	for i, rejection := range aggregate.Rejections() {
		rejections = append(rejections, RejectionDTO{
			ID:          rejection.ID().Bytes(),
			WorkOrderID: aggregate.ID().Bytes(),
			Position:    i,
			Category:    rejection.Category(),
			Details:     rejection.Details(),
			CreatedAt:   rejection.CreatedAt(),
		})
	}

	return WorkOrderDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		Stage:      aggregate.Stage().String(),
		State:      aggregate.State().String(),
		Tasks:      tasks,
		Rejections: rejections,
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Version:    aggregate.Version(),
	}
}

// toDomain converts a database representation back to a domain work order.
func toDomain(dto WorkOrderDTO) (*production.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	tasks := make([]*production.Task, 0, len(dto.Tasks))
	for _, taskDTO := range dto.Tasks {
		task, taskErr := taskToDomain(taskDTO)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, task)
	}

	rejections := make([]*production.Rejection, 0, len(dto.Rejections))
	for _, rejectionDTO := range dto.Rejections {
		rejection, rejectionErr := rejectionToDomain(rejectionDTO)
		if rejectionErr != nil {
			return nil, rejectionErr
		}
		rejections = append(rejections, rejection)
	}

	return production.RestoreWorkOrder(
		id,
		orderID,
		production.Stage(dto.Stage),
		production.WorkOrderState(dto.State),
		tasks,
		rejections,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

func taskToDomain(dto TaskDTO) (*production.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var stationID *kernel.UUID
	if dto.StationID != nil {
		sid, sidErr := kernel.UUIDFromBytes(dto.StationID[:])
		if sidErr != nil {
			return nil, sidErr
		}
		stationID = &sid
	}

	return production.RestoreTask(
		id,
		production.TaskType(dto.TaskType),
		stationID,
		production.TaskState(dto.State),
		dto.AssignedTo,
		dto.StartedAt,
		dto.FinishedAt,
		dto.FailureReason,
	)
}

func rejectionToDomain(dto RejectionDTO) (*production.Rejection, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return production.RestoreRejection(id, dto.Category, dto.Details, dto.CreatedAt)
}
