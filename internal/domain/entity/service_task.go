package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskCategory classifies a maintenance task
type TaskCategory string

const (
	TaskCategoryPreventive TaskCategory = "preventive"
	TaskCategoryCorrective TaskCategory = "corrective"
	TaskCategoryInspection TaskCategory = "inspection"
	TaskCategoryOther      TaskCategory = "other"
)

// ServiceTask represents a unit of maintenance work with labour and cost
// estimates
type ServiceTask struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                 string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Description          string          `gorm:"type:text" json:"description,omitempty"`
	Category             TaskCategory    `gorm:"type:varchar(20);not null;default:'preventive'" json:"category"`
	EstimatedLabourHours float64         `gorm:"not null;default:0" json:"estimated_labour_hours"`
	EstimatedCost        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"estimated_cost"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Schedules []ServiceSchedule `gorm:"many2many:schedule_tasks;" json:"schedules,omitempty"`
}

func (ServiceTask) TableName() string {
	return "service_tasks"
}
