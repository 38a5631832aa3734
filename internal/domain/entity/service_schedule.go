package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeUnit is the calendar unit of a schedule's time interval or buffer
type TimeUnit string

const (
	TimeUnitHour TimeUnit = "hour"
	TimeUnitDay  TimeUnit = "day"
	TimeUnitWeek TimeUnit = "week"
)

// IsValid reports whether the unit is one of the supported calendar units
func (u TimeUnit) IsValid() bool {
	switch u {
	case TimeUnitHour, TimeUnitDay, TimeUnitWeek:
		return true
	}
	return false
}

// ServiceSchedule defines a recurring maintenance rule within a service
// program. A schedule carries a time axis, a mileage axis, or both; an
// axis's fields are populated together or not at all.
type ServiceSchedule struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ServiceProgramID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_program_id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`

	// Time axis
	TimeIntervalValue *int       `json:"time_interval_value,omitempty"`
	TimeIntervalUnit  *TimeUnit  `gorm:"type:varchar(10)" json:"time_interval_unit,omitempty"`
	TimeBufferValue   *int       `json:"time_buffer_value,omitempty"`
	TimeBufferUnit    *TimeUnit  `gorm:"type:varchar(10)" json:"time_buffer_unit,omitempty"`
	FirstServiceDate  *time.Time `json:"first_service_date,omitempty"`

	// Mileage axis
	MileageInterval     *float64 `json:"mileage_interval,omitempty"`
	MileageBuffer       *float64 `json:"mileage_buffer,omitempty"`
	FirstServiceMileage *float64 `json:"first_service_mileage,omitempty"`

	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Program ServiceProgram `gorm:"foreignKey:ServiceProgramID" json:"program,omitempty"`
	Tasks   []ServiceTask  `gorm:"many2many:schedule_tasks;" json:"tasks,omitempty"`
}

func (ServiceSchedule) TableName() string {
	return "service_schedules"
}

// HasTimeAxis checks if the time-based recurrence rule is populated
func (s *ServiceSchedule) HasTimeAxis() bool {
	return s.TimeIntervalValue != nil && *s.TimeIntervalValue > 0 &&
		s.TimeIntervalUnit != nil && s.TimeIntervalUnit.IsValid()
}

// HasMileageAxis checks if the mileage-based recurrence rule is populated
func (s *ServiceSchedule) HasMileageAxis() bool {
	return s.MileageInterval != nil && *s.MileageInterval > 0
}

// HasTimeBuffer checks if a due-soon lead time is configured
func (s *ServiceSchedule) HasTimeBuffer() bool {
	return s.TimeBufferValue != nil && *s.TimeBufferValue > 0 &&
		s.TimeBufferUnit != nil && s.TimeBufferUnit.IsValid()
}

// HasMileageBuffer checks if a due-soon mileage lead is configured
func (s *ServiceSchedule) HasMileageBuffer() bool {
	return s.MileageBuffer != nil && *s.MileageBuffer > 0
}

// ScheduleTask links a maintenance task to a schedule
type ScheduleTask struct {
	ServiceScheduleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"service_schedule_id"`
	ServiceTaskID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"service_task_id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ScheduleTask) TableName() string {
	return "schedule_tasks"
}
