package converter

import (
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/domain/entity"
)

// ScheduleToResponse converts a ServiceSchedule entity to its response DTO
func ScheduleToResponse(schedule *entity.ServiceSchedule) *dto.ServiceScheduleResponse {
	if schedule == nil {
		return nil
	}

	response := &dto.ServiceScheduleResponse{
		ID:                  schedule.ID,
		ServiceProgramID:    schedule.ServiceProgramID,
		Name:                schedule.Name,
		TimeIntervalValue:   schedule.TimeIntervalValue,
		TimeBufferValue:     schedule.TimeBufferValue,
		MileageInterval:     schedule.MileageInterval,
		MileageBuffer:       schedule.MileageBuffer,
		FirstServiceMileage: schedule.FirstServiceMileage,
		IsActive:            schedule.IsActive,
		CreatedAt:           schedule.CreatedAt,
		UpdatedAt:           schedule.UpdatedAt,
	}

	if schedule.TimeIntervalUnit != nil {
		response.TimeIntervalUnit = string(*schedule.TimeIntervalUnit)
	}
	if schedule.TimeBufferUnit != nil {
		response.TimeBufferUnit = string(*schedule.TimeBufferUnit)
	}
	if schedule.FirstServiceDate != nil {
		formatted := schedule.FirstServiceDate.Format("2006-01-02")
		response.FirstServiceDate = &formatted
	}

	if len(schedule.Tasks) > 0 {
		response.Tasks = TasksToResponses(schedule.Tasks)
	}

	return response
}

// SchedulesToResponses converts a slice of ServiceSchedule entities to
// response DTOs
func SchedulesToResponses(schedules []entity.ServiceSchedule) []dto.ServiceScheduleResponse {
	responses := make([]dto.ServiceScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return responses
}
