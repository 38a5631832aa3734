package converter

import (
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/domain/entity"
)

// ReminderToResponse converts a persisted ServiceReminder to its response
// DTO. Vehicle and schedule names are included when the relationships are
// preloaded.
func ReminderToResponse(reminder *entity.ServiceReminder) *dto.ServiceReminderResponse {
	if reminder == nil {
		return nil
	}

	response := &dto.ServiceReminderResponse{
		ID:                reminder.ID,
		VehicleID:         reminder.VehicleID,
		VehicleName:       reminder.Vehicle.Name,
		ServiceScheduleID: reminder.ServiceScheduleID,
		ScheduleName:      reminder.Schedule.Name,
		DueMileage:        reminder.DueMileage,
		Status:            string(reminder.Status),
		Notes:             reminder.Notes,
		CompletedAt:       reminder.CompletedAt,
		CancelledAt:       reminder.CancelledAt,
		CreatedAt:         reminder.CreatedAt,
		UpdatedAt:         reminder.UpdatedAt,
	}

	if reminder.DueDate != nil {
		due := reminder.DueDate.Format("2006-01-02")
		response.DueDate = &due
	}

	return response
}

// RemindersToResponses converts a slice of ServiceReminder entities to
// response DTOs
func RemindersToResponses(reminders []entity.ServiceReminder) []dto.ServiceReminderResponse {
	responses := make([]dto.ServiceReminderResponse, len(reminders))
	for i := range reminders {
		responses[i] = *ReminderToResponse(&reminders[i])
	}
	return responses
}
