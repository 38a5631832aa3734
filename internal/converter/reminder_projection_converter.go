package converter

import (
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/reminder"
)

// ProjectionToResponse converts a computed reminder projection to its
// response DTO. Due dates are rendered as YYYY-MM-DD.
func ProjectionToResponse(p *reminder.Projection) *dto.ReminderProjectionResponse {
	if p == nil {
		return nil
	}

	tasks := make([]dto.ProjectedTaskResponse, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = dto.ProjectedTaskResponse{
			ID:                   t.ID,
			Name:                 t.Name,
			Category:             string(t.Category),
			EstimatedLabourHours: t.EstimatedLabourHours,
			EstimatedCost:        t.EstimatedCost,
		}
	}

	response := &dto.ReminderProjectionResponse{
		VehicleID:           p.VehicleID,
		VehicleName:         p.VehicleName,
		ServiceProgramID:    p.ServiceProgramID,
		ServiceProgramName:  p.ServiceProgramName,
		ServiceScheduleID:   p.ServiceScheduleID,
		ServiceScheduleName: p.ServiceScheduleName,
		Tasks:               tasks,
		TaskCount:           p.TaskCount,
		TotalLabourHours:    p.TotalLabourHours,
		TotalCost:           p.TotalCost,
		DueMileage:          p.DueMileage,
		Status:              string(p.Status),
		Priority:            string(p.Priority),
		OccurrenceNumber:    p.OccurrenceNumber,
		IsTimeBased:         p.TimeBased,
		IsMileageBased:      p.MileageBased,
		CurrentMileage:      p.CurrentMileage,
		MileageVariance:     p.MileageVariance,
		DaysUntilDue:        p.DaysUntilDue,
	}

	if p.DueDate != nil {
		due := p.DueDate.Format("2006-01-02")
		response.DueDate = &due
	}

	return response
}

// ProjectionPageToResponse converts a page of projections to the paged
// response DTO
func ProjectionPageToResponse(page *reminder.Page) *dto.ReminderProjectionPageResponse {
	if page == nil {
		return nil
	}

	items := make([]dto.ReminderProjectionResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ProjectionToResponse(&page.Items[i])
	}

	return &dto.ReminderProjectionPageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
