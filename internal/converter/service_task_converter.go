package converter

import (
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/domain/entity"
)

// TaskToResponse converts a ServiceTask entity to its response DTO
func TaskToResponse(task *entity.ServiceTask) *dto.ServiceTaskResponse {
	if task == nil {
		return nil
	}

	return &dto.ServiceTaskResponse{
		ID:                   task.ID,
		Name:                 task.Name,
		Description:          task.Description,
		Category:             string(task.Category),
		EstimatedLabourHours: task.EstimatedLabourHours,
		EstimatedCost:        task.EstimatedCost,
		CreatedAt:            task.CreatedAt,
		UpdatedAt:            task.UpdatedAt,
	}
}

// TasksToResponses converts a slice of ServiceTask entities to response DTOs
func TasksToResponses(tasks []entity.ServiceTask) []dto.ServiceTaskResponse {
	responses := make([]dto.ServiceTaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *TaskToResponse(&tasks[i])
	}
	return responses
}
