package converter

import (
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/domain/entity"
)

// ProgramToResponse converts a ServiceProgram entity to its response DTO
func ProgramToResponse(program *entity.ServiceProgram) *dto.ServiceProgramResponse {
	if program == nil {
		return nil
	}

	response := &dto.ServiceProgramResponse{
		ID:          program.ID,
		Name:        program.Name,
		Description: program.Description,
		IsActive:    program.IsActive,
		CreatedAt:   program.CreatedAt,
		UpdatedAt:   program.UpdatedAt,
	}

	if len(program.Schedules) > 0 {
		response.Schedules = SchedulesToResponses(program.Schedules)
	}

	return response
}

// ProgramsToResponses converts a slice of ServiceProgram entities to
// response DTOs
func ProgramsToResponses(programs []entity.ServiceProgram) []dto.ServiceProgramResponse {
	responses := make([]dto.ServiceProgramResponse, len(programs))
	for i := range programs {
		responses[i] = *ProgramToResponse(&programs[i])
	}
	return responses
}

// AssignmentToResponse converts a ProgramVehicle link to its response DTO
func AssignmentToResponse(assignment *entity.ProgramVehicle) *dto.ProgramVehicleResponse {
	if assignment == nil {
		return nil
	}

	return &dto.ProgramVehicleResponse{
		ServiceProgramID:    assignment.ServiceProgramID,
		VehicleID:           assignment.VehicleID,
		AddedAt:             assignment.AddedAt,
		MileageAtAssignment: assignment.MileageAtAssignment,
	}
}
