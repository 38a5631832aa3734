package converter

import (
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/domain/entity"
)

// VehicleToResponse converts a Vehicle entity to VehicleResponse DTO
func VehicleToResponse(vehicle *entity.Vehicle) *dto.VehicleResponse {
	if vehicle == nil {
		return nil
	}

	return &dto.VehicleResponse{
		ID:           vehicle.ID,
		Name:         vehicle.Name,
		LicensePlate: vehicle.LicensePlate,
		VIN:          vehicle.VIN,
		Make:         vehicle.Make,
		Model:        vehicle.Model,
		Year:         vehicle.Year,
		Status:       string(vehicle.Status),
		Mileage:      vehicle.Mileage,
		CreatedAt:    vehicle.CreatedAt,
		UpdatedAt:    vehicle.UpdatedAt,
	}
}

// VehiclesToResponses converts a slice of Vehicle entities to response DTOs
func VehiclesToResponses(vehicles []entity.Vehicle) []dto.VehicleResponse {
	responses := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = *VehicleToResponse(&vehicles[i])
	}
	return responses
}
