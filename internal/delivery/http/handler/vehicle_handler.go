package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/usecase"
	"fleet-maintenance/pkg/response"
	"fleet-maintenance/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VehicleHandler struct {
	vehicleUsecase usecase.VehicleUsecase
	validator      *validator.CustomValidator
}

func NewVehicleHandler(vehicleUsecase usecase.VehicleUsecase, validator *validator.CustomValidator) *VehicleHandler {
	return &VehicleHandler{
		vehicleUsecase: vehicleUsecase,
		validator:      validator,
	}
}

// Create handles vehicle registration
// @Summary Register a new vehicle
// @Description Register a fleet vehicle
// @Tags Vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Create Vehicle Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /vehicles [post]
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vehicle, err := h.vehicleUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrLicensePlateExists:
			response.Error(w, http.StatusConflict, "License plate already registered", nil)
		default:
			response.InternalServerError(w, "Failed to create vehicle")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vehicle created successfully", vehicle)
}

// GetAll handles listing vehicles
// @Summary Get all vehicles
// @Description Get all vehicles with pagination
// @Tags Vehicles
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /vehicles [get]
func (h *VehicleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	vehicles, err := h.vehicleUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get vehicles")
		return
	}

	response.Success(w, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

// GetByID handles getting a vehicle by ID
// @Summary Get vehicle by ID
// @Description Get a vehicle by its ID
// @Tags Vehicles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
		return
	}

	vehicle, err := h.vehicleUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		default:
			response.InternalServerError(w, "Failed to get vehicle")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

// Update handles vehicle update
// @Summary Update a vehicle
// @Description Update vehicle name, status or mileage
// @Tags Vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body dto.UpdateVehicleRequest true "Update Vehicle Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
		return
	}

	var req dto.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vehicle, err := h.vehicleUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		default:
			response.InternalServerError(w, "Failed to update vehicle")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// Delete handles vehicle removal
// @Summary Delete a vehicle
// @Description Delete a vehicle by its ID
// @Tags Vehicles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
		return
	}

	if err := h.vehicleUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		default:
			response.InternalServerError(w, "Failed to delete vehicle")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vehicle deleted successfully", nil)
}
