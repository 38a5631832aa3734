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

type ServiceProgramHandler struct {
	programUsecase usecase.ServiceProgramUsecase
	validator      *validator.CustomValidator
}

func NewServiceProgramHandler(programUsecase usecase.ServiceProgramUsecase, validator *validator.CustomValidator) *ServiceProgramHandler {
	return &ServiceProgramHandler{
		programUsecase: programUsecase,
		validator:      validator,
	}
}

// Create handles service program creation
// @Summary Create a service program
// @Description Create a maintenance program grouping schedules and vehicles
// @Tags ServicePrograms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceProgramRequest true "Create Program Request"
// @Success 201 {object} response.Response
// @Router /service-programs [post]
func (h *ServiceProgramHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	program, err := h.programUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create service program")
		return
	}

	response.Success(w, http.StatusCreated, "Service program created successfully", program)
}

// GetAll handles listing service programs
// @Summary Get all service programs
// @Description Get all service programs with pagination
// @Tags ServicePrograms
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /service-programs [get]
func (h *ServiceProgramHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	programs, err := h.programUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get service programs")
		return
	}

	response.Success(w, http.StatusOK, "Service programs retrieved successfully", programs)
}

// GetByID handles getting a service program by ID
// @Summary Get service program by ID
// @Description Get a service program with its schedules
// @Tags ServicePrograms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-programs/{id} [get]
func (h *ServiceProgramHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program ID", nil)
		return
	}

	program, err := h.programUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Service program not found")
		default:
			response.InternalServerError(w, "Failed to get service program")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service program retrieved successfully", program)
}

// Update handles service program update
// @Summary Update a service program
// @Description Update program name, description or active flag
// @Tags ServicePrograms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param request body dto.UpdateServiceProgramRequest true "Update Program Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-programs/{id} [put]
func (h *ServiceProgramHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program ID", nil)
		return
	}

	var req dto.UpdateServiceProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	program, err := h.programUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Service program not found")
		default:
			response.InternalServerError(w, "Failed to update service program")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service program updated successfully", program)
}

// Delete handles service program removal
// @Summary Delete a service program
// @Description Delete a service program by its ID
// @Tags ServicePrograms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-programs/{id} [delete]
func (h *ServiceProgramHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program ID", nil)
		return
	}

	if err := h.programUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Service program not found")
		default:
			response.InternalServerError(w, "Failed to delete service program")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service program deleted successfully", nil)
}

// AssignVehicle handles enrolling a vehicle in a program
// @Summary Assign a vehicle to a program
// @Description Enroll a vehicle; the assignment time anchors time-based recurrence
// @Tags ServicePrograms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param request body dto.AssignVehicleRequest true "Assign Vehicle Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /service-programs/{id}/vehicles [post]
func (h *ServiceProgramHandler) AssignVehicle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	programID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program ID", nil)
		return
	}

	var req dto.AssignVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assignment, err := h.programUsecase.AssignVehicle(r.Context(), programID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Service program not found")
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		case usecase.ErrVehicleAlreadyAssigned:
			response.Error(w, http.StatusConflict, "Vehicle is already assigned to this program", nil)
		default:
			response.InternalServerError(w, "Failed to assign vehicle")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vehicle assigned successfully", assignment)
}

// UnassignVehicle handles removing a vehicle from a program
// @Summary Unassign a vehicle from a program
// @Description Remove a vehicle from a program
// @Tags ServicePrograms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Program ID"
// @Param vehicleId path string true "Vehicle ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-programs/{id}/vehicles/{vehicleId} [delete]
func (h *ServiceProgramHandler) UnassignVehicle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	programID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program ID", nil)
		return
	}
	vehicleID, err := uuid.Parse(vars["vehicleId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
		return
	}

	if err := h.programUsecase.UnassignVehicle(r.Context(), programID, vehicleID); err != nil {
		switch err {
		case usecase.ErrVehicleNotAssigned:
			response.NotFound(w, "Vehicle is not assigned to this program")
		default:
			response.InternalServerError(w, "Failed to unassign vehicle")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vehicle unassigned successfully", nil)
}

// GetAssignments handles listing a program's vehicle assignments
// @Summary Get program vehicle assignments
// @Description List the vehicles enrolled in a program
// @Tags ServicePrograms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-programs/{id}/vehicles [get]
func (h *ServiceProgramHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	programID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program ID", nil)
		return
	}

	assignments, err := h.programUsecase.GetAssignments(r.Context(), programID)
	if err != nil {
		switch err {
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Service program not found")
		default:
			response.InternalServerError(w, "Failed to get assignments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", assignments)
}
