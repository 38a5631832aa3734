package handler

import (
	"encoding/json"
	"net/http"

	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/usecase"
	"fleet-maintenance/pkg/response"
	"fleet-maintenance/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ServiceScheduleHandler struct {
	scheduleUsecase usecase.ServiceScheduleUsecase
	validator       *validator.CustomValidator
}

func NewServiceScheduleHandler(scheduleUsecase usecase.ServiceScheduleUsecase, validator *validator.CustomValidator) *ServiceScheduleHandler {
	return &ServiceScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// Create handles service schedule creation
// @Summary Create a service schedule
// @Description Create a recurring maintenance rule with a time axis, a mileage axis, or both
// @Tags ServiceSchedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceScheduleRequest true "Create Schedule Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /service-schedules [post]
func (h *ServiceScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Service program not found")
		case usecase.ErrScheduleHasNoAxis, usecase.ErrIncompleteTimeAxis, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create service schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service schedule created successfully", schedule)
}

// GetByID handles getting a service schedule by ID
// @Summary Get service schedule by ID
// @Description Get a schedule with its tasks
// @Tags ServiceSchedules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-schedules/{id} [get]
func (h *ServiceScheduleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	schedule, err := h.scheduleUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Service schedule not found")
		default:
			response.InternalServerError(w, "Failed to get service schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service schedule retrieved successfully", schedule)
}

// GetByProgram handles listing schedules in a program
// @Summary Get schedules by program
// @Description List the schedules belonging to a service program
// @Tags ServiceSchedules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-programs/{id}/schedules [get]
func (h *ServiceScheduleHandler) GetByProgram(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	programID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid program ID", nil)
		return
	}

	schedules, err := h.scheduleUsecase.GetByProgram(r.Context(), programID)
	if err != nil {
		switch err {
		case usecase.ErrProgramNotFound:
			response.NotFound(w, "Service program not found")
		default:
			response.InternalServerError(w, "Failed to get schedules")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

// Update handles service schedule update
// @Summary Update a service schedule
// @Description Update a schedule's recurrence rules
// @Tags ServiceSchedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body dto.UpdateServiceScheduleRequest true "Update Schedule Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-schedules/{id} [put]
func (h *ServiceScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	var req dto.UpdateServiceScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Service schedule not found")
		case usecase.ErrScheduleHasNoAxis, usecase.ErrIncompleteTimeAxis, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update service schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service schedule updated successfully", schedule)
}

// Delete handles service schedule removal
// @Summary Delete a service schedule
// @Description Delete a schedule by its ID
// @Tags ServiceSchedules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-schedules/{id} [delete]
func (h *ServiceScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	if err := h.scheduleUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Service schedule not found")
		default:
			response.InternalServerError(w, "Failed to delete service schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service schedule deleted successfully", nil)
}

// AttachTask handles attaching a task to a schedule
// @Summary Attach a task to a schedule
// @Description Link a maintenance task to a schedule
// @Tags ServiceSchedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body dto.AttachTaskRequest true "Attach Task Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /service-schedules/{id}/tasks [post]
func (h *ServiceScheduleHandler) AttachTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	var req dto.AttachTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.scheduleUsecase.AttachTask(r.Context(), scheduleID, &req); err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Service schedule not found")
		case usecase.ErrTaskNotFound:
			response.NotFound(w, "Service task not found")
		case usecase.ErrTaskAlreadyAttached:
			response.Error(w, http.StatusConflict, "Task is already attached to this schedule", nil)
		default:
			response.InternalServerError(w, "Failed to attach task")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Task attached successfully", nil)
}

// DetachTask handles detaching a task from a schedule
// @Summary Detach a task from a schedule
// @Description Unlink a maintenance task from a schedule
// @Tags ServiceSchedules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Schedule ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-schedules/{id}/tasks/{taskId} [delete]
func (h *ServiceScheduleHandler) DetachTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}
	taskID, err := uuid.Parse(vars["taskId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid task ID", nil)
		return
	}

	if err := h.scheduleUsecase.DetachTask(r.Context(), scheduleID, taskID); err != nil {
		switch err {
		case usecase.ErrTaskNotAttached:
			response.NotFound(w, "Task is not attached to this schedule")
		default:
			response.InternalServerError(w, "Failed to detach task")
		}
		return
	}

	response.Success(w, http.StatusOK, "Task detached successfully", nil)
}

// GetTasks handles listing a schedule's tasks
// @Summary Get schedule tasks
// @Description List the tasks attached to a schedule
// @Tags ServiceSchedules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-schedules/{id}/tasks [get]
func (h *ServiceScheduleHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	tasks, err := h.scheduleUsecase.GetTasks(r.Context(), scheduleID)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Service schedule not found")
		default:
			response.InternalServerError(w, "Failed to get tasks")
		}
		return
	}

	response.Success(w, http.StatusOK, "Tasks retrieved successfully", tasks)
}
