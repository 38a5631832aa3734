package handler

import (
	"context"
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

type ServiceReminderHandler struct {
	reminderUsecase usecase.ServiceReminderUsecase
	validator       *validator.CustomValidator
}

func NewServiceReminderHandler(reminderUsecase usecase.ServiceReminderUsecase, validator *validator.CustomValidator) *ServiceReminderHandler {
	return &ServiceReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
	}
}

// Create handles materializing a persisted reminder
// @Summary Create a service reminder
// @Description Persist a trackable reminder with its own lifecycle
// @Tags ServiceReminders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceReminderRequest true "Create Reminder Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-reminders [post]
func (h *ServiceReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reminder, err := h.reminderUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Service schedule not found")
		case usecase.ErrReminderNeedsDue, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create service reminder")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service reminder created successfully", reminder)
}

// GetAll handles listing persisted reminders
// @Summary Get all service reminders
// @Description Get persisted reminders, optionally filtered by vehicle and status
// @Tags ServiceReminders
// @Security BearerAuth
// @Produce json
// @Param vehicle_id query string false "Filter by vehicle ID"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /service-reminders [get]
func (h *ServiceReminderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var vehicleID *uuid.UUID
	if raw := query.Get("vehicle_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
			return
		}
		vehicleID = &parsed
	}

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	reminders, err := h.reminderUsecase.GetAll(r.Context(), vehicleID, query.Get("status"), page, limit)
	if err != nil {
		switch err {
		case usecase.ErrInvalidReminderStatus:
			response.Error(w, http.StatusBadRequest, "Invalid reminder status filter", nil)
		default:
			response.InternalServerError(w, "Failed to get service reminders")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service reminders retrieved successfully", reminders)
}

// GetByID handles getting a reminder by ID
// @Summary Get service reminder by ID
// @Description Get a persisted reminder by its ID
// @Tags ServiceReminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-reminders/{id} [get]
func (h *ServiceReminderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reminder ID", nil)
		return
	}

	reminder, err := h.reminderUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrReminderNotFound:
			response.NotFound(w, "Service reminder not found")
		default:
			response.InternalServerError(w, "Failed to get service reminder")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service reminder retrieved successfully", reminder)
}

// Complete handles marking a reminder as completed
// @Summary Complete a service reminder
// @Description Mark an open reminder as completed
// @Tags ServiceReminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /service-reminders/{id}/complete [post]
func (h *ServiceReminderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.reminderUsecase.Complete, "Service reminder completed successfully")
}

// Cancel handles cancelling a reminder
// @Summary Cancel a service reminder
// @Description Mark an open reminder as cancelled
// @Tags ServiceReminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /service-reminders/{id}/cancel [post]
func (h *ServiceReminderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.close(w, r, h.reminderUsecase.Cancel, "Service reminder cancelled successfully")
}

func (h *ServiceReminderHandler) close(w http.ResponseWriter, r *http.Request, transition func(context.Context, uuid.UUID) (*dto.ServiceReminderResponse, error), message string) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reminder ID", nil)
		return
	}

	reminder, err := transition(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrReminderNotFound:
			response.NotFound(w, "Service reminder not found")
		case usecase.ErrReminderAlreadyClosed:
			response.Error(w, http.StatusConflict, "Service reminder is already completed or cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to update service reminder")
		}
		return
	}

	response.Success(w, http.StatusOK, message, reminder)
}

// Delete handles removing a persisted reminder
// @Summary Delete a service reminder
// @Description Delete a persisted reminder by its ID
// @Tags ServiceReminders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-reminders/{id} [delete]
func (h *ServiceReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reminder ID", nil)
		return
	}

	if err := h.reminderUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrReminderNotFound:
			response.NotFound(w, "Service reminder not found")
		default:
			response.InternalServerError(w, "Failed to delete service reminder")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service reminder deleted successfully", nil)
}
