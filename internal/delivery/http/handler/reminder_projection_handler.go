package handler

import (
	"net/http"
	"strconv"

	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/usecase"
	"fleet-maintenance/pkg/response"
	"fleet-maintenance/pkg/validator"
)

type ReminderProjectionHandler struct {
	projectionUsecase usecase.ReminderProjectionUsecase
	validator         *validator.CustomValidator
}

func NewReminderProjectionHandler(projectionUsecase usecase.ReminderProjectionUsecase, validator *validator.CustomValidator) *ReminderProjectionHandler {
	return &ReminderProjectionHandler{
		projectionUsecase: projectionUsecase,
		validator:         validator,
	}
}

// GetProjections handles the virtual reminder projection query
// @Summary Get projected service reminders
// @Description Compute upcoming, due-soon and overdue reminder occurrences across the fleet
// @Tags ServiceReminders
// @Security BearerAuth
// @Produce json
// @Param search query string false "Case-insensitive match on vehicle, schedule, program and task names"
// @Param sort_by query string false "Sort key: vehicle_name, schedule_name, due_date, due_mileage, status, priority"
// @Param sort_desc query bool false "Sort descending" default(false)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /service-reminders/projection [get]
func (h *ReminderProjectionHandler) GetProjections(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	page, _ := strconv.Atoi(params.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(params.Get("page_size"))
	if pageSize < 1 {
		pageSize = 10
	}
	sortDesc, _ := strconv.ParseBool(params.Get("sort_desc"))

	query := &dto.ReminderProjectionQuery{
		Search:         params.Get("search"),
		SortBy:         params.Get("sort_by"),
		SortDescending: sortDesc,
		PageNumber:     page,
		PageSize:       pageSize,
	}

	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.projectionUsecase.GetServiceReminders(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to compute service reminders")
		return
	}

	response.Success(w, http.StatusOK, "Service reminders computed successfully", result)
}
