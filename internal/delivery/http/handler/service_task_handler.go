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

type ServiceTaskHandler struct {
	taskUsecase usecase.ServiceTaskUsecase
	validator   *validator.CustomValidator
}

func NewServiceTaskHandler(taskUsecase usecase.ServiceTaskUsecase, validator *validator.CustomValidator) *ServiceTaskHandler {
	return &ServiceTaskHandler{
		taskUsecase: taskUsecase,
		validator:   validator,
	}
}

// Create handles service task creation
// @Summary Create a service task
// @Description Create a maintenance task with labour and cost estimates
// @Tags ServiceTasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceTaskRequest true "Create Task Request"
// @Success 201 {object} response.Response
// @Router /service-tasks [post]
func (h *ServiceTaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	task, err := h.taskUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create service task")
		return
	}

	response.Success(w, http.StatusCreated, "Service task created successfully", task)
}

// GetAll handles listing service tasks
// @Summary Get all service tasks
// @Description Get all service tasks with pagination
// @Tags ServiceTasks
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /service-tasks [get]
func (h *ServiceTaskHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	tasks, err := h.taskUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get service tasks")
		return
	}

	response.Success(w, http.StatusOK, "Service tasks retrieved successfully", tasks)
}

// GetByID handles getting a service task by ID
// @Summary Get service task by ID
// @Description Get a service task by its ID
// @Tags ServiceTasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-tasks/{id} [get]
func (h *ServiceTaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid task ID", nil)
		return
	}

	task, err := h.taskUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTaskNotFound:
			response.NotFound(w, "Service task not found")
		default:
			response.InternalServerError(w, "Failed to get service task")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service task retrieved successfully", task)
}

// Update handles service task update
// @Summary Update a service task
// @Description Update task metadata or estimates
// @Tags ServiceTasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateServiceTaskRequest true "Update Task Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-tasks/{id} [put]
func (h *ServiceTaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid task ID", nil)
		return
	}

	var req dto.UpdateServiceTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	task, err := h.taskUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTaskNotFound:
			response.NotFound(w, "Service task not found")
		default:
			response.InternalServerError(w, "Failed to update service task")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service task updated successfully", task)
}

// Delete handles service task removal
// @Summary Delete a service task
// @Description Delete a service task by its ID
// @Tags ServiceTasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /service-tasks/{id} [delete]
func (h *ServiceTaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid task ID", nil)
		return
	}

	if err := h.taskUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTaskNotFound:
			response.NotFound(w, "Service task not found")
		default:
			response.InternalServerError(w, "Failed to delete service task")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service task deleted successfully", nil)
}
