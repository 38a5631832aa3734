package usecase

import (
	"context"
	"errors"

	"fleet-maintenance/internal/converter"
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/domain/entity"
	"fleet-maintenance/internal/domain/repository"
	"fleet-maintenance/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("service task not found")

type ServiceTaskUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceTaskRequest) (*dto.ServiceTaskResponse, error)
	GetAll(ctx context.Context, page, limit int) (*dto.ServiceTaskListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceTaskResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceTaskRequest) (*dto.ServiceTaskResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceTaskUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	taskRepo      repository.ServiceTaskRepository
	auditService  service.AuditService
	reminderCache *service.ReminderCacheService
}

func NewServiceTaskUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	taskRepo repository.ServiceTaskRepository,
	auditService service.AuditService,
	reminderCache *service.ReminderCacheService,
) ServiceTaskUsecase {
	return &serviceTaskUsecase{
		db:            db,
		log:           log,
		taskRepo:      taskRepo,
		auditService:  auditService,
		reminderCache: reminderCache,
	}
}

func (u *serviceTaskUsecase) Create(ctx context.Context, req *dto.CreateServiceTaskRequest) (*dto.ServiceTaskResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	category := entity.TaskCategoryPreventive
	if req.Category != "" {
		category = entity.TaskCategory(req.Category)
	}

	task := &entity.ServiceTask{
		Name:                 req.Name,
		Description:          req.Description,
		Category:             category,
		EstimatedLabourHours: req.EstimatedLabourHours,
		EstimatedCost:        req.EstimatedCost,
	}

	if err := u.taskRepo.Create(tx, task); err != nil {
		u.log.Warnf("Failed to create service task: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionTaskCreate, "service_task", task.ID.String(), task); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TaskToResponse(task), nil
}

func (u *serviceTaskUsecase) GetAll(ctx context.Context, page, limit int) (*dto.ServiceTaskListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	tasks, total, err := u.taskRepo.FindAll(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find service tasks: %+v", err)
		return nil, err
	}

	return &dto.ServiceTaskListResponse{
		Tasks: converter.TasksToResponses(tasks),
		Total: total,
	}, nil
}

func (u *serviceTaskUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceTaskResponse, error) {
	task, err := u.taskRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service task %s: %+v", id, err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	return converter.TaskToResponse(task), nil
}

func (u *serviceTaskUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceTaskRequest) (*dto.ServiceTaskResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	task, err := u.taskRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service task %s: %+v", id, err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	oldValue := *task

	if req.Name != "" {
		task.Name = req.Name
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.Category != "" {
		task.Category = entity.TaskCategory(req.Category)
	}
	if req.EstimatedLabourHours != nil {
		task.EstimatedLabourHours = *req.EstimatedLabourHours
	}
	if req.EstimatedCost != nil {
		task.EstimatedCost = *req.EstimatedCost
	}

	if err := u.taskRepo.Update(tx, task); err != nil {
		u.log.Warnf("Failed to update service task %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionTaskUpdate, "service_task", task.ID.String(), oldValue, task); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reminderCache.Invalidate(ctx)
	return converter.TaskToResponse(task), nil
}

func (u *serviceTaskUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	task, err := u.taskRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service task %s: %+v", id, err)
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if _, err := u.taskRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete service task %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionTaskDelete, "service_task", id.String(), task); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.reminderCache.Invalidate(ctx)
	return nil
}
