package usecase

import (
	"context"
	"errors"

	"fleet-maintenance/internal/converter"
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/delivery/http/middleware"
	"fleet-maintenance/internal/domain/entity"
	"fleet-maintenance/internal/domain/repository"
	"fleet-maintenance/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrLicensePlateExists = errors.New("license plate already registered")
)

type VehicleUsecase interface {
	Create(ctx context.Context, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	GetAll(ctx context.Context, page, limit int) (*dto.VehicleListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	vehicleRepo   repository.VehicleRepository
	auditService  service.AuditService
	reminderCache *service.ReminderCacheService
}

func NewVehicleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vehicleRepo repository.VehicleRepository,
	auditService service.AuditService,
	reminderCache *service.ReminderCacheService,
) VehicleUsecase {
	return &vehicleUsecase{
		db:            db,
		log:           log,
		vehicleRepo:   vehicleRepo,
		auditService:  auditService,
		reminderCache: reminderCache,
	}
}

func (u *vehicleUsecase) Create(ctx context.Context, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vehicle := &entity.Vehicle{
		Name:         req.Name,
		LicensePlate: req.LicensePlate,
		VIN:          req.VIN,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Status:       entity.VehicleStatusActive,
		Mileage:      req.Mileage,
	}

	if err := u.vehicleRepo.Create(tx, vehicle); err != nil {
		if isDuplicateKeyError(err, "license_plate") {
			return nil, ErrLicensePlateExists
		}
		u.log.Warnf("Failed to create vehicle: %+v", err)
		return nil, err
	}

	userID := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionVehicleCreate, "vehicle", vehicle.ID.String(), vehicle); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reminderCache.Invalidate(ctx)
	return converter.VehicleToResponse(vehicle), nil
}

func (u *vehicleUsecase) GetAll(ctx context.Context, page, limit int) (*dto.VehicleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	vehicles, total, err := u.vehicleRepo.FindAll(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find vehicles: %+v", err)
		return nil, err
	}

	return &dto.VehicleListResponse{
		Vehicles: converter.VehiclesToResponses(vehicles),
		Total:    total,
	}, nil
}

func (u *vehicleUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error) {
	vehicle, err := u.vehicleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find vehicle %s: %+v", id, err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	return converter.VehicleToResponse(vehicle), nil
}

func (u *vehicleUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vehicle, err := u.vehicleRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find vehicle %s: %+v", id, err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	oldValue := *vehicle

	if req.Name != "" {
		vehicle.Name = req.Name
	}
	if req.Status != "" {
		vehicle.Status = entity.VehicleStatus(req.Status)
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}

	if err := u.vehicleRepo.Update(tx, vehicle); err != nil {
		u.log.Warnf("Failed to update vehicle %s: %+v", id, err)
		return nil, err
	}

	userID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, userID, entity.AuditActionVehicleUpdate, "vehicle", vehicle.ID.String(), oldValue, vehicle); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reminderCache.Invalidate(ctx)
	return converter.VehicleToResponse(vehicle), nil
}

func (u *vehicleUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vehicle, err := u.vehicleRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find vehicle %s: %+v", id, err)
		return err
	}
	if vehicle == nil {
		return ErrVehicleNotFound
	}

	if _, err := u.vehicleRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete vehicle %s: %+v", id, err)
		return err
	}

	userID := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionVehicleDelete, "vehicle", id.String(), vehicle); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.reminderCache.Invalidate(ctx)
	return nil
}

// actorFromContext returns the acting user's ID for audit entries, or nil
// when the request is unauthenticated
func actorFromContext(ctx context.Context) *uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}
