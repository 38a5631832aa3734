package usecase

import (
	"context"
	"errors"
	"time"

	"fleet-maintenance/internal/converter"
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/domain/entity"
	"fleet-maintenance/internal/domain/repository"
	"fleet-maintenance/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProgramNotFound        = errors.New("service program not found")
	ErrVehicleAlreadyAssigned = errors.New("vehicle is already assigned to this program")
	ErrVehicleNotAssigned     = errors.New("vehicle is not assigned to this program")
)

type ServiceProgramUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceProgramRequest) (*dto.ServiceProgramResponse, error)
	GetAll(ctx context.Context, page, limit int) (*dto.ServiceProgramListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceProgramResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceProgramRequest) (*dto.ServiceProgramResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AssignVehicle(ctx context.Context, programID uuid.UUID, req *dto.AssignVehicleRequest) (*dto.ProgramVehicleResponse, error)
	UnassignVehicle(ctx context.Context, programID, vehicleID uuid.UUID) error
	GetAssignments(ctx context.Context, programID uuid.UUID) ([]dto.ProgramVehicleResponse, error)
}

type serviceProgramUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	programRepo   repository.ServiceProgramRepository
	vehicleRepo   repository.VehicleRepository
	auditService  service.AuditService
	reminderCache *service.ReminderCacheService
}

func NewServiceProgramUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	programRepo repository.ServiceProgramRepository,
	vehicleRepo repository.VehicleRepository,
	auditService service.AuditService,
	reminderCache *service.ReminderCacheService,
) ServiceProgramUsecase {
	return &serviceProgramUsecase{
		db:            db,
		log:           log,
		programRepo:   programRepo,
		vehicleRepo:   vehicleRepo,
		auditService:  auditService,
		reminderCache: reminderCache,
	}
}

func (u *serviceProgramUsecase) Create(ctx context.Context, req *dto.CreateServiceProgramRequest) (*dto.ServiceProgramResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	program := &entity.ServiceProgram{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := u.programRepo.Create(tx, program); err != nil {
		u.log.Warnf("Failed to create service program: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionProgramCreate, "service_program", program.ID.String(), program); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProgramToResponse(program), nil
}

func (u *serviceProgramUsecase) GetAll(ctx context.Context, page, limit int) (*dto.ServiceProgramListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	programs, total, err := u.programRepo.FindAll(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find service programs: %+v", err)
		return nil, err
	}

	return &dto.ServiceProgramListResponse{
		Programs: converter.ProgramsToResponses(programs),
		Total:    total,
	}, nil
}

func (u *serviceProgramUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceProgramResponse, error) {
	program, err := u.programRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service program %s: %+v", id, err)
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	return converter.ProgramToResponse(program), nil
}

func (u *serviceProgramUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceProgramRequest) (*dto.ServiceProgramResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	program, err := u.programRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service program %s: %+v", id, err)
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	oldValue := *program

	if req.Name != "" {
		program.Name = req.Name
	}
	if req.Description != "" {
		program.Description = req.Description
	}
	if req.IsActive != nil {
		program.IsActive = *req.IsActive
	}

	if err := u.programRepo.Update(tx, program); err != nil {
		u.log.Warnf("Failed to update service program %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionProgramUpdate, "service_program", program.ID.String(), oldValue, program); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reminderCache.Invalidate(ctx)
	return converter.ProgramToResponse(program), nil
}

func (u *serviceProgramUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	program, err := u.programRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service program %s: %+v", id, err)
		return err
	}
	if program == nil {
		return ErrProgramNotFound
	}

	if _, err := u.programRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete service program %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionProgramDelete, "service_program", id.String(), program); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.reminderCache.Invalidate(ctx)
	return nil
}

// AssignVehicle enrolls a vehicle in a program. The assignment timestamp
// anchors time-based recurrence for schedules without an explicit first
// service date, so it is captured here rather than at the database layer.
func (u *serviceProgramUsecase) AssignVehicle(ctx context.Context, programID uuid.UUID, req *dto.AssignVehicleRequest) (*dto.ProgramVehicleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	program, err := u.programRepo.FindByID(tx, programID)
	if err != nil {
		u.log.Warnf("Failed to find service program %s: %+v", programID, err)
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	vehicle, err := u.vehicleRepo.FindByID(tx, req.VehicleID)
	if err != nil {
		u.log.Warnf("Failed to find vehicle %s: %+v", req.VehicleID, err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	mileageAtAssignment := req.MileageAtAssignment
	if mileageAtAssignment == nil {
		current := vehicle.Mileage
		mileageAtAssignment = &current
	}

	assignment := &entity.ProgramVehicle{
		ServiceProgramID:    programID,
		VehicleID:           req.VehicleID,
		AddedAt:             time.Now().UTC(),
		MileageAtAssignment: mileageAtAssignment,
	}

	if err := u.programRepo.AssignVehicle(tx, assignment); err != nil {
		if isDuplicateKeyError(err, "program_vehicles") {
			return nil, ErrVehicleAlreadyAssigned
		}
		u.log.Warnf("Failed to assign vehicle %s to program %s: %+v", req.VehicleID, programID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionVehicleAssign, "program_vehicle", programID.String(), assignment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reminderCache.Invalidate(ctx)
	return converter.AssignmentToResponse(assignment), nil
}

func (u *serviceProgramUsecase) UnassignVehicle(ctx context.Context, programID, vehicleID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.programRepo.UnassignVehicle(tx, programID, vehicleID)
	if err != nil {
		u.log.Warnf("Failed to unassign vehicle %s from program %s: %+v", vehicleID, programID, err)
		return err
	}
	if affected == 0 {
		return ErrVehicleNotAssigned
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionVehicleUnassign, "program_vehicle", programID.String(), map[string]interface{}{
		"service_program_id": programID.String(),
		"vehicle_id":         vehicleID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.reminderCache.Invalidate(ctx)
	return nil
}

func (u *serviceProgramUsecase) GetAssignments(ctx context.Context, programID uuid.UUID) ([]dto.ProgramVehicleResponse, error) {
	program, err := u.programRepo.FindByID(u.db.WithContext(ctx), programID)
	if err != nil {
		u.log.Warnf("Failed to find service program %s: %+v", programID, err)
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	assignments, err := u.programRepo.FindAssignments(u.db.WithContext(ctx), programID)
	if err != nil {
		u.log.Warnf("Failed to find assignments for program %s: %+v", programID, err)
		return nil, err
	}

	responses := make([]dto.ProgramVehicleResponse, len(assignments))
	for i := range assignments {
		responses[i] = *converter.AssignmentToResponse(&assignments[i])
	}
	return responses, nil
}
