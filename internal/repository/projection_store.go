package repository

import (
	"context"

	"fleet-maintenance/internal/domain/entity"
	domainRepo "fleet-maintenance/internal/domain/repository"
	"fleet-maintenance/internal/reminder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// projectionStore adapts the gorm repositories to the projection
// engine's narrow read-only Store interface.
type projectionStore struct {
	db           *gorm.DB
	scheduleRepo domainRepo.ServiceScheduleRepository
	programRepo  domainRepo.ServiceProgramRepository
	vehicleRepo  domainRepo.VehicleRepository
}

func NewProjectionStore(
	db *gorm.DB,
	scheduleRepo domainRepo.ServiceScheduleRepository,
	programRepo domainRepo.ServiceProgramRepository,
	vehicleRepo domainRepo.VehicleRepository,
) reminder.Store {
	return &projectionStore{
		db:           db,
		scheduleRepo: scheduleRepo,
		programRepo:  programRepo,
		vehicleRepo:  vehicleRepo,
	}
}

func (s *projectionStore) ActiveSchedules(ctx context.Context) ([]entity.ServiceSchedule, error) {
	return s.scheduleRepo.FindAllActive(s.db.WithContext(ctx))
}

func (s *projectionStore) ProgramVehicles(ctx context.Context, programID uuid.UUID) ([]entity.ProgramVehicle, error) {
	return s.programRepo.FindAssignments(s.db.WithContext(ctx), programID)
}

func (s *projectionStore) ScheduleTasks(ctx context.Context, scheduleID uuid.UUID) ([]entity.ServiceTask, error) {
	return s.scheduleRepo.FindTasks(s.db.WithContext(ctx), scheduleID)
}

func (s *projectionStore) VehicleByID(ctx context.Context, vehicleID uuid.UUID) (*entity.Vehicle, error) {
	return s.vehicleRepo.FindByID(s.db.WithContext(ctx), vehicleID)
}
