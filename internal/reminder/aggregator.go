package reminder

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"fleet-maintenance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Store is the read-only data access the engine needs. Implementations
// must return schedules with their owning program populated, and must
// return (nil, nil) for lookups that find nothing.
type Store interface {
	ActiveSchedules(ctx context.Context) ([]entity.ServiceSchedule, error)
	ProgramVehicles(ctx context.Context, programID uuid.UUID) ([]entity.ProgramVehicle, error)
	ScheduleTasks(ctx context.Context, scheduleID uuid.UUID) ([]entity.ServiceTask, error)
	VehicleByID(ctx context.Context, vehicleID uuid.UUID) (*entity.Vehicle, error)
}

// Engine computes the full set of reminder projections for the fleet.
type Engine struct {
	store Store
	log   *logrus.Logger
	gen   *Generator

	// now is captured once per Aggregate pass so every occurrence in a
	// response is classified against the same instant.
	now func() time.Time
}

func NewEngine(store Store, log *logrus.Logger, opts Options) *Engine {
	return &Engine{
		store: store,
		log:   log,
		gen:   NewGenerator(opts),
		now:   time.Now,
	}
}

// Aggregate expands every active schedule against its program's assigned
// vehicles and returns the flattened, unordered projection set. Schedules
// are expanded concurrently; results are merged only after all expansions
// complete. Store errors and context cancellation abort the whole pass.
func (e *Engine) Aggregate(ctx context.Context) ([]Projection, error) {
	now := e.now()

	schedules, err := e.store.ActiveSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active schedules: %w", err)
	}

	results := make([][]Projection, len(schedules))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range schedules {
		i := i
		g.Go(func() error {
			out, err := e.expandSchedule(ctx, &schedules[i], now)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var projections []Projection
	for _, r := range results {
		projections = append(projections, r...)
	}
	return projections, nil
}

func (e *Engine) expandSchedule(ctx context.Context, schedule *entity.ServiceSchedule, now time.Time) ([]Projection, error) {
	if !schedule.HasTimeAxis() && !schedule.HasMileageAxis() {
		e.log.Warnf("Schedule %s has neither a time nor a mileage axis, skipping", schedule.ID)
		return nil, nil
	}

	tasks, err := e.store.ScheduleTasks(ctx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for schedule %s: %w", schedule.ID, err)
	}
	if len(tasks) == 0 {
		return nil, nil
	}

	assignments, err := e.store.ProgramVehicles(ctx, schedule.ServiceProgramID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle assignments for program %s: %w", schedule.ServiceProgramID, err)
	}

	var out []Projection
	for i := range assignments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vehicle, err := e.store.VehicleByID(ctx, assignments[i].VehicleID)
		if err != nil {
			return nil, fmt.Errorf("failed to load vehicle %s: %w", assignments[i].VehicleID, err)
		}
		if vehicle == nil {
			e.log.Warnf("Skipping unresolved vehicle %s for schedule %s", assignments[i].VehicleID, schedule.ID)
			continue
		}

		out = append(out, e.gen.Expand(schedule, vehicle, tasks, &assignments[i], now)...)
	}
	return out, nil
}
