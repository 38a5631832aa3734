package reminder

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"fleet-maintenance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for engine tests.
type fakeStore struct {
	schedules   []entity.ServiceSchedule
	assignments map[uuid.UUID][]entity.ProgramVehicle
	tasks       map[uuid.UUID][]entity.ServiceTask
	vehicles    map[uuid.UUID]*entity.Vehicle

	schedulesErr error
	vehicleErr   error
}

func (f *fakeStore) ActiveSchedules(ctx context.Context) ([]entity.ServiceSchedule, error) {
	if f.schedulesErr != nil {
		return nil, f.schedulesErr
	}
	return f.schedules, nil
}

func (f *fakeStore) ProgramVehicles(ctx context.Context, programID uuid.UUID) ([]entity.ProgramVehicle, error) {
	return f.assignments[programID], nil
}

func (f *fakeStore) ScheduleTasks(ctx context.Context, scheduleID uuid.UUID) ([]entity.ServiceTask, error) {
	return f.tasks[scheduleID], nil
}

func (f *fakeStore) VehicleByID(ctx context.Context, vehicleID uuid.UUID) (*entity.Vehicle, error) {
	if f.vehicleErr != nil {
		return nil, f.vehicleErr
	}
	return f.vehicles[vehicleID], nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// fleetFixture builds one active program with two vehicles and one
// time-axis schedule due within the query window.
func fleetFixture() (*fakeStore, time.Time) {
	now := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	programID := uuid.New()

	schedule := entity.ServiceSchedule{
		ID:                uuid.New(),
		ServiceProgramID:  programID,
		Name:              "90-day service",
		TimeIntervalValue: intPtr(90),
		TimeIntervalUnit:  unitPtr(entity.TimeUnitDay),
		TimeBufferValue:   intPtr(7),
		TimeBufferUnit:    unitPtr(entity.TimeUnitDay),
		IsActive:          true,
		Program:           entity.ServiceProgram{ID: programID, Name: "Preventive"},
	}

	v1 := &entity.Vehicle{ID: uuid.New(), Name: "Truck 1", Mileage: 10000}
	v2 := &entity.Vehicle{ID: uuid.New(), Name: "Van 2", Mileage: 48000}

	store := &fakeStore{
		schedules: []entity.ServiceSchedule{schedule},
		assignments: map[uuid.UUID][]entity.ProgramVehicle{
			programID: {
				{ServiceProgramID: programID, VehicleID: v1.ID, AddedAt: now.AddDate(0, 0, -100)},
				{ServiceProgramID: programID, VehicleID: v2.ID, AddedAt: now.AddDate(0, 0, -95)},
			},
		},
		tasks: map[uuid.UUID][]entity.ServiceTask{
			schedule.ID: testTasks(),
		},
		vehicles: map[uuid.UUID]*entity.Vehicle{
			v1.ID: v1,
			v2.ID: v2,
		},
	}
	return store, now
}

func TestAggregateExpandsEveryAssignedVehicle(t *testing.T) {
	store, now := fleetFixture()
	engine := NewEngine(store, quietLogger(), Options{})
	engine.now = fixedClock(now)

	out, err := engine.Aggregate(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	names := map[string]bool{}
	for _, p := range out {
		names[p.VehicleName] = true
		assert.Equal(t, "90-day service", p.ServiceScheduleName)
		assert.Equal(t, "Preventive", p.ServiceProgramName)
		assert.Equal(t, StatusOverdue, p.Status)
	}
	assert.True(t, names["Truck 1"])
	assert.True(t, names["Van 2"])
}

func TestAggregateSkipsUnresolvableVehicles(t *testing.T) {
	store, now := fleetFixture()
	// Drop one vehicle record; its assignment link stays behind.
	for id := range store.vehicles {
		delete(store.vehicles, id)
		break
	}

	engine := NewEngine(store, quietLogger(), Options{})
	engine.now = fixedClock(now)

	out, err := engine.Aggregate(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestAggregateSkipsSchedulesWithoutTasks(t *testing.T) {
	store, now := fleetFixture()
	store.tasks = map[uuid.UUID][]entity.ServiceTask{}

	engine := NewEngine(store, quietLogger(), Options{})
	engine.now = fixedClock(now)

	out, err := engine.Aggregate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAggregateSkipsAxislessSchedules(t *testing.T) {
	store, now := fleetFixture()
	store.schedules[0].TimeIntervalValue = nil
	store.schedules[0].TimeIntervalUnit = nil

	engine := NewEngine(store, quietLogger(), Options{})
	engine.now = fixedClock(now)

	out, err := engine.Aggregate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAggregatePropagatesStoreErrors(t *testing.T) {
	store, now := fleetFixture()
	store.schedulesErr = errors.New("connection refused")

	engine := NewEngine(store, quietLogger(), Options{})
	engine.now = fixedClock(now)

	_, err := engine.Aggregate(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
}

func TestAggregatePropagatesVehicleLookupErrors(t *testing.T) {
	store, now := fleetFixture()
	store.vehicleErr = errors.New("timeout")

	engine := NewEngine(store, quietLogger(), Options{})
	engine.now = fixedClock(now)

	_, err := engine.Aggregate(context.Background())
	require.Error(t, err)
}

func TestAggregateHonorsCancellation(t *testing.T) {
	store, now := fleetFixture()
	engine := NewEngine(store, quietLogger(), Options{})
	engine.now = fixedClock(now)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := engine.Aggregate(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

func TestAggregateUsesOneInstantForWholePass(t *testing.T) {
	store, now := fleetFixture()
	engine := NewEngine(store, quietLogger(), Options{})

	// A clock that jumps forward on every read would misclassify
	// occurrences if the engine sampled it more than once per pass.
	calls := 0
	engine.now = func() time.Time {
		calls++
		return now.AddDate(0, 0, calls)
	}

	_, err := engine.Aggregate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
