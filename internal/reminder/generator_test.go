package reminder

import (
	"testing"
	"time"

	"fleet-maintenance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVehicle(mileage float64) *entity.Vehicle {
	return &entity.Vehicle{
		ID:      uuid.New(),
		Name:    "Truck 12",
		Mileage: mileage,
	}
}

func testTasks() []entity.ServiceTask {
	return []entity.ServiceTask{
		{
			ID:                   uuid.New(),
			Name:                 "Oil change",
			Category:             entity.TaskCategoryPreventive,
			EstimatedLabourHours: 1.5,
			EstimatedCost:        decimal.NewFromFloat(89.99),
		},
		{
			ID:                   uuid.New(),
			Name:                 "Tire rotation",
			Category:             entity.TaskCategoryPreventive,
			EstimatedLabourHours: 0.5,
			EstimatedCost:        decimal.NewFromFloat(40.00),
		},
	}
}

func timeSchedule() *entity.ServiceSchedule {
	return &entity.ServiceSchedule{
		ID:                uuid.New(),
		ServiceProgramID:  uuid.New(),
		Name:              "90-day service",
		TimeIntervalValue: intPtr(90),
		TimeIntervalUnit:  unitPtr(entity.TimeUnitDay),
		TimeBufferValue:   intPtr(7),
		TimeBufferUnit:    unitPtr(entity.TimeUnitDay),
		IsActive:          true,
		Program:           entity.ServiceProgram{Name: "Preventive maintenance"},
	}
}

func TestExpandTimeAxisAnchoredAtAssignment(t *testing.T) {
	// 90-day interval with a 7-day buffer, vehicle assigned 2024-01-01,
	// queried 2024-04-05: the first due date (one interval after
	// assignment) is already past, the second is far beyond the 7-day
	// window, so exactly one occurrence surfaces and it is overdue.
	schedule := timeSchedule()
	assignment := &entity.ProgramVehicle{
		AddedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	gen := NewGenerator(Options{})
	out := gen.Expand(schedule, testVehicle(50000), testTasks(), assignment, now)

	require.Len(t, out, 1)
	occ := out[0]
	require.NotNil(t, occ.DueDate)
	assert.True(t, occ.DueDate.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, StatusOverdue, occ.Status)
	assert.Equal(t, PriorityHigh, occ.Priority)
	assert.Equal(t, 1, occ.OccurrenceNumber)
	assert.True(t, occ.TimeBased)
	assert.False(t, occ.MileageBased)
	assert.Nil(t, occ.DueMileage)
	assert.Nil(t, occ.MileageVariance)
	require.NotNil(t, occ.DaysUntilDue)
	assert.Negative(t, *occ.DaysUntilDue)
}

func TestExpandTimeAxisFirstServiceDateWins(t *testing.T) {
	schedule := timeSchedule()
	first := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)
	schedule.FirstServiceDate = &first
	assignment := &entity.ProgramVehicle{
		AddedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	gen := NewGenerator(Options{})
	out := gen.Expand(schedule, testVehicle(50000), testTasks(), assignment, now)

	require.Len(t, out, 1)
	assert.True(t, out[0].DueDate.Equal(first))
	assert.Equal(t, StatusDueSoon, out[0].Status)
}

func TestExpandMileageAxisDefaultsToCurrentMileage(t *testing.T) {
	// 5000-distance interval with a 500 buffer on a vehicle at 24800:
	// the first due reading defaults to the current mileage, which is
	// due soon but not overdue (equal, not past), and the next reading
	// is beyond the window.
	schedule := &entity.ServiceSchedule{
		ID:               uuid.New(),
		ServiceProgramID: uuid.New(),
		Name:             "5k mileage service",
		MileageInterval:  floatPtr(5000),
		MileageBuffer:    floatPtr(500),
		IsActive:         true,
		Program:          entity.ServiceProgram{Name: "Preventive maintenance"},
	}
	assignment := &entity.ProgramVehicle{AddedAt: time.Now()}

	gen := NewGenerator(Options{})
	out := gen.Expand(schedule, testVehicle(24800), testTasks(), assignment, time.Now())

	require.Len(t, out, 1)
	occ := out[0]
	require.NotNil(t, occ.DueMileage)
	assert.Equal(t, 24800.0, *occ.DueMileage)
	assert.Equal(t, StatusDueSoon, occ.Status)
	assert.Equal(t, 1, occ.OccurrenceNumber)
	assert.True(t, occ.MileageBased)
	assert.False(t, occ.TimeBased)
	assert.Nil(t, occ.DueDate)
	assert.Nil(t, occ.DaysUntilDue)
	require.NotNil(t, occ.MileageVariance)
	assert.Equal(t, 0.0, *occ.MileageVariance)
}

func TestExpandBothAxesNumberSeriesIndependently(t *testing.T) {
	schedule := timeSchedule()
	schedule.MileageInterval = floatPtr(1000)
	schedule.MileageBuffer = floatPtr(2500)
	first := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	schedule.FirstServiceDate = &first
	assignment := &entity.ProgramVehicle{AddedAt: first.AddDate(0, -3, 0)}
	now := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	gen := NewGenerator(Options{})
	out := gen.Expand(schedule, testVehicle(10000), testTasks(), assignment, now)

	var timeNums, mileageNums []int
	for _, occ := range out {
		require.NotEqual(t, occ.TimeBased, occ.MileageBased, "an occurrence belongs to exactly one axis")
		if occ.TimeBased {
			timeNums = append(timeNums, occ.OccurrenceNumber)
		} else {
			mileageNums = append(mileageNums, occ.OccurrenceNumber)
		}
	}

	require.NotEmpty(t, timeNums)
	require.NotEmpty(t, mileageNums)
	for i, n := range timeNums {
		assert.Equal(t, i+1, n)
	}
	for i, n := range mileageNums {
		assert.Equal(t, i+1, n)
	}
}

func TestExpandRespectsOccurrenceCap(t *testing.T) {
	schedule := timeSchedule()
	schedule.TimeIntervalValue = intPtr(1)
	// A years-wide buffer window would admit thousands of daily
	// occurrences without the cap.
	schedule.TimeBufferValue = intPtr(520)
	schedule.TimeBufferUnit = unitPtr(entity.TimeUnitWeek)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	schedule.FirstServiceDate = timePtr(now)
	assignment := &entity.ProgramVehicle{AddedAt: now.AddDate(-1, 0, 0)}

	gen := NewGenerator(Options{})
	out := gen.Expand(schedule, testVehicle(50000), testTasks(), assignment, now)

	require.Len(t, out, 100)
	assert.Equal(t, 1, out[0].OccurrenceNumber)
	assert.Equal(t, 100, out[99].OccurrenceNumber)
}

func TestExpandCapIsConfigurable(t *testing.T) {
	schedule := &entity.ServiceSchedule{
		ID:               uuid.New(),
		ServiceProgramID: uuid.New(),
		Name:             "tight cap",
		MileageInterval:  floatPtr(10),
		MileageBuffer:    floatPtr(100000),
		Program:          entity.ServiceProgram{Name: "P"},
	}
	assignment := &entity.ProgramVehicle{AddedAt: time.Now()}

	gen := NewGenerator(Options{MaxOccurrences: 5})
	out := gen.Expand(schedule, testVehicle(0), testTasks(), assignment, time.Now())

	assert.Len(t, out, 5)
}

func TestExpandNoTasksYieldsNothing(t *testing.T) {
	schedule := timeSchedule()
	assignment := &entity.ProgramVehicle{AddedAt: time.Now().AddDate(0, -6, 0)}

	gen := NewGenerator(Options{})
	assert.Empty(t, gen.Expand(schedule, testVehicle(100), nil, assignment, time.Now()))
}

func TestExpandNoAxesYieldsNothing(t *testing.T) {
	schedule := &entity.ServiceSchedule{
		ID:      uuid.New(),
		Name:    "misconfigured",
		Program: entity.ServiceProgram{Name: "P"},
	}
	assignment := &entity.ProgramVehicle{AddedAt: time.Now()}

	gen := NewGenerator(Options{})
	assert.Empty(t, gen.Expand(schedule, testVehicle(100), testTasks(), assignment, time.Now()))
}

func TestExpandAggregatesTaskEstimates(t *testing.T) {
	schedule := timeSchedule()
	first := time.Now().UTC()
	schedule.FirstServiceDate = &first
	assignment := &entity.ProgramVehicle{AddedAt: first.AddDate(0, -3, 0)}

	gen := NewGenerator(Options{})
	out := gen.Expand(schedule, testVehicle(100), testTasks(), assignment, first)

	require.NotEmpty(t, out)
	occ := out[0]
	assert.Equal(t, 2, occ.TaskCount)
	assert.Len(t, occ.Tasks, 2)
	assert.Equal(t, 2.0, occ.TotalLabourHours)
	assert.True(t, occ.TotalCost.Equal(decimal.NewFromFloat(129.99)))
}

func TestExpandVehicleAndProgramTagging(t *testing.T) {
	schedule := timeSchedule()
	first := time.Now().UTC()
	schedule.FirstServiceDate = &first
	assignment := &entity.ProgramVehicle{AddedAt: first.AddDate(0, -3, 0)}
	vehicle := testVehicle(31337)

	gen := NewGenerator(Options{})
	out := gen.Expand(schedule, vehicle, testTasks(), assignment, first)

	require.NotEmpty(t, out)
	occ := out[0]
	assert.Equal(t, vehicle.ID, occ.VehicleID)
	assert.Equal(t, vehicle.Name, occ.VehicleName)
	assert.Equal(t, schedule.ID, occ.ServiceScheduleID)
	assert.Equal(t, schedule.Name, occ.ServiceScheduleName)
	assert.Equal(t, schedule.ServiceProgramID, occ.ServiceProgramID)
	assert.Equal(t, "Preventive maintenance", occ.ServiceProgramName)
	assert.Equal(t, 31337.0, occ.CurrentMileage)
}
