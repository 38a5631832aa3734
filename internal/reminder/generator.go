package reminder

import (
	"time"

	"fleet-maintenance/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const (
	defaultLookaheadDays    = 30
	defaultMileageLookahead = 1000
	defaultMaxOccurrences   = 100
)

// Options tunes recurrence expansion. Zero values fall back to the
// package defaults.
type Options struct {
	// DefaultLookaheadDays bounds time-axis expansion for schedules
	// without a time buffer.
	DefaultLookaheadDays int
	// DefaultMileageLookahead bounds mileage-axis expansion for
	// schedules without a mileage buffer.
	DefaultMileageLookahead float64
	// MaxOccurrences caps each recurrence series. The cap truncates
	// rather than errors; it exists to contain misconfigured schedules.
	MaxOccurrences int
}

func (o Options) withDefaults() Options {
	if o.DefaultLookaheadDays <= 0 {
		o.DefaultLookaheadDays = defaultLookaheadDays
	}
	if o.DefaultMileageLookahead <= 0 {
		o.DefaultMileageLookahead = defaultMileageLookahead
	}
	if o.MaxOccurrences <= 0 {
		o.MaxOccurrences = defaultMaxOccurrences
	}
	return o
}

// Generator expands one schedule/vehicle pair into its bounded list of
// reminder occurrences.
type Generator struct {
	opts Options
}

func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts.withDefaults()}
}

// Expand produces the occurrence projections for one schedule applied to
// one vehicle. A schedule with no tasks or with neither axis populated
// yields no occurrences. Time and mileage series are expanded
// independently, each with 1-based occurrence numbers.
func (g *Generator) Expand(
	schedule *entity.ServiceSchedule,
	vehicle *entity.Vehicle,
	tasks []entity.ServiceTask,
	assignment *entity.ProgramVehicle,
	now time.Time,
) []Projection {
	if len(tasks) == 0 {
		return nil
	}
	if !schedule.HasTimeAxis() && !schedule.HasMileageAxis() {
		return nil
	}

	base := g.baseProjection(schedule, vehicle, tasks)

	var out []Projection
	if schedule.HasTimeAxis() {
		out = append(out, g.expandTimeAxis(schedule, assignment, now, base)...)
	}
	if schedule.HasMileageAxis() {
		out = append(out, g.expandMileageAxis(schedule, vehicle, base)...)
	}
	return out
}

// baseProjection builds the shared display and task-aggregate fields
// copied into every occurrence of the pair.
func (g *Generator) baseProjection(schedule *entity.ServiceSchedule, vehicle *entity.Vehicle, tasks []entity.ServiceTask) Projection {
	infos := make([]TaskInfo, len(tasks))
	totalHours := 0.0
	totalCost := decimal.Zero
	for i, task := range tasks {
		infos[i] = TaskInfo{
			ID:                   task.ID,
			Name:                 task.Name,
			Category:             task.Category,
			EstimatedLabourHours: task.EstimatedLabourHours,
			EstimatedCost:        task.EstimatedCost,
		}
		totalHours += task.EstimatedLabourHours
		totalCost = totalCost.Add(task.EstimatedCost)
	}

	return Projection{
		VehicleID:           vehicle.ID,
		VehicleName:         vehicle.Name,
		ServiceProgramID:    schedule.ServiceProgramID,
		ServiceProgramName:  schedule.Program.Name,
		ServiceScheduleID:   schedule.ID,
		ServiceScheduleName: schedule.Name,
		Tasks:               infos,
		TaskCount:           len(infos),
		TotalLabourHours:    totalHours,
		TotalCost:           totalCost,
		CurrentMileage:      vehicle.Mileage,
	}
}

// expandTimeAxis walks the calendar recurrence. The first due date is the
// schedule's explicit first service date when set; otherwise one interval
// after the vehicle joined the program (the assignment date anchors the
// series but is not itself a due date). Expansion stops once a due date
// passes the buffer-end window.
func (g *Generator) expandTimeAxis(schedule *entity.ServiceSchedule, assignment *entity.ProgramVehicle, now time.Time, base Projection) []Projection {
	value := *schedule.TimeIntervalValue
	unit := *schedule.TimeIntervalUnit

	var due time.Time
	if schedule.FirstServiceDate != nil {
		due = *schedule.FirstServiceDate
	} else {
		due = AddInterval(assignment.AddedAt, value, unit)
	}

	lookaheadDays := g.opts.DefaultLookaheadDays
	if schedule.HasTimeBuffer() {
		lookaheadDays = IntervalDays(*schedule.TimeBufferValue, *schedule.TimeBufferUnit)
	}
	bufferEnd := now.AddDate(0, 0, lookaheadDays)

	var out []Projection
	for n := 1; n <= g.opts.MaxOccurrences; n++ {
		if due.After(bufferEnd) {
			break
		}
		occ := base
		occDue := due
		occ.DueDate = &occDue
		occ.Status = TimeStatus(due, now, schedule)
		occ.Priority = PriorityFor(occ.Status)
		occ.OccurrenceNumber = n
		occ.TimeBased = true
		days := int(due.Sub(now).Hours() / 24)
		occ.DaysUntilDue = &days
		out = append(out, occ)

		due = AddInterval(due, value, unit)
	}
	return out
}

// expandMileageAxis walks the odometer recurrence. The first due reading
// is the schedule's explicit first service mileage when set; otherwise
// the vehicle's current mileage. Expansion stops once a due reading
// passes current mileage plus the mileage buffer (or the default
// lookahead when no buffer is configured).
func (g *Generator) expandMileageAxis(schedule *entity.ServiceSchedule, vehicle *entity.Vehicle, base Projection) []Projection {
	interval := *schedule.MileageInterval

	due := vehicle.Mileage
	if schedule.FirstServiceMileage != nil {
		due = *schedule.FirstServiceMileage
	}

	lookahead := g.opts.DefaultMileageLookahead
	if schedule.HasMileageBuffer() {
		lookahead = *schedule.MileageBuffer
	}
	upperBound := vehicle.Mileage + lookahead

	var out []Projection
	for n := 1; n <= g.opts.MaxOccurrences; n++ {
		if due > upperBound {
			break
		}
		occ := base
		occDue := due
		occ.DueMileage = &occDue
		occ.Status = MileageStatus(due, vehicle.Mileage, schedule)
		occ.Priority = PriorityFor(occ.Status)
		occ.OccurrenceNumber = n
		occ.MileageBased = true
		variance := due - vehicle.Mileage
		occ.MileageVariance = &variance
		out = append(out, occ)

		due += interval
	}
	return out
}
