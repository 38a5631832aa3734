package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proj(vehicle, schedule, program string, status Status, due *time.Time, mileage *float64) Projection {
	return Projection{
		VehicleName:         vehicle,
		ServiceScheduleName: schedule,
		ServiceProgramName:  program,
		Status:              status,
		Priority:            PriorityFor(status),
		DueDate:             due,
		DueMileage:          mileage,
		Tasks:               []TaskInfo{{Name: "Brake inspection"}},
	}
}

func sampleSet() []Projection {
	d1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	return []Projection{
		proj("Van B", "Annual inspection", "Safety", StatusUpcoming, &d3, nil),
		proj("Truck A", "Oil service", "Preventive", StatusOverdue, &d1, nil),
		proj("Car C", "Tire service", "Preventive", StatusDueSoon, &d2, nil),
		proj("Truck A", "Mileage service", "Preventive", StatusDueSoon, nil, floatPtr(25000)),
		proj("Van B", "Oil service", "Preventive", StatusOverdue, &d2, nil),
	}
}

func TestApplyQueryDefaultOrder(t *testing.T) {
	page := ApplyQuery(sampleSet(), QueryParams{PageNumber: 1, PageSize: 50})

	require.Equal(t, 5, page.TotalCount)
	statuses := make([]Status, len(page.Items))
	for i, p := range page.Items {
		statuses[i] = p.Status
	}
	assert.Equal(t, []Status{StatusOverdue, StatusOverdue, StatusDueSoon, StatusDueSoon, StatusUpcoming}, statuses)

	// Within overdue: earlier due date first.
	assert.Equal(t, "Oil service", page.Items[0].ServiceScheduleName)
	assert.Equal(t, "Truck A", page.Items[0].VehicleName)

	// Within due soon: the dated occurrence sorts before the date-less
	// mileage one.
	assert.NotNil(t, page.Items[2].DueDate)
	assert.Nil(t, page.Items[3].DueDate)
}

func TestApplyQuerySortByVehicleName(t *testing.T) {
	page := ApplyQuery(sampleSet(), QueryParams{SortBy: "vehicle_name", PageNumber: 1, PageSize: 50})
	require.Len(t, page.Items, 5)
	assert.Equal(t, "Car C", page.Items[0].VehicleName)
	assert.Equal(t, "Van B", page.Items[4].VehicleName)

	desc := ApplyQuery(sampleSet(), QueryParams{SortBy: "vehicle_name", SortDescending: true, PageNumber: 1, PageSize: 50})
	assert.Equal(t, "Van B", desc.Items[0].VehicleName)
	assert.Equal(t, "Car C", desc.Items[4].VehicleName)
}

func TestApplyQuerySortByDueDate(t *testing.T) {
	page := ApplyQuery(sampleSet(), QueryParams{SortBy: "due_date", PageNumber: 1, PageSize: 50})
	require.Len(t, page.Items, 5)
	// Dated items ascending, the date-less one last.
	assert.True(t, page.Items[0].DueDate.Before(*page.Items[1].DueDate) || page.Items[0].DueDate.Equal(*page.Items[1].DueDate))
	assert.Nil(t, page.Items[4].DueDate)
}

func TestApplyQuerySortByStatus(t *testing.T) {
	page := ApplyQuery(sampleSet(), QueryParams{SortBy: "status", SortDescending: true, PageNumber: 1, PageSize: 50})
	require.Len(t, page.Items, 5)
	assert.Equal(t, StatusUpcoming, page.Items[0].Status)
	assert.Equal(t, StatusOverdue, page.Items[4].Status)
}

func TestApplyQueryUnrecognizedSortKeyFallsBack(t *testing.T) {
	page := ApplyQuery(sampleSet(), QueryParams{SortBy: "color", PageNumber: 1, PageSize: 50})
	require.Len(t, page.Items, 5)
	assert.Equal(t, StatusOverdue, page.Items[0].Status)
}

func TestApplyQuerySearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"vehicle name", "truck", 2},
		{"schedule name", "oil", 2},
		{"program name", "safety", 1},
		{"task name", "brake insp", 5},
		{"no match", "helicopter", 0},
		{"blank is a no-op", "   ", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := ApplyQuery(sampleSet(), QueryParams{Search: tt.search, PageNumber: 1, PageSize: 50})
			assert.Equal(t, tt.want, page.TotalCount)
			assert.Len(t, page.Items, tt.want)
		})
	}
}

func TestApplyQueryPaging(t *testing.T) {
	set := sampleSet()

	first := ApplyQuery(set, QueryParams{PageNumber: 1, PageSize: 2})
	second := ApplyQuery(set, QueryParams{PageNumber: 2, PageSize: 2})
	third := ApplyQuery(set, QueryParams{PageNumber: 3, PageSize: 2})

	assert.Equal(t, 5, first.TotalCount)
	assert.Len(t, first.Items, 2)
	assert.Len(t, second.Items, 2)
	assert.Len(t, third.Items, 1)

	// Concatenated pages reproduce the full sorted set exactly once.
	var all []Projection
	all = append(all, first.Items...)
	all = append(all, second.Items...)
	all = append(all, third.Items...)
	full := ApplyQuery(set, QueryParams{PageNumber: 1, PageSize: 50})
	require.Len(t, all, 5)
	for i := range all {
		assert.Equal(t, full.Items[i].VehicleName, all[i].VehicleName)
		assert.Equal(t, full.Items[i].ServiceScheduleName, all[i].ServiceScheduleName)
	}
}

func TestApplyQueryPageBeyondEnd(t *testing.T) {
	page := ApplyQuery(sampleSet(), QueryParams{PageNumber: 99, PageSize: 10})
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.TotalCount)
	assert.Equal(t, 99, page.PageNumber)
}

func TestApplyQueryNormalizesPagingParams(t *testing.T) {
	page := ApplyQuery(sampleSet(), QueryParams{})
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, defaultPageSize, page.PageSize)
	assert.Len(t, page.Items, 5)
}

func TestApplyQueryDoesNotMutateInput(t *testing.T) {
	set := sampleSet()
	firstVehicle := set[0].VehicleName

	ApplyQuery(set, QueryParams{SortBy: "vehicle_name", PageNumber: 1, PageSize: 50})
	assert.Equal(t, firstVehicle, set[0].VehicleName)
}
