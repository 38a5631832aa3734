package reminder

import (
	"sort"
	"strings"
)

// QueryParams controls search, ordering, and paging over an aggregated
// projection set.
type QueryParams struct {
	Search         string
	SortBy         string
	SortDescending bool
	PageNumber     int
	PageSize       int
}

// Page is one window of the filtered, sorted projection set together
// with the total count of the unpaged set.
type Page struct {
	Items      []Projection `json:"items"`
	TotalCount int          `json:"total_count"`
	PageNumber int          `json:"page_number"`
	PageSize   int          `json:"page_size"`
}

const defaultPageSize = 10

// ApplyQuery filters, sorts, and pages the projection set in memory. The
// set is computed, not stored, so this cannot be pushed into SQL. A page
// number past the end yields an empty slice, not an error.
func ApplyQuery(items []Projection, params QueryParams) Page {
	filtered := filterProjections(items, params.Search)
	sortProjections(filtered, params.SortBy, params.SortDescending)

	pageNumber := params.PageNumber
	if pageNumber < 1 {
		pageNumber = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total := len(filtered)
	start := (pageNumber - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      filtered[start:end],
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}

// filterProjections keeps projections whose vehicle, schedule, program,
// or any task name contains the search term, case-insensitively. A blank
// search keeps everything.
func filterProjections(items []Projection, search string) []Projection {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		out := make([]Projection, len(items))
		copy(out, items)
		return out
	}

	var out []Projection
	for _, p := range items {
		if matchesSearch(&p, term) {
			out = append(out, p)
		}
	}
	return out
}

func matchesSearch(p *Projection, term string) bool {
	if strings.Contains(strings.ToLower(p.VehicleName), term) ||
		strings.Contains(strings.ToLower(p.ServiceScheduleName), term) ||
		strings.Contains(strings.ToLower(p.ServiceProgramName), term) {
		return true
	}
	for _, task := range p.Tasks {
		if strings.Contains(strings.ToLower(task.Name), term) {
			return true
		}
	}
	return false
}

func sortProjections(items []Projection, sortBy string, descending bool) {
	less := lessFor(sortBy)
	if less == nil {
		sort.SliceStable(items, func(i, j int) bool {
			return defaultLess(&items[i], &items[j])
		})
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		if descending {
			i, j = j, i
		}
		return less(&items[i], &items[j])
	})
}

// lessFor resolves a sort key to its comparison; nil means the key is
// unrecognized and the default order applies.
func lessFor(sortBy string) func(a, b *Projection) bool {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "vehicle_name", "vehicle":
		return func(a, b *Projection) bool {
			return strings.ToLower(a.VehicleName) < strings.ToLower(b.VehicleName)
		}
	case "schedule_name", "schedule":
		return func(a, b *Projection) bool {
			return strings.ToLower(a.ServiceScheduleName) < strings.ToLower(b.ServiceScheduleName)
		}
	case "due_date":
		return func(a, b *Projection) bool {
			return dueDateBefore(a, b)
		}
	case "due_mileage":
		return func(a, b *Projection) bool {
			return dueMileageLess(a, b)
		}
	case "status", "priority":
		return func(a, b *Projection) bool {
			return statusRank(a.Status) < statusRank(b.Status)
		}
	}
	return nil
}

// defaultLess orders by urgency first, then earliest due date, then
// lowest due mileage. Missing values sort last on their key.
func defaultLess(a, b *Projection) bool {
	if ra, rb := statusRank(a.Status), statusRank(b.Status); ra != rb {
		return ra < rb
	}
	if ad, bd := a.DueDate, b.DueDate; ad != nil || bd != nil {
		if ad == nil && bd != nil {
			return false
		}
		if ad != nil && bd == nil {
			return true
		}
		if !ad.Equal(*bd) {
			return ad.Before(*bd)
		}
	}
	return dueMileageLess(a, b)
}

func dueDateBefore(a, b *Projection) bool {
	if a.DueDate == nil {
		return false
	}
	if b.DueDate == nil {
		return true
	}
	return a.DueDate.Before(*b.DueDate)
}

func dueMileageLess(a, b *Projection) bool {
	if a.DueMileage == nil {
		return false
	}
	if b.DueMileage == nil {
		return true
	}
	return *a.DueMileage < *b.DueMileage
}
