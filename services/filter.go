package services

import "strings"

// MonthAll and YearAll disable the respective period filter.
const (
	MonthAll = -1
	YearAll  = 0
)

// FilterState is the complete dashboard filter selection. Month is zero
// based (0 = January). A handler builds a fresh state from the request on
// every call, so the engine itself carries no state between requests.
type FilterState struct {
	Status   string
	Month    int
	Year     int
	Query    string
	Page     int
	PageSize int
}

// NewFilterState returns a state with all filters off.
func NewFilterState(pageSize int) FilterState {
	return FilterState{
		Status:   StatusAll,
		Month:    MonthAll,
		Year:     YearAll,
		Page:     1,
		PageSize: pageSize,
	}
}

func matchesPeriod(p Project, s FilterState) bool {
	if s.Month == MonthAll && s.Year == YearAll {
		return true
	}
	// Projects without a creation time cannot match a period filter.
	if p.Created.IsZero() {
		return false
	}
	if s.Year != YearAll && p.Created.Year() != s.Year {
		return false
	}
	if s.Month != MonthAll && int(p.Created.Month())-1 != s.Month {
		return false
	}
	return true
}

func matchesQuery(p Project, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Client), query) ||
		strings.Contains(p.Phone, query)
}

// ApplyFilters narrows the project list by period, status and search query,
// in that order, preserving the input order. The search is a case
// insensitive substring match over name, client and phone.
func ApplyFilters(all []Project, s FilterState) []Project {
	query := strings.ToLower(strings.TrimSpace(s.Query))

	result := make([]Project, 0, len(all))
	for _, p := range all {
		if !matchesPeriod(p, s) {
			continue
		}
		if s.Status != "" && s.Status != StatusAll && p.Status != s.Status {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// StatusCounts computes the badge numbers for the status tabs. Only the
// period filter applies here; the tab counts must stay stable while the
// user switches tabs or types a search. The StatusAll key holds the total.
func StatusCounts(all []Project, s FilterState) map[string]int {
	counts := make(map[string]int)
	for _, p := range all {
		if !matchesPeriod(p, s) {
			continue
		}
		counts[StatusAll]++
		counts[p.Status]++
	}
	return counts
}

// Page is one dashboard page of a filtered project list. Start and End are
// the one-based display positions of the first and last item; both are zero
// when the list is empty.
type Page struct {
	Items      []Project
	Number     int
	TotalPages int
	TotalItems int
	Start      int
	End        int
}

// Paginate slices the list into the requested page. Out-of-range page
// numbers are clamped into [1, TotalPages] instead of producing an empty
// page, so a stale page parameter after a filter change still renders
// something sensible.
func Paginate(list []Project, number, size int) Page {
	if size < 1 {
		size = 1
	}

	total := len(list)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	page := Page{
		Items:      list[start:end],
		Number:     number,
		TotalPages: totalPages,
		TotalItems: total,
	}
	if total > 0 {
		page.Start = start + 1
		page.End = end
	}
	return page
}
