package handlers

import (
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/config"
	"nalabi/services"
	"nalabi/templates"
)

// HandleDashboard renders the dashboard: summary cards, filterable project
// table with pagination and the project map. HTMX requests get only the
// swappable content block.
func HandleDashboard(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projects, err := loadProjects(app)
		if err != nil {
			log.Printf("dashboard: %v", err)
			return e.String(http.StatusInternalServerError, "Gagal memuat data project")
		}

		state := parseFilterState(e.Request, cfg.PageSize)
		data := buildDashboardData(projects, state, cfg)
		data.Layout = templates.LayoutData{
			Title:     "Dashboard",
			UserEmail: currentUserEmail(e.Request),
			Active:    "dashboard",
		}

		if e.Request.Header.Get("HX-Request") == "true" {
			return templates.DashboardContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.DashboardPage(data).Render(e.Request.Context(), e.Response)
	}
}

// parseFilterState derives the filter engine state from the query string.
// A missing page parameter means page 1, which is how every filter change
// resets the pagination: the filter controls never submit a page value.
func parseFilterState(r *http.Request, pageSize int) services.FilterState {
	q := r.URL.Query()
	state := services.NewFilterState(pageSize)

	if status := q.Get("status"); status != "" {
		state.Status = status
	}
	state.Query = q.Get("q")

	if m := q.Get("month"); m != "" && m != "all" {
		if n, err := strconv.Atoi(m); err == nil && n >= 0 && n <= 11 {
			state.Month = n
		}
	}
	if y := q.Get("year"); y != "" && y != "all" {
		if n, err := strconv.Atoi(y); err == nil {
			state.Year = n
		}
	}
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			state.Page = n
		}
	}
	return state
}

// filterURL rebuilds a dashboard URL for the given status and page while
// keeping the other filters intact.
func filterURL(state services.FilterState, status string, page int) string {
	v := url.Values{}
	if status != services.StatusAll {
		v.Set("status", status)
	}
	if state.Query != "" {
		v.Set("q", state.Query)
	}
	if state.Month != services.MonthAll {
		v.Set("month", strconv.Itoa(state.Month))
	}
	if state.Year != services.YearAll {
		v.Set("year", strconv.Itoa(state.Year))
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

func buildDashboardData(projects []services.Project, state services.FilterState, cfg config.Config) templates.DashboardData {
	filtered := services.ApplyFilters(projects, state)
	page := services.Paginate(filtered, state.Page, state.PageSize)
	totals := services.ComputeTotalsBatch(filtered)
	counts := services.StatusCounts(projects, state)

	data := templates.DashboardData{
		TotalQuotation: services.FormatIDR(totals.Quotation),
		TotalReal:      services.FormatIDR(totals.Real),
		TotalProfit:    services.FormatIDR(totals.ProfitLoss),
		ProfitNegative: totals.ProfitLoss < 0,
		TotalCount:     counts[services.StatusAll],
		ActiveCount:    counts[services.StatusPengerjaan],
		Query:          state.Query,
		Status:         state.Status,
		Months:         monthOptions(state.Month),
		Years:          yearOptions(projects, state.Year),
	}

	data.Tabs = append(data.Tabs, templates.StatusTab{
		Label:  "Semua",
		Count:  counts[services.StatusAll],
		URL:    filterURL(state, services.StatusAll, 1),
		Active: state.Status == services.StatusAll,
	})
	for _, status := range services.DashboardStatuses {
		data.Tabs = append(data.Tabs, templates.StatusTab{
			Label:  services.StatusLabels[status],
			Count:  counts[status],
			URL:    filterURL(state, status, 1),
			Active: state.Status == status,
		})
	}

	for _, p := range page.Items {
		t := services.ComputeTotals(p)
		data.Rows = append(data.Rows, templates.ProjectRow{
			ID:             p.ID,
			Name:           p.Name,
			Client:         p.Client,
			Phone:          p.Phone,
			StatusValue:    p.Status,
			StatusLabel:    services.StatusLabels[p.Status],
			SourceLabel:    services.SourceLabels[p.Source],
			CreatedDate:    services.FormatDate(p.Created),
			Quotation:      services.FormatIDR(t.Quotation),
			ProfitLoss:     services.FormatIDR(t.ProfitLoss),
			ProfitNegative: t.ProfitLoss < 0,
		})
	}

	data.Pagination = templates.PaginationData{
		Page:       page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		Start:      page.Start,
		End:        page.End,
		HasPrev:    page.Number > 1,
		HasNext:    page.Number < page.TotalPages,
		PrevURL:    filterURL(state, state.Status, page.Number-1),
		NextURL:    filterURL(state, state.Status, page.Number+1),
	}

	data.MarkersJSON, data.MapViewJSON = mapPayloads(projects, cfg)
	data.SourceChartJSON = sourceChartJSON(projects)
	return data
}

// sourceChartJSON feeds the intake-source doughnut next to the map.
func sourceChartJSON(projects []services.Project) string {
	counts := services.CountBySource(projects)
	chart := countChart{}
	for _, source := range services.AllSources {
		chart.Labels = append(chart.Labels, services.SourceLabels[source])
		chart.Counts = append(chart.Counts, counts[source])
	}
	data, err := json.Marshal(chart)
	if err != nil {
		return `{"labels":[],"counts":[]}`
	}
	return string(data)
}

func monthOptions(selected int) []templates.MonthOption {
	options := []templates.MonthOption{
		{Value: "all", Label: "Semua Bulan", Selected: selected == services.MonthAll},
	}
	for i, name := range services.MonthNames {
		options = append(options, templates.MonthOption{
			Value:    strconv.Itoa(i),
			Label:    name,
			Selected: selected == i,
		})
	}
	return options
}

// yearOptions lists every year that has projects, newest first, always
// including the current year.
func yearOptions(projects []services.Project, selected int) []templates.YearOption {
	seen := map[int]bool{time.Now().Year(): true}
	for _, p := range projects {
		if !p.Created.IsZero() {
			seen[p.Created.Year()] = true
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	options := []templates.YearOption{
		{Value: "all", Selected: selected == services.YearAll},
	}
	for _, y := range years {
		options = append(options, templates.YearOption{
			Value:    strconv.Itoa(y),
			Selected: selected == y,
		})
	}
	return options
}

type mapMarker struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

type mapBound struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

type mapView struct {
	CenterLat float64   `json:"centerLat"`
	CenterLng float64   `json:"centerLng"`
	Zoom      int       `json:"zoom"`
	Bound     *mapBound `json:"bound,omitempty"`
}

// mapPayloads builds the JSON the dashboard map script consumes: the marker
// list and the initial viewport. Name and status are HTML-escaped here
// because the map script splices them into popup markup.
func mapPayloads(projects []services.Project, cfg config.Config) (string, string) {
	markers := []mapMarker{}
	for _, p := range projects {
		if p.Location == nil {
			continue
		}
		markers = append(markers, mapMarker{
			ID:     p.ID,
			Name:   html.EscapeString(p.Name),
			Status: html.EscapeString(services.StatusLabels[p.Status]),
			Lat:    p.Location.Lat,
			Lng:    p.Location.Lng,
		})
	}

	viewport := services.Viewport(projects, orb.Point{cfg.MapCenterLng, cfg.MapCenterLat})
	view := mapView{
		CenterLat: viewport.Center.Lat(),
		CenterLng: viewport.Center.Lon(),
		Zoom:      cfg.MapZoom,
	}
	if viewport.HasMarkers {
		view.Bound = &mapBound{
			MinLat: viewport.Bound.Min.Lat(),
			MinLng: viewport.Bound.Min.Lon(),
			MaxLat: viewport.Bound.Max.Lat(),
			MaxLng: viewport.Bound.Max.Lon(),
		}
	}

	markersJSON, err := json.Marshal(markers)
	if err != nil {
		markersJSON = []byte("[]")
	}
	viewJSON, err := json.Marshal(view)
	if err != nil {
		viewJSON = []byte(fmt.Sprintf(`{"centerLat":%f,"centerLng":%f,"zoom":%d}`, cfg.MapCenterLat, cfg.MapCenterLng, cfg.MapZoom))
	}
	return string(markersJSON), string(viewJSON)
}
