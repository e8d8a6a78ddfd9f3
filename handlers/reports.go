package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/services"
	"nalabi/templates"
)

// reportPeriod is the year/month selection of the reports page. Month is
// zero based, services.MonthAll when the whole year is shown.
type reportPeriod struct {
	Year  int
	Month int
}

func parseReportPeriod(r *http.Request) reportPeriod {
	period := reportPeriod{Year: time.Now().Year(), Month: services.MonthAll}
	q := r.URL.Query()
	if y, err := strconv.Atoi(q.Get("year")); err == nil && y > 0 {
		period.Year = y
	}
	if m := q.Get("month"); m != "" && m != "all" {
		if n, err := strconv.Atoi(m); err == nil && n >= 0 && n <= 11 {
			period.Month = n
		}
	}
	return period
}

func (p reportPeriod) label() string {
	if p.Month == services.MonthAll {
		return fmt.Sprintf("Laporan Tahun %d", p.Year)
	}
	return fmt.Sprintf("Laporan %s %d", services.MonthNames[p.Month], p.Year)
}

// HandleReports renders the financial reports page for the selected
// period: summary cards, charts, monthly table and the top 5 projects.
func HandleReports(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projects, err := loadProjects(app)
		if err != nil {
			log.Printf("reports: %v", err)
			return e.String(http.StatusInternalServerError, "Gagal memuat data project")
		}

		period := parseReportPeriod(e.Request)
		data := buildReportsData(projects, period)
		data.Layout = templates.LayoutData{
			Title:     "Laporan",
			UserEmail: currentUserEmail(e.Request),
			Active:    "reports",
		}
		return templates.ReportsPage(data).Render(e.Request.Context(), e.Response)
	}
}

func buildReportsData(projects []services.Project, period reportPeriod) templates.ReportsData {
	months := services.MonthlyBreakdown(projects, period.Year)

	// The summary follows the month selection; the monthly table always
	// shows the whole year.
	filtered := services.ApplyFilters(projects, services.FilterState{
		Status: services.StatusAll,
		Year:   period.Year,
		Month:  period.Month,
	})

	var summary services.MonthSummary
	if period.Month == services.MonthAll {
		summary = services.YearlySummary(months)
	} else {
		summary = months[period.Month]
	}

	data := templates.ReportsData{
		Period:         period.label(),
		Years:          reportYearOptions(projects, period.Year),
		Months:         monthOptions(period.Month),
		TotalQuotation: services.FormatIDR(summary.QuotationTotal),
		TotalReal:      services.FormatIDR(summary.RealTotal),
		TotalProfit:    services.FormatIDR(summary.ProfitTotal),
		Margin:         fmt.Sprintf("%.1f%%", summary.MarginPercent()),
		ProfitNegative: summary.ProfitTotal < 0,
		ProjectCount:   summary.ProjectCount,
		CompletedCount: summary.CompletedCount,
		ExcelURL:       exportURL("excel", period),
		PDFURL:         exportURL("pdf", period),
	}

	for i, m := range months {
		data.Rows = append(data.Rows, templates.ReportMonthRow{
			Month:          services.MonthNames[i],
			ProjectCount:   m.ProjectCount,
			CompletedCount: m.CompletedCount,
			Quotation:      services.FormatIDR(m.QuotationTotal),
			Real:           services.FormatIDR(m.RealTotal),
			Profit:         services.FormatIDR(m.ProfitTotal),
			Margin:         fmt.Sprintf("%.1f%%", m.MarginPercent()),
			ProfitNegative: m.ProfitTotal < 0,
		})
	}
	yearly := services.YearlySummary(months)
	data.Rows = append(data.Rows, templates.ReportMonthRow{
		Month:          "TOTAL",
		ProjectCount:   yearly.ProjectCount,
		CompletedCount: yearly.CompletedCount,
		Quotation:      services.FormatIDR(yearly.QuotationTotal),
		Real:           services.FormatIDR(yearly.RealTotal),
		Profit:         services.FormatIDR(yearly.ProfitTotal),
		Margin:         fmt.Sprintf("%.1f%%", yearly.MarginPercent()),
		ProfitNegative: yearly.ProfitTotal < 0,
		IsTotal:        true,
	})

	for i, tp := range services.TopProjects(filtered, 5) {
		data.Top = append(data.Top, templates.TopProjectRow{
			Rank:        i + 1,
			ID:          tp.Project.ID,
			Name:        tp.Project.Name,
			Client:      tp.Project.Client,
			StatusLabel: services.StatusLabels[tp.Project.Status],
			Quotation:   services.FormatIDR(tp.Quotation),
		})
	}

	data.RevenueChartJSON = revenueChartJSON(months)
	data.ProjectsChartJSON = projectsChartJSON(months)
	data.StatusChartJSON = statusChartJSON(filtered)
	return data
}

func exportURL(format string, period reportPeriod) string {
	url := fmt.Sprintf("/reports/export/%s?year=%d", format, period.Year)
	if period.Month != services.MonthAll {
		url += fmt.Sprintf("&month=%d", period.Month)
	}
	return url
}

func reportYearOptions(projects []services.Project, selected int) []templates.YearOption {
	options := yearOptions(projects, selected)
	// The reports page has no all-years view; drop that option.
	return options[1:]
}

// chartAxis carries server-computed y-axis ticks: the axis ceiling, the
// tick step and a value-to-label map with compact amounts like "2.5M".
type chartAxis struct {
	Max    float64           `json:"max"`
	Step   float64           `json:"step"`
	Labels map[string]string `json:"labels"`
}

// compactAxis sizes a money axis for the given data maximum. The step is
// rounded up to a 1/2/2.5/5 decade multiple so the ticks land on amounts
// FormatCompact renders cleanly.
func compactAxis(dataMax float64) chartAxis {
	if dataMax <= 0 {
		dataMax = 4e6
	}
	step := niceStep(dataMax / 4)
	max := step * math.Ceil(dataMax/step)

	axis := chartAxis{Max: max, Step: step, Labels: map[string]string{}}
	for v := 0.0; v <= max+step/2; v += step {
		axis.Labels[strconv.FormatFloat(v, 'f', -1, 64)] = services.FormatCompact(v)
	}
	return axis
}

func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw <= mag:
		return mag
	case raw <= 2*mag:
		return 2 * mag
	case raw <= 2.5*mag:
		return 2.5 * mag
	case raw <= 5*mag:
		return 5 * mag
	}
	return 10 * mag
}

type revenueChart struct {
	Labels    []string  `json:"labels"`
	Quotation []float64 `json:"quotation"`
	Real      []float64 `json:"real"`
	Profit    []float64 `json:"profit"`
	Axis      chartAxis `json:"axis"`
}

func revenueChartJSON(months [12]services.MonthSummary) string {
	chart := revenueChart{}
	var dataMax float64
	for i, m := range months {
		chart.Labels = append(chart.Labels, services.MonthNames[i][:3])
		chart.Quotation = append(chart.Quotation, m.QuotationTotal)
		chart.Real = append(chart.Real, m.RealTotal)
		chart.Profit = append(chart.Profit, m.ProfitTotal)
		dataMax = math.Max(dataMax, math.Max(m.QuotationTotal, math.Max(m.RealTotal, math.Abs(m.ProfitTotal))))
	}
	chart.Axis = compactAxis(dataMax)
	data, err := json.Marshal(chart)
	if err != nil {
		return `{"labels":[],"quotation":[],"real":[],"profit":[],"axis":{"labels":{}}}`
	}
	return string(data)
}

type projectsChart struct {
	Labels    []string `json:"labels"`
	Total     []int    `json:"total"`
	Completed []int    `json:"completed"`
}

func projectsChartJSON(months [12]services.MonthSummary) string {
	chart := projectsChart{}
	for i, m := range months {
		chart.Labels = append(chart.Labels, services.MonthNames[i][:3])
		chart.Total = append(chart.Total, m.ProjectCount)
		chart.Completed = append(chart.Completed, m.CompletedCount)
	}
	data, err := json.Marshal(chart)
	if err != nil {
		return `{"labels":[],"total":[],"completed":[]}`
	}
	return string(data)
}

// countChart is the labels/counts payload shared by the status and source
// doughnuts.
type countChart struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

func statusChartJSON(projects []services.Project) string {
	counts := services.CountByStatus(projects)
	chart := countChart{}
	for _, status := range services.AllStatuses {
		chart.Labels = append(chart.Labels, services.StatusLabels[status])
		chart.Counts = append(chart.Counts, counts[status])
	}
	data, err := json.Marshal(chart)
	if err != nil {
		return `{"labels":[],"counts":[]}`
	}
	return string(data)
}
