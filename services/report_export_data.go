package services

import (
	"fmt"
	"time"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// ReportRow is one month line of the financial report.
type ReportRow struct {
	Month          string
	ProjectCount   int
	CompletedCount int
	Quotation      float64
	Real           float64
	Profit         float64
	MarginPercent  float64
}

// ReportProjectRow is one project line on the report's project listing.
type ReportProjectRow struct {
	Name        string
	Client      string
	Status      string
	CreatedDate string
	Quotation   float64
	Profit      float64
}

// ReportExportData holds everything the report Excel/PDF writers need.
type ReportExportData struct {
	CompanyName   string
	Period        string
	Year          int
	Rows          []ReportRow
	Total         ReportRow
	Projects      []ReportProjectRow
	GeneratedDate string
}

// BuildReportExport assembles the export payload for a year, optionally
// narrowed to a single month (month is zero based, MonthAll for the whole
// year). The monthly table always covers the full year; the project listing
// follows the month filter.
func BuildReportExport(companyName string, all []Project, year, month int) ReportExportData {
	months := MonthlyBreakdown(all, year)
	yearly := YearlySummary(months)

	data := ReportExportData{
		CompanyName:   companyName,
		Year:          year,
		Period:        fmt.Sprintf("Laporan Tahun %d", year),
		GeneratedDate: FormatDate(nowFunc()),
	}
	if month != MonthAll {
		data.Period = fmt.Sprintf("Laporan %s %d", MonthNames[month], year)
	}

	for i, m := range months {
		data.Rows = append(data.Rows, ReportRow{
			Month:          MonthNames[i],
			ProjectCount:   m.ProjectCount,
			CompletedCount: m.CompletedCount,
			Quotation:      m.QuotationTotal,
			Real:           m.RealTotal,
			Profit:         m.ProfitTotal,
			MarginPercent:  m.MarginPercent(),
		})
	}

	data.Total = ReportRow{
		Month:          "TOTAL",
		ProjectCount:   yearly.ProjectCount,
		CompletedCount: yearly.CompletedCount,
		Quotation:      yearly.QuotationTotal,
		Real:           yearly.RealTotal,
		Profit:         yearly.ProfitTotal,
		MarginPercent:  yearly.MarginPercent(),
	}

	filtered := ApplyFilters(all, FilterState{Status: StatusAll, Year: year, Month: month})
	for _, p := range filtered {
		t := ComputeTotals(p)
		data.Projects = append(data.Projects, ReportProjectRow{
			Name:        p.Name,
			Client:      p.Client,
			Status:      StatusLabels[p.Status],
			CreatedDate: FormatDate(p.Created),
			Quotation:   t.Quotation,
			Profit:      t.ProfitLoss,
		})
	}

	return data
}
