package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nalabi/services"
	"nalabi/testhelpers"
)

func TestHandleReports(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProjectWithFinancials(t, app, "Project Untung",
		[]services.ACUnit{{Brand: "Daikin", PK: 1, Type: "split", Qty: 2, Price: 4000000}},
		[]services.LineItem{{Name: "Pipa", Unit: "meter", QuotationPrice: 100000, QuotationQty: 10, RealPrice: 90000, RealQty: 10}},
		nil)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rec := httptest.NewRecorder()

	if err := HandleReports(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	year := time.Now().Year()
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		fmt.Sprintf("Laporan Tahun %d", year),
		"Project Untung",
		"TOTAL",
		"Rp 9.000.000",
		"Jumlah Project per Bulan")
}

func TestHandleReports_MonthSelection(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProject(t, app, "Bulan Ini", services.StatusSelesai)

	now := time.Now()
	url := fmt.Sprintf("/reports?year=%d&month=%d", now.Year(), int(now.Month())-1)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	if err := HandleReports(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	wantPeriod := fmt.Sprintf("Laporan %s %d", services.MonthNames[int(now.Month())-1], now.Year())
	testhelpers.AssertHTMLContains(t, rec.Body.String(), wantPeriod, "Bulan Ini")
}

func TestParseReportPeriod(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name string
		url  string
		want reportPeriod
	}{
		{"defaults to current year", "/reports", reportPeriod{Year: currentYear, Month: services.MonthAll}},
		{"explicit period", "/reports?year=2024&month=5", reportPeriod{Year: 2024, Month: 5}},
		{"month all", "/reports?year=2024&month=all", reportPeriod{Year: 2024, Month: services.MonthAll}},
		{"invalid month ignored", "/reports?year=2024&month=99", reportPeriod{Year: 2024, Month: services.MonthAll}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if got := parseReportPeriod(req); got != tt.want {
				t.Errorf("parseReportPeriod(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
		})
	}
}

func TestExportURL(t *testing.T) {
	yearly := exportURL("excel", reportPeriod{Year: 2025, Month: services.MonthAll})
	if yearly != "/reports/export/excel?year=2025" {
		t.Errorf("yearly export URL = %q", yearly)
	}

	monthly := exportURL("pdf", reportPeriod{Year: 2025, Month: 2})
	if monthly != "/reports/export/pdf?year=2025&month=2" {
		t.Errorf("monthly export URL = %q", monthly)
	}
}

func TestRevenueChartJSON_CompactAxis(t *testing.T) {
	var months [12]services.MonthSummary
	months[2] = services.MonthSummary{QuotationTotal: 9000000, RealTotal: 6000000, ProfitTotal: 3000000}

	var chart revenueChart
	if err := json.Unmarshal([]byte(revenueChartJSON(months)), &chart); err != nil {
		t.Fatalf("invalid chart JSON: %v", err)
	}

	if chart.Axis.Step != 2500000 {
		t.Errorf("Axis.Step = %v, want 2500000", chart.Axis.Step)
	}
	if chart.Axis.Max != 10000000 {
		t.Errorf("Axis.Max = %v, want 10000000", chart.Axis.Max)
	}
	want := map[string]string{
		"0":        "0",
		"2500000":  "2.5M",
		"5000000":  "5.0M",
		"7500000":  "7.5M",
		"10000000": "10.0M",
	}
	for value, label := range want {
		if got := chart.Axis.Labels[value]; got != label {
			t.Errorf("tick label for %s = %q, want %q", value, got, label)
		}
	}
	if chart.Quotation[2] != 9000000 {
		t.Errorf("March quotation = %v, want 9000000", chart.Quotation[2])
	}
}

func TestCompactAxis_EmptyDataUsesDefaultScale(t *testing.T) {
	axis := compactAxis(0)
	if axis.Step != 1000000 || axis.Max != 4000000 {
		t.Errorf("axis = %+v, want 1M steps up to 4M", axis)
	}
	if axis.Labels["4000000"] != "4.0M" {
		t.Errorf("top tick label = %q, want 4.0M", axis.Labels["4000000"])
	}
}

func TestProjectsChartJSON(t *testing.T) {
	var months [12]services.MonthSummary
	months[0] = services.MonthSummary{ProjectCount: 4, CompletedCount: 1}
	months[11] = services.MonthSummary{ProjectCount: 2, CompletedCount: 2}

	var chart projectsChart
	if err := json.Unmarshal([]byte(projectsChartJSON(months)), &chart); err != nil {
		t.Fatalf("invalid chart JSON: %v", err)
	}

	if len(chart.Labels) != 12 || chart.Labels[0] != "Jan" || chart.Labels[11] != "Des" {
		t.Errorf("labels = %v, want 12 abbreviated months", chart.Labels)
	}
	if chart.Total[0] != 4 || chart.Completed[0] != 1 {
		t.Errorf("January = %d/%d, want 4/1", chart.Total[0], chart.Completed[0])
	}
	if chart.Total[11] != 2 || chart.Completed[11] != 2 {
		t.Errorf("December = %d/%d, want 2/2", chart.Total[11], chart.Completed[11])
	}
}

func TestHandleReportExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProject(t, app, "Export Saya", services.StatusSelesai)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/reports/export/excel?year=%d", time.Now().Year()), nil)
	rec := httptest.NewRecorder()

	if err := HandleReportExportExcel(app, testConfig())(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}

func TestHandleReportExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProject(t, app, "Export PDF", services.StatusPengerjaan)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/reports/export/pdf?year=%d", time.Now().Year()), nil)
	rec := httptest.NewRecorder()

	if err := HandleReportExportPDF(app, testConfig())(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("body is not a PDF document")
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename("Laporan Tahun 2025"); got != "Laporan-Tahun-2025" {
		t.Errorf("sanitizeFilename = %q", got)
	}
	if got := sanitizeFilename(`a/b\c:d`); got != "a-b-c-d" {
		t.Errorf("sanitizeFilename = %q", got)
	}
}
