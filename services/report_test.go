package services

import (
	"testing"
	"time"
)

func reportProject(name, status string, created time.Time, quotationPrice, realPrice float64) Project {
	return Project{
		Name:    name,
		Status:  status,
		Created: created,
		Materials: []LineItem{
			{Name: "Material", QuotationPrice: quotationPrice, QuotationQty: 1, RealPrice: realPrice, RealQty: 1},
		},
	}
}

func TestMonthlyBreakdown(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	all := []Project{
		reportProject("A", StatusSelesai, jan, 1000, 600),
		reportProject("B", StatusPengerjaan, jan, 500, 400),
		reportProject("C", StatusSelesai, mar, 2000, 1500),
		reportProject("D", StatusProspek, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 9999, 9999),
		{Name: "legacy without created", Status: StatusSelesai},
	}

	months := MonthlyBreakdown(all, 2025)

	if months[0].ProjectCount != 2 {
		t.Errorf("January count = %d, want 2", months[0].ProjectCount)
	}
	if months[0].CompletedCount != 1 {
		t.Errorf("January completed = %d, want 1", months[0].CompletedCount)
	}
	if !almostEqual(months[0].QuotationTotal, 1500) {
		t.Errorf("January quotation = %v, want 1500", months[0].QuotationTotal)
	}
	if !almostEqual(months[0].ProfitTotal, 500) {
		t.Errorf("January profit = %v, want 500", months[0].ProfitTotal)
	}
	if months[2].ProjectCount != 1 || !almostEqual(months[2].RealTotal, 1500) {
		t.Errorf("March = %+v, want 1 project with real 1500", months[2])
	}
	if months[1].ProjectCount != 0 {
		t.Errorf("February count = %d, want 0", months[1].ProjectCount)
	}
}

func TestYearlySummary_MatchesBatchTotals(t *testing.T) {
	all := []Project{
		reportProject("A", StatusSelesai, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 700, 160),
		reportProject("B", StatusPengerjaan, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 300, 350),
		reportProject("C", StatusSelesai, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 1000, 800),
	}

	year := YearlySummary(MonthlyBreakdown(all, 2025))
	batch := ComputeTotalsBatch(all)

	if year.ProjectCount != 3 || year.CompletedCount != 2 {
		t.Errorf("counts = %d/%d, want 3/2", year.ProjectCount, year.CompletedCount)
	}
	if !almostEqual(year.QuotationTotal, batch.Quotation) {
		t.Errorf("yearly quotation %v does not match batch %v", year.QuotationTotal, batch.Quotation)
	}
	if !almostEqual(year.RealTotal, batch.Real) {
		t.Errorf("yearly real %v does not match batch %v", year.RealTotal, batch.Real)
	}
	if !almostEqual(year.ProfitTotal, batch.ProfitLoss) {
		t.Errorf("yearly profit %v does not match batch %v", year.ProfitTotal, batch.ProfitLoss)
	}
}

func TestMonthSummary_MarginPercent(t *testing.T) {
	m := MonthSummary{QuotationTotal: 200, ProfitTotal: 50}
	if got := m.MarginPercent(); !almostEqual(got, 25) {
		t.Errorf("MarginPercent() = %v, want 25", got)
	}
	if got := (MonthSummary{}).MarginPercent(); got != 0 {
		t.Errorf("zero quotation MarginPercent() = %v, want 0", got)
	}
}

func TestTopProjects(t *testing.T) {
	now := time.Now()
	all := []Project{
		reportProject("Small", StatusProspek, now, 300, 0),
		reportProject("Big", StatusPengerjaan, now, 500, 0),
		reportProject("Zero", StatusProspek, now, 0, 0),
	}

	top := TopProjects(all, 2)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	if top[0].Project.Name != "Big" || !almostEqual(top[0].Quotation, 500) {
		t.Errorf("top[0] = %s/%v, want Big/500", top[0].Project.Name, top[0].Quotation)
	}
	if top[1].Project.Name != "Small" || !almostEqual(top[1].Quotation, 300) {
		t.Errorf("top[1] = %s/%v, want Small/300", top[1].Project.Name, top[1].Quotation)
	}
}

func TestTopProjects_StableOnTies(t *testing.T) {
	now := time.Now()
	all := []Project{
		reportProject("First", StatusProspek, now, 100, 0),
		reportProject("Second", StatusProspek, now, 100, 0),
		reportProject("Third", StatusProspek, now, 100, 0),
	}

	top := TopProjects(all, -1)
	want := []string{"First", "Second", "Third"}
	for i, w := range want {
		if top[i].Project.Name != w {
			t.Errorf("top[%d] = %s, want %s", i, top[i].Project.Name, w)
		}
	}
}

func TestTopProjects_TruncationBounds(t *testing.T) {
	now := time.Now()
	all := []Project{reportProject("Only", StatusProspek, now, 100, 0)}

	if got := TopProjects(all, 5); len(got) != 1 {
		t.Errorf("n larger than list should return all, got %d", len(got))
	}
	if got := TopProjects(all, 0); len(got) != 0 {
		t.Errorf("n = 0 should return none, got %d", len(got))
	}
	if got := TopProjects(nil, 5); len(got) != 0 {
		t.Errorf("nil input should return none, got %d", len(got))
	}
}

func TestCountByStatusAndSource(t *testing.T) {
	all := []Project{
		{Status: StatusProspek, Source: SourceManual},
		{Status: StatusProspek, Source: SourceSurveyApp},
		{Status: StatusSelesai, Source: SourceManual},
	}

	byStatus := CountByStatus(all)
	if byStatus[StatusProspek] != 2 || byStatus[StatusSelesai] != 1 {
		t.Errorf("CountByStatus = %v", byStatus)
	}

	bySource := CountBySource(all)
	if bySource[SourceManual] != 2 || bySource[SourceSurveyApp] != 1 {
		t.Errorf("CountBySource = %v", bySource)
	}
}
