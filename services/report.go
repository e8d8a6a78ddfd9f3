package services

import "sort"

// MonthSummary is the report rollup for a single calendar month.
type MonthSummary struct {
	ProjectCount   int
	CompletedCount int
	QuotationTotal float64
	RealTotal      float64
	ProfitTotal    float64
}

// MarginPercent returns the month's profit margin as a percentage of its
// quotation total, or zero when nothing was quoted.
func (m MonthSummary) MarginPercent() float64 {
	if m.QuotationTotal == 0 {
		return 0
	}
	return m.ProfitTotal / m.QuotationTotal * 100
}

// MonthlyBreakdown buckets the projects of one calendar year into twelve
// month summaries (index 0 = January). Projects without a creation time or
// outside the year are skipped.
func MonthlyBreakdown(all []Project, year int) [12]MonthSummary {
	var months [12]MonthSummary
	for _, p := range all {
		if p.Created.IsZero() || p.Created.Year() != year {
			continue
		}
		m := int(p.Created.Month()) - 1
		t := ComputeTotals(p)

		months[m].ProjectCount++
		if p.Status == StatusSelesai {
			months[m].CompletedCount++
		}
		months[m].QuotationTotal += t.Quotation
		months[m].RealTotal += t.Real
		months[m].ProfitTotal += t.ProfitLoss
	}
	return months
}

// YearlySummary folds a monthly breakdown into a single summary.
func YearlySummary(months [12]MonthSummary) MonthSummary {
	var year MonthSummary
	for _, m := range months {
		year.ProjectCount += m.ProjectCount
		year.CompletedCount += m.CompletedCount
		year.QuotationTotal += m.QuotationTotal
		year.RealTotal += m.RealTotal
		year.ProfitTotal += m.ProfitTotal
	}
	return year
}

// TopProject pairs a project with its quotation total for ranking.
type TopProject struct {
	Project   Project
	Quotation float64
}

// TopProjects ranks the given projects by quotation total, highest first,
// and returns at most n of them. The sort is stable so projects with equal
// totals keep their input order. A negative n returns the full ranking.
func TopProjects(projects []Project, n int) []TopProject {
	ranked := make([]TopProject, 0, len(projects))
	for _, p := range projects {
		ranked = append(ranked, TopProject{Project: p, Quotation: ComputeTotals(p).Quotation})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quotation > ranked[j].Quotation
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CountByStatus tallies projects per status value.
func CountByStatus(projects []Project) map[string]int {
	counts := make(map[string]int)
	for _, p := range projects {
		counts[p.Status]++
	}
	return counts
}

// CountBySource tallies projects per intake source.
func CountBySource(projects []Project) map[string]int {
	counts := make(map[string]int)
	for _, p := range projects {
		counts[p.Source]++
	}
	return counts
}
