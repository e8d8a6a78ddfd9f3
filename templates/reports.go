package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ReportMonthRow is one month line of the report table, preformatted.
type ReportMonthRow struct {
	Month          string
	ProjectCount   int
	CompletedCount int
	Quotation      string
	Real           string
	Profit         string
	Margin         string
	ProfitNegative bool
	IsTotal        bool
}

// TopProjectRow is one line of the top-projects ranking.
type TopProjectRow struct {
	Rank        int
	ID          string
	Name        string
	Client      string
	StatusLabel string
	Quotation   string
}

// ReportsData feeds the reports page.
type ReportsData struct {
	Layout LayoutData

	Years  []YearOption
	Months []MonthOption
	Period string

	TotalQuotation string
	TotalReal      string
	TotalProfit    string
	Margin         string
	ProfitNegative bool
	ProjectCount   int
	CompletedCount int

	Rows []ReportMonthRow
	Top  []TopProjectRow

	// Chart payloads, JSON-encoded by the handler.
	RevenueChartJSON  string
	ProjectsChartJSON string
	StatusChartJSON   string

	ExcelURL string
	PDFURL   string
}

// ReportsPage renders the financial reports view: period filter, summary
// cards, revenue and status charts, the monthly table and the top-project
// ranking.
func ReportsPage(d ReportsData) templ.Component {
	return Layout(d.Layout, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="page-head">
<div>
<h1>Laporan Keuangan</h1>
<p class="muted">%s</p>
</div>
<div class="page-actions">
<a class="btn" href="%s">Export Excel</a>
<a class="btn" href="%s">Export PDF</a>
</div>
</div>
<form method="get" action="/reports" class="filter-bar">
<select name="year" onchange="this.form.submit()">
`, esc(d.Period), esc(d.ExcelURL), esc(d.PDFURL)); err != nil {
			return err
		}
		for _, y := range d.Years {
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(y.Value), selectedAttr(y.Selected), esc(y.Value)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
<select name="month" onchange="this.form.submit()">
`); err != nil {
			return err
		}
		for _, m := range d.Months {
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(m.Value), selectedAttr(m.Selected), esc(m.Label)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</select>
</form>
<section class="stat-cards">
<div class="stat-card"><span class="stat-label">Pendapatan</span><span class="stat-value">%s</span></div>
<div class="stat-card"><span class="stat-label">Biaya Real</span><span class="stat-value">%s</span></div>
<div class="stat-card"><span class="stat-label">Profit/Loss (%s)</span><span class="stat-value %s">%s</span></div>
<div class="stat-card"><span class="stat-label">Project / Selesai</span><span class="stat-value">%d / %d</span></div>
</section>
<section class="chart-row">
<div class="card chart-card"><h2>Pendapatan per Bulan</h2><canvas id="revenue-chart"></canvas></div>
<div class="card chart-card"><h2>Status Project</h2><canvas id="status-chart"></canvas></div>
</section>
<section class="card chart-card">
<h2>Jumlah Project per Bulan</h2>
<canvas id="projects-chart"></canvas>
</section>
<section class="card">
<h2>Rekap Bulanan</h2>
<table class="data-table">
<thead><tr><th>Bulan</th><th class="num">Projects</th><th class="num">Selesai</th><th class="num">Pendapatan</th><th class="num">Biaya Real</th><th class="num">Profit/Loss</th><th class="num">Margin %%</th></tr></thead>
<tbody>
`,
			esc(d.TotalQuotation), esc(d.TotalReal),
			esc(d.Margin), profitClass(d.ProfitNegative), esc(d.TotalProfit),
			d.ProjectCount, d.CompletedCount,
		); err != nil {
			return err
		}

		for _, r := range d.Rows {
			rowClass := ""
			if r.IsTotal {
				rowClass = ` class="total-row"`
			}
			if _, err := fmt.Fprintf(w, `<tr%s><td>%s</td><td class="num">%d</td><td class="num">%d</td><td class="num">%s</td><td class="num">%s</td><td class="num %s">%s</td><td class="num">%s</td></tr>
`, rowClass, esc(r.Month), r.ProjectCount, r.CompletedCount,
				esc(r.Quotation), esc(r.Real),
				profitClass(r.ProfitNegative), esc(r.Profit), esc(r.Margin)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</tbody>
</table>
</section>
<section class="card">
<h2>Top 5 Project</h2>
<table class="data-table">
<thead><tr><th>#</th><th>Nama Project</th><th>Client</th><th>Status</th><th class="num">Nilai Penawaran</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}

		if len(d.Top) == 0 {
			if _, err := io.WriteString(w, `<tr><td colspan="5" class="empty">Belum ada project pada periode ini.</td></tr>
`); err != nil {
				return err
			}
		}
		for _, tp := range d.Top {
			if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td><a href="/projects/%s">%s</a></td><td>%s</td><td>%s</td><td class="num">%s</td></tr>
`, tp.Rank, esc(tp.ID), esc(tp.Name), esc(tp.Client), esc(tp.StatusLabel), esc(tp.Quotation)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</tbody>
</table>
</section>
<script>
(function () {
  var revenue = %s;
  var projects = %s;
  var status = %s;
  function compactTick(v) {
    var label = revenue.axis.labels[Math.abs(v)];
    if (!label) return v;
    return v < 0 ? '-' + label : label;
  }
  new Chart(document.getElementById('revenue-chart'), {
    type: 'bar',
    data: {
      labels: revenue.labels,
      datasets: [
        {label: 'Pendapatan', data: revenue.quotation, backgroundColor: '#1e4d8c'},
        {label: 'Biaya Real', data: revenue.real, backgroundColor: '#c0392b'},
        {label: 'Profit/Loss', data: revenue.profit, backgroundColor: '#27ae60'}
      ]
    },
    options: {responsive: true, scales: {y: {
      beginAtZero: true,
      suggestedMax: revenue.axis.max,
      ticks: {stepSize: revenue.axis.step, callback: compactTick}
    }}}
  });
  new Chart(document.getElementById('projects-chart'), {
    type: 'bar',
    data: {
      labels: projects.labels,
      datasets: [
        {label: 'Total', data: projects.total, backgroundColor: '#1e4d8c'},
        {label: 'Selesai', data: projects.completed, backgroundColor: '#27ae60'}
      ]
    },
    options: {responsive: true, scales: {y: {beginAtZero: true, ticks: {precision: 0}}}}
  });
  new Chart(document.getElementById('status-chart'), {
    type: 'doughnut',
    data: {
      labels: status.labels,
      datasets: [{data: status.counts, backgroundColor: ['#f39c12', '#3498db', '#8e44ad', '#27ae60', '#c0392b']}]
    },
    options: {responsive: true}
  });
})();
</script>
`, d.RevenueChartJSON, d.ProjectsChartJSON, d.StatusChartJSON)
		return err
	}))
}
