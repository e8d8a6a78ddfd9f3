package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// StatusTab is one dashboard filter tab with its badge count.
type StatusTab struct {
	Label  string
	Count  int
	URL    string
	Active bool
}

// ProjectRow is one rendered table line; money columns arrive formatted.
type ProjectRow struct {
	ID             string
	Name           string
	Client         string
	Phone          string
	StatusValue    string
	StatusLabel    string
	SourceLabel    string
	CreatedDate    string
	Quotation      string
	ProfitLoss     string
	ProfitNegative bool
}

// PaginationData drives the pager under the table. URLs are prebuilt by the
// handler so the view stays dumb.
type PaginationData struct {
	Page       int
	TotalPages int
	TotalItems int
	Start      int
	End        int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
}

// MonthOption is one entry of the month filter dropdown.
type MonthOption struct {
	Value    string
	Label    string
	Selected bool
}

// YearOption is one entry of the year filter dropdown.
type YearOption struct {
	Value    string
	Selected bool
}

// DashboardData is everything the dashboard page needs.
type DashboardData struct {
	Layout LayoutData

	TotalQuotation string
	TotalReal      string
	TotalProfit    string
	ProfitNegative bool
	TotalCount     int
	ActiveCount    int

	Query  string
	Status string
	Months []MonthOption
	Years  []YearOption
	Tabs   []StatusTab

	Rows       []ProjectRow
	Pagination PaginationData

	// Map and chart payloads, JSON-encoded by the handler. Marker name and
	// status arrive HTML-escaped, ready for popup markup.
	MarkersJSON     string
	MapViewJSON     string
	SourceChartJSON string
}

// DashboardPage renders the full dashboard.
func DashboardPage(d DashboardData) templ.Component {
	return Layout(d.Layout, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Dashboard</h1>
<div id="dashboard-content">
`); err != nil {
			return err
		}
		if err := DashboardContent(d).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `</div>
<section class="chart-row">
<div class="card chart-card">
<h2>Peta Project</h2>
<div id="project-map" class="project-map"></div>
</div>
<div class="card chart-card">
<h2>Sumber Project</h2>
<canvas id="source-chart"></canvas>
</div>
</section>
<script>
(function () {
  var view = %s;
  var markers = %s;
  var sources = %s;
  var map = L.map('project-map');
  if (view.bound) {
    map.fitBounds([[view.bound.minLat, view.bound.minLng], [view.bound.maxLat, view.bound.maxLng]], {padding: [24, 24]});
  } else {
    map.setView([view.centerLat, view.centerLng], view.zoom);
  }
  L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
  }).addTo(map);
  markers.forEach(function (mk) {
    L.marker([mk.lat, mk.lng]).addTo(map)
      .bindPopup('<a href="/projects/' + mk.id + '">' + mk.name + '</a><br>' + mk.status);
  });
  new Chart(document.getElementById('source-chart'), {
    type: 'doughnut',
    data: {
      labels: sources.labels,
      datasets: [{data: sources.counts, backgroundColor: ['#1e4d8c', '#27ae60']}]
    },
    options: {responsive: true}
  });
})();
</script>
`, d.MapViewJSON, d.MarkersJSON, d.SourceChartJSON); err != nil {
			return err
		}
		return nil
	}))
}

// DashboardContent renders the HTMX-swappable part: summary cards, filter
// bar, status tabs, project table and pager.
func DashboardContent(d DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="stat-cards">
<div class="stat-card"><span class="stat-label">Total Pendapatan</span><span class="stat-value">%s</span></div>
<div class="stat-card"><span class="stat-label">Total Biaya Real</span><span class="stat-value">%s</span></div>
<div class="stat-card"><span class="stat-label">Profit/Loss</span><span class="stat-value %s">%s</span></div>
<div class="stat-card"><span class="stat-label">Project Berjalan</span><span class="stat-value">%d</span></div>
</section>
`,
			esc(d.TotalQuotation), esc(d.TotalReal),
			profitClass(d.ProfitNegative), esc(d.TotalProfit),
			d.ActiveCount,
		); err != nil {
			return err
		}

		// Filter bar. Every change swaps the content block and resets paging.
		if _, err := fmt.Fprintf(w, `<form class="filter-bar" hx-get="/" hx-target="#dashboard-content" hx-push-url="true">
<input type="hidden" name="status" value="%s">
<input type="search" name="q" value="%s" placeholder="Cari nama, client, atau telepon"
  hx-get="/" hx-target="#dashboard-content" hx-push-url="true" hx-trigger="keyup changed delay:300ms">
<select name="month" hx-get="/" hx-target="#dashboard-content" hx-push-url="true">
`, esc(d.Status), esc(d.Query)); err != nil {
			return err
		}
		for _, m := range d.Months {
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(m.Value), selectedAttr(m.Selected), esc(m.Label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
<select name="year" hx-get="/" hx-target="#dashboard-content" hx-push-url="true">
`); err != nil {
			return err
		}
		for _, y := range d.Years {
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(y.Value), selectedAttr(y.Selected), esc(y.Value)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
</form>
<nav class="status-tabs">
`); err != nil {
			return err
		}

		for _, tab := range d.Tabs {
			cls := "tab"
			if tab.Active {
				cls = "tab active"
			}
			if _, err := fmt.Fprintf(w, `<a class="%s" href="%s" hx-get="%s" hx-target="#dashboard-content" hx-push-url="true">%s <span class="badge">%d</span></a>
`, cls, esc(tab.URL), esc(tab.URL), esc(tab.Label), tab.Count); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</nav>
<table class="data-table">
<thead>
<tr><th>Nama Project</th><th>Client</th><th>Telepon</th><th>Status</th><th>Sumber</th><th>Tanggal</th><th class="num">Pendapatan</th><th class="num">Profit/Loss</th><th></th></tr>
</thead>
<tbody>
`); err != nil {
			return err
		}

		if len(d.Rows) == 0 {
			if _, err := io.WriteString(w, `<tr><td colspan="9" class="empty">Tidak ada project yang cocok.</td></tr>
`); err != nil {
				return err
			}
		}
		for _, r := range d.Rows {
			if _, err := fmt.Fprintf(w, `<tr>
<td><a href="/projects/%s">%s</a></td>
<td>%s</td>
<td>%s</td>
<td><span class="status status-%s">%s</span></td>
<td>%s</td>
<td>%s</td>
<td class="num">%s</td>
<td class="num %s">%s</td>
<td><button class="btn btn-danger btn-sm" hx-delete="/projects/%s" hx-confirm="Hapus project %s?" hx-target="#dashboard-content">Hapus</button></td>
</tr>
`,
				esc(r.ID), esc(r.Name), esc(r.Client), esc(r.Phone),
				esc(r.StatusValue), esc(r.StatusLabel), esc(r.SourceLabel),
				esc(r.CreatedDate), esc(r.Quotation),
				profitClass(r.ProfitNegative), esc(r.ProfitLoss),
				esc(r.ID), esc(r.Name),
			); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</tbody>
</table>
<div class="pager">
<span class="pager-info">Menampilkan %d-%d dari %d project</span>
`, d.Pagination.Start, d.Pagination.End, d.Pagination.TotalItems); err != nil {
			return err
		}
		if d.Pagination.HasPrev {
			if _, err := fmt.Fprintf(w, `<a class="btn btn-sm" href="%s" hx-get="%s" hx-target="#dashboard-content" hx-push-url="true">&laquo; Sebelumnya</a>
`, esc(d.Pagination.PrevURL), esc(d.Pagination.PrevURL)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<span class="pager-page">Halaman %d / %d</span>
`, d.Pagination.Page, d.Pagination.TotalPages); err != nil {
			return err
		}
		if d.Pagination.HasNext {
			if _, err := fmt.Fprintf(w, `<a class="btn btn-sm" href="%s" hx-get="%s" hx-target="#dashboard-content" hx-push-url="true">Selanjutnya &raquo;</a>
`, esc(d.Pagination.NextURL), esc(d.Pagination.NextURL)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>
`)
		return err
	})
}

func profitClass(negative bool) string {
	if negative {
		return "loss"
	}
	return "profit"
}

func selectedAttr(selected bool) string {
	if selected {
		return ` selected`
	}
	return ""
}
