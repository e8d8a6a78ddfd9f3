// Package templates renders the server-side views. Every page is a
// templ.Component built from a typed data struct that the handlers fill in;
// no handler passes raw records to a view.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func esc(s string) string {
	return templ.EscapeString(s)
}

// LayoutData carries the chrome shared by every page.
type LayoutData struct {
	Title     string
	UserEmail string
	// Active marks the highlighted nav entry: dashboard, create or reports.
	Active string
}

func navClass(active, item string) string {
	if active == item {
		return "nav-link active"
	}
	return "nav-link"
}

// Layout wraps a body component in the full HTML page: head with the
// stylesheet and the HTMX, Leaflet and Chart.js bundles, the nav bar and
// the toast plumbing.
func Layout(data LayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - NalaBI</title>
<link rel="stylesheet" href="/static/css/app.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.3/dist/chart.umd.min.js"></script>
</head>
<body>
<nav class="topbar">
<a class="brand" href="/">NalaBI</a>
<div class="nav-links">
<a class="%s" href="/">Dashboard</a>
<a class="%s" href="/projects/create">Tambah Project</a>
<a class="%s" href="/reports">Laporan</a>
</div>
<div class="nav-user">
<span class="nav-email">%s</span>
<form method="post" action="/logout" class="inline"><button type="submit" class="btn btn-link">Keluar</button></form>
</div>
</nav>
<div id="toast-container"></div>
<main class="container">
`,
			esc(data.Title),
			navClass(data.Active, "dashboard"),
			navClass(data.Active, "create"),
			navClass(data.Active, "reports"),
			esc(data.UserEmail),
		); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `
</main>
<script>
function showToast(message, type) {
  var c = document.getElementById('toast-container');
  var el = document.createElement('div');
  el.className = 'toast toast-' + (type || 'info');
  el.textContent = message;
  c.appendChild(el);
  setTimeout(function () { el.remove(); }, 4000);
}
document.body.addEventListener('showToast', function (evt) {
  showToast(evt.detail.message, evt.detail.type);
});
(function () {
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) return;
  document.cookie = 'flash_toast=; Path=/; Max-Age=0';
  try {
    var t = JSON.parse(decodeURIComponent(m[1]));
    showToast(t.message, t.type);
  } catch (e) {}
})();
</script>
</body>
</html>
`)
		return err
	})
}
