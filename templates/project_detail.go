package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LineItemRow is one editable material or service line.
type LineItemRow struct {
	Name           string
	Unit           string
	QuotationPrice float64
	QuotationQty   float64
	RealPrice      float64
	RealQty        float64
}

// ACUnitRow is one AC unit line with its formatted amount.
type ACUnitRow struct {
	Brand  string
	PK     float64
	Type   string
	Qty    float64
	Price  float64
	Amount string
}

// DocumentItem is one uploaded file shown in a category section.
type DocumentItem struct {
	Name       string
	URL        string
	Path       string
	UploadedAt string
}

// DocumentSection groups the documents of one category.
type DocumentSection struct {
	Category string
	Label    string
	Items    []DocumentItem
}

// PhotoItem is one gallery photo.
type PhotoItem struct {
	URL  string
	Path string
}

// ProjectDetailData feeds the project detail page.
type ProjectDetailData struct {
	Layout LayoutData

	ID          string
	Name        string
	Client      string
	Phone       string
	Description string
	StatusValue string
	Statuses    []StatusOption
	SourceLabel string
	CreatedDate string

	Quotation      string
	Real           string
	ProfitLoss     string
	ProfitNegative bool

	Materials []LineItemRow
	Services  []LineItemRow
	ACUnits   []ACUnitRow
	ACTypes   []string

	Documents []DocumentSection
	Photos    []PhotoItem
	MaxPhotos int

	HasLocation bool
	Lat         float64
	Lng         float64
	Address     string
	MapZoom     int
}

// ProjectDetailPage renders the full project detail view: info, financial
// summary, editable line items and AC units, documents, photos and the
// location map.
func ProjectDetailPage(d ProjectDetailData) templ.Component {
	return Layout(d.Layout, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := renderDetailHeader(w, d); err != nil {
			return err
		}
		if err := renderInfoCard(w, d); err != nil {
			return err
		}
		if err := renderFinancialCards(w, d); err != nil {
			return err
		}
		if err := renderACUnits(w, d); err != nil {
			return err
		}
		if err := renderLineItems(w, "materials", "Material", d.Materials); err != nil {
			return err
		}
		if err := renderLineItems(w, "services", "Jasa", d.Services); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<div class="form-actions">
<button class="btn btn-primary" onclick="saveFinancial('%s')">Simpan Biaya &amp; Penawaran</button>
</div>
`, esc(d.ID)); err != nil {
			return err
		}
		if err := renderDocuments(w, d); err != nil {
			return err
		}
		if err := renderPhotos(w, d); err != nil {
			return err
		}
		if err := renderLocation(w, d); err != nil {
			return err
		}
		return renderDetailScript(w, d)
	}))
}

func renderDetailHeader(w io.Writer, d ProjectDetailData) error {
	_, err := fmt.Fprintf(w, `<div class="page-head">
<div>
<h1>%s</h1>
<p class="muted">%s &middot; %s &middot; %s</p>
</div>
<div class="page-actions">
<a class="btn" href="/projects/%s/export/pdf">Download Penawaran</a>
<button class="btn btn-danger" hx-delete="/projects/%s" hx-confirm="Hapus project %s beserta semua file?">Hapus</button>
</div>
</div>
`, esc(d.Name), esc(d.Client), esc(d.SourceLabel), esc(d.CreatedDate), esc(d.ID), esc(d.ID), esc(d.Name))
	return err
}

func renderInfoCard(w io.Writer, d ProjectDetailData) error {
	if _, err := fmt.Fprintf(w, `<section class="card">
<h2>Informasi Project</h2>
<form method="post" action="/projects/%s/info" class="form-grid">
<div class="form-field">
<label for="name">Nama Project *</label>
<input type="text" id="name" name="name" value="%s" required>
</div>
<div class="form-field">
<label for="client">Client *</label>
<input type="text" id="client" name="client" value="%s" required>
</div>
<div class="form-field">
<label for="phone">Telepon *</label>
<input type="tel" id="phone" name="phone" value="%s" required>
</div>
<div class="form-field">
<label for="status">Status</label>
<select id="status" name="status">
`, esc(d.ID), esc(d.Name), esc(d.Client), esc(d.Phone)); err != nil {
		return err
	}
	for _, s := range d.Statuses {
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(s.Value), selectedAttr(s.Selected), esc(s.Label)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, `</select>
</div>
<div class="form-field form-field-wide">
<label for="description">Deskripsi</label>
<textarea id="description" name="description" rows="3">%s</textarea>
</div>
<div class="form-actions form-field-wide">
<button type="submit" class="btn btn-primary">Simpan Informasi</button>
</div>
</form>
</section>
`, esc(d.Description))
	return err
}

func renderFinancialCards(w io.Writer, d ProjectDetailData) error {
	_, err := fmt.Fprintf(w, `<section class="stat-cards">
<div class="stat-card"><span class="stat-label">Total Penawaran</span><span class="stat-value">%s</span></div>
<div class="stat-card"><span class="stat-label">Total Biaya Real</span><span class="stat-value">%s</span></div>
<div class="stat-card"><span class="stat-label">Profit/Loss</span><span class="stat-value %s">%s</span></div>
</section>
`, esc(d.Quotation), esc(d.Real), profitClass(d.ProfitNegative), esc(d.ProfitLoss))
	return err
}

func renderACUnits(w io.Writer, d ProjectDetailData) error {
	if _, err := io.WriteString(w, `<section class="card">
<h2>Unit AC</h2>
<table class="data-table" id="acunits-table">
<thead><tr><th>Merk</th><th>PK</th><th>Tipe</th><th>Qty</th><th>Harga</th><th>Jumlah</th><th></th></tr></thead>
<tbody>
`); err != nil {
		return err
	}
	for i, u := range d.ACUnits {
		if _, err := fmt.Fprintf(w, `<tr data-index="%d">
<td><input type="text" data-field="brand" value="%s"></td>
<td><input type="number" step="0.5" min="0.5" max="5" data-field="pk" value="%g"></td>
<td><select data-field="type">
`, i, esc(u.Brand), u.PK); err != nil {
			return err
		}
		for _, t := range d.ACTypes {
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(t), selectedAttr(t == u.Type), esc(t)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</select></td>
<td><input type="number" min="0" data-field="qty" value="%g"></td>
<td><input type="number" min="0" data-field="price" value="%g"></td>
<td class="num">%s</td>
<td><button type="button" class="btn btn-sm btn-danger" onclick="this.closest('tr').remove()">Hapus</button></td>
</tr>
`, u.Qty, u.Price, esc(u.Amount)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, `</tbody>
</table>
<div class="form-actions">
<button type="button" class="btn" onclick="addACUnitRow()">Tambah Unit</button>
<button type="button" class="btn btn-primary" onclick="saveACUnits('%s')">Simpan Unit AC</button>
</div>
</section>
`, esc(d.ID))
	return err
}

func renderLineItems(w io.Writer, section, title string, rows []LineItemRow) error {
	if _, err := fmt.Fprintf(w, `<section class="card">
<h2>%s</h2>
<table class="data-table lineitem-table" data-section="%s">
<thead><tr><th>Nama</th><th>Satuan</th><th>Harga Penawaran</th><th>Qty Penawaran</th><th>Harga Real</th><th>Qty Real</th></tr></thead>
<tbody>
`, esc(title), esc(section)); err != nil {
		return err
	}
	for i, r := range rows {
		if _, err := fmt.Fprintf(w, `<tr data-index="%d">
<td><input type="text" data-field="name" value="%s"></td>
<td><input type="text" data-field="unit" value="%s"></td>
<td><input type="number" min="0" data-field="quotationPrice" value="%g"></td>
<td><input type="number" min="0" data-field="quotationQty" value="%g"></td>
<td><input type="number" min="0" data-field="realPrice" value="%g"></td>
<td><input type="number" min="0" data-field="realQty" value="%g"></td>
</tr>
`, i, esc(r.Name), esc(r.Unit), r.QuotationPrice, r.QuotationQty, r.RealPrice, r.RealQty); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tbody>
</table>
</section>
`)
	return err
}

func renderDocuments(w io.Writer, d ProjectDetailData) error {
	if _, err := io.WriteString(w, `<section class="card">
<h2>Dokumen</h2>
`); err != nil {
		return err
	}
	for _, sec := range d.Documents {
		if _, err := fmt.Fprintf(w, `<div class="doc-section">
<h3>%s</h3>
<form method="post" action="/projects/%s/documents/%s" enctype="multipart/form-data" class="upload-form">
<input type="file" name="file" required>
<button type="submit" class="btn btn-sm">Upload</button>
</form>
<ul class="doc-list">
`, esc(sec.Label), esc(d.ID), esc(sec.Category)); err != nil {
			return err
		}
		if len(sec.Items) == 0 {
			if _, err := io.WriteString(w, `<li class="muted">Belum ada dokumen.</li>
`); err != nil {
				return err
			}
		}
		for _, doc := range sec.Items {
			if _, err := fmt.Fprintf(w, `<li>
<a href="%s">%s</a> <span class="muted">%s</span>
<button class="btn btn-sm btn-danger" hx-delete="/projects/%s/documents/%s?path=%s" hx-confirm="Hapus dokumen %s?">Hapus</button>
</li>
`, esc(doc.URL), esc(doc.Name), esc(doc.UploadedAt), esc(d.ID), esc(sec.Category), esc(doc.Path), esc(doc.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>
</div>
`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</section>
`)
	return err
}

func renderPhotos(w io.Writer, d ProjectDetailData) error {
	if _, err := fmt.Fprintf(w, `<section class="card">
<h2>Foto Project (%d/%d)</h2>
<form method="post" action="/projects/%s/photos" enctype="multipart/form-data" class="upload-form">
<input type="file" name="file" accept="image/*" required>
<button type="submit" class="btn btn-sm">Upload Foto</button>
</form>
<div class="photo-grid">
`, len(d.Photos), d.MaxPhotos, esc(d.ID)); err != nil {
		return err
	}
	for _, ph := range d.Photos {
		if _, err := fmt.Fprintf(w, `<figure class="photo-item">
<a href="%s"><img src="%s" alt="Foto project" loading="lazy"></a>
<button class="btn btn-sm btn-danger" hx-delete="/projects/%s/photos?path=%s" hx-confirm="Hapus foto ini?">Hapus</button>
</figure>
`, esc(ph.URL), esc(ph.URL), esc(d.ID), esc(ph.Path)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>
</section>
`)
	return err
}

func renderLocation(w io.Writer, d ProjectDetailData) error {
	_, err := fmt.Fprintf(w, `<section class="card">
<h2>Lokasi</h2>
<div id="detail-map" class="picker-map"></div>
<form method="post" action="/projects/%s/location" class="form-grid">
<input type="hidden" id="latitude" name="latitude" value="%g">
<input type="hidden" id="longitude" name="longitude" value="%g">
<div class="form-field form-field-wide">
<label for="address">Alamat</label>
<input type="text" id="address" name="address" value="%s">
</div>
<div class="form-actions form-field-wide">
<button type="submit" class="btn btn-primary">Simpan Lokasi</button>
</div>
</form>
</section>
`, esc(d.ID), d.Lat, d.Lng, esc(d.Address))
	return err
}

func renderDetailScript(w io.Writer, d ProjectDetailData) error {
	hasLocation := "false"
	if d.HasLocation {
		hasLocation = "true"
	}
	_, err := fmt.Fprintf(w, `<script>
(function () {
  var hasLocation = %s;
  var map = L.map('detail-map').setView([%f, %f], %d);
  L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
  }).addTo(map);
  var marker = hasLocation ? L.marker([%f, %f]).addTo(map) : null;
  map.on('click', function (evt) {
    if (marker) { marker.setLatLng(evt.latlng); } else { marker = L.marker(evt.latlng).addTo(map); }
    document.getElementById('latitude').value = evt.latlng.lat;
    document.getElementById('longitude').value = evt.latlng.lng;
  });
})();

function collectRows(table, fields) {
  var rows = [];
  table.querySelectorAll('tbody tr').forEach(function (tr) {
    var row = {};
    fields.forEach(function (f) {
      var input = tr.querySelector('[data-field="' + f.name + '"]');
      row[f.name] = f.numeric ? (parseFloat(input.value) || 0) : input.value;
    });
    rows.push(row);
  });
  return rows;
}

var lineItemFields = [
  {name: 'name'}, {name: 'unit'},
  {name: 'quotationPrice', numeric: true}, {name: 'quotationQty', numeric: true},
  {name: 'realPrice', numeric: true}, {name: 'realQty', numeric: true}
];

function saveFinancial(id) {
  var payload = {};
  document.querySelectorAll('.lineitem-table').forEach(function (table) {
    payload[table.dataset.section] = collectRows(table, lineItemFields);
  });
  postJSON('/projects/' + id + '/financial', payload);
}

function saveACUnits(id) {
  var table = document.getElementById('acunits-table');
  var units = collectRows(table, [
    {name: 'brand'}, {name: 'pk', numeric: true}, {name: 'type'},
    {name: 'qty', numeric: true}, {name: 'price', numeric: true}
  ]);
  postJSON('/projects/' + id + '/acunits', {acUnits: units});
}

function addACUnitRow() {
  var tbody = document.querySelector('#acunits-table tbody');
  var tr = document.createElement('tr');
  tr.innerHTML = '<td><input type="text" data-field="brand"></td>' +
    '<td><input type="number" step="0.5" min="0.5" max="5" data-field="pk" value="1"></td>' +
    '<td><select data-field="type">%s</select></td>' +
    '<td><input type="number" min="0" data-field="qty" value="1"></td>' +
    '<td><input type="number" min="0" data-field="price" value="0"></td>' +
    '<td class="num">-</td>' +
    '<td><button type="button" class="btn btn-sm btn-danger" onclick="this.closest(\'tr\').remove()">Hapus</button></td>';
  tbody.appendChild(tr);
}

function postJSON(url, payload) {
  fetch(url, {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(payload)
  }).then(function (resp) {
    if (resp.ok) { location.reload(); } else { showToast('Gagal menyimpan perubahan', 'error'); }
  }).catch(function () { showToast('Gagal menyimpan perubahan', 'error'); });
}
</script>
`,
		hasLocation, d.Lat, d.Lng, d.MapZoom, d.Lat, d.Lng,
		acTypeOptionsHTML(d.ACTypes),
	)
	return err
}

func acTypeOptionsHTML(types []string) string {
	html := ""
	for _, t := range types {
		html += `<option value="` + esc(t) + `">` + esc(t) + `</option>`
	}
	return html
}
