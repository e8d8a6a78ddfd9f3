package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// StatusOption is one entry of a status dropdown.
type StatusOption struct {
	Value    string
	Label    string
	Selected bool
}

// ProjectCreateData feeds the intake form.
type ProjectCreateData struct {
	Layout       LayoutData
	Statuses     []StatusOption
	MapCenterLat float64
	MapCenterLng float64
	MapZoom      int
}

// ProjectCreatePage renders the new-project intake form with the location
// picker map.
func ProjectCreatePage(d ProjectCreateData) templ.Component {
	return Layout(d.Layout, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Tambah Project</h1>
<form method="post" action="/projects" class="card form-grid">
<div class="form-field">
<label for="name">Nama Project *</label>
<input type="text" id="name" name="name" required>
</div>
<div class="form-field">
<label for="client">Nama Client *</label>
<input type="text" id="client" name="client" required>
</div>
<div class="form-field">
<label for="phone">Telepon *</label>
<input type="tel" id="phone" name="phone" required>
</div>
<div class="form-field">
<label for="status">Status</label>
<select id="status" name="status">
`); err != nil {
			return err
		}

		for _, s := range d.Statuses {
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(s.Value), selectedAttr(s.Selected), esc(s.Label)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</select>
</div>
<div class="form-field form-field-wide">
<label for="description">Deskripsi</label>
<textarea id="description" name="description" rows="3"></textarea>
</div>
<div class="form-field form-field-wide">
<label>Lokasi</label>
<div id="picker-map" class="picker-map"></div>
<input type="hidden" id="latitude" name="latitude">
<input type="hidden" id="longitude" name="longitude">
<input type="text" id="address" name="address" placeholder="Alamat lokasi">
<p class="hint">Klik peta untuk menandai lokasi project.</p>
</div>
<div class="form-actions form-field-wide">
<button type="submit" class="btn btn-primary">Simpan Project</button>
<a href="/" class="btn">Batal</a>
</div>
</form>
<script>
(function () {
  var map = L.map('picker-map').setView([%f, %f], %d);
  L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
  }).addTo(map);
  var marker = null;
  map.on('click', function (evt) {
    if (marker) { marker.setLatLng(evt.latlng); } else { marker = L.marker(evt.latlng).addTo(map); }
    document.getElementById('latitude').value = evt.latlng.lat;
    document.getElementById('longitude').value = evt.latlng.lng;
  });
})();
</script>
`, d.MapCenterLat, d.MapCenterLng, d.MapZoom); err != nil {
			return err
		}
		return nil
	}))
}
