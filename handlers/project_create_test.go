package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"nalabi/services"
	"nalabi/testhelpers"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleProjectCreate_RendersForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/projects/create", nil)
	rec := httptest.NewRecorder()

	if err := HandleProjectCreate(app, testConfig())(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Tambah Project", `name="name"`, `name="client"`, `name="phone"`, `name="status"`)
}

func TestHandleProjectSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "Pemasangan Gudang Sudiang")
	form.Set("client", "CV Berkah")
	form.Set("phone", "081234567890")
	form.Set("status", services.StatusSurvey)
	form.Set("latitude", "-5.08")
	form.Set("longitude", "119.52")
	form.Set("address", "Jl. Perintis Kemerdekaan KM 15")

	rec := httptest.NewRecorder()
	if err := HandleProjectSave(app)(newTestRequestEvent(app, postForm("/projects", form), rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}

	records, err := app.FindAllRecords("nala_projects")
	if err != nil {
		t.Fatalf("could not load records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	p := services.ProjectFromRecord(records[0])
	if p.Name != "Pemasangan Gudang Sudiang" || p.Status != services.StatusSurvey {
		t.Errorf("saved project = %s/%s", p.Name, p.Status)
	}
	if p.Source != services.SourceManual {
		t.Errorf("Source = %q, want manual", p.Source)
	}
	if len(p.Materials) != len(services.DefaultMaterials()) {
		t.Errorf("new project should start with the material template, got %d rows", len(p.Materials))
	}
	if len(p.Services) != len(services.DefaultServices()) {
		t.Errorf("new project should start with the service template, got %d rows", len(p.Services))
	}
	if p.Location == nil || p.Location.Address != "Jl. Perintis Kemerdekaan KM 15" {
		t.Errorf("Location = %+v, want picked position with address", p.Location)
	}

	loc := rec.Header().Get("Location")
	if loc != "/projects/"+records[0].Id {
		t.Errorf("redirect = %q, want the new project detail page", loc)
	}
}

func TestHandleProjectSave_MissingRequiredFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "Tanpa Client")

	rec := httptest.NewRecorder()
	if err := HandleProjectSave(app)(newTestRequestEvent(app, postForm("/projects", form), rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	records, _ := app.FindAllRecords("nala_projects")
	if len(records) != 0 {
		t.Errorf("no record should be created, got %d", len(records))
	}
}

func TestHandleProjectSave_InvalidStatusFallsBack(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "Status Aneh")
	form.Set("client", "Client")
	form.Set("phone", "0811")
	form.Set("status", "bogus")

	rec := httptest.NewRecorder()
	if err := HandleProjectSave(app)(newTestRequestEvent(app, postForm("/projects", form), rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, _ := app.FindAllRecords("nala_projects")
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if got := records[0].GetString("status"); got != services.StatusProspek {
		t.Errorf("status = %q, want fallback prospek", got)
	}
}

func TestHandleProjectSave_HTMXRedirect(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "HTMX Project")
	form.Set("client", "Client")
	form.Set("phone", "0811")

	req := postForm("/projects", form)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := HandleProjectSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, _ := app.FindAllRecords("nala_projects")
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/projects/"+records[0].Id)
}
