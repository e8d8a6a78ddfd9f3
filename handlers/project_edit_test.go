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

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleProjectFinancialSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestProject(t, app, "Ruko Pettarani", services.StatusPengerjaan)

	body := `{
		"materials": [
			{"name": "Pipa AC 1/4 + 3/8", "unit": "meter", "quotationPrice": 85000, "quotationQty": 12, "realPrice": 78000, "realQty": 12}
		],
		"services": [
			{"name": "Jasa Pasang", "unit": "unit", "quotationPrice": 350000, "quotationQty": 2}
		]
	}`

	req := postJSON("/projects/"+record.Id+"/financial", body)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()

	if err := HandleProjectFinancialSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	saved, err := findProjectRecord(app, record.Id)
	if err != nil {
		t.Fatalf("could not reload record: %v", err)
	}
	p := services.ProjectFromRecord(saved)
	if len(p.Materials) != 1 || p.Materials[0].QuotationPrice != 85000 {
		t.Errorf("Materials = %+v", p.Materials)
	}
	if len(p.Services) != 1 || p.Services[0].QuotationQty != 2 {
		t.Errorf("Services = %+v", p.Services)
	}

	totals := services.ComputeTotals(p)
	if totals.Quotation != 85000*12+350000*2 {
		t.Errorf("Quotation = %v after save", totals.Quotation)
	}
}

func TestHandleProjectFinancialSave_UnknownProject(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := postJSON("/projects/missing/financial", `{"materials":[],"services":[]}`)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	if err := HandleProjectFinancialSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleProjectACUnitsSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestProject(t, app, "Kantor BTP", services.StatusSurvey)

	body := `{"acUnits": [{"brand": "Daikin", "pk": 1.5, "type": "split", "qty": 2, "price": 4500000}]}`
	req := postJSON("/projects/"+record.Id+"/acunits", body)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()

	if err := HandleProjectACUnitsSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	saved, _ := findProjectRecord(app, record.Id)
	p := services.ProjectFromRecord(saved)
	if len(p.ACUnits) != 1 || p.ACUnits[0].Brand != "Daikin" || p.ACUnits[0].Qty != 2 {
		t.Errorf("ACUnits = %+v", p.ACUnits)
	}
}

func TestHandleProjectInfoSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestProject(t, app, "Nama Lama", services.StatusProspek)

	form := url.Values{}
	form.Set("name", "Nama Baru")
	form.Set("client", "Client Baru")
	form.Set("phone", "0899")
	form.Set("status", services.StatusSelesai)
	form.Set("description", "Selesai dikerjakan")

	req := postForm("/projects/"+record.Id+"/info", form)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()

	if err := HandleProjectInfoSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}

	saved, _ := findProjectRecord(app, record.Id)
	if saved.GetString("name") != "Nama Baru" || saved.GetString("status") != services.StatusSelesai {
		t.Errorf("saved = %s/%s", saved.GetString("name"), saved.GetString("status"))
	}
	if saved.GetString("description") != "Selesai dikerjakan" {
		t.Errorf("description = %q", saved.GetString("description"))
	}
}

func TestHandleProjectLocationSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestProject(t, app, "Lokasi Baru", services.StatusProspek)

	form := url.Values{}
	form.Set("latitude", "-5.135")
	form.Set("longitude", "119.423")
	form.Set("address", "Jl. Boulevard No. 1")

	req := postForm("/projects/"+record.Id+"/location", form)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()

	if err := HandleProjectLocationSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	saved, _ := findProjectRecord(app, record.Id)
	p := services.ProjectFromRecord(saved)
	if p.Location == nil {
		t.Fatal("Location not saved")
	}
	if p.Location.Lat != -5.135 || p.Location.Lng != 119.423 {
		t.Errorf("Location = %+v", p.Location)
	}
	if p.Location.Address != "Jl. Boulevard No. 1" {
		t.Errorf("Address = %q", p.Location.Address)
	}
}
