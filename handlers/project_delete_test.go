package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nalabi/services"
	"nalabi/testhelpers"
)

func TestHandleProjectDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestProject(t, app, "Akan Dihapus", services.StatusDitolak)

	req := httptest.NewRequest(http.MethodDelete, "/projects/"+record.Id, nil)
	req.SetPathValue("id", record.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := HandleProjectDelete(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/")

	if _, err := findProjectRecord(app, record.Id); err == nil {
		t.Error("record still exists after delete")
	}
}

func TestHandleProjectDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/projects/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	if err := HandleProjectDelete(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleProjectDelete_PlainRequestRedirects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestProject(t, app, "Tanpa HTMX", services.StatusProspek)

	req := httptest.NewRequest(http.MethodDelete, "/projects/"+record.Id, nil)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()

	if err := HandleProjectDelete(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}
