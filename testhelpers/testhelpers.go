// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"nalabi/collections"
	"nalabi/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProject creates a minimal project record with the given name
// and status and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, name, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("nala_projects")
	if err != nil {
		t.Fatalf("failed to find nala_projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("client", "Test Client")
	record.Set("phone", "081234567890")
	record.Set("status", status)
	record.Set("source", services.SourceManual)
	record.Set("materials", services.DefaultMaterials())
	record.Set("services", services.DefaultServices())
	record.Set("ac_units", []services.ACUnit{})
	record.Set("documents", services.EmptyDocuments())
	record.Set("photos", []services.Photo{})

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// CreateTestProjectWithFinancials creates a project carrying the given AC
// units and line items so totals come out non-zero.
func CreateTestProjectWithFinancials(t *testing.T, app *pocketbase.PocketBase, name string, acUnits []services.ACUnit, materials, svcItems []services.LineItem) *core.Record {
	t.Helper()

	record := CreateTestProject(t, app, name, services.StatusPengerjaan)
	record.Set("ac_units", acUnits)
	record.Set("materials", materials)
	record.Set("services", svcItems)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project financials: %v", err)
	}
	return record
}

// SetTestProjectLocation places a project on the map.
func SetTestProjectLocation(t *testing.T, app *pocketbase.PocketBase, record *core.Record, lat, lng float64, address string) {
	t.Helper()

	record.Set("location", types.GeoPoint{Lon: lng, Lat: lat})
	record.Set("location_address", address)
	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project location: %v", err)
	}
}

// CreateTestUser creates a users auth record with a known password.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, email, password string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.SetEmail(email)
	record.SetPassword(password)
	record.SetVerified(true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}
	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
