package collections_test

import (
	"testing"

	"nalabi/collections"
	"nalabi/services"
	"nalabi/testhelpers"
)

func TestSetup_CreatesProjectsCollection(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("nala_projects")
	if err != nil {
		t.Fatalf("nala_projects collection not created: %v", err)
	}

	for _, field := range []string{
		"name", "client", "phone", "description", "status", "source",
		"location", "location_address",
		"materials", "services", "ac_units", "documents", "photos",
		"created", "updated",
	} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("missing field %q", field)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// A second run must not fail or duplicate anything.
	collections.Setup(app)

	if _, err := app.FindCollectionByNameOrId("nala_projects"); err != nil {
		t.Fatalf("collection missing after second Setup: %v", err)
	}
}

func TestSetup_SeedsOperatorAccount(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	user, err := app.FindAuthRecordByEmail("users", collections.DefaultOperatorEmail)
	if err != nil {
		t.Fatalf("operator account not seeded: %v", err)
	}
	if !user.Verified() {
		t.Error("operator account should be verified")
	}
}

func TestSetup_StatusFieldAcceptsFullVocabulary(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	for _, status := range services.AllStatuses {
		testhelpers.CreateTestProject(t, app, "Status "+status, status)
	}

	records, err := app.FindAllRecords("nala_projects")
	if err != nil {
		t.Fatalf("could not load records: %v", err)
	}
	if len(records) != len(services.AllStatuses) {
		t.Errorf("saved %d records, want %d", len(records), len(services.AllStatuses))
	}
}
