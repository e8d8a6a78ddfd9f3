package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/services"
)

// DefaultOperatorEmail is the seeded operator login. The password should be
// changed through the PocketBase dashboard on a real install.
const (
	DefaultOperatorEmail    = "admin@nala.co.id"
	defaultOperatorPassword = "nalabi12345"
)

// Setup programmatically ensures the nala_projects collection exists and
// that the built-in users auth collection has an operator account to log
// in with.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "nala_projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    services.AllStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "source",
			Values:    []string{services.SourceManual, services.SourceSurveyApp},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.GeoPointField{Name: "location"})
		c.Fields.Add(&core.TextField{Name: "location_address"})
		c.Fields.Add(&core.JSONField{Name: "materials"})
		c.Fields.Add(&core.JSONField{Name: "services"})
		c.Fields.Add(&core.JSONField{Name: "ac_units"})
		c.Fields.Add(&core.JSONField{Name: "documents"})
		c.Fields.Add(&core.JSONField{Name: "photos"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureOperatorAccount(app)
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

// ensureOperatorAccount seeds the operator login in the users auth
// collection if it does not exist yet.
func ensureOperatorAccount(app *pocketbase.PocketBase) {
	if _, err := app.FindAuthRecordByEmail("users", DefaultOperatorEmail); err == nil {
		return
	}

	usersCol, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		log.Printf("users collection not found, skipping operator seed: %v", err)
		return
	}

	record := core.NewRecord(usersCol)
	record.SetEmail(DefaultOperatorEmail)
	record.SetPassword(defaultOperatorPassword)
	record.SetVerified(true)
	record.Set("name", "Operator Nala")

	if err := app.Save(record); err != nil {
		log.Printf("Failed to seed operator account: %v", err)
		return
	}
	fmt.Printf("Created operator account %q\n", DefaultOperatorEmail)
}
