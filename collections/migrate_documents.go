package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"nalabi/services"
)

// MigrateProjectDefaults backfills older project records so the rest of the
// app can rely on a complete shape: every document category key present,
// the line-item templates in place when both lists are empty, and a source
// value on records created before sources were tracked.
func MigrateProjectDefaults(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("nala_projects")
	if err != nil {
		return fmt.Errorf("nala_projects collection not found: %w", err)
	}

	records, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	migrated := 0
	for _, rec := range records {
		changed := false

		var docs map[string][]services.Document
		rec.UnmarshalJSONField("documents", &docs)
		if docs == nil {
			docs = map[string][]services.Document{}
		}
		for _, cat := range services.DocumentCategories {
			if _, ok := docs[cat]; !ok {
				docs[cat] = []services.Document{}
				changed = true
			}
		}
		if changed {
			rec.Set("documents", docs)
		}

		var materials, svcItems []services.LineItem
		rec.UnmarshalJSONField("materials", &materials)
		rec.UnmarshalJSONField("services", &svcItems)
		if len(materials) == 0 && len(svcItems) == 0 {
			rec.Set("materials", services.DefaultMaterials())
			rec.Set("services", services.DefaultServices())
			changed = true
		}

		if rec.GetString("source") == "" {
			rec.Set("source", services.SourceManual)
			changed = true
		}

		if !changed {
			continue
		}
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("migrate project %s: %w", rec.Id, err)
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("Migration: backfilled defaults on %d projects.", migrated)
	}
	return nil
}
