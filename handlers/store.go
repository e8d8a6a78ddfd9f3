package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/services"
)

const projectsCollection = "nala_projects"

// loadProjects fetches every project, converted and sorted newest first.
// The whole data set of a single company stays small enough that the
// dashboard filters work on the full in-memory list.
func loadProjects(app *pocketbase.PocketBase) ([]services.Project, error) {
	col, err := app.FindCollectionByNameOrId(projectsCollection)
	if err != nil {
		return nil, fmt.Errorf("%s collection not found: %w", projectsCollection, err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return services.ProjectsFromRecords(records), nil
}

// findProjectRecord fetches a single project record by id.
func findProjectRecord(app *pocketbase.PocketBase, id string) (*core.Record, error) {
	return app.FindRecordById(projectsCollection, id)
}
