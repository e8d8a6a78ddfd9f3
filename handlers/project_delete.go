package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleProjectDelete removes a project and every file stored under it.
// The record goes first; stored files that fail to delete afterwards are
// logged and left behind rather than blocking the removal.
func HandleProjectDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		record, err := findProjectRecord(app, projectID)
		if err != nil {
			log.Printf("project_delete: could not find project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusNotFound, "Project tidak ditemukan")
		}
		name := record.GetString("name")

		if err := app.Delete(record); err != nil {
			log.Printf("project_delete: failed to delete project %s: %v", projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menghapus project")
		}

		fsys, err := app.NewFilesystem()
		if err != nil {
			log.Printf("project_delete: filesystem unavailable, files for %s left behind: %v", projectID, err)
		} else {
			defer fsys.Close()
			prefix := fmt.Sprintf("%s/%s/", projectsCollection, projectID)
			if errs := fsys.DeletePrefix(prefix); len(errs) > 0 {
				log.Printf("project_delete: %d stored files under %s could not be deleted", len(errs), prefix)
			}
		}

		log.Printf("project_delete: deleted project %s (%s)", projectID, name)
		SetToast(e, "success", fmt.Sprintf("Project %s dihapus", name))

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/")
	}
}
