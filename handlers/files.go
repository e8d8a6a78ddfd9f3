package handlers

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleFileServe streams a stored project file (document or photo) back
// to the browser. Only keys under the projects prefix are reachable.
func HandleFileServe(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		key := e.Request.PathValue("path")
		if key == "" || strings.Contains(key, "..") || !strings.HasPrefix(key, projectsCollection+"/") {
			return e.String(http.StatusBadRequest, "Invalid file path")
		}

		fsys, err := app.NewFilesystem()
		if err != nil {
			log.Printf("files: filesystem unavailable: %v", err)
			return e.String(http.StatusInternalServerError, "Storage unavailable")
		}
		defer fsys.Close()

		if err := fsys.Serve(e.Response, e.Request, key, filepath.Base(key)); err != nil {
			log.Printf("files: serve %s: %v", key, err)
			return e.String(http.StatusNotFound, "File not found")
		}
		return nil
	}
}
