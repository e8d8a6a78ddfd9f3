package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"nalabi/config"
	"nalabi/services"
	"nalabi/templates"
)

// HandleProjectCreate renders the intake form.
func HandleProjectCreate(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ProjectCreateData{
			Layout: templates.LayoutData{
				Title:     "Tambah Project",
				UserEmail: currentUserEmail(e.Request),
				Active:    "create",
			},
			Statuses:     statusOptions(services.StatusProspek),
			MapCenterLat: cfg.MapCenterLat,
			MapCenterLng: cfg.MapCenterLng,
			MapZoom:      cfg.MapZoom,
		}
		return templates.ProjectCreatePage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleProjectSave creates a new project from the intake form. The record
// starts with the standard material and service templates and empty
// document buckets, the way every manually entered project begins.
func HandleProjectSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form tidak valid")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		client := strings.TrimSpace(e.Request.FormValue("client"))
		phone := strings.TrimSpace(e.Request.FormValue("phone"))
		if name == "" || client == "" || phone == "" {
			return ErrorToast(e, http.StatusBadRequest, "Nama project, client, dan telepon wajib diisi")
		}

		status := e.Request.FormValue("status")
		if !validStatus(status) {
			status = services.StatusProspek
		}

		col, err := app.FindCollectionByNameOrId(projectsCollection)
		if err != nil {
			log.Printf("project_create: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Terjadi kesalahan, coba lagi")
		}

		record := core.NewRecord(col)
		record.Set("name", name)
		record.Set("client", client)
		record.Set("phone", phone)
		record.Set("description", strings.TrimSpace(e.Request.FormValue("description")))
		record.Set("status", status)
		record.Set("source", services.SourceManual)
		record.Set("materials", services.DefaultMaterials())
		record.Set("services", services.DefaultServices())
		record.Set("ac_units", []services.ACUnit{})
		record.Set("documents", services.EmptyDocuments())
		record.Set("photos", []services.Photo{})

		lat, latErr := strconv.ParseFloat(e.Request.FormValue("latitude"), 64)
		lng, lngErr := strconv.ParseFloat(e.Request.FormValue("longitude"), 64)
		if latErr == nil && lngErr == nil {
			record.Set("location", types.GeoPoint{Lon: lng, Lat: lat})
		}
		record.Set("location_address", strings.TrimSpace(e.Request.FormValue("address")))

		if err := app.Save(record); err != nil {
			log.Printf("project_create: could not save project: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan project")
		}

		SetToast(e, "success", "Project berhasil dibuat")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/projects/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/projects/"+record.Id)
	}
}

func statusOptions(selected string) []templates.StatusOption {
	options := make([]templates.StatusOption, 0, len(services.AllStatuses))
	for _, s := range services.AllStatuses {
		options = append(options, templates.StatusOption{
			Value:    s,
			Label:    services.StatusLabels[s],
			Selected: s == selected,
		})
	}
	return options
}

func validStatus(status string) bool {
	for _, s := range services.AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}
