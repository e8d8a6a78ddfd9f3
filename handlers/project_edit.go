package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"nalabi/services"
)

// Edits save whole field groups at a time: the detail page posts the
// complete materials/services tables or the complete AC unit list, never a
// single cell. That keeps each save a single record write.

// HandleProjectInfoSave updates the scalar project fields from the detail
// page info form.
func HandleProjectInfoSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record := requestProject(app, e)
		if record == nil {
			return nil
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form tidak valid")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		client := strings.TrimSpace(e.Request.FormValue("client"))
		phone := strings.TrimSpace(e.Request.FormValue("phone"))
		if name == "" || client == "" || phone == "" {
			return ErrorToast(e, http.StatusBadRequest, "Nama project, client, dan telepon wajib diisi")
		}

		record.Set("name", name)
		record.Set("client", client)
		record.Set("phone", phone)
		record.Set("description", strings.TrimSpace(e.Request.FormValue("description")))
		if status := e.Request.FormValue("status"); validStatus(status) {
			record.Set("status", status)
		}

		if err := app.Save(record); err != nil {
			log.Printf("project_edit: save info for %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan perubahan")
		}

		SetToast(e, "success", "Informasi project disimpan")
		return e.Redirect(http.StatusFound, "/projects/"+record.Id)
	}
}

type financialPayload struct {
	Materials []services.LineItem `json:"materials"`
	Services  []services.LineItem `json:"services"`
}

// HandleProjectFinancialSave replaces the material and service tables from
// the detail page editor. The payload is JSON; absent numeric fields decode
// to zero, which matches how the totals treat them.
func HandleProjectFinancialSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record := requestProject(app, e)
		if record == nil {
			return nil
		}

		var payload financialPayload
		if err := e.BindBody(&payload); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Data tidak valid")
		}

		record.Set("materials", payload.Materials)
		record.Set("services", payload.Services)
		if err := app.Save(record); err != nil {
			log.Printf("project_edit: save financial for %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan perubahan")
		}

		SetToast(e, "success", "Biaya dan penawaran disimpan")
		return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

type acUnitsPayload struct {
	ACUnits []services.ACUnit `json:"acUnits"`
}

// HandleProjectACUnitsSave replaces the AC unit list.
func HandleProjectACUnitsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record := requestProject(app, e)
		if record == nil {
			return nil
		}

		var payload acUnitsPayload
		if err := e.BindBody(&payload); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Data tidak valid")
		}

		record.Set("ac_units", payload.ACUnits)
		if err := app.Save(record); err != nil {
			log.Printf("project_edit: save ac units for %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan perubahan")
		}

		SetToast(e, "success", "Unit AC disimpan")
		return e.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// HandleProjectLocationSave updates the picked map position and address.
func HandleProjectLocationSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record := requestProject(app, e)
		if record == nil {
			return nil
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form tidak valid")
		}

		lat, latErr := strconv.ParseFloat(e.Request.FormValue("latitude"), 64)
		lng, lngErr := strconv.ParseFloat(e.Request.FormValue("longitude"), 64)
		if latErr == nil && lngErr == nil {
			record.Set("location", types.GeoPoint{Lon: lng, Lat: lat})
		}
		record.Set("location_address", strings.TrimSpace(e.Request.FormValue("address")))

		if err := app.Save(record); err != nil {
			log.Printf("project_edit: save location for %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Gagal menyimpan lokasi")
		}

		SetToast(e, "success", "Lokasi disimpan")
		return e.Redirect(http.StatusFound, "/projects/"+record.Id)
	}
}

// requestProject resolves the {id} path parameter to a project record.
// It writes the error response and returns nil when the lookup fails.
func requestProject(app *pocketbase.PocketBase, e *core.RequestEvent) *core.Record {
	projectID := e.Request.PathValue("id")
	if projectID == "" {
		e.String(http.StatusBadRequest, "Missing project ID")
		return nil
	}
	record, err := findProjectRecord(app, projectID)
	if err != nil {
		log.Printf("project_edit: could not find project %s: %v", projectID, err)
		ErrorToast(e, http.StatusNotFound, "Project tidak ditemukan")
		return nil
	}
	return record
}
