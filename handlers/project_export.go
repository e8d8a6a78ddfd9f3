package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/config"
	"nalabi/services"
)

// HandleQuotationExportPDF downloads the client-facing penawaran PDF for
// one project.
func HandleQuotationExportPDF(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		record, err := findProjectRecord(app, projectID)
		if err != nil {
			log.Printf("project_export: could not find project %s: %v", projectID, err)
			return e.String(http.StatusNotFound, "Project tidak ditemukan")
		}

		project := services.ProjectFromRecord(record)
		data := services.BuildQuotationExport(cfg.CompanyName, project)

		pdfBytes, err := services.GenerateQuotationPDF(data)
		if err != nil {
			log.Printf("project_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Gagal membuat file PDF")
		}

		filename := fmt.Sprintf("Penawaran_%s_%d.pdf", sanitizeFilename(project.Name), time.Now().Year())
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
