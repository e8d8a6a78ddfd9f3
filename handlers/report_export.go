package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/config"
	"nalabi/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

func buildReportExportData(app *pocketbase.PocketBase, cfg config.Config, e *core.RequestEvent) (services.ReportExportData, error) {
	projects, err := loadProjects(app)
	if err != nil {
		return services.ReportExportData{}, err
	}
	period := parseReportPeriod(e.Request)
	return services.BuildReportExport(cfg.CompanyName, projects, period.Year, period.Month), nil
}

// HandleReportExportExcel downloads the financial report as an Excel
// workbook for the selected period.
func HandleReportExportExcel(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildReportExportData(app, cfg, e)
		if err != nil {
			log.Printf("report_export_excel: %v", err)
			return e.String(http.StatusInternalServerError, "Gagal memuat data laporan")
		}

		xlsxBytes, err := services.GenerateReportExcel(data)
		if err != nil {
			log.Printf("report_export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Gagal membuat file Excel")
		}

		filename := fmt.Sprintf("Laporan_%s_%d.xlsx", sanitizeFilename(data.Period), data.Year)
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleReportExportPDF downloads the financial report as a PDF for the
// selected period.
func HandleReportExportPDF(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildReportExportData(app, cfg, e)
		if err != nil {
			log.Printf("report_export_pdf: %v", err)
			return e.String(http.StatusInternalServerError, "Gagal memuat data laporan")
		}

		pdfBytes, err := services.GenerateReportPDF(data)
		if err != nil {
			log.Printf("report_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Gagal membuat file PDF")
		}

		filename := fmt.Sprintf("Laporan_%s_%d.pdf", sanitizeFilename(data.Period), data.Year)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
