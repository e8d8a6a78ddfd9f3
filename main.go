package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/collections"
	"nalabi/config"
	"nalabi/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := pocketbase.New()

	// Create collections, seed sample data and backfill legacy records on
	// startup.
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateProjectDefaults(app); err != nil {
			log.Printf("Warning: project defaults migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Resolve the session cookie on every request
		se.Router.BindFunc(handlers.LoadAuthState(app))

		// ── Auth ─────────────────────────────────────────────────
		se.Router.GET("/login", handlers.HandleLoginPage(app))
		se.Router.POST("/login", handlers.HandleLogin(app))
		se.Router.POST("/logout", handlers.HandleLogout())

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/", handlers.RequireAuth(handlers.HandleDashboard(app, cfg)))

		// ── Project CRUD ─────────────────────────────────────────
		se.Router.GET("/projects/create", handlers.RequireAuth(handlers.HandleProjectCreate(app, cfg)))
		se.Router.POST("/projects", handlers.RequireAuth(handlers.HandleProjectSave(app)))
		se.Router.GET("/projects/{id}", handlers.RequireAuth(handlers.HandleProjectView(app, cfg)))
		se.Router.POST("/projects/{id}/info", handlers.RequireAuth(handlers.HandleProjectInfoSave(app)))
		se.Router.POST("/projects/{id}/financial", handlers.RequireAuth(handlers.HandleProjectFinancialSave(app)))
		se.Router.POST("/projects/{id}/acunits", handlers.RequireAuth(handlers.HandleProjectACUnitsSave(app)))
		se.Router.POST("/projects/{id}/location", handlers.RequireAuth(handlers.HandleProjectLocationSave(app)))
		se.Router.DELETE("/projects/{id}", handlers.RequireAuth(handlers.HandleProjectDelete(app)))

		// ── Documents & photos ───────────────────────────────────
		se.Router.POST("/projects/{id}/documents/{category}", handlers.RequireAuth(handlers.HandleDocumentUpload(app, cfg)))
		se.Router.DELETE("/projects/{id}/documents/{category}", handlers.RequireAuth(handlers.HandleDocumentDelete(app)))
		se.Router.POST("/projects/{id}/photos", handlers.RequireAuth(handlers.HandlePhotoUpload(app, cfg)))
		se.Router.DELETE("/projects/{id}/photos", handlers.RequireAuth(handlers.HandlePhotoDelete(app)))
		se.Router.GET("/files/{path...}", handlers.RequireAuth(handlers.HandleFileServe(app)))

		// ── Reports & exports ────────────────────────────────────
		se.Router.GET("/reports", handlers.RequireAuth(handlers.HandleReports(app)))
		se.Router.GET("/reports/export/excel", handlers.RequireAuth(handlers.HandleReportExportExcel(app, cfg)))
		se.Router.GET("/reports/export/pdf", handlers.RequireAuth(handlers.HandleReportExportPDF(app, cfg)))
		se.Router.GET("/projects/{id}/export/pdf", handlers.RequireAuth(handlers.HandleQuotationExportPDF(app, cfg)))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
