package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"nalabi/config"
	"nalabi/services"
	"nalabi/templates"
)

// HandleProjectView renders the project detail page.
func HandleProjectView(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		record, err := findProjectRecord(app, projectID)
		if err != nil {
			log.Printf("project_view: could not find project %s: %v", projectID, err)
			SetToast(e, "error", "Project tidak ditemukan")
			return e.Redirect(http.StatusFound, "/")
		}

		project := services.ProjectFromRecord(record)
		data := buildProjectDetailData(project, cfg)
		data.Layout = templates.LayoutData{
			Title:     project.Name,
			UserEmail: currentUserEmail(e.Request),
		}
		return templates.ProjectDetailPage(data).Render(e.Request.Context(), e.Response)
	}
}

func buildProjectDetailData(p services.Project, cfg config.Config) templates.ProjectDetailData {
	totals := services.ComputeTotals(p)

	data := templates.ProjectDetailData{
		ID:             p.ID,
		Name:           p.Name,
		Client:         p.Client,
		Phone:          p.Phone,
		Description:    p.Description,
		StatusValue:    p.Status,
		Statuses:       statusOptions(p.Status),
		SourceLabel:    services.SourceLabels[p.Source],
		CreatedDate:    services.FormatDate(p.Created),
		Quotation:      services.FormatIDR(totals.Quotation),
		Real:           services.FormatIDR(totals.Real),
		ProfitLoss:     services.FormatIDR(totals.ProfitLoss),
		ProfitNegative: totals.ProfitLoss < 0,
		ACTypes:        services.ACTypes,
		MaxPhotos:      cfg.MaxPhotos,
		MapZoom:        cfg.MapZoom,
		Lat:            cfg.MapCenterLat,
		Lng:            cfg.MapCenterLng,
	}

	for _, item := range p.Materials {
		data.Materials = append(data.Materials, lineItemRow(item))
	}
	for _, item := range p.Services {
		data.Services = append(data.Services, lineItemRow(item))
	}
	for _, u := range p.ACUnits {
		data.ACUnits = append(data.ACUnits, templates.ACUnitRow{
			Brand:  u.Brand,
			PK:     u.PK,
			Type:   u.Type,
			Qty:    u.Qty,
			Price:  u.Price,
			Amount: services.FormatIDR(u.Price * u.Qty),
		})
	}

	for _, cat := range services.DocumentCategories {
		section := templates.DocumentSection{
			Category: cat,
			Label:    services.DocumentCategoryLabels[cat],
		}
		for _, doc := range p.Documents[cat] {
			section.Items = append(section.Items, templates.DocumentItem{
				Name:       doc.Name,
				URL:        doc.URL,
				Path:       doc.Path,
				UploadedAt: doc.UploadedAt,
			})
		}
		data.Documents = append(data.Documents, section)
	}

	for _, ph := range p.Photos {
		data.Photos = append(data.Photos, templates.PhotoItem{URL: ph.URL, Path: ph.Path})
	}

	if p.Location != nil {
		data.HasLocation = true
		data.Lat = p.Location.Lat
		data.Lng = p.Location.Lng
		data.Address = p.Location.Address
	}
	return data
}

func lineItemRow(item services.LineItem) templates.LineItemRow {
	return templates.LineItemRow{
		Name:           item.Name,
		Unit:           item.Unit,
		QuotationPrice: item.QuotationPrice,
		QuotationQty:   item.QuotationQty,
		RealPrice:      item.RealPrice,
		RealQty:        item.RealQty,
	}
}
