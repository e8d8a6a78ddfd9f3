package services

import "fmt"

// QuotationRow is one priced line on the quotation document.
type QuotationRow struct {
	Description string
	Qty         float64
	Unit        string
	UnitPrice   float64
	Amount      float64
}

// QuotationExportData holds everything the quotation PDF writer needs.
type QuotationExportData struct {
	CompanyName string
	ProjectName string
	Client      string
	Phone       string
	Address     string
	CreatedDate string
	ACUnits     []QuotationRow
	Materials   []QuotationRow
	Services    []QuotationRow
	Total       float64
}

// BuildQuotationExport assembles the penawaran payload for a single
// project. Line items with neither a price nor a quantity are left off the
// document; the template rows a survey never filled in are noise there.
func BuildQuotationExport(companyName string, p Project) QuotationExportData {
	data := QuotationExportData{
		CompanyName: companyName,
		ProjectName: p.Name,
		Client:      p.Client,
		Phone:       p.Phone,
		CreatedDate: FormatDate(p.Created),
		Total:       ComputeTotals(p).Quotation,
	}
	if p.Location != nil {
		data.Address = p.Location.Address
	}

	for _, u := range p.ACUnits {
		data.ACUnits = append(data.ACUnits, QuotationRow{
			Description: fmt.Sprintf("AC %s %.1f PK (%s)", u.Brand, u.PK, u.Type),
			Qty:         u.Qty,
			Unit:        "unit",
			UnitPrice:   u.Price,
			Amount:      u.Price * u.Qty,
		})
	}
	data.Materials = quotationRows(p.Materials)
	data.Services = quotationRows(p.Services)

	return data
}

func quotationRows(items []LineItem) []QuotationRow {
	var rows []QuotationRow
	for _, item := range items {
		if item.QuotationPrice == 0 && item.QuotationQty == 0 {
			continue
		}
		rows = append(rows, QuotationRow{
			Description: item.Name,
			Qty:         item.QuotationQty,
			Unit:        item.Unit,
			UnitPrice:   item.QuotationPrice,
			Amount:      item.QuotationPrice * item.QuotationQty,
		})
	}
	return rows
}
