package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF renders the client-facing penawaran document for a
// project: AC units, materials and services with their quoted prices and
// the grand total.
func GenerateQuotationPDF(data QuotationExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)

	addQuotationSection(m, "Unit AC", data.ACUnits)
	addQuotationSection(m, "Material", data.Materials)
	addQuotationSection(m, "Jasa", data.Services)

	addQuotationTotal(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuotationHeader(m core.Maroto, data QuotationExportData) {
	gray := &props.Color{Red: 80, Green: 80, Blue: 80}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(data.CompanyName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("PENAWARAN", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: gray,
				}),
			),
		),
		row.New(4),
	)

	detail := func(label, value string) core.Row {
		return row.New(5).Add(
			col.New(3).Add(text.New(label, props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(9).Add(text.New(value, props.Text{Size: 9})),
		)
	}

	m.AddRows(
		detail("Project", data.ProjectName),
		detail("Client", data.Client),
		detail("Telepon", data.Phone),
		detail("Alamat", data.Address),
		detail("Tanggal", data.CreatedDate),
		row.New(4),
	)
}

func addQuotationSection(m core.Maroto, title string, rows []QuotationRow) {
	if len(rows) == 0 {
		return
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	headerBg := &props.Color{Red: 30, Green: 77, Blue: 140}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	m.AddRows(
		row.New(7).Add(
			col.New(5).Add(text.New("Deskripsi", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Satuan", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Harga", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Jumlah", headerText)).WithStyle(&headerCell),
		),
	)

	oddBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	for i, r := range rows {
		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: oddBg}
		}

		baseText := props.Text{Size: 8, Align: align.Left}
		centerText := baseText
		centerText.Align = align.Center
		rightText := baseText
		rightText.Align = align.Right

		cols := []core.Col{
			col.New(5).Add(text.New(r.Description, baseText)),
			col.New(1).Add(text.New(formatQty(r.Qty), centerText)),
			col.New(1).Add(text.New(r.Unit, centerText)),
			col.New(2).Add(text.New(FormatIDR(r.UnitPrice), rightText)),
			col.New(3).Add(text.New(FormatIDR(r.Amount), rightText)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(6).Add(cols...))
	}

	m.AddRows(row.New(4))
}

func addQuotationTotal(m core.Maroto, data QuotationExportData) {
	totalBg := &props.Color{Red: 232, Green: 238, Blue: 247}
	totalCell := &props.Cell{BackgroundColor: totalBg}

	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(
				text.New("TOTAL PENAWARAN", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			).WithStyle(totalCell),
			col.New(4).Add(
				text.New(FormatIDR(data.Total), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			).WithStyle(totalCell),
		),
	)
}

// formatQty renders a quantity without decimals when it is whole, with two
// decimals otherwise.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
