package services

import (
	"fmt"

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

// GenerateReportPDF renders the financial report as a portrait A4 PDF:
// header, yearly summary, the monthly table and the project listing.
func GenerateReportPDF(data ReportExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Halaman {current} dari {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, data)
	addReportSummary(m, data)
	addMonthlyTable(m, data)
	addProjectListing(m, data)
	addReportFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addReportHeader(m core.Maroto, data ReportExportData) {
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
		row.New(7).Add(
			col.New(12).Add(
				text.New(data.Period, props.Text{
					Size:  11,
					Align: align.Center,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(4),
	)
}

func addReportSummary(m core.Maroto, data ReportExportData) {
	summaryBg := &props.Color{Red: 232, Green: 238, Blue: 247}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	label := props.Text{Size: 8, Align: align.Center, Color: &props.Color{Red: 80, Green: 80, Blue: 80}}
	value := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Center, Top: 4}

	cell := func(caption, amount string) core.Col {
		return col.New(4).Add(
			text.New(caption, label),
			text.New(amount, value),
		).WithStyle(summaryCell)
	}

	m.AddRows(
		row.New(14).Add(
			cell("Total Pendapatan", FormatIDR(data.Total.Quotation)),
			cell("Total Biaya Real", FormatIDR(data.Total.Real)),
			cell(fmt.Sprintf("Profit/Loss (%.1f%%)", data.Total.MarginPercent), FormatIDR(data.Total.Profit)),
		),
		row.New(5),
	)
}

func addMonthlyTable(m core.Maroto, data ReportExportData) {
	addReportTableHeader(m, []reportColumn{
		{3, "Bulan", align.Left},
		{1, "Proj", align.Center},
		{1, "Selesai", align.Center},
		{3, "Pendapatan", align.Right},
		{2, "Biaya Real", align.Right},
		{2, "Profit/Loss", align.Right},
	})

	for i, r := range data.Rows {
		addMonthlyRow(m, r, i%2 == 1, false)
	}
	addMonthlyRow(m, data.Total, false, true)
	m.AddRows(row.New(6))
}

func addProjectListing(m core.Maroto, data ReportExportData) {
	if len(data.Projects) == 0 {
		return
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Daftar Project", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	addReportTableHeader(m, []reportColumn{
		{4, "Nama Project", align.Left},
		{2, "Client", align.Left},
		{2, "Status", align.Center},
		{2, "Pendapatan", align.Right},
		{2, "Profit/Loss", align.Right},
	})

	oddBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	for i, p := range data.Projects {
		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: oddBg}
		}

		baseText := props.Text{Size: 7, Align: align.Left}
		centerText := baseText
		centerText.Align = align.Center
		rightText := baseText
		rightText.Align = align.Right

		cols := []core.Col{
			col.New(4).Add(text.New(p.Name, baseText)),
			col.New(2).Add(text.New(p.Client, baseText)),
			col.New(2).Add(text.New(p.Status, centerText)),
			col.New(2).Add(text.New(FormatIDR(p.Quotation), rightText)),
			col.New(2).Add(text.New(FormatIDR(p.Profit), rightText)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(6).Add(cols...))
	}
}

type reportColumn struct {
	span  int
	title string
	align align.Type
}

func addReportTableHeader(m core.Maroto, cols []reportColumn) {
	headerBg := &props.Color{Red: 30, Green: 77, Blue: 140}
	headerCell := props.Cell{BackgroundColor: headerBg}

	rowCols := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		rowCols = append(rowCols, col.New(c.span).Add(
			text.New(c.title, props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: c.align,
				Color: &props.Color{Red: 255, Green: 255, Blue: 255},
			}),
		).WithStyle(&headerCell))
	}
	m.AddRows(row.New(8).Add(rowCols...))
}

func addMonthlyRow(m core.Maroto, r ReportRow, shaded, total bool) {
	var cellStyle *props.Cell
	textStyle := fontstyle.Normal
	if shaded {
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	}
	if total {
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 232, Green: 238, Blue: 247}}
		textStyle = fontstyle.Bold
	}

	baseText := props.Text{Size: 7, Style: textStyle, Align: align.Left}
	centerText := baseText
	centerText.Align = align.Center
	rightText := baseText
	rightText.Align = align.Right

	cols := []core.Col{
		col.New(3).Add(text.New(r.Month, baseText)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.ProjectCount), centerText)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.CompletedCount), centerText)),
		col.New(3).Add(text.New(FormatIDR(r.Quotation), rightText)),
		col.New(2).Add(text.New(FormatIDR(r.Real), rightText)),
		col.New(2).Add(text.New(FormatIDR(r.Profit), rightText)),
	}
	if cellStyle != nil {
		for j := range cols {
			cols[j] = cols[j].WithStyle(cellStyle)
		}
	}
	m.AddRows(row.New(6).Add(cols...))
}

func addReportFooter(m core.Maroto, data ReportExportData) {
	m.AddRows(
		row.New(6),
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Dibuat %s", data.GeneratedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
