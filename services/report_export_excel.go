package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheetName = "Laporan"
const reportProjectSheetName = "Daftar Project"

// GenerateReportExcel writes the financial report as an Excel workbook with
// two sheets: the monthly breakdown and the project listing. Returns the
// raw xlsx bytes.
func GenerateReportExcel(data ReportExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	styles, err := newReportStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeMonthlySheet(f, data, styles); err != nil {
		return nil, err
	}
	if err := writeProjectSheet(f, data, styles); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type reportStyles struct {
	title  int
	sub    int
	header int
	body   int
	total  int
}

func newReportStyles(f *excelize.File) (reportStyles, error) {
	var s reportStyles
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	s.sub, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create subtitle style: %w", err)
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1E4D8C"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	s.body, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create body style: %w", err)
	}

	s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#E8EEF7"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create total style: %w", err)
	}

	return s, nil
}

func writeMonthlySheet(f *excelize.File, data ReportExportData, styles reportStyles) error {
	sheet := reportSheetName

	widths := []float64{14, 10, 10, 18, 18, 18, 10}
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(data.CompanyName))
	f.SetCellStyle(sheet, "A1", lastCol+"1", styles.title)

	if err := f.MergeCell(sheet, "A2", lastCol+"2"); err != nil {
		return fmt.Errorf("merge period: %w", err)
	}
	f.SetCellValue(sheet, "A2", data.Period)
	f.SetCellStyle(sheet, "A2", lastCol+"2", styles.sub)

	headers := []string{"Bulan", "Projects", "Selesai", "Pendapatan", "Biaya Real", "Profit/Loss", "Margin %"}
	for i, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%s4", columns[i]), h)
	}
	f.SetCellStyle(sheet, "A4", lastCol+"4", styles.header)

	row := 5
	writeRow := func(r ReportRow, style int) {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+rowStr, r.Month)
		f.SetCellValue(sheet, "B"+rowStr, r.ProjectCount)
		f.SetCellValue(sheet, "C"+rowStr, r.CompletedCount)
		f.SetCellValue(sheet, "D"+rowStr, r.Quotation)
		f.SetCellValue(sheet, "E"+rowStr, r.Real)
		f.SetCellValue(sheet, "F"+rowStr, r.Profit)
		f.SetCellValue(sheet, "G"+rowStr, fmt.Sprintf("%.1f%%", r.MarginPercent))
		f.SetCellStyle(sheet, "A"+rowStr, lastCol+rowStr, style)
		row++
	}

	for _, r := range data.Rows {
		writeRow(r, styles.body)
	}
	writeRow(data.Total, styles.total)

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Dibuat: "+data.GeneratedDate)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.sub)

	return nil
}

func writeProjectSheet(f *excelize.File, data ReportExportData, styles reportStyles) error {
	sheet := reportProjectSheetName
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create project sheet: %w", err)
	}

	widths := []float64{30, 24, 14, 16, 18, 18}
	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headers := []string{"Nama Project", "Client", "Status", "Tanggal", "Pendapatan", "Profit/Loss"}
	for i, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%s1", columns[i]), h)
	}
	f.SetCellStyle(sheet, "A1", lastCol+"1", styles.header)

	for i, p := range data.Projects {
		rowStr := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+rowStr, sanitizeExcelCell(p.Name))
		f.SetCellValue(sheet, "B"+rowStr, sanitizeExcelCell(p.Client))
		f.SetCellValue(sheet, "C"+rowStr, p.Status)
		f.SetCellValue(sheet, "D"+rowStr, p.CreatedDate)
		f.SetCellValue(sheet, "E"+rowStr, p.Quotation)
		f.SetCellValue(sheet, "F"+rowStr, p.Profit)
		f.SetCellStyle(sheet, "A"+rowStr, lastCol+rowStr, styles.body)
	}

	return nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
