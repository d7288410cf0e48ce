package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelSheetName = "Expense Report"

// GenerateExcel creates an Excel workbook from the given ReportData and
// returns the file contents as a byte slice.
func GenerateExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, excelSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet := excelSheetName

	if err := f.SetColWidth(sheet, "A", "A", 40); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 20); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 18},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	// Column header: bold white text on the report blue, grid borders.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  10,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#2980B9"},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	nameStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create name style: %w", err)
	}

	// Built-in number format 4 is "#,##0.00".
	amountStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
		NumFmt: 4,
	})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	// ── Title and summary (rows 1-6) ────────────────────────────────────

	if err := f.MergeCell(sheet, "A1", "B1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", data.Title)
	f.SetCellStyle(sheet, "A1", "B1", titleStyle)

	s := data.Summary
	cur := data.Currency
	summary := [][2]string{
		{"Report Date:", data.GeneratedOn},
		{"Monthly Income:", cur.Format(s.Income)},
		{"Total Expenses:", cur.Format(s.TotalExpenses)},
		{s.Label + ":", cur.Format(s.Magnitude)},
	}
	row := 2
	for _, line := range summary {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+rowStr, line[0])
		f.SetCellValue(sheet, "B"+rowStr, line[1])
		f.SetCellStyle(sheet, "A"+rowStr, "B"+rowStr, labelStyle)
		row++
	}

	if len(data.Rows) == 0 {
		return writeWorkbook(f)
	}

	// ── Expense table ───────────────────────────────────────────────────

	row++
	headerRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheet, "A"+headerRow, "Expense Name")
	f.SetCellValue(sheet, "B"+headerRow, fmt.Sprintf("Amount (%s)", cur.Symbol))
	f.SetCellStyle(sheet, "A"+headerRow, "B"+headerRow, headerStyle)
	row++

	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+rowStr, sanitizeExcelCell(r.Name))
		f.SetCellValue(sheet, "B"+rowStr, r.Amount.Round(2).InexactFloat64())
		f.SetCellStyle(sheet, "A"+rowStr, "A"+rowStr, nameStyle)
		f.SetCellStyle(sheet, "B"+rowStr, "B"+rowStr, amountStyle)
		row++
	}

	return writeWorkbook(f)
}

func writeWorkbook(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
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
			Style: 1,
		}
	}
	return borders
}
