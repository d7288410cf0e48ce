package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	tableHeaderBg   = &props.Color{Red: 41, Green: 128, Blue: 185}
	tableBorder     = &props.Color{Red: 200, Green: 200, Blue: 200}
	tableHeaderText = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// GeneratePDF creates the expense report PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data ReportData) ([]byte, error) {
	m := newReportDocument(data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// newReportDocument lays out the report without rendering it.
func newReportDocument(data ReportData) core.Maroto {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).
		WithTopMargin(14).
		WithRightMargin(14).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, data)
	addReportSummary(m, data)

	// The breakdown table only exists when there is something to list.
	if len(data.Rows) > 0 {
		m.AddRows(row.New(6))
		addExpenseTableHeader(m, data.Currency)
		for _, r := range data.Rows {
			addExpenseRow(m, r, data.Currency)
		}
	}

	return m
}

func addReportHeader(m core.Maroto, data ReportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Report Date: %s", data.GeneratedOn), props.Text{
					Size:  12,
					Align: align.Left,
				}),
			),
		),
	)
}

func addReportSummary(m core.Maroto, data ReportData) {
	s := data.Summary
	cur := data.Currency

	lines := []string{
		fmt.Sprintf("Monthly Income: %s", cur.FormatPDF(s.Income)),
		fmt.Sprintf("Total Expenses: %s", cur.FormatPDF(s.TotalExpenses)),
		fmt.Sprintf("%s: %s", s.Label, cur.FormatPDF(s.Magnitude)),
	}

	for _, line := range lines {
		m.AddRows(
			row.New(10).Add(
				col.New(12).Add(
					text.New(line, props.Text{
						Size:  12,
						Align: align.Left,
					}),
				),
			),
		)
	}
}

func addExpenseTableHeader(m core.Maroto, cur Currency) {
	headerCell := &props.Cell{
		BackgroundColor: tableHeaderBg,
		BorderType:      border.Full,
		BorderColor:     tableBorder,
		BorderThickness: 0.1,
	}
	headerText := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Top:   1.5,
		Left:  2,
		Right: 2,
		Align: align.Left,
		Color: tableHeaderText,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Expense Name", headerText),
			).WithStyle(headerCell),
			col.New(4).Add(
				text.New(fmt.Sprintf("Amount (%s)", cur.PDFSymbol()), headerText),
			).WithStyle(headerCell),
		),
	)
}

func addExpenseRow(m core.Maroto, r ReportRow, cur Currency) {
	gridCell := &props.Cell{
		BorderType:      border.Full,
		BorderColor:     tableBorder,
		BorderThickness: 0.1,
	}
	cellText := props.Text{
		Size:  10,
		Top:   1.5,
		Left:  2,
		Right: 2,
		Align: align.Left,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(
				text.New(r.Name, cellText),
			).WithStyle(gridCell),
			col.New(4).Add(
				text.New(cur.FormatNumber(r.Amount), cellText),
			).WithStyle(gridCell),
		),
	)
}
