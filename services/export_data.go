package services

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ReportTitle         = "Monthly Expense Report"
	ReportFilenamePDF   = "expense-report.pdf"
	ReportFilenameExcel = "expense-report.xlsx"
)

// ReportRow is one expense line in an export, in list order.
type ReportRow struct {
	Name   string
	Amount decimal.Decimal
}

// ReportData holds everything an export renders. It is a snapshot of the
// calculator taken at generation time.
type ReportData struct {
	Title       string
	GeneratedOn string
	Summary     Summary
	Rows        []ReportRow
	Currency    Currency
}

// ReportOptions controls presentation details that do not come from the form.
type ReportOptions struct {
	Currency    Currency
	DateLayout  string
	GeneratedAt time.Time
}

// BuildReportData snapshots the calculator for export.
func BuildReportData(c *Calculator, opts ReportOptions) ReportData {
	layout := opts.DateLayout
	if layout == "" {
		layout = "02/01/2006"
	}

	rows := make([]ReportRow, 0, len(c.Expenses))
	for _, e := range c.Expenses {
		rows = append(rows, ReportRow{Name: e.Name, Amount: e.Amount})
	}

	return ReportData{
		Title:       ReportTitle,
		GeneratedOn: opts.GeneratedAt.Format(layout),
		Summary:     c.Summary(),
		Rows:        rows,
		Currency:    opts.Currency,
	}
}
