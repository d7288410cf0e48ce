package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingToReport means the income is blank and there are no expenses.
	ErrNothingToReport = errors.New("nothing to report")
	// ErrReportFailed wraps any failure while building a document.
	ErrReportFailed = errors.New("report generation failed")
)

type renderFunc func(ReportData) ([]byte, error)

// GenerateReport renders the calculator as a PDF document.
func GenerateReport(c *Calculator, opts ReportOptions) ([]byte, error) {
	return renderReport(c, opts, GeneratePDF)
}

// GenerateReportExcel renders the same report as an XLSX workbook.
func GenerateReportExcel(c *Calculator, opts ReportOptions) ([]byte, error) {
	return renderReport(c, opts, GenerateExcel)
}

// renderReport returns either the complete document or an error, never a
// partial one. Panics from the layout libraries are reported as errors.
func renderReport(c *Calculator, opts ReportOptions, render renderFunc) (doc []byte, err error) {
	if !c.HasReportData() {
		return nil, ErrNothingToReport
	}

	data := BuildReportData(c, opts)

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: panic: %v", ErrReportFailed, r)
		}
	}()

	out, err := render(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportFailed, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrReportFailed)
	}
	return out, nil
}
