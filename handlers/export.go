package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"expensecalc/services"
)

// NothingToReportMessage is returned as plain text; the page shows it with alert().
const NothingToReportMessage = "Please add income and/or expenses before generating report"

type reportFormat struct {
	name        string
	filename    string
	contentType string
	failure     string
	generate    func(*services.Calculator, services.ReportOptions) ([]byte, error)
}

var (
	pdfReport = reportFormat{
		name:        "export_pdf",
		filename:    services.ReportFilenamePDF,
		contentType: "application/pdf",
		failure:     "Failed to generate PDF. Please try again.",
		generate:    services.GenerateReport,
	}
	excelReport = reportFormat{
		name:        "export_excel",
		filename:    services.ReportFilenameExcel,
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		failure:     "Failed to generate Excel file. Please try again.",
		generate:    services.GenerateReportExcel,
	}
)

// HandleReportPDF returns a handler that generates and downloads the PDF report
// for the posted calculator state.
func HandleReportPDF(app core.App, settings Settings) func(*core.RequestEvent) error {
	return handleReport(app, settings, pdfReport)
}

// HandleReportExcel returns a handler that generates and downloads the same
// report as an Excel workbook.
func HandleReportExcel(app core.App, settings Settings) func(*core.RequestEvent) error {
	return handleReport(app, settings, excelReport)
}

func handleReport(app core.App, settings Settings, format reportFormat) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		calc, _, err := calculatorFromRequest(e.Request)
		if err != nil {
			app.Logger().Warn(format.name+": invalid form", "error", err)
			return e.String(http.StatusBadRequest, "Invalid form submission")
		}

		doc, err := format.generate(calc, settings.reportOptions())
		switch {
		case errors.Is(err, services.ErrNothingToReport):
			return e.String(http.StatusUnprocessableEntity, NothingToReportMessage)
		case err != nil:
			app.Logger().Error(format.name+": failed to generate",
				"error", err,
				"expenses", len(calc.Expenses),
			)
			return e.String(http.StatusInternalServerError, format.failure)
		}

		e.Response.Header().Set("Content-Type", format.contentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.filename))
		e.Response.Header().Set("Content-Length", strconv.Itoa(len(doc)))
		e.Response.WriteHeader(http.StatusOK)
		e.Response.Write(doc)
		return nil
	}
}
