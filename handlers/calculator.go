package handlers

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"expensecalc/services"
	"expensecalc/templates"
)

func render(e *core.RequestEvent, component templ.Component) error {
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(e.Request.Context(), e.Response)
}

// HandleCalculatorPage serves the page with an empty calculator. State lives
// in the page, so every load starts fresh.
func HandleCalculatorPage(settings Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		calc := &services.Calculator{}
		data := buildCalculatorData(calc, services.ExpenseInput{}, settings.Currency)
		return render(e, templates.CalculatorPage(data))
	}
}

// HandleAddExpense appends the pending entry and returns the refreshed
// calculator body with the entry inputs cleared. A submission with a missing
// field is ignored and the inputs keep what the user typed.
func HandleAddExpense(app core.App, settings Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		calc, entry, err := calculatorFromRequest(e.Request)
		if err != nil {
			app.Logger().Warn("add_expense: invalid form", "error", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid form submission")
		}

		if err := calc.AddExpense(entry); err != nil {
			app.Logger().Debug("add_expense: ignored incomplete entry", "error", err)
			return render(e, templates.CalculatorBody(buildCalculatorData(calc, entry, settings.Currency)))
		}

		data := buildCalculatorData(calc, services.ExpenseInput{}, settings.Currency)
		return render(e, templates.CalculatorBody(data))
	}
}

// HandleDeleteExpense removes the expense at the {index} path position and
// returns the refreshed calculator body.
func HandleDeleteExpense(app core.App, settings Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid expense index")
		}

		calc, entry, err := calculatorFromRequest(e.Request)
		if err != nil {
			app.Logger().Warn("delete_expense: invalid form", "error", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid form submission")
		}

		if err := calc.DeleteExpense(index); err != nil {
			app.Logger().Warn("delete_expense: stale index", "index", index, "error", err)
			return ErrorToast(e, http.StatusNotFound, "Expense not found")
		}

		return render(e, templates.CalculatorBody(buildCalculatorData(calc, entry, settings.Currency)))
	}
}

// HandleTotals re-renders only the totals card while the income is edited.
func HandleTotals(app core.App, settings Settings) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		calc, _, err := calculatorFromRequest(e.Request)
		if err != nil {
			app.Logger().Warn("totals: invalid form", "error", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid form submission")
		}
		return render(e, templates.Totals(buildTotalsData(calc, settings.Currency)))
	}
}
