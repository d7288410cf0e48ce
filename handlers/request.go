package handlers

import (
	"fmt"
	"net/http"
	"time"

	"expensecalc/services"
	"expensecalc/templates"
)

// Settings carries the display options shared by every handler.
type Settings struct {
	Currency   services.Currency
	DateLayout string
	Location   *time.Location
	// Now is overridable in tests.
	Now func() time.Time
}

func (s Settings) reportOptions() services.ReportOptions {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return services.ReportOptions{
		Currency:    s.Currency,
		DateLayout:  s.DateLayout,
		GeneratedAt: now().In(loc),
	}
}

// calculatorFromRequest rebuilds the calculator state the page posted: the
// income, the listed expenses (item_name/item_amount pairs in order) and the
// pending add-expense inputs.
func calculatorFromRequest(r *http.Request) (*services.Calculator, services.ExpenseInput, error) {
	if err := r.ParseForm(); err != nil {
		return nil, services.ExpenseInput{}, fmt.Errorf("parse form: %w", err)
	}

	names := r.Form["item_name"]
	amounts := r.Form["item_amount"]
	n := min(len(names), len(amounts))

	calc := &services.Calculator{
		Income:   r.Form.Get("income"),
		Expenses: make([]services.Expense, 0, n),
	}
	for i := 0; i < n; i++ {
		calc.Expenses = append(calc.Expenses, services.Expense{
			Name:   names[i],
			Amount: services.ParseAmount(amounts[i]),
		})
	}

	entry := services.ExpenseInput{
		Name:   r.Form.Get("expense_name"),
		Amount: r.Form.Get("expense_amount"),
	}
	return calc, entry, nil
}

func buildTotalsData(calc *services.Calculator, cur services.Currency) templates.TotalsData {
	s := calc.Summary()
	return templates.TotalsData{
		Income:        cur.Format(s.Income),
		TotalExpenses: cur.Format(s.TotalExpenses),
		SavingsLabel:  s.Label,
		Savings:       cur.Format(s.Magnitude),
		IsLoss:        s.IsLoss,
	}
}

func buildCalculatorData(calc *services.Calculator, entry services.ExpenseInput, cur services.Currency) templates.CalculatorData {
	rows := make([]templates.ExpenseRow, 0, len(calc.Expenses))
	for i, e := range calc.Expenses {
		rows = append(rows, templates.ExpenseRow{
			Index:       i,
			Name:        e.Name,
			Amount:      cur.Format(e.Amount),
			AmountValue: e.Amount.String(),
		})
	}

	return templates.CalculatorData{
		Income:      calc.Income,
		EntryName:   entry.Name,
		EntryAmount: entry.Amount,
		Expenses:    rows,
		Totals:      buildTotalsData(calc, cur),
	}
}
