// Package services holds the calculator state, money formatting and report
// rendering used by the HTTP handlers.
package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// ErrExpenseNotFound is returned when a delete targets a position outside the list.
var ErrExpenseNotFound = errors.New("expense not found")

const (
	LabelSavings = "Savings"
	LabelLoss    = "Loss"
)

// Expense is one named outflow. Amount is already parsed.
type Expense struct {
	Name   string
	Amount decimal.Decimal
}

// ExpenseInput is the raw text of the add-expense form.
type ExpenseInput struct {
	Name   string
	Amount string
}

// Validate only checks presence; amounts are coerced, never rejected.
func (in ExpenseInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Amount, validation.Required),
	)
}

// Calculator is the whole state of one expense form: the raw income text and
// the ordered expense list.
type Calculator struct {
	Income   string
	Expenses []Expense
}

// AddExpense appends the entry to the end of the list. When either field is
// empty the list is left untouched and the validation error is returned.
func (c *Calculator) AddExpense(in ExpenseInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	c.Expenses = append(c.Expenses, Expense{
		Name:   in.Name,
		Amount: ParseAmount(in.Amount),
	})
	return nil
}

// DeleteExpense removes the expense at index. Remaining entries keep their
// relative order.
func (c *Calculator) DeleteExpense(index int) error {
	if index < 0 || index >= len(c.Expenses) {
		return fmt.Errorf("%w: index %d of %d", ErrExpenseNotFound, index, len(c.Expenses))
	}
	c.Expenses = slices.Delete(c.Expenses, index, index+1)
	return nil
}

// IncomeAmount is the income coerced to a number (zero when blank or invalid).
func (c *Calculator) IncomeAmount() decimal.Decimal {
	return ParseAmount(c.Income)
}

func (c *Calculator) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalSavings is income minus total expenses; negative means a loss.
func (c *Calculator) TotalSavings() decimal.Decimal {
	return c.IncomeAmount().Sub(c.TotalExpenses())
}

// HasReportData reports whether there is anything worth putting in a report:
// some income text or at least one expense.
func (c *Calculator) HasReportData() bool {
	return strings.TrimSpace(c.Income) != "" || len(c.Expenses) > 0
}

// Summary is the derived totals block shown on the page and in reports.
type Summary struct {
	Income        decimal.Decimal
	TotalExpenses decimal.Decimal
	Savings       decimal.Decimal
	// Magnitude is |Savings|, the figure displayed next to Label.
	Magnitude decimal.Decimal
	Label     string
	IsLoss    bool
}

func (c *Calculator) Summary() Summary {
	savings := c.TotalSavings()
	s := Summary{
		Income:        c.IncomeAmount(),
		TotalExpenses: c.TotalExpenses(),
		Savings:       savings,
		Magnitude:     savings.Abs(),
		Label:         LabelSavings,
	}
	if savings.IsNegative() {
		s.Label = LabelLoss
		s.IsLoss = true
	}
	return s
}
