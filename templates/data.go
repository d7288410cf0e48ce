package templates

// ExpenseRow is one entry of the breakdown list.
type ExpenseRow struct {
	Index int
	Name  string
	// Amount is the display string; AmountValue round-trips through the form.
	Amount      string
	AmountValue string
}

type TotalsData struct {
	Income        string
	TotalExpenses string
	SavingsLabel  string
	Savings       string
	IsLoss        bool
}

// CalculatorData is everything the page needs to render one calculator state.
type CalculatorData struct {
	Income      string
	EntryName   string
	EntryAmount string
	Expenses    []ExpenseRow
	Totals      TotalsData
}
