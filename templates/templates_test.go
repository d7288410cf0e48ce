package templates

import (
	"bytes"
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestCalculatorPage_RendersState(t *testing.T) {
	data := CalculatorData{
		Income:      "5000",
		EntryName:   "Pending",
		EntryAmount: "12",
		Expenses: []ExpenseRow{
			{Index: 0, Name: "Rent", Amount: "₹1,500.00", AmountValue: "1500"},
			{Index: 1, Name: "<script>", Amount: "₹800.00", AmountValue: "800"},
		},
		Totals: TotalsData{
			Income:        "₹5,000.00",
			TotalExpenses: "₹2,300.00",
			SavingsLabel:  "Savings",
			Savings:       "₹2,700.00",
		},
	}

	var buf bytes.Buffer
	if err := CalculatorPage(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	body := buf.String()

	for _, frag := range []string{
		`<form id="calculator"`,
		`name="income" value="5000"`,
		`name="expense_name" value="Pending"`,
		`name="item_name" value="Rent"`,
		`name="item_amount" value="1500"`,
		`hx-delete="/calculator/expenses/1"`,
		"Total Expenses: ₹2,300.00",
		`class="positive">Savings: ₹2,700.00`,
		"&lt;script&gt;",
	} {
		if !strings.Contains(body, frag) {
			t.Errorf("expected page to contain %q", frag)
		}
	}
	if strings.Contains(body, "<span><script>") {
		t.Error("expense name was not escaped")
	}
}

func TestCalculatorBody_IsFragment(t *testing.T) {
	var buf bytes.Buffer
	if err := CalculatorBody(CalculatorData{}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	body := buf.String()
	if !strings.HasPrefix(body, `<div id="calculator-body">`) {
		t.Errorf("fragment should start with the body container, got %q", body[:min(len(body), 60)])
	}
	if strings.Contains(body, "<html") {
		t.Error("fragment must not contain the page shell")
	}
}

func TestTotals_LossClass(t *testing.T) {
	var buf bytes.Buffer
	data := TotalsData{Income: "₹1,000.00", TotalExpenses: "₹1,500.00", SavingsLabel: "Loss", Savings: "₹500.00", IsLoss: true}
	if err := Totals(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), `class="negative">Loss: ₹500.00`) {
		t.Errorf("unexpected totals fragment: %s", buf.String())
	}
}

func TestStatic_ServesAssets(t *testing.T) {
	for _, name := range []string{"app.js", "app.css"} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("expected embedded asset %s: %v", name, err)
		}
	}
}
