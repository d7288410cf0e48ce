package services

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Grouping selects how the integer part of an amount is split with commas.
type Grouping string

const (
	// GroupingIndian groups the last 3 digits, then pairs (1,23,45,678.90).
	GroupingIndian  Grouping = "indian"
	GroupingWestern Grouping = "western"
	GroupingNone    Grouping = "none"
)

// ParseGrouping returns the grouping named by s.
func ParseGrouping(s string) (Grouping, error) {
	switch g := Grouping(strings.ToLower(strings.TrimSpace(s))); g {
	case GroupingIndian, GroupingWestern, GroupingNone:
		return g, nil
	}
	return "", fmt.Errorf("unknown grouping %q: must be indian, western or none", s)
}

// Currency describes how money is printed. Only one currency is ever in use.
type Currency struct {
	Symbol   string
	Code     string
	Grouping Grouping
}

var DefaultCurrency = Currency{Symbol: "₹", Code: "INR", Grouping: GroupingIndian}

// Format prints amount with the currency symbol and exactly 2 decimal places,
// e.g. ₹1,23,456.78 or -₹100.00.
func (c Currency) Format(amount decimal.Decimal) string {
	return c.format(c.Symbol, amount)
}

// FormatNumber is Format without the symbol.
func (c Currency) FormatNumber(amount decimal.Decimal) string {
	return c.format("", amount)
}

// FormatPDF is Format using PDFSymbol.
func (c Currency) FormatPDF(amount decimal.Decimal) string {
	return c.format(c.PDFSymbol(), amount)
}

// PDFSymbol returns the symbol if the PDF core fonts can draw it (Latin-1),
// otherwise the currency code followed by a space.
func (c Currency) PDFSymbol() string {
	for _, r := range c.Symbol {
		if r > 0xFF {
			return c.Code + " "
		}
	}
	return c.Symbol
}

func (c Currency) format(symbol string, amount decimal.Decimal) string {
	raw := amount.Abs().StringFixed(2)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := symbol + c.group(intPart) + "." + decPart
	// Amounts that round to zero never carry a sign.
	if amount.IsNegative() && raw != "0.00" {
		result = "-" + result
	}
	return result
}

func (c Currency) group(intPart string) string {
	switch c.Grouping {
	case GroupingIndian:
		return applyIndianGrouping(intPart)
	case GroupingWestern:
		n, ok := new(big.Int).SetString(intPart, 10)
		if !ok {
			return intPart
		}
		return humanize.BigComma(n)
	}
	return intPart
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
