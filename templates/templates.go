// Package templates renders the calculator page and its HTMX fragments.
package templates

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/a-h/templ"
)

//go:embed *.html
var pageFiles embed.FS

//go:embed static
var staticFiles embed.FS

var pages = template.Must(template.New("calculator").ParseFS(pageFiles, "*.html"))

// CalculatorPage is the full document served on first load.
func CalculatorPage(data CalculatorData) templ.Component {
	return templ.FromGoHTML(pages.Lookup("page"), data)
}

// CalculatorBody is the fragment swapped after adding or deleting an expense.
func CalculatorBody(data CalculatorData) templ.Component {
	return templ.FromGoHTML(pages.Lookup("body"), data)
}

// Totals is the fragment swapped while the income is being typed.
func Totals(data TotalsData) templ.Component {
	return templ.FromGoHTML(pages.Lookup("totals"), data)
}

// Static returns the embedded JS/CSS assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
