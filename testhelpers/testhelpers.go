// Package testhelpers provides utilities for testing the PocketBase handlers.
package testhelpers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	return app
}

// Item is one listed expense as the page posts it.
type Item struct {
	Name   string
	Amount string
}

// CalculatorForm encodes a calculator state the way the page submits it.
func CalculatorForm(income string, items ...Item) url.Values {
	form := url.Values{}
	form.Set("income", income)
	for _, it := range items {
		form.Add("item_name", it.Name)
		form.Add("item_amount", it.Amount)
	}
	return form
}

// NewFormRequest builds a urlencoded POST request carrying form.
func NewFormRequest(method, target string, form url.Values) *http.Request {
	if method == http.MethodGet || method == http.MethodDelete {
		return httptest.NewRequest(method, target+"?"+form.Encode(), nil)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
