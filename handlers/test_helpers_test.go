package handlers

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"expensecalc/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

func testSettings() Settings {
	return Settings{
		Currency:   services.DefaultCurrency,
		DateLayout: "02/01/2006",
		Location:   time.UTC,
		Now: func() time.Time {
			return time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
		},
	}
}
