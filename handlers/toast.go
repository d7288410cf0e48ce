package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

type toast struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SetToast asks the page to show a toast. HTMX requests receive it through
// the HX-Trigger header (merged with any trigger already set); a short-lived
// flash_toast cookie carries it across full page loads.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	t := toast{Message: message, Type: toastType}

	triggers := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &triggers); err != nil {
			logToastError(e, "existing HX-Trigger is not valid JSON, overwriting", err)
			triggers = map[string]any{}
		}
	}
	triggers["showToast"] = t

	data, err := json.Marshal(triggers)
	if err != nil {
		logToastError(e, "failed to marshal HX-Trigger JSON", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(t)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     "flash_toast",
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by app.js
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast sets an error toast and stops HTMX from swapping the error text
// into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}

func logToastError(e *core.RequestEvent, msg string, err error) {
	if e.App == nil {
		return
	}
	e.App.Logger().Warn("toast: "+msg, "error", err)
}
