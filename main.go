package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"expensecalc/config"
	"expensecalc/handlers"
	"expensecalc/templates"
)

func main() {
	app := pocketbase.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.BindFlags(app.RootCmd.PersistentFlags())

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		settings := handlers.Settings{
			Currency:   cfg.Currency(),
			DateLayout: cfg.DateLayout,
			Location:   cfg.Location(),
		}
		app.Logger().Info("calculator settings",
			"currency", settings.Currency.Code,
			"grouping", string(settings.Currency.Grouping),
			"timezone", settings.Location.String(),
		)

		se.Router.GET("/static/{path...}", apis.Static(templates.Static(), false))

		// ── Calculator ───────────────────────────────────────────
		se.Router.GET("/", handlers.HandleCalculatorPage(settings))
		se.Router.POST("/calculator/expenses", handlers.HandleAddExpense(app, settings))
		se.Router.DELETE("/calculator/expenses/{index}", handlers.HandleDeleteExpense(app, settings))
		se.Router.POST("/calculator/totals", handlers.HandleTotals(app, settings))

		// ── Reports ─────────────────────────────────────────────
		se.Router.POST("/report", handlers.HandleReportPDF(app, settings))
		se.Router.POST("/report/xlsx", handlers.HandleReportExcel(app, settings))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
