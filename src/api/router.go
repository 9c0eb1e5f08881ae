package api

import (
	"log/slog"
	"net/http"

	"financezenn-server/src/handlers"
	"financezenn-server/src/middleware"
	"financezenn-server/src/store"

	"github.com/go-chi/chi/v5"
)

// Deps carries everything the routes need. Cache, Advisor, Publisher and
// Sender are optional and must be left as untyped nil when disabled.
type Deps struct {
	Store          store.RecordStore
	Auth           *middleware.Auth
	Cache          handlers.SummaryCache
	Advisor        handlers.Advisor
	Publisher      handlers.Publisher
	Sender         handlers.Sender
	Logger         *slog.Logger
	AllowedOrigins []string
	DemoMode       bool
}

func NewRouter(d Deps) *chi.Mux {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	s, c := d.Store, d.Cache

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(d.AllowedOrigins))
	r.Use(middleware.DemoModeMiddleware(d.DemoMode))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(s, d.Auth))
		r.Post("/register", handlers.Register(s, d.Auth))

		// Protected routes
		r.With(d.Auth.JWTAuthMiddleware).Group(func(r chi.Router) {
			r.Get("/me", handlers.GetMe(s))

			// Transactions
			r.Get("/transactions", handlers.GetTransactions(s))
			r.Post("/transactions", handlers.CreateTransaction(s, c))
			r.Put("/transactions/{id}", handlers.UpdateTransaction(s, c))
			r.Delete("/transactions/{id}", handlers.DeleteTransaction(s, c))

			// Investments
			r.Get("/investments", handlers.GetInvestments(s))
			r.Get("/investments/overview", handlers.GetPortfolioOverview(s))
			r.Post("/investments", handlers.CreateInvestment(s, c))
			r.Put("/investments/{id}", handlers.UpdateInvestment(s, c))
			r.Delete("/investments/{id}", handlers.DeleteInvestment(s, c))

			// Debts
			r.Get("/debts", handlers.GetDebts(s))
			r.Get("/debts/overview", handlers.GetDebtOverview(s))
			r.Post("/debts", handlers.CreateDebt(s, c))
			r.Put("/debts/{id}", handlers.UpdateDebt(s, c))
			r.Delete("/debts/{id}", handlers.DeleteDebt(s, c))

			// Goals
			r.Get("/goals", handlers.GetGoals(s))
			r.Get("/goals/overview", handlers.GetGoalsOverview(s))
			r.Post("/goals", handlers.CreateGoal(s, c))
			r.Put("/goals/{id}", handlers.UpdateGoal(s, c))
			r.Delete("/goals/{id}", handlers.DeleteGoal(s, c))

			// Params
			r.Get("/params", handlers.GetParams(s))
			r.Put("/params", handlers.UpdateParams(s, c))

			// Dashboard
			r.Get("/dashboard/summary", handlers.GetSummary(s, c))
			r.Get("/dashboard/insights", handlers.GetInsights(s, c))
			r.Get("/dashboard/charts/cashflow.png", handlers.GetCashflowChart(s, c))
			r.Get("/dashboard/charts/expenses.png", handlers.GetExpensesChart(s))

			// Advice
			r.Post("/advice/financial", handlers.GetFinancialAdvice(s, c, d.Advisor))
			r.Post("/advice/debts", handlers.GetDebtAdvice(s, d.Advisor))
			r.Post("/advice/investments", handlers.GetInvestmentAdvice(s, d.Advisor))

			// Notifications
			r.Post("/notifications", handlers.SendNotification(s, c, d.Publisher, d.Sender))
		})
	})

	return r
}
