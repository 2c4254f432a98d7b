package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fintrack-server/src/auth"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"
	"fintrack-server/src/services"
)

// NewRouter wires every route to its handler. Services are built here
// from the store so main only has to hand over the infrastructure.
func NewRouter(cfg config.Config, store db.Store, cache *db.UserCache, jwtManager *auth.JWTManager) *chi.Mux {
	resolver := services.NewCategoryResolver(store)
	ledger := services.NewLedger(store, resolver)
	budgets := services.NewBudgets(store, resolver)
	goals := services.NewGoals(store)
	analytics := services.NewAnalytics(store)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.DemoModeMiddleware(cfg.DemoMode))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.Register(store, jwtManager))
		r.Post("/auth/login", handlers.Login(store, jwtManager))
		r.Post("/auth/demo", handlers.DemoLogin(store, jwtManager))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(jwtManager, store, cache)).Group(func(r chi.Router) {
			// User
			r.Get("/user/profile", handlers.Profile(store))
			r.Put("/user/profile", handlers.UpdateProfile(store))
			r.Post("/user/change-password", handlers.ChangePassword(store))
			r.Delete("/user", handlers.DeleteAccount(store, cache))

			// Transactions
			r.Post("/transactions", handlers.CreateTransaction(ledger))
			r.Get("/transactions", handlers.ListTransactions(ledger))
			r.Get("/transactions/{id}", handlers.GetTransaction(ledger))
			r.Put("/transactions/{id}", handlers.UpdateTransaction(ledger))
			r.Delete("/transactions/{id}", handlers.DeleteTransaction(ledger))

			// Categories
			r.Get("/categories", handlers.ListCategories(store))
			r.Post("/categories", handlers.CreateCategory(store))
			r.Put("/categories/{id}", handlers.UpdateCategory(store))
			r.Delete("/categories/{id}", handlers.DeleteCategory(store))

			// Budgets
			r.Post("/budgets", handlers.CreateBudget(budgets))
			r.Get("/budgets", handlers.ListBudgets(budgets))
			r.Get("/budgets/{id}", handlers.GetBudget(budgets))
			r.Get("/budgets/{id}/progress", handlers.BudgetProgress(budgets))
			r.Put("/budgets/{id}", handlers.UpdateBudget(budgets))
			r.Delete("/budgets/{id}", handlers.DeleteBudget(budgets))

			// Goals
			r.Post("/goals", handlers.CreateGoal(goals))
			r.Get("/goals", handlers.ListGoals(goals))
			r.Get("/goals/{id}", handlers.GetGoal(goals))
			r.Get("/goals/{id}/progress", handlers.GoalProgress(goals))
			r.Put("/goals/{id}", handlers.UpdateGoal(goals))
			r.Delete("/goals/{id}", handlers.DeleteGoal(goals))

			// Analytics
			r.Get("/analytics/dashboard", handlers.Dashboard(analytics))
			r.Get("/analytics/monthly", handlers.MonthlySeries(analytics))
			r.Get("/analytics/categories", handlers.CategoryTotals(analytics))
		})
	})

	return r
}
