package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/centavo/centavo-api/internal/auth"
	"github.com/centavo/centavo-api/internal/bill"
	"github.com/centavo/centavo-api/internal/budget"
	"github.com/centavo/centavo-api/internal/category"
	"github.com/centavo/centavo-api/internal/dashboard"
	"github.com/centavo/centavo-api/internal/middlewares"
	"github.com/centavo/centavo-api/internal/savingsgoal"
	"github.com/centavo/centavo-api/internal/transaction"
	"github.com/centavo/centavo-api/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	CategoryHandler    *category.Handler
	TransactionHandler *transaction.Handler
	BudgetHandler      *budget.Handler
	BillHandler        *bill.Handler
	SavingsGoalHandler *savingsgoal.Handler
	DashboardHandler   *dashboard.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/categories", category.Routes(cfg.CategoryHandler))
		r.Mount("/transactions", transaction.Routes(cfg.TransactionHandler))
		r.Mount("/budgets", budget.Routes(cfg.BudgetHandler))
		r.Mount("/bills", bill.Routes(cfg.BillHandler))
		r.Mount("/savings-goals", savingsgoal.Routes(cfg.SavingsGoalHandler))
		r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
	})

	return r
}
