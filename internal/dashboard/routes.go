package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/summary", h.FinancialSummary)
	r.Get("/today", h.TodaySpending)
	r.Get("/budget-progress", h.BudgetProgress)
	r.Get("/recent-expenses", h.RecentExpenses)

	r.Delete("/transactions", h.ClearTransactions)
	r.Delete("/bills", h.ClearBills)
	r.Delete("/savings-goals", h.ClearSavingsGoals)
	r.Delete("/all", h.ClearAllUserData)

	return r
}
