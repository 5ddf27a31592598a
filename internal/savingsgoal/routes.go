package savingsgoal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/analytics", h.Analytics)
	r.Get("/history", h.History)
	r.Post("/sync", h.Sync)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/funds", h.AddFunds)
	r.Post("/{id}/complete", h.Complete)

	return r
}
