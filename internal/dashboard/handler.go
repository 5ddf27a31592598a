package dashboard

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/centavo/centavo-api/internal/auth"
	"github.com/centavo/centavo-api/internal/budget"
	"github.com/centavo/centavo-api/internal/config"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) FinancialSummary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var from, to *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
		from = &parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
		to = &parsed
	}

	response, err := h.service.GetFinancialSummary(r.Context(), uuid.MustParse(claims.UserID), from, to)
	if err != nil {
		log.WithError(err).Error("Failed to load financial summary")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) TodaySpending(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := h.service.GetTodaySpending(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to load today's spending")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) BudgetProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	period := budget.Type(r.URL.Query().Get("period"))
	response, err := h.service.GetBudgetProgress(r.Context(), uuid.MustParse(claims.UserID), period)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to load budget progress")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) RecentExpenses(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	response, err := h.service.GetRecentExpenses(r.Context(), uuid.MustParse(claims.UserID), limit)
	if err != nil {
		log.WithError(err).Error("Failed to load recent expenses")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) ClearTransactions(w http.ResponseWriter, r *http.Request) {
	h.clear(w, r, "clear transactions", func(userID uuid.UUID) (any, error) {
		return h.service.ClearTransactions(r.Context(), userID)
	})
}

func (h *Handler) ClearBills(w http.ResponseWriter, r *http.Request) {
	h.clear(w, r, "clear bills", func(userID uuid.UUID) (any, error) {
		return h.service.ClearBills(r.Context(), userID)
	})
}

func (h *Handler) ClearSavingsGoals(w http.ResponseWriter, r *http.Request) {
	h.clear(w, r, "clear savings goals", func(userID uuid.UUID) (any, error) {
		return h.service.ClearSavingsGoals(r.Context(), userID)
	})
}

func (h *Handler) ClearAllUserData(w http.ResponseWriter, r *http.Request) {
	h.clear(w, r, "clear all user data", func(userID uuid.UUID) (any, error) {
		return h.service.ClearAllUserData(r.Context(), userID)
	})
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request, action string, fn func(uuid.UUID) (any, error)) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := fn(uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Errorf("Failed to %s", action)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}
