package savingsgoal

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/centavo/centavo-api/internal/auth"
	"github.com/centavo/centavo-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var completed *bool
	if raw := r.URL.Query().Get("status"); raw != "" {
		switch raw {
		case "completed":
			value := true
			completed = &value
		case "active":
			value := false
			completed = &value
		default:
			http.Error(w, "status must be active or completed", http.StatusBadRequest)
			return
		}
	}

	responses, err := h.service.GetGoals(r.Context(), uuid.MustParse(claims.UserID), completed)
	if err != nil {
		log.WithError(err).Error("Failed to list savings goals")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		h.writeError(w, log, err, "Failed to create savings goal")
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, goalID, ok := h.authAndID(w, r)
	if !ok {
		return
	}

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Update(r.Context(), goalID, uuid.MustParse(claims.UserID), dto)
	if err != nil {
		h.writeError(w, log, err, "Failed to update savings goal")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, goalID, ok := h.authAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), goalID, uuid.MustParse(claims.UserID)); err != nil {
		h.writeError(w, log, err, "Failed to delete savings goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddFunds(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, goalID, ok := h.authAndID(w, r)
	if !ok {
		return
	}

	var dto AddFundsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.AddFunds(r.Context(), goalID, uuid.MustParse(claims.UserID), dto)
	if err != nil {
		h.writeError(w, log, err, "Failed to add funds to savings goal")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, goalID, ok := h.authAndID(w, r)
	if !ok {
		return
	}

	response, err := h.service.Complete(r.Context(), goalID, uuid.MustParse(claims.UserID))
	if err != nil {
		h.writeError(w, log, err, "Failed to complete savings goal")
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := h.service.Sync(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to sync savings goals")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	response, err := h.service.Analytics(r.Context(), uuid.MustParse(claims.UserID), r.URL.Query().Get("period"))
	if err != nil {
		log.WithError(err).Error("Failed to load savings analytics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	months := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid months", http.StatusBadRequest)
			return
		}
		months = parsed
	}

	response, err := h.service.History(r.Context(), uuid.MustParse(claims.UserID), months)
	if err != nil {
		log.WithError(err).Error("Failed to load savings history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) authAndID(w http.ResponseWriter, r *http.Request) (*auth.UserClaims, uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, uuid.Nil, false
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, uuid.Nil, false
	}

	return claims, goalID, true
}

func (h *Handler) writeError(w http.ResponseWriter, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, ErrGoalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrGoalCompleted):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
