package summary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jmcardenas/centavo/internal/auth"
	"github.com/jmcardenas/centavo/internal/summary"
)

type Handler struct {
	svc *summary.Service
}

func NewHandler(svc *summary.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/overview", h.overview)
	r.Get("/trends", h.trends)
	r.Get("/alerts", h.alerts)
}

// period reads month/year query params, defaulting to the current month.
func period(r *http.Request) (time.Month, int, error) {
	now := time.Now()
	month, year := now.Month(), now.Year()

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid month")
		}

		month = time.Month(m)
	}

	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid year")
		}

		year = y
	}

	return month, year, nil
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	month, year, err := period(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ov, err := h.svc.Overview(r.Context(), ownerID, month, year)
	if err != nil {
		if errors.Is(err, summary.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOverviewResponse(ov)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) trends(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	months := 0

	if s := r.URL.Query().Get("months"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 0 {
			http.Error(w, "invalid months", http.StatusBadRequest)
			return
		}

		months = m
	}

	points, err := h.svc.Trends(r.Context(), ownerID, months)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toTrendResponse(points)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	month, year, err := period(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	alerts, err := h.svc.Alerts(r.Context(), ownerID, month, year)
	if err != nil {
		if errors.Is(err, summary.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toAlertResponse(alerts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
