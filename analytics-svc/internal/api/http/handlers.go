package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dinefine/analytics-svc/internal/domain"
	"dinefine/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/analytics/restrictions/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/restrictions/top-alltime", h.getTopAllTime).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/scan-stats", h.getScanStats).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday(r.Context(), limitFrom(r))
	writeTop(w, data, err)
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopAllTime(r.Context(), limitFrom(r))
	writeTop(w, data, err)
}

func (h *Handler) getScanStats(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil || restaurantID <= 0 {
		http.Error(w, "invalid restaurant id", http.StatusBadRequest)
		return
	}

	stats, err := h.Analytics.RestaurantStats(r.Context(), restaurantID)
	switch {
	case errors.Is(err, service.ErrNoScans):
		http.Error(w, err.Error(), http.StatusNotFound)
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, stats)
	}
}

// Leaderboards never fail the caller; a read error renders as an empty list.
func writeTop(w http.ResponseWriter, data []domain.RestrictionHits, err error) {
	if err != nil || data == nil {
		data = []domain.RestrictionHits{}
	}
	writeJSON(w, http.StatusOK, data)
}

func limitFrom(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
