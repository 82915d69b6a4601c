package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dinefine/profile-svc/internal/domain"
	"dinefine/profile-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Profiles service.ProfileServiceInterface
}

func NewHandler(profiles service.ProfileServiceInterface) *Handler {
	return &Handler{Profiles: profiles}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/users/{userId}/preferences", h.getPreferences).Methods("GET")
	r.HandleFunc("/api/users/{userId}/preferences", h.updatePreferences).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "profile-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.Profiles.Get(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Allergies          []string `json:"allergies"`
		DietaryPreferences []string `json:"dietary_preferences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	prefs := domain.Preferences{
		UserID:             mux.Vars(r)["userId"],
		Allergies:          payload.Allergies,
		DietaryPreferences: payload.DietaryPreferences,
	}

	unrecognized, err := h.Profiles.Update(r.Context(), &prefs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.UpdateResponse{
		Preferences:  prefs,
		Unrecognized: unrecognized,
	})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidUser):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrPreferencesNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
