package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dinefine/dietary"
	"dinefine/menu-svc/internal/domain"
	"dinefine/menu-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menus service.MenuServiceInterface
}

func NewHandler(menus service.MenuServiceInterface) *Handler {
	return &Handler{Menus: menus}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/dietary/restrictions", h.getRestrictions).Methods("GET")
	r.HandleFunc("/api/menus/scan", h.scanMenu).Methods("POST")

	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.saveMenu).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/scan", h.scanRestaurantMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/qrcode", h.getMenuQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestrictions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"restrictions": dietary.Restrictions()})
}

func (h *Handler) scanMenu(w http.ResponseWriter, r *http.Request) {
	var req domain.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Menus.Scan(req))
}

func (h *Handler) saveMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantIDFrom(w, r)
	if !ok {
		return
	}

	var payload domain.MenuPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	if err := h.Menus.SaveMenu(r.Context(), restaurantID, payload.Items); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant_id": restaurantID,
		"saved":         len(payload.Items),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantIDFrom(w, r)
	if !ok {
		return
	}

	dishes, err := h.Menus.GetMenu(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	if dishes == nil {
		dishes = []dietary.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) scanRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantIDFrom(w, r)
	if !ok {
		return
	}

	response, err := h.Menus.ScanRestaurant(r.Context(), restaurantID, r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getMenuQRCode(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := restaurantIDFrom(w, r)
	if !ok {
		return
	}

	png, err := h.Menus.QRCode(restaurantID)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func restaurantIDFrom(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil || id <= 0 {
		http.Error(w, service.ErrInvalidRestaurant.Error(), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRestaurant), errors.Is(err, service.ErrEmptyMenu):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrMenuNotFound):
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
