package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL      string
	ProfileSvcURL   string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	log    *zap.SugaredLogger
}

func NewGateway(config Config, client HTTPClient, log *zap.SugaredLogger) *Gateway {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.log.Debugf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.log.Errorf("Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Errorf("Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.Warnf("Failed to copy response: %v", err)
	}
}

// Target picks the upstream for an API path. It returns "" when no service owns the path.
func (g *Gateway) Target(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/dietary/"), strings.HasPrefix(path, "/api/menus/"):
		return g.config.MenuSvcURL
	case strings.HasPrefix(path, "/api/users/"):
		return g.config.ProfileSvcURL
	case strings.HasPrefix(path, "/api/analytics/"):
		return g.config.AnalyticsSvcURL
	}

	// /api/restaurants/{id}/<resource>[/...]
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) >= 4 && parts[0] == "api" && parts[1] == "restaurants" && parts[2] != "" {
		switch parts[3] {
		case "menu":
			return g.config.MenuSvcURL
		case "scan-stats":
			if len(parts) == 4 {
				return g.config.AnalyticsSvcURL
			}
		}
	}
	return ""
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	g.log.Debugf("ROUTE: %s %s", r.Method, path)

	if target := g.Target(path); target != "" {
		g.ProxyRequest(w, r, target)
		return
	}

	g.log.Infof("Unmatched API route: %s", path)
	http.Error(w, "API route not found", http.StatusNotFound)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
