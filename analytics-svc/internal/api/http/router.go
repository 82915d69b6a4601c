package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler, log *zap.SugaredLogger) {
	log.Infof("Analytics Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
