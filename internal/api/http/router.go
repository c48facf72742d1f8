package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, limiter RateLimiter) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	var h http.Handler = r
	if limiter != nil {
		h = RateLimit(limiter)(h)
	}
	h = SecurityHeaders(h)
	h = RequestLogger(h)
	return cors.Default().Handler(h)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Dish Search Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
