package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"dish-search-svc/internal/service"

	"github.com/gorilla/mux"
)

var started = time.Now()

type Handler struct {
	Search service.SearchServiceInterface
	// Dev echoes store error detail in 500 responses; production keeps
	// them opaque.
	Dev bool
}

func NewHandler(searchSvc service.SearchServiceInterface, dev bool) *Handler {
	return &Handler{Search: searchSvc, Dev: dev}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/", h.index).Methods("GET")
	r.HandleFunc("/search/dishes", h.searchDishes).Methods("GET")
	r.NotFoundHandler = http.HandlerFunc(h.notFound)
}

func (h *Handler) searchDishes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.Search.SearchDishes(r.Context(), q.Get("name"), q.Get("minPrice"), q.Get("maxPrice"))
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		log.Printf("dish search failed: %v", err)
		message := "Internal Server Error"
		if h.Dev {
			message = err.Error()
		}
		writeError(w, http.StatusInternalServerError, message)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"service":   "dish-search-svc",
		"uptime":    int(time.Since(started).Seconds()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Restaurant Dish Search API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":       "GET /health",
			"searchDishes": "GET /search/dishes?name=biryani&minPrice=150&maxPrice=300",
		},
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, envelope{
		Success:   false,
		Status:    http.StatusNotFound,
		Error:     "Route not found",
		Path:      r.URL.Path,
		Method:    r.Method,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
