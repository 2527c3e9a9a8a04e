package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/catalog/usecase/query"
	"github.com/bellarosa/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	listHandler  *query.ListProductsHandler
	getHandler   *query.GetProductHandler
	statsHandler *query.GetStatsHandler

	repo           domain.CatalogRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCatalogHandler creates a new catalog handler (manual DI)
func NewCatalogHandler(repo domain.CatalogRepository) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		query.NewListProductsHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewGetStatsHandler(repo),
		repo,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency
// injection. This is used by Wire.
func NewCatalogHandlerWithDI(
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.CatalogRepository,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CatalogHandler{
		listHandler:    listHandler,
		getHandler:     getHandler,
		statsHandler:   statsHandler,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// Response is the JSON envelope shared by all catalog endpoints.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes wires the catalog endpoints into the router. All catalog
// routes are public and read-only.
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", h.metricsMiddleware("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/catalog", h.metricsMiddleware("/api/catalog", h.GetCatalogLists)).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	criteria := domain.FilterCriteria{
		Category: params.Get("category"),
		Sizes:    params["size"],
		Colors:   params["color"],
	}

	if minRaw, maxRaw := params.Get("min_price"), params.Get("max_price"); minRaw != "" || maxRaw != "" {
		min, _ := strconv.ParseFloat(minRaw, 64)
		max, err := strconv.ParseFloat(maxRaw, 64)
		if maxRaw == "" || err != nil {
			max = 1e9
		}
		criteria.PriceRange = &domain.PriceRange{Min: min, Max: max}
	}

	q := query.ListProductsQuery{
		Criteria: criteria,
		Sort:     domain.SortKey(params.Get("sort")),
	}

	products := h.listHandler.Handle(q)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: vars["id"]})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// GetStats handles GET /api/products/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.statsHandler.Handle(query.GetStatsQuery{})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// GetCatalogLists handles GET /api/catalog, returning the auxiliary
// navigation lists.
func (h *CatalogHandler) GetCatalogLists(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"categories":  h.repo.Categories(),
			"collections": h.repo.Collections(),
			"occasions":   h.repo.Occasions(),
		},
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
