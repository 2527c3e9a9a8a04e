package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalog "github.com/bellarosa/storefront/internal/catalog/domain"
	"github.com/bellarosa/storefront/internal/session"
	"github.com/bellarosa/storefront/internal/session/domain"
	"github.com/bellarosa/storefront/internal/session/usecase/command"
	"github.com/bellarosa/storefront/internal/session/usecase/query"
	"github.com/bellarosa/storefront/pkg/logger"
)

// SessionIDHeader carries the client-generated session identifier. The
// storefront UI creates a UUID on first visit and sends it on every call.
const SessionIDHeader = "X-Session-ID"

// SessionHandler handles HTTP requests for session state using CQRS pattern
type SessionHandler struct {
	// Command handlers
	addToCartHandler    *command.AddToCartHandler
	removeHandler       *command.RemoveFromCartHandler
	updateQtyHandler    *command.UpdateQuantityHandler
	clearCartHandler    *command.ClearCartHandler
	addWishlistHandler  *command.AddToWishlistHandler
	dropWishlistHandler *command.RemoveFromWishlistHandler
	loginHandler        *command.LoginHandler
	logoutHandler       *command.LogoutHandler
	uiStateHandler      *command.SetUIStateHandler

	// Query handlers
	getCartHandler     *query.GetCartHandler
	getWishlistHandler *query.GetWishlistHandler
	inWishlistHandler  *query.IsInWishlistHandler
	getSessionHandler  *query.GetSessionHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	cartMutations  prometheus.Counter
}

// NewSessionHandler creates a new session handler (manual DI)
func NewSessionHandler(sessions *session.Manager, repo catalog.CatalogRepository) *SessionHandler {
	return NewSessionHandlerWithDI(
		command.NewHandlers(sessions, repo),
		query.NewHandlers(sessions),
	)
}

// NewSessionHandlerWithDI creates a new session handler using dependency
// injection. This is used by Wire.
func NewSessionHandlerWithDI(
	commands *command.Handlers,
	queries *query.Handlers,
) *SessionHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_requests_total",
			Help: "Total number of requests to session endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "session_request_duration_seconds",
			Help:    "Duration of session requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "session_request_duration_summary",
			Help: "Summary of session request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	cartMutations := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "session_cart_mutations_total",
			Help: "Total number of cart mutations across all sessions",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(cartMutations)

	return &SessionHandler{
		addToCartHandler:    commands.AddToCart,
		removeHandler:       commands.RemoveFromCart,
		updateQtyHandler:    commands.UpdateQuantity,
		clearCartHandler:    commands.ClearCart,
		addWishlistHandler:  commands.AddToWishlist,
		dropWishlistHandler: commands.RemoveFromWishlist,
		loginHandler:        commands.Login,
		logoutHandler:       commands.Logout,
		uiStateHandler:      commands.SetUIState,
		getCartHandler:      queries.GetCart,
		getWishlistHandler:  queries.GetWishlist,
		inWishlistHandler:   queries.IsInWishlist,
		getSessionHandler:   queries.GetSession,
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		requestSummary:      requestSummary,
		cartMutations:       cartMutations,
	}
}

// Response is the JSON envelope shared by all session endpoints.
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
func (h *SessionHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes wires the session endpoints into the router.
func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/session", h.metricsMiddleware("/api/session", h.GetSession)).Methods("GET")
	router.HandleFunc("/api/session/ui", h.metricsMiddleware("/api/session/ui", h.SetUIState)).Methods("PUT")

	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddToCart)).Methods("POST")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.UpdateQuantity)).Methods("PATCH")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.RemoveFromCart)).Methods("DELETE")

	router.HandleFunc("/api/wishlist", h.metricsMiddleware("/api/wishlist", h.GetWishlist)).Methods("GET")
	router.HandleFunc("/api/wishlist/{productId}", h.metricsMiddleware("/api/wishlist/{productId}", h.IsInWishlist)).Methods("GET")
	router.HandleFunc("/api/wishlist/{productId}", h.metricsMiddleware("/api/wishlist/{productId}", h.AddToWishlist)).Methods("POST")
	router.HandleFunc("/api/wishlist/{productId}", h.metricsMiddleware("/api/wishlist/{productId}", h.RemoveFromWishlist)).Methods("DELETE")

	router.HandleFunc("/api/auth/login", h.metricsMiddleware("/api/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/api/auth/logout", h.metricsMiddleware("/api/auth/logout", h.Logout)).Methods("POST")
}

func sessionID(r *http.Request) string {
	return r.Header.Get(SessionIDHeader)
}

// GetSession handles GET /api/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.getSessionHandler.Handle(r.Context(), query.GetSessionQuery{SessionID: sessionID(r)})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: view})
}

// SetUIState handles PUT /api/session/ui
func (h *SessionHandler) SetUIState(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CartOpen      *bool   `json:"is_cart_open"`
		AuthModalOpen *bool   `json:"is_auth_modal_open"`
		AuthModalMode *string `json:"auth_modal_mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.SetUIStateCommand{
		SessionID:     sessionID(r),
		CartOpen:      req.CartOpen,
		AuthModalOpen: req.AuthModalOpen,
	}
	if req.AuthModalMode != nil {
		mode := domain.AuthModalMode(*req.AuthModalMode)
		cmd.AuthModalMode = &mode
	}

	if err := h.uiStateHandler.Handle(r.Context(), cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "UI state updated"})
}

// GetCart handles GET /api/cart
func (h *SessionHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.getCartHandler.Handle(r.Context(), query.GetCartQuery{SessionID: sessionID(r)})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: view})
}

// AddToCart handles POST /api/cart/items
func (h *SessionHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.AddToCartCommand{
		SessionID: sessionID(r),
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	}

	if err := h.addToCartHandler.Handle(r.Context(), cmd); err != nil {
		logger.Error(r.Context()).Err(err).Str("product_id", req.ProductID).Msg("Failed to add to cart")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.cartMutations.Inc()
	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Item added to cart"})
}

// UpdateQuantity handles PATCH /api/cart/items
func (h *SessionHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.UpdateQuantityCommand{
		SessionID: sessionID(r),
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	}

	if err := h.updateQtyHandler.Handle(r.Context(), cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.cartMutations.Inc()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Quantity updated"})
}

// RemoveFromCart handles DELETE /api/cart/items
func (h *SessionHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	cmd := command.RemoveFromCartCommand{
		SessionID: sessionID(r),
		ProductID: params.Get("product_id"),
		Size:      params.Get("size"),
		Color:     params.Get("color"),
	}

	if err := h.removeHandler.Handle(r.Context(), cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.cartMutations.Inc()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Item removed from cart"})
}

// ClearCart handles DELETE /api/cart
func (h *SessionHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearCartHandler.Handle(r.Context(), command.ClearCartCommand{SessionID: sessionID(r)}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.cartMutations.Inc()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Cart cleared"})
}

// GetWishlist handles GET /api/wishlist
func (h *SessionHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.getWishlistHandler.Handle(r.Context(), query.GetWishlistQuery{SessionID: sessionID(r)})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"items": items,
			"total": len(items),
		},
	})
}

// IsInWishlist handles GET /api/wishlist/{productId}
func (h *SessionHandler) IsInWishlist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	saved, err := h.inWishlistHandler.Handle(r.Context(), query.IsInWishlistQuery{
		SessionID: sessionID(r),
		ProductID: vars["productId"],
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"saved": saved},
	})
}

// AddToWishlist handles POST /api/wishlist/{productId}
func (h *SessionHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.AddToWishlistCommand{
		SessionID: sessionID(r),
		ProductID: vars["productId"],
	}

	if err := h.addWishlistHandler.Handle(r.Context(), cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Product saved to wishlist"})
}

// RemoveFromWishlist handles DELETE /api/wishlist/{productId}
func (h *SessionHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.RemoveFromWishlistCommand{
		SessionID: sessionID(r),
		ProductID: vars["productId"],
	}

	if err := h.dropWishlistHandler.Handle(r.Context(), cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product removed from wishlist"})
}

// Login handles POST /api/auth/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email  string `json:"email"`
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.LoginCommand{
		SessionID: sessionID(r),
		Email:     req.Email,
		Name:      req.Name,
		Avatar:    req.Avatar,
	}

	resp, err := h.loginHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to log in")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Logged in",
		Data:    resp,
	})
}

// Logout handles POST /api/auth/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.logoutHandler.Handle(r.Context(), command.LogoutCommand{SessionID: sessionID(r)}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Logged out"})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
