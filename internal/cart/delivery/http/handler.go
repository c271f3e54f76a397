package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/wastesmart-storefront/internal/cart/usecase/command"
	"github.com/tair/wastesmart-storefront/internal/cart/usecase/query"
	"github.com/tair/wastesmart-storefront/internal/httpapi"
	session "github.com/tair/wastesmart-storefront/internal/session/domain"
)

// CartHandler serves the per-browser cart and the navigation summary
type CartHandler struct {
	addHandler      *command.AddItemHandler
	removeHandler   *command.RemoveItemHandler
	checkoutHandler *command.CheckoutHandler
	getHandler      *query.GetCartHandler
	navHandler      *query.NavSummaryHandler

	metrics       *httpapi.Metrics
	checkoutItems prometheus.Histogram
	checkouts     *prometheus.CounterVec
}

func NewCartHandler(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	checkoutHandler *command.CheckoutHandler,
	getHandler *query.GetCartHandler,
	navHandler *query.NavSummaryHandler,
	metrics *httpapi.Metrics,
	reg prometheus.Registerer,
) *CartHandler {
	checkoutItems := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_cart_items",
		Help:    "Number of cart entries per completed checkout",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
	})
	checkouts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkouts_total",
			Help: "Checkout attempts by outcome",
		},
		[]string{"outcome"},
	)
	reg.MustRegister(checkoutItems, checkouts)

	return &CartHandler{
		addHandler:      addHandler,
		removeHandler:   removeHandler,
		checkoutHandler: checkoutHandler,
		getHandler:      getHandler,
		navHandler:      navHandler,
		metrics:         metrics,
		checkoutItems:   checkoutItems,
		checkouts:       checkouts,
	}
}

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metrics.Wrap("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metrics.Wrap("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{index}", h.metrics.Wrap("/api/cart/items/{index}", h.RemoveItem)).Methods("DELETE")
	router.HandleFunc("/api/cart/checkout", h.metrics.Wrap("/api/cart/checkout", h.Checkout)).Methods("POST")
	router.HandleFunc("/api/nav", h.metrics.Wrap("/api/nav", h.Nav)).Methods("GET")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	httpapi.RespondOK(w, h.getHandler.Handle(r.Context(), query.GetCartQuery{SessionID: s.SessionID}))
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"product_id"`
	}
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s := session.FromContext(r.Context())
	result, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{SessionID: s.SessionID, ProductID: req.ProductID})
	if err != nil {
		httpapi.RespondError(w, r, "add_to_cart", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusCreated, "Added to cart", result)
}

// RemoveItem handles DELETE /api/cart/items/{index}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid item index")
		return
	}

	s := session.FromContext(r.Context())
	result := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{SessionID: s.SessionID, Index: index})
	httpapi.RespondOK(w, result)
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	result, err := h.checkoutHandler.Handle(r.Context(), command.CheckoutCommand{Session: s})
	if err != nil {
		h.checkouts.WithLabelValues("failed").Inc()
		httpapi.RespondError(w, r, "checkout", err)
		return
	}

	h.checkouts.WithLabelValues("completed").Inc()
	h.checkoutItems.Observe(float64(result.Items))
	httpapi.RespondMessage(w, http.StatusCreated, "Order placed successfully", result)
}

// Nav handles GET /api/nav
func (h *CartHandler) Nav(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	httpapi.RespondOK(w, h.navHandler.Handle(r.Context(), query.NavSummaryQuery{Session: s}))
}
