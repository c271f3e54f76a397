package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/wastesmart-storefront/internal/backend"
	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
	"github.com/tair/wastesmart-storefront/internal/catalog/usecase/command"
	"github.com/tair/wastesmart-storefront/internal/catalog/usecase/query"
	"github.com/tair/wastesmart-storefront/internal/httpapi"
	session "github.com/tair/wastesmart-storefront/internal/session/domain"
)

// CatalogHandler serves the marketplace listing, vendor pages and a
// vendor's own product management
type CatalogHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	listHandler           *query.ListProductsHandler
	getProductHandler     *query.GetProductHandler
	listVendorsHandler    *query.ListVendorsHandler
	getVendorHandler      *query.GetVendorHandler
	vendorProductsHandler *query.ListVendorProductsHandler

	metrics *httpapi.Metrics
}

func NewCatalogHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	listHandler *query.ListProductsHandler,
	getProductHandler *query.GetProductHandler,
	listVendorsHandler *query.ListVendorsHandler,
	getVendorHandler *query.GetVendorHandler,
	vendorProductsHandler *query.ListVendorProductsHandler,
	metrics *httpapi.Metrics,
) *CatalogHandler {
	return &CatalogHandler{
		createHandler:         createHandler,
		updateHandler:         updateHandler,
		deleteHandler:         deleteHandler,
		listHandler:           listHandler,
		getProductHandler:     getProductHandler,
		listVendorsHandler:    listVendorsHandler,
		getVendorHandler:      getVendorHandler,
		vendorProductsHandler: vendorProductsHandler,
		metrics:               metrics,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metrics.Wrap("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/filter-defaults", h.metrics.Wrap("/api/products/filter-defaults", h.FilterDefaults)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metrics.Wrap("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/vendors", h.metrics.Wrap("/api/vendors", h.ListVendors)).Methods("GET")
	router.HandleFunc("/api/vendors/{id}", h.metrics.Wrap("/api/vendors/{id}", h.GetVendor)).Methods("GET")

	router.HandleFunc("/api/vendor/products", h.metrics.Wrap("/api/vendor/products", h.ListOwnProducts)).Methods("GET")
	router.HandleFunc("/api/vendor/products", h.metrics.Wrap("/api/vendor/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/vendor/products/{id}", h.metrics.Wrap("/api/vendor/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/vendor/products/{id}", h.metrics.Wrap("/api/vendor/products/{id}", h.DeleteProduct)).Methods("DELETE")
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{Criteria: criteria})
	if err != nil {
		httpapi.RespondError(w, r, "list_products", err)
		return
	}
	httpapi.RespondOK(w, result)
}

// FilterDefaults handles GET /api/products/filter-defaults
func (h *CatalogHandler) FilterDefaults(w http.ResponseWriter, r *http.Request) {
	httpapi.RespondOK(w, domain.DefaultCriteria())
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathID(r, "id")
	if err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		httpapi.RespondError(w, r, "get_product", err)
		return
	}
	httpapi.RespondOK(w, product)
}

// ListVendors handles GET /api/vendors
func (h *CatalogHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.listVendorsHandler.Handle(r.Context(), query.ListVendorsQuery{})
	if err != nil {
		httpapi.RespondError(w, r, "list_vendors", err)
		return
	}
	httpapi.RespondOK(w, vendors)
}

// GetVendor handles GET /api/vendors/{id}
func (h *CatalogHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathID(r, "id")
	if err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	details, err := h.getVendorHandler.Handle(r.Context(), query.GetVendorQuery{ID: id})
	if err != nil {
		httpapi.RespondError(w, r, "get_vendor", err)
		return
	}
	httpapi.RespondOK(w, details)
}

// ListOwnProducts handles GET /api/vendor/products
func (h *CatalogHandler) ListOwnProducts(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if !s.IsVendor() {
		httpapi.RespondError(w, r, "list_own_products", session.ErrUnauthenticated)
		return
	}

	views, err := h.vendorProductsHandler.Handle(r.Context(), query.ListVendorProductsQuery{VendorID: s.Vendor.VendorID})
	if err != nil {
		httpapi.RespondError(w, r, "list_own_products", err)
		return
	}
	httpapi.RespondOK(w, views)
}

type productForm struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Quantity    int         `json:"quantity"`
	ExpiryDate  domain.Date `json:"expiry_date"`
	ImageURL    string      `json:"image_url"`
}

// CreateProduct handles POST /api/vendor/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if !s.IsVendor() {
		httpapi.RespondError(w, r, "create_product", session.ErrUnauthenticated)
		return
	}

	var req productForm
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := backend.WithBearer(r.Context(), s.Vendor.AccessToken)
	product, err := h.createHandler.Handle(ctx, command.CreateProductCommand{
		VendorID:    s.Vendor.VendorID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ExpiryDate:  req.ExpiryDate,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httpapi.RespondError(w, r, "create_product", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusCreated, "Product added successfully", product)
}

// UpdateProduct handles PUT /api/vendor/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if !s.IsVendor() {
		httpapi.RespondError(w, r, "update_product", session.ErrUnauthenticated)
		return
	}

	id, err := httpapi.PathID(r, "id")
	if err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req productForm
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := backend.WithBearer(r.Context(), s.Vendor.AccessToken)
	product, err := h.updateHandler.Handle(ctx, command.UpdateProductCommand{
		VendorID:    s.Vendor.VendorID,
		ProductID:   id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ExpiryDate:  req.ExpiryDate,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httpapi.RespondError(w, r, "update_product", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusOK, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /api/vendor/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if !s.IsVendor() {
		httpapi.RespondError(w, r, "delete_product", session.ErrUnauthenticated)
		return
	}

	id, err := httpapi.PathID(r, "id")
	if err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx := backend.WithBearer(r.Context(), s.Vendor.AccessToken)
	if err := h.deleteHandler.Handle(ctx, command.DeleteProductCommand{VendorID: s.Vendor.VendorID, ProductID: id}); err != nil {
		httpapi.RespondError(w, r, "delete_product", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusOK, "Product deleted successfully", nil)
}

// parseCriteria returns nil when no filter parameter is present, so the
// listing stays unfiltered until the shopper applies filters
func parseCriteria(values url.Values) (*domain.FilterCriteria, error) {
	keys := []string{"max_price", "in_stock", "expiring_soon", "expiry_days"}
	present := false
	for _, k := range keys {
		if values.Has(k) {
			present = true
			break
		}
	}
	if !present {
		return nil, nil
	}

	c := domain.DefaultCriteria()
	if v := values.Get("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("invalid max_price %q", v)
		}
		c.MaxPrice = price
	}
	if v := values.Get("expiry_days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			return nil, fmt.Errorf("invalid expiry_days %q", v)
		}
		c.ExpiryWindowDays = days
	}

	var err error
	if c.InStock, err = parseFlag(values, "in_stock"); err != nil {
		return nil, err
	}
	if c.ExpiringSoon, err = parseFlag(values, "expiring_soon"); err != nil {
		return nil, err
	}
	return &c, nil
}

func parseFlag(values url.Values, key string) (bool, error) {
	v := values.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, v)
	}
	return b, nil
}
