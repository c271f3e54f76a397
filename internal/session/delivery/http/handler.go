package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/wastesmart-storefront/internal/httpapi"
	"github.com/tair/wastesmart-storefront/internal/session/domain"
	"github.com/tair/wastesmart-storefront/internal/session/usecase/command"
	"github.com/tair/wastesmart-storefront/internal/session/usecase/query"
)

// SessionHandler serves shopper and vendor sign-in
type SessionHandler struct {
	userSignup   *command.UserSignupHandler
	userLogin    *command.UserLoginHandler
	userLogout   *command.UserLogoutHandler
	vendorSignup *command.VendorSignupHandler
	vendorLogin  *command.VendorLoginHandler
	vendorLogout *command.VendorLogoutHandler
	dashboard    *query.VendorDashboardHandler

	metrics *httpapi.Metrics
}

func NewSessionHandler(
	userSignup *command.UserSignupHandler,
	userLogin *command.UserLoginHandler,
	userLogout *command.UserLogoutHandler,
	vendorSignup *command.VendorSignupHandler,
	vendorLogin *command.VendorLoginHandler,
	vendorLogout *command.VendorLogoutHandler,
	dashboard *query.VendorDashboardHandler,
	metrics *httpapi.Metrics,
) *SessionHandler {
	return &SessionHandler{
		userSignup:   userSignup,
		userLogin:    userLogin,
		userLogout:   userLogout,
		vendorSignup: vendorSignup,
		vendorLogin:  vendorLogin,
		vendorLogout: vendorLogout,
		dashboard:    dashboard,
		metrics:      metrics,
	}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/signup", h.metrics.Wrap("/api/auth/signup", h.UserSignup)).Methods("POST")
	router.HandleFunc("/api/auth/login", h.metrics.Wrap("/api/auth/login", h.UserLogin)).Methods("POST")
	router.HandleFunc("/api/auth/logout", h.metrics.Wrap("/api/auth/logout", h.UserLogout)).Methods("POST")

	router.HandleFunc("/api/vendor/signup", h.metrics.Wrap("/api/vendor/signup", h.VendorSignup)).Methods("POST")
	router.HandleFunc("/api/vendor/login", h.metrics.Wrap("/api/vendor/login", h.VendorLogin)).Methods("POST")
	router.HandleFunc("/api/vendor/logout", h.metrics.Wrap("/api/vendor/logout", h.VendorLogout)).Methods("POST")
	router.HandleFunc("/api/vendor/dashboard", h.metrics.Wrap("/api/vendor/dashboard", h.VendorDashboard)).Methods("GET")
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSignup handles POST /api/auth/signup
func (h *SessionHandler) UserSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.userSignup.Handle(r.Context(), command.UserSignupCommand{
		SessionID:       domain.FromContext(r.Context()).SessionID,
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		httpapi.RespondError(w, r, "user_signup", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusCreated, "Account created successfully", publicUser(rec))
}

// UserLogin handles POST /api/auth/login
func (h *SessionHandler) UserLogin(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.userLogin.Handle(r.Context(), command.UserLoginCommand{
		SessionID: domain.FromContext(r.Context()).SessionID,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httpapi.RespondError(w, r, "user_login", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusOK, "Login successful", publicUser(rec))
}

// UserLogout handles POST /api/auth/logout
func (h *SessionHandler) UserLogout(w http.ResponseWriter, r *http.Request) {
	cmd := command.LogoutCommand{SessionID: domain.FromContext(r.Context()).SessionID}
	if err := h.userLogout.Handle(r.Context(), cmd); err != nil {
		httpapi.RespondError(w, r, "user_logout", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusOK, "Logged out", nil)
}

// VendorSignup handles POST /api/vendor/signup
func (h *SessionHandler) VendorSignup(w http.ResponseWriter, r *http.Request) {
	var req domain.VendorSignup
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.vendorSignup.Handle(r.Context(), command.VendorSignupCommand{
		SessionID:    domain.FromContext(r.Context()).SessionID,
		VendorSignup: req,
	})
	if err != nil {
		httpapi.RespondError(w, r, "vendor_signup", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusCreated, "Vendor registered successfully", publicVendor(rec))
}

// VendorLogin handles POST /api/vendor/login
func (h *SessionHandler) VendorLogin(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := httpapi.DecodeJSON(w, r, &req); err != nil {
		httpapi.RespondFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.vendorLogin.Handle(r.Context(), command.VendorLoginCommand{
		SessionID: domain.FromContext(r.Context()).SessionID,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httpapi.RespondError(w, r, "vendor_login", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusOK, "Login successful", publicVendor(rec))
}

// VendorLogout handles POST /api/vendor/logout
func (h *SessionHandler) VendorLogout(w http.ResponseWriter, r *http.Request) {
	cmd := command.LogoutCommand{SessionID: domain.FromContext(r.Context()).SessionID}
	if err := h.vendorLogout.Handle(r.Context(), cmd); err != nil {
		httpapi.RespondError(w, r, "vendor_logout", err)
		return
	}
	httpapi.RespondMessage(w, http.StatusOK, "Logged out", nil)
}

// VendorDashboard handles GET /api/vendor/dashboard
func (h *SessionHandler) VendorDashboard(w http.ResponseWriter, r *http.Request) {
	s := domain.FromContext(r.Context())
	dash, err := h.dashboard.Handle(r.Context(), query.VendorDashboardQuery{Session: s})
	if err != nil {
		httpapi.RespondError(w, r, "vendor_dashboard", err)
		return
	}
	httpapi.RespondOK(w, dash)
}

// tokens stay server side
func publicUser(rec *domain.UserRecord) domain.UserRecord {
	out := *rec
	out.AccessToken = ""
	return out
}

func publicVendor(rec *domain.VendorRecord) domain.VendorRecord {
	out := *rec
	out.AccessToken = ""
	return out
}
