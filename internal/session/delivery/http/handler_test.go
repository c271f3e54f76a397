package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
	"github.com/tair/wastesmart-storefront/internal/httpapi"
	"github.com/tair/wastesmart-storefront/internal/session/domain"
	"github.com/tair/wastesmart-storefront/internal/session/repository"
	"github.com/tair/wastesmart-storefront/internal/session/usecase/command"
	"github.com/tair/wastesmart-storefront/internal/session/usecase/query"
	"github.com/tair/wastesmart-storefront/pkg/auth"
)

type fakeAccounts struct{}

func (fakeAccounts) CreateUser(_ context.Context, in domain.UserSignup) (*domain.Account, error) {
	return &domain.Account{ID: 1, Name: in.Name, Email: in.Email, Role: in.Role}, nil
}

func (fakeAccounts) LoginUser(context.Context, string, string) (*domain.Token, error) {
	return &domain.Token{AccessToken: "user-token", TokenType: "bearer"}, nil
}

func (fakeAccounts) ListUsers(context.Context) ([]domain.Account, error) {
	return []domain.Account{{ID: 1, Name: "Ada", Email: "ada@example.com"}}, nil
}

func (fakeAccounts) CreateVendor(_ context.Context, in domain.VendorSignup) (*catalog.Vendor, error) {
	return &catalog.Vendor{ID: 2, Name: in.Name, Email: in.Email}, nil
}

func (fakeAccounts) LoginVendor(context.Context, string, string) (*domain.VendorLogin, error) {
	return &domain.VendorLogin{AccessToken: "vendor-token", VendorID: 2, VendorName: "Farm"}, nil
}

type noVendorProducts struct{}

func (noVendorProducts) ListVendors(context.Context) ([]catalog.Vendor, error) { return nil, nil }

func (noVendorProducts) GetVendor(context.Context, int64) (*catalog.Vendor, error) { return nil, nil }

func (noVendorProducts) ListVendorProducts(context.Context, int64) ([]catalog.Product, error) {
	return nil, nil
}

type fixture struct {
	router     http.Handler
	store      *repository.MemoryStore
	tokens     *auth.TokenManager
	middleware *SessionMiddleware
}

func newFixture() *fixture {
	store := repository.NewMemoryStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	reg := prometheus.NewRegistry()
	accounts := fakeAccounts{}

	h := NewSessionHandler(
		command.NewUserSignupHandler(accounts, store),
		command.NewUserLoginHandler(accounts, store),
		command.NewUserLogoutHandler(store),
		command.NewVendorSignupHandler(accounts, store),
		command.NewVendorLoginHandler(accounts, store),
		command.NewVendorLogoutHandler(store),
		query.NewVendorDashboardHandler(noVendorProducts{}, time.Now),
		httpapi.NewMetrics(reg),
	)
	mw := NewSessionMiddleware(tokens, query.NewLoadSessionHandler(store), false, reg)

	router := mux.NewRouter()
	router.Use(mw.Handler)
	h.RegisterRoutes(router)
	router.HandleFunc("/whoami", func(w http.ResponseWriter, r *http.Request) {
		s := domain.FromContext(r.Context())
		httpapi.RespondOK(w, map[string]string{"sid": s.SessionID, "kind": string(s.Kind())})
	})

	return &fixture{router: router, store: store, tokens: tokens, middleware: mw}
}

func (f *fixture) do(t *testing.T, cookie *http.Cookie, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestMiddleware_IssuesAndReusesCookie(t *testing.T) {
	f := newFixture()

	first := f.do(t, nil, http.MethodGet, "/whoami", "")
	cookie := sessionCookie(t, first)
	assert.True(t, cookie.HttpOnly)

	claims, err := f.tokens.ValidateToken(cookie.Value)
	require.NoError(t, err)

	second := f.do(t, cookie, http.MethodGet, "/whoami", "")
	assert.Empty(t, second.Result().Cookies())
	data := decode(t, second)["data"].(map[string]any)
	assert.Equal(t, claims.SessionID, data["sid"])
	assert.Equal(t, "anonymous", data["kind"])
}

func TestMiddleware_ReplacesForgedCookie(t *testing.T) {
	f := newFixture()

	rec := f.do(t, &http.Cookie{Name: CookieName, Value: "forged"}, http.MethodGet, "/whoami", "")
	fresh := sessionCookie(t, rec)
	assert.NotEqual(t, "forged", fresh.Value)
}

func TestMiddleware_CorruptedVendorRedirects(t *testing.T) {
	f := newFixture()
	cookie := sessionCookie(t, f.do(t, nil, http.MethodGet, "/whoami", ""))
	claims, _ := f.tokens.ValidateToken(cookie.Value)
	key := domain.Key(domain.KindVendor, claims.SessionID)
	require.NoError(t, f.store.Set(context.Background(), key, []byte(`{"vendor_id":2}`)))

	rec := f.do(t, cookie, http.MethodGet, "/whoami", "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/vendor-login", rec.Header().Get("Location"))
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "/vendor-login", body["redirect"])

	_, err := f.store.Get(context.Background(), key)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.middleware.corruptions.WithLabelValues("vendor")))

	// the record is gone, so the next request is anonymous
	assert.Equal(t, http.StatusOK, f.do(t, cookie, http.MethodGet, "/whoami", "").Code)
}

func TestLoginLogoutFlow(t *testing.T) {
	f := newFixture()
	cookie := sessionCookie(t, f.do(t, nil, http.MethodGet, "/whoami", ""))

	rec := f.do(t, cookie, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Ada", data["name"])
	assert.NotContains(t, data, "access_token")

	who := decode(t, f.do(t, cookie, http.MethodGet, "/whoami", ""))["data"].(map[string]any)
	assert.Equal(t, "user", who["kind"])

	rec = f.do(t, cookie, http.MethodPost, "/api/vendor/login", `{"email":"farm@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	who = decode(t, f.do(t, cookie, http.MethodGet, "/whoami", ""))["data"].(map[string]any)
	assert.Equal(t, "vendor", who["kind"])

	assert.Equal(t, http.StatusOK, f.do(t, cookie, http.MethodGet, "/api/vendor/dashboard", "").Code)

	require.Equal(t, http.StatusOK, f.do(t, cookie, http.MethodPost, "/api/vendor/logout", "").Code)
	who = decode(t, f.do(t, cookie, http.MethodGet, "/whoami", ""))["data"].(map[string]any)
	assert.Equal(t, "anonymous", who["kind"])

	assert.Equal(t, http.StatusUnauthorized, f.do(t, cookie, http.MethodGet, "/api/vendor/dashboard", "").Code)
}

func TestLogin_ValidationError(t *testing.T) {
	f := newFixture()

	rec := f.do(t, nil, http.MethodPost, "/api/auth/login", `{"email":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email and password are required", decode(t, rec)["error"])

	rec = f.do(t, nil, http.MethodPost, "/api/auth/signup", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
