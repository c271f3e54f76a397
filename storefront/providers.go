package main

import (
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/tair/wastesmart-storefront/internal/backend"
	carthttp "github.com/tair/wastesmart-storefront/internal/cart/delivery/http"
	cartdomain "github.com/tair/wastesmart-storefront/internal/cart/domain"
	cartcommand "github.com/tair/wastesmart-storefront/internal/cart/usecase/command"
	cartquery "github.com/tair/wastesmart-storefront/internal/cart/usecase/query"
	cataloghttp "github.com/tair/wastesmart-storefront/internal/catalog/delivery/http"
	catalogdomain "github.com/tair/wastesmart-storefront/internal/catalog/domain"
	catalogcommand "github.com/tair/wastesmart-storefront/internal/catalog/usecase/command"
	catalogrepo "github.com/tair/wastesmart-storefront/internal/catalog/repository"
	catalogquery "github.com/tair/wastesmart-storefront/internal/catalog/usecase/query"
	"github.com/tair/wastesmart-storefront/internal/httpapi"
	sessionhttp "github.com/tair/wastesmart-storefront/internal/session/delivery/http"
	sessiondomain "github.com/tair/wastesmart-storefront/internal/session/domain"
	sessioncommand "github.com/tair/wastesmart-storefront/internal/session/usecase/command"
	sessionquery "github.com/tair/wastesmart-storefront/internal/session/usecase/query"
	"github.com/tair/wastesmart-storefront/pkg/auth"
	"github.com/tair/wastesmart-storefront/storefront/config"
)

// Storefront is every HTTP surface the server mounts
type Storefront struct {
	Session    *sessionhttp.SessionHandler
	Catalog    *cataloghttp.CatalogHandler
	Cart       *carthttp.CartHandler
	Middleware *sessionhttp.SessionMiddleware
	Carts      *cartdomain.Registry
}

func ProvideStorefront(
	session *sessionhttp.SessionHandler,
	catalog *cataloghttp.CatalogHandler,
	cart *carthttp.CartHandler,
	middleware *sessionhttp.SessionMiddleware,
	carts *cartdomain.Registry,
) *Storefront {
	return &Storefront{
		Session:    session,
		Catalog:    catalog,
		Cart:       cart,
		Middleware: middleware,
		Carts:      carts,
	}
}

// ProvideCatalogSource puts the Redis cache in front of catalog calls when
// Redis is reachable and the cache is enabled
func ProvideCatalogSource(cfg *config.StorefrontConfig, c *backend.Client, rdb *redis.Client) catalogrepo.Source {
	if rdb == nil || cfg.Catalog.CacheTTL <= 0 {
		return c
	}
	return catalogrepo.NewCachedCatalog(c, rdb, cfg.Catalog.CacheTTL)
}

func ProvideProductRepository(src catalogrepo.Source) catalogdomain.ProductRepository { return src }

func ProvideVendorRepository(src catalogrepo.Source) catalogdomain.VendorRepository { return src }

// Backend bindings

func ProvideProductSource(c *backend.Client) cartdomain.ProductSource { return c }

func ProvideOrderService(c *backend.Client) cartdomain.OrderService { return c }

func ProvideAccountService(c *backend.Client) sessiondomain.AccountService { return c }

func ProvideClock() catalogdomain.Clock {
	return time.Now
}

func ProvideCartRegistry() *cartdomain.Registry {
	return cartdomain.NewRegistry()
}

func ProvideTokenManager(cfg *config.StorefrontConfig) *auth.TokenManager {
	return auth.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL)
}

func ProvideMetrics(reg prometheus.Registerer) *httpapi.Metrics {
	return httpapi.NewMetrics(reg)
}

func ProvideSessionMiddleware(
	cfg *config.StorefrontConfig,
	tokens *auth.TokenManager,
	loader *sessionquery.LoadSessionHandler,
	reg prometheus.Registerer,
) *sessionhttp.SessionMiddleware {
	return sessionhttp.NewSessionMiddleware(tokens, loader, !cfg.IsDevelopment(), reg)
}

var BackendSet = wire.NewSet(
	ProvideCatalogSource,
	ProvideProductRepository,
	ProvideVendorRepository,
	ProvideProductSource,
	ProvideOrderService,
	ProvideAccountService,
	ProvideClock,
)

var CatalogSet = wire.NewSet(
	catalogcommand.NewCreateProductHandler,
	catalogcommand.NewUpdateProductHandler,
	catalogcommand.NewDeleteProductHandler,
	catalogquery.NewListProductsHandler,
	catalogquery.NewGetProductHandler,
	catalogquery.NewListVendorsHandler,
	catalogquery.NewGetVendorHandler,
	catalogquery.NewListVendorProductsHandler,
	cataloghttp.NewCatalogHandler,
)

var CartSet = wire.NewSet(
	ProvideCartRegistry,
	cartcommand.NewAddItemHandler,
	cartcommand.NewRemoveItemHandler,
	cartcommand.NewCheckoutHandler,
	cartquery.NewGetCartHandler,
	cartquery.NewNavSummaryHandler,
	carthttp.NewCartHandler,
)

var SessionSet = wire.NewSet(
	ProvideTokenManager,
	sessioncommand.NewUserSignupHandler,
	sessioncommand.NewUserLoginHandler,
	sessioncommand.NewUserLogoutHandler,
	sessioncommand.NewVendorSignupHandler,
	sessioncommand.NewVendorLoginHandler,
	sessioncommand.NewVendorLogoutHandler,
	sessionquery.NewLoadSessionHandler,
	sessionquery.NewVendorDashboardHandler,
	sessionhttp.NewSessionHandler,
	ProvideSessionMiddleware,
)

var StorefrontSet = wire.NewSet(
	BackendSet,
	CatalogSet,
	CartSet,
	SessionSet,
	ProvideMetrics,
	ProvideStorefront,
)
