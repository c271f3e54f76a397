//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/tair/wastesmart-storefront/internal/backend"
	cartdomain "github.com/tair/wastesmart-storefront/internal/cart/domain"
	sessiondomain "github.com/tair/wastesmart-storefront/internal/session/domain"
	"github.com/tair/wastesmart-storefront/storefront/config"
)

// InitializeStorefront builds every handler from the process-level
// dependencies; rdb may be nil when Redis is unreachable
func InitializeStorefront(
	cfg *config.StorefrontConfig,
	client *backend.Client,
	rdb *redis.Client,
	store sessiondomain.Store,
	publisher cartdomain.EventPublisher,
	reg prometheus.Registerer,
) (*Storefront, error) {
	wire.Build(StorefrontSet)
	return nil, nil
}
