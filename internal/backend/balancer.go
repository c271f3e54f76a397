package backend

import (
	"strings"
	"sync"

	"github.com/tair/wastesmart-storefront/pkg/logger"
)

// RoundRobin hands out backend base URLs in rotation
type RoundRobin struct {
	mu      sync.Mutex
	servers []string
	current int
}

// NewRoundRobin trims trailing slashes and drops empty entries. An empty
// list falls back to a local backend.
func NewRoundRobin(servers []string) *RoundRobin {
	clean := make([]string, 0, len(servers))
	for _, s := range servers {
		s = strings.TrimRight(strings.TrimSpace(s), "/")
		if s != "" {
			clean = append(clean, s)
		}
	}
	if len(clean) == 0 {
		clean = []string{"http://localhost:8000"}
	}

	logger.Logger.Info().
		Int("server_count", len(clean)).
		Strs("servers", clean).
		Msg("Backend round-robin initialized")

	return &RoundRobin{servers: clean}
}

// Next returns the next base URL
func (rr *RoundRobin) Next() string {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	server := rr.servers[rr.current]
	rr.current = (rr.current + 1) % len(rr.servers)
	return server
}

// Servers returns a copy of the pool
func (rr *RoundRobin) Servers() []string {
	rr.mu.Lock()
	defer rr.mu.Unlock()
	return append([]string{}, rr.servers...)
}
