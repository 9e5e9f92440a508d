package results

import (
	"time"

	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
	gocache "github.com/patrickmn/go-cache"
)

// Store keeps recent forecast runs so export downloads can reference them
// by id. Entries expire after the configured TTL; there is no durable
// persistence.
type Store interface {
	Put(run *domain.ForecastRun)
	Get(id string) (*domain.ForecastRun, bool)
}

type store struct {
	cache *gocache.Cache
}

// NewStore creates a run store with the given retention.
func NewStore(ttl time.Duration) Store {
	return &store{cache: gocache.New(ttl, 2*ttl)}
}

func (s *store) Put(run *domain.ForecastRun) {
	s.cache.SetDefault(run.ID, run)
}

func (s *store) Get(id string) (*domain.ForecastRun, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*domain.ForecastRun), true
}
