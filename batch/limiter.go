package batch

import (
	"context"
	"sync"

	"github.com/fwojciec/pagefeed"
	"golang.org/x/time/rate"
)

var _ pagefeed.HostLimiter = (*HostLimiter)(nil)

// HostLimiter spaces out feed renders that fetch from the same host.
// Feeds on different hosts never wait on each other.
type HostLimiter struct {
	rps float64

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewHostLimiter allows rps fetches per second to any single host, one
// at a time.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		rps:   rps,
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a fetch from host may start or ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.limiter(host).Wait(ctx)
}

func (l *HostLimiter) limiter(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.hosts[host]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.hosts[host] = lim
	}
	return lim
}
