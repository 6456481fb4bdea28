package utils

import (
	"context"
	"sync"
	"time"
)

// HealthStatus represents current reachability of the reservation provider.
type HealthStatus struct {
	Provider  bool      `json:"provider"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic provider reachability checks and
// updates in-memory state. ping is expected to respect its context.
func StartHealthMonitor(ping func(ctx context.Context) error) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			err := ping(ctx)
			cancel()

			healthMu.Lock()
			currentHealth = HealthStatus{
				Provider:  err == nil,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
