// Package scheduler runs periodic maintenance jobs
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spksaw/backend/internal/auth/token"
	"go.uber.org/zap"
)

// purgeTimeout bounds a single purge run
const purgeTimeout = time.Minute

// TokenPurger periodically removes revocation records of expired tokens
type TokenPurger struct {
	store  token.RevocationStore
	logger *zap.Logger
	cron   *cron.Cron
	now    func() time.Time
}

// NewTokenPurger creates a purger running on the given schedule.
// The schedule accepts standard cron expressions and descriptors such as "@hourly".
func NewTokenPurger(store token.RevocationStore, schedule string, logger *zap.Logger) (*TokenPurger, error) {
	p := &TokenPurger{
		store:  store,
		logger: logger,
		cron:   cron.New(),
		now:    time.Now,
	}

	if _, err := p.cron.AddFunc(schedule, p.run); err != nil {
		return nil, fmt.Errorf("invalid token cleanup schedule %q: %w", schedule, err)
	}

	return p, nil
}

// Start starts the scheduler in its own goroutine
func (p *TokenPurger) Start() {
	p.logger.Info("Token purger started", zap.Int("jobs", len(p.cron.Entries())))
	p.cron.Start()
}

// Stop stops the scheduler and waits for a running purge to finish
func (p *TokenPurger) Stop() {
	<-p.cron.Stop().Done()
	p.logger.Info("Token purger stopped")
}

// Purge removes expired revocation records once
func (p *TokenPurger) Purge(ctx context.Context) (int, error) {
	purged, err := p.store.Purge(ctx, p.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", err)
	}
	return purged, nil
}

func (p *TokenPurger) run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	purged, err := p.Purge(ctx)
	if err != nil {
		p.logger.Error("Scheduled token purge failed", zap.Error(err))
		return
	}
	p.logger.Info("Scheduled token purge completed", zap.Int("purgedCount", purged))
}
