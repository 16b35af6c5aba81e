package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/upchain/social/internal/social/store"
)

// HousekeepingService periodically clears expired verification codes and
// downgrades lapsed premium accounts.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the service. A non-positive interval
// defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping started", "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress sweep finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep runs both cleanups once. Failures are independent; one failing does
// not stop the other.
func (s *HousekeepingService) Sweep(ctx context.Context) {
	now := time.Now().UTC()

	if err := s.Store.Users().ClearExpiredOTPs(ctx, now); err != nil {
		s.Logger.Error("clearing expired otps failed", "error", err)
	}

	if err := s.Store.Users().DowngradeExpiredPremium(ctx, now); err != nil {
		s.Logger.Error("downgrading expired premium failed", "error", err)
	}
}
