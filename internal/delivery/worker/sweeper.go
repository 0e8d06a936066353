// Package worker runs background jobs alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"album/config"
	"album/internal/delivery"
	"album/internal/domain/lifecycle"
	"album/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the session sweeper
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

// sessionSweeper deletes expired sessions on a fixed interval.
type sessionSweeper struct {
	sessionUC usecase.SessionUsecase
	interval  time.Duration
	logger    *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewSessionSweeper creates the sweeper and ties it to the application lifecycle
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	s := newSessionSweeper(params.SessionUC, params.Cfg.Auth.SessionSweepInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newSessionSweeper(sessionUC usecase.SessionUsecase, interval time.Duration, logger *slog.Logger) *sessionSweeper {
	return &sessionSweeper{
		sessionUC: sessionUC,
		interval:  interval,
		logger:    logger,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Serve sweeps once immediately and then on every tick until stopped.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ticker.C:
		case <-s.stopCh:
			return nil
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	n, err := s.sessionUC.CleanupExpiredSessions(sweepCtx)
	if err != nil {
		s.logger.Warn("Session sweep failed", slog.Any("error", err))

		return
	}
	if n > 0 {
		s.logger.Info("Expired sessions removed", slog.Int64("count", n))
	}
}

func (s *sessionSweeper) stop(ctx context.Context) error {
	s.logger.Info("Shutting down session sweeper")
	s.stopOnce.Do(func() { close(s.stopCh) })

	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
