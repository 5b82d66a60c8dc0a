// Package worker runs the background loops of a session: cart revalidation on
// location changes and the cross-session storage watcher.
package worker

import (
	"context"
	"log/slog"
	"sync"

	"quickdash/internal/delivery"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type workerServer struct {
	guard   usecase.CartGuardUsecase
	tabSync usecase.TabSyncUsecase
	logger  *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ServerParams holds dependencies for the session worker
type ServerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Logger  *slog.Logger
	Guard   usecase.CartGuardUsecase
	TabSync usecase.TabSyncUsecase
}

// NewServer creates the session worker
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		guard:   params.Guard,
		tabSync: params.TabSync,
		logger:  params.Logger,
		done:    make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the loops until ctx is done or the worker is stopped
func (s *workerServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	defer close(s.done)
	defer cancel()

	s.logger.Info("Starting session worker")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return errors.Wrap(s.guard.Listen(gctx), "cart guard")
	})
	g.Go(func() error {
		return errors.Wrap(s.tabSync.Watch(gctx), "tab sync")
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// stop cancels the loops and waits for them to return
func (s *workerServer) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}

	s.logger.Info("Shutting down session worker")
	cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
