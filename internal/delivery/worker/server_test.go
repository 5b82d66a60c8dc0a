package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "quickdash/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workerFixtures struct {
	server  *workerServer
	guard   *mockUsecase.MockCartGuardUsecase
	tabSync *mockUsecase.MockTabSyncUsecase
}

func createTestWorker(t *testing.T) workerFixtures {
	guard := mockUsecase.NewMockCartGuardUsecase(t)
	tabSync := mockUsecase.NewMockTabSyncUsecase(t)

	return workerFixtures{
		server: &workerServer{
			guard:   guard,
			tabSync: tabSync,
			logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
			done:    make(chan struct{}),
		},
		guard:   guard,
		tabSync: tabSync,
	}
}

func blockUntilDone(ctx context.Context) error {
	<-ctx.Done()

	return ctx.Err()
}

func TestWorker_StopCancelsLoops(t *testing.T) {
	fx := createTestWorker(t)

	started := make(chan struct{}, 2)
	fx.guard.EXPECT().Listen(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		started <- struct{}{}
		<-ctx.Done()

		return nil
	})
	fx.tabSync.EXPECT().Watch(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		started <- struct{}{}

		return blockUntilDone(ctx)
	})

	served := make(chan error, 1)
	go func() {
		served <- fx.server.Serve(context.Background())
	}()

	<-started
	<-started

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, fx.server.stop(stopCtx))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not return after stop")
	}
}

func TestWorker_LoopFailureStopsTheOther(t *testing.T) {
	fx := createTestWorker(t)

	fx.guard.EXPECT().Listen(mock.Anything).Return(errors.New("bus closed"))
	fx.tabSync.EXPECT().Watch(mock.Anything).RunAndReturn(blockUntilDone)

	err := fx.server.Serve(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart guard: bus closed")
}

func TestWorker_StopBeforeServe(t *testing.T) {
	fx := createTestWorker(t)

	assert.NoError(t, fx.server.stop(context.Background()))
}
