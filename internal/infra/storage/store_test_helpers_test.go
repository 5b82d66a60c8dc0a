package storage

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"quickdash/internal/domain/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// waitForChange returns the first change for key, failing the test after timeout.
func waitForChange(t *testing.T, ch <-chan entity.StorageChange, key string, timeout time.Duration) entity.StorageChange {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case change, ok := <-ch:
			if !ok {
				t.Fatalf("watch channel closed before change to %s", key)
			}
			if change.Key == key {
				return change
			}
		case <-deadline:
			t.Fatalf("no change to %s within %s", key, timeout)
		}
	}
}
