package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStores(t *testing.T) (repository.StateStore, repository.StateStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state", "quickdash.json")
	tabA, err := NewFileStore(path, "tab-a", discardLogger())
	require.NoError(t, err)
	tabB, err := NewFileStore(path, "tab-b", discardLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		tabA.Close()
		tabB.Close()
	})

	return tabA, tabB, path
}

func TestFileStore_EmptyFileReadsAsEmpty(t *testing.T) {
	tabA, _, _ := newTestFileStores(t)

	_, ok, err := tabA.Get(context.Background(), repository.KeyAccessToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_SetIsVisibleToOtherSession(t *testing.T) {
	ctx := context.Background()
	tabA, tabB, path := newTestFileStores(t)

	require.NoError(t, tabA.Set(ctx, map[string]string{
		repository.KeyDeliveryAddressID: "addr-7",
		repository.KeyWarehouseID:       "wh-1",
	}))

	values, err := tabB.GetMany(ctx, repository.KeyDeliveryAddressID, repository.KeyWarehouseID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		repository.KeyDeliveryAddressID: "addr-7",
		repository.KeyWarehouseID:       "wh-1",
	}, values)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"writer":"tab-a"`)

	require.NoError(t, tabB.Delete(ctx, repository.KeyWarehouseID))
	_, ok, err := tabA.Get(ctx, repository.KeyWarehouseID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_WatchReportsForeignWrites(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tabA, tabB, _ := newTestFileStores(t)

	changes, err := tabA.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, tabB.Set(ctx, map[string]string{repository.KeyDeliveryAddressID: "addr-9"}))

	change := waitForChange(t, changes, repository.KeyDeliveryAddressID, 3*time.Second)
	assert.True(t, change.Foreign)
	assert.Equal(t, "tab-b", change.Writer)
}

func TestFileStore_WatchReportsOwnWritesAsLocal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tabA, _, _ := newTestFileStores(t)

	changes, err := tabA.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, tabA.Set(ctx, map[string]string{repository.KeyBrowsingLatitude: "12.9"}))

	change := waitForChange(t, changes, repository.KeyBrowsingLatitude, 3*time.Second)
	assert.False(t, change.Foreign)
}

func TestNewFileStore_RequiresPath(t *testing.T) {
	_, err := NewFileStore("", "tab-a", discardLogger())
	assert.Error(t, err)
}

func TestDiffKeys(t *testing.T) {
	before := map[string]string{"a": "1", "b": "2", "c": "3"}
	after := map[string]string{"a": "1", "b": "20", "d": "4"}

	assert.ElementsMatch(t, []string{"b", "c", "d"}, diffKeys(before, after))
}

func TestFileStore_WatchCreditsEachKeyToItsWriter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tabA, tabB, _ := newTestFileStores(t)

	changes, err := tabA.Watch(ctx)
	require.NoError(t, err)

	for i := range 20 {
		require.NoError(t, tabB.Set(ctx, map[string]string{repository.KeyDeliveryAddressID: fmt.Sprintf("addr-%d", i)}))
		require.NoError(t, tabA.Set(ctx, map[string]string{repository.KeyWarehouseID: fmt.Sprintf("W%d", i)}))

		seen := map[string]entity.StorageChange{}
		deadline := time.After(3 * time.Second)
		for len(seen) < 2 {
			select {
			case change, ok := <-changes:
				require.True(t, ok, "watch channel closed")
				seen[change.Key] = change
			case <-deadline:
				t.Fatalf("round %d: saw only %v", i, seen)
			}
		}

		delivery := seen[repository.KeyDeliveryAddressID]
		assert.True(t, delivery.Foreign, "round %d", i)
		assert.Equal(t, "tab-b", delivery.Writer)

		warehouse := seen[repository.KeyWarehouseID]
		assert.False(t, warehouse.Foreign, "round %d", i)
		assert.Equal(t, "tab-a", warehouse.Writer)
	}
}

func TestFileStore_WatchCreditsDeletesToTheDeleter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tabA, tabB, _ := newTestFileStores(t)
	require.NoError(t, tabA.Set(ctx, map[string]string{repository.KeyDeliveryAddressID: "addr-1"}))

	changes, err := tabA.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, tabB.Delete(ctx, repository.KeyDeliveryAddressID))

	change := waitForChange(t, changes, repository.KeyDeliveryAddressID, 3*time.Second)
	assert.True(t, change.Foreign)
	assert.Equal(t, "tab-b", change.Writer)
}

func TestFileDocument_WriterOfFallsBackToFileWriter(t *testing.T) {
	doc := &fileDocument{Writer: "tab-b", Writers: map[string]string{"a": "tab-a"}}

	assert.Equal(t, "tab-a", doc.writerOf("a"))
	assert.Equal(t, "tab-b", doc.writerOf("b"))
}
