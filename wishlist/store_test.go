package wishlist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/ArmanNagariya-Developer/azhari-attar/notify"
	"github.com/ArmanNagariya-Developer/azhari-attar/wishlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*wishlist.Store, *notify.Hub, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wishlist.json")
	hub := notify.NewHub()
	return wishlist.NewStore(path, hub, zap.NewNop()), hub, path
}

func sampleProduct(id int) models.Product {
	return models.Product{
		ID:            id,
		Name:          "Royal Oud",
		Category:      models.CategoryNew,
		FragranceType: models.FragranceStrong,
		ML:            6,
		PriceINR:      299,
		Price:         3.6,
		Image:         "/images/royal-oud.webp",
		Description:   "Deep woody attar.",
	}
}

func TestAddPersistsSnapshot(t *testing.T) {
	store, _, path := newTestStore(t)

	res := store.Add(sampleProduct(1))
	require.True(t, res.Added)
	assert.Empty(t, res.Reason)

	entries := store.List()
	require.Len(t, entries, 1)
	assert.Equal(t, models.WishlistEntry{
		ID:          1,
		Name:        "Royal Oud",
		Price:       3.6,
		Image:       "/images/royal-oud.webp",
		Description: "Deep woody attar.",
		Category:    models.CategoryNew,
	}, entries[0])

	_, err := os.Stat(path)
	assert.NoError(t, err, "add must write through to disk")
}

func TestAddIsIdempotent(t *testing.T) {
	store, _, _ := newTestStore(t)

	require.True(t, store.Add(sampleProduct(1)).Added)

	res := store.Add(sampleProduct(1))
	assert.False(t, res.Added)
	assert.Equal(t, "already present", res.Reason)
	assert.Equal(t, 1, store.Count())
}

func TestRemoveAbsentIsSilentNoOp(t *testing.T) {
	store, hub, _ := newTestStore(t)

	store.Add(sampleProduct(1))

	var notified int
	hub.Subscribe(notify.EventWishlistChanged, func(notify.Event) { notified++ })

	assert.False(t, store.Remove(99).Removed)
	assert.Equal(t, 0, notified, "no-op remove must not notify")
	assert.Equal(t, 1, store.Count())

	assert.True(t, store.Remove(1).Removed)
	assert.Equal(t, 1, notified)
	assert.Equal(t, 0, store.Count())
}

func TestClearWritesEmptyArray(t *testing.T) {
	store, _, path := newTestStore(t)

	store.Add(sampleProduct(1))
	store.Add(sampleProduct(2))
	store.Clear()

	assert.Equal(t, 0, store.Count())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw), "clear stores an empty array, not a deleted key")
}

func TestLoadFailsOpenOnCorruptFile(t *testing.T) {
	store, _, path := newTestStore(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Empty(t, store.List())
	assert.Equal(t, 0, store.Count())

	// the store stays usable after recovering
	require.True(t, store.Add(sampleProduct(3)).Added)
	assert.Equal(t, 1, store.Count())
}

func TestMissingFileReadsAsEmpty(t *testing.T) {
	store, _, _ := newTestStore(t)

	assert.Empty(t, store.List())
	assert.False(t, store.Contains(1))
}

func TestChangeNotificationIsSynchronous(t *testing.T) {
	store, hub, _ := newTestStore(t)

	var counts []int
	hub.Subscribe(notify.EventWishlistChanged, func(evt notify.Event) {
		counts = append(counts, evt.Payload.(int))
	})

	store.Add(sampleProduct(1))
	store.Add(sampleProduct(2))
	store.Remove(1)
	store.Clear()

	assert.Equal(t, []int{1, 2, 1, 0}, counts, "every mutation notifies with the new count before returning")
}

func TestTwoStoresShareOneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wishlist.json")
	a := wishlist.NewStore(path, notify.NewHub(), zap.NewNop())
	b := wishlist.NewStore(path, notify.NewHub(), zap.NewNop())

	a.Add(sampleProduct(1))
	assert.True(t, b.Contains(1), "a second context sees writes on its next read")

	b.Add(sampleProduct(2))
	assert.Equal(t, 2, a.Count())

	// last write wins, no merging
	b.Clear()
	assert.Equal(t, 0, a.Count())
}

func TestWishlistSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wishlist.json")

	first := wishlist.NewStore(path, notify.NewHub(), zap.NewNop())
	first.Add(sampleProduct(1))
	first.Add(sampleProduct(2))

	reopened := wishlist.NewStore(path, notify.NewHub(), zap.NewNop())
	entries := reopened.List()
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, 2, entries[1].ID)
}
