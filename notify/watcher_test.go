package notify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ArmanNagariya-Developer/azhari-attar/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcherPublishesOnFileWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wishlist.json")

	hub := notify.NewHub()
	changed := make(chan struct{}, 8)
	hub.Subscribe(notify.EventWishlistChanged, func(notify.Event) {
		changed <- struct{}{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- notify.NewStorageWatcher(path, hub, zap.NewNop()).Run(ctx)
	}()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change event after writing the watched file")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wishlist.json")

	hub := notify.NewHub()
	changed := make(chan struct{}, 8)
	hub.Subscribe(notify.EventWishlistChanged, func(notify.Event) {
		changed <- struct{}{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- notify.NewStorageWatcher(path, hub, zap.NewNop()).Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))

	select {
	case <-changed:
		t.Fatal("sibling file write must not publish a wishlist change")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	<-done
}

func TestWatcherSeesRenameReplacement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wishlist.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	hub := notify.NewHub()
	changed := make(chan struct{}, 8)
	hub.Subscribe(notify.EventWishlistChanged, func(notify.Event) {
		changed <- struct{}{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- notify.NewStorageWatcher(path, hub, zap.NewNop()).Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)

	// durable writes land via temp file + rename, replacing the inode
	tmp := filepath.Join(dir, "wishlist-tmp.json")
	require.NoError(t, os.WriteFile(tmp, []byte(`[{"id":1}]`), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change event after rename over the watched file")
	}

	cancel()
	<-done
}
