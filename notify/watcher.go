package notify

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// StorageWatcher is the cross-context storage-change signal: it watches the
// wishlist file for writes by other processes sharing the same device and
// republishes them as wishlist.changed events on the local hub. Views then
// re-read the full wishlist state, last write wins.
type StorageWatcher struct {
	path string
	hub  *Hub
	log  *zap.Logger
}

func NewStorageWatcher(path string, hub *Hub, log *zap.Logger) *StorageWatcher {
	return &StorageWatcher{path: path, hub: hub, log: log}
}

// Run blocks until ctx is cancelled. The parent directory is watched rather
// than the file itself because durable writes land via rename, which replaces
// the watched inode.
func (w *StorageWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	base := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(evt.Name) != base {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.log.Debug("wishlist storage changed", zap.String("op", evt.Op.String()))
			w.hub.Publish(Event{Name: EventWishlistChanged})
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("storage watcher error", zap.Error(err))
		}
	}
}
