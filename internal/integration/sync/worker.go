package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/krigzlist/backend/internal/application/store"
)

// Worker periodically mirrors the list state when it has changed.
type Worker struct {
	store        *store.ListStore
	mirror       *Mirror
	pollInterval time.Duration

	lastRevision uint64
	mirrored     bool
}

// NewWorker creates a new sync worker.
func NewWorker(s *store.ListStore, mirror *Mirror, pollInterval time.Duration) *Worker {
	return &Worker{
		store:        s,
		mirror:       mirror,
		pollInterval: pollInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Sync worker started", "poll_interval", w.pollInterval)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Mirror immediately on start, then on ticker
	w.syncOnce()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Sync worker shutting down")
			return
		case <-ticker.C:
			w.syncOnce()
		}
	}
}

// syncOnce mirrors the current snapshot when the store revision moved since
// the last successful sync.
func (w *Worker) syncOnce() {
	revision := w.store.Revision()
	if w.mirrored && revision == w.lastRevision {
		return
	}

	items, budget := w.store.Snapshot()
	if err := w.mirror.ReplaceSnapshot(items, budget, revision); err != nil {
		slog.Error("Failed to mirror list snapshot", "error", err, "revision", revision)
		return
	}

	w.lastRevision = revision
	w.mirrored = true
	slog.Debug("List snapshot mirrored", "items", len(items), "revision", revision)
}
