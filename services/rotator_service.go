package services

import (
	"context"
	"sync"
	"time"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/ArmanNagariya-Developer/azhari-attar/notify"

	"go.uber.org/zap"
)

// Rotator drives the promotional carousel: the featured slide auto-advances
// on a fixed interval, pauses on any user interaction, and resumes after a
// fixed idle delay. The resume is a restartable timer, not a cancellable
// task; repeated interactions just push the resume point out.
type Rotator struct {
	hub *notify.Hub
	log *zap.Logger

	advanceEvery time.Duration
	resumeAfter  time.Duration

	mu       sync.Mutex
	slides   []models.Product
	index    int
	paused   bool
	resumeAt time.Time
}

// NewRotator uses the storefront defaults: advance every 5s, resume 3s after
// the last interaction.
func NewRotator(slides []models.Product, hub *notify.Hub, log *zap.Logger) *Rotator {
	return NewRotatorWithTiming(slides, hub, log, 5*time.Second, 3*time.Second)
}

func NewRotatorWithTiming(slides []models.Product, hub *notify.Hub, log *zap.Logger, advanceEvery, resumeAfter time.Duration) *Rotator {
	return &Rotator{
		hub:          hub,
		log:          log,
		slides:       slides,
		advanceEvery: advanceEvery,
		resumeAfter:  resumeAfter,
	}
}

// Run blocks until ctx is cancelled, advancing the carousel whenever
// auto-play is active.
func (r *Rotator) Run(ctx context.Context) error {
	if len(r.slides) == 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(r.advanceEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *Rotator) tick() {
	r.mu.Lock()
	if r.paused {
		if time.Now().Before(r.resumeAt) {
			r.mu.Unlock()
			return
		}
		r.paused = false
	}
	r.index = (r.index + 1) % len(r.slides)
	current := r.slides[r.index]
	index := r.index
	r.mu.Unlock()

	r.publish(current, index)
}

// Current returns the featured slide and its index.
func (r *Rotator) Current() (models.Product, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return models.Product{}, 0
	}
	return r.slides[r.index], r.index
}

// Next is a user interaction: advance one slide and hold auto-play.
func (r *Rotator) Next() (models.Product, int) {
	return r.interact(+1, -1)
}

// Prev is a user interaction: go back one slide and hold auto-play.
func (r *Rotator) Prev() (models.Product, int) {
	return r.interact(-1, -1)
}

// Select is a user interaction: jump straight to a slide. Out-of-range
// indexes wrap like the arrows do.
func (r *Rotator) Select(index int) (models.Product, int) {
	return r.interact(0, index)
}

func (r *Rotator) interact(step, jump int) (models.Product, int) {
	r.mu.Lock()
	if len(r.slides) == 0 {
		r.mu.Unlock()
		return models.Product{}, 0
	}
	if jump >= 0 {
		r.index = jump % len(r.slides)
	} else {
		r.index = (r.index + step + len(r.slides)) % len(r.slides)
	}
	r.paused = true
	r.resumeAt = time.Now().Add(r.resumeAfter)
	current := r.slides[r.index]
	index := r.index
	r.mu.Unlock()

	r.publish(current, index)
	return current, index
}

// Paused reports whether auto-play is currently held by an interaction.
func (r *Rotator) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused && time.Now().Before(r.resumeAt)
}

func (r *Rotator) publish(p models.Product, index int) {
	r.hub.Publish(notify.Event{Name: notify.EventFeaturedChanged, Payload: index})
	r.log.Debug("featured slide changed", zap.Int("index", index), zap.Int("product_id", p.ID))
}
