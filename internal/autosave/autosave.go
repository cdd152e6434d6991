// Package autosave coalesces rapid edit bursts into single store writes.
//
// Every mutation in the editor triggers with the full working copy; the
// debouncer (re)arms a fixed delay and persists only when the burst goes
// quiet. A manual save flushes immediately, bypassing the delay.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/linkdeck/linkdeck/internal/page"
)

// DefaultDelay is the quiet period before a triggered document is persisted.
const DefaultDelay = 1200 * time.Millisecond

// SaveFunc persists a document.
type SaveFunc func(ctx context.Context, doc *page.Document) error

// Debouncer arms a cancellable delayed save on every trigger. Saves are
// serialized: an in-flight save blocks the next one from starting, and when
// several triggers queue up during a save only the newest document is
// written (last writer wins).
type Debouncer struct {
	delay time.Duration
	save  SaveFunc

	mu      sync.Mutex // guards timer, pending, stopped
	timer   *time.Timer
	pending *page.Document
	stopped bool

	saveMu sync.Mutex // serializes save invocations
}

// New creates a debouncer around the given save function. A delay of 0 uses
// DefaultDelay.
func New(delay time.Duration, save SaveFunc) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}

	return &Debouncer{
		delay: delay,
		save:  save,
	}
}

// Trigger stores doc as the pending working copy and (re)arms the delay.
// The save fires once no further trigger arrives within the delay.
func (d *Debouncer) Trigger(doc *page.Document) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = doc

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, d.fire)
}

// Flush cancels any pending delayed save and persists doc right away,
// returning the save error for user-facing display.
func (d *Debouncer) Flush(ctx context.Context, doc *page.Document) error {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	// the manual save supersedes whatever was queued
	d.pending = nil
	d.mu.Unlock()

	d.saveMu.Lock()
	defer d.saveMu.Unlock()

	return d.save(ctx, doc)
}

// Stop cancels any pending delayed save. A stopped debouncer ignores further
// triggers; an already in-flight save still completes.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs on the timer goroutine when the quiet period elapsed.
func (d *Debouncer) fire() {
	d.mu.Lock()
	doc := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if doc == nil {
		// flushed or superseded in the meantime
		return
	}

	d.saveMu.Lock()
	defer d.saveMu.Unlock()

	if err := d.save(context.Background(), doc); err != nil {
		// autosave has no user to report to; the next manual save surfaces
		// the error
		log.Error().Err(err).Msg("autosave failed")
	}
}
