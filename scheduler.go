package silo

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Prestepper is a system capability: Prestep runs concurrently across every
// system implementing it, sharing one ThreadSafeView read-only across the
// whole parallel prestep phase. A system may still mutate its own state.
type Prestepper interface {
	Prestep(*ThreadSafeView)
}

// SingleEntityStepper is a system capability: SingleEntityStep is invoked
// once per live entity, through a Cursor bound to that entity alone.
type SingleEntityStepper interface {
	SingleEntityStep(*Cursor)
}

// Runner is a system capability: Run is invoked once per tick, serially,
// in registration order, with exclusive access to the whole Store.
type Runner interface {
	Run(*Store)
}

// System is any value a World can schedule. Which of the three phases it
// participates in is detected structurally, via type assertion against
// Prestepper/SingleEntityStepper/Runner — the idiomatic Go replacement for
// the source's implements_prestep()/implements_single_entity_step() bool
// probes (spec.md DESIGN NOTES: "implementations ... should replace it
// with that mechanism, preserving semantic equivalence").
type System interface{}

const (
	lockBitPrestep      = 0
	lockBitSingleEntity = 1
)

// World owns a Store and a registered list of systems, and drives the
// four-step tick spec.md's SCHEDULER describes.
type World struct {
	store     *Store
	systems   []System
	chunkSize int
}

// WorldOption configures a World at construction time.
type WorldOption func(*World)

// WithChunkSize overrides the per-tick entity-chunk size used by the
// parallel per-entity phase. The zero value (the default) computes
// max(16, live_entity_count/(GOMAXPROCS*4)) fresh every tick.
func WithChunkSize(n int) WorldOption {
	return func(w *World) { w.chunkSize = n }
}

// NewWorld constructs a World over store.
func NewWorld(store *Store, opts ...WorldOption) *World {
	w := &World{store: store}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Register adds sys to the schedule. Systems run in registration order
// within phase 3 (for a fixed entity) and phase 4.
func (w *World) Register(sys System) {
	w.systems = append(w.systems, sys)
}

// Store returns the World's underlying Store.
func (w *World) Store() *Store {
	return w.store
}

func (w *World) chunkSizeFor(liveCount int) int {
	if w.chunkSize > 0 {
		return w.chunkSize
	}
	cores := runtime.GOMAXPROCS(0)
	if cores < 1 {
		cores = 1
	}
	size := liveCount / (cores * 4)
	return max(size, 16)
}

// Tick executes one full pass of the schedule: serial resource updates,
// parallel prestep, parallel per-entity stepping, then serial run — in
// that order, with a synchronization barrier between each phase (spec.md
// CONCURRENCY & RESOURCE MODEL: "no phase-N+1 task observes a phase-N
// effect until all phase-N tasks have completed").
func (w *World) Tick(ctx context.Context) error {
	tickStart := time.Now()
	log := Config.logger.Sugar()

	w.store.updateResources()

	if err := w.runPrestepPhase(ctx, log); err != nil {
		return err
	}

	if err := w.runSingleEntityPhase(ctx, log); err != nil {
		return err
	}

	runStart := time.Now()
	for _, sys := range w.systems {
		if r, ok := sys.(Runner); ok {
			r.Run(w.store)
		}
	}
	log.Debugw("run phase complete", "duration", time.Since(runStart))
	log.Debugw("tick complete", "duration", time.Since(tickStart))
	return nil
}

func (w *World) runPrestepPhase(ctx context.Context, log *zap.SugaredLogger) error {
	start := time.Now()
	view := newThreadSafeView(w.store)

	w.store.AddLock(lockBitPrestep)
	defer w.store.RemoveLock(lockBitPrestep)

	g, _ := errgroup.WithContext(ctx)
	dispatched := 0
	for _, sys := range w.systems {
		p, ok := sys.(Prestepper)
		if !ok {
			continue
		}
		dispatched++
		g.Go(func() error {
			p.Prestep(view)
			return nil
		})
	}
	err := g.Wait()
	log.Debugw("prestep phase complete", "systems", dispatched, "duration", time.Since(start))
	return err
}

func (w *World) runSingleEntityPhase(ctx context.Context, log *zap.SugaredLogger) error {
	start := time.Now()

	live := make([]Handle, 0, w.store.LiveCount())
	for h := range w.store.IterateLive() {
		live = append(live, h)
	}
	chunkSize := w.chunkSizeFor(len(live))

	w.store.AddLock(lockBitSingleEntity)
	defer w.store.RemoveLock(lockBitSingleEntity)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for lo := 0; lo < len(live); lo += chunkSize {
		hi := min(lo+chunkSize, len(live))
		chunk := live[lo:hi]
		g.Go(func() error {
			for _, h := range chunk {
				for _, sys := range w.systems {
					st, ok := sys.(SingleEntityStepper)
					if !ok {
						continue
					}
					st.SingleEntityStep(newCursor(w.store, h))
				}
			}
			return nil
		})
	}

	err := g.Wait()
	log.Debugw("single-entity phase complete", "entities", len(live), "chunkSize", chunkSize, "duration", time.Since(start))
	return err
}
