package reactive

import (
	"sync"

	"github.com/korden-tech/korden/pkg/scheduler"
)

// Scheduler interface for reactive system
type Scheduler interface {
	MarkDirty(fiber *scheduler.Fiber)
}

// debugLog is set by platform-specific code
var debugLog func(args ...any)

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...any)) {
	debugLog = fn
}

// Source is anything a fiber or computed value can depend on
type Source interface {
	Subscribe(fiber *scheduler.Fiber)
	Unsubscribe(fiber *scheduler.Fiber)
	OnChange(fn func()) (cancel func())
}

// deps tracks the fibers and listeners attached to a source
type deps struct {
	mu        sync.RWMutex
	fibers    map[uint32]*scheduler.Fiber
	listeners map[int]func()
	nextID    int
	scheduler Scheduler
}

func newDeps(sched Scheduler) deps {
	return deps{
		fibers:    make(map[uint32]*scheduler.Fiber),
		listeners: make(map[int]func()),
		scheduler: sched,
	}
}

// Subscribe adds a fiber as a dependency
func (d *deps) Subscribe(fiber *scheduler.Fiber) {
	if fiber == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fibers[fiber.ID()] = fiber
}

// Unsubscribe removes a fiber as a dependency
func (d *deps) Unsubscribe(fiber *scheduler.Fiber) {
	if fiber == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.fibers, fiber.ID())
}

// OnChange registers fn to run after every change
func (d *deps) OnChange(fn func()) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.listeners, id)
		d.mu.Unlock()
	}
}

// notify runs listeners and marks dependent fibers dirty, outside the lock
func (d *deps) notify() {
	d.mu.RLock()
	fibers := make([]*scheduler.Fiber, 0, len(d.fibers))
	for _, f := range d.fibers {
		fibers = append(fibers, f)
	}
	listeners := make([]func(), 0, len(d.listeners))
	for _, fn := range d.listeners {
		listeners = append(listeners, fn)
	}
	d.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
	for _, f := range fibers {
		markDirtyOrBatch(d.scheduler, f)
	}
}

// State represents a reactive state value
type State[T any] struct {
	value T
	mu    sync.RWMutex
	deps
}

// NewState creates a new reactive state
func NewState[T any](initial T, sched Scheduler) *State[T] {
	return &State[T]{value: initial, deps: newDeps(sched)}
}

// Get returns the current value
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and marks dependent fibers as dirty
func (s *State[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()

	if debugLog != nil {
		debugLog("[State] Set", value)
	}
	s.notify()
}

// Update atomically reads, modifies, and writes the value
func (s *State[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	s.mu.Unlock()
	s.notify()
}

// Computed represents a memoized value derived from other sources
type Computed[T any] struct {
	compute func() T
	value   T
	valid   bool
	mu      sync.Mutex
	cancel  []func()
	deps
}

// NewComputed creates a computed value that is invalidated whenever one
// of sources changes.
func NewComputed[T any](compute func() T, sched Scheduler, sources ...Source) *Computed[T] {
	c := &Computed[T]{compute: compute, deps: newDeps(sched)}
	for _, src := range sources {
		c.cancel = append(c.cancel, src.OnChange(c.Invalidate))
	}
	return c
}

// Get returns the computed value, recalculating if necessary
func (c *Computed[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid {
		c.value = c.compute()
		c.valid = true
	}
	return c.value
}

// Invalidate marks the computed value as needing recalculation
func (c *Computed[T]) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
	c.notify()
}

// Dispose detaches the computed value from its sources
func (c *Computed[T]) Dispose() {
	for _, cancel := range c.cancel {
		cancel()
	}
	c.cancel = nil
}

// Watch subscribes fiber to every source
func Watch(fiber *scheduler.Fiber, sources ...Source) {
	for _, src := range sources {
		src.Subscribe(fiber)
	}
}

// Unwatch reverses Watch
func Unwatch(fiber *scheduler.Fiber, sources ...Source) {
	for _, src := range sources {
		src.Unsubscribe(fiber)
	}
}

// batches holds the open batch of each scheduler
var batches sync.Map // Scheduler -> *Batch

// Batch collects dirty fibers until it is committed
type Batch struct {
	scheduler   Scheduler
	dirtyFibers map[uint32]*scheduler.Fiber
	order       []*scheduler.Fiber
	mu          sync.Mutex
	active      bool
}

// NewBatch creates a new batch context
func NewBatch(sched Scheduler) *Batch {
	return &Batch{
		scheduler:   sched,
		dirtyFibers: make(map[uint32]*scheduler.Fiber),
		active:      true,
	}
}

// Add adds a fiber to the batch
func (b *Batch) Add(fiber *scheduler.Fiber) {
	if fiber == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active {
		return
	}
	if _, ok := b.dirtyFibers[fiber.ID()]; !ok {
		b.dirtyFibers[fiber.ID()] = fiber
		b.order = append(b.order, fiber)
	}
}

// Commit marks every collected fiber dirty, in first-touched order
func (b *Batch) Commit() {
	b.mu.Lock()
	b.active = false
	fibers := b.order
	b.order = nil
	b.dirtyFibers = nil
	b.mu.Unlock()

	for _, fiber := range fibers {
		b.scheduler.MarkDirty(fiber)
	}
}

// RunBatch executes fn so that fibers of sched are marked dirty once, after
// fn returns. Batches are per scheduler; nesting joins the outer batch.
func RunBatch(sched Scheduler, fn func()) {
	batch := NewBatch(sched)
	if _, loaded := batches.LoadOrStore(sched, batch); loaded {
		fn()
		return
	}

	defer func() {
		batches.Delete(sched)
		batch.Commit()
	}()
	fn()
}

// markDirtyOrBatch marks a fiber dirty or adds it to its scheduler's batch
func markDirtyOrBatch(sched Scheduler, fiber *scheduler.Fiber) {
	if sched == nil {
		if debugLog != nil {
			debugLog("[State] no scheduler for fiber", fiber.ID())
		}
		return
	}
	if b, ok := batches.Load(sched); ok {
		b.(*Batch).Add(fiber)
		return
	}
	sched.MarkDirty(fiber)
}
