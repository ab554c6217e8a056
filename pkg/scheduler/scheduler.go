package scheduler

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/korden-tech/korden/pkg/fx"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// RenderFunc is the function type for view render functions
type RenderFunc func() *vdom.VNode

// ErrorHandler handles panics inside a fiber.
// Returns true to keep the fiber, false to unmount it.
type ErrorHandler func(fiber *Fiber, err any) bool

// Fiber is one unit of scheduled work: either an animation effect stepped
// every frame, or a view re-rendered when it is marked dirty.
type Fiber struct {
	id   uint32
	name string

	// View fibers
	render RenderFunc
	vnode  *vdom.VNode
	dirty  atomic.Bool

	// Effect fibers
	effect  fx.Effect
	surface fx.Surface

	mounted atomic.Bool
	onError ErrorHandler
}

// debugLog is set by platform-specific code
var debugLog func(args ...any)

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...any)) {
	debugLog = fn
}

// input is a queued pointer or resize sample for an effect fiber
type input struct {
	fiber   *Fiber
	pointer fx.PointerEvent
	resize  bool
	w, h    float64
}

// Scheduler owns a set of fibers and runs them on a single loop goroutine.
// Effects are only touched from that goroutine; other goroutines talk to
// them through Post and Resize, which queue input for the next frame.
type Scheduler struct {
	mu       sync.Mutex
	fibers   map[uint32]*Fiber
	effects  []*Fiber
	nextID   uint32
	overflow []*Fiber

	inMu    sync.Mutex
	pending []input

	globalWake chan *Fiber
	running    atomic.Bool
	stop       chan struct{}
	done       chan struct{}
	frames     atomic.Uint64

	applyRender  func(fiber *Fiber, node *vdom.VNode)
	wrapRender   func(fiber *Fiber, render RenderFunc) *vdom.VNode
	defaultError ErrorHandler
}

// NewScheduler creates a new scheduler instance
func NewScheduler() *Scheduler {
	return &Scheduler{
		fibers:     make(map[uint32]*Fiber),
		nextID:     1,
		globalWake: make(chan *Fiber, 256),
	}
}

// SetRenderApplier sets the function that receives freshly rendered views
func (s *Scheduler) SetRenderApplier(applier func(fiber *Fiber, node *vdom.VNode)) {
	s.applyRender = applier
}

// SetRenderWrapper installs a hook around every view render, e.g. for
// dependency tracking.
func (s *Scheduler) SetRenderWrapper(wrap func(fiber *Fiber, render RenderFunc) *vdom.VNode) {
	s.wrapRender = wrap
}

// SetDefaultErrorHandler sets the default error handler for new fibers
func (s *Scheduler) SetDefaultErrorHandler(handler ErrorHandler) {
	s.defaultError = handler
}

func (s *Scheduler) newFiber(name string) *Fiber {
	f := &Fiber{id: s.nextID, name: name, onError: s.defaultError}
	s.nextID++
	f.mounted.Store(true)
	s.fibers[f.id] = f
	return f
}

// CreateFiber registers a view fiber. It is rendered the first time it is marked dirty.
func (s *Scheduler) CreateFiber(name string, render RenderFunc) *Fiber {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.newFiber(name)
	f.render = render
	return f
}

// Mount registers an effect drawing onto surface and queues an initial resize.
// The returned fiber is the handle used to feed input and to unmount.
func (s *Scheduler) Mount(name string, effect fx.Effect, surface fx.Surface, w, h float64) *Fiber {
	s.mu.Lock()
	f := s.newFiber(name)
	f.effect = effect
	f.surface = surface
	s.effects = append(s.effects, f)
	s.mu.Unlock()

	s.Resize(f, w, h)
	return f
}

// Unmount removes a fiber. Input queued for it is discarded and it is never
// stepped or rendered again. Unmounting twice is a no-op.
func (s *Scheduler) Unmount(fiber *Fiber) {
	if fiber == nil || !fiber.mounted.CompareAndSwap(true, false) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.fibers, fiber.id)
	for i, f := range s.effects {
		if f == fiber {
			s.effects = append(s.effects[:i], s.effects[i+1:]...)
			break
		}
	}
}

// Post queues a pointer sample for an effect fiber
func (s *Scheduler) Post(fiber *Fiber, ev fx.PointerEvent) {
	s.enqueue(input{fiber: fiber, pointer: ev})
}

// Resize queues a surface resize for an effect fiber
func (s *Scheduler) Resize(fiber *Fiber, w, h float64) {
	s.enqueue(input{fiber: fiber, resize: true, w: w, h: h})
}

func (s *Scheduler) enqueue(in input) {
	if in.fiber == nil || in.fiber.effect == nil || !in.fiber.mounted.Load() {
		return
	}
	s.inMu.Lock()
	s.pending = append(s.pending, in)
	s.inMu.Unlock()
}

func (s *Scheduler) drainInput() []input {
	s.inMu.Lock()
	defer s.inMu.Unlock()
	batch := s.pending
	s.pending = nil
	return batch
}

// MarkDirty queues a view fiber for rendering
func (s *Scheduler) MarkDirty(fiber *Fiber) {
	if fiber == nil || fiber.render == nil {
		return
	}

	if !fiber.dirty.CompareAndSwap(false, true) {
		if debugLog != nil {
			debugLog("[Scheduler] Fiber", fiber.ID(), "already dirty")
		}
		return
	}

	select {
	case s.globalWake <- fiber:
	default:
		// Wake channel full, picked up with the next batch
		s.mu.Lock()
		s.overflow = append(s.overflow, fiber)
		s.mu.Unlock()
	}
}

// Frame runs one frame synchronously: queued input is applied, dirty views
// are rendered, then every effect is stepped and drawn in mount order.
func (s *Scheduler) Frame() {
	s.frames.Add(1)

	for _, in := range s.drainInput() {
		f := in.fiber
		if !f.mounted.Load() {
			continue
		}
		s.guard(f, func() {
			if in.resize {
				f.effect.Resize(in.w, in.h)
			} else {
				f.effect.Pointer(in.pointer)
			}
		})
	}

	s.Flush()

	s.mu.Lock()
	effects := append([]*Fiber(nil), s.effects...)
	s.mu.Unlock()

	for _, f := range effects {
		if !f.mounted.Load() {
			continue
		}
		s.guard(f, func() {
			f.effect.Step()
			if f.surface != nil {
				f.effect.Draw(f.surface)
			}
		})
	}
}

// Flush renders every dirty view without blocking
func (s *Scheduler) Flush() {
	var batch []*Fiber
drain:
	for {
		select {
		case f := <-s.globalWake:
			batch = append(batch, f)
		default:
			break drain
		}
	}

	s.mu.Lock()
	batch = append(batch, s.overflow...)
	s.overflow = nil
	s.mu.Unlock()

	for _, f := range batch {
		s.processFiber(f)
	}
}

// processFiber renders a single view fiber
func (s *Scheduler) processFiber(fiber *Fiber) {
	// Might have been processed in a previous batch
	if !fiber.dirty.CompareAndSwap(true, false) || !fiber.mounted.Load() {
		return
	}

	s.guard(fiber, func() {
		var next *vdom.VNode
		if s.wrapRender != nil {
			next = s.wrapRender(fiber, fiber.render)
		} else {
			next = fiber.render()
		}
		fiber.vnode = next
		if s.applyRender != nil {
			s.applyRender(fiber, next)
		}
	})
}

// guard runs fn, turning a panic into a call to the fiber's error handler
func (s *Scheduler) guard(fiber *Fiber, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.handleFiberError(fiber, r)
		}
	}()
	fn()
}

// handleFiberError handles a panic inside a fiber
func (s *Scheduler) handleFiberError(fiber *Fiber, err any) {
	errorMsg := fmt.Sprintf("fiber %d (%s) panic: %v\n%s", fiber.id, fiber.name, err, debug.Stack())
	if debugLog != nil {
		debugLog("[Scheduler]", errorMsg)
	}

	shouldContinue := false
	if fiber.onError != nil {
		shouldContinue = fiber.onError(fiber, errorMsg)
	}
	if !shouldContinue {
		s.Unmount(fiber)
	}
}

// Start launches the loop goroutine. With a nil driver the loop only renders
// views as they are marked dirty; with a driver it runs Frame every time the
// driver fires. Starting a running scheduler is a no-op.
func (s *Scheduler) Start(driver Driver) {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(driver, s.stop, s.done)
}

// Stop ends the loop. It does not wait; use Done for that. Idempotent.
func (s *Scheduler) Stop() {
	if s.running.CompareAndSwap(true, false) {
		close(s.stop)
	}
}

// Done is closed once the loop goroutine has exited
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// IsRunning returns whether the scheduler is running
func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

func (s *Scheduler) loop(driver Driver, stop, done chan struct{}) {
	defer close(done)

	if driver != nil {
		for driver.Wait(stop) {
			s.Frame()
		}
		return
	}

	for {
		select {
		case f := <-s.globalWake:
			s.processFiber(f)
			s.Flush()
		case <-stop:
			return
		}
	}
}

// GetFiber returns a fiber by ID
func (s *Scheduler) GetFiber(id uint32) *Fiber {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fibers[id]
}

// FiberCount returns the number of mounted fibers
func (s *Scheduler) FiberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fibers)
}

// Frames returns how many frames have run
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}

// ID returns the fiber's unique ID
func (f *Fiber) ID() uint32 {
	return f.id
}

// Name returns the name the fiber was created with
func (f *Fiber) Name() string {
	return f.name
}

// VNode returns the fiber's last rendered tree
func (f *Fiber) VNode() *vdom.VNode {
	return f.vnode
}

// Effect returns the effect driven by this fiber, nil for views
func (f *Fiber) Effect() fx.Effect {
	return f.effect
}

// Mounted reports whether the fiber is still scheduled
func (f *Fiber) Mounted() bool {
	return f.mounted.Load()
}

// SetErrorHandler sets a custom error handler for this fiber
func (f *Fiber) SetErrorHandler(handler ErrorHandler) {
	f.onError = handler
}
