package reactive

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/korden-tech/korden/pkg/scheduler"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

func TestState_GetSet(t *testing.T) {
	sched := scheduler.NewScheduler()
	state := NewState(42, sched)

	if got := state.Get(); got != 42 {
		t.Errorf("Expected initial value 42, got %d", got)
	}

	state.Set(100)
	if got := state.Get(); got != 100 {
		t.Errorf("Expected value 100 after Set, got %d", got)
	}
}

func TestState_DependencyTracking(t *testing.T) {
	sched := scheduler.NewScheduler()
	state := NewState("Sensors", sched)

	var renderCount atomic.Int32
	fiber := sched.CreateFiber("grid", func() *vdom.VNode {
		renderCount.Add(1)
		return vdom.NewText(state.Get())
	})
	Watch(fiber, state)

	sched.MarkDirty(fiber)
	sched.Flush()
	if renderCount.Load() != 1 {
		t.Errorf("Expected 1 initial render, got %d", renderCount.Load())
	}

	state.Set("Connectors")
	sched.Flush()
	if renderCount.Load() != 2 {
		t.Errorf("Expected 2 renders after state update, got %d", renderCount.Load())
	}
	if got := fiber.VNode().Text; got != "Connectors" {
		t.Errorf("rendered %q", got)
	}

	Unwatch(fiber, state)
	state.Set("IoT Modules")
	sched.Flush()
	if renderCount.Load() != 2 {
		t.Errorf("unwatched fiber re-rendered: %d", renderCount.Load())
	}
}

func TestState_Update(t *testing.T) {
	sched := scheduler.NewScheduler()
	state := NewState(10, sched)

	state.Update(func(v int) int {
		return v * 2
	})

	if got := state.Get(); got != 20 {
		t.Errorf("Expected value 20 after Update, got %d", got)
	}
}

func TestState_ConcurrentAccess(t *testing.T) {
	sched := scheduler.NewScheduler()
	state := NewState(0, sched)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(val int) {
			defer wg.Done()
			state.Set(val)
		}(i)
		go func() {
			defer wg.Done()
			_ = state.Get()
		}()
	}
	wg.Wait()
}

func TestState_OnChange(t *testing.T) {
	state := NewState(0, nil)
	var calls int
	cancel := state.OnChange(func() { calls++ })
	state.Set(1)
	state.Set(2)
	cancel()
	state.Set(3)
	if calls != 2 {
		t.Errorf("listener called %d times, want 2", calls)
	}
}

func TestComputed_Memoization(t *testing.T) {
	sched := scheduler.NewScheduler()
	query := NewState("105", sched)

	var computeCount int
	matches := NewComputed(func() int {
		computeCount++
		return len(query.Get())
	}, sched, query)

	for i := 0; i < 3; i++ {
		if got := matches.Get(); got != 3 {
			t.Errorf("Get() = %d, want 3", got)
		}
	}
	if computeCount != 1 {
		t.Errorf("computed %d times, want 1", computeCount)
	}

	query.Set("sensor")
	if got := matches.Get(); got != 6 {
		t.Errorf("Get() after change = %d, want 6", got)
	}
	if computeCount != 2 {
		t.Errorf("computed %d times, want 2", computeCount)
	}

	matches.Dispose()
	query.Set("x")
	if got := matches.Get(); got != 6 {
		t.Errorf("disposed computed recomputed: %d", got)
	}
}

func TestComputed_ChainedDependencies(t *testing.T) {
	sched := scheduler.NewScheduler()
	base := NewState(2, sched)
	doubled := NewComputed(func() int { return base.Get() * 2 }, sched, base)
	quadrupled := NewComputed(func() int { return doubled.Get() * 2 }, sched, doubled)

	var renders atomic.Int32
	fiber := sched.CreateFiber("view", func() *vdom.VNode {
		renders.Add(1)
		return nil
	})
	Watch(fiber, quadrupled)

	if got := quadrupled.Get(); got != 8 {
		t.Errorf("quadrupled = %d, want 8", got)
	}

	base.Set(5)
	if got := quadrupled.Get(); got != 20 {
		t.Errorf("quadrupled = %d, want 20", got)
	}
	sched.Flush()
	if renders.Load() != 1 {
		t.Errorf("renders = %d, want 1", renders.Load())
	}
}

func TestBatch(t *testing.T) {
	sched := scheduler.NewScheduler()
	category := NewState("All", sched)
	query := NewState("", sched)

	var renders atomic.Int32
	fiber := sched.CreateFiber("grid", func() *vdom.VNode {
		renders.Add(1)
		return nil
	})
	Watch(fiber, category, query)

	var order []uint32
	sched.SetRenderApplier(func(f *scheduler.Fiber, _ *vdom.VNode) {
		order = append(order, f.ID())
	})

	RunBatch(sched, func() {
		category.Set("All")
		query.Set("")
		RunBatch(sched, func() { query.Set("nested") })
	})
	sched.Flush()

	if renders.Load() != 1 {
		t.Errorf("renders = %d, want 1 for a batch", renders.Load())
	}
	if len(order) != 1 {
		t.Errorf("applied %d times", len(order))
	}
}

func TestBatch_PerScheduler(t *testing.T) {
	a := scheduler.NewScheduler()
	b := scheduler.NewScheduler()
	sb := NewState(0, b)

	var renders atomic.Int32
	fb := b.CreateFiber("b", func() *vdom.VNode {
		renders.Add(1)
		return nil
	})
	Watch(fb, sb)

	RunBatch(a, func() {
		sb.Set(1)
		b.Flush()
	})
	if renders.Load() != 1 {
		t.Errorf("another scheduler's batch delayed this update (renders=%d)", renders.Load())
	}
}

func TestSignal_NilFiber(t *testing.T) {
	state := NewState(1, nil)
	state.Subscribe(nil)
	state.Unsubscribe(nil)
	Watch(nil)
	state.Set(2)
}
