package reactive

import "github.com/statekit/reactive/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Graph owns a population of reactive nodes and their propagation
// machinery. The zero value is not usable; create graphs with New or
// Default. Graph values comparing equal refer to the same graph.
type Graph struct {
	g *internal.Graph
}

// New creates a fresh, live graph.
func New(opts ...Option) Graph {
	g := internal.NewGraph()
	for _, opt := range opts {
		opt(g)
	}

	return Graph{g}
}

// Default returns the calling goroutine's default graph, lazily created on
// first use. Each goroutine observes a distinct default.
func Default() Graph {
	return Graph{internal.DefaultGraph()}
}

// ResetDefault drops the calling goroutine's default graph reference without
// disposing it. The next Default call creates a fresh graph.
func ResetDefault() {
	internal.ResetDefaultGraph()
}

// Dispose tears the graph down: every effect's cleanup runs, tables clear,
// and the graph transitions to disposed. Idempotent; never panics.
// Afterwards node creation panics ErrGraphDisposed, writes mutate values in
// place without propagation, and reads return stored or last-cached values.
func (g Graph) Dispose() { g.g.Dispose() }

func (g Graph) IsDisposed() bool { return g.g.IsDisposed() }

// SignalCount reports how many signals and computeds reside in the graph.
func (g Graph) SignalCount() int { return g.g.SignalCount() }

// EffectCount reports how many live effects reside in the graph.
func (g Graph) EffectCount() int { return g.g.EffectCount() }

// Batch defers propagation until fn returns. Batches nest; only the
// outermost exit flushes. Writes inside the batch coalesce, so each affected
// effect runs at most once when the batch exits.
func (g Graph) Batch(fn func()) { g.g.Batch(fn) }

// Untrack runs fn with dependency capture disabled: reads inside fn do not
// subscribe the current consumer. Re-entrant.
func (g Graph) Untrack(fn func()) { g.g.Untrack(fn) }

// OnCleanup registers fn to run before the current effect's next run or at
// its disposal, whichever comes first. Outside a running effect this is a
// no-op.
func (g Graph) OnCleanup(fn func()) { g.g.OnCleanup(fn) }

// Untrack runs fn with dependency capture disabled and returns its result.
func Untrack[T any](g Graph, fn func() T) T {
	var result T
	g.g.Untrack(func() { result = fn() })
	return result
}

// Signal is a writable reactive cell.
type Signal[T any] struct {
	s *internal.Source
}

// NewSignal creates a signal on g with the given initial value.
func NewSignal[T any](g Graph, initial T, opts ...SignalOption[T]) *Signal[T] {
	var cfg signalConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	var equals func(a, b any) bool
	if cfg.equals != nil {
		eq := cfg.equals
		equals = func(a, b any) bool { return eq(as[T](a), as[T](b)) }
	}

	return &Signal[T]{g.g.NewSource(initial, equals)}
}

// Read returns the current value, tracking the dependency if within a
// reactive context.
func (s *Signal[T]) Read() T {
	return as[T](s.s.Read())
}

// Write replaces the value, triggering updates to any dependents. Writing a
// value equal to the current one is a no-op.
func (s *Signal[T]) Write(v T) {
	s.s.Write(v)
}

// Update writes f applied to the current value. The read is untracked.
func (s *Signal[T]) Update(f func(T) T) {
	s.s.Update(func(v any) any { return f(as[T](v)) })
}

// Peek returns the current value without tracking the dependency.
func (s *Signal[T]) Peek() T {
	return as[T](s.s.Peek())
}

// Context returns the graph this signal belongs to.
func (s *Signal[T]) Context() Graph {
	return Graph{s.s.Graph()}
}

func (s *Signal[T]) SubscriberCount() int {
	return s.s.SubscriberCount()
}

// Computed is a memoized pure function of other nodes' values. It starts
// dirty; the first read computes it, and a dirty computed recomputes lazily
// on read.
type Computed[T any] struct {
	c *internal.Computed
}

// NewComputed creates a computed on g. compute must be a pure function of
// the reads it performs.
func NewComputed[T any](g Graph, compute func() T) *Computed[T] {
	return &Computed[T]{g.g.NewComputed(func() any {
		return compute()
	})}
}

// Read recomputes if needed, then returns the cached value, tracking the
// dependency if within a reactive context. Read panics with a *CycleError
// when the computed transitively depends on itself.
func (c *Computed[T]) Read() T {
	return as[T](c.c.Read())
}

// Peek returns the last successfully computed value without recomputing and
// without tracking. Undefined before the first successful Read.
func (c *Computed[T]) Peek() T {
	return as[T](c.c.Peek())
}

// Context returns the graph this computed belongs to.
func (c *Computed[T]) Context() Graph {
	return Graph{c.c.Graph()}
}

func (c *Computed[T]) IsDirty() bool {
	return c.c.IsDirty()
}

func (c *Computed[T]) DependencyCount() int {
	return c.c.DependencyCount()
}

func (c *Computed[T]) SubscriberCount() int {
	return c.c.SubscriberCount()
}

// Effect is a re-runnable side effect whose producers are captured
// automatically on each run.
type Effect struct {
	e *internal.Effect
}

// NewEffect creates an effect on g and runs it once synchronously to capture
// its initial dependencies, even inside a batch. It re-runs whenever a value
// it read changes.
func NewEffect(g Graph, fn func()) *Effect {
	return &Effect{g.g.NewEffect(fn)}
}

// Dispose runs the pending cleanup and unsubscribes the effect from every
// producer. Idempotent; a disposed effect never runs again.
func (e *Effect) Dispose() {
	e.e.Dispose()
}

func (e *Effect) IsDisposed() bool {
	return e.e.IsDisposed()
}

func (e *Effect) IsDirty() bool {
	return e.e.IsDirty()
}

func (e *Effect) DependencyCount() int {
	return e.e.DependencyCount()
}

// Context returns the graph this effect belongs to.
func (e *Effect) Context() Graph {
	return Graph{e.e.Graph()}
}

// NewState is an alias for NewSignal.
func NewState[T any](g Graph, initial T, opts ...SignalOption[T]) *Signal[T] {
	return NewSignal(g, initial, opts...)
}

// NewDerived is an alias for NewComputed.
func NewDerived[T any](g Graph, compute func() T) *Computed[T] {
	return NewComputed(g, compute)
}

// NewMemo is an alias for NewComputed.
func NewMemo[T any](g Graph, compute func() T) *Computed[T] {
	return NewComputed(g, compute)
}

// NewWatcher is an alias for NewEffect.
func NewWatcher(g Graph, fn func()) *Effect {
	return NewEffect(g, fn)
}
