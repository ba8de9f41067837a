package internal

import (
	"errors"
	"log/slog"
)

// NodeID identifies a node within its graph. Ids are allocated by a
// monotonic counter and never reused.
type NodeID int64

// SignalNode is a resident of the signal table: a Source or a Computed.
type SignalNode interface {
	ID() NodeID
	Graph() *Graph
	Read() any
	Peek() any
	Write(v any)
	SubscriberCount() int

	subscribers() *nodeSet
}

// Graph is the arena owning a population of reactive nodes and their
// propagation machinery. A graph is strictly single-threaded: nothing in it
// locks, and isolation across goroutines comes from each goroutine getting
// its own default graph.
type Graph struct {
	nextID NodeID

	signals map[NodeID]SignalNode
	effects map[NodeID]*Effect

	tracker *Tracker
	batcher *Batcher

	updateQueue *nodeSet // computeds awaiting structural dirty-marking
	effectQueue *nodeSet // effects awaiting re-run

	computeStack []NodeID // in-progress recomputes, for cycle detection

	flushing bool
	disposed bool

	logger *slog.Logger
}

func NewGraph() *Graph {
	return &Graph{
		signals: make(map[NodeID]SignalNode),
		effects: make(map[NodeID]*Effect),

		tracker: NewTracker(),
		batcher: NewBatcher(),

		updateQueue: newNodeSet(),
		effectQueue: newNodeSet(),

		logger: slog.Default(),
	}
}

func (g *Graph) allocID() NodeID {
	g.nextID++
	return g.nextID
}

func (g *Graph) SetLogger(l *slog.Logger) {
	if l != nil {
		g.logger = l
	}
}

func (g *Graph) IsDisposed() bool {
	return g.disposed
}

func (g *Graph) SignalCount() int {
	return len(g.signals)
}

func (g *Graph) EffectCount() int {
	return len(g.effects)
}

func (g *Graph) Untrack(fn func()) {
	g.tracker.RunUntracked(fn)
}

// OnCleanup registers fn to run before the current effect's next run or at
// its disposal, whichever comes first. The last registration within a run
// wins. Outside a running effect this is a no-op.
func (g *Graph) OnCleanup(fn func()) {
	if e := g.tracker.currentEffect; e != nil {
		e.cleanup = fn
	}
}

// track records a bidirectional edge between the producer and the current
// consumer, if any. The currently recomputing computed takes precedence over
// the currently running effect.
func (g *Graph) track(producerID NodeID, subs *nodeSet) {
	if g.disposed || !g.tracker.tracking {
		return
	}

	if c := g.tracker.currentComputed; c != nil {
		subs.Add(c.id)
		c.deps.Add(producerID)
		return
	}
	if e := g.tracker.currentEffect; e != nil && !e.disposed {
		subs.Add(e.id)
		e.deps.Add(producerID)
	}
}

// enqueueSubscribers marks every subscriber dirty and enqueues it: computeds
// onto the update queue, effects onto the effect queue. Used by the write
// path; both queues deduplicate on insert.
func (g *Graph) enqueueSubscribers(subs *nodeSet) {
	for _, id := range subs.Values() {
		if c, ok := g.signals[id].(*Computed); ok {
			c.dirty = true
			g.updateQueue.Add(id)
			continue
		}
		if e, ok := g.effects[id]; ok {
			e.dirty = true
			g.effectQueue.Add(id)
		}
	}
}

// schedule flushes unless a batch or an in-progress flush will pick the
// queued work up.
func (g *Graph) schedule() {
	if g.batcher.IsBatching() || g.flushing {
		return
	}
	g.Flush()
}

// maxFlushPasses bounds the flush loop so an effect that perpetually
// re-dirties itself fails loudly instead of hanging the caller.
const maxFlushPasses = 1e5

// Flush drains the update queue to fixpoint, marking transitive subscribers
// dirty without recomputing anything, then drains the effect queue in
// insertion order. Effects may write sources; those writes append to the
// same flush's queues and are drained in later passes, never recursively.
func (g *Graph) Flush() {
	if g.flushing || g.disposed {
		return
	}
	g.flushing = true
	defer func() { g.flushing = false }()

	passes := 0
	for g.updateQueue.Len() > 0 || g.effectQueue.Len() > 0 {
		passes++
		if passes > maxFlushPasses {
			panic(errors.New("reactive: possible infinite update loop detected"))
		}

		for g.updateQueue.Len() > 0 {
			for _, id := range g.updateQueue.Drain() {
				if c, ok := g.signals[id].(*Computed); ok {
					g.markSubscribers(c)
				}
			}
		}

		for _, id := range g.effectQueue.Drain() {
			e, ok := g.effects[id]
			if !ok || e.disposed || !e.dirty {
				continue
			}
			g.runEffect(e)
		}
	}

	recordFlush()
}

// markSubscribers propagates dirtiness one step: every not-yet-dirty
// subscriber of c is marked and queued. Values are not recomputed here;
// reads pull them lazily.
func (g *Graph) markSubscribers(c *Computed) {
	for _, id := range c.subs.Values() {
		if sc, ok := g.signals[id].(*Computed); ok {
			if !sc.dirty {
				sc.dirty = true
				g.updateQueue.Add(id)
			}
			continue
		}
		if e, ok := g.effects[id]; ok {
			if !e.dirty {
				e.dirty = true
				g.effectQueue.Add(id)
			}
		}
	}
}

// recompute re-evaluates a dirty computed: unsubscribe from the old
// dependency set, run the compute function under the tracker so reads
// re-capture edges, then commit. On failure the computed stays dirty and the
// panic propagates, so a later read retries.
func (g *Graph) recompute(c *Computed) {
	for _, id := range g.computeStack {
		if id == c.id {
			chain := append(append([]NodeID{}, g.computeStack...), c.id)
			recordCycle()
			panic(&CycleError{Chain: chain})
		}
	}

	for _, depID := range c.deps.Values() {
		if p, ok := g.signals[depID]; ok {
			p.subscribers().Remove(c.id)
		}
	}
	c.deps.Clear()

	g.computeStack = append(g.computeStack, c.id)
	defer func() {
		g.computeStack = g.computeStack[:len(g.computeStack)-1]
	}()

	var value any
	g.tracker.RunWithComputed(c, func() {
		value = c.compute()
	})

	c.value = value
	c.dirty = false
	recordRecompute()
}

// runEffect runs one effect: previous cleanup first (failures swallowed),
// then dependency re-capture under the tracker. A panicking effect is
// re-marked dirty so a later propagation retries.
func (g *Graph) runEffect(e *Effect) {
	if g.disposed {
		return
	}

	if e.cleanup != nil {
		cleanup := e.cleanup
		e.cleanup = nil
		g.runCleanup(e.id, cleanup)
	}

	for _, depID := range e.deps.Values() {
		if p, ok := g.signals[depID]; ok {
			p.subscribers().Remove(e.id)
		}
	}
	e.deps.Clear()
	e.dirty = false

	defer func() {
		if r := recover(); r != nil {
			e.dirty = true
			panic(r)
		}
	}()

	g.tracker.RunWithEffect(e, e.fn)
	recordEffectRun()
}

// runCleanup invokes a cleanup function, swallowing and logging any panic so
// the next run or disposal always proceeds.
func (g *Graph) runCleanup(id NodeID, cleanup func()) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("reactive: effect cleanup panicked",
				"node", int64(id),
				"panic", r,
			)
		}
	}()

	cleanup()
}

// Dispose tears the graph down: every effect's cleanup runs (failures
// swallowed), tables and queues clear, and the graph transitions to
// disposed. Idempotent and best-effort; it never panics. Afterwards node
// creation panics ErrGraphDisposed, writes mutate in place silently, and
// reads return stored or last-cached values.
func (g *Graph) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true

	for _, e := range g.effects {
		if e.cleanup != nil {
			cleanup := e.cleanup
			e.cleanup = nil
			g.runCleanup(e.id, cleanup)
		}
		e.disposed = true
	}

	clear(g.signals)
	clear(g.effects)
	g.updateQueue.Clear()
	g.effectQueue.Clear()
	g.computeStack = nil
}
