package internal

// Tracker holds the graph's dynamically-scoped consumer state: the effect
// currently running, the computed currently recomputing, and whether reads
// capture dependencies. Restoration happens in defers so user callbacks that
// panic cannot leave stale state behind.
type Tracker struct {
	tracking bool

	currentEffect   *Effect   // for effect dependency capture and OnCleanup
	currentComputed *Computed // for computed dependency capture
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

func (t *Tracker) IsTracking() bool {
	return t.tracking
}

func (t *Tracker) CurrentEffect() *Effect {
	return t.currentEffect
}

func (t *Tracker) CurrentComputed() *Computed {
	return t.currentComputed
}

// RunWithComputed installs c as the current computed for the duration of fn.
// Tracking is forced on so a recompute triggered inside Untrack still
// captures its own dependencies.
func (t *Tracker) RunWithComputed(c *Computed, fn func()) {
	prevComputed := t.currentComputed
	prevTracking := t.tracking

	t.currentComputed = c
	t.tracking = true

	defer func() {
		t.currentComputed = prevComputed
		t.tracking = prevTracking
	}()

	fn()
}

// RunWithEffect installs e as the current effect for the duration of fn. The
// current computed is cleared: an effect body's reads belong to the effect,
// not to whatever computed happened to trigger it.
func (t *Tracker) RunWithEffect(e *Effect, fn func()) {
	prevEffect := t.currentEffect
	prevComputed := t.currentComputed

	t.currentEffect = e
	t.currentComputed = nil

	defer func() {
		t.currentEffect = prevEffect
		t.currentComputed = prevComputed
	}()

	fn()
}

// RunUntracked disables dependency capture for the duration of fn. Re-entrant.
func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false

	defer func() { t.tracking = prev }()

	fn()
}
