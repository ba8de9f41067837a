package reactive

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffect(t *testing.T) {
	t.Run("runs on signal change with cleanup", func(t *testing.T) {
		g := New()
		log := []string{}

		count := NewSignal(g, 0)
		log = append(log, fmt.Sprintf("%d", count.Read()))

		NewEffect(g, func() {
			log = append(log, fmt.Sprintf("changed %d", count.Read()))

			g.OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Write(10)
		log = append(log, fmt.Sprintf("%d", count.Read()))
		count.Write(20)

		assert.Equal(t, []string{
			"0",
			"changed 0",
			"cleanup",
			"changed 10",
			"10",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("writes to another signal", func(t *testing.T) {
		g := New()
		log := []string{}

		count := NewSignal(g, 0)
		double := NewSignal(g, 0)

		NewEffect(g, func() {
			double.Write(count.Read() * 2)
		})

		NewEffect(g, func() {
			log = append(log, fmt.Sprintf("changed %d", double.Read()))

			g.OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Write(10)

		assert.Equal(t, []string{
			"changed 0",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("cleanup sees fresh values", func(t *testing.T) {
		g := New()
		log := []string{}

		count := NewSignal(g, 0)
		double := NewComputed(g, func() int { return count.Read() * 2 })

		NewEffect(g, func() {
			log = append(log, fmt.Sprintf("running %d", double.Read()))

			g.OnCleanup(func() {
				log = append(log, fmt.Sprintf("cleanup %d", double.Read()))
			})
		})

		count.Write(10)

		assert.Equal(t, []string{
			"running 0",
			"cleanup 20",
			"running 20",
		}, log)
	})

	t.Run("dispose runs cleanup and stops re-runs", func(t *testing.T) {
		g := New()
		log := []string{}

		count := NewSignal(g, 0)

		e := NewEffect(g, func() {
			log = append(log, fmt.Sprintf("run %d", count.Read()))

			g.OnCleanup(func() {
				log = append(log, "cleanup")
			})
		})

		count.Write(1)
		e.Dispose()
		assert.True(t, e.IsDisposed())
		assert.Equal(t, 0, count.SubscriberCount())

		count.Write(2)
		e.Dispose() // idempotent

		assert.Equal(t, []string{
			"run 0",
			"cleanup",
			"run 1",
			"cleanup",
		}, log)
	})

	t.Run("retries after a failing run", func(t *testing.T) {
		g := New()

		count := NewSignal(g, 0)

		runs := 0
		e := NewEffect(g, func() {
			runs++
			if count.Read() == 1 {
				panic("boom")
			}
		})
		assert.Equal(t, 1, runs)

		assert.PanicsWithValue(t, "boom", func() { count.Write(1) })
		assert.Equal(t, 2, runs)
		assert.True(t, e.IsDirty())

		count.Write(2)
		assert.Equal(t, 3, runs)
		assert.False(t, e.IsDirty())
	})

	t.Run("runs once per flush with several dirty deps", func(t *testing.T) {
		g := New()

		a := NewSignal(g, 1)
		b := NewSignal(g, 2)

		runs := 0
		NewEffect(g, func() {
			runs++
			a.Read()
			b.Read()
		})

		g.Batch(func() {
			a.Write(10)
			b.Write(20)
		})
		assert.Equal(t, 2, runs)
	})

	t.Run("effects run in creation order", func(t *testing.T) {
		g := New()
		log := []string{}

		count := NewSignal(g, 0)

		NewEffect(g, func() {
			count.Read()
			log = append(log, "first")
		})
		NewEffect(g, func() {
			count.Read()
			log = append(log, "second")
		})

		count.Write(1)

		assert.Equal(t, []string{
			"first",
			"second",
			"first",
			"second",
		}, log)
	})

	t.Run("an effect may dispose a queued sibling", func(t *testing.T) {
		g := New()
		log := []string{}

		count := NewSignal(g, 0)

		var victim *Effect
		NewEffect(g, func() {
			count.Read()
			log = append(log, "killer")
			if victim != nil {
				victim.Dispose()
			}
		})
		victim = NewEffect(g, func() {
			count.Read()
			log = append(log, "victim")
		})

		count.Write(1)

		assert.Equal(t, []string{
			"killer",
			"victim",
			"killer",
		}, log)
	})

	t.Run("nested effect creation is legal", func(t *testing.T) {
		g := New()
		log := []string{}

		count := NewSignal(g, 0)

		NewEffect(g, func() {
			count.Read()
			log = append(log, "outer")

			NewEffect(g, func() {
				log = append(log, "inner")
			})
		})

		count.Write(1)

		assert.Equal(t, []string{
			"outer",
			"inner",
			"outer",
			"inner",
		}, log)
	})

	t.Run("cleanup failure is swallowed", func(t *testing.T) {
		g := New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

		count := NewSignal(g, 0)

		runs := 0
		NewEffect(g, func() {
			runs++
			count.Read()

			g.OnCleanup(func() {
				panic("cleanup boom")
			})
		})

		count.Write(1)
		assert.Equal(t, 2, runs)
	})

	t.Run("last cleanup registration wins", func(t *testing.T) {
		g := New()
		log := []string{}

		count := NewSignal(g, 0)

		NewEffect(g, func() {
			count.Read()

			g.OnCleanup(func() { log = append(log, "first") })
			g.OnCleanup(func() { log = append(log, "second") })
		})

		count.Write(1)
		assert.Equal(t, []string{"second"}, log)
	})

	t.Run("OnCleanup outside an effect is a no-op", func(t *testing.T) {
		g := New()

		called := false
		g.OnCleanup(func() { called = true })

		g.Dispose()
		assert.False(t, called)
	})
}
