package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func catchPanic(fn func()) (recovered any) {
	defer func() { recovered = recover() }()
	fn()
	return nil
}

func TestCycleDetection(t *testing.T) {
	t.Run("mutual recursion", func(t *testing.T) {
		g := New()

		var x, y *Computed[int]
		x = NewComputed(g, func() int { return y.Read() + 1 })
		y = NewComputed(g, func() int { return x.Read() + 1 })

		r := catchPanic(func() { x.Read() })

		err, ok := r.(*CycleError)
		assert.True(t, ok, "expected *CycleError, got %v", r)
		assert.GreaterOrEqual(t, len(err.Chain), 3)
		assert.Equal(t, err.Chain[0], err.Chain[len(err.Chain)-1])
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("self reference", func(t *testing.T) {
		g := New()

		var c *Computed[int]
		c = NewComputed(g, func() int { return c.Read() + 1 })

		r := catchPanic(func() { c.Read() })

		err, ok := r.(*CycleError)
		assert.True(t, ok, "expected *CycleError, got %v", r)
		assert.Len(t, err.Chain, 2)
	})

	t.Run("rest of the graph stays usable", func(t *testing.T) {
		g := New()

		var c *Computed[int]
		c = NewComputed(g, func() int { return c.Read() })
		assert.NotNil(t, catchPanic(func() { c.Read() }))

		count := NewSignal(g, 1)
		double := NewComputed(g, func() int { return count.Read() * 2 })

		assert.Equal(t, 2, double.Read())
		count.Write(5)
		assert.Equal(t, 10, double.Read())
	})
}
