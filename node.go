package reactive

import "github.com/statekit/reactive/internal"

// Node is any reactive node handle: a signal, a computed or an effect.
type Node interface {
	Context() Graph

	nodeID() internal.NodeID
}

func (s *Signal[T]) nodeID() internal.NodeID { return s.s.ID() }
func (c *Computed[T]) nodeID() internal.NodeID { return c.c.ID() }
func (e *Effect) nodeID() internal.NodeID { return e.e.ID() }

// DependencyTree renders the transitive dependencies of n as a drawn tree,
// rooted at n. Dirty computeds are marked; shared dependencies appear once.
func DependencyTree(n Node) string {
	return n.Context().g.TreeString(n.nodeID())
}
