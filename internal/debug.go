package internal

import (
	"fmt"

	"github.com/m1gwings/treedrawer/tree"
)

// TreeString renders the transitive dependencies of a node as a drawn tree,
// rooted at the node itself. Shared dependencies appear once; cycles are cut
// by the visited set.
func (g *Graph) TreeString(id NodeID) string {
	visited := make(map[NodeID]bool)
	visited[id] = true

	root := tree.NewTree(tree.NodeString(g.nodeLabel(id)))
	for _, depID := range g.nodeDeps(id) {
		g.addSubtree(root, depID, visited)
	}

	return root.String()
}

func (g *Graph) addSubtree(parent *tree.Tree, id NodeID, visited map[NodeID]bool) {
	if visited[id] {
		return
	}
	visited[id] = true

	child := parent.AddChild(tree.NodeString(g.nodeLabel(id)))
	for _, depID := range g.nodeDeps(id) {
		g.addSubtree(child, depID, visited)
	}
}

func (g *Graph) nodeLabel(id NodeID) string {
	switch n := g.signals[id].(type) {
	case *Source:
		return fmt.Sprintf("source#%d", n.id)
	case *Computed:
		if n.dirty {
			return fmt.Sprintf("computed#%d (dirty)", n.id)
		}
		return fmt.Sprintf("computed#%d", n.id)
	}

	if _, ok := g.effects[id]; ok {
		return fmt.Sprintf("effect#%d", id)
	}
	return fmt.Sprintf("node#%d", id)
}

func (g *Graph) nodeDeps(id NodeID) []NodeID {
	if c, ok := g.signals[id].(*Computed); ok {
		return c.deps.Values()
	}
	if e, ok := g.effects[id]; ok {
		return e.deps.Values()
	}
	return nil
}
