// Package depgraph validates that a task dependency relation forms a DAG:
// no self-loops, no cycles, no references to undefined tasks (the last of
// those is checked by the caller before this package ever sees the graph,
// since by then dependency names are already resolved to indices).
//
// Cycle detection reuses gonum's directed graph and topological sort
// rather than hand-rolling a DFS with an explicit recursion stack.
package depgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// cycleError is the error ValidateDAG wraps when the dependency relation
// contains a cycle or a self-loop.
type cycleError struct {
	members []int
}

func (e cycleError) Error() string {
	return fmt.Sprintf("depgraph: dependency cycle involving %d task(s)", len(e.members))
}

// ValidateDAG checks that the dependency relation over n tasks (task i
// depends on the tasks named by depsOf(i)) is acyclic. depsOf must return
// already-resolved indices in [0, n).
func ValidateDAG(n int, depsOf func(i int) []int) error {
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for _, dep := range depsOf(i) {
			if dep == i {
				return fmt.Errorf("depgraph: %w", cycleError{members: []int{i}})
			}
			// An edge from the dependency to the dependent: the dependency
			// must be scheduled (topologically) before the task that needs it.
			g.SetEdge(simple.Edge{F: simple.Node(dep), T: simple.Node(i)})
		}
	}

	if _, err := topo.Sort(g); err != nil {
		unordered, ok := err.(topo.Unorderable)
		if !ok {
			return fmt.Errorf("depgraph: %w", err)
		}
		members := nodeIDs(unordered[0])
		return fmt.Errorf("depgraph: %w", cycleError{members: members})
	}
	return nil
}

func nodeIDs(nodes []graph.Node) []int {
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = int(n.ID())
	}
	return ids
}
