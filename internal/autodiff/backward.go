package autodiff

// Backward computes, for every node reachable from v, the exact partial
// derivative of v with respect to that node, accumulating into each node's
// gradient.
//
// Algorithm:
//  1. Seed the root gradient with 1 (dv/dv = 1).
//  2. Compute a reverse-topological order over the graph: every node is
//     placed after all nodes that list it as an operand.
//  3. Walk that order root-first, invoking each node's propagation rule
//     exactly once.
//
// A node reachable through multiple paths (a shared sub-expression) must
// end up with the sum of the contributions over all paths. That is only
// guaranteed if its own rule runs after every consumer has finished adding
// into its gradient, which is why a plain visited-set queue walk is not
// enough: a shared node can be dequeued while a later-discovered consumer
// has not propagated yet. The post-order traversal below emits a node only
// after everything reachable from it, so the reversed order satisfies the
// constraint.
//
// Gradients accumulate across calls: invoking Backward again without
// zeroing first adds on top of the previous pass. That is intentional for
// gradient accumulation, and a caller bug otherwise; the engine does not
// detect it.
func (v *Value) Backward() {
	order := topoOrder(v)

	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}
}

// topoOrder returns all nodes reachable from root in topological order,
// operands before consumers (the root is last). Revisits are suppressed by
// a visited set keyed on pointer identity; builders can only reference
// nodes created before them, so the graph is acyclic by construction.
func topoOrder(root *Value) []*Value {
	var order []*Value
	visited := make(map[*Value]bool)

	// Iterative post-order DFS: each node is pushed twice, once to expand
	// its operands and once, after they are all emitted, to emit itself.
	type frame struct {
		node     *Value
		expanded bool
	}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			order = append(order, top.node)
			continue
		}
		if visited[top.node] {
			continue
		}
		visited[top.node] = true

		stack = append(stack, frame{node: top.node, expanded: true})
		for _, p := range top.node.prev {
			if !visited[p] {
				stack = append(stack, frame{node: p})
			}
		}
	}

	return order
}
