// Package autodiff implements reverse-mode automatic differentiation over
// scalar computation nodes.
//
// Every arithmetic operation builds a node in a directed acyclic graph as it
// is performed. Calling Backward on a node then computes the exact partial
// derivative of that node with respect to every node that contributed to it,
// accumulating contributions across all paths.
//
// Architecture:
//   - Value: a scalar with its own gradient accumulator and, if produced by
//     an operation, references to its operands
//   - Builders (Add, Mul, Neg, Sub): pure functions that wire new nodes into
//     the graph of their inputs
//   - Backward: seeds the root gradient with 1 and propagates local
//     derivatives in reverse-topological order
//
// Usage:
//
//	a := autodiff.From(1.2)
//	b := autodiff.From(3.4)
//	c := autodiff.Mul(autodiff.Mul(a, a), b) // c = a²·b
//
//	c.Backward()
//	fmt.Println(a.Gradient()) // dc/da = 2ab = 8.16
package autodiff

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"math"
)

// Value is a scalar tracked for differentiation.
//
// A Value is shared by every node that uses it as an operand: the graph is a
// shared-ownership structure, not a tree. Mutating a node's gradient through
// one consumer is visible through every other consumer holding the same
// pointer, which is exactly what gradient summation across diamond-shaped
// graphs requires.
//
// A Value is never mutated after construction except for gradient
// accumulation during Backward, an explicit ZeroGrad, and an explicit
// Update.
type Value struct {
	data  float64
	grad  float64
	label string
	op    Operation
	prev  []*Value // nil for leaves, exactly 2 for binary ops, left-to-right
}

// From creates a leaf node from a raw number.
// The leaf has zero gradient, no operation and no operands.
func From(data float64) *Value {
	return &Value{data: data, op: OpNone}
}

// Data returns the node's current value.
func (v *Value) Data() float64 {
	return v.data
}

// Gradient returns the node's accumulated gradient.
func (v *Value) Gradient() float64 {
	return v.grad
}

// Label returns the node's optional debug label.
func (v *Value) Label() string {
	return v.label
}

// WithLabel attaches a debug label and returns the node for chaining.
func (v *Value) WithLabel(label string) *Value {
	v.label = label
	return v
}

// Op returns the operation that produced this node (OpNone for leaves).
func (v *Value) Op() Operation {
	return v.op
}

// Operands returns the nodes this one was built from, in left-to-right
// order. The returned slice is shared; callers must not modify it.
func (v *Value) Operands() []*Value {
	return v.prev
}

// ZeroGrad resets this node's gradient to zero.
//
// It does not recurse into operands: callers must zero every node they care
// about individually, or go through the tensor wrapper which fans out over
// all of its elements. Required before reusing the same leaves for a second
// forward/backward pass, otherwise Backward accumulates on top of the stale
// gradients.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Update applies one gradient-descent step to the node's value:
//
//	data += factor * gradient
//
// The gradient itself is left untouched.
func (v *Value) Update(factor float64) {
	v.data += factor * v.grad
}

// Equal reports structural equality: two nodes are equal when their value,
// gradient, label, operation and operands (recursively) all match. Float
// comparison is bit-exact.
func (v *Value) Equal(other *Value) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	if math.Float64bits(v.data) != math.Float64bits(other.data) ||
		math.Float64bits(v.grad) != math.Float64bits(other.grad) ||
		v.label != other.label ||
		v.op != other.op ||
		len(v.prev) != len(other.prev) {
		return false
	}
	for i := range v.prev {
		if !v.prev[i].Equal(other.prev[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal: equal nodes hash
// identically. Floats are hashed by their bit patterns.
func (v *Value) Hash() uint64 {
	h := fnv.New64a()
	v.hashInto(h)
	return h.Sum64()
}

func (v *Value) hashInto(h hash.Hash) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.data))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.grad))
	h.Write(buf[:])
	h.Write([]byte(v.label))
	binary.LittleEndian.PutUint64(buf[:], uint64(v.op))
	h.Write(buf[:])
	for _, p := range v.prev {
		p.hashInto(h)
	}
}

// String returns a human-readable representation of the node.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(%s: data=%v, grad=%v, op=%s)", v.label, v.data, v.grad, v.op)
	}
	return fmt.Sprintf("Value(data=%v, grad=%v, op=%s)", v.data, v.grad, v.op)
}
