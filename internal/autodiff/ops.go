package autodiff

// Operation tags the arithmetic that produced a node.
//
// The set is closed: propagation logic dispatches on the tag, so every rule
// is total and exhaustively checkable. Negation carries no tag of its own
// because it is built as multiplication by a constant -1 node.
type Operation uint8

const (
	// OpNone marks a leaf created directly from a number.
	OpNone Operation = iota
	// OpAdd marks a node built by Add.
	OpAdd
	// OpSub marks a node built by Sub.
	OpSub
	// OpMul marks a node built by Mul.
	OpMul
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	default:
		return "unknown"
	}
}

// Add builds the node u + v.
//
// Local derivatives: d(u+v)/du = 1, d(u+v)/dv = 1, so during Backward both
// operands receive the node's full gradient added to their own.
func Add(u, v *Value) *Value {
	return &Value{
		data: u.data + v.data,
		op:   OpAdd,
		prev: []*Value{u, v},
	}
}

// Mul builds the node u * v.
//
// Local derivatives (product rule): d(u·v)/du = v, d(u·v)/dv = u. The
// propagation rule reads the operands' forward values, never their
// gradients.
func Mul(u, v *Value) *Value {
	return &Value{
		data: u.data * v.data,
		op:   OpMul,
		prev: []*Value{u, v},
	}
}

// Neg builds the node -u as u * (-1), introducing the constant node into
// the graph.
func Neg(u *Value) *Value {
	return Mul(u, From(-1))
}

// Sub builds the node u - v.
//
// Local derivatives: d(u-v)/du = 1, d(u-v)/dv = -1. The gradient values are
// identical to the Add(u, Neg(v)) composition without its two extra
// intermediate nodes.
func Sub(u, v *Value) *Value {
	return &Value{
		data: u.data - v.data,
		op:   OpSub,
		prev: []*Value{u, v},
	}
}

// propagate distributes the node's accumulated gradient to its operands
// according to the local derivative of its operation. Leaves are sinks and
// contribute nothing further.
func (v *Value) propagate() {
	switch v.op {
	case OpNone:
	case OpAdd:
		v.prev[0].grad += v.grad
		v.prev[1].grad += v.grad
	case OpSub:
		v.prev[0].grad += v.grad
		v.prev[1].grad -= v.grad
	case OpMul:
		v.prev[0].grad += v.grad * v.prev[1].data
		v.prev[1].grad += v.grad * v.prev[0].data
	}
}
