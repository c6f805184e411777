// Package tensor provides a multi-dimensional array wrapper over autodiff
// values.
//
// A Tensor is an ordered collection of shared *autodiff.Value handles with a
// declared shape and derived row-major strides. It owns no independent
// numeric storage: element-wise operations compose the scalar operation
// builders, so every result element is a genuine new graph node wired into
// the DAG of its source elements, and mutating an element's node is visible
// through every tensor or expression sharing that node.
package tensor

import (
	"fmt"

	"github.com/regrad-ml/regrad/internal/autodiff"
)

// Tensor is an ordered collection of autodiff values with a shape.
//
// Invariant: len(data) == size == product(shape), always.
type Tensor struct {
	data    []*autodiff.Value
	shape   Shape
	strides []int
	size    int
}

// New creates a tensor over the given elements.
// Panics if the element count does not match the shape's product.
func New(data []*autodiff.Value, shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: invalid shape %v: %v", shape, err))
	}
	size := shape.NumElements()
	if len(data) != size {
		panic(fmt.Sprintf("tensor: shape %v requires %d elements, but got %d", shape, size, len(data)))
	}
	return &Tensor{
		data:    data,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		size:    size,
	}
}

// Zeros creates a tensor of fresh leaf nodes, all with value 0.
func Zeros(shape Shape) *Tensor {
	return fill(shape, 0)
}

// Ones creates a tensor of fresh leaf nodes, all with value 1.
func Ones(shape Shape) *Tensor {
	return fill(shape, 1)
}

func fill(shape Shape, value float64) *Tensor {
	data := make([]*autodiff.Value, shape.NumElements())
	for i := range data {
		data[i] = autodiff.From(value)
	}
	return New(data, shape)
}

// Data returns the underlying elements. The slice is shared, not a copy.
func (t *Tensor) Data() []*autodiff.Value {
	return t.data
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major strides.
func (t *Tensor) Strides() []int {
	return t.strides
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	return t.size
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
//	v := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) *autodiff.Value {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}

	return t.data[offset]
}

// Reshape returns a view with the new shape and strides over the same
// elements. Panics unless the new shape's product equals the current size.
func (t *Tensor) Reshape(shape Shape) *Tensor {
	if shape.NumElements() != t.size {
		panic(fmt.Sprintf("tensor: cannot reshape %d elements to shape %v (%d elements)",
			t.size, shape, shape.NumElements()))
	}
	return New(t.data, shape)
}

// Add performs element-wise addition. Both tensors must have identical
// shapes; there is no broadcasting.
func (t *Tensor) Add(other *Tensor) *Tensor {
	t.requireSameShape("Add", other)
	data := make([]*autodiff.Value, t.size)
	for i := range data {
		data[i] = autodiff.Add(t.data[i], other.data[i])
	}
	return New(data, t.shape)
}

// Mul performs element-wise multiplication. Both tensors must have
// identical shapes; there is no broadcasting.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	t.requireSameShape("Mul", other)
	data := make([]*autodiff.Value, t.size)
	for i := range data {
		data[i] = autodiff.Mul(t.data[i], other.data[i])
	}
	return New(data, t.shape)
}

// Sub performs element-wise subtraction. Both tensors must have identical
// shapes; there is no broadcasting.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	t.requireSameShape("Sub", other)
	data := make([]*autodiff.Value, t.size)
	for i := range data {
		data[i] = autodiff.Sub(t.data[i], other.data[i])
	}
	return New(data, t.shape)
}

// MulValue multiplies every element by a single scalar node.
//
// The scalar is broadcast by building a same-shaped tensor whose elements
// all share the one node handle, then delegating to Mul, so every product
// in the result is wired to the same scalar node and its gradient sums the
// contributions from all elements.
func (t *Tensor) MulValue(v *autodiff.Value) *Tensor {
	data := make([]*autodiff.Value, t.size)
	for i := range data {
		data[i] = v
	}
	return t.Mul(New(data, t.shape))
}

// Neg negates every element, multiplying the tensor by a constant -1 node.
func (t *Tensor) Neg() *Tensor {
	return t.MulValue(autodiff.From(-1))
}

// Gradient returns a same-shaped tensor of fresh leaf nodes carrying each
// element's current gradient. It is a snapshot, not a live view.
func (t *Tensor) Gradient() *Tensor {
	data := make([]*autodiff.Value, t.size)
	for i, v := range t.data {
		data[i] = autodiff.From(v.Gradient())
	}
	return New(data, t.shape)
}

// ZeroGrad resets the gradient of every element.
func (t *Tensor) ZeroGrad() {
	for _, v := range t.data {
		v.ZeroGrad()
	}
}

// Update applies one gradient-descent step to every element:
// data += factor * gradient.
func (t *Tensor) Update(factor float64) {
	for _, v := range t.data {
		v.Update(factor)
	}
}

// Backward is not implemented: differentiating a multi-element tensor
// requires reducing it to a scalar root, and this core defines no
// reduction operation. Call Backward on a scalar Value instead.
func (t *Tensor) Backward() {
	panic("tensor: Backward is not implemented: reducing a tensor to a scalar root requires a reduction operation")
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v (%d elements)", t.shape, t.size)
}

func (t *Tensor) requireSameShape(op string, other *Tensor) {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("tensor: %s requires identical shapes, got %v and %v", op, t.shape, other.shape))
	}
}
