package tensor

import "fmt"

// Shape is the ordered list of dimension sizes of a tensor. An empty shape
// is a scalar.
type Shape []int

// NumElements returns the product of all dimensions (1 for a scalar).
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate returns an error if any dimension is not strictly positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("dimension %d is %d, must be positive", i, dim)
		}
	}
	return nil
}

// Equal reports whether both shapes have the same dimensions in the same
// order.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides derives row-major strides: the last dimension is
// contiguous (stride 1) and each earlier stride is the product of all
// later dimensions, so stepping one index along dimension i skips
// strides[i] elements.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s[i]
	}
	return strides
}
