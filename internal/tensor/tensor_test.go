package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regrad-ml/regrad/internal/autodiff"
)

// fromSlice builds a tensor of fresh leaves over raw numbers.
func fromSlice(data []float64, shape Shape) *Tensor {
	values := make([]*autodiff.Value, len(data))
	for i, d := range data {
		values[i] = autodiff.From(d)
	}
	return New(values, shape)
}

// dataOf extracts the forward values of a tensor's elements.
func dataOf(t *Tensor) []float64 {
	out := make([]float64, t.Size())
	for i, v := range t.Data() {
		out[i] = v.Data()
	}
	return out
}

func TestNew_SizeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		fromSlice([]float64{1, 2, 3}, Shape{2, 2})
	})
}

func TestNew_InvalidShapePanics(t *testing.T) {
	assert.Panics(t, func() {
		fromSlice(nil, Shape{0, 2})
	})
}

func TestZerosOnes(t *testing.T) {
	z := Zeros(Shape{2, 3})
	require.Equal(t, 6, z.Size())
	for _, v := range z.Data() {
		assert.Equal(t, 0.0, v.Data())
		assert.Equal(t, 0.0, v.Gradient())
	}

	o := Ones(Shape{2, 3})
	for _, v := range o.Data() {
		assert.Equal(t, 1.0, v.Data())
		assert.Equal(t, 0.0, v.Gradient())
	}
}

func TestAdd(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})
	t2 := fromSlice([]float64{3, 4}, Shape{2})

	t3 := t1.Add(t2)

	assert.Equal(t, []float64{4, 6}, dataOf(t3))
}

func TestMul(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})
	t2 := fromSlice([]float64{3, 4}, Shape{2})

	t3 := t1.Mul(t2)

	assert.Equal(t, []float64{3, 8}, dataOf(t3))
}

func TestMulValue(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})

	t2 := t1.MulValue(autodiff.From(3))

	assert.Equal(t, []float64{3, 6}, dataOf(t2))
}

func TestNeg(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})

	t2 := t1.Neg()

	assert.Equal(t, []float64{-1, -2}, dataOf(t2))
}

func TestSub(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})
	t2 := fromSlice([]float64{3, 4}, Shape{2})

	t3 := t1.Sub(t2)

	assert.Equal(t, []float64{-2, -2}, dataOf(t3))
}

func TestElementwise_ShapeMismatchPanics(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})
	t2 := fromSlice([]float64{1, 2, 3}, Shape{3})

	assert.Panics(t, func() { t1.Add(t2) })
	assert.Panics(t, func() { t1.Mul(t2) })
	assert.Panics(t, func() { t1.Sub(t2) })

	// Same size, different shape: still a mismatch, no broadcasting.
	t4 := fromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	t5 := fromSlice([]float64{1, 2, 3, 4}, Shape{4})
	assert.Panics(t, func() { t4.Add(t5) })
}

func TestElementwise_WiresGraph(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})
	t2 := fromSlice([]float64{3, 4}, Shape{2})

	t3 := t1.Mul(t2)

	// Each result element is a genuine new node over the source elements.
	e := t3.Data()[1]
	require.Equal(t, autodiff.OpMul, e.Op())
	assert.Same(t, t1.Data()[1], e.Operands()[0])
	assert.Same(t, t2.Data()[1], e.Operands()[1])

	e.Backward()
	assert.Equal(t, 4.0, t1.Data()[1].Gradient())
	assert.Equal(t, 2.0, t2.Data()[1].Gradient())
}

func TestMulValue_SharesOneNode(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})
	s := autodiff.From(3)

	t2 := t1.MulValue(s)

	// Both products reference the same scalar node, so its gradient sums
	// the contributions from every element.
	root := autodiff.Add(t2.Data()[0], t2.Data()[1])
	root.Backward()

	// d(1·s + 2·s)/ds = 3
	assert.Equal(t, 3.0, s.Gradient())
}

func TestReshape(t *testing.T) {
	t1 := fromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	t2 := t1.Reshape(Shape{3, 2})

	assert.Equal(t, Shape{3, 2}, t2.Shape())
	assert.Equal(t, []int{2, 1}, t2.Strides())
	assert.Equal(t, 6, t2.Size())

	// View semantics: same elements, and the original is untouched.
	assert.Same(t, t1.Data()[0], t2.Data()[0])
	assert.Equal(t, Shape{2, 3}, t1.Shape())
}

func TestReshape_IncompatibleSizePanics(t *testing.T) {
	t1 := fromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})

	assert.Panics(t, func() { t1.Reshape(Shape{3, 2}) })
	assert.Panics(t, func() { t1.Reshape(Shape{5}) })
}

func TestAt(t *testing.T) {
	t1 := fromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	assert.Equal(t, 1.0, t1.At(0, 0).Data())
	assert.Equal(t, 6.0, t1.At(1, 2).Data())
	assert.Equal(t, 4.0, t1.At(1, 0).Data())

	assert.Panics(t, func() { t1.At(2, 0) })
	assert.Panics(t, func() { t1.At(0) })
}

func TestGradient_Snapshot(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})
	t2 := fromSlice([]float64{3, 4}, Shape{2})
	t3 := t1.Mul(t2)

	t3.Data()[0].Backward()
	t3.Data()[1].Backward()

	g := t1.Gradient()
	assert.Equal(t, Shape{2}, g.Shape())
	assert.Equal(t, []float64{3, 4}, dataOf(g))

	// Snapshot, not a live view: later changes don't show up.
	t1.ZeroGrad()
	assert.Equal(t, []float64{3, 4}, dataOf(g))
}

func TestZeroGradUpdate_FanOut(t *testing.T) {
	t1 := fromSlice([]float64{1, 2}, Shape{2})
	t2 := fromSlice([]float64{3, 4}, Shape{2})
	t3 := t1.Mul(t2)

	t3.Data()[0].Backward()
	t3.Data()[1].Backward()

	t1.Update(-0.5) // data -= 0.5 * grad, grads are [3, 4]
	assert.Equal(t, []float64{1 - 1.5, 2 - 2}, dataOf(t1))

	t1.ZeroGrad()
	for _, v := range t1.Data() {
		assert.Equal(t, 0.0, v.Gradient())
	}
}

func TestSharedNodes_AcrossTensors(t *testing.T) {
	// A node shared between two tensors is one node: updating it through
	// one holder is visible through the other.
	shared := autodiff.From(2)
	t1 := New([]*autodiff.Value{shared, autodiff.From(1)}, Shape{2})
	t2 := New([]*autodiff.Value{shared, autodiff.From(5)}, Shape{2})

	y := autodiff.Mul(shared, shared)
	y.Backward()
	t1.Update(-1) // shared: 2 - 1·4 = -2

	assert.Equal(t, -2.0, t2.Data()[0].Data())
}

func TestBackward_Unimplemented(t *testing.T) {
	t1 := Ones(Shape{2})

	assert.PanicsWithValue(t,
		"tensor: Backward is not implemented: reducing a tensor to a scalar root requires a reduction operation",
		func() { t1.Backward() })
}
