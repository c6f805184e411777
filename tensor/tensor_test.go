// Copyright 2025 The Regrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regrad-ml/regrad/autodiff"
	"github.com/regrad-ml/regrad/tensor"
)

// TestPublicAPI_EndToEnd drives the reference scenario through the public
// packages only.
func TestPublicAPI_EndToEnd(t *testing.T) {
	a := autodiff.From(1.2)
	b := autodiff.From(3.4)
	c := autodiff.Mul(autodiff.Mul(a, a), b)

	require.Equal(t, 4.896, c.Data())

	c.Backward()

	assert.Equal(t, 8.16, a.Gradient())
	assert.Equal(t, 1.44, b.Gradient())
	assert.Equal(t, 1.0, c.Gradient())
}

// TestPublicAPI_TensorOps tests element-wise arithmetic through the facade.
func TestPublicAPI_TensorOps(t *testing.T) {
	t1 := tensor.New([]*autodiff.Value{autodiff.From(1), autodiff.From(2)}, tensor.Shape{2})
	t2 := tensor.New([]*autodiff.Value{autodiff.From(3), autodiff.From(4)}, tensor.Shape{2})

	sum := t1.Add(t2)
	assert.Equal(t, 4.0, sum.At(0).Data())
	assert.Equal(t, 6.0, sum.At(1).Data())

	prod := t1.Mul(t2)
	assert.Equal(t, 3.0, prod.At(0).Data())
	assert.Equal(t, 8.0, prod.At(1).Data())

	z := tensor.Zeros(tensor.Shape{2, 2})
	assert.Equal(t, 4, z.Size())

	o := tensor.Ones(tensor.Shape{3})
	assert.Equal(t, 1.0, o.At(1).Data())
}
