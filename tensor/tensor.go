// Copyright 2025 The Regrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/regrad-ml/regrad/internal/autodiff"
	"github.com/regrad-ml/regrad/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is an ordered collection of shared autodiff values with a shape
// and row-major strides.
type Tensor = tensor.Tensor

// New creates a tensor over the given elements.
// Panics if the element count does not match the shape's product.
func New(data []*autodiff.Value, shape Shape) *Tensor {
	return tensor.New(data, shape)
}

// Zeros creates a tensor of fresh leaf values, all 0.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{2, 3})
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor of fresh leaf values, all 1.
//
// Example:
//
//	t := tensor.Ones(tensor.Shape{2, 3})
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}
