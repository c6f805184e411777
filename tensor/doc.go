// Copyright 2025 The Regrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides multi-dimensional arrays of differentiable scalar
// values.
//
// # Overview
//
// A Tensor wraps an ordered collection of shared autodiff values with a
// declared shape and derived row-major strides. Element-wise operations
// compose the scalar operation builders, so tensor arithmetic extends the
// same computation graph the scalar engine differentiates.
//
// # Basic Usage
//
//	import (
//	    "github.com/regrad-ml/regrad/autodiff"
//	    "github.com/regrad-ml/regrad/tensor"
//	)
//
//	func main() {
//	    x := tensor.New([]*autodiff.Value{
//	        autodiff.From(1), autodiff.From(2),
//	    }, tensor.Shape{2})
//	    y := tensor.New([]*autodiff.Value{
//	        autodiff.From(3), autodiff.From(4),
//	    }, tensor.Shape{2})
//
//	    z := x.Add(y)                      // [4, 6]
//	    s := x.MulValue(autodiff.From(3))  // [3, 6]
//	}
//
// # Shapes
//
// Element-wise operations require identical shapes; there is no
// broadcasting between mismatched shapes. Reshape returns a view over the
// same elements and requires the new shape's product to equal the current
// size. Violations panic with a diagnostic naming the offending shapes.
//
// # Gradients
//
// ZeroGrad and Update fan out to every element. Gradient returns a
// same-shaped snapshot of the current element gradients. Backward is
// deliberately unimplemented at the tensor level: reducing a multi-element
// tensor to a scalar root requires a reduction operation this core does
// not define, so differentiation is rooted at scalar values.
package tensor
