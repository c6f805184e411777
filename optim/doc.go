// Copyright 2025 The Regrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim implements gradient-descent parameter updates.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: plain stochastic gradient descent
//
// Example usage:
//
//	w := tensor.Ones(tensor.Shape{2})
//	optimizer := optim.NewSGD([]*tensor.Tensor{w}, optim.SGDConfig{LR: 0.01})
//
//	for range steps {
//	    loss := forward(w)    // a scalar autodiff.Value
//	    loss.Backward()
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim
