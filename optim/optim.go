// Copyright 2025 The Regrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/regrad-ml/regrad/internal/optim"
	"github.com/regrad-ml/regrad/tensor"
)

// Optimizer is the base interface for parameter-update algorithms.
type Optimizer = optim.Optimizer

// SGD is the stochastic gradient descent optimizer.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameter tensors.
//
// Example:
//
//	sgd := optim.NewSGD(params, optim.SGDConfig{LR: 0.01})
func NewSGD(params []*tensor.Tensor, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
