package optim

import "github.com/regrad-ml/regrad/internal/tensor"

// SGD implements plain stochastic gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// which is exactly one Update(-lr) fan-out over each parameter tensor.
// Momentum is deliberately absent: a velocity buffer would need a raw
// value-write primitive the node API does not expose.
type SGD struct {
	params []*tensor.Tensor
	lr     float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer over the given parameter tensors.
func NewSGD(params []*tensor.Tensor, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step applies one gradient-descent update to all parameters.
func (s *SGD) Step() {
	for _, param := range s.params {
		param.Update(-s.lr)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
