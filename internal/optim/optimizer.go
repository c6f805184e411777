// Package optim implements gradient-descent parameter updates over tensors.
//
// Example usage:
//
//	w := tensor.Ones(tensor.Shape{2})
//	optimizer := optim.NewSGD([]*tensor.Tensor{w}, optim.SGDConfig{LR: 0.01})
//
//	for range steps {
//	    loss := forward(w)
//	    loss.Backward()
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

// Optimizer is the base interface for parameter-update algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using the gradients
	// accumulated by the most recent Backward pass.
	Step()

	// ZeroGrad clears every parameter's gradients.
	//
	// Call before the next backward pass, otherwise gradients accumulate
	// across iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for optimizers.
type Config struct {
	LR float64 // Learning rate
}
