// Copyright 2025 The Regrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Arithmetic on values builds a computation graph; Backward on a value then
// populates the gradient of every value that contributed to it.
//
// Example:
//
//	import "github.com/regrad-ml/regrad/autodiff"
//
//	func main() {
//	    a := autodiff.From(1.2)
//	    b := autodiff.From(3.4)
//	    c := autodiff.Mul(autodiff.Mul(a, a), b)
//
//	    c.Backward()
//	    fmt.Println(a.Gradient()) // 8.16
//	}
package autodiff

import "github.com/regrad-ml/regrad/internal/autodiff"

// Value is a scalar tracked for differentiation, with its own gradient
// accumulator.
type Value = autodiff.Value

// Operation tags the arithmetic that produced a value.
type Operation = autodiff.Operation

// Operation constants.
const (
	OpNone Operation = autodiff.OpNone
	OpAdd  Operation = autodiff.OpAdd
	OpSub  Operation = autodiff.OpSub
	OpMul  Operation = autodiff.OpMul
)

// From creates a leaf value from a raw number.
func From(data float64) *Value {
	return autodiff.From(data)
}

// Add builds the value u + v.
func Add(u, v *Value) *Value {
	return autodiff.Add(u, v)
}

// Mul builds the value u * v.
func Mul(u, v *Value) *Value {
	return autodiff.Mul(u, v)
}

// Neg builds the value -u.
func Neg(u *Value) *Value {
	return autodiff.Neg(u)
}

// Sub builds the value u - v.
func Sub(u, v *Value) *Value {
	return autodiff.Sub(u, v)
}
