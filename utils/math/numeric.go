// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import "golang.org/x/exp/constraints"

var _ Arithmetic[int] = NativeArithmetic[int]{}

// Number is any type that supports the native arithmetic operators.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic supplies the operations a moving average needs to combine values
// of type [T].
type Arithmetic[T any] interface {
	// InitialResult returns the value the sum of a window starts from.
	InitialResult() T

	// Sum returns [a] combined with [b].
	Sum(a, b T) T

	// DividedByNumberOfElements returns [a] divided by [numberOfElements].
	DividedByNumberOfElements(a T, numberOfElements int) T
}

// NativeArithmetic implements Arithmetic with Go's operators. Integer types
// truncate on division.
type NativeArithmetic[T Number] struct{}

func (NativeArithmetic[T]) InitialResult() T {
	var zero T
	return zero
}

func (NativeArithmetic[T]) Sum(a, b T) T {
	return a + b
}

func (NativeArithmetic[T]) DividedByNumberOfElements(a T, numberOfElements int) T {
	divisor := T(numberOfElements)
	if isFloat := T(1)/T(2) != 0; isFloat || int(divisor) == numberOfElements {
		return a / divisor
	}
	// [numberOfElements] overflows T, so T is narrower than int and [a] is
	// exactly representable as an int. The quotient is no larger than [a].
	return T(int(a) / numberOfElements)
}
