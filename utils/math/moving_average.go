// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"errors"
	"fmt"
)

var (
	_ MovingAverage[int] = (*movingAverage[int])(nil)

	// ErrNotFound is returned when a position or window refers to elements
	// that were never added.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedOperation is returned when averaging a moving average
	// that has no elements.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// MovingAverage accumulates values and reports the mean of the most recently
// added ones.
//
// A MovingAverage is not safe for concurrent use. See NewSyncMovingAverage.
type MovingAverage[T any] interface {
	// Add appends [element] as the newest element.
	Add(element T)

	// Size returns the number of elements held.
	Size() int

	// Get returns the element at the 1-based [position], in arrival order.
	Get(position int) (T, error)

	// Average returns the mean of the newest [lastN] elements.
	Average(lastN int) (T, error)
}

type movingAverage[T any] struct {
	ops     Arithmetic[T]
	history History[T]
}

// NewMovingAverage returns a MovingAverage over a native numeric type that
// keeps every element it is given.
func NewMovingAverage[T Number]() MovingAverage[T] {
	return New[T](NativeArithmetic[T]{}, NewHistory[T]())
}

// New returns a MovingAverage that combines elements with [ops] and stores them
// in [history].
func New[T any](ops Arithmetic[T], history History[T]) MovingAverage[T] {
	return &movingAverage[T]{
		ops:     ops,
		history: history,
	}
}

func (m *movingAverage[T]) Add(element T) {
	m.history.Append(element)
}

func (m *movingAverage[T]) Size() int {
	return m.history.Len()
}

func (m *movingAverage[T]) Get(position int) (T, error) {
	size := m.history.Len()
	if position < 1 || position > size {
		var zero T
		return zero, fmt.Errorf("%w: position %d with %d elements", ErrNotFound, position, size)
	}
	return m.history.Element(position - 1), nil
}

func (m *movingAverage[T]) Average(lastN int) (T, error) {
	var zero T
	size := m.history.Len()
	switch {
	case size == 0:
		return zero, fmt.Errorf("%w: average of the last %d elements with no elements", ErrUnsupportedOperation, lastN)
	case lastN > size:
		return zero, fmt.Errorf("%w: average of the last %d elements with %d elements", ErrNotFound, lastN, size)
	case lastN < 1:
		return zero, fmt.Errorf("%w: average of the last %d elements", ErrNotFound, lastN)
	case lastN == 1:
		return m.history.Element(size - 1), nil
	}

	result := m.ops.InitialResult()
	for i := size - lastN; i < size; i++ {
		result = m.ops.Sum(result, m.history.Element(i))
	}
	return m.ops.DividedByNumberOfElements(result, lastN), nil
}
