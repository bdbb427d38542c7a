// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"errors"
	"fmt"
	"slices"
)

var (
	_ History[int] = (*history[int])(nil)
	_ History[int] = (*ringHistory[int])(nil)

	errNonPositiveCapacity = errors.New("capacity must be positive")
)

// History stores the elements of a moving average in arrival order.
type History[T any] interface {
	// Append adds [element] as the newest element.
	Append(element T)

	// Len returns the number of retained elements.
	Len() int

	// Element returns the element at [index], where 0 is the oldest retained
	// element. [index] must be in [0, Len()).
	Element(index int) T

	// Elements returns a copy of the retained elements, oldest first.
	Elements() []T
}

type history[T any] struct {
	elements []T
}

// NewHistory returns a History that retains every element it is given.
func NewHistory[T any]() History[T] {
	return &history[T]{}
}

func (h *history[T]) Append(element T) {
	h.elements = append(h.elements, element)
}

func (h *history[T]) Len() int {
	return len(h.elements)
}

func (h *history[T]) Element(index int) T {
	return h.elements[index]
}

func (h *history[T]) Elements() []T {
	return slices.Clone(h.elements)
}

// ringHistory keeps the newest [len(buffer)] elements. Once full, each append
// overwrites the oldest element.
type ringHistory[T any] struct {
	buffer []T
	start  int
	length int
}

// NewRingHistory returns a History that retains at most [capacity] elements.
func NewRingHistory[T any](capacity int) (History[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", errNonPositiveCapacity, capacity)
	}
	return &ringHistory[T]{
		buffer: make([]T, capacity),
	}, nil
}

func (r *ringHistory[T]) Append(element T) {
	capacity := len(r.buffer)
	if r.length < capacity {
		r.buffer[(r.start+r.length)%capacity] = element
		r.length++
		return
	}
	r.buffer[r.start] = element
	r.start = (r.start + 1) % capacity
}

func (r *ringHistory[T]) Len() int {
	return r.length
}

func (r *ringHistory[T]) Element(index int) T {
	return r.buffer[(r.start+index)%len(r.buffer)]
}

func (r *ringHistory[T]) Elements() []T {
	elements := make([]T, r.length)
	for i := range elements {
		elements[i] = r.Element(i)
	}
	return elements
}
