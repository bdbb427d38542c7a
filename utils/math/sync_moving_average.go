// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import "sync"

var _ MovingAverage[int] = (*syncMovingAverage[int])(nil)

type syncMovingAverage[T any] struct {
	lock          sync.RWMutex
	movingAverage MovingAverage[T]
}

// NewSyncMovingAverage returns a MovingAverage that is safe for concurrent use
// by serializing access to [movingAverage].
func NewSyncMovingAverage[T any](movingAverage MovingAverage[T]) MovingAverage[T] {
	return &syncMovingAverage[T]{
		movingAverage: movingAverage,
	}
}

func (s *syncMovingAverage[T]) Add(element T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.movingAverage.Add(element)
}

func (s *syncMovingAverage[T]) Size() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.movingAverage.Size()
}

func (s *syncMovingAverage[T]) Get(position int) (T, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.movingAverage.Get(position)
}

func (s *syncMovingAverage[T]) Average(lastN int) (T, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.movingAverage.Average(lastN)
}
