// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/moraiseverton/moving-average/utils/math"
	"github.com/moraiseverton/moving-average/utils/wrappers"
)

const (
	reasonLabel = "reason"

	notFoundReason    = "not_found"
	unsupportedReason = "unsupported"
	otherReason       = "other"
)

var _ math.MovingAverage[int] = (*meteredMovingAverage[int])(nil)

type meteredMovingAverage[T any] struct {
	movingAverage math.MovingAverage[T]

	elementsAdded   prometheus.Counter
	size            prometheus.Gauge
	getErrors       prometheus.Counter
	averageCalls    prometheus.Counter
	averageErrors   *prometheus.CounterVec
	averageDuration prometheus.Histogram
}

// NewMovingAverage returns a MovingAverage that reports the usage of
// [movingAverage] to [registerer].
func NewMovingAverage[T any](
	namespace string,
	registerer prometheus.Registerer,
	movingAverage math.MovingAverage[T],
) (math.MovingAverage[T], error) {
	m := &meteredMovingAverage[T]{
		movingAverage: movingAverage,
		elementsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "elements_added",
			Help:      "Number of elements added",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "size",
			Help:      "Number of elements held",
		}),
		getErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "get_errors",
			Help:      "Number of lookups of a position that doesn't exist",
		}),
		averageCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "average_calls",
			Help:      "Number of averages requested",
		}),
		averageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "average_errors",
				Help:      "Number of averages that couldn't be computed",
			},
			[]string{reasonLabel},
		),
		averageDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "average_duration",
			Help:      "Time spent computing an average (seconds)",
			Buckets:   SecondsBuckets,
		}),
	}
	m.size.Set(float64(movingAverage.Size()))

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.elementsAdded),
		registerer.Register(m.size),
		registerer.Register(m.getErrors),
		registerer.Register(m.averageCalls),
		registerer.Register(m.averageErrors),
		registerer.Register(m.averageDuration),
	)
	return m, errs.Err
}

func (m *meteredMovingAverage[T]) Add(element T) {
	m.movingAverage.Add(element)
	m.elementsAdded.Inc()
	m.size.Set(float64(m.movingAverage.Size()))
}

func (m *meteredMovingAverage[T]) Size() int {
	return m.movingAverage.Size()
}

func (m *meteredMovingAverage[T]) Get(position int) (T, error) {
	element, err := m.movingAverage.Get(position)
	if err != nil {
		m.getErrors.Inc()
	}
	return element, err
}

func (m *meteredMovingAverage[T]) Average(lastN int) (T, error) {
	m.averageCalls.Inc()

	start := time.Now()
	average, err := m.movingAverage.Average(lastN)
	m.averageDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		m.averageErrors.WithLabelValues(errorReason(err)).Inc()
	}
	return average, err
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, math.ErrUnsupportedOperation):
		return unsupportedReason
	case errors.Is(err, math.ErrNotFound):
		return notFoundReason
	default:
		return otherReason
	}
}
