// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package average

import (
	"bufio"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/moraiseverton/moving-average/utils/logging"
	"github.com/moraiseverton/moving-average/utils/math"
	"github.com/moraiseverton/moving-average/utils/metric"
	"github.com/moraiseverton/moving-average/utils/wrappers"
)

const metricsNamespace = "movingaverage"

// Run adds every element read from [in] to a moving average and writes the
// requested averages to [out]. If [registerer] is non-nil, the moving average
// reports its metrics to it.
//
// A window that can't be averaged doesn't stop the other windows from being
// written, but its error is returned.
func Run(
	config *Config,
	in io.Reader,
	out io.Writer,
	log logging.Logger,
	registerer prometheus.Registerer,
) error {
	log = log.With(zap.Stringer("type", config.Type))
	switch config.Type {
	case Int:
		return run(config, intCodec, in, out, log, registerer)
	case Float:
		return run(config, floatCodec, in, out, log, registerer)
	case Decimal:
		return run(config, decimalCodec, in, out, log, registerer)
	default:
		return fmt.Errorf("%w: %d", errUnknownNumberType, config.Type)
	}
}

func run[T any](
	config *Config,
	c codec[T],
	in io.Reader,
	out io.Writer,
	log logging.Logger,
	registerer prometheus.Registerer,
) error {
	movingAverage, err := newMovingAverage(config, c, registerer)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := scanner.Text()
		element, err := c.parse(token)
		if err != nil {
			return fmt.Errorf("couldn't parse %q as %s: %w", token, config.Type, err)
		}

		movingAverage.Add(element)
		size := movingAverage.Size()
		log.Verbo("added element",
			zap.String("element", token),
			zap.Int("size", size),
		)

		if !config.Follow {
			continue
		}
		for _, window := range config.Windows {
			if window > size {
				continue
			}
			average, err := movingAverage.Average(window)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "size=%d window=%d average=%s\n", size, window, c.format(average)); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("couldn't read elements: %w", err)
	}

	log.Info("read elements",
		zap.Int("size", movingAverage.Size()),
		zap.Ints("windows", config.Windows),
	)

	errs := wrappers.Errs{}
	for _, window := range config.Windows {
		average, err := movingAverage.Average(window)
		if err != nil {
			log.Warn("couldn't compute average",
				zap.Int("window", window),
				zap.Error(err),
			)
			errs.Add(fmt.Errorf("average of the last %d elements: %w", window, err))
			continue
		}

		log.Debug("computed average",
			zap.Int("window", window),
			zap.String("average", c.format(average)),
		)
		if _, err := fmt.Fprintf(out, "average(last %d) = %s\n", window, c.format(average)); err != nil {
			return err
		}
	}
	return errs.Err
}

func newMovingAverage[T any](
	config *Config,
	c codec[T],
	registerer prometheus.Registerer,
) (math.MovingAverage[T], error) {
	history := math.NewHistory[T]()
	if config.Capacity > 0 {
		var err error
		history, err = math.NewRingHistory[T](config.Capacity)
		if err != nil {
			return nil, err
		}
	}

	movingAverage := math.New(c.ops, history)
	if registerer == nil {
		return movingAverage, nil
	}
	return metric.NewMovingAverage(metricsNamespace, registerer, movingAverage)
}
