// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package average

import (
	"errors"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dto "github.com/prometheus/client_model/go"

	"github.com/moraiseverton/moving-average/utils/logging"
)

const stdinName = "-"

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "average [file...]",
		Short: "Prints the average of the most recent numbers read from files or stdin",
		RunE:  averageFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func averageFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	config, err := ParseFlags(flags, args)
	if err != nil {
		return err
	}

	log := logging.NewLogger(
		"movingaverage",
		logging.NewWrappedCore(
			config.LogLevel,
			logging.NopCloser(c.ErrOrStderr()),
			config.LogFormat.ConsoleEncoder(),
		),
	)
	defer log.Stop()

	in, err := openInputs(config.Inputs, c.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	var (
		registry   *prometheus.Registry
		registerer prometheus.Registerer
	)
	if config.Metrics {
		registry = prometheus.NewRegistry()
		registerer = registry
	}

	runErr := Run(config, in, c.OutOrStdout(), log, registerer)
	if registry != nil {
		if err := logMetrics(log, registry); err != nil {
			log.Warn("couldn't gather metrics", zap.Error(err))
		}
	}
	return runErr
}

// openInputs returns the concatenation of [inputs], or [stdin] if there are no
// inputs. The name "-" refers to [stdin].
func openInputs(inputs []string, stdin io.Reader) (io.ReadCloser, error) {
	if len(inputs) == 0 {
		return io.NopCloser(stdin), nil
	}

	var (
		readers = make([]io.Reader, 0, len(inputs))
		closers = make(multiCloser, 0, len(inputs))
	)
	for _, input := range inputs {
		if input == stdinName {
			readers = append(readers, stdin)
			continue
		}

		f, err := os.Open(input)
		if err != nil {
			_ = closers.Close()
			return nil, err
		}
		readers = append(readers, f)
		closers = append(closers, f)
	}
	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.MultiReader(readers...),
		Closer: closers,
	}, nil
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	errs := make([]error, 0, len(m))
	for _, c := range m {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func logMetrics(log logging.Logger, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			fields := []zap.Field{
				zap.String("name", family.GetName()),
			}
			for _, label := range m.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case dto.MetricType_GAUGE:
				fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			case dto.MetricType_HISTOGRAM:
				histogram := m.GetHistogram()
				fields = append(fields,
					zap.Uint64("count", histogram.GetSampleCount()),
					zap.Float64("sum", histogram.GetSampleSum()),
				)
			}
			log.Info("metric", fields...)
		}
	}
	return nil
}
