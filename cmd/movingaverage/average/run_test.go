// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package average

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/moraiseverton/moving-average/utils/logging"
	"github.com/moraiseverton/moving-average/utils/math"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name           string
		config         Config
		input          string
		expectedOutput string
		expectedErr    error
	}{
		{
			name: "int windows",
			config: Config{
				Windows: []int{1, 3, 4},
				Type:    Int,
			},
			input: "1 2 4\n7",
			expectedOutput: "average(last 1) = 7\n" +
				"average(last 3) = 4\n" +
				"average(last 4) = 3\n",
		},
		{
			name: "float",
			config: Config{
				Windows: []int{2},
				Type:    Float,
			},
			input:          "1 2",
			expectedOutput: "average(last 2) = 1.5\n",
		},
		{
			name: "decimal",
			config: Config{
				Windows: []int{3},
				Type:    Decimal,
			},
			input:          "0.1\n0.2\n0.4\n",
			expectedOutput: "average(last 3) = 0.2333333333333333\n",
		},
		{
			name: "follow",
			config: Config{
				Windows: []int{1, 2},
				Type:    Int,
				Follow:  true,
			},
			input: "2 4 9",
			expectedOutput: "size=1 window=1 average=2\n" +
				"size=2 window=1 average=4\n" +
				"size=2 window=2 average=3\n" +
				"size=3 window=1 average=9\n" +
				"size=3 window=2 average=6\n" +
				"average(last 1) = 9\n" +
				"average(last 2) = 6\n",
		},
		{
			name: "window larger than input",
			config: Config{
				Windows: []int{5, 1},
				Type:    Int,
			},
			input:          "3 4",
			expectedOutput: "average(last 1) = 4\n",
			expectedErr:    math.ErrNotFound,
		},
		{
			name: "empty input",
			config: Config{
				Windows: []int{1},
				Type:    Int,
			},
			input:          "",
			expectedOutput: "",
			expectedErr:    math.ErrUnsupportedOperation,
		},
		{
			name: "bounded history",
			config: Config{
				Windows:  []int{2, 3},
				Type:     Int,
				Capacity: 2,
			},
			input:          "100 1 3",
			expectedOutput: "average(last 2) = 2\n",
			expectedErr:    math.ErrNotFound,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			var out bytes.Buffer
			err := Run(&test.config, strings.NewReader(test.input), &out, logging.NoLog{}, nil)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expectedOutput, out.String())
		})
	}
}

func TestRunParseError(t *testing.T) {
	config := Config{
		Windows: []int{1},
		Type:    Int,
	}

	var out bytes.Buffer
	err := Run(&config, strings.NewReader("1 two 3"), &out, logging.NoLog{}, nil)
	require.ErrorContains(t, err, `"two"`)
}

func TestRunMetrics(t *testing.T) {
	require := require.New(t)

	config := Config{
		Windows: []int{2, 5},
		Type:    Int,
	}

	registry := prometheus.NewRegistry()
	var out bytes.Buffer
	err := Run(&config, strings.NewReader("1 2 3"), &out, logging.NoLog{}, registry)
	require.ErrorIs(err, math.ErrNotFound)

	require.NoError(testutil.GatherAndCompare(registry, strings.NewReader(`
# HELP movingaverage_elements_added Number of elements added
# TYPE movingaverage_elements_added counter
movingaverage_elements_added 3
# HELP movingaverage_size Number of elements held
# TYPE movingaverage_size gauge
movingaverage_size 3
# HELP movingaverage_average_calls Number of averages requested
# TYPE movingaverage_average_calls counter
movingaverage_average_calls 2
# HELP movingaverage_average_errors Number of averages that couldn't be computed
# TYPE movingaverage_average_errors counter
movingaverage_average_errors{reason="not_found"} 1
`),
		"movingaverage_elements_added",
		"movingaverage_size",
		"movingaverage_average_calls",
		"movingaverage_average_errors",
	))
}
