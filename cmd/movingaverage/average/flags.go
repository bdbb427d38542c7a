// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package average

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/moraiseverton/moving-average/utils/logging"
)

const (
	ConfigFileKey = "config-file"
	WindowKey     = "window"
	TypeKey       = "type"
	CapacityKey   = "capacity"
	FollowKey     = "follow"
	LogLevelKey   = "log-level"
	LogFormatKey  = "log-format"
	MetricsKey    = "metrics"

	envPrefix = "movingaverage"
)

var (
	errNoWindows         = errors.New("at least one window is required")
	errNonPositiveWindow = errors.New("window must be positive")
	errInvalidWindow     = errors.New("invalid window")
	errNegativeCapacity  = errors.New("capacity can't be negative")
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(ConfigFileKey, "", "Config file to read flag values from")
	flags.IntSlice(WindowKey, []int{1}, "Number of most recent elements to average. May be repeated")
	flags.String(TypeKey, Int.String(), fmt.Sprintf("Type of the elements. One of %q, %q or %q", Int, Float, Decimal))
	flags.Int(CapacityKey, 0, "Maximum number of elements kept. 0 keeps every element")
	flags.Bool(FollowKey, false, "Print the averages after every element")
	flags.String(LogLevelKey, logging.Info.LowerString(), "Minimum level of the logs written to stderr")
	flags.String(LogFormatKey, logging.Plain.String(), "Format of the logs written to stderr. One of \"plain\" or \"json\"")
	flags.Bool(MetricsKey, false, "Log the collected metrics on exit")
}

type Config struct {
	Windows   []int
	Type      NumberType
	Capacity  int
	Follow    bool
	LogLevel  logging.Level
	LogFormat logging.Format
	Metrics   bool
	// Inputs are the files to read elements from. Stdin is read if empty.
	Inputs []string
}

// ParseFlags builds a Config from [flags], the environment and the optional
// config file, in decreasing order of precedence.
func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v, err := newViper(flags)
	if err != nil {
		return nil, err
	}

	windows, err := getWindows(v)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, errNoWindows
	}
	for _, window := range windows {
		if window < 1 {
			return nil, fmt.Errorf("%w: %d", errNonPositiveWindow, window)
		}
	}

	numberType, err := ToNumberType(v.GetString(TypeKey))
	if err != nil {
		return nil, err
	}

	capacity := v.GetInt(CapacityKey)
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", errNegativeCapacity, capacity)
	}

	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return nil, err
	}

	logFormat, err := logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return nil, err
	}

	return &Config{
		Windows:   windows,
		Type:      numberType,
		Capacity:  capacity,
		Follow:    v.GetBool(FollowKey),
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Metrics:   v.GetBool(MetricsKey),
		Inputs:    flags.Args(),
	}, nil
}

// getWindows reads the windows from [v]. Values set through the environment
// are strings of comma or space separated integers.
func getWindows(v *viper.Viper) ([]int, error) {
	switch value := v.Get(WindowKey).(type) {
	case string:
		fields := strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		windows := make([]int, len(fields))
		for i, field := range fields {
			window, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", errInvalidWindow, field)
			}
			windows[i] = window
		}
		return windows, nil
	case int:
		return []int{value}, nil
	default:
		windows, err := cast.ToIntSliceE(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidWindow, err)
		}
		return windows, nil
	}
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(os.ExpandEnv(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
