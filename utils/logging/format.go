// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	Plain Format = iota
	JSON
)

var (
	errUnknownFormat = errors.New("unknown log format")

	// Discard is a writer that drops everything written to it.
	Discard = NopCloser(io.Discard)
)

// Format selects the encoding of log lines.
type Format int

// ToFormat parses [f] as a Format.
func ToFormat(f string) (Format, error) {
	switch strings.ToLower(f) {
	case "plain":
		return Plain, nil
	case "json":
		return JSON, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	default:
		return "plain"
	}
}

// ConsoleEncoder returns an encoder for human or machine readable output,
// depending on [f].
func (f Format) ConsoleEncoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if f == JSON {
		config.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)
		return zapcore.NewJSONEncoder(config)
	}
	return zapcore.NewConsoleEncoder(config)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// NopCloser returns [w] with a Close method that does nothing. Used for
// writers a logger must not close, such as os.Stderr.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{Writer: w}
}
