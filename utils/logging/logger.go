// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

// Logger defines the interface that is used to keep a record of all events that
// happen to the program
type Logger interface {
	// Log that something bad happened and the program should be told
	Error(msg string, fields ...zap.Field)
	// Log that something might be going wrong
	Warn(msg string, fields ...zap.Field)
	// Log an event that may be useful for a user to see
	Info(msg string, fields ...zap.Field)
	// Log an event that may be useful for a programmer to see
	Debug(msg string, fields ...zap.Field)
	// Log extremely detailed events, such as every element read
	Verbo(msg string, fields ...zap.Field)

	// With returns a logger that adds [fields] to every entry.
	With(fields ...zap.Field) Logger

	// SetLevel changes the minimum level of every core of this logger.
	SetLevel(level Level)
	// Enabled returns true if a message at [level] would be written.
	Enabled(level Level) bool

	// Stop this logger and write back all meta-data.
	Stop()
}
