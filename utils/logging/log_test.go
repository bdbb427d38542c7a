// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogLevels(t *testing.T) {
	require := require.New(t)

	atomicLevel := zap.NewAtomicLevelAt(zapcore.Level(Info))
	core, logs := observer.New(atomicLevel)
	log := NewLogger("", WrappedCore{
		Core:        core,
		AtomicLevel: atomicLevel,
	})

	log.Verbo("element read")
	log.Debug("window computed")
	log.Info("averages computed", zap.Int("size", 3))
	log.Warn("window too large")
	log.Error("failed")
	require.Equal(3, logs.Len())

	entries := logs.All()
	require.Equal("averages computed", entries[0].Message)
	require.Equal(int64(3), entries[0].ContextMap()["size"])

	require.False(log.Enabled(Verbo))
	log.SetLevel(Verbo)
	require.True(log.Enabled(Verbo))

	log.Verbo("element read")
	require.Equal(4, logs.Len())

	log.Stop()
}

func TestLogWith(t *testing.T) {
	require := require.New(t)

	atomicLevel := zap.NewAtomicLevelAt(zapcore.Level(Debug))
	core, logs := observer.New(atomicLevel)
	log := NewLogger("", WrappedCore{
		Core:        core,
		AtomicLevel: atomicLevel,
	}).With(zap.String("type", "int"))

	log.Debug("added")
	require.Equal(1, logs.Len())
	require.Equal("int", logs.All()[0].ContextMap()["type"])
}

func TestLogJSONFormat(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	log := NewLogger("movingaverage", NewWrappedCore(Info, NopCloser(&buf), JSON.ConsoleEncoder()))
	log.Info("done", zap.Int("windows", 2))
	log.Stop()

	var entry map[string]any
	require.NoError(json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(infoStr, entry["level"])
	require.Equal("movingaverage", entry["logger"])
	require.Equal("done", entry["msg"])
	require.Equal(float64(2), entry["windows"])
}

func TestLogDiscard(t *testing.T) {
	require := require.New(t)

	log := NewLogger("", NewWrappedCore(Verbo, Discard, Plain.ConsoleEncoder()))
	require.True(log.Enabled(Verbo))

	log.Verbo("dropped", zap.Int("size", 1))
	log.Error("dropped")
	log.Stop()

	n, err := Discard.Write([]byte("dropped"))
	require.NoError(err)
	require.Equal(len("dropped"), n)
	require.NoError(Discard.Close())
}

func TestLogOff(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("", NewWrappedCore(Off, NopCloser(&buf), Plain.ConsoleEncoder()))
	log.Error("dropped")
	log.Stop()

	require.Zero(t, buf.Len())
}
