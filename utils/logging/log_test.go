// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestLog(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	recovered := new(bool)
	panicFunc := func() {
		panic("DON'T PANIC!")
	}
	exitFunc := func() {
		*recovered = true
	}
	log.RecoverAndExit(panicFunc, exitFunc)

	require.True(t, *recovered)
}

func TestLogRecoverAndPanic(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	require.PanicsWithValue(t, "DON'T PANIC!", func() {
		log.RecoverAndPanic(func() {
			panic("DON'T PANIC!")
		})
	})
}

func TestLogLevels(t *testing.T) {
	require := require.New(t)

	w := &bufferCloser{}
	log := NewLogger("sampler", NewWrappedCore(Info, w, JSONEncoder()))

	log.Debug("hidden")
	log.Trace("hidden")
	require.Zero(w.Len())
	require.False(log.Enabled(Debug))
	require.True(log.Enabled(Info))

	log.Info("drew item", zap.String("item", "a"))
	var entry map[string]interface{}
	require.NoError(json.Unmarshal(w.Bytes(), &entry))
	require.Equal("INFO", entry["level"])
	require.Equal("sampler", entry["logger"])
	require.Equal("drew item", entry["msg"])
	require.Equal("a", entry["item"])

	w.Reset()
	log.SetLevel(Verbo)
	require.True(log.Enabled(Verbo))
	log.Verbo("shown")
	require.Contains(w.String(), "VERBO")

	w.Reset()
	log.SetLevel(Off)
	log.Fatal("hidden")
	require.Zero(w.Len())

	log.Stop()
	require.True(w.closed)
}

func TestNopCloser(t *testing.T) {
	require := require.New(t)

	w := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, NopCloser(w), Plain.ConsoleEncoder()))

	log.Fatal("still open")
	log.Stop()
	require.False(w.closed)
	require.Contains(w.String(), "still open")
}

func TestLogFatalDoesNotPanic(t *testing.T) {
	w := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Verbo, w, Plain.ConsoleEncoder()))

	require.NotPanics(t, func() {
		log.Fatal("fatal")
	})
	require.Contains(t, w.String(), Fatal.String())
}

func TestLogConsoleColors(t *testing.T) {
	w := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, w, Colors.ConsoleEncoder()))

	log.Error("failed")
	require.Contains(t, w.String(), Orange.Wrap(Error.AlignedString()))
}

func TestNewLoggerFromConfig(t *testing.T) {
	require := require.New(t)

	w := &bufferCloser{}
	config := DefaultConfig()
	config.LogLevel = Warn
	config.MsgPrefix = "prefix"
	log := NewLoggerFromConfig(config, w)

	log.Info("hidden")
	require.Zero(w.Len())

	log.Warn("shown")
	require.Contains(w.String(), "prefix")
	require.Contains(w.String(), "WARN")
}

func TestToFormat(t *testing.T) {
	require := require.New(t)

	f, err := ToFormat("JSON")
	require.NoError(err)
	require.Equal(JSON, f)
	require.Equal("json", f.String())

	f, err = ToFormat("console")
	require.NoError(err)
	require.Equal(Console, f)

	_, err = ToFormat("xml")
	require.ErrorIs(err, errUnknownFormat)
}

func TestToHighlight(t *testing.T) {
	require := require.New(t)

	h, err := ToHighlight("colors", 0)
	require.NoError(err)
	require.Equal(Colors, h)

	h, err = ToHighlight("PLAIN", 0)
	require.NoError(err)
	require.Equal(Plain, h)

	_, err = ToHighlight("rainbow", 0)
	require.ErrorIs(err, errUnknownHighlight)
}

func TestNoLog(t *testing.T) {
	require := require.New(t)

	var log Logger = NoLog{}
	_, err := log.Write([]byte("hello"))
	require.ErrorIs(err, errNoLoggerWrite)
	require.False(log.Enabled(Fatal))

	exited := false
	log.RecoverAndExit(func() {}, func() { exited = true })
	require.True(exited)
}
