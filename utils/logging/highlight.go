// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Highlighting modes available
const (
	Plain Highlight = iota
	Colors
)

var errUnknownHighlight = errors.New("unknown highlight")

// Highlight mode to apply to displayed logs
type Highlight int

// ToHighlight chooses a highlighting mode
func ToHighlight(h string, fd uintptr) (Highlight, error) {
	switch strings.ToUpper(h) {
	case "PLAIN":
		return Plain, nil
	case "COLORS":
		return Colors, nil
	case "AUTO":
		if !term.IsTerminal(int(fd)) {
			return Plain, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("%w: %s", errUnknownHighlight, h)
	}
}

func (h Highlight) MarshalJSON() ([]byte, error) {
	switch h {
	case Plain:
		return []byte(`"PLAIN"`), nil
	case Colors:
		return []byte(`"COLORS"`), nil
	default:
		return nil, errUnknownHighlight
	}
}

// ConsoleEncoder returns a human readable encoder that renders levels
// according to [h].
func (h Highlight) ConsoleEncoder() zapcore.Encoder {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]")
	config.EncodeCaller = zapcore.ShortCallerEncoder
	config.ConsoleSeparator = " "
	if h == Colors {
		config.EncodeLevel = colorLevelEncoder
	} else {
		config.EncodeLevel = levelEncoder
	}
	return zapcore.NewConsoleEncoder(config)
}

// JSONEncoder returns an encoder that writes one JSON object per entry.
func JSONEncoder() zapcore.Encoder {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncodeLevel = levelEncoder
	return zapcore.NewJSONEncoder(config)
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	level := Level(l)
	enc.AppendString(level.Color().Wrap(level.AlignedString()))
}

// Color is an ANSI escape sequence
type Color string

const (
	Red         Color = "\033[31m"
	Orange      Color = "\033[33m"
	Yellow      Color = "\033[93m"
	LightBlue   Color = "\033[94m"
	LightPurple Color = "\033[95m"
	LightGreen  Color = "\033[92m"
	Reset       Color = "\033[0m"
)

// Wrap returns [s] rendered in [c].
func (c Color) Wrap(s string) string {
	return string(c) + s + string(Reset)
}
