// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var errUnknownFormat = errors.New("unknown log format")

// Format selects how log entries are encoded
type Format int

const (
	Console Format = iota
	JSON
)

// ToFormat is the inverse of Format.String()
func ToFormat(f string) (Format, error) {
	switch strings.ToLower(f) {
	case "console", "plain", "colors":
		return Console, nil
	case "json":
		return JSON, nil
	default:
		return Console, fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	default:
		return "console"
	}
}

type Config struct {
	LogLevel         Level     `json:"logLevel"`
	LogFormat        Format    `json:"logFormat"`
	DisplayHighlight Highlight `json:"displayHighlight"`
	MsgPrefix        string    `json:"msgPrefix"`
}

// DefaultConfig logs at Info to a plain console
func DefaultConfig() Config {
	return Config{
		LogLevel:         Info,
		LogFormat:        Console,
		DisplayHighlight: Plain,
	}
}

// NewLoggerFromConfig returns a logger writing to [w] as described by
// [config]
func NewLoggerFromConfig(config Config, w io.WriteCloser) Logger {
	encoder := config.DisplayHighlight.ConsoleEncoder()
	if config.LogFormat == JSON {
		encoder = JSONEncoder()
	}
	return NewLogger(config.MsgPrefix, NewWrappedCore(config.LogLevel, w, encoder))
}
