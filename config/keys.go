// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey          = "config-file"
	ItemsKey               = "items"
	WeightsKey             = "weights"
	UniformKey             = "uniform"
	DrawsKey               = "draws"
	SeedKey                = "seed"
	HistogramKey           = "histogram"
	MetricsNamespaceKey    = "metrics-namespace"
	LogLevelKey            = "log-level"
	LogFormatKey           = "log-format"
	LogDisplayHighlightKey = "log-display-highlight"
)
