// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/ava-labs/goodstuff/utils/logging"
)

var (
	errNoItems        = errors.New("no items to sample from")
	errInvalidDraws   = errors.New("number of draws must be positive")
	errInvalidWeights = errors.New("weights must be numbers")
)

// Config is the parsed configuration of the goodstuff binary
type Config struct {
	Items []string `json:"items"`
	// Weights is empty when every item is equally likely.
	Weights []float64 `json:"weights"`
	Draws   int       `json:"draws"`

	// Seed is only used if Seeded is true.
	Seed   uint64 `json:"seed"`
	Seeded bool   `json:"seeded"`

	Histogram        bool           `json:"histogram"`
	MetricsNamespace string         `json:"metricsNamespace"`
	LoggingConfig    logging.Config `json:"loggingConfig"`
}

// GetConfig returns the typed configuration described by [v]
func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		Items:            getList(v, ItemsKey),
		Draws:            v.GetInt(DrawsKey),
		Seed:             v.GetUint64(SeedKey),
		Seeded:           v.IsSet(SeedKey),
		Histogram:        v.GetBool(HistogramKey),
		MetricsNamespace: v.GetString(MetricsNamespaceKey),
	}
	if len(config.Items) == 0 {
		return Config{}, errNoItems
	}
	if config.Draws <= 0 {
		return Config{}, fmt.Errorf("%w: %d", errInvalidDraws, config.Draws)
	}

	if !v.GetBool(UniformKey) {
		weights, err := getWeights(v)
		if err != nil {
			return Config{}, err
		}
		config.Weights = weights
	}

	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	config.LoggingConfig = loggingConfig
	return config, nil
}

func getWeights(v *viper.Viper) ([]float64, error) {
	strs := getList(v, WeightsKey)
	if len(strs) == 0 {
		return nil, nil
	}
	weights := make([]float64, len(strs))
	for i, str := range strs {
		weight, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at index %d", errInvalidWeights, str, i)
		}
		weights[i] = weight
	}
	return weights, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()
	loggingConfig.MsgPrefix = AppName

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.DisplayHighlight, err = logging.ToHighlight(v.GetString(LogDisplayHighlightKey), os.Stderr.Fd())
	return loggingConfig, err
}

// getList returns the non-empty entries of the list stored at [key].
// Environment variables hold a single comma separated string, so only a
// string value is split on commas. Lists from flags or a config file are
// kept entry by entry.
func getList(v *viper.Viper, key string) []string {
	entries := v.GetStringSlice(key)
	if str, ok := v.Get(key).(string); ok {
		entries = strings.Split(str, ",")
	}

	var list []string
	for _, entry := range entries {
		if entry = strings.TrimSpace(entry); entry != "" {
			list = append(list, entry)
		}
	}
	return list
}
