// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	AppName = "goodstuff"

	// EnvPrefix is prepended to the upper-cased key of every flag when it is
	// read from the environment. For example [log-level] is read from
	// GOODSTUFF_LOG_LEVEL.
	EnvPrefix = "goodstuff"
)

// BuildFlagSet returns the complete set of flags for goodstuff
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)

	fs.String(ConfigFileKey, "", "Specifies a config file")

	// Sampling
	fs.StringSlice(ItemsKey, nil, "Comma separated items to sample from")
	fs.StringSlice(WeightsKey, nil, fmt.Sprintf("Comma separated non-negative weights, one per entry of [%s]. If empty, every item is equally likely", ItemsKey))
	fs.Bool(UniformKey, false, fmt.Sprintf("If true, ignore [%s] and sample uniformly", WeightsKey))
	fs.Int(DrawsKey, 1, "Number of items to draw, with replacement")
	fs.Uint64(SeedKey, 0, "Seed of the random source. If unset, the source is seeded from the clock")
	fs.Bool(HistogramKey, false, "If true, print how many times each item was drawn")

	// Metrics
	fs.String(MetricsNamespaceKey, AppName, "Namespace of the reported metrics")

	// Logging
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "console", "The structure of log format. Should be one of {console, json}")
	fs.String(LogDisplayHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors}")

	return fs
}

// BuildViper returns the viper environment from parsing [args] with [fs], the
// environment and the config file if one was provided
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
