// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/goodstuff/app"
	"github.com/ava-labs/goodstuff/config"
	"github.com/ava-labs/goodstuff/utils/logging"
)

func main() {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't configure flags: %s\n", err)
		os.Exit(1)
	}

	c, err := config.GetConfig(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load config: %s\n", err)
		os.Exit(1)
	}

	log := logging.NewLoggerFromConfig(c.LoggingConfig, logging.NopCloser(os.Stderr))

	sampler, err := app.New(c, log, os.Stdout)
	if err != nil {
		log.Fatal("couldn't start sampling",
			zap.Error(err),
		)
		log.Stop()
		os.Exit(1)
	}

	exitCode := app.Run(sampler, log)
	log.Stop()
	os.Exit(exitCode)
}
