// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/goodstuff/utils/logging"
)

type App interface {
	// Start kicks off the application and returns immediately
	Start() error

	// Stop notifies the application to exit and returns immediately
	Stop() error

	// ExitCode should only be called after [Start] returns with no error. It
	// should block until the application finishes
	ExitCode() (int, error)
}

// Run starts [app], stops it on SIGINT or SIGTERM, and returns the code the
// process should exit with. Failures are reported to [log].
func Run(app App, log logging.Logger) int {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	return run(app, log, signals)
}

func run(app App, log logging.Logger, signals <-chan os.Signal) int {
	if err := app.Start(); err != nil {
		log.Fatal("couldn't start",
			zap.Error(err),
		)
		return 1
	}

	// finished is closed once the app exits on its own
	finished := make(chan struct{})
	var eg errgroup.Group
	eg.Go(func() error {
		select {
		case sig := <-signals:
			log.Info("stopping on signal",
				zap.Stringer("signal", sig),
			)
			return app.Stop()
		case <-finished:
			return nil
		}
	})

	exitCode, exitErr := app.ExitCode()
	close(finished)
	stopErr := eg.Wait()

	if stopErr != nil {
		log.Error("couldn't stop",
			zap.Error(stopErr),
		)
	}
	if exitErr != nil {
		log.Error("exited with error",
			zap.Error(exitErr),
		)
	}
	if stopErr != nil || exitErr != nil {
		return 1
	}
	return exitCode
}
