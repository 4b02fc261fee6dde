// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/goodstuff/config"
	"github.com/ava-labs/goodstuff/utils/logging"
	"github.com/ava-labs/goodstuff/utils/sampler"
)

var (
	_ App = (*sampling)(nil)

	errNotStarted = errors.New("not started")
)

// sampling draws the configured number of items and writes one item per line
// to its output.
type sampling struct {
	config   config.Config
	log      logging.Logger
	out      io.Writer
	registry *prometheus.Registry
	source   sampler.Source

	// draw returns the index of the next drawn item
	draw func() (int, error)

	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	done    chan struct{}
	err     error
}

// New returns an App that samples the items described by [c]
func New(c config.Config, log logging.Logger, out io.Writer) (App, error) {
	var source sampler.Source
	if c.Seeded {
		source = sampler.NewSource(c.Seed)
	} else {
		source = sampler.NewTimeSeededSource()
	}

	registry := prometheus.NewRegistry()
	source, err := sampler.NewMeteredSource(c.MetricsNamespace, registry, source)
	if err != nil {
		return nil, fmt.Errorf("couldn't register metrics: %w", err)
	}

	s := &sampling{
		config:   c,
		log:      log,
		out:      out,
		registry: registry,
		source:   source,
		done:     make(chan struct{}),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	if len(c.Weights) == 0 {
		s.draw = func() (int, error) {
			return sampler.SelectUniformIndex(len(c.Items), source)
		}
		return s, nil
	}

	indices := make([]int, len(c.Items))
	for i := range indices {
		indices[i] = i
	}
	distribution, err := sampler.NewDistribution(indices, c.Weights)
	if err != nil {
		return nil, fmt.Errorf("couldn't build distribution: %w", err)
	}
	s.draw = func() (int, error) {
		return distribution.Draw(source), nil
	}
	return s, nil
}

func (s *sampling) Start() error {
	s.log.Info("starting sampling",
		zap.Int("numItems", len(s.config.Items)),
		zap.Bool("weighted", len(s.config.Weights) != 0),
		zap.Int("numDraws", s.config.Draws),
	)
	s.started = true
	go s.log.RecoverAndPanic(s.run)
	return nil
}

func (s *sampling) Stop() error {
	s.log.Info("stopping sampling")
	s.cancel()
	return nil
}

func (s *sampling) ExitCode() (int, error) {
	if !s.started {
		return 1, errNotStarted
	}
	<-s.done
	if s.err != nil {
		s.log.Error("sampling failed", zap.Error(s.err))
		return 1, s.err
	}
	return 0, nil
}

func (s *sampling) run() {
	defer close(s.done)
	s.err = s.sample()
}

func (s *sampling) sample() error {
	counts := make([]int, len(s.config.Items))
	for i := 0; i < s.config.Draws; i++ {
		if err := s.ctx.Err(); err != nil {
			return err
		}

		index, err := s.draw()
		if err != nil {
			return err
		}
		counts[index]++

		item := s.config.Items[index]
		s.log.Verbo("drew item",
			zap.Int("draw", i),
			zap.String("item", item),
		)
		if _, err := fmt.Fprintln(s.out, item); err != nil {
			return err
		}
	}

	if s.config.Histogram {
		if err := s.writeHistogram(counts); err != nil {
			return err
		}
	}

	numDraws, err := s.numDraws()
	if err != nil {
		return err
	}
	s.log.Info("finished sampling",
		zap.Float64("numDraws", numDraws),
	)
	return nil
}

func (s *sampling) writeHistogram(counts []int) error {
	for i, item := range s.config.Items {
		if _, err := fmt.Fprintf(s.out, "%s\t%d\n", item, counts[i]); err != nil {
			return err
		}
	}
	return nil
}

// numDraws reads the number of values drawn from the random source back from
// the metrics registry.
func (s *sampling) numDraws() (float64, error) {
	families, err := s.registry.Gather()
	if err != nil {
		return 0, err
	}
	name := prometheus.BuildFQName(s.config.MetricsNamespace, "", "draws")
	for _, family := range families {
		if metrics := family.GetMetric(); family.GetName() == name && len(metrics) > 0 {
			return metrics[0].GetCounter().GetValue(), nil
		}
	}
	return 0, nil
}
