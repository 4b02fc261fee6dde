// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "github.com/prometheus/client_golang/prometheus"

var _ Source = (*meteredSource)(nil)

type meteredSource struct {
	Source
	numDraws prometheus.Counter
}

// NewMeteredSource returns a source that counts the values drawn from
// [source].
func NewMeteredSource(namespace string, registerer prometheus.Registerer, source Source) (Source, error) {
	s := &meteredSource{
		Source: source,
		numDraws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws",
			Help:      "Number of random values drawn",
		}),
	}
	return s, registerer.Register(s.numDraws)
}

func (s *meteredSource) Float64() float64 {
	s.numDraws.Inc()
	return s.Source.Float64()
}
