// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.
package chain

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelResult = "result"

	resultFound = "found"
	resultEmpty = "empty"
)

// MetricsReader wraps the reader and records metrics for the lookups it does.
type MetricsReader struct {
	read *Reader

	lookups  *prometheus.CounterVec
	peers    prometheus.Counter
	duration prometheus.Histogram
}

// NewMetricsReader creates a new reader that registers its metrics with the
// given registerer.
func NewMetricsReader(read *Reader, reg prometheus.Registerer) *MetricsReader {
	factory := promauto.With(reg)

	lookupOpts := prometheus.CounterOpts{
		Name: "chain_lookups",
		Help: "the number of peer ID lookups by result",
	}
	lookups := factory.NewCounterVec(lookupOpts, []string{labelResult})

	peerOpts := prometheus.CounterOpts{
		Name: "chain_peer_ids",
		Help: "the number of peer IDs returned by the contract",
	}
	peers := factory.NewCounter(peerOpts)

	durationOpts := prometheus.HistogramOpts{
		Name:    "chain_lookup_seconds",
		Help:    "the duration of peer ID lookups",
		Buckets: prometheus.DefBuckets,
	}
	duration := factory.NewHistogram(durationOpts)

	r := MetricsReader{
		read: read,

		lookups:  lookups,
		peers:    peers,
		duration: duration,
	}

	return &r
}

// PeerIDs looks up the peer IDs for the given address.
func (r *MetricsReader) PeerIDs(ctx context.Context, address string) []string {
	timer := prometheus.NewTimer(r.duration)
	defer timer.ObserveDuration()

	peerIDs := r.read.PeerIDs(ctx, address)
	if len(peerIDs) == 0 {
		r.lookups.With(prometheus.Labels{labelResult: resultEmpty}).Inc()
		return peerIDs
	}

	r.lookups.With(prometheus.Labels{labelResult: resultFound}).Inc()
	r.peers.Add(float64(len(peerIDs)))

	return peerIDs
}

// Connected reports whether the RPC endpoint is reachable.
func (r *MetricsReader) Connected(ctx context.Context) bool {
	return r.read.Connected(ctx)
}
