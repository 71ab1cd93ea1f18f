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
package leaderboard

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/swarm-tracker/models/swarm"
)

const (
	labelResult = "result"

	resultData   = "data"
	resultNoData = "nodata"
)

// MetricsFetcher wraps the client and records metrics for the requests it
// makes.
type MetricsFetcher struct {
	fetch *Client

	requests *prometheus.CounterVec
	records  prometheus.Counter
	duration prometheus.Histogram
}

// NewMetricsFetcher creates a new fetcher that registers its metrics with the
// given registerer.
func NewMetricsFetcher(fetch *Client, reg prometheus.Registerer) *MetricsFetcher {
	factory := promauto.With(reg)

	requestOpts := prometheus.CounterOpts{
		Name: "leaderboard_requests",
		Help: "the number of leaderboard requests by result",
	}
	requests := factory.NewCounterVec(requestOpts, []string{labelResult})

	recordOpts := prometheus.CounterOpts{
		Name: "leaderboard_records",
		Help: "the number of rank records received from the leaderboard",
	}
	records := factory.NewCounter(recordOpts)

	durationOpts := prometheus.HistogramOpts{
		Name:    "leaderboard_request_seconds",
		Help:    "the duration of leaderboard requests",
		Buckets: prometheus.DefBuckets,
	}
	duration := factory.NewHistogram(durationOpts)

	f := MetricsFetcher{
		fetch: fetch,

		requests: requests,
		records:  records,
		duration: duration,
	}

	return &f
}

// Fetch returns the leaderboard data for the given peers.
func (f *MetricsFetcher) Fetch(ctx context.Context, peerIDs []string) *swarm.Leaderboard {
	timer := prometheus.NewTimer(f.duration)
	defer timer.ObserveDuration()

	board := f.fetch.Fetch(ctx, peerIDs)
	if board == nil {
		f.requests.With(prometheus.Labels{labelResult: resultNoData}).Inc()
		return nil
	}

	f.requests.With(prometheus.Labels{labelResult: resultData}).Inc()
	f.records.Add(float64(len(board.Ranks)))

	return board
}
