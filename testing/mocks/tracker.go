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
package mocks

import (
	"context"
	"testing"

	"github.com/optakt/swarm-tracker/models/swarm"
)

type Tracker struct {
	TrackFunc  func(ctx context.Context, eoa string) (*swarm.Report, error)
	LookupFunc func(ctx context.Context, eoa string) (*swarm.Lookup, error)
	HealthFunc func(ctx context.Context) swarm.Health
}

func BaselineTracker(t *testing.T) *Tracker {
	t.Helper()

	tr := Tracker{
		TrackFunc: func(ctx context.Context, eoa string) (*swarm.Report, error) {
			report := swarm.Report{
				EOA:   eoa,
				Nodes: []swarm.Node{},
				Stats: swarm.Summary{
					TotalNodes:  GenericStats.TotalNodes,
					RankedNodes: GenericStats.RankedNodes,
					YourNodes:   len(GenericPeerIDs),
				},
				Timestamp: GenericTime.Format("2006-01-02 15:04:05"),
			}
			return &report, nil
		},
		LookupFunc: func(ctx context.Context, eoa string) (*swarm.Lookup, error) {
			lookup := swarm.Lookup{
				EOA:     eoa,
				PeerIDs: GenericPeerIDs,
				Data:    GenericLeaderboard.Raw,
			}
			return &lookup, nil
		},
		HealthFunc: func(ctx context.Context) swarm.Health {
			return swarm.Health{Status: swarm.StatusHealthy, Connected: true}
		},
	}

	return &tr
}

func (t *Tracker) Track(ctx context.Context, eoa string) (*swarm.Report, error) {
	return t.TrackFunc(ctx, eoa)
}

func (t *Tracker) Lookup(ctx context.Context, eoa string) (*swarm.Lookup, error) {
	return t.LookupFunc(ctx, eoa)
}

func (t *Tracker) Health(ctx context.Context) swarm.Health {
	return t.HealthFunc(ctx)
}
