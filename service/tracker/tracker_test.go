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
package tracker_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/swarm-tracker/models/swarm"
	"github.com/optakt/swarm-tracker/service/presenter"
	"github.com/optakt/swarm-tracker/service/tracker"
	"github.com/optakt/swarm-tracker/testing/mocks"
)

func clock() time.Time {
	return mocks.GenericTime
}

func TestTracker_Track(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		chain := mocks.BaselineChain(t)
		chain.PeerIDsFunc = func(ctx context.Context, address string) []string {
			assert.Equal(t, mocks.GenericAddress, address)
			return mocks.GenericPeerIDs
		}
		fetch := mocks.BaselineFetcher(t)
		fetch.FetchFunc = func(ctx context.Context, peerIDs []string) *swarm.Leaderboard {
			assert.Equal(t, mocks.GenericPeerIDs, peerIDs)
			return mocks.GenericLeaderboard
		}

		track := tracker.New(mocks.NoopLogger, chain, fetch, presenter.Default(), tracker.WithClock(clock))

		report, err := track.Track(context.Background(), "  "+mocks.GenericAddress+"\n")

		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, mocks.GenericAddress, report.EOA)
		assert.Len(t, report.Nodes, 2)
		assert.Equal(t, 3, report.Stats.YourNodes)
		assert.Equal(t, json.Number("1024"), report.Stats.TotalNodes)
		assert.Equal(t, json.Number("768"), report.Stats.RankedNodes)
		assert.Equal(t, "2024-01-01 05:35:00", report.Timestamp)
	})

	t.Run("handles missing address", func(t *testing.T) {
		t.Parallel()

		chain := mocks.BaselineChain(t)
		chain.PeerIDsFunc = func(ctx context.Context, address string) []string {
			t.Fatal("chain should not be queried")
			return nil
		}

		track := tracker.New(mocks.NoopLogger, chain, mocks.BaselineFetcher(t), presenter.Default())

		_, err := track.Track(context.Background(), "   ")

		assert.ErrorIs(t, err, swarm.ErrAddressRequired)
	})

	t.Run("handles invalid address", func(t *testing.T) {
		t.Parallel()

		chain := mocks.BaselineChain(t)
		chain.PeerIDsFunc = func(ctx context.Context, address string) []string {
			t.Fatal("chain should not be queried")
			return nil
		}

		track := tracker.New(mocks.NoopLogger, chain, mocks.BaselineFetcher(t), presenter.Default())

		_, err := track.Track(context.Background(), "0x1234")

		assert.ErrorIs(t, err, swarm.ErrInvalidAddress)
	})

	t.Run("handles address without nodes", func(t *testing.T) {
		t.Parallel()

		chain := mocks.BaselineChain(t)
		chain.PeerIDsFunc = func(ctx context.Context, address string) []string {
			return nil
		}
		fetch := mocks.BaselineFetcher(t)
		fetch.FetchFunc = func(ctx context.Context, peerIDs []string) *swarm.Leaderboard {
			t.Fatal("leaderboard should not be queried")
			return nil
		}

		track := tracker.New(mocks.NoopLogger, chain, fetch, presenter.Default())

		_, err := track.Track(context.Background(), mocks.GenericAddress)

		assert.ErrorIs(t, err, swarm.ErrNoNodes)
	})

	t.Run("handles unavailable leaderboard", func(t *testing.T) {
		t.Parallel()

		fetch := mocks.BaselineFetcher(t)
		fetch.FetchFunc = func(ctx context.Context, peerIDs []string) *swarm.Leaderboard {
			return nil
		}

		track := tracker.New(mocks.NoopLogger, mocks.BaselineChain(t), fetch, presenter.Default())

		_, err := track.Track(context.Background(), mocks.GenericAddress)

		assert.ErrorIs(t, err, swarm.ErrUnavailable)
	})

	t.Run("reports fewer records than queried peers", func(t *testing.T) {
		t.Parallel()

		fetch := mocks.BaselineFetcher(t)
		fetch.FetchFunc = func(ctx context.Context, peerIDs []string) *swarm.Leaderboard {
			board := swarm.Leaderboard{
				Ranks: mocks.GenericLeaderboard.Ranks[:1],
			}
			return &board
		}

		track := tracker.New(mocks.NoopLogger, mocks.BaselineChain(t), fetch, presenter.Default(), tracker.WithClock(clock))

		report, err := track.Track(context.Background(), mocks.GenericAddress)

		require.NoError(t, err)
		assert.Len(t, report.Nodes, 1)
		assert.Equal(t, len(mocks.GenericPeerIDs), report.Stats.YourNodes)
		assert.Equal(t, json.Number("0"), report.Stats.TotalNodes)
	})

	t.Run("handles cancelled request", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		chain := mocks.BaselineChain(t)
		chain.PeerIDsFunc = func(ctx context.Context, address string) []string {
			cancel()
			return nil
		}

		track := tracker.New(mocks.NoopLogger, chain, mocks.BaselineFetcher(t), presenter.Default())

		_, err := track.Track(ctx, mocks.GenericAddress)

		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, swarm.ErrNoNodes)
	})
}

func TestTracker_Lookup(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		track := tracker.New(mocks.NoopLogger, mocks.BaselineChain(t), mocks.BaselineFetcher(t), presenter.Default(), tracker.WithClock(clock))

		lookup, err := track.Lookup(context.Background(), mocks.GenericAddress)

		require.NoError(t, err)
		require.NotNil(t, lookup)
		assert.Equal(t, mocks.GenericAddress, lookup.EOA)
		assert.Equal(t, mocks.GenericPeerIDs, lookup.PeerIDs)
		assert.JSONEq(t, mocks.GenericPayload, string(lookup.Data))
		assert.Equal(t, "2024-01-01T00:05:00Z", lookup.Timestamp)
	})

	t.Run("serves leaderboard payload as received", func(t *testing.T) {
		t.Parallel()

		payload := `{"ranks": [{"peerId": "QmXyNyMGsTsm8c4HWpYRQhGZw2FgYzbSD4M4FYHnLsXG6g", "totalRewards": 1250.5, "region": "eu"}], "version": 2}`
		fetch := mocks.BaselineFetcher(t)
		fetch.FetchFunc = func(ctx context.Context, peerIDs []string) *swarm.Leaderboard {
			board := *mocks.GenericLeaderboard
			board.Raw = json.RawMessage(payload)
			return &board
		}

		track := tracker.New(mocks.NoopLogger, mocks.BaselineChain(t), fetch, presenter.Default())

		lookup, err := track.Lookup(context.Background(), mocks.GenericAddress)

		require.NoError(t, err)
		assert.JSONEq(t, payload, string(lookup.Data))
	})

	t.Run("passes address through unchecked", func(t *testing.T) {
		t.Parallel()

		chain := mocks.BaselineChain(t)
		chain.PeerIDsFunc = func(ctx context.Context, address string) []string {
			assert.Equal(t, "not-an-address", address)
			return nil
		}

		track := tracker.New(mocks.NoopLogger, chain, mocks.BaselineFetcher(t), presenter.Default())

		_, err := track.Lookup(context.Background(), "not-an-address")

		assert.ErrorIs(t, err, swarm.ErrNoNodes)
	})

	t.Run("handles unavailable leaderboard", func(t *testing.T) {
		t.Parallel()

		fetch := mocks.BaselineFetcher(t)
		fetch.FetchFunc = func(ctx context.Context, peerIDs []string) *swarm.Leaderboard {
			return nil
		}

		track := tracker.New(mocks.NoopLogger, mocks.BaselineChain(t), fetch, presenter.Default())

		_, err := track.Lookup(context.Background(), mocks.GenericAddress)

		assert.ErrorIs(t, err, swarm.ErrUnavailable)
	})
}

func TestTracker_Health(t *testing.T) {
	tests := []struct {
		desc      string
		connected bool
	}{
		{desc: "connected endpoint", connected: true},
		{desc: "unreachable endpoint", connected: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			t.Parallel()

			chain := mocks.BaselineChain(t)
			chain.ConnectedFunc = func(ctx context.Context) bool {
				return test.connected
			}

			track := tracker.New(mocks.NoopLogger, chain, mocks.BaselineFetcher(t), presenter.Default(), tracker.WithClock(clock))

			health := track.Health(context.Background())

			assert.Equal(t, swarm.StatusHealthy, health.Status)
			assert.Equal(t, "2024-01-01T00:05:00Z", health.Timestamp)
			assert.Equal(t, test.connected, health.Connected)
		})
	}
}
