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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/swarm-tracker/testing/mocks"
)

func serve(t *testing.T, status int, body string) (*httptest.Server, *int64) {
	t.Helper()

	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server, &hits
}

func TestNew(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		client := New(mocks.NoopLogger, "https://example.com/api", 30*time.Second)

		require.NotNil(t, client)
		assert.Equal(t, "https://example.com/api", client.endpoint)
		assert.Equal(t, 30*time.Second, client.http.Timeout)
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		t.Parallel()

		custom := &http.Client{}
		client := New(mocks.NoopLogger, "https://example.com/api", 30*time.Second, WithHTTPClient(custom))

		assert.Same(t, custom, client.http)
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req map[string][]string
			err := json.NewDecoder(r.Body).Decode(&req)
			assert.NoError(t, err)
			assert.Equal(t, mocks.GenericPeerIDs, req["peerIds"])

			_, _ = io.WriteString(w, mocks.GenericPayload)
		}))
		defer server.Close()

		client := New(mocks.NoopLogger, server.URL, time.Second)

		board := client.Fetch(context.Background(), mocks.GenericPeerIDs)

		require.NotNil(t, board)
		require.Len(t, board.Ranks, 2)
		assert.Equal(t, mocks.GenericStats, board.Stats)

		first := board.Ranks[0]
		assert.Equal(t, mocks.GenericPeerIDs[0], first.PeerID)
		assert.JSONEq(t, `42`, string(first.Rank))
		assert.Equal(t, json.Number("7"), first.TotalWins)
		assert.Equal(t, "1250.5", first.TotalRewards.String())
		assert.Equal(t, mocks.GenericLastSeen, first.LastSeen)

		second := board.Ranks[1]
		assert.Equal(t, mocks.GenericPeerIDs[1], second.PeerID)
		assert.Nil(t, second.Rank)
		assert.Zero(t, second.TotalWins)
		assert.True(t, second.TotalRewards.IsZero())
		assert.Empty(t, second.LastSeen)

		assert.JSONEq(t, mocks.GenericPayload, string(board.Raw))
	})

	t.Run("keeps payload as received", func(t *testing.T) {
		t.Parallel()

		payload := `{
			"ranks": [{"peerId": "QmXyNyMGsTsm8c4HWpYRQhGZw2FgYzbSD4M4FYHnLsXG6g", "totalWins": 7.0, "totalRewards": 1250.5, "region": "eu"}],
			"stats": {"totalNodes": 1024.0},
			"version": 2
		}`
		server, _ := serve(t, http.StatusOK, payload)
		client := New(mocks.NoopLogger, server.URL, time.Second)

		board := client.Fetch(context.Background(), mocks.GenericPeerIDs)

		require.NotNil(t, board)
		require.Len(t, board.Ranks, 1)
		assert.Equal(t, json.Number("7.0"), board.Ranks[0].TotalWins)
		assert.Equal(t, json.Number("1024.0"), board.Stats.TotalNodes)
		assert.JSONEq(t, payload, string(board.Raw))
	})

	t.Run("skips request for empty peer list", func(t *testing.T) {
		t.Parallel()

		server, hits := serve(t, http.StatusOK, mocks.GenericPayload)
		client := New(mocks.NoopLogger, server.URL, time.Second)

		assert.Nil(t, client.Fetch(context.Background(), nil))
		assert.Nil(t, client.Fetch(context.Background(), []string{}))
		assert.Zero(t, atomic.LoadInt64(hits))
	})

	noData := []struct {
		desc   string
		status int
		body   string
	}{
		{desc: "non-OK status", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{desc: "not found status", status: http.StatusNotFound, body: mocks.GenericPayload},
		{desc: "malformed JSON", status: http.StatusOK, body: `{"ranks": [`},
		{desc: "null payload", status: http.StatusOK, body: `null`},
		{desc: "empty object", status: http.StatusOK, body: `{}`},
		{desc: "array payload", status: http.StatusOK, body: `[1, 2, 3]`},
		{desc: "mistyped ranks", status: http.StatusOK, body: `{"ranks": "none"}`},
	}
	for _, test := range noData {
		test := test
		t.Run("returns no data on "+test.desc, func(t *testing.T) {
			t.Parallel()

			server, hits := serve(t, test.status, test.body)
			client := New(mocks.NoopLogger, server.URL, time.Second)

			board := client.Fetch(context.Background(), mocks.GenericPeerIDs)

			assert.Nil(t, board)
			assert.Equal(t, int64(1), atomic.LoadInt64(hits))
		})
	}

	t.Run("returns no data on timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := New(mocks.NoopLogger, server.URL, 50*time.Millisecond)

		board := client.Fetch(context.Background(), mocks.GenericPeerIDs)

		assert.Nil(t, board)
	})

	t.Run("returns no data on connection failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		endpoint := server.URL
		server.Close()

		client := New(mocks.NoopLogger, endpoint, time.Second)

		board := client.Fetch(context.Background(), mocks.GenericPeerIDs)

		assert.Nil(t, board)
	})
}

func TestMetricsFetcher_Fetch(t *testing.T) {
	server, _ := serve(t, http.StatusOK, mocks.GenericPayload)

	reg := prometheus.NewRegistry()
	fetch := NewMetricsFetcher(New(mocks.NoopLogger, server.URL, time.Second), reg)

	board := fetch.Fetch(context.Background(), mocks.GenericPeerIDs)
	require.NotNil(t, board)

	board = fetch.Fetch(context.Background(), nil)
	assert.Nil(t, board)

	assert.Equal(t, float64(1), testutil.ToFloat64(fetch.requests.With(prometheus.Labels{labelResult: resultData})))
	assert.Equal(t, float64(1), testutil.ToFloat64(fetch.requests.With(prometheus.Labels{labelResult: resultNoData})))
	assert.Equal(t, float64(2), testutil.ToFloat64(fetch.records))
}
