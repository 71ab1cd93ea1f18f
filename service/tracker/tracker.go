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
package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/swarm-tracker/models/swarm"
	"github.com/optakt/swarm-tracker/service/presenter"
)

// Tracker combines the on-chain peer registry with the leaderboard to report
// on the nodes run by an address. It holds no mutable state and can serve
// concurrent requests.
type Tracker struct {
	log     zerolog.Logger
	chain   ChainReader
	fetch   Fetcher
	present *presenter.Presenter
	now     func() time.Time
}

// New creates a tracker on top of the given chain reader and leaderboard
// fetcher.
func New(log zerolog.Logger, chain ChainReader, fetch Fetcher, present *presenter.Presenter, options ...Option) *Tracker {

	t := Tracker{
		log:     log.With().Str("component", "tracker").Logger(),
		chain:   chain,
		fetch:   fetch,
		present: present,
		now:     time.Now,
	}

	for _, option := range options {
		option(&t)
	}

	return &t
}

// Track validates the given address, looks up its peers and returns the
// presented leaderboard data for them.
func (t *Tracker) Track(ctx context.Context, eoa string) (*swarm.Report, error) {

	eoa = strings.TrimSpace(eoa)
	if eoa == "" {
		return nil, swarm.ErrAddressRequired
	}
	if !swarm.ValidAddress(eoa) {
		return nil, fmt.Errorf("%w (address: %s)", swarm.ErrInvalidAddress, eoa)
	}

	peerIDs, board, err := t.gather(ctx, eoa)
	if err != nil {
		return nil, err
	}

	report := t.present.Report(eoa, len(peerIDs), board, t.now())

	t.log.Debug().
		Str("eoa", eoa).
		Int("peers", len(peerIDs)).
		Int("records", len(board.Ranks)).
		Msg("address tracked")

	return report, nil
}

// Lookup returns the peer IDs of the given address along with the leaderboard
// payload exactly as received. The address is used as given.
func (t *Tracker) Lookup(ctx context.Context, eoa string) (*swarm.Lookup, error) {

	peerIDs, board, err := t.gather(ctx, eoa)
	if err != nil {
		return nil, err
	}

	lookup := swarm.Lookup{
		EOA:       eoa,
		PeerIDs:   peerIDs,
		Data:      board.Raw,
		Timestamp: t.now().Format(time.RFC3339),
	}

	return &lookup, nil
}

// Health reports on the availability of the chain endpoint.
func (t *Tracker) Health(ctx context.Context) swarm.Health {
	h := swarm.Health{
		Status:    swarm.StatusHealthy,
		Timestamp: t.now().Format(time.RFC3339),
		Connected: t.chain.Connected(ctx),
	}
	return h
}

func (t *Tracker) gather(ctx context.Context, eoa string) ([]string, *swarm.Leaderboard, error) {

	// Both lookups absorb their own failures, so a cancelled request would
	// otherwise be reported as a missing result.
	peerIDs := t.chain.PeerIDs(ctx, eoa)
	if ctx.Err() != nil {
		return nil, nil, fmt.Errorf("could not look up peer IDs: %w", ctx.Err())
	}
	if len(peerIDs) == 0 {
		return nil, nil, fmt.Errorf("%w (address: %s)", swarm.ErrNoNodes, eoa)
	}

	board := t.fetch.Fetch(ctx, peerIDs)
	if ctx.Err() != nil {
		return nil, nil, fmt.Errorf("could not fetch leaderboard: %w", ctx.Err())
	}
	if board == nil {
		return nil, nil, fmt.Errorf("%w (address: %s, peers: %d)", swarm.ErrUnavailable, eoa, len(peerIDs))
	}

	return peerIDs, board, nil
}
