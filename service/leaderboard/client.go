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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/swarm-tracker/models/swarm"
)

// maxBody caps how much of a leaderboard response we are willing to read.
const maxBody = 16 << 20

var errEmpty = errors.New("empty response payload")

type request struct {
	PeerIDs []string `json:"peerIds"`
}

// Client retrieves rank and status data for peers from the leaderboard API.
type Client struct {
	log      zerolog.Logger
	http     *http.Client
	endpoint string
}

// New creates a client submitting requests to the given endpoint. Each
// request is bounded by the given timeout.
func New(log zerolog.Logger, endpoint string, timeout time.Duration, options ...Option) *Client {

	c := Client{
		log:      log.With().Str("component", "leaderboard_client").Logger(),
		http:     &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}

	for _, option := range options {
		option(&c)
	}

	return &c
}

// Fetch returns the leaderboard data for the given peers. It returns nil when
// there is nothing to ask for, or when the API gave no usable answer.
func (c *Client) Fetch(ctx context.Context, peerIDs []string) *swarm.Leaderboard {

	if len(peerIDs) == 0 {
		return nil
	}

	board, err := c.fetch(ctx, peerIDs)
	if err != nil {
		c.log.Warn().Int("peers", len(peerIDs)).Err(err).Msg("could not fetch leaderboard data")
		return nil
	}

	return board
}

func (c *Client) fetch(ctx context.Context, peerIDs []string) (*swarm.Leaderboard, error) {

	payload, err := json.Marshal(request{PeerIDs: peerIDs})
	if err != nil {
		return nil, fmt.Errorf("could not encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not execute request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("could not read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code (have: %d, want: %d): %s", res.StatusCode, http.StatusOK, body)
	}

	// A `null` or an empty object carries no data, even though it is valid.
	var fields map[string]json.RawMessage
	err = json.Unmarshal(body, &fields)
	if err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	if len(fields) == 0 {
		return nil, errEmpty
	}

	var board swarm.Leaderboard
	err = json.Unmarshal(body, &board)
	if err != nil {
		return nil, fmt.Errorf("could not decode leaderboard: %w", err)
	}
	board.Raw = body

	return &board, nil
}
