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
package swarm

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// RankRecord is the leaderboard entry of a single peer. Rank is kept as raw
// JSON because the leaderboard reports unranked peers with a textual marker
// instead of a position. Counts are kept as numbers of any form, so that a
// count sent as `7.0` does not invalidate the whole leaderboard.
type RankRecord struct {
	PeerID       string          `json:"peerId"`
	Rank         json.RawMessage `json:"rank,omitempty"`
	TotalWins    json.Number     `json:"totalWins"`
	TotalRewards decimal.Decimal `json:"totalRewards"`
	LastSeen     string          `json:"lastSeen"`
}

// Stats describes the whole leaderboard, not only the queried peers.
type Stats struct {
	TotalNodes  json.Number `json:"totalNodes"`
	RankedNodes json.Number `json:"rankedNodes"`
}

// Leaderboard is the payload returned by the leaderboard API. Raw holds the
// payload exactly as it was received.
type Leaderboard struct {
	Ranks []RankRecord    `json:"ranks"`
	Stats Stats           `json:"stats"`
	Raw   json.RawMessage `json:"-"`
}
