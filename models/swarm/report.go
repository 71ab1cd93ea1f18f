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
)

// Node status values.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// LastSeen is the display form of a peer's last-seen timestamp.
type LastSeen struct {
	Formatted string `json:"formatted"`
	Ago       string `json:"ago"`
	Online    bool   `json:"is_online"`
}

// Node is a single presented leaderboard entry.
type Node struct {
	Index        uint            `json:"node_id"`
	PeerID       string          `json:"peer_id"`
	Rank         json.RawMessage `json:"rank"`
	TotalWins    json.Number     `json:"total_wins"`
	TotalRewards json.Number     `json:"total_rewards"`
	LastSeen     LastSeen        `json:"last_seen"`
	Status       string          `json:"status"`
}

// Summary aggregates leaderboard-wide counts with the number of peers that
// belong to the queried address.
type Summary struct {
	TotalNodes  json.Number `json:"total_nodes"`
	RankedNodes json.Number `json:"ranked_nodes"`
	YourNodes   int         `json:"your_nodes"`
}

// Report is the presented result of tracking an address.
type Report struct {
	EOA       string  `json:"eoa"`
	Nodes     []Node  `json:"nodes"`
	Stats     Summary `json:"stats"`
	Timestamp string  `json:"timestamp"`
}

// Lookup is the unprocessed result of tracking an address, with the peer IDs
// found on-chain and the leaderboard data as returned by the API.
type Lookup struct {
	EOA       string          `json:"eoa"`
	PeerIDs   []string        `json:"peer_ids"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// StatusHealthy is the only status reported by a running service.
const StatusHealthy = "healthy"

// Health describes the state of the service and its chain endpoint.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Connected bool   `json:"web3_connected"`
}
