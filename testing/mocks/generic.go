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
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/optakt/swarm-tracker/models/swarm"
)

// Global variables that can be used for testing. They are non-nil valid values for the types commonly needed
// to test tracker components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericAddress = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	GenericContract = "0xFaD7C5e93f28257429569B854151A1B8DCD404c2"

	GenericPeerIDs = []string{
		"QmXyNyMGsTsm8c4HWpYRQhGZw2FgYzbSD4M4FYHnLsXG6g",
		"QmTo6Ba6wiwEsbXo2kvVdWXJ5i4dJrsVbVUEGCn9BqwyBk",
		"QmWhiaLrx3HRZfgXc2i7KW5nMUNK7P9tRc71yFJdzzGDXJ",
	}

	GenericTime = time.Date(2024, time.January, 1, 0, 5, 0, 0, time.UTC)

	GenericLastSeen = "2024-01-01T00:00:00Z"

	GenericStats = swarm.Stats{
		TotalNodes:  "1024",
		RankedNodes: "768",
	}

	GenericPayload = `{
		"ranks": [
			{
				"peerId": "QmXyNyMGsTsm8c4HWpYRQhGZw2FgYzbSD4M4FYHnLsXG6g",
				"rank": 42,
				"totalWins": 7,
				"totalRewards": 1250.5,
				"lastSeen": "2024-01-01T00:00:00Z"
			},
			{
				"peerId": "QmTo6Ba6wiwEsbXo2kvVdWXJ5i4dJrsVbVUEGCn9BqwyBk"
			}
		],
		"stats": {
			"totalNodes": 1024,
			"rankedNodes": 768
		}
	}`

	GenericLeaderboard = &swarm.Leaderboard{
		Ranks: []swarm.RankRecord{
			{
				PeerID:       GenericPeerIDs[0],
				Rank:         json.RawMessage(`42`),
				TotalWins:    "7",
				TotalRewards: decimal.RequireFromString("1250.5"),
				LastSeen:     GenericLastSeen,
			},
			{
				PeerID:       GenericPeerIDs[1],
				TotalRewards: decimal.Zero,
			},
		},
		Stats: GenericStats,
		Raw:   json.RawMessage(GenericPayload),
	}
)
