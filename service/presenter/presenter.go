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
package presenter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/optakt/swarm-tracker/models/swarm"
)

const (
	never   = "Never"
	unknown = "Unknown"

	layoutDisplay   = "2006-01-02 15:04:05"
	onlineThreshold = 10
	minutesPerHour  = 60
	minutesPerDay   = 24 * minutesPerHour
)

var (
	notRanked = json.RawMessage(`"N/A"`)
	noCount   = json.Number("0")
)

// IST is Indian Standard Time, which has had a fixed offset of UTC+5:30
// since 1945.
var IST = time.FixedZone(swarm.DisplayLabel, 5*60*60+30*60)

// Presenter turns leaderboard records into display-ready nodes, rendering all
// timestamps in a single display zone.
type Presenter struct {
	zone  *time.Location
	label string
}

// New creates a presenter that renders timestamps in the given zone, suffixed
// with the given label.
func New(zone *time.Location, label string) *Presenter {
	p := Presenter{
		zone:  zone,
		label: label,
	}
	return &p
}

// Default creates a presenter for Indian Standard Time.
func Default() *Presenter {
	return New(IST, swarm.DisplayLabel)
}

// LastSeen formats the raw last-seen timestamp of a peer relative to the given
// current time. Timestamps that can't be parsed are passed through untouched.
func (p *Presenter) LastSeen(raw string, now time.Time) swarm.LastSeen {

	if raw == "" {
		return swarm.LastSeen{
			Formatted: never,
			Ago:       never,
			Online:    false,
		}
	}

	seen, err := parse(raw)
	if err != nil {
		return swarm.LastSeen{
			Formatted: raw,
			Ago:       unknown,
			Online:    false,
		}
	}
	seen = seen.In(p.zone)

	minutes := elapsedMinutes(seen, now.In(p.zone))

	var ago string
	switch {
	case minutes < minutesPerHour:
		ago = fmt.Sprintf("%dm ago", minutes)
	case minutes < minutesPerDay:
		ago = fmt.Sprintf("%dh ago", minutes/minutesPerHour)
	default:
		ago = fmt.Sprintf("%dd ago", minutes/minutesPerDay)
	}

	last := swarm.LastSeen{
		Formatted: seen.Format(layoutDisplay) + " " + p.label,
		Ago:       ago,
		Online:    minutes < onlineThreshold,
	}

	return last
}

// elapsedMinutes returns the number of whole minutes between the two instants,
// rounded towards negative infinity. It works on Unix seconds, as a
// `time.Duration` can't span more than about 292 years.
func elapsedMinutes(from time.Time, to time.Time) int64 {
	seconds := to.Unix() - from.Unix()
	if to.Nanosecond() < from.Nanosecond() {
		seconds--
	}
	minutes := seconds / 60
	if seconds%60 < 0 {
		minutes--
	}
	return minutes
}

// count defaults a missing count to zero.
func count(n json.Number) json.Number {
	if n == "" {
		return noCount
	}
	return n
}

// Nodes presents the given records in order, numbering them from one.
func (p *Presenter) Nodes(records []swarm.RankRecord, now time.Time) []swarm.Node {

	nodes := make([]swarm.Node, 0, len(records))
	for i, record := range records {

		rank := record.Rank
		if len(rank) == 0 || string(rank) == "null" {
			rank = notRanked
		}

		seen := p.LastSeen(record.LastSeen, now)
		status := swarm.StatusOffline
		if seen.Online {
			status = swarm.StatusOnline
		}

		node := swarm.Node{
			Index:        uint(i + 1),
			PeerID:       record.PeerID,
			Rank:         rank,
			TotalWins:    count(record.TotalWins),
			TotalRewards: json.Number(record.TotalRewards.String()),
			LastSeen:     seen,
			Status:       status,
		}
		nodes = append(nodes, node)
	}

	return nodes
}

// Summary combines the leaderboard-wide counts with the number of peers that
// were queried. The latter can differ from the number of records returned.
func (p *Presenter) Summary(stats swarm.Stats, queried int) swarm.Summary {
	s := swarm.Summary{
		TotalNodes:  count(stats.TotalNodes),
		RankedNodes: count(stats.RankedNodes),
		YourNodes:   queried,
	}
	return s
}

// Timestamp renders the given time in the display zone.
func (p *Presenter) Timestamp(now time.Time) string {
	return now.In(p.zone).Format(layoutDisplay)
}

// Report assembles the full report for an address.
func (p *Presenter) Report(eoa string, queried int, board *swarm.Leaderboard, now time.Time) *swarm.Report {
	r := swarm.Report{
		EOA:       eoa,
		Nodes:     p.Nodes(board.Ranks, now),
		Stats:     p.Summary(board.Stats, queried),
		Timestamp: p.Timestamp(now),
	}
	return &r
}
