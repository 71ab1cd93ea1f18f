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
	"fmt"
	"net/url"
	"time"
	_ "time/tzdata"

	"github.com/hashicorp/go-multierror"
)

// Endpoints and contract of the Gensyn testnet swarm.
const (
	GensynRPC         = "https://gensyn-testnet.g.alchemy.com/public"
	GensynContract    = "0xFaD7C5e93f28257429569B854151A1B8DCD404c2"
	GensynLeaderboard = "https://gswarm.dev/api/user/data"
)

// Display zone used when rendering last-seen timestamps.
const (
	DisplayZone  = "Asia/Kolkata"
	DisplayLabel = "IST"
)

// DefaultTimeout bounds every request made to the leaderboard API.
const DefaultTimeout = 30 * time.Second

// Params holds the network parameters a tracker instance works against.
type Params struct {
	RPC         string
	Contract    string
	Leaderboard string
	Timeout     time.Duration
	Zone        string
	Label       string
}

// DefaultParams points at the Gensyn testnet.
var DefaultParams = Params{
	RPC:         GensynRPC,
	Contract:    GensynContract,
	Leaderboard: GensynLeaderboard,
	Timeout:     DefaultTimeout,
	Zone:        DisplayZone,
	Label:       DisplayLabel,
}

// Validate checks all parameters and reports every problem it finds at once.
func (p Params) Validate() error {

	var errs *multierror.Error

	err := checkURL(p.RPC)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid RPC endpoint (%s): %w", p.RPC, err))
	}
	if !ValidAddress(p.Contract) {
		errs = multierror.Append(errs, fmt.Errorf("invalid contract address (%s)", p.Contract))
	}
	err = checkURL(p.Leaderboard)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid leaderboard endpoint (%s): %w", p.Leaderboard, err))
	}
	if p.Timeout <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("invalid timeout (%s)", p.Timeout))
	}
	_, err = time.LoadLocation(p.Zone)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid display zone (%s): %w", p.Zone, err))
	}
	if p.Label == "" {
		errs = multierror.Append(errs, fmt.Errorf("missing display zone label"))
	}

	return errs.ErrorOrNil()
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
