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

	"github.com/optakt/swarm-tracker/models/swarm"
)

// Tracker is what the controller needs to answer requests.
type Tracker interface {
	Track(ctx context.Context, eoa string) (*swarm.Report, error)
	Lookup(ctx context.Context, eoa string) (*swarm.Lookup, error)
	Health(ctx context.Context) swarm.Health
}
