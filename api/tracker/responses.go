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
	"github.com/optakt/swarm-tracker/models/swarm"
)

// ErrorResponse is returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MissingResponse is returned when an address could be tracked, but no data
// was found for it.
type MissingResponse struct {
	Error string       `json:"error"`
	EOA   string       `json:"eoa"`
	Nodes []swarm.Node `json:"nodes"`
}
