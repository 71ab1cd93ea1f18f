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
	"context"
	"testing"
)

type Chain struct {
	PeerIDsFunc   func(ctx context.Context, address string) []string
	ConnectedFunc func(ctx context.Context) bool
}

func BaselineChain(t *testing.T) *Chain {
	t.Helper()

	c := Chain{
		PeerIDsFunc: func(ctx context.Context, address string) []string {
			return GenericPeerIDs
		},
		ConnectedFunc: func(ctx context.Context) bool {
			return true
		},
	}

	return &c
}

func (c *Chain) PeerIDs(ctx context.Context, address string) []string {
	return c.PeerIDsFunc(ctx, address)
}

func (c *Chain) Connected(ctx context.Context) bool {
	return c.ConnectedFunc(ctx)
}
