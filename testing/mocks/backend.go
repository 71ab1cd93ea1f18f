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
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
)

type Backend struct {
	CallContractFunc func(ctx context.Context, msg ethereum.CallMsg, height *big.Int) ([]byte, error)
	BlockNumberFunc  func(ctx context.Context) (uint64, error)
}

func BaselineBackend(t *testing.T) *Backend {
	t.Helper()

	b := Backend{
		CallContractFunc: func(ctx context.Context, msg ethereum.CallMsg, height *big.Int) ([]byte, error) {
			return nil, nil
		},
		BlockNumberFunc: func(ctx context.Context) (uint64, error) {
			return 42, nil
		},
	}

	return &b
}

func (b *Backend) CallContract(ctx context.Context, msg ethereum.CallMsg, height *big.Int) ([]byte, error) {
	return b.CallContractFunc(ctx, msg, height)
}

func (b *Backend) BlockNumber(ctx context.Context) (uint64, error) {
	return b.BlockNumberFunc(ctx)
}
