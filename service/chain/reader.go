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
package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/optakt/swarm-tracker/models/swarm"
)

// Reader retrieves the peer IDs registered for an EOA address on the swarm
// coordinator contract.
type Reader struct {
	log      zerolog.Logger
	backend  Backend
	contract common.Address
	abi      *abi.ABI
}

// New creates a reader for the given contract. If the contract binding can't
// be set up, the reader is still returned, but every lookup comes back empty.
func New(log zerolog.Logger, backend Backend, contract string) *Reader {

	r := Reader{
		log:     log.With().Str("component", "chain_reader").Logger(),
		backend: backend,
	}

	binding, err := bind(contract)
	if err != nil {
		r.log.Error().Str("contract", contract).Err(err).Msg("could not initialize contract binding")
		return &r
	}

	r.contract = common.HexToAddress(contract)
	r.abi = binding

	return &r
}

func bind(contract string) (*abi.ABI, error) {
	if !swarm.ValidAddress(contract) {
		return nil, fmt.Errorf("invalid contract address")
	}
	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return nil, fmt.Errorf("could not parse contract ABI: %w", err)
	}
	return &parsed, nil
}

// PeerIDs returns the peer IDs registered for the given address. Malformed
// addresses and failed calls both result in an empty list.
func (r *Reader) PeerIDs(ctx context.Context, address string) []string {

	if r.abi == nil {
		return nil
	}

	if !swarm.ValidAddress(address) {
		r.log.Debug().Str("address", address).Msg("skipping lookup for malformed address")
		return nil
	}

	peers, err := r.lookup(ctx, common.HexToAddress(address))
	if err != nil {
		r.log.Warn().Str("address", address).Err(err).Msg("could not get peer IDs")
		return nil
	}

	return peers
}

func (r *Reader) lookup(ctx context.Context, address common.Address) ([]string, error) {

	// The contract works on batches of addresses; we always look up a single
	// one and only use the first entry of the result.
	input, err := r.abi.Pack(methodPeerID, []common.Address{address})
	if err != nil {
		return nil, fmt.Errorf("could not pack call arguments: %w", err)
	}

	msg := ethereum.CallMsg{
		To:   &r.contract,
		Data: input,
	}
	output, err := r.backend.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("could not call contract: %w", err)
	}

	values, err := r.abi.Unpack(methodPeerID, output)
	if err != nil {
		return nil, fmt.Errorf("could not unpack call result: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected number of return values (have: %d, want: 1)", len(values))
	}
	batch, ok := values[0].([][]string)
	if !ok {
		return nil, fmt.Errorf("unexpected return type (%T)", values[0])
	}
	if len(batch) == 0 {
		return nil, nil
	}

	return batch[0], nil
}

// Connected reports whether the RPC endpoint is reachable.
func (r *Reader) Connected(ctx context.Context) bool {
	_, err := r.backend.BlockNumber(ctx)
	if err != nil {
		r.log.Debug().Err(err).Msg("RPC endpoint not reachable")
		return false
	}
	return true
}
