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
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidAddress checks whether the given string is a usable EOA address. It
// must consist of 40 hexadecimal characters, optionally prefixed with `0x`.
// Addresses in a single case are accepted as-is; mixed-case addresses have to
// carry a correct EIP-55 checksum.
func ValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return true
	}

	return "0x"+digits == common.HexToAddress(digits).Hex()
}
