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

// Name of the contract method that maps EOA addresses to peer IDs.
const methodPeerID = "getPeerId"

// contractABI describes the single view function of the swarm coordinator
// contract we rely on.
const contractABI = `[
	{
		"name": "getPeerId",
		"type": "function",
		"stateMutability": "view",
		"inputs": [{"name": "eoaAddresses", "type": "address[]"}],
		"outputs": [{"name": "", "type": "string[][]"}]
	}
]`
