// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

// NodeStatus is the subset of info_get_status used to check that a node is
// participating in consensus.
type NodeStatus struct {
	APIVersion     string `json:"api_version"`
	ChainspecName  string `json:"chainspec_name"`
	ReactorState   string `json:"reactor_state"`
	BuildVersion   string `json:"build_version"`
	LastAddedBlock *struct {
		Hash   Hash   `json:"hash"`
		Height uint64 `json:"height"`
	} `json:"last_added_block_info"`
}

// ReactorStateValidate is reported by a node that is validating blocks.
const ReactorStateValidate = "Validate"
