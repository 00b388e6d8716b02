// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import "time"

const (
	// Constants defining the names of shell variables whose value can
	// configure network orchestration.
	ChainspecEnvName  = "CCTL_CASPER_CHAINSPEC"
	NodeConfigEnvName = "CCTL_CASPER_NODE_CONFIG"
	WorkingDirEnvName = "CCTL_WORKING_DIR"

	// Passed to every cctl command to identify the network's assets.
	AssetsEnvName = "CCTL_ASSETS"

	// Chain name cctl networks are configured with unless the chainspec
	// says otherwise.
	DefaultChainName = "cspr-dev-cctl"

	// Maximum amount in motes a contract deploy may spend on gas.
	MaxGasFeePaymentAmount = 10_000_000_000_000

	DeployTTL = time.Minute

	// How long to wait for a submitted deploy to be executed.
	MaxContractInitWaitTime = 60 * time.Second

	assetsDirName    = "assets"
	contractsDirName = "contracts"
	lockFilename     = "assets.lock"
	tempDirPattern   = "cctl-"
)

// Path of the key used to sign contract deploys, relative to the working
// directory.
var deployerKeyPath = []string{assetsDirName, "users", "user-1", "secret_key.pem"}
