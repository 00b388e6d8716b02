// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package e2e

import (
	"flag"
	"fmt"
	"os"

	"github.com/cspr-tools/cctlnet/tests/fixture/cctl"
	"github.com/cspr-tools/cctlnet/tests/fixture/cctl/flags"
)

const ContractWasmEnvName = "CCTL_E2E_CONTRACT_WASM"

type FlagVars struct {
	startNetworkVars *flags.StartNetworkVars
	contractWasmPath string
}

// NetworkConfig returns the configuration of the network to test against.
// Contracts are deployed by the tests themselves.
func (v *FlagVars) NetworkConfig() (cctl.NetworkConfig, error) {
	cfg, err := v.startNetworkVars.GetNetworkConfig()
	if err != nil {
		return cctl.NetworkConfig{}, err
	}
	cfg.Contracts = nil
	return cfg, nil
}

func (v *FlagVars) ContractWasmPath() string {
	return v.contractWasmPath
}

func RegisterFlags() *FlagVars {
	vars := FlagVars{
		startNetworkVars: flags.NewStartNetworkFlagVars(),
	}
	flag.StringVar(
		&vars.contractWasmPath,
		"contract-wasm",
		os.Getenv(ContractWasmEnvName),
		fmt.Sprintf("[optional] the wasm of a contract to install. Its test is skipped if empty. Also possible to configure via the %s env variable.", ContractWasmEnvName),
	)
	return &vars
}
