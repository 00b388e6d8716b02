// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flags

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/cspr-tools/cctlnet/tests/fixture/cctl"
)

const (
	WorkingDirFlag     = "working-dir"
	ChainspecPathFlag  = "chainspec-path"
	ConfigPathFlag     = "config-path"
	ChainNameFlag      = "chain-name"
	DeployContractFlag = "deploy-contract"
	ContractsFileFlag  = "contracts-file"
)

// StartNetworkVars collects the configuration of a network to start.
type StartNetworkVars struct {
	WorkingDir    string
	ChainspecPath string
	ConfigPath    string
	ChainName     string
	ContractsFile string

	contracts contractsValue
}

// NewStartNetworkFlagVars registers the start network flags with the
// standard flag package.
func NewStartNetworkFlagVars() *StartNetworkVars {
	v := &StartNetworkVars{}
	v.register(flag.StringVar, func(value *contractsValue, name string, usage string) {
		flag.Var(value, name, usage)
	})
	return v
}

// NewStartNetworkFlagSetVars registers the start network flags with
// [flagSet].
func NewStartNetworkFlagSetVars(flagSet *pflag.FlagSet) *StartNetworkVars {
	v := &StartNetworkVars{}
	v.register(flagSet.StringVar, func(value *contractsValue, name string, usage string) {
		flagSet.Var(value, name, usage)
	})
	return v
}

func (v *StartNetworkVars) register(stringVar varFunc[string], contractsVar valueFunc[*contractsValue]) {
	stringVar(
		&v.WorkingDir,
		WorkingDirFlag,
		os.Getenv(cctl.WorkingDirEnvName),
		fmt.Sprintf(
			"The directory to store the network assets in. A temporary directory is used if empty. Also possible to configure via the %s env variable.",
			cctl.WorkingDirEnvName,
		),
	)
	stringVar(
		&v.ChainspecPath,
		ChainspecPathFlag,
		os.Getenv(cctl.ChainspecEnvName),
		fmt.Sprintf(
			"The chainspec to set the network up with. Also possible to configure via the %s env variable.",
			cctl.ChainspecEnvName,
		),
	)
	stringVar(
		&v.ConfigPath,
		ConfigPathFlag,
		os.Getenv(cctl.NodeConfigEnvName),
		fmt.Sprintf(
			"The node config to set the network up with. Also possible to configure via the %s env variable.",
			cctl.NodeConfigEnvName,
		),
	)
	stringVar(
		&v.ChainName,
		ChainNameFlag,
		"",
		fmt.Sprintf("The chain name to build deploys for. Defaults to the chainspec network name or %s.", cctl.DefaultChainName),
	)
	stringVar(
		&v.ContractsFile,
		ContractsFileFlag,
		"",
		"[optional] A YAML manifest of contracts to deploy once the network has started",
	)
	contractsVar(
		&v.contracts,
		DeployContractFlag,
		"A contract to deploy once the network has started, as hash_name:path or a JSON object. May be repeated.",
	)
}

// Contracts returns the contracts of the manifest followed by those given on
// the command line.
func (v *StartNetworkVars) Contracts() ([]cctl.DeployableContract, error) {
	var contracts []cctl.DeployableContract
	if len(v.ContractsFile) > 0 {
		fromFile, err := cctl.ReadContractsManifest(v.ContractsFile)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, fromFile...)
	}
	return append(contracts, v.contracts.contracts...), nil
}

func (v *StartNetworkVars) GetNetworkConfig() (cctl.NetworkConfig, error) {
	contracts, err := v.Contracts()
	if err != nil {
		return cctl.NetworkConfig{}, err
	}
	return cctl.NetworkConfig{
		WorkingDir:    v.WorkingDir,
		ChainspecPath: v.ChainspecPath,
		ConfigPath:    v.ConfigPath,
		ChainName:     v.ChainName,
		Contracts:     contracts,
	}, nil
}
