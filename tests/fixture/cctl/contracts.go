// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cspr-tools/cctlnet/casper"
	"github.com/cspr-tools/cctlnet/utils/perms"
)

var (
	errInvalidContract = errors.New("invalid deployable contract")
	errInvalidHashName = errors.New("invalid hash name")
)

// DeployableContract is a contract to install once the network has started.
type DeployableContract struct {
	// Named key of the deployer account under which the contract installs
	// its package.
	HashName    string             `json:"hash_name"`
	RuntimeArgs casper.RuntimeArgs `json:"runtime_args,omitempty"`
	// Path of the wasm bytecode.
	Path string `json:"path"`
}

func (c DeployableContract) Verify() error {
	if err := verifyHashName(c.HashName); err != nil {
		return err
	}
	if c.Path == "" {
		return fmt.Errorf("%w: %q has no path", errInvalidContract, c.HashName)
	}
	return nil
}

func (c DeployableContract) String() string {
	return c.HashName + ":" + c.Path
}

// The hash name is used as a file name in the contracts directory.
func verifyHashName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", errInvalidHashName, name)
	}
	return nil
}

// ParseDeployableContract accepts either a JSON object or the shorthand
// "hash_name:path".
func ParseDeployableContract(s string) (DeployableContract, error) {
	s = strings.TrimSpace(s)
	var contract DeployableContract
	if strings.HasPrefix(s, "{") {
		if err := json.Unmarshal([]byte(s), &contract); err != nil {
			return DeployableContract{}, fmt.Errorf("%w: %w", errInvalidContract, err)
		}
	} else {
		hashName, path, ok := strings.Cut(s, ":")
		if !ok {
			return DeployableContract{}, fmt.Errorf("%w: expected hash_name:path, got %q", errInvalidContract, s)
		}
		contract = DeployableContract{
			HashName: hashName,
			Path:     path,
		}
	}
	return contract, contract.Verify()
}

type contractsManifest struct {
	Contracts []manifestContract `yaml:"contracts"`
}

type manifestContract struct {
	HashName    string    `yaml:"hash_name"`
	Path        string    `yaml:"path"`
	RuntimeArgs yaml.Node `yaml:"runtime_args"`
}

// ReadContractsManifest reads the contracts listed in a YAML manifest such as
//
//	contracts:
//	  - hash_name: counter_package_hash
//	    path: wasm/counter.wasm
//	    runtime_args:
//	      - [initial_value, {cl_type: U8, bytes: "05"}]
//
// Relative paths are resolved against the directory of the manifest.
func ReadContractsManifest(path string) ([]DeployableContract, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contracts manifest: %w", err)
	}
	var manifest contractsManifest
	if err := yaml.Unmarshal(bytes, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse contracts manifest %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	contracts := make([]DeployableContract, 0, len(manifest.Contracts))
	for _, entry := range manifest.Contracts {
		contract := DeployableContract{
			HashName: entry.HashName,
			Path:     entry.Path,
		}
		if contract.Path != "" && !filepath.IsAbs(contract.Path) {
			contract.Path = filepath.Join(baseDir, contract.Path)
		}
		if !entry.RuntimeArgs.IsZero() {
			args, err := decodeRuntimeArgs(&entry.RuntimeArgs)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", errInvalidContract, entry.HashName, err)
			}
			contract.RuntimeArgs = args
		}
		if err := contract.Verify(); err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}

// Runtime args share their JSON representation so the YAML node is re-encoded
// as JSON before decoding.
func decodeRuntimeArgs(node *yaml.Node) (casper.RuntimeArgs, error) {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}
	bytes, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var args casper.RuntimeArgs
	return args, json.Unmarshal(bytes, &args)
}

// WriteContractHash records the address of an installed contract in [dir]
// as lowercase hex.
func WriteContractHash(dir string, hashName string, hash casper.Hash) error {
	if err := verifyHashName(hashName); err != nil {
		return err
	}
	path := filepath.Join(dir, hashName)
	if err := perms.WriteFile(path, []byte(hash.String()), perms.ReadWrite); err != nil {
		return fmt.Errorf("failed to write contract hash to %s: %w", path, err)
	}
	return nil
}

func ReadContractHash(dir string, hashName string) (casper.Hash, error) {
	if err := verifyHashName(hashName); err != nil {
		return casper.EmptyHash, err
	}
	path := filepath.Join(dir, hashName)
	bytes, err := os.ReadFile(path)
	if err != nil {
		return casper.EmptyHash, fmt.Errorf("failed to read contract hash from %s: %w", path, err)
	}
	hash, err := casper.HashFromHex(strings.TrimSpace(string(bytes)))
	if err != nil {
		return casper.EmptyHash, fmt.Errorf("failed to decode contract hash from %s: %w", path, err)
	}
	return hash, nil
}
