// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cspr-tools/cctlnet/casper"
)

func TestParseDeployableContract(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    DeployableContract
		expectedErr error
	}{
		{
			name:  "shorthand",
			input: "counter_package_hash:/wasm/counter.wasm",
			expected: DeployableContract{
				HashName: "counter_package_hash",
				Path:     "/wasm/counter.wasm",
			},
		},
		{
			name:  "shorthand keeps colons in the path",
			input: "counter:C:/wasm/counter.wasm",
			expected: DeployableContract{
				HashName: "counter",
				Path:     "C:/wasm/counter.wasm",
			},
		},
		{
			name:  "json",
			input: `{"hash_name":"counter","path":"counter.wasm","runtime_args":[["count",{"cl_type":"U8","bytes":"05","parsed":5}]]}`,
			expected: DeployableContract{
				HashName: "counter",
				Path:     "counter.wasm",
				RuntimeArgs: casper.RuntimeArgs{
					{Name: "count", Value: casper.NewCLValueU8(5)},
				},
			},
		},
		{
			name:        "missing separator",
			input:       "counter.wasm",
			expectedErr: errInvalidContract,
		},
		{
			name:        "missing path",
			input:       "counter:",
			expectedErr: errInvalidContract,
		},
		{
			name:        "hash name with separator",
			input:       "../counter:counter.wasm",
			expectedErr: errInvalidHashName,
		},
		{
			name:        "malformed json",
			input:       `{"hash_name":`,
			expectedErr: errInvalidContract,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			contract, err := ParseDeployableContract(test.input)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.Equal(test.expected.HashName, contract.HashName)
			require.Equal(test.expected.Path, contract.Path)
			require.Equal(len(test.expected.RuntimeArgs), len(contract.RuntimeArgs))
			for i, arg := range test.expected.RuntimeArgs {
				require.Equal(arg.Name, contract.RuntimeArgs[i].Name)
				require.Equal(arg.Value.Type, contract.RuntimeArgs[i].Value.Type)
				require.Equal(arg.Value.Bytes, contract.RuntimeArgs[i].Value.Bytes)
			}
		})
	}
}

func TestReadContractsManifest(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "contracts.yaml")
	manifest := `
contracts:
  - hash_name: counter_package_hash
    path: wasm/counter.wasm
    runtime_args:
      - [initial_value, {cl_type: U8, bytes: "05"}]
  - hash_name: registry
    path: /opt/registry.wasm
`
	require.NoError(os.WriteFile(manifestPath, []byte(manifest), 0o600))

	contracts, err := ReadContractsManifest(manifestPath)
	require.NoError(err)
	require.Len(contracts, 2)

	require.Equal("counter_package_hash", contracts[0].HashName)
	require.Equal(filepath.Join(dir, "wasm", "counter.wasm"), contracts[0].Path)
	require.Len(contracts[0].RuntimeArgs, 1)
	require.Equal("initial_value", contracts[0].RuntimeArgs[0].Name)
	require.Equal(casper.SimpleCLType(casper.CLTypeU8), contracts[0].RuntimeArgs[0].Value.Type)
	require.Equal([]byte{5}, contracts[0].RuntimeArgs[0].Value.Bytes)

	require.Equal("/opt/registry.wasm", contracts[1].Path)
	require.Empty(contracts[1].RuntimeArgs)
}

func TestReadContractsManifestInvalid(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "contracts.yaml")
	require.NoError(os.WriteFile(manifestPath, []byte("contracts:\n  - path: counter.wasm\n"), 0o600))

	_, err := ReadContractsManifest(manifestPath)
	require.ErrorIs(err, errInvalidHashName)
}

func TestContractHashRoundTrip(t *testing.T) {
	require := require.New(t)

	dir := filepath.Join(t.TempDir(), contractsDirName)
	var hash casper.Hash
	for i := range hash {
		hash[i] = byte(0xa0 + i)
	}
	require.NoError(WriteContractHash(dir, "counter", hash))

	contents, err := os.ReadFile(filepath.Join(dir, "counter"))
	require.NoError(err)
	require.Equal("a0a1a2a3a4a5a6a7a8a9aaabacadaeafb0b1b2b3b4b5b6b7b8b9babbbcbdbebf", string(contents))

	read, err := ReadContractHash(dir, "counter")
	require.NoError(err)
	require.Equal(hash, read)

	_, err = ReadContractHash(dir, "missing")
	require.ErrorIs(err, os.ErrNotExist)
}
