// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// e2e implements the e2e tests.
package e2e_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/require"

	"github.com/cspr-tools/cctlnet/casper"
	"github.com/cspr-tools/cctlnet/tests"
	"github.com/cspr-tools/cctlnet/tests/fixture/cctl"
	"github.com/cspr-tools/cctlnet/tests/fixture/e2e"
	"github.com/cspr-tools/cctlnet/version"

	ginkgo "github.com/onsi/ginkgo/v2"
)

func TestE2E(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "cctlnet e2e test suites")
}

var flagVars *e2e.FlagVars

func init() {
	flagVars = e2e.RegisterFlags()
}

var _ = ginkgo.BeforeEach(func() {
	if err := e2e.CheckCommands(); err != nil {
		ginkgo.Skip(err.Error())
	}
})

var _ = e2e.Describe("network", func() {
	ginkgo.It("starts and terminates", func() {
		require := require.New(ginkgo.GinkgoT())
		log := tests.NewDefaultLogger("e2e")

		cfg, err := flagVars.NetworkConfig()
		require.NoError(err)
		network := e2e.StartNetwork(log, cfg)
		require.NotEmpty(network.Nodes)
		require.NotEmpty(network.Sidecars)

		for _, sidecar := range network.Sidecars {
			if sidecar.State != cctl.Running {
				continue
			}
			client := casper.NewClient(sidecar.RPCURI(), log)
			gomega.Eventually(func() string {
				status, err := client.GetNodeStatus(e2e.ContextWithTimeout(e2e.DefaultTimeout))
				if err != nil {
					return err.Error()
				}
				return status.ReactorState
			}, e2e.DefaultTimeout, e2e.DefaultPollingInterval).Should(gomega.Equal(casper.ReactorStateValidate))
		}
	})

	ginkgo.It("deploys a contract", func() {
		if len(flagVars.ContractWasmPath()) == 0 {
			ginkgo.Skip("no contract wasm configured")
		}
		require := require.New(ginkgo.GinkgoT())
		log := tests.NewDefaultLogger("e2e")

		cfg, err := flagVars.NetworkConfig()
		require.NoError(err)
		hashName := "kairos_contract_package_hash"
		cfg.Contracts = []cctl.DeployableContract{{
			HashName: hashName,
			Path:     flagVars.ContractWasmPath(),
			RuntimeArgs: casper.RuntimeArgs{}.With(
				"initial_trie_root",
				casper.NewCLValueOptionNone(casper.ByteArrayCLType(32)),
			),
		}}
		network := e2e.StartNetwork(log, cfg)

		status, err := casper.NewClient(network.Sidecars[0].RPCURI(), log).GetNodeStatus(context.Background())
		require.NoError(err)
		supported, err := version.IsNodeAPISupported(status.APIVersion)
		require.NoError(err)
		require.True(supported)

		hashPath := filepath.Join(network.ContractsDir(), hashName)
		contents, err := os.ReadFile(hashPath)
		require.NoError(err)
		require.Len(strings.TrimSpace(string(contents)), 2*casper.HashLen)

		hash, err := network.GetContractHash(hashName)
		require.NoError(err)
		require.NotEqual(casper.EmptyHash, hash)
	})
})
