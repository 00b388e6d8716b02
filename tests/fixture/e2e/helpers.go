// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package e2e

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cspr-tools/cctlnet/tests"
	"github.com/cspr-tools/cctlnet/tests/fixture/cctl"
	"github.com/cspr-tools/cctlnet/utils/logging"

	ginkgo "github.com/onsi/ginkgo/v2"
)

const (
	// A long default timeout used to timeout failed operations but
	// unlikely to induce flaking due to unexpected resource
	// contention.
	DefaultTimeout = 2 * time.Minute

	DefaultPollingInterval = time.Second
)

var requiredCommands = []string{
	cctl.SetupCommand,
	cctl.StartCommand,
	cctl.NodePortsCommand,
	cctl.SidecarPortsCommand,
	cctl.AwaitBlockCommand,
	cctl.StopCommand,
}

// Describe annotates the tests that need the cctl commands on the PATH.
func Describe(text string, body func()) bool {
	return ginkgo.Describe("[cctl] "+text, body)
}

// CheckCommands reports the first cctl command that cannot be found on the
// PATH.
func CheckCommands() error {
	for _, command := range requiredCommands {
		if _, err := exec.LookPath(command); err != nil {
			return fmt.Errorf("%s is not available: %w", command, err)
		}
	}
	return nil
}

// Helper simplifying use of a timed context by canceling the context on ginkgo teardown.
func ContextWithTimeout(duration time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	ginkgo.DeferCleanup(cancel)
	return ctx
}

// StartNetwork starts a network in a temporary working directory and stops
// it on ginkgo teardown.
func StartNetwork(log logging.Logger, cfg cctl.NetworkConfig) *cctl.Network {
	require := require.New(ginkgo.GinkgoT())

	if len(cfg.WorkingDir) == 0 {
		dir, err := os.MkdirTemp("", "cctl-e2e-")
		require.NoError(err)
		ginkgo.DeferCleanup(func() {
			require.NoError(os.RemoveAll(dir))
		})
		cfg.WorkingDir = dir
	}
	cfg.Stdout = ginkgo.GinkgoWriter
	cfg.Stderr = ginkgo.GinkgoWriter

	network, err := cctl.StartNetwork(context.Background(), log, cfg)
	require.NoError(err)
	ginkgo.DeferCleanup(func() {
		tests.Foutf(ginkgo.GinkgoWriter, "{{yellow}}stopping network in %q{{/}}\n", network.Dir)
		require.NoError(network.Stop(context.Background()))
	})

	tests.Foutf(ginkgo.GinkgoWriter, "{{green}}started network %s in %q{{/}}\n", network.UUID, network.Dir)
	for _, sidecar := range network.Sidecars {
		tests.Foutf(ginkgo.GinkgoWriter, "{{magenta}}sidecar %d{{/}} {{cyan}}%s{{/}}\n", sidecar.ID, sidecar.RPCURI())
	}
	return network
}
