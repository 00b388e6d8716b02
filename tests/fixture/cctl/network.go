// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cspr-tools/cctlnet/casper"
	"github.com/cspr-tools/cctlnet/utils/crypto"
	"github.com/cspr-tools/cctlnet/utils/logging"
	"github.com/cspr-tools/cctlnet/utils/perms"
)

const networkFilename = "network.json"

var (
	ErrNetworkLocked = errors.New("network directory is in use")

	errNoSidecars = errors.New("network has no sidecar to deploy contracts through")
)

// ClientFactory creates the RPC client used to talk to the node serving
// [uri].
type ClientFactory func(uri string, log logging.Logger) casper.Client

// NetworkConfig collects the inputs for starting a network.
type NetworkConfig struct {
	// Directory holding the network assets. A temporary directory is
	// created when empty.
	WorkingDir string

	// Chainspec and node config passed to cctl. Default to the values of
	// CCTL_CASPER_CHAINSPEC and CCTL_CASPER_NODE_CONFIG.
	ChainspecPath string
	ConfigPath    string

	// Chain name deploys are built for. Defaults to the name in the
	// chainspec written by setup and then to DefaultChainName.
	ChainName string

	// Contracts to install, in order, once the network is producing blocks.
	Contracts []DeployableContract

	Runner        CommandRunner
	ClientFactory ClientFactory
	Confirmation  ConfirmationConfig

	// Receive the output of the stop command. Default to os.Stdout and
	// os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Network is a running cctl network.
type Network struct {
	// Uniquely identifies this instance of the network
	UUID string `json:"uuid"`

	// Working directory of the network
	Dir string `json:"dir"`

	ChainName string     `json:"chainName"`
	Nodes     []*Node    `json:"nodes"`
	Sidecars  []*Sidecar `json:"sidecars"`

	log    logging.Logger
	runner CommandRunner
	stdout io.Writer
	stderr io.Writer

	lock     *os.File
	stopOnce sync.Once
	stopErr  error
}

// StartNetwork sets up and starts a cctl network, waits for it to produce
// its first block and installs the configured contracts. Once the network
// has been started, any later failure stops it again before returning.
//
// Callers own the returned network and must call Stop when done with it.
func StartNetwork(ctx context.Context, log logging.Logger, cfg NetworkConfig) (*Network, error) {
	dir, err := ensureWorkingDir(cfg.WorkingDir)
	if err != nil {
		return nil, err
	}
	log.Info("working directory", zap.String("dir", dir))

	if cfg.ChainspecPath == "" {
		cfg.ChainspecPath = os.Getenv(ChainspecEnvName)
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = os.Getenv(NodeConfigEnvName)
	}

	lock, err := acquireLock(filepath.Join(dir, lockFilename))
	if err != nil {
		return nil, err
	}

	network := &Network{
		UUID:   uuid.NewString(),
		Dir:    dir,
		log:    log,
		runner: cfg.Runner,
		stdout: cfg.Stdout,
		stderr: cfg.Stderr,
		lock:   lock,
	}
	network.setDefaults()

	if err := network.setup(ctx, cfg.ChainspecPath, cfg.ConfigPath); err != nil {
		return nil, errors.Join(err, network.releaseLock())
	}
	if network.ChainName, err = resolveChainName(cfg.ChainName, network.AssetsDir()); err != nil {
		return nil, errors.Join(err, network.releaseLock())
	}
	if err := network.start(ctx, cfg); err != nil {
		return nil, errors.Join(err, network.Stop(ctx))
	}
	return network, nil
}

func ensureWorkingDir(dir string) (string, error) {
	if dir == "" {
		tmpDir, err := os.MkdirTemp("", tempDirPattern)
		if err != nil {
			return "", fmt.Errorf("failed to create working directory: %w", err)
		}
		dir = tmpDir
	} else if err := os.MkdirAll(dir, perms.ReadWriteExecute); err != nil {
		return "", fmt.Errorf("failed to create working directory: %w", err)
	}
	return toCanonicalDir(dir)
}

// Ensure a real and absolute working dir so the assets path handed to cctl
// does not depend on the current directory.
func toCanonicalDir(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(absDir)
}

func (n *Network) setDefaults() {
	if n.log == nil {
		n.log = logging.NoLog{}
	}
	if n.runner == nil {
		n.runner = NewCommandRunner(n.log, n.AssetsDir())
	}
	if n.stdout == nil {
		n.stdout = os.Stdout
	}
	if n.stderr == nil {
		n.stderr = os.Stderr
	}
}

func (n *Network) AssetsDir() string {
	return filepath.Join(n.Dir, assetsDirName)
}

func (n *Network) ContractsDir() string {
	return filepath.Join(n.Dir, contractsDirName)
}

func (n *Network) setup(ctx context.Context, chainspecPath string, configPath string) error {
	var args []string
	if chainspecPath != "" {
		args = append(args, chainspecArgPrefix+chainspecPath)
	}
	if configPath != "" {
		args = append(args, nodeConfigArgPrefix+configPath)
	}
	if _, err := n.runner.Run(ctx, SetupCommand, args...); err != nil {
		return fmt.Errorf("failed to set up network: %w", err)
	}
	return nil
}

func (n *Network) start(ctx context.Context, cfg NetworkConfig) error {
	n.log.Info("starting network", zap.String("uuid", n.UUID))
	output, err := n.runner.Run(ctx, StartCommand)
	if err != nil {
		return fmt.Errorf("failed to start network: %w", err)
	}
	records, _, err := ParseNetStartOutput(output)
	if err != nil {
		return fmt.Errorf("failed to parse output of %s: %w", StartCommand, err)
	}

	output, err = n.runner.Run(ctx, NodePortsCommand)
	if err != nil {
		return fmt.Errorf("failed to read node ports: %w", err)
	}
	nodePorts, _ := ParseNodePortsOutput(output)

	output, err = n.runner.Run(ctx, SidecarPortsCommand)
	if err != nil {
		return fmt.Errorf("failed to read sidecar ports: %w", err)
	}
	sidecarPorts, _ := ParseSidecarPortsOutput(output)

	n.Nodes, n.Sidecars, err = JoinTopology(records, nodePorts, sidecarPorts)
	if err != nil {
		return err
	}
	n.log.Info("network started",
		zap.Int("nodes", len(n.Nodes)),
		zap.Int("sidecars", len(n.Sidecars)),
	)
	// Recorded before deploying so the network can be stopped from another
	// process while deploys are confirming.
	if err := n.Write(); err != nil {
		return err
	}

	n.log.Info("waiting for the first block")
	if _, err := n.runner.Run(ctx, AwaitBlockCommand, awaitFirstBlockArg); err != nil {
		return fmt.Errorf("failed waiting for the first block: %w", err)
	}

	if err := n.deployContracts(ctx, cfg); err != nil {
		return err
	}
	return n.Write()
}

func (n *Network) deployContracts(ctx context.Context, cfg NetworkConfig) error {
	if len(cfg.Contracts) == 0 {
		return nil
	}
	if len(n.Sidecars) == 0 {
		return errNoSidecars
	}

	keyPath := filepath.Join(append([]string{n.Dir}, deployerKeyPath...)...)
	key, err := crypto.LoadPrivateKeyFile(keyPath)
	if err != nil {
		return fmt.Errorf("failed to load deployer key: %w", err)
	}

	newClient := cfg.ClientFactory
	if newClient == nil {
		newClient = casper.NewClient
	}
	client := newClient(n.Sidecars[0].RPCURI(), n.log)

	confirmation := cfg.Confirmation.withDefaults()

	for _, contract := range cfg.Contracts {
		if err := contract.Verify(); err != nil {
			return err
		}
		hashName, address, err := DeployContract(ctx, n.log, client, n.ChainName, key, contract, confirmation)
		if err != nil {
			return fmt.Errorf("failed to deploy contract %q: %w", contract.HashName, err)
		}
		if err := WriteContractHash(n.ContractsDir(), hashName, address); err != nil {
			return err
		}
	}
	return nil
}

// WriteEndpoints writes the endpoints of every node and sidecar to [w].
func (n *Network) WriteEndpoints(w io.Writer) error {
	for _, node := range n.Nodes {
		if _, err := fmt.Fprintf(w, "node-%d (%s): rest %s, sse %s\n", node.ID, node.State, node.RESTURI(), node.SSEURI()); err != nil {
			return err
		}
	}
	for _, sidecar := range n.Sidecars {
		if _, err := fmt.Fprintf(w, "sidecar-%d (%s): rpc %s\n", sidecar.ID, sidecar.State, sidecar.RPCURI()); err != nil {
			return err
		}
	}
	return nil
}

// GetContractHash returns the address of a contract installed when the
// network was started.
func (n *Network) GetContractHash(hashName string) (casper.Hash, error) {
	return ReadContractHash(n.ContractsDir(), hashName)
}

// Stop stops the network. Only the first call has an effect; later calls
// return the result of the first.
func (n *Network) Stop(ctx context.Context) error {
	n.stopOnce.Do(func() {
		n.stopErr = n.stop(ctx)
	})
	return n.stopErr
}

func (n *Network) stop(ctx context.Context) error {
	n.log.Info("stopping network", zap.String("uuid", n.UUID))

	// Teardown must run even when the caller has given up on [ctx].
	ctx = context.WithoutCancel(ctx)

	var errs []error
	output, err := n.runner.Run(ctx, StopCommand)
	if len(output) > 0 {
		_, _ = fmt.Fprintln(n.stdout, output)
	}
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && len(cmdErr.Stderr) > 0 {
			_, _ = fmt.Fprintln(n.stderr, cmdErr.Stderr)
		}
		errs = append(errs, fmt.Errorf("failed to stop network: %w", err))
	}
	if err := n.releaseLock(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (n *Network) releaseLock() error {
	if n.lock == nil {
		return nil
	}
	lock := n.lock
	n.lock = nil
	return releaseLock(lock)
}

// Write records the network in its working directory so that other
// processes can find it.
func (n *Network) Write() error {
	bytes, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal network: %w", err)
	}
	path := filepath.Join(n.Dir, networkFilename)
	if err := perms.WriteFile(path, bytes, perms.ReadWrite); err != nil {
		return fmt.Errorf("failed to write network: %w", err)
	}
	return nil
}

// ReadNetwork reads a network started in [dir] by another process. The
// returned network does not hold the directory lock.
func ReadNetwork(log logging.Logger, dir string) (*Network, error) {
	canonicalDir, err := toCanonicalDir(dir)
	if err != nil {
		return nil, err
	}
	bytes, err := os.ReadFile(filepath.Join(canonicalDir, networkFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to read network: %w", err)
	}
	network := &Network{}
	if err := json.Unmarshal(bytes, network); err != nil {
		return nil, fmt.Errorf("failed to unmarshal network: %w", err)
	}
	network.Dir = canonicalDir
	network.log = log
	network.setDefaults()
	return network, nil
}

// StopNetwork stops the network started in [dir].
func StopNetwork(ctx context.Context, log logging.Logger, dir string) error {
	network, err := ReadNetwork(log, dir)
	if err != nil {
		return err
	}
	return network.Stop(ctx)
}
