// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cspr-tools/cctlnet/casper"
	"github.com/cspr-tools/cctlnet/tests"
	"github.com/cspr-tools/cctlnet/tests/fixture/cctl"
	"github.com/cspr-tools/cctlnet/tests/fixture/cctl/flags"
	"github.com/cspr-tools/cctlnet/utils"
	"github.com/cspr-tools/cctlnet/utils/logging"
	"github.com/cspr-tools/cctlnet/version"
)

const (
	envPrefix = "CCTL"

	logFormatKey = "log-format"
	logLevelKey  = "log-level"

	statusTimeout = 10 * time.Second
)

var errWorkingDirRequired = fmt.Errorf("--%s or %s are required", flags.WorkingDirFlag, cctl.WorkingDirEnvName)

func main() {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var workingDir string
	rootCmd := &cobra.Command{
		Use:   "cctlctl",
		Short: "cctlctl manages ephemeral cctl networks",
	}
	rootCmd.PersistentFlags().String(logFormatKey, logging.AutoString, logging.FormatDescription)
	rootCmd.PersistentFlags().String(logLevelKey, logging.Info.String(), "The minimum level to log at")
	if err := v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "cctlctl failed: %v\n", err)
		os.Exit(1)
	}
	newLogger := func() (logging.Logger, error) {
		return tests.LoggerForFormat("", v.GetString(logFormatKey), v.GetString(logLevelKey))
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version details",
		RunE: func(*cobra.Command, []string) error {
			fmt.Fprintln(os.Stdout, version.String(version.GitCommit))
			return nil
		},
	}
	rootCmd.AddCommand(versionCmd)

	var startNetworkVars *flags.StartNetworkVars
	startNetworkCmd := &cobra.Command{
		Use:   "start-network",
		Short: "Start a cctl network and keep it running until interrupted",
		RunE: func(*cobra.Command, []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Stop()

			cfg, err := startNetworkVars.GetNetworkConfig()
			if err != nil {
				return err
			}

			// Interrupting startup stops the network as soon as the
			// current command returns.
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			signals := utils.HandleSignals(
				func(sig os.Signal) {
					log.Info("received signal", zap.Stringer("signal", sig))
					cancel()
				},
				syscall.SIGINT,
				syscall.SIGTERM,
			)
			defer utils.ClearSignals(signals)

			network, err := cctl.StartNetwork(ctx, log, cfg)
			if err != nil {
				log.Error("failed to start network", zap.Error(err))
				return err
			}

			for _, contract := range cfg.Contracts {
				hash, err := network.GetContractHash(contract.HashName)
				if err != nil {
					return stopAfterError(network, err)
				}
				fmt.Fprintf(os.Stdout, "%s: %s\n", contract.HashName, hash)
			}
			if err := network.WriteEndpoints(os.Stdout); err != nil {
				return stopAfterError(network, err)
			}
			fmt.Fprintf(os.Stdout, "Network started in %s. Stop it with Ctrl-C or `cctlctl stop-network --%s %s`\n",
				network.Dir,
				flags.WorkingDirFlag,
				network.Dir,
			)

			if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
				log.Warn("failed to notify systemd", zap.Error(err))
			}

			<-ctx.Done()
			// The network is stopped with a fresh context since ctx is
			// already cancelled.
			return network.Stop(context.Background())
		},
	}
	startNetworkVars = flags.NewStartNetworkFlagSetVars(startNetworkCmd.PersistentFlags())
	rootCmd.AddCommand(startNetworkCmd)

	stopNetworkCmd := &cobra.Command{
		Use:   "stop-network",
		Short: "Stop a cctl network",
		RunE: func(*cobra.Command, []string) error {
			if len(workingDir) == 0 {
				return errWorkingDirRequired
			}
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Stop()

			if err := cctl.StopNetwork(context.Background(), log, workingDir); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Stopped network in: %s\n", workingDir)
			return nil
		},
	}
	stopNetworkCmd.PersistentFlags().StringVar(&workingDir, flags.WorkingDirFlag, os.Getenv(cctl.WorkingDirEnvName), "The working directory of the network")
	rootCmd.AddCommand(stopNetworkCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print the status of the nodes of a cctl network",
		RunE: func(*cobra.Command, []string) error {
			if len(workingDir) == 0 {
				return errWorkingDirRequired
			}
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Stop()

			network, err := cctl.ReadNetwork(log, workingDir)
			if err != nil {
				return err
			}
			return printStatus(log, network)
		},
	}
	statusCmd.PersistentFlags().StringVar(&workingDir, flags.WorkingDirFlag, os.Getenv(cctl.WorkingDirEnvName), "The working directory of the network")
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cctlctl failed: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func stopAfterError(network *cctl.Network, err error) error {
	if stopErr := network.Stop(context.Background()); stopErr != nil {
		return fmt.Errorf("%w (stop also failed: %w)", err, stopErr)
	}
	return err
}

func printStatus(log logging.Logger, network *cctl.Network) error {
	fmt.Fprintf(os.Stdout, "network %s (%s)\n", network.UUID, network.ChainName)
	if err := network.WriteEndpoints(os.Stdout); err != nil {
		return err
	}
	for _, sidecar := range network.Sidecars {
		if sidecar.State != cctl.Running {
			fmt.Fprintf(os.Stdout, "  sidecar-%d: %s\n", sidecar.ID, sidecar.State)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
		status, err := casper.NewClient(sidecar.RPCURI(), log).GetNodeStatus(ctx)
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stdout, "  sidecar-%d: unreachable: %v\n", sidecar.ID, err)
			continue
		}

		supported, err := version.IsNodeAPISupported(status.APIVersion)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("  node-%d: %s, api %s", sidecar.ID, status.ReactorState, status.APIVersion)
		if status.LastAddedBlock != nil {
			msg += fmt.Sprintf(", height %d", status.LastAddedBlock.Height)
		}
		if !supported {
			msg += fmt.Sprintf(" (contracts need api >= %s)", version.MinimumNodeAPIVersion)
		}
		fmt.Fprintln(os.Stdout, msg)
	}
	return nil
}
