// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-cmd/cmd"
	"go.uber.org/zap"

	"github.com/cspr-tools/cctlnet/utils/logging"
)

// Names of the cctl commands used to manage a network.
const (
	SetupCommand        = "cctl-infra-net-setup"
	StartCommand        = "cctl-infra-net-start"
	NodePortsCommand    = "cctl-infra-node-view-ports"
	SidecarPortsCommand = "cctl-infra-sidecar-view-ports"
	AwaitBlockCommand   = "cctl-chain-await-until-block-n"
	StopCommand         = "cctl-infra-net-stop"

	awaitFirstBlockArg  = "height=1"
	chainspecArgPrefix  = "chainspec="
	nodeConfigArgPrefix = "config="
)

// CommandRunner runs a cctl command to completion and returns its standard
// output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// CommandError is returned when a command could not be spawned or exited with
// a non-zero status.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q", e.Command)
	if e.Err != nil {
		msg += " failed: " + e.Err.Error()
	} else {
		msg += fmt.Sprintf(" exited with status %d", e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

type commandRunner struct {
	log       logging.Logger
	assetsDir string
}

// NewCommandRunner returns a runner that executes cctl commands against the
// network whose assets live in [assetsDir].
func NewCommandRunner(log logging.Logger, assetsDir string) CommandRunner {
	return &commandRunner{
		log:       log,
		assetsDir: assetsDir,
	}
}

func (r *commandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	commandLine := strings.Join(append([]string{name}, args...), " ")
	r.log.Debug("running command",
		zap.String("command", commandLine),
		zap.String("assetsDir", r.assetsDir),
	)

	c := cmd.NewCmdOptions(cmd.Options{Buffered: true}, name, args...)
	c.Env = append(os.Environ(), AssetsEnvName+"="+r.assetsDir)
	statusChan := c.Start()

	var status cmd.Status
	select {
	case status = <-statusChan:
	case <-ctx.Done():
		_ = c.Stop()
		return "", &CommandError{
			Command:  commandLine,
			ExitCode: -1,
			Err:      ctx.Err(),
		}
	}

	stdout := strings.Join(status.Stdout, "\n")
	stderr := strings.Join(status.Stderr, "\n")
	if len(stdout) > 0 {
		r.log.Info(stdout)
	}
	if len(stderr) > 0 {
		r.log.Debug("command stderr",
			zap.String("command", name),
			zap.String("stderr", stderr),
		)
	}

	if status.Error != nil || status.Exit != 0 {
		return stdout, &CommandError{
			Command:  commandLine,
			ExitCode: status.Exit,
			Stderr:   stderr,
			Err:      status.Error,
		}
	}
	return stdout, nil
}
