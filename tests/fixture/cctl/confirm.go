// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/cspr-tools/cctlnet/casper"
	"github.com/cspr-tools/cctlnet/utils/logging"
	"github.com/cspr-tools/cctlnet/utils/rpc"
	"github.com/cspr-tools/cctlnet/utils/timer/mockable"
)

var (
	ErrConfirmationTimeout = errors.New("timed out waiting for deploy execution")

	errNoExecutionResult = errors.New("deploy has no execution result yet")
)

// ExecutionFailureError is returned when the network executed a deploy and
// reported that it failed.
type ExecutionFailureError struct {
	DeployHash casper.Hash
	Message    string
}

func (e *ExecutionFailureError) Error() string {
	return fmt.Sprintf("deploy %s failed: %s", e.DeployHash, e.Message)
}

type deployStatus int

const (
	// The query failed in a way that may resolve by itself.
	statusPending deployStatus = iota
	// The deploy is known but has not been executed.
	statusObservedNoResult
	statusSucceeded
	statusFailed
)

// ConfirmationConfig controls how a submitted deploy is polled.
type ConfirmationConfig struct {
	// Polling gives up once this much time has passed since the first poll.
	Timeout time.Duration
	Backoff BackoffConfig
	// Time source and sleep used between polls.
	Clock *mockable.Clock
	// Jitter source. Nil disables jitter.
	Rand *rand.Rand
}

func DefaultConfirmationConfig() ConfirmationConfig {
	return ConfirmationConfig{
		Timeout: MaxContractInitWaitTime,
		Backoff: DefaultBackoffConfig(),
		Clock:   &mockable.Clock{},
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())), //#nosec G404
	}
}

// withDefaults fills in the unset fields of [cfg]. A zero config gets the
// default config, jitter included; otherwise a nil Rand keeps jitter off.
func (cfg ConfirmationConfig) withDefaults() ConfirmationConfig {
	if cfg == (ConfirmationConfig{}) {
		return DefaultConfirmationConfig()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = MaxContractInitWaitTime
	}
	if cfg.Backoff == (BackoffConfig{}) {
		cfg.Backoff = DefaultBackoffConfig()
	}
	if cfg.Clock == nil {
		cfg.Clock = &mockable.Clock{}
	}
	return cfg
}

// AwaitDeployExecution polls the network until [deployHash] has been executed.
//
// Transport failures and deploys without an execution result are retried
// with exponential backoff until the timeout elapses, after which the last
// error is returned wrapped in ErrConfirmationTimeout. A failed execution is
// returned immediately as *ExecutionFailureError, as is any other error.
func AwaitDeployExecution(
	ctx context.Context,
	log logging.Logger,
	client casper.Client,
	deployHash casper.Hash,
	cfg ConfirmationConfig,
) (*casper.ExecutionInfo, error) {
	clock := cfg.Clock
	if clock == nil {
		clock = &mockable.Clock{}
	}
	deadline := clock.Time().Add(cfg.Timeout)

	for attempt := 0; ; attempt++ {
		timedOut := !clock.Time().Before(deadline)

		status, info, err := queryDeployStatus(ctx, client, deployHash)
		switch status {
		case statusSucceeded:
			log.Info("deploy executed",
				zap.Stringer("deployHash", deployHash),
				zap.Stringer("blockHash", info.BlockHash),
				zap.Int("attempts", attempt+1),
			)
			return info, nil
		case statusFailed:
			return nil, err
		}
		if err != nil && status == statusPending && !rpc.IsTransportError(err) {
			return nil, fmt.Errorf("failed to query deploy %s: %w", deployHash, err)
		}
		if timedOut {
			return nil, fmt.Errorf("%w after %s: %w", ErrConfirmationTimeout, cfg.Timeout, err)
		}

		delay := NextBackoffDelay(cfg.Backoff, attempt, cfg.Rand)
		log.Debug("deploy not yet executed",
			zap.Stringer("deployHash", deployHash),
			zap.Int("attempt", attempt+1),
			zap.Duration("retryIn", delay),
			zap.Error(err),
		)
		if err := clock.Sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("stopped waiting for deploy %s: %w", deployHash, err)
		}
	}
}

func queryDeployStatus(
	ctx context.Context,
	client casper.Client,
	deployHash casper.Hash,
) (deployStatus, *casper.ExecutionInfo, error) {
	result, err := client.GetDeploy(ctx, deployHash)
	if err != nil {
		return statusPending, nil, err
	}
	info := result.Execution()
	if info == nil || info.ExecutionResult == nil {
		return statusObservedNoResult, nil, errNoExecutionResult
	}
	if !info.ExecutionResult.Succeeded() {
		return statusFailed, info, &ExecutionFailureError{
			DeployHash: deployHash,
			Message:    *info.ExecutionResult.ErrorMessage,
		}
	}
	return statusSucceeded, info, nil
}
