// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"

	"go.uber.org/zap"

	"github.com/cspr-tools/cctlnet/casper"
	"github.com/cspr-tools/cctlnet/utils/crypto"
	"github.com/cspr-tools/cctlnet/utils/logging"
	"github.com/cspr-tools/cctlnet/utils/timer/mockable"
)

var ErrNoStateRootHash = errors.New("no state root hash")

// DeployContract installs [contract] on the network served by [client],
// waits for the deploy to be executed and returns the address of the
// contract recorded under the contract's hash name in the deployer account.
func DeployContract(
	ctx context.Context,
	log logging.Logger,
	client casper.Client,
	chainName string,
	key crypto.PrivateKey,
	contract DeployableContract,
	cfg ConfirmationConfig,
) (string, casper.Hash, error) {
	log.Info("deploying contract",
		zap.String("hashName", contract.HashName),
		zap.String("path", contract.Path),
	)
	if chainName == "" {
		chainName = DefaultChainName
	}
	clock := cfg.Clock
	if clock == nil {
		clock = &mockable.Clock{}
		cfg.Clock = clock
	}

	bytecode, err := os.ReadFile(contract.Path)
	if err != nil {
		return "", casper.EmptyHash, fmt.Errorf("failed to read contract %q: %w", contract.HashName, err)
	}
	payment, err := casper.NewStandardPayment(big.NewInt(MaxGasFeePaymentAmount))
	if err != nil {
		return "", casper.EmptyHash, err
	}
	deploy, err := casper.NewDeploy(casper.DeployParams{
		ChainName: chainName,
		Timestamp: clock.Time(),
		TTL:       DeployTTL,
		GasPrice:  casper.DefaultGasPrice,
		Payment:   payment,
		Session: casper.ExecutableDeployItem{
			ModuleBytes: bytecode,
			Args:        contract.RuntimeArgs,
		},
	}, key)
	if err != nil {
		return "", casper.EmptyHash, fmt.Errorf("failed to build deploy for %q: %w", contract.HashName, err)
	}

	deployHash, err := client.PutDeploy(ctx, deploy)
	if err != nil {
		return "", casper.EmptyHash, fmt.Errorf("failed to submit deploy for %q: %w", contract.HashName, err)
	}
	log.Info("submitted deploy",
		zap.String("hashName", contract.HashName),
		zap.Stringer("deployHash", deployHash),
	)

	if _, err := AwaitDeployExecution(ctx, log, client, deployHash, cfg); err != nil {
		return "", casper.EmptyHash, err
	}

	stateRootHash, err := client.GetStateRootHash(ctx)
	if err != nil {
		return "", casper.EmptyHash, fmt.Errorf("failed to get state root hash: %w", err)
	}
	if stateRootHash == nil {
		return "", casper.EmptyHash, ErrNoStateRootHash
	}

	accountKey := casper.NewPublicKey(key.PublicKey()).AccountEntityKey()
	result, err := client.QueryGlobalState(ctx, *stateRootHash, accountKey, []string{contract.HashName})
	if err != nil {
		return "", casper.EmptyHash, fmt.Errorf("failed to query %s/%s: %w", accountKey, contract.HashName, err)
	}
	address, err := result.StoredValue.ContractAddress()
	if err != nil {
		return "", casper.EmptyHash, fmt.Errorf("failed to read address of %q: %w", contract.HashName, err)
	}

	log.Info("contract installed",
		zap.String("hashName", contract.HashName),
		zap.Stringer("address", address),
	)
	return contract.HashName, address, nil
}
