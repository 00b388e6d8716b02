// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/cspr-tools/cctlnet/casper"
	"github.com/cspr-tools/cctlnet/casper/caspermock"
	"github.com/cspr-tools/cctlnet/utils/crypto"
	"github.com/cspr-tools/cctlnet/utils/logging"
)

const testContractAddress = "b1c2d3e4f5061728394a5b6c7d8e9fa0b1c2d3e4f5061728394a5b6c7d8e9fa0"

var (
	testWasm          = []byte("\x00asm\x01\x00\x00\x00")
	testStateRootHash = casper.Hash{0x5a}
)

func newTestContract(t *testing.T) DeployableContract {
	path := filepath.Join(t.TempDir(), "counter.wasm")
	require.NoError(t, os.WriteFile(path, testWasm, 0o600))
	return DeployableContract{
		HashName: "counter_package_hash",
		Path:     path,
		RuntimeArgs: casper.RuntimeArgs{}.
			With("initial_value", casper.NewCLValueU8(5)),
	}
}

func newTestKey(t *testing.T) crypto.PrivateKey {
	key, err := crypto.NewPrivateKeyED25519()
	require.NoError(t, err)
	return key
}

func packageStoredValue(t *testing.T, versions string) casper.StoredValue {
	var value casper.StoredValue
	require.NoError(t, json.Unmarshal([]byte(`{"Package":{"versions":`+versions+`}}`), &value))
	return value
}

func TestDeployContract(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	contract := newTestContract(t)
	key := newTestKey(t)
	accountKey := casper.NewPublicKey(key.PublicKey()).AccountEntityKey()

	var submitted *casper.Deploy
	client := caspermock.NewClient(ctrl)
	gomock.InOrder(
		client.EXPECT().PutDeploy(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, deploy *casper.Deploy) (casper.Hash, error) {
				submitted = deploy
				return deploy.Hash, nil
			},
		),
		client.EXPECT().GetDeploy(gomock.Any(), gomock.Any()).Return(&casper.GetDeployResult{}, nil),
		client.EXPECT().GetDeploy(gomock.Any(), gomock.Any()).Return(executedDeploy(nil), nil),
		client.EXPECT().GetStateRootHash(gomock.Any()).Return(&testStateRootHash, nil),
		client.EXPECT().QueryGlobalState(gomock.Any(), testStateRootHash, accountKey, []string{contract.HashName}).Return(
			&casper.QueryGlobalStateResult{
				StoredValue: packageStoredValue(t, `[{"entity_addr":"entity-contract-`+testContractAddress+`"}]`),
			},
			nil,
		),
	)

	cfg, _ := newTestConfirmationConfig()
	hashName, address, err := DeployContract(
		context.Background(),
		logging.NoLog{},
		client,
		"",
		key,
		contract,
		cfg,
	)
	require.NoError(err)
	require.Equal(contract.HashName, hashName)
	require.Equal(testContractAddress, address.String())

	require.NotNil(submitted)
	require.Equal(DefaultChainName, submitted.Header.ChainName)
	require.Equal(DeployTTL, submitted.Header.TTL)
	require.Equal(uint64(casper.DefaultGasPrice), submitted.Header.GasPrice)
	require.True(testStartTime.Equal(submitted.Header.Timestamp))
	require.Equal(testWasm, submitted.Session.ModuleBytes)
	require.Equal(contract.RuntimeArgs, submitted.Session.Args)

	payment, err := casper.NewStandardPayment(big.NewInt(MaxGasFeePaymentAmount))
	require.NoError(err)
	require.Equal(payment, submitted.Payment)

	require.Len(submitted.Approvals, 1)
	require.True(key.PublicKey().Verify(submitted.Hash[:], submitted.Approvals[0].Signature.Raw))
}

func TestDeployContractErrors(t *testing.T) {
	message := "User error: 1"
	tests := []struct {
		name        string
		setup       func(*caspermock.Client)
		expectedErr error
	}{
		{
			name: "execution failure",
			setup: func(client *caspermock.Client) {
				client.EXPECT().GetDeploy(gomock.Any(), gomock.Any()).Return(executedDeploy(&message), nil)
			},
			expectedErr: &ExecutionFailureError{},
		},
		{
			name: "missing state root hash",
			setup: func(client *caspermock.Client) {
				client.EXPECT().GetDeploy(gomock.Any(), gomock.Any()).Return(executedDeploy(nil), nil)
				client.EXPECT().GetStateRootHash(gomock.Any()).Return(nil, nil)
			},
			expectedErr: ErrNoStateRootHash,
		},
		{
			name: "package without versions",
			setup: func(client *caspermock.Client) {
				client.EXPECT().GetDeploy(gomock.Any(), gomock.Any()).Return(executedDeploy(nil), nil)
				client.EXPECT().GetStateRootHash(gomock.Any()).Return(&testStateRootHash, nil)
				client.EXPECT().QueryGlobalState(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(
					&casper.QueryGlobalStateResult{StoredValue: packageStoredValue(t, `[]`)},
					nil,
				)
			},
			expectedErr: casper.ErrNoContractVersion,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			client := caspermock.NewClient(ctrl)
			client.EXPECT().PutDeploy(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, deploy *casper.Deploy) (casper.Hash, error) {
					return deploy.Hash, nil
				},
			)
			test.setup(client)

			cfg, _ := newTestConfirmationConfig()
			_, _, err := DeployContract(
				context.Background(),
				logging.NoLog{},
				client,
				DefaultChainName,
				newTestKey(t),
				newTestContract(t),
				cfg,
			)
			if failure, ok := test.expectedErr.(*ExecutionFailureError); ok {
				require.ErrorAs(err, &failure)
				require.Equal(message, failure.Message)
				return
			}
			require.ErrorIs(err, test.expectedErr)
		})
	}
}

func TestDeployContractMissingBytecode(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	contract := DeployableContract{
		HashName: "missing",
		Path:     filepath.Join(t.TempDir(), "missing.wasm"),
	}
	cfg, _ := newTestConfirmationConfig()
	_, _, err := DeployContract(
		context.Background(),
		logging.NoLog{},
		caspermock.NewClient(ctrl),
		DefaultChainName,
		newTestKey(t),
		contract,
		cfg,
	)
	require.ErrorIs(err, os.ErrNotExist)
}
