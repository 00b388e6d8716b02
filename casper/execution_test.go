// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const blockHash = "0f4e5a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7"

func TestGetDeployResultExecution(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantInfo    bool
		wantResult  bool
		wantVersion int
		wantErrMsg  string
	}{
		{
			name: "not yet included",
			in:   `{"api_version":"2.0.0","deploy":{},"execution_info":null}`,
		},
		{
			name:     "included without result",
			in:       `{"api_version":"2.0.0","deploy":{},"execution_info":{"block_hash":"` + blockHash + `","block_height":4,"execution_result":null}}`,
			wantInfo: true,
		},
		{
			name:        "version 1 success",
			in:          `{"execution_info":{"block_hash":"` + blockHash + `","block_height":4,"execution_result":{"Version1":{"Success":{"cost":"1"}}}}}`,
			wantInfo:    true,
			wantResult:  true,
			wantVersion: 1,
		},
		{
			name:        "version 1 failure",
			in:          `{"execution_info":{"block_hash":"` + blockHash + `","block_height":4,"execution_result":{"Version1":{"Failure":{"error_message":"User error: 1"}}}}}`,
			wantInfo:    true,
			wantResult:  true,
			wantVersion: 1,
			wantErrMsg:  "User error: 1",
		},
		{
			name:        "version 2 success",
			in:          `{"execution_info":{"block_hash":"` + blockHash + `","block_height":4,"execution_result":{"Version2":{"error_message":null,"consumed":"100"}}}}`,
			wantInfo:    true,
			wantResult:  true,
			wantVersion: 2,
		},
		{
			name:        "version 2 failure",
			in:          `{"execution_info":{"block_hash":"` + blockHash + `","block_height":4,"execution_result":{"Version2":{"error_message":"Out of gas error"}}}}`,
			wantInfo:    true,
			wantResult:  true,
			wantVersion: 2,
			wantErrMsg:  "Out of gas error",
		},
		{
			name:        "legacy execution results",
			in:          `{"execution_results":[{"block_hash":"` + blockHash + `","result":{"Failure":{"error_message":"ApiError::MissingArgument"}}}]}`,
			wantInfo:    true,
			wantResult:  true,
			wantVersion: 1,
			wantErrMsg:  "ApiError::MissingArgument",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			var res GetDeployResult
			require.NoError(json.Unmarshal([]byte(test.in), &res))

			info := res.Execution()
			if !test.wantInfo {
				require.Nil(info)
				return
			}
			require.NotNil(info)
			require.Equal(blockHash, info.BlockHash.String())
			if !test.wantResult {
				require.Nil(info.ExecutionResult)
				return
			}
			require.NotNil(info.ExecutionResult)
			require.Equal(test.wantVersion, info.ExecutionResult.Version)
			if test.wantErrMsg == "" {
				require.True(info.ExecutionResult.Succeeded())
				return
			}
			require.False(info.ExecutionResult.Succeeded())
			require.Equal(test.wantErrMsg, *info.ExecutionResult.ErrorMessage)
		})
	}
}

func TestExecutionResultUnknownShape(t *testing.T) {
	var r ExecutionResult
	err := json.Unmarshal([]byte(`{"Version1":{"Pending":{}}}`), &r)
	require.ErrorIs(t, err, errUnknownExecutionResult)
}
