// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errUnknownExecutionResult = errors.New("unknown execution result")

// ExecutionResult is the outcome of executing a deploy in a block.
// ErrorMessage is nil when execution succeeded.
type ExecutionResult struct {
	Version      int
	ErrorMessage *string
}

func (r ExecutionResult) Succeeded() bool {
	return r.ErrorMessage == nil
}

func (r *ExecutionResult) UnmarshalJSON(b []byte) error {
	var versioned struct {
		Version1 *json.RawMessage `json:"Version1"`
		Version2 *struct {
			ErrorMessage *string `json:"error_message"`
		} `json:"Version2"`
	}
	if err := json.Unmarshal(b, &versioned); err != nil {
		return err
	}
	switch {
	case versioned.Version2 != nil:
		*r = ExecutionResult{Version: 2, ErrorMessage: versioned.Version2.ErrorMessage}
		return nil
	case versioned.Version1 != nil:
		msg, err := unmarshalExecutionResultV1(*versioned.Version1)
		if err != nil {
			return err
		}
		*r = ExecutionResult{Version: 1, ErrorMessage: msg}
		return nil
	default:
		// Nodes before 2.0 report the V1 shape without the version wrapper.
		msg, err := unmarshalExecutionResultV1(b)
		if err != nil {
			return err
		}
		*r = ExecutionResult{Version: 1, ErrorMessage: msg}
		return nil
	}
}

func unmarshalExecutionResultV1(b []byte) (*string, error) {
	var v1 struct {
		Success *json.RawMessage `json:"Success"`
		Failure *struct {
			ErrorMessage string `json:"error_message"`
		} `json:"Failure"`
	}
	if err := json.Unmarshal(b, &v1); err != nil {
		return nil, err
	}
	switch {
	case v1.Failure != nil:
		msg := v1.Failure.ErrorMessage
		return &msg, nil
	case v1.Success != nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownExecutionResult, b)
	}
}

type ExecutionInfo struct {
	BlockHash       Hash             `json:"block_hash"`
	BlockHeight     uint64           `json:"block_height"`
	ExecutionResult *ExecutionResult `json:"execution_result"`
}

// GetDeployResult is the reply to info_get_deploy. ExecutionInfo is nil until
// the deploy has been included in a block.
type GetDeployResult struct {
	APIVersion    string                  `json:"api_version"`
	Deploy        json.RawMessage         `json:"deploy"`
	ExecutionInfo *ExecutionInfo          `json:"execution_info"`
	LegacyResults []legacyExecutionResult `json:"execution_results,omitempty"`
}

type legacyExecutionResult struct {
	BlockHash Hash            `json:"block_hash"`
	Result    ExecutionResult `json:"result"`
}

// Execution returns the execution info, falling back to the execution_results
// list reported by nodes before 2.0.
func (r *GetDeployResult) Execution() *ExecutionInfo {
	if r.ExecutionInfo != nil {
		return r.ExecutionInfo
	}
	if len(r.LegacyResults) == 0 {
		return nil
	}
	result := r.LegacyResults[0].Result
	return &ExecutionInfo{
		BlockHash:       r.LegacyResults[0].BlockHash,
		ExecutionResult: &result,
	}
}
