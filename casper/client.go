// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"context"

	"github.com/cspr-tools/cctlnet/utils/logging"
	"github.com/cspr-tools/cctlnet/utils/rpc"
)

var _ Client = (*client)(nil)

// Client for the node JSON-RPC API exposed by a sidecar
type Client interface {
	// PutDeploy submits [deploy] and returns the hash the node assigned it.
	PutDeploy(ctx context.Context, deploy *Deploy) (Hash, error)
	GetDeploy(ctx context.Context, deployHash Hash) (*GetDeployResult, error)
	// GetStateRootHash returns the state root hash of the latest block, or
	// nil if the node did not report one.
	GetStateRootHash(ctx context.Context) (*Hash, error)
	QueryGlobalState(ctx context.Context, stateRootHash Hash, key string, path []string) (*QueryGlobalStateResult, error)
	GetNodeStatus(ctx context.Context) (*NodeStatus, error)
}

type client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a client for the JSON-RPC endpoint at [uri], e.g.
// http://0.0.0.0:11101/rpc
func NewClient(uri string, log logging.Logger) Client {
	return &client{
		requester: rpc.NewEndpointRequester(uri, log),
	}
}

type PutDeployArgs struct {
	Deploy *Deploy `json:"deploy"`
}

type PutDeployReply struct {
	APIVersion string `json:"api_version"`
	DeployHash Hash   `json:"deploy_hash"`
}

func (c *client) PutDeploy(ctx context.Context, deploy *Deploy) (Hash, error) {
	res := &PutDeployReply{}
	err := c.requester.SendRequest(ctx, "account_put_deploy", &PutDeployArgs{
		Deploy: deploy,
	}, res)
	return res.DeployHash, err
}

type GetDeployArgs struct {
	DeployHash         Hash `json:"deploy_hash"`
	FinalizedApprovals bool `json:"finalized_approvals"`
}

func (c *client) GetDeploy(ctx context.Context, deployHash Hash) (*GetDeployResult, error) {
	res := &GetDeployResult{}
	err := c.requester.SendRequest(ctx, "info_get_deploy", &GetDeployArgs{
		DeployHash: deployHash,
	}, res)
	return res, err
}

type GetStateRootHashReply struct {
	APIVersion    string `json:"api_version"`
	StateRootHash *Hash  `json:"state_root_hash"`
}

func (c *client) GetStateRootHash(ctx context.Context) (*Hash, error) {
	res := &GetStateRootHashReply{}
	err := c.requester.SendRequest(ctx, "chain_get_state_root_hash", struct{}{}, res)
	return res.StateRootHash, err
}

type GlobalStateIdentifier struct {
	StateRootHash Hash `json:"StateRootHash"`
}

type QueryGlobalStateArgs struct {
	StateIdentifier GlobalStateIdentifier `json:"state_identifier"`
	Key             string                `json:"key"`
	Path            []string              `json:"path"`
}

func (c *client) QueryGlobalState(ctx context.Context, stateRootHash Hash, key string, path []string) (*QueryGlobalStateResult, error) {
	if path == nil {
		path = []string{}
	}
	res := &QueryGlobalStateResult{}
	err := c.requester.SendRequest(ctx, "query_global_state", &QueryGlobalStateArgs{
		StateIdentifier: GlobalStateIdentifier{StateRootHash: stateRootHash},
		Key:             key,
		Path:            path,
	}, res)
	return res, err
}

func (c *client) GetNodeStatus(ctx context.Context) (*NodeStatus, error) {
	res := &NodeStatus{}
	err := c.requester.SendRequest(ctx, "info_get_status", struct{}{}, res)
	return res, err
}
