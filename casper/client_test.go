// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/cspr-tools/cctlnet/utils/crypto"
	"github.com/cspr-tools/cctlnet/utils/logging"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// fakeNode answers JSON-RPC calls from a table of canned results keyed by
// method and records the params of every call.
type fakeNode struct {
	lock    sync.Mutex
	results map[string]string
	params  map[string]json.RawMessage
}

func (n *fakeNode) setResult(method, result string) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.results[method] = result
}

func (n *fakeNode) paramsOf(method string) string {
	n.lock.Lock()
	defer n.lock.Unlock()
	return string(n.params[method])
}

func (n *fakeNode) serve(t *testing.T) string {
	n.params = make(map[string]json.RawMessage)
	router := mux.NewRouter()
	router.HandleFunc("/rpc", func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		n.lock.Lock()
		n.params[req.Method] = req.Params
		result, ok := n.results[req.Method]
		n.lock.Unlock()
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"Method not found"}}`, req.ID)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, req.ID, result)
	}).Methods(http.MethodPost)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server.URL + "/rpc"
}

func TestClientPutDeploy(t *testing.T) {
	require := require.New(t)

	key, err := crypto.NewPrivateKeyED25519()
	require.NoError(err)
	payment, err := NewStandardPayment(big.NewInt(1))
	require.NoError(err)
	deploy, err := NewDeploy(DeployParams{
		ChainName: "cspr-dev-cctl",
		Timestamp: time.Now(),
		TTL:       time.Minute,
		Payment:   payment,
		Session:   ExecutableDeployItem{ModuleBytes: wasmMagic},
	}, key)
	require.NoError(err)

	node := &fakeNode{results: map[string]string{
		"account_put_deploy": `{"api_version":"2.0.0","deploy_hash":"` + deploy.Hash.String() + `"}`,
	}}
	c := NewClient(node.serve(t), logging.NoLog{})

	hash, err := c.PutDeploy(context.Background(), deploy)
	require.NoError(err)
	require.Equal(deploy.Hash, hash)

	var params struct {
		Deploy struct {
			Hash string `json:"hash"`
		} `json:"deploy"`
	}
	require.NoError(json.Unmarshal([]byte(node.paramsOf("account_put_deploy")), &params))
	require.Equal(deploy.Hash.String(), params.Deploy.Hash)
}

func TestClientGetDeploy(t *testing.T) {
	require := require.New(t)

	node := &fakeNode{results: map[string]string{
		"info_get_deploy": `{"api_version":"2.0.0","deploy":{},"execution_info":{"block_hash":"` + blockHash + `","block_height":9,"execution_result":{"Version2":{"error_message":null}}}}`,
	}}
	c := NewClient(node.serve(t), logging.NoLog{})

	deployHash := ComputeHash([]byte("deploy"))
	res, err := c.GetDeploy(context.Background(), deployHash)
	require.NoError(err)
	require.NotNil(res.Execution())
	require.Equal(uint64(9), res.Execution().BlockHeight)
	require.True(res.Execution().ExecutionResult.Succeeded())

	require.JSONEq(
		`{"deploy_hash":"`+deployHash.String()+`","finalized_approvals":false}`,
		node.paramsOf("info_get_deploy"),
	)
}

func TestClientGetStateRootHash(t *testing.T) {
	require := require.New(t)

	node := &fakeNode{results: map[string]string{
		"chain_get_state_root_hash": `{"api_version":"2.0.0","state_root_hash":"` + contractHex + `"}`,
	}}
	c := NewClient(node.serve(t), logging.NoLog{})

	h, err := c.GetStateRootHash(context.Background())
	require.NoError(err)
	require.NotNil(h)
	require.Equal(contractHex, h.String())

	node.setResult("chain_get_state_root_hash", `{"api_version":"2.0.0","state_root_hash":null}`)
	h, err = c.GetStateRootHash(context.Background())
	require.NoError(err)
	require.Nil(h)
}

func TestClientQueryGlobalState(t *testing.T) {
	require := require.New(t)

	node := &fakeNode{results: map[string]string{
		"query_global_state": `{"api_version":"2.0.0","block_header":null,"stored_value":{"ContractPackage":{"versions":[{"contract_hash":"contract-` + contractHex + `"}]}},"merkle_proof":"01"}`,
	}}
	c := NewClient(node.serve(t), logging.NoLog{})

	root := ComputeHash([]byte("root"))
	res, err := c.QueryGlobalState(context.Background(), root, "entity-account-00", []string{"counter"})
	require.NoError(err)

	addr, err := res.StoredValue.ContractAddress()
	require.NoError(err)
	require.Equal(contractHex, addr.String())

	require.JSONEq(
		`{"state_identifier":{"StateRootHash":"`+root.String()+`"},"key":"entity-account-00","path":["counter"]}`,
		node.paramsOf("query_global_state"),
	)
}

func TestClientGetNodeStatus(t *testing.T) {
	require := require.New(t)

	node := &fakeNode{results: map[string]string{
		"info_get_status": `{"api_version":"2.0.0","chainspec_name":"cspr-dev-cctl","reactor_state":"Validate","last_added_block_info":{"hash":"` + blockHash + `","height":12}}`,
	}}
	c := NewClient(node.serve(t), logging.NoLog{})

	status, err := c.GetNodeStatus(context.Background())
	require.NoError(err)
	require.Equal(ReactorStateValidate, status.ReactorState)
	require.Equal("cspr-dev-cctl", status.ChainspecName)
	require.Equal(uint64(12), status.LastAddedBlock.Height)
}

func TestClientRPCError(t *testing.T) {
	node := &fakeNode{results: map[string]string{}}
	c := NewClient(node.serve(t), logging.NoLog{})

	_, err := c.GetDeploy(context.Background(), EmptyHash)
	require.ErrorContains(t, err, "Method not found")
}
