// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	runningStr = "RUNNING"
	stoppedStr = "STOPPED"
)

var errUnknownNodeState = errors.New("unknown node state")

// NodeState is the state cctl reported for a process when the network was
// started. It is not refreshed afterwards.
type NodeState int

const (
	Running NodeState = iota
	Stopped
)

func ToNodeState(s string) (NodeState, error) {
	switch s {
	case runningStr:
		return Running, nil
	case stoppedStr:
		return Stopped, nil
	default:
		return Stopped, fmt.Errorf("%w: %q", errUnknownNodeState, s)
	}
}

func (s NodeState) String() string {
	switch s {
	case Running:
		return runningStr
	case Stopped:
		return stoppedStr
	default:
		return fmt.Sprintf("NodeState(%d)", int(s))
	}
}

func (s NodeState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *NodeState) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*s, err = ToNodeState(str)
	return err
}

type NodeKind int

const (
	KindNode NodeKind = iota
	KindSidecar
)

func (k NodeKind) String() string {
	if k == KindSidecar {
		return "sidecar"
	}
	return "node"
}

// NodeRecord is a single line of the topology reported by cctl-infra-net-start.
type NodeRecord struct {
	Kind    NodeKind
	GroupID uint8
	NodeID  uint8
	State   NodeState
}

type NodePorts struct {
	ProtocolPort uint16 `json:"protocolPort"`
	BinaryPort   uint16 `json:"binaryPort"`
	RESTPort     uint16 `json:"restPort"`
	SSEPort      uint16 `json:"ssePort"`
}

type SidecarPorts struct {
	NodeClientPort      uint16 `json:"nodeClientPort"`
	RPCPort             uint16 `json:"rpcPort"`
	SpeculativeExecPort uint16 `json:"speculativeExecPort"`
}

// NodePortsRecord associates a node id with the ports reported for it.
type NodePortsRecord struct {
	NodeID uint8
	Ports  NodePorts
}

type SidecarPortsRecord struct {
	NodeID uint8
	Ports  SidecarPorts
}

// Node is a casper-node process of a running cctl network.
type Node struct {
	ID      uint8     `json:"id"`
	GroupID uint8     `json:"groupID"`
	State   NodeState `json:"state"`
	Ports   NodePorts `json:"ports"`
}

func (n *Node) RESTURI() string {
	return localURI(n.Ports.RESTPort, "")
}

func (n *Node) SSEURI() string {
	return localURI(n.Ports.SSEPort, "/events")
}

// Sidecar is the casper-sidecar process serving the JSON-RPC API for the node
// with the same ID.
type Sidecar struct {
	ID      uint8        `json:"id"`
	GroupID uint8        `json:"groupID"`
	State   NodeState    `json:"state"`
	Ports   SidecarPorts `json:"ports"`
}

func (s *Sidecar) RPCURI() string {
	return localURI(s.Ports.RPCPort, "/rpc")
}

func localURI(port uint16, path string) string {
	return fmt.Sprintf("http://0.0.0.0:%d%s", port, path)
}
