// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"errors"
	"fmt"
)

var ErrMissingPorts = errors.New("no ports reported")

// JoinTopology attaches the reported ports to every record of the topology.
// Nodes and sidecars are returned in the order they were listed. When several
// port sections share an id the first one is used.
func JoinTopology(
	records []NodeRecord,
	nodePorts []NodePortsRecord,
	sidecarPorts []SidecarPortsRecord,
) ([]*Node, []*Sidecar, error) {
	nodePortsByID := make(map[uint8]NodePorts, len(nodePorts))
	for _, r := range nodePorts {
		if _, ok := nodePortsByID[r.NodeID]; !ok {
			nodePortsByID[r.NodeID] = r.Ports
		}
	}
	sidecarPortsByID := make(map[uint8]SidecarPorts, len(sidecarPorts))
	for _, r := range sidecarPorts {
		if _, ok := sidecarPortsByID[r.NodeID]; !ok {
			sidecarPortsByID[r.NodeID] = r.Ports
		}
	}

	var (
		nodes    []*Node
		sidecars []*Sidecar
	)
	for _, record := range records {
		switch record.Kind {
		case KindSidecar:
			ports, ok := sidecarPortsByID[record.NodeID]
			if !ok {
				return nil, nil, fmt.Errorf("%w for %s %d", ErrMissingPorts, record.Kind, record.NodeID)
			}
			sidecars = append(sidecars, &Sidecar{
				ID:      record.NodeID,
				GroupID: record.GroupID,
				State:   record.State,
				Ports:   ports,
			})
		default:
			ports, ok := nodePortsByID[record.NodeID]
			if !ok {
				return nil, nil, fmt.Errorf("%w for %s %d", ErrMissingPorts, record.Kind, record.NodeID)
			}
			nodes = append(nodes, &Node{
				ID:      record.NodeID,
				GroupID: record.GroupID,
				State:   record.State,
				Ports:   ports,
			})
		}
	}
	return nodes, sidecars, nil
}
