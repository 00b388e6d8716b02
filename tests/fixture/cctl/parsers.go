// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The parsers in this file consume the human-oriented reports printed by the
// cctl commands. Every parser takes the remaining input and returns the parsed
// value together with the input left over after it.

const (
	topologyMarker   = "validator-group"
	groupPrefix      = "validator-group-"
	nodeInfix        = ":cctl-node-"
	sidecarSuffix    = "-sidecar"
	nodeHeader       = "NODE-"
	sidecarHeader    = "SIDECAR-"
	portMarker       = "-> "
	sectionSeparator = "\n"

	maxErrorInputLen = 48
)

var (
	ErrNoMatch    = errors.New("no match")
	ErrNoTopology = errors.New("no topology found in output")

	nodePortLabels    = [...]string{"PROTOCOL", "BINARY", "REST", "SSE"}
	sidecarPortLabels = [...]string{"NODE-CLIENT", "MAIN-RPC", "SPEC-EXEC"}
)

// ParseError reports the first token a parser could not match.
type ParseError struct {
	Expected string
	Input    string
}

func (e *ParseError) Error() string {
	input := e.Input
	if len(input) > maxErrorInputLen {
		input = input[:maxErrorInputLen] + "..."
	}
	return fmt.Sprintf("expected %s at %q", e.Expected, input)
}

func (*ParseError) Unwrap() error {
	return ErrNoMatch
}

func noMatch(expected, input string) error {
	return &ParseError{Expected: expected, Input: input}
}

func tag(s, t string) (string, error) {
	if !strings.HasPrefix(s, t) {
		return s, noMatch(strconv.Quote(t), s)
	}
	return s[len(t):], nil
}

// takeUntil skips to the first occurrence of [t], leaving it unconsumed.
func takeUntil(s, t string) (string, error) {
	i := strings.Index(s, t)
	if i < 0 {
		return s, noMatch(strconv.Quote(t), s)
	}
	return s[i:], nil
}

func multispace0(s string) string {
	return strings.TrimLeft(s, " \t\r\n")
}

func space1(s string) (string, error) {
	rest := strings.TrimLeft(s, " \t")
	if len(rest) == len(s) {
		return s, noMatch("whitespace", s)
	}
	return rest, nil
}

func lineEnding(s string) (string, error) {
	switch {
	case strings.HasPrefix(s, "\n"):
		return s[1:], nil
	case strings.HasPrefix(s, "\r\n"):
		return s[2:], nil
	default:
		return s, noMatch("line ending", s)
	}
}

// notLineEnding consumes the rest of the line. A carriage return that is not
// part of "\r\n" does not match.
func notLineEnding(s string) (string, error) {
	i := strings.IndexAny(s, "\r\n")
	switch {
	case i < 0:
		return "", nil
	case s[i] == '\r' && !strings.HasPrefix(s[i:], "\r\n"):
		return s, noMatch("line ending", s[i:])
	default:
		return s[i:], nil
	}
}

// parseUint consumes a run of decimal digits. Values that overflow [bitSize]
// do not match.
func parseUint(s string, bitSize int) (uint64, string, error) {
	end := 0
	for end < len(s) && '0' <= s[end] && s[end] <= '9' {
		end++
	}
	expected := fmt.Sprintf("u%d", bitSize)
	if end == 0 {
		return 0, s, noMatch(expected, s)
	}
	v, err := strconv.ParseUint(s[:end], 10, bitSize)
	if err != nil {
		return 0, s, noMatch(expected, s)
	}
	return v, s[end:], nil
}

func parseU8(s string) (uint8, string, error) {
	v, rest, err := parseUint(s, 8)
	return uint8(v), rest, err
}

func parseU16(s string) (uint16, string, error) {
	v, rest, err := parseUint(s, 16)
	return uint16(v), rest, err
}

func ParseNodeState(s string) (NodeState, string, error) {
	if rest, err := tag(s, runningStr); err == nil {
		return Running, rest, nil
	}
	if rest, err := tag(s, stoppedStr); err == nil {
		return Stopped, rest, nil
	}
	return Stopped, s, noMatch("node state", s)
}

// ParseNodeLine parses a line such as
//
//	validator-group-1:cctl-node-1    RUNNING   pid 428229, uptime 0:09:06
func ParseNodeLine(s string) (NodeRecord, string, error) {
	return parseTopologyLine(s, KindNode)
}

// ParseSidecarLine parses a line such as
//
//	validator-group-1:cctl-node-1-sidecar    RUNNING   pid 626096, uptime 0:00:03
func ParseSidecarLine(s string) (NodeRecord, string, error) {
	return parseTopologyLine(s, KindSidecar)
}

func parseTopologyLine(s string, kind NodeKind) (NodeRecord, string, error) {
	input := s
	s = multispace0(s)
	s, err := tag(s, groupPrefix)
	if err != nil {
		return NodeRecord{}, input, err
	}
	groupID, s, err := parseU8(s)
	if err != nil {
		return NodeRecord{}, input, err
	}
	if s, err = tag(s, nodeInfix); err != nil {
		return NodeRecord{}, input, err
	}
	nodeID, s, err := parseU8(s)
	if err != nil {
		return NodeRecord{}, input, err
	}
	if kind == KindSidecar {
		if s, err = tag(s, sidecarSuffix); err != nil {
			return NodeRecord{}, input, err
		}
	}
	if s, err = space1(s); err != nil {
		return NodeRecord{}, input, err
	}
	state, s, err := ParseNodeState(s)
	if err != nil {
		return NodeRecord{}, input, err
	}
	if s, err = notLineEnding(s); err != nil {
		return NodeRecord{}, input, err
	}
	return NodeRecord{
		Kind:    kind,
		GroupID: groupID,
		NodeID:  nodeID,
		State:   state,
	}, s, nil
}

// ParseTopologyLine parses either a sidecar or a node line. The sidecar form
// extends the node form so it is attempted first.
func ParseTopologyLine(s string) (NodeRecord, string, error) {
	if record, rest, err := ParseSidecarLine(s); err == nil {
		return record, rest, nil
	}
	return ParseNodeLine(s)
}

// ParseNetStartOutput parses the topology printed by cctl-infra-net-start.
// Everything before the first topology line is ignored and parsing stops at
// the first line that is neither a node nor a sidecar line.
func ParseNetStartOutput(s string) ([]NodeRecord, string, error) {
	s, err := takeUntil(s, topologyMarker)
	if err != nil {
		return nil, s, fmt.Errorf("%w: %w", ErrNoTopology, err)
	}
	records, rest := separatedList(s, ParseTopologyLine)
	return records, rest, nil
}

// separatedList applies [parse] to consecutive newline separated items until
// an item fails to match. The remainder returned excludes the failed item and
// the separator preceding it.
func separatedList[T any](s string, parse func(string) (T, string, error)) ([]T, string) {
	items := []T{}
	item, rest, err := parse(s)
	if err != nil {
		return items, s
	}
	items = append(items, item)
	s = rest
	for {
		next, err := tag(s, sectionSeparator)
		if err != nil {
			return items, s
		}
		item, rest, err := parse(next)
		if err != nil {
			return items, s
		}
		items = append(items, item)
		s = rest
	}
}

func parseSectionHeader(s, header string) (uint8, string, error) {
	s, err := takeUntil(s, header)
	if err != nil {
		return 0, s, err
	}
	if s, err = tag(s, header); err != nil {
		return 0, s, err
	}
	return parseU8(s)
}

// ParseNodePortsID parses the header of a node port section such as
//
//	2024-09-02T08:44:46.871632 [INFO] [124520] CCTL :: NODE-1
func ParseNodePortsID(s string) (uint8, string, error) {
	return parseSectionHeader(s, nodeHeader)
}

func ParseSidecarPortsID(s string) (uint8, string, error) {
	return parseSectionHeader(s, sidecarHeader)
}

// ParsePort scans forward to [label] and then to the next "-> " marker and
// parses the port that follows it, e.g.
//
//	CCTL ::     PROTOCOL ----> 11101
func ParsePort(label, s string) (uint16, string, error) {
	s, err := takeUntil(s, label)
	if err != nil {
		return 0, s, err
	}
	if s, err = takeUntil(s, portMarker); err != nil {
		return 0, s, err
	}
	if s, err = tag(s, portMarker); err != nil {
		return 0, s, err
	}
	return parseU16(s)
}

// parsePortLines parses one port per label. Consecutive ports are separated
// by a line ending and the tail of the last line is ignored.
func parsePortLines(s string, labels []string) ([]uint16, string, error) {
	ports := make([]uint16, len(labels))
	for i, label := range labels {
		var err error
		if s, err = lineEnding(s); err != nil {
			return nil, s, err
		}
		if ports[i], s, err = ParsePort(label, s); err != nil {
			return nil, s, err
		}
	}
	s, err := notLineEnding(s)
	return ports, s, err
}

func ParseNodePortsSection(s string) (NodePortsRecord, string, error) {
	input := s
	id, s, err := ParseNodePortsID(s)
	if err != nil {
		return NodePortsRecord{}, input, err
	}
	ports, s, err := parsePortLines(s, nodePortLabels[:])
	if err != nil {
		return NodePortsRecord{}, input, err
	}
	return NodePortsRecord{
		NodeID: id,
		Ports: NodePorts{
			ProtocolPort: ports[0],
			BinaryPort:   ports[1],
			RESTPort:     ports[2],
			SSEPort:      ports[3],
		},
	}, s, nil
}

func ParseSidecarPortsSection(s string) (SidecarPortsRecord, string, error) {
	input := s
	id, s, err := ParseSidecarPortsID(s)
	if err != nil {
		return SidecarPortsRecord{}, input, err
	}
	ports, s, err := parsePortLines(s, sidecarPortLabels[:])
	if err != nil {
		return SidecarPortsRecord{}, input, err
	}
	return SidecarPortsRecord{
		NodeID: id,
		Ports: SidecarPorts{
			NodeClientPort:      ports[0],
			RPCPort:             ports[1],
			SpeculativeExecPort: ports[2],
		},
	}, s, nil
}

// ParseNodePortsOutput parses the report printed by cctl-infra-node-view-ports.
// Output without any port section yields an empty result.
func ParseNodePortsOutput(s string) ([]NodePortsRecord, string) {
	return separatedList(s, ParseNodePortsSection)
}

// ParseSidecarPortsOutput parses the report printed by
// cctl-infra-sidecar-view-ports.
func ParseSidecarPortsOutput(s string) ([]SidecarPortsRecord, string) {
	return separatedList(s, ParseSidecarPortsSection)
}
