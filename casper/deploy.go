// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cspr-tools/cctlnet/utils/crypto"
)

const (
	DefaultGasPrice = 1

	// rfc3339 with millisecond precision, as the node renders timestamps.
	timestampFormat = "2006-01-02T15:04:05.000Z"
)

var (
	ErrEmptyChainName = errors.New("chain name is empty")
	errNonPositiveTTL = errors.New("ttl must be positive")
)

// ExecutableDeployItem is the code executed by a deploy. Only module bytes
// items are built here: installing a contract and standard payment both use
// them.
type ExecutableDeployItem struct {
	ModuleBytes []byte
	Args        RuntimeArgs
}

// NewStandardPayment pays for execution from the account's main purse with
// [amount] motes.
func NewStandardPayment(amount *big.Int) (ExecutableDeployItem, error) {
	value, err := NewCLValueU512(amount)
	if err != nil {
		return ExecutableDeployItem{}, fmt.Errorf("invalid payment amount: %w", err)
	}
	return ExecutableDeployItem{
		ModuleBytes: []byte{},
		Args:        RuntimeArgs{}.With("amount", value),
	}, nil
}

func (i ExecutableDeployItem) appendBytes(b []byte) []byte {
	b = appendU8(b, 0) // ModuleBytes
	b = appendBytes(b, i.ModuleBytes)
	return i.Args.appendBytes(b)
}

func (i ExecutableDeployItem) MarshalJSON() ([]byte, error) {
	type moduleBytes struct {
		ModuleBytes string      `json:"module_bytes"`
		Args        RuntimeArgs `json:"args"`
	}
	return json.Marshal(map[string]moduleBytes{
		"ModuleBytes": {
			ModuleBytes: hex.EncodeToString(i.ModuleBytes),
			Args:        i.Args,
		},
	})
}

type DeployHeader struct {
	Account      PublicKey
	Timestamp    time.Time
	TTL          time.Duration
	GasPrice     uint64
	BodyHash     Hash
	Dependencies []Hash
	ChainName    string
}

func (h DeployHeader) Bytes() []byte {
	b := h.Account.Bytes()
	b = appendU64(b, uint64(h.Timestamp.UnixMilli()))
	b = appendU64(b, uint64(h.TTL.Milliseconds()))
	b = appendU64(b, h.GasPrice)
	b = append(b, h.BodyHash[:]...)
	b = appendU32(b, uint32(len(h.Dependencies)))
	for _, dep := range h.Dependencies {
		b = append(b, dep[:]...)
	}
	return appendString(b, h.ChainName)
}

func (h DeployHeader) MarshalJSON() ([]byte, error) {
	deps := h.Dependencies
	if deps == nil {
		deps = []Hash{}
	}
	return json.Marshal(struct {
		Account      PublicKey `json:"account"`
		Timestamp    string    `json:"timestamp"`
		TTL          string    `json:"ttl"`
		GasPrice     uint64    `json:"gas_price"`
		BodyHash     Hash      `json:"body_hash"`
		Dependencies []Hash    `json:"dependencies"`
		ChainName    string    `json:"chain_name"`
	}{
		Account:      h.Account,
		Timestamp:    FormatTimestamp(h.Timestamp),
		TTL:          FormatTimeDiff(h.TTL),
		GasPrice:     h.GasPrice,
		BodyHash:     h.BodyHash,
		Dependencies: deps,
		ChainName:    h.ChainName,
	})
}

type Approval struct {
	Signer    PublicKey `json:"signer"`
	Signature Signature `json:"signature"`
}

type Deploy struct {
	Hash      Hash                 `json:"hash"`
	Header    DeployHeader         `json:"header"`
	Payment   ExecutableDeployItem `json:"payment"`
	Session   ExecutableDeployItem `json:"session"`
	Approvals []Approval           `json:"approvals"`
}

type DeployParams struct {
	ChainName string
	Timestamp time.Time
	TTL       time.Duration
	GasPrice  uint64
	Payment   ExecutableDeployItem
	Session   ExecutableDeployItem
}

// NewDeploy builds a deploy from [params] and signs it with [key]. The
// account of the deploy is the public key of [key].
func NewDeploy(params DeployParams, key crypto.PrivateKey) (*Deploy, error) {
	if params.ChainName == "" {
		return nil, ErrEmptyChainName
	}
	if params.TTL <= 0 {
		return nil, errNonPositiveTTL
	}
	gasPrice := params.GasPrice
	if gasPrice == 0 {
		gasPrice = DefaultGasPrice
	}

	body := params.Payment.appendBytes(nil)
	body = params.Session.appendBytes(body)

	header := DeployHeader{
		Account:   NewPublicKey(key.PublicKey()),
		Timestamp: params.Timestamp.UTC().Truncate(time.Millisecond),
		TTL:       params.TTL.Truncate(time.Millisecond),
		GasPrice:  gasPrice,
		BodyHash:  ComputeHash(body),
		ChainName: params.ChainName,
	}
	deploy := &Deploy{
		Hash:    ComputeHash(header.Bytes()),
		Header:  header,
		Payment: params.Payment,
		Session: params.Session,
	}
	if err := deploy.Sign(key); err != nil {
		return nil, err
	}
	return deploy, nil
}

// Sign appends an approval by [key] over the deploy hash.
func (d *Deploy) Sign(key crypto.PrivateKey) error {
	sig, err := key.Sign(d.Hash[:])
	if err != nil {
		return fmt.Errorf("failed to sign deploy %s: %w", d.Hash, err)
	}
	d.Approvals = append(d.Approvals, Approval{
		Signer:    NewPublicKey(key.PublicKey()),
		Signature: Signature{Algorithm: key.Algorithm(), Raw: sig},
	})
	return nil
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

// FormatTimeDiff renders [d] the way the node renders durations, e.g. "1m",
// "1h 30m" or "2days 500ms".
func FormatTimeDiff(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	ms := d.Milliseconds()
	units := []struct {
		ms     int64
		suffix string
	}{
		{ms: 24 * 60 * 60 * 1000, suffix: "day"},
		{ms: 60 * 60 * 1000, suffix: "h"},
		{ms: 60 * 1000, suffix: "m"},
		{ms: 1000, suffix: "s"},
		{ms: 1, suffix: "ms"},
	}
	var parts []string
	for _, unit := range units {
		n := ms / unit.ms
		if n == 0 {
			continue
		}
		ms -= n * unit.ms
		suffix := unit.suffix
		if suffix == "day" && n > 1 {
			suffix = "days"
		}
		parts = append(parts, fmt.Sprintf("%d%s", n, suffix))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}
