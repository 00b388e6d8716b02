// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

var (
	errNegativeUint  = errors.New("negative value for unsigned type")
	errUintOverflow  = errors.New("value overflows U512")
	errMalformedArg  = errors.New("malformed named argument")
	maxU512          = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 512), big.NewInt(1))
	unitParsed       = json.RawMessage("null")
	emptyRuntimeArgs = []byte("[]")
)

// CLValue is a serialized value together with its type. Parsed is the
// human-readable rendering and is informational only.
type CLValue struct {
	Type   CLType
	Bytes  []byte
	Parsed json.RawMessage
}

type clValueJSON struct {
	CLType CLType          `json:"cl_type"`
	Bytes  string          `json:"bytes"`
	Parsed json.RawMessage `json:"parsed,omitempty"`
}

func (v CLValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(clValueJSON{
		CLType: v.Type,
		Bytes:  hex.EncodeToString(v.Bytes),
		Parsed: v.Parsed,
	})
}

func (v *CLValue) UnmarshalJSON(b []byte) error {
	var raw clValueJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	valueBytes, err := hex.DecodeString(raw.Bytes)
	if err != nil {
		return fmt.Errorf("invalid CLValue bytes: %w", err)
	}
	*v = CLValue{
		Type:   raw.CLType,
		Bytes:  valueBytes,
		Parsed: raw.Parsed,
	}
	return nil
}

// appendBytes writes the length-prefixed value bytes followed by the type.
func (v CLValue) appendBytes(b []byte) []byte {
	b = appendBytes(b, v.Bytes)
	return v.Type.appendBytes(b)
}

func mustParsed(v interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func NewCLValueBool(v bool) CLValue {
	b := byte(0)
	if v {
		b = 1
	}
	return CLValue{Type: SimpleCLType(CLTypeBool), Bytes: []byte{b}, Parsed: mustParsed(v)}
}

func NewCLValueI32(v int32) CLValue {
	return CLValue{Type: SimpleCLType(CLTypeI32), Bytes: appendU32(nil, uint32(v)), Parsed: mustParsed(v)}
}

func NewCLValueI64(v int64) CLValue {
	return CLValue{Type: SimpleCLType(CLTypeI64), Bytes: appendU64(nil, uint64(v)), Parsed: mustParsed(v)}
}

func NewCLValueU8(v uint8) CLValue {
	return CLValue{Type: SimpleCLType(CLTypeU8), Bytes: []byte{v}, Parsed: mustParsed(v)}
}

func NewCLValueU32(v uint32) CLValue {
	return CLValue{Type: SimpleCLType(CLTypeU32), Bytes: appendU32(nil, v), Parsed: mustParsed(v)}
}

func NewCLValueU64(v uint64) CLValue {
	return CLValue{Type: SimpleCLType(CLTypeU64), Bytes: appendU64(nil, v), Parsed: mustParsed(v)}
}

// NewCLValueU512 fails for negative values and values wider than 512 bits.
func NewCLValueU512(v *big.Int) (CLValue, error) {
	if v.Sign() < 0 {
		return CLValue{}, errNegativeUint
	}
	if v.Cmp(maxU512) > 0 {
		return CLValue{}, errUintOverflow
	}
	return CLValue{
		Type:   SimpleCLType(CLTypeU512),
		Bytes:  appendBigUint(nil, v),
		Parsed: mustParsed(v.String()),
	}, nil
}

func NewCLValueString(v string) CLValue {
	return CLValue{Type: SimpleCLType(CLTypeString), Bytes: appendString(nil, v), Parsed: mustParsed(v)}
}

func NewCLValueUnit() CLValue {
	return CLValue{Type: SimpleCLType(CLTypeUnit), Bytes: []byte{}, Parsed: unitParsed}
}

func NewCLValueByteArray(v []byte) CLValue {
	return CLValue{
		Type:   ByteArrayCLType(uint32(len(v))),
		Bytes:  append([]byte{}, v...),
		Parsed: mustParsed(hex.EncodeToString(v)),
	}
}

func NewCLValuePublicKey(pk PublicKey) CLValue {
	return CLValue{Type: SimpleCLType(CLTypePublicKey), Bytes: pk.Bytes(), Parsed: mustParsed(pk.String())}
}

// NewCLValueOptionNone is an absent value of type Option<inner>.
func NewCLValueOptionNone(inner CLType) CLValue {
	return CLValue{Type: OptionCLType(inner), Bytes: []byte{0}, Parsed: unitParsed}
}

func NewCLValueOptionSome(inner CLValue) CLValue {
	return CLValue{
		Type:   OptionCLType(inner.Type),
		Bytes:  append([]byte{1}, inner.Bytes...),
		Parsed: inner.Parsed,
	}
}

type NamedArg struct {
	Name  string
	Value CLValue
}

func (a NamedArg) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{a.Name, a.Value})
}

func (a *NamedArg) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: expected [name, value], got %d elements", errMalformedArg, len(pair))
	}
	if err := json.Unmarshal(pair[0], &a.Name); err != nil {
		return fmt.Errorf("%w: %w", errMalformedArg, err)
	}
	if err := json.Unmarshal(pair[1], &a.Value); err != nil {
		return fmt.Errorf("%w: %q: %w", errMalformedArg, a.Name, err)
	}
	return nil
}

// RuntimeArgs are the ordered named arguments passed to a deploy item.
type RuntimeArgs []NamedArg

// With returns a copy of [args] with [name] appended.
func (args RuntimeArgs) With(name string, value CLValue) RuntimeArgs {
	out := make(RuntimeArgs, len(args), len(args)+1)
	copy(out, args)
	return append(out, NamedArg{Name: name, Value: value})
}

func (args RuntimeArgs) MarshalJSON() ([]byte, error) {
	if args == nil {
		return emptyRuntimeArgs, nil
	}
	return json.Marshal([]NamedArg(args))
}

func (args RuntimeArgs) appendBytes(b []byte) []byte {
	b = appendU32(b, uint32(len(args)))
	for _, arg := range args {
		b = appendString(b, arg.Name)
		b = arg.Value.appendBytes(b)
	}
	return b
}

func (args RuntimeArgs) Bytes() []byte {
	return args.appendBytes(nil)
}
