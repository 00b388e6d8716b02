// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type CLTypeTag uint8

const (
	CLTypeBool CLTypeTag = iota
	CLTypeI32
	CLTypeI64
	CLTypeU8
	CLTypeU32
	CLTypeU64
	CLTypeU128
	CLTypeU256
	CLTypeU512
	CLTypeUnit
	CLTypeString
	CLTypeKey
	CLTypeURef
	CLTypeOption
	CLTypeList
	CLTypeByteArray
	CLTypeResult
	CLTypeMap
	CLTypeTuple1
	CLTypeTuple2
	CLTypeTuple3
	CLTypeAny
	CLTypePublicKey
)

var (
	errUnknownCLType = errors.New("unknown CL type")

	simpleCLTypeNames = map[CLTypeTag]string{
		CLTypeBool:      "Bool",
		CLTypeI32:       "I32",
		CLTypeI64:       "I64",
		CLTypeU8:        "U8",
		CLTypeU32:       "U32",
		CLTypeU64:       "U64",
		CLTypeU128:      "U128",
		CLTypeU256:      "U256",
		CLTypeU512:      "U512",
		CLTypeUnit:      "Unit",
		CLTypeString:    "String",
		CLTypeKey:       "Key",
		CLTypeURef:      "URef",
		CLTypeAny:       "Any",
		CLTypePublicKey: "PublicKey",
	}
	simpleCLTypeTags = func() map[string]CLTypeTag {
		m := make(map[string]CLTypeTag, len(simpleCLTypeNames))
		for tag, name := range simpleCLTypeNames {
			m[name] = tag
		}
		return m
	}()
)

// CLType describes the type of a CLValue. Inner holds the nested types of
// Option, List, Result (ok, err), Map (key, value) and the tuples. Size is
// only meaningful for ByteArray.
type CLType struct {
	Tag   CLTypeTag
	Inner []CLType
	Size  uint32
}

func SimpleCLType(tag CLTypeTag) CLType {
	return CLType{Tag: tag}
}

func OptionCLType(inner CLType) CLType {
	return CLType{Tag: CLTypeOption, Inner: []CLType{inner}}
}

func ListCLType(inner CLType) CLType {
	return CLType{Tag: CLTypeList, Inner: []CLType{inner}}
}

func ByteArrayCLType(size uint32) CLType {
	return CLType{Tag: CLTypeByteArray, Size: size}
}

func ResultCLType(ok, err CLType) CLType {
	return CLType{Tag: CLTypeResult, Inner: []CLType{ok, err}}
}

func MapCLType(key, value CLType) CLType {
	return CLType{Tag: CLTypeMap, Inner: []CLType{key, value}}
}

func TupleCLType(elems ...CLType) (CLType, error) {
	switch len(elems) {
	case 1:
		return CLType{Tag: CLTypeTuple1, Inner: elems}, nil
	case 2:
		return CLType{Tag: CLTypeTuple2, Inner: elems}, nil
	case 3:
		return CLType{Tag: CLTypeTuple3, Inner: elems}, nil
	default:
		return CLType{}, fmt.Errorf("%w: tuple of %d elements", errUnknownCLType, len(elems))
	}
}

// Bytes returns the tag followed by the encoding of any nested types.
func (t CLType) Bytes() []byte {
	return t.appendBytes(nil)
}

func (t CLType) appendBytes(b []byte) []byte {
	b = appendU8(b, uint8(t.Tag))
	if t.Tag == CLTypeByteArray {
		return appendU32(b, t.Size)
	}
	for _, inner := range t.Inner {
		b = inner.appendBytes(b)
	}
	return b
}

func (t CLType) MarshalJSON() ([]byte, error) {
	if name, ok := simpleCLTypeNames[t.Tag]; ok {
		return json.Marshal(name)
	}
	switch t.Tag {
	case CLTypeOption:
		return marshalNested("Option", t.Inner, 1)
	case CLTypeList:
		return marshalNested("List", t.Inner, 1)
	case CLTypeByteArray:
		return json.Marshal(map[string]uint32{"ByteArray": t.Size})
	case CLTypeResult:
		if len(t.Inner) != 2 {
			return nil, fmt.Errorf("%w: malformed Result", errUnknownCLType)
		}
		return json.Marshal(map[string]map[string]CLType{
			"Result": {"ok": t.Inner[0], "err": t.Inner[1]},
		})
	case CLTypeMap:
		if len(t.Inner) != 2 {
			return nil, fmt.Errorf("%w: malformed Map", errUnknownCLType)
		}
		return json.Marshal(map[string]map[string]CLType{
			"Map": {"key": t.Inner[0], "value": t.Inner[1]},
		})
	case CLTypeTuple1:
		return json.Marshal(map[string][]CLType{"Tuple1": t.Inner})
	case CLTypeTuple2:
		return json.Marshal(map[string][]CLType{"Tuple2": t.Inner})
	case CLTypeTuple3:
		return json.Marshal(map[string][]CLType{"Tuple3": t.Inner})
	default:
		return nil, fmt.Errorf("%w: tag %d", errUnknownCLType, t.Tag)
	}
}

func marshalNested(name string, inner []CLType, n int) ([]byte, error) {
	if len(inner) != n {
		return nil, fmt.Errorf("%w: malformed %s", errUnknownCLType, name)
	}
	return json.Marshal(map[string]CLType{name: inner[0]})
}

func (t *CLType) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		tag, ok := simpleCLTypeTags[name]
		if !ok {
			return fmt.Errorf("%w: %q", errUnknownCLType, name)
		}
		*t = SimpleCLType(tag)
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	if len(obj) != 1 {
		return fmt.Errorf("%w: expected a single variant, got %d", errUnknownCLType, len(obj))
	}
	for name, raw := range obj {
		switch name {
		case "Option", "List":
			var inner CLType
			if err := json.Unmarshal(raw, &inner); err != nil {
				return err
			}
			if name == "Option" {
				*t = OptionCLType(inner)
			} else {
				*t = ListCLType(inner)
			}
		case "ByteArray":
			var size uint32
			if err := json.Unmarshal(raw, &size); err != nil {
				return err
			}
			*t = ByteArrayCLType(size)
		case "Result":
			var r struct {
				Ok  CLType `json:"ok"`
				Err CLType `json:"err"`
			}
			if err := json.Unmarshal(raw, &r); err != nil {
				return err
			}
			*t = ResultCLType(r.Ok, r.Err)
		case "Map":
			var m struct {
				Key   CLType `json:"key"`
				Value CLType `json:"value"`
			}
			if err := json.Unmarshal(raw, &m); err != nil {
				return err
			}
			*t = MapCLType(m.Key, m.Value)
		case "Tuple1", "Tuple2", "Tuple3":
			var elems []CLType
			if err := json.Unmarshal(raw, &elems); err != nil {
				return err
			}
			want := int(name[len(name)-1] - '0')
			if len(elems) != want {
				return fmt.Errorf("%w: %s with %d elements", errUnknownCLType, name, len(elems))
			}
			tuple, err := TupleCLType(elems...)
			if err != nil {
				return err
			}
			*t = tuple
		default:
			return fmt.Errorf("%w: %q", errUnknownCLType, name)
		}
	}
	return nil
}
