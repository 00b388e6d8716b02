// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

const (
	pkcs8PEMType = "PRIVATE KEY"
	sec1PEMType  = "EC PRIVATE KEY"
)

var (
	oidED25519        = asn1.ObjectIdentifier{1, 3, 101, 112}
	oidECPublicKey    = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidCurveSECP256K1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}

	ErrNoPEMBlock       = errors.New("no PEM block found")
	ErrUnsupportedKey   = errors.New("unsupported private key")
	errUnsupportedCurve = errors.New("unsupported elliptic curve")
)

type pkcs8 struct {
	Version    int
	Algo       pkix.AlgorithmIdentifier
	PrivateKey []byte
}

// ecPrivateKey is the SEC 1 structure. The curve is required to be
// secp256k1.
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

// LoadPrivateKeyFile reads a PEM encoded ed25519 or secp256k1 private key.
func LoadPrivateKeyFile(path string) (PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %s: %w", path, err)
	}
	key, err := ParsePrivateKeyPEM(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %s: %w", path, err)
	}
	return key, nil
}

func ParsePrivateKeyPEM(b []byte) (PrivateKey, error) {
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, ErrNoPEMBlock
	}
	switch block.Type {
	case pkcs8PEMType:
		return parsePKCS8(block.Bytes)
	case sec1PEMType:
		return parseSEC1(block.Bytes)
	default:
		return nil, fmt.Errorf("%w: PEM type %q", ErrUnsupportedKey, block.Type)
	}
}

func parsePKCS8(der []byte) (PrivateKey, error) {
	var key pkcs8
	if _, err := asn1.Unmarshal(der, &key); err != nil {
		return nil, err
	}
	switch {
	case key.Algo.Algorithm.Equal(oidED25519):
		var seed []byte
		if _, err := asn1.Unmarshal(key.PrivateKey, &seed); err != nil {
			return nil, err
		}
		return ToPrivateKeyED25519(seed)
	case key.Algo.Algorithm.Equal(oidECPublicKey):
		var curve asn1.ObjectIdentifier
		if _, err := asn1.Unmarshal(key.Algo.Parameters.FullBytes, &curve); err != nil {
			return nil, err
		}
		if !curve.Equal(oidCurveSECP256K1) {
			return nil, fmt.Errorf("%w: %s", errUnsupportedCurve, curve)
		}
		return parseSEC1(key.PrivateKey)
	default:
		return nil, fmt.Errorf("%w: algorithm %s", ErrUnsupportedKey, key.Algo.Algorithm)
	}
}

func parseSEC1(der []byte) (PrivateKey, error) {
	var key ecPrivateKey
	if _, err := asn1.Unmarshal(der, &key); err != nil {
		return nil, err
	}
	if len(key.NamedCurveOID) != 0 && !key.NamedCurveOID.Equal(oidCurveSECP256K1) {
		return nil, fmt.Errorf("%w: %s", errUnsupportedCurve, key.NamedCurveOID)
	}
	return ToPrivateKeySECP256K1(key.PrivateKey)
}

// MarshalPrivateKeyPEM encodes [key] the way the node tooling writes
// secret_key.pem: PKCS#8 for ed25519 and SEC 1 for secp256k1.
func MarshalPrivateKeyPEM(key PrivateKey) ([]byte, error) {
	switch k := key.(type) {
	case *PrivateKeyED25519:
		seed, err := asn1.Marshal(k.Seed())
		if err != nil {
			return nil, err
		}
		der, err := asn1.Marshal(pkcs8{
			Algo:       pkix.AlgorithmIdentifier{Algorithm: oidED25519},
			PrivateKey: seed,
		})
		if err != nil {
			return nil, err
		}
		return pem.EncodeToMemory(&pem.Block{Type: pkcs8PEMType, Bytes: der}), nil
	case *PrivateKeySECP256K1:
		der, err := asn1.Marshal(ecPrivateKey{
			Version:       1,
			PrivateKey:    k.Bytes(),
			NamedCurveOID: oidCurveSECP256K1,
		})
		if err != nil {
			return nil, err
		}
		return pem.EncodeToMemory(&pem.Block{Type: sec1PEMType, Bytes: der}), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
}
