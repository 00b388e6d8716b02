// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"errors"

	"golang.org/x/crypto/ed25519"
)

var (
	_ PublicKey  = (*PublicKeyED25519)(nil)
	_ PrivateKey = (*PrivateKeyED25519)(nil)

	errWrongPublicKeySize  = errors.New("wrong public key size")
	errWrongPrivateKeySize = errors.New("wrong private key size")
)

func NewPrivateKeyED25519() (*PrivateKeyED25519, error) {
	_, k, err := ed25519.GenerateKey(nil)
	return &PrivateKeyED25519{sk: k}, err
}

// ToPrivateKeyED25519 accepts either a 32 byte seed or a 64 byte expanded key.
func ToPrivateKeyED25519(b []byte) (*PrivateKeyED25519, error) {
	switch len(b) {
	case ed25519.SeedSize:
		return &PrivateKeyED25519{sk: ed25519.NewKeyFromSeed(b)}, nil
	case ed25519.PrivateKeySize:
		return &PrivateKeyED25519{sk: ed25519.PrivateKey(b)}, nil
	default:
		return nil, errWrongPrivateKeySize
	}
}

func ToPublicKeyED25519(b []byte) (*PublicKeyED25519, error) {
	if len(b) != ed25519.PublicKeySize {
		return nil, errWrongPublicKeySize
	}
	return &PublicKeyED25519{pk: b}, nil
}

type PublicKeyED25519 struct {
	pk ed25519.PublicKey
}

func (*PublicKeyED25519) Algorithm() Algorithm {
	return ED25519
}

func (k *PublicKeyED25519) Verify(msg, sig []byte) bool {
	return ed25519.Verify(k.pk, msg, sig)
}

func (k *PublicKeyED25519) Bytes() []byte {
	return k.pk
}

type PrivateKeyED25519 struct {
	sk ed25519.PrivateKey
	pk *PublicKeyED25519
}

func (*PrivateKeyED25519) Algorithm() Algorithm {
	return ED25519
}

func (k *PrivateKeyED25519) PublicKey() PublicKey {
	if k.pk == nil {
		k.pk = &PublicKeyED25519{
			pk: k.sk.Public().(ed25519.PublicKey),
		}
	}
	return k.pk
}

func (k *PrivateKeyED25519) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(k.sk, msg), nil
}

// Seed returns the 32 byte private seed.
func (k *PrivateKeyED25519) Seed() []byte {
	return k.sk.Seed()
}
