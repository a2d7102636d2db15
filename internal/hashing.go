// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The veilcrypt developers. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal provides scalar and element derivation routines that are not part of the public API.
package internal

import (
	"errors"

	"filippo.io/edwards25519"
	group "github.com/bytemare/crypto"
	"github.com/bytemare/hash"
	"github.com/gtank/ristretto255"
)

const (
	ristretto255ContextString = "SSS-RISTRETTO255-SHA512-v1"
	ed448ContextString        = "SSS-ED448-SHAKE256-v1"
	p256ContextString         = "SSS-P256-SHA256-v1"
	p384ContextString         = "SSS-P384-SHA384-v1"
	p521ContextString         = "SSS-P521-SHA512-v1"
	ed25519ContextString      = "SSS-ED25519-SHA512-v1"
	secp256k1ContextString    = "SSS-secp256k1-SHA256-v1"
)

var errUnavailableGroup = errors.New("group not available")

type ciphersuite struct {
	hash          hash.Hasher
	contextString []byte
}

var ciphersuites = [group.Secp256k1 + 1]ciphersuite{
	{ // Ristretto255
		hash:          hash.SHA512.New(),
		contextString: []byte(ristretto255ContextString),
	},
	{ // Ed448 - unused
		hash:          hash.SHAKE256.New(),
		contextString: []byte(ed448ContextString),
	},
	{ // P256
		hash:          hash.SHA256.New(),
		contextString: []byte(p256ContextString),
	},
	{ // P384
		hash:          hash.SHA384.New(),
		contextString: []byte(p384ContextString),
	},
	{ // P521
		hash:          hash.SHA512.New(),
		contextString: []byte(p521ContextString),
	},
	{ // Ed25519
		hash:          hash.SHA512.New(),
		contextString: []byte(ed25519ContextString),
	},
	{ // Secp256k1
		hash:          hash.SHA256.New(),
		contextString: []byte(secp256k1ContextString),
	},
}

func ed25519ScalarFrom64Bytes(uniform []byte) *group.Scalar {
	s := edwards25519.NewScalar()
	if _, err := s.SetUniformBytes(uniform); err != nil {
		// Fails only if len(uniform) != 64, which UniformScalar already guarantees.
		panic(err)
	}

	s2 := group.Edwards25519Sha512.NewScalar()
	if err := s2.Decode(s.Bytes()); err != nil {
		// Can't fail because the underlying encoding/decoding is compatible.
		panic(err)
	}

	return s2
}

// UniformScalar maps 64 uniformly random bytes to a scalar of the group without bias.
func UniformScalar(g group.Group, uniform []byte) *group.Scalar {
	if len(uniform) != 64 {
		panic("uniform input must be 64 bytes")
	}

	c := ciphersuites[g-1]

	switch g {
	case group.Edwards25519Sha512:
		return ed25519ScalarFrom64Bytes(uniform)
	case group.Ristretto255Sha512:
		s := ristretto255.NewScalar().FromUniformBytes(uniform)

		sc := g.NewScalar()
		if err := sc.Decode(s.Encode(nil)); err != nil {
			// Can't fail because the underlying encoding/decoding is compatible.
			panic(err)
		}

		return sc
	case group.P256Sha256, group.P384Sha384, group.P521Sha512, group.Secp256k1:
		return g.HashToScalar(uniform, append(c.contextString, []byte("uniform")...))
	default:
		panic(errUnavailableGroup)
	}
}

// DeriveElement maps input to a group element, domain-separated by dst and the group's context string.
func DeriveElement(g group.Group, input, dst []byte) *group.Element {
	if !g.Available() {
		panic(errUnavailableGroup)
	}

	c := ciphersuites[g-1]
	h := c.hash.Hash(0, c.contextString, dst, input)

	return g.HashToGroup(h, append(c.contextString, dst...))
}
