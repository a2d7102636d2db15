// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The veilcrypt developers. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretsharing_test

import (
	"crypto/sha512"
	"encoding/binary"
	"math/big"
	"testing"

	group "github.com/bytemare/crypto"
)

var testGroups = []group.Group{
	group.Ristretto255Sha512,
	group.P256Sha256,
	group.P384Sha384,
	group.P521Sha512,
	group.Edwards25519Sha512,
	group.Secp256k1,
}

func testAll(t *testing.T, f func(t *testing.T, g group.Group)) {
	for _, g := range testGroups {
		t.Run(g.String(), func(t *testing.T) {
			f(t, g)
		})
	}
}

// deterministicReader yields a reproducible byte stream derived from a seed, standing in for crypto/rand in tests
// that need fixed vectors.
type deterministicReader struct {
	seed    []byte
	buf     []byte
	counter uint64
}

func newDeterministicReader(seed string) *deterministicReader {
	return &deterministicReader{seed: []byte(seed)}
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	for len(r.buf) < len(p) {
		block := make([]byte, 8)
		binary.LittleEndian.PutUint64(block, r.counter)
		sum := sha512.Sum512(append(append([]byte{}, r.seed...), block...))
		r.buf = append(r.buf, sum[:]...)
		r.counter++
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]

	return n, nil
}

// badScalar returns the big-endian encoding of the group order, which no group accepts as a scalar.
func badScalar(t *testing.T, g group.Group) []byte {
	order, ok := new(big.Int).SetString(g.Order(), 10)
	if !ok {
		t.Fatalf("setting int failed: %v", g.Order())
	}

	encoded := make([]byte, g.ScalarLength())
	order.FillBytes(encoded)

	return encoded
}
