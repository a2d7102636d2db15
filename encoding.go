// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The veilcrypt developers. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretsharing

import (
	"encoding/binary"
	"fmt"

	group "github.com/bytemare/crypto"
)

const (
	encShare byte = iota + 1
	encCommitment
)

func encodedLength(encID byte, g group.Group, other ...uint64) uint64 {
	eLen := uint64(g.ElementLength())
	sLen := uint64(g.ScalarLength())

	switch encID {
	case encShare:
		return 1 + 8 + sLen
	case encCommitment:
		return 1 + 8 + other[0]*eLen
	default:
		panic("encoded id not recognized")
	}
}

// Encode serializes the share into a compact byte string: the group identifier, the little-endian shareholder
// identifier, and the fixed-width scalar encoding.
func (s *Share) Encode() []byte {
	out := make([]byte, 9, encodedLength(encShare, s.Group))
	out[0] = byte(s.Group)
	binary.LittleEndian.PutUint64(out[1:9], s.ID)

	return append(out, s.Secret.Encode()...)
}

// Decode deserializes the compact encoding obtained from Encode(), or returns an error.
func (s *Share) Decode(data []byte) error {
	if len(data) <= 9 {
		return ErrInvalidLength
	}

	g := group.Group(data[0])
	if !g.Available() {
		return ErrInvalidGroup
	}

	if uint64(len(data)) != encodedLength(encShare, g) {
		return ErrInvalidLength
	}

	id := binary.LittleEndian.Uint64(data[1:9])
	if id == 0 {
		return ErrShareIndexZero
	}

	secret := g.NewScalar()
	if err := secret.Decode(data[9:]); err != nil {
		return fmt.Errorf("%w: %w", ErrFieldElementOutOfRange, err)
	}

	s.Group = g
	s.ID = id
	s.Secret = secret

	return nil
}

// Encode serializes the commitment into a compact byte string: the group identifier, the little-endian element
// count, and the fixed-width element encodings in coefficient order.
func (c Commitment) Encode(g group.Group) []byte {
	out := make([]byte, 9, encodedLength(encCommitment, g, uint64(len(c))))
	out[0] = byte(g)
	binary.LittleEndian.PutUint64(out[1:9], uint64(len(c)))

	for _, com := range c {
		out = append(out, com.Encode()...)
	}

	return out
}

// DecodeCommitment deserializes the compact encoding obtained from Commitment.Encode() for the group g, or returns
// an error.
func DecodeCommitment(g group.Group, data []byte) (Commitment, error) {
	if !g.Available() {
		return nil, ErrInvalidGroup
	}

	if len(data) < 9 {
		return nil, ErrInvalidLength
	}

	if group.Group(data[0]) != g {
		return nil, ErrGroupMismatch
	}

	n := binary.LittleEndian.Uint64(data[1:9])
	if n > uint64(len(data)) || uint64(len(data)) != encodedLength(encCommitment, g, n) {
		return nil, ErrInvalidLength
	}

	eLen := g.ElementLength()
	coms := make(Commitment, n)
	offset := 9

	for i := range coms {
		e := g.NewElement()
		if err := e.Decode(data[offset : offset+eLen]); err != nil {
			return nil, fmt.Errorf("invalid encoding of commitment element %d: %w", i, err)
		}

		coms[i] = e
		offset += eLen
	}

	return coms, nil
}
