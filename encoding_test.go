// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The veilcrypt developers. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretsharing_test

import (
	"errors"
	"testing"

	group "github.com/bytemare/crypto"

	secretsharing "github.com/veilcrypt/secretsharing"
)

func TestShare_EncodeDecode(t *testing.T) {
	testAll(t, func(t *testing.T, g group.Group) {
		shares, err := secretsharing.Shard(g, g.NewScalar().Random(), 2, 3, nil)
		if err != nil {
			t.Fatal(err)
		}

		for _, share := range shares {
			decoded := new(secretsharing.Share)
			if err := decoded.Decode(share.Encode()); err != nil {
				t.Fatal(err)
			}

			if decoded.Group != share.Group || decoded.ID != share.ID {
				t.Fatal("decoded share metadata differs")
			}

			if decoded.Secret.Equal(share.Secret) != 1 {
				t.Fatal("decoded share value differs")
			}
		}
	})
}

func TestShare_DecodeBadInput(t *testing.T) {
	testAll(t, func(t *testing.T, g group.Group) {
		shares, err := secretsharing.Shard(g, g.NewScalar().Random(), 2, 3, nil)
		if err != nil {
			t.Fatal(err)
		}

		encoded := shares[0].Encode()

		if err := new(secretsharing.Share).Decode(nil); !errors.Is(err, secretsharing.ErrInvalidLength) {
			t.Fatalf("expected %q for nil input, got %v", secretsharing.ErrInvalidLength, err)
		}

		if err := new(secretsharing.Share).Decode(encoded[:9]); !errors.Is(err, secretsharing.ErrInvalidLength) {
			t.Fatalf("expected %q for a truncated header, got %v", secretsharing.ErrInvalidLength, err)
		}

		if err := new(secretsharing.Share).Decode(encoded[:len(encoded)-1]); !errors.Is(
			err, secretsharing.ErrInvalidLength) {
			t.Fatalf("expected %q for truncated input, got %v", secretsharing.ErrInvalidLength, err)
		}

		bad := append([]byte{}, encoded...)
		bad[0] = 0
		if err := new(secretsharing.Share).Decode(bad); !errors.Is(err, secretsharing.ErrInvalidGroup) {
			t.Fatalf("expected %q for a bad group byte, got %v", secretsharing.ErrInvalidGroup, err)
		}

		// Identifier 0 is reserved and must not round-trip.
		zero := append([]byte{}, encoded...)
		for i := 1; i < 9; i++ {
			zero[i] = 0
		}
		if err := new(secretsharing.Share).Decode(zero); !errors.Is(err, secretsharing.ErrShareIndexZero) {
			t.Fatalf("expected %q, got %v", secretsharing.ErrShareIndexZero, err)
		}

		// A value at or above the group order is not a field element.
		outOfRange := append([]byte{}, encoded[:9]...)
		outOfRange = append(outOfRange, badScalar(t, g)...)
		if err := new(secretsharing.Share).Decode(outOfRange); !errors.Is(
			err, secretsharing.ErrFieldElementOutOfRange) {
			t.Fatalf("expected %q, got %v", secretsharing.ErrFieldElementOutOfRange, err)
		}
	})
}

func TestCommitment_EncodeDecode(t *testing.T) {
	testAll(t, func(t *testing.T, g group.Group) {
		_, commitment, err := secretsharing.ShardAndCommit(g, g.NewScalar().Random(), 3, 5, g.Base(), nil)
		if err != nil {
			t.Fatal(err)
		}

		decoded, err := secretsharing.DecodeCommitment(g, commitment.Encode(g))
		if err != nil {
			t.Fatal(err)
		}

		if len(decoded) != len(commitment) {
			t.Fatalf("expected %d elements, got %d", len(commitment), len(decoded))
		}

		for i := range commitment {
			if decoded[i].Equal(commitment[i]) != 1 {
				t.Fatalf("decoded element %d differs", i)
			}
		}
	})
}

func TestCommitment_DecodeBadInput(t *testing.T) {
	g := group.Ristretto255Sha512
	other := group.P256Sha256

	_, commitment, err := secretsharing.ShardAndCommit(g, g.NewScalar().Random(), 3, 5, g.Base(), nil)
	if err != nil {
		t.Fatal(err)
	}

	encoded := commitment.Encode(g)

	if _, err := secretsharing.DecodeCommitment(g, encoded[:5]); !errors.Is(err, secretsharing.ErrInvalidLength) {
		t.Fatalf("expected %q for truncated input, got %v", secretsharing.ErrInvalidLength, err)
	}

	if _, err := secretsharing.DecodeCommitment(g, encoded[:len(encoded)-1]); !errors.Is(
		err, secretsharing.ErrInvalidLength) {
		t.Fatalf("expected %q for a truncated element, got %v", secretsharing.ErrInvalidLength, err)
	}

	if _, err := secretsharing.DecodeCommitment(other, encoded); !errors.Is(err, secretsharing.ErrGroupMismatch) {
		t.Fatalf("expected %q for a foreign group, got %v", secretsharing.ErrGroupMismatch, err)
	}

	// Corrupt the first element encoding.
	bad := append([]byte{}, encoded...)
	for i := 9; i < 9+g.ElementLength(); i++ {
		bad[i] = 0xff
	}

	if _, err := secretsharing.DecodeCommitment(g, bad); err == nil {
		t.Fatal("expected an error for a malformed element")
	}
}
