// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The veilcrypt developers. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package secretsharing provides Shamir Secret Sharing over prime-order elliptic-curve groups, with Feldman and
// Pedersen Verifiable Secret Sharing.
//
// All operations are pure functions of their inputs and are safe for concurrent use, provided the injected
// randomness source is itself safe for concurrent use (crypto/rand, the default, is).
package secretsharing

import (
	"io"

	group "github.com/bytemare/crypto"
)

// Share is the portion of the sharded secret held by the shareholder identified by ID.
// ID is a positive integer: identifier 0 is reserved for the secret itself and is never issued.
type Share struct {
	// Secret is the evaluation of the dealer's polynomial at ID.
	Secret *group.Scalar

	// Group identifies the group the share was created in.
	Group group.Group

	// ID uniquely identifies the shareholder within a sharing.
	ID uint64
}

// Shard splits secret into max shares, recoverable by a subset of threshold shares. If secret is nil, a new random
// secret is created. random may be nil, in which case crypto/rand is used. The dealing polynomial is zeroed out
// before returning.
func Shard(g group.Group, secret *group.Scalar, threshold, max uint, random io.Reader) ([]*Share, error) {
	shares, p, err := ShardReturnPolynomial(g, secret, threshold, max, random)
	if err != nil {
		return nil, err
	}

	p.Zero()

	return shares, nil
}

// ShardReturnPolynomial splits secret into max shares and returns the dealing polynomial alongside them, for callers
// that commit to it separately. The caller is responsible for zeroing the polynomial once done with it.
func ShardReturnPolynomial(
	g group.Group,
	secret *group.Scalar,
	threshold, max uint,
	random io.Reader,
) ([]*Share, Polynomial, error) {
	if threshold == 0 || threshold > max {
		return nil, nil, ErrInvalidThreshold
	}

	p, err := NewPolynomial(g, secret, threshold, random)
	if err != nil {
		return nil, nil, err
	}

	// Evaluate the polynomial for each identifier x=1,...,max.
	shares := make([]*Share, max)
	for i := uint64(1); i <= uint64(max); i++ {
		x := g.NewScalar().SetUInt64(i)
		shares[i-1] = &Share{
			Secret: p.Evaluate(g, x),
			Group:  g,
			ID:     i,
		}
	}

	return shares, p, nil
}

// CombineShares recovers the secret as the constant term of the polynomial interpolating the shares. threshold is
// the minimum number of shares the caller requires for the sharing; supplying fewer returns ErrInsufficientShares.
// The result is independent of the order of the shares.
func CombineShares(g group.Group, shares []*Share, threshold uint) (*group.Scalar, error) {
	if len(shares) == 0 || uint(len(shares)) < threshold {
		return nil, ErrInsufficientShares
	}

	xs, err := shareIdentifiers(g, shares)
	if err != nil {
		return nil, err
	}

	secret := g.NewScalar().Zero()

	for i, share := range shares {
		iv, err := deriveInterpolatingValue(g, xs[i], xs)
		if err != nil {
			return nil, err
		}

		secret.Add(iv.Multiply(share.Secret))
	}

	return secret, nil
}

// shareIdentifiers validates the share set and returns the identifiers as scalars, index-aligned with shares.
func shareIdentifiers(g group.Group, shares []*Share) ([]*group.Scalar, error) {
	xs := make([]*group.Scalar, len(shares))
	seen := make(map[uint64]struct{}, len(shares))

	for i, share := range shares {
		if share.Group != g {
			return nil, ErrGroupMismatch
		}

		if share.ID == 0 {
			return nil, ErrShareIndexZero
		}

		if _, ok := seen[share.ID]; ok {
			return nil, ErrDuplicateShareIndex
		}

		seen[share.ID] = struct{}{}
		xs[i] = g.NewScalar().SetUInt64(share.ID)
	}

	return xs, nil
}
