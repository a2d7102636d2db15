// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The veilcrypt developers. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretsharing

import (
	"io"

	group "github.com/bytemare/crypto"

	"github.com/veilcrypt/secretsharing/internal"
)

// DeriveGenerator returns a generator of the group with unknown discrete logarithm relative to the base element,
// obtained by hashing context to the curve with a domain-separated nothing-up-my-sleeve construction. Use it to
// produce the second Pedersen generator.
func DeriveGenerator(g group.Group, context []byte) *group.Element {
	return internal.DeriveElement(g, context, []byte("gen"))
}

// PedersenCommit returns the Pedersen commitment to the coefficient pairs of the value and blinding polynomials:
// for each pair (c, b), the element generatorG * c + generatorH * b. Both polynomials must be of the same length.
// Given a random blinding polynomial, the commitment is information-theoretically hiding and computationally binding.
func PedersenCommit(g group.Group, values, blindings Polynomial, generatorG, generatorH *group.Element) (Commitment, error) {
	if len(values) != len(blindings) {
		return nil, ErrThresholdMismatch
	}

	coms := make(Commitment, len(values))
	for i, coeff := range values {
		coms[i] = generatorG.Copy().Multiply(coeff).Add(generatorH.Copy().Multiply(blindings[i]))
	}

	return coms, nil
}

// PedersenShardAndCommit splits secret into max shares like Shard, draws an independent random blinding polynomial
// of the same threshold, evaluates it at the same identifiers into blinding shares, and returns both share sets with
// the Pedersen commitment to the coefficient pairs. Both polynomials are zeroed out before returning.
func PedersenShardAndCommit(
	g group.Group,
	secret *group.Scalar,
	threshold, max uint,
	generatorG, generatorH *group.Element,
	random io.Reader,
) ([]*Share, []*Share, Commitment, error) {
	shares, p, err := ShardReturnPolynomial(g, secret, threshold, max, random)
	if err != nil {
		return nil, nil, nil, err
	}

	b, err := NewPolynomial(g, nil, threshold, random)
	if err != nil {
		return nil, nil, nil, err
	}

	blindingShares := make([]*Share, max)
	for i := uint64(1); i <= uint64(max); i++ {
		x := g.NewScalar().SetUInt64(i)
		blindingShares[i-1] = &Share{
			Secret: b.Evaluate(g, x),
			Group:  g,
			ID:     i,
		}
	}

	commitment, err := PedersenCommit(g, p, b, generatorG, generatorH)
	if err != nil {
		return nil, nil, nil, err
	}

	p.Zero()
	b.Zero()

	return shares, blindingShares, commitment, nil
}

// PedersenVerify returns whether the share and its blinding share are consistent with the Pedersen commitment under
// the generators: generatorG * share + generatorH * blinding must equal the commitment evaluated in the exponent at
// the shared identifier. A false return means the share must be rejected.
func PedersenVerify(
	g group.Group,
	share, blindingShare *Share,
	commitment Commitment,
	generatorG, generatorH *group.Element,
) bool {
	if share == nil || blindingShare == nil {
		return false
	}

	if share.Group != g || blindingShare.Group != g {
		return false
	}

	if share.ID == 0 || share.ID != blindingShare.ID {
		return false
	}

	expected := generatorG.Copy().Multiply(share.Secret).Add(generatorH.Copy().Multiply(blindingShare.Secret))

	return expected.Equal(commitment.Evaluate(g, share.ID)) == 1
}
