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
)

// Commitment to a polynomial, holding one group element per coefficient, in coefficient order.
type Commitment []*group.Element

// Commit returns the Feldman commitment to p under generator: one scalar multiplication of the generator per
// coefficient. The commitment is computationally hiding and perfectly binding.
func Commit(g group.Group, p Polynomial, generator *group.Element) Commitment {
	coms := make(Commitment, len(p))
	for i, coeff := range p {
		coms[i] = generator.Copy().Multiply(coeff)
	}

	return coms
}

// ShardAndCommit splits secret into max shares like Shard, and additionally returns the Feldman commitment to the
// dealing polynomial under generator. The polynomial is zeroed out before returning.
func ShardAndCommit(
	g group.Group,
	secret *group.Scalar,
	threshold, max uint,
	generator *group.Element,
	random io.Reader,
) ([]*Share, Commitment, error) {
	shares, p, err := ShardReturnPolynomial(g, secret, threshold, max, random)
	if err != nil {
		return nil, nil, err
	}

	commitment := Commit(g, p, generator)
	p.Zero()

	return shares, commitment, nil
}

// Evaluate evaluates the committed polynomial in the exponent at the identifier id.
func (c Commitment) Evaluate(g group.Group, id uint64) *group.Element {
	x := g.NewScalar().SetUInt64(id)
	one := g.NewScalar().One()

	value := g.NewElement().Identity()

	j := g.NewScalar().Zero()
	for _, com := range c {
		value.Add(com.Copy().Multiply(x.Copy().Pow(j)))
		j.Add(one)
	}

	return value
}

// Verify returns whether the share is consistent with the Feldman commitment under generator. A false return is the
// sole verification signal and means the share must be rejected; it is never a transient condition.
func Verify(g group.Group, share *Share, commitment Commitment, generator *group.Element) bool {
	if share == nil || share.Group != g || share.ID == 0 {
		return false
	}

	expected := generator.Copy().Multiply(share.Secret)

	return expected.Equal(commitment.Evaluate(g, share.ID)) == 1
}
