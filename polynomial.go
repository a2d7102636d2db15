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

// Polynomial over the scalar field of a group, represented as a list of t coefficients, where t is the threshold.
// The constant term is in the first position and the highest degree coefficient is in the last position. The length
// is always t: a zero leading coefficient is kept and never trimmed.
type Polynomial []*group.Scalar

// NewPolynomial returns a polynomial of threshold coefficients with secret as the constant term, the remaining
// coefficients drawn uniformly at random from the scalar field. If secret is nil, a fresh random constant term is
// used. random may be nil, in which case crypto/rand is used.
func NewPolynomial(g group.Group, secret *group.Scalar, threshold uint, random io.Reader) (Polynomial, error) {
	if threshold == 0 {
		return nil, ErrInvalidThreshold
	}

	p := make(Polynomial, threshold)

	if secret != nil {
		p[0] = secret.Copy()
	} else {
		p[0] = randomScalar(g, random)
	}

	for i := uint(1); i < threshold; i++ {
		p[i] = randomScalar(g, random)
	}

	return p, nil
}

// randomScalar derives a uniform scalar of the group from 64 bytes of the random source.
func randomScalar(g group.Group, random io.Reader) *group.Scalar {
	return internal.UniformScalar(g, internal.RandomBytes(random, 64))
}

// Evaluate evaluates the polynomial p at point x using Horner's method.
func (p Polynomial) Evaluate(g group.Group, x *group.Scalar) *group.Scalar {
	value := g.NewScalar().Zero()
	for i := len(p) - 1; i >= 0; i-- {
		value.Multiply(x)
		value.Add(p[i])
	}

	return value
}

// Zero sets all coefficients of the polynomial to zero. Dealers use it to drop the polynomial once shares and
// commitments are derived.
func (p Polynomial) Zero() {
	for _, pi := range p {
		pi.Zero()
	}
}

// invert returns the multiplicative inverse of s, or ErrNotInvertible when s is the zero scalar.
func invert(s *group.Scalar) (*group.Scalar, error) {
	if s.IsZero() {
		return nil, ErrNotInvertible
	}

	return s.Copy().Invert(), nil
}

// deriveInterpolatingValue derives the Lagrange coefficient at zero for the identifier xi among the identifiers xs.
// xs must not contain duplicates of xi, and xi must appear in xs exactly once.
func deriveInterpolatingValue(g group.Group, xi *group.Scalar, xs []*group.Scalar) (*group.Scalar, error) {
	numerator := g.NewScalar().One()
	denominator := g.NewScalar().One()

	for _, xj := range xs {
		if xj.Equal(xi) == 1 {
			continue
		}

		numerator.Multiply(xj)
		denominator.Multiply(xj.Copy().Subtract(xi))
	}

	inv, err := invert(denominator)
	if err != nil {
		// Unreachable once duplicate identifiers are rejected, surfaced instead of panicking.
		return nil, ErrDegenerateShareSet
	}

	return numerator.Multiply(inv), nil
}
