// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The veilcrypt developers. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretsharing

import "errors"

var (
	// ErrInvalidThreshold indicates the threshold is zero or exceeds the number of shareholders.
	ErrInvalidThreshold = errors.New("threshold must be at least 1 and not exceed the number of shareholders")

	// ErrThresholdMismatch indicates the value and blinding polynomials are of different lengths.
	ErrThresholdMismatch = errors.New("value and blinding polynomials are of different lengths")

	// ErrInsufficientShares indicates that fewer shares than the threshold were provided.
	ErrInsufficientShares = errors.New("fewer shares provided than the threshold")

	// ErrDuplicateShareIndex indicates that two or more shares carry the same identifier.
	ErrDuplicateShareIndex = errors.New("multiple shares carry the same identifier")

	// ErrShareIndexZero indicates a share with identifier 0, which is reserved for the secret.
	ErrShareIndexZero = errors.New("share identifier 0 is reserved for the secret")

	// ErrDegenerateShareSet indicates an interpolation denominator reduced to zero.
	ErrDegenerateShareSet = errors.New("interpolation denominator is zero")

	// ErrGroupMismatch indicates incompatible groups in a set of shares or encodings.
	ErrGroupMismatch = errors.New("incompatible groups")

	// ErrNotInvertible indicates an inversion was requested on the zero scalar.
	ErrNotInvertible = errors.New("the zero scalar is not invertible")

	// ErrFieldElementOutOfRange indicates an encoded value that is not a valid scalar of the group.
	ErrFieldElementOutOfRange = errors.New("encoded value is not a valid scalar of the group")

	// ErrInvalidGroup indicates the identified group is not available.
	ErrInvalidGroup = errors.New("group not available")

	// ErrInvalidLength indicates that a provided encoded data piece is not of the expected length.
	ErrInvalidLength = errors.New("invalid encoding length")
)
