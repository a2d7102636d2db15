// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The veilcrypt developers. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
)

// RandomBytes returns length bytes read from random, falling back to crypto/rand when random is nil.
// The reader is the only shared resource between otherwise independent operations: it must yield
// independent, cryptographically secure bytes even under concurrent use.
func RandomBytes(random io.Reader, length int) []byte {
	if random == nil {
		random = cryptorand.Reader
	}

	r := make([]byte, length)
	if _, err := io.ReadFull(random, r); err != nil {
		// We can as well not panic and try again in a loop and a counter to stop.
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	return r
}
