// Package pairing provides bilinear pairings over pairing-friendly elliptic
// curves, exposed as pure programmatic entry points.
//
// pairing supports the following curves:
//   - BLS12_381
//
// The per-curve packages live under ecc/; they implement the tower-field
// arithmetic, the Miller loop and the final exponentiation. Base-field
// (Fp) arithmetic is delegated to gnark-crypto.
package pairing

import (
	"github.com/blang/semver/v4"

	"github.com/consensys/pairing/ecc"
)

var Version = semver.MustParse("0.1.0")

// Curves return the curves supported by pairing
func Curves() []ecc.ID {
	return []ecc.ID{
		ecc.BLS381,
	}
}
