// Package curves provides the secp256k1 curve parameters and
// Weierstrass membership tests over big.Int coordinates.
package curves

import (
	"math/big"

	"github.com/smallyu/go-secp256k1-arith/internal/crypto/field"
)

// IsOnCurve reports whether (x, y) satisfies y² = x³ + a·x + b over the
// prime field of modulus p. Inputs are not range-checked; coordinates at
// or above p are reduced by the modular arithmetic like any other value.
func IsOnCurve(a, b, p, x, y *big.Int) bool {
	y2 := field.Mul(y, y, p)

	x3 := field.Mul(x, x, p)
	x3 = field.Mul(x3, x, p)

	// For a = 0 the a·x term vanishes; skip it rather than multiplying
	// by zero. Both paths reduce to the same residue.
	rhs := x3
	if a.Sign() != 0 {
		rhs = field.Add(rhs, field.Mul(a, x, p), p)
	}
	rhs = field.Add(rhs, b, p)

	return y2.Cmp(rhs) == 0
}

// IsOnCurveSecp256k1 reports whether (x, y) lies on secp256k1.
// Equivalent to IsOnCurve(0, 7, P, x, y).
func IsOnCurveSecp256k1(x, y *big.Int) bool {
	return IsOnCurve(secp256k1.A, secp256k1.B, secp256k1.P, x, y)
}
