// Package point implements the affine and Jacobian representations of
// secp256k1 points, conversions between them, and mixed-coordinate
// point addition.
//
// A Jacobian triple (X, Y, Z) with Z != 0 represents the affine point
// (X/Z², Y/Z³); Z = 1 is the canonical lift of an affine point. Working
// in Jacobian coordinates keeps intermediate computations free of field
// division, which is only paid once when converting back to affine.
package point

import (
	"math/big"

	"github.com/smallyu/go-secp256k1-arith/internal/crypto/curves"
	"github.com/smallyu/go-secp256k1-arith/internal/crypto/field"
)

// Affine is a curve point in affine coordinates. The zero value (0, 0)
// is the point at infinity.
type Affine struct {
	X, Y *big.Int
}

// Jacobian is a curve point in Jacobian projective coordinates.
type Jacobian struct {
	X, Y, Z *big.Int
}

// ToJacobian lifts (x, y) to Jacobian coordinates with Z = 1. The point
// is not checked for curve membership.
func ToJacobian(x, y *big.Int) Jacobian {
	return Jacobian{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
		Z: big.NewInt(1),
	}
}

// ToAffine projects the Jacobian point (x, y, z) back to affine
// coordinates as (x·zInv², y·zInv³) mod P. A z of zero denotes the
// point at infinity and projects to (0, 0), consistent with the
// modular inverse of zero being zero.
func ToAffine(x, y, z *big.Int) Affine {
	p := curves.Secp256k1().P

	zInv := field.Inverse(z, p)
	zInv2 := field.Mul(zInv, zInv, p)
	zInv3 := field.Mul(zInv2, zInv, p)

	return Affine{
		X: field.Mul(x, zInv2, p),
		Y: field.Mul(y, zInv3, p),
	}
}

// IsZero reports whether (x, y) is the point at infinity sentinel.
func IsZero(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}

// YParity returns the least-significant bit of y: 0 for an even
// y-coordinate, 1 for an odd one.
func YParity(y *big.Int) uint {
	return uint(y.Bit(0))
}
