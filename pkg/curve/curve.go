// Package curve is the public API of the secp256k1 arithmetic core.
//
// It exposes curve-membership tests, affine/Jacobian conversions, mixed
// Jacobian+affine point addition, and small point utilities, both as
// typed Go functions and through the Call dispatcher over a closed
// operation set. All operations are pure functions over big.Int values:
// no shared mutable state, no I/O, safe for concurrent use.
package curve

import (
	"math/big"

	"github.com/smallyu/go-secp256k1-arith/internal/crypto/curves"
	"github.com/smallyu/go-secp256k1-arith/internal/crypto/point"
)

// AffinePoint is a curve point in affine coordinates; (0, 0) is the
// point at infinity.
type AffinePoint struct {
	X, Y *big.Int
}

// JacobianPoint is a curve point in Jacobian projective coordinates,
// representing the affine point (X/Z², Y/Z³) when Z != 0.
type JacobianPoint struct {
	X, Y, Z *big.Int
}

// IsOnCurve reports whether (x, y) satisfies y² = x³ + a·x + b over the
// prime field of modulus p.
func IsOnCurve(a, b, p, x, y *big.Int) bool {
	return curves.IsOnCurve(a, b, p, x, y)
}

// IsOnCurveSecp256k1 reports whether (x, y) lies on secp256k1.
func IsOnCurveSecp256k1(x, y *big.Int) bool {
	return curves.IsOnCurveSecp256k1(x, y)
}

// ZeroPoint returns the point at infinity sentinel (0, 0).
func ZeroPoint() AffinePoint {
	return AffinePoint{X: new(big.Int), Y: new(big.Int)}
}

// BasePoint returns the secp256k1 generator G.
func BasePoint() AffinePoint {
	params := curves.Secp256k1()
	return AffinePoint{
		X: new(big.Int).Set(params.Gx),
		Y: new(big.Int).Set(params.Gy),
	}
}

// Order returns the order N of the group generated by the base point.
func Order() *big.Int {
	return new(big.Int).Set(curves.Secp256k1().N)
}

// IsZeroPoint reports whether (x, y) is the point at infinity sentinel.
func IsZeroPoint(x, y *big.Int) bool {
	return point.IsZero(x, y)
}

// YParity returns 0 if the point's y-coordinate is even and 1 if it is
// odd. The x-coordinate is accepted for signature symmetry with the
// other point operations but does not influence the result.
func YParity(x, y *big.Int) uint {
	return point.YParity(y)
}

// Address derives the 160-bit identifier of a point: the low 20 bytes
// of the Keccak-256 digest of the 64-byte big-endian x‖y encoding.
func Address(x, y *big.Int) [point.AddressLen]byte {
	return point.Address(x, y)
}

// ToJacobian lifts an affine point to Jacobian coordinates with Z = 1.
func ToJacobian(x, y *big.Int) JacobianPoint {
	j := point.ToJacobian(x, y)
	return JacobianPoint{X: j.X, Y: j.Y, Z: j.Z}
}

// ToAffine projects a Jacobian point back to affine coordinates.
func ToAffine(x, y, z *big.Int) AffinePoint {
	a := point.ToAffine(x, y, z)
	return AffinePoint{X: a.X, Y: a.Y}
}

// AddAffinePoint adds the affine point a to the Jacobian point j,
// returning the sum in Jacobian coordinates.
func AddAffinePoint(j JacobianPoint, a AffinePoint) JacobianPoint {
	sum := point.AddAffine(
		point.Jacobian{X: j.X, Y: j.Y, Z: j.Z},
		point.Affine{X: a.X, Y: a.Y},
	)
	return JacobianPoint{X: sum.X, Y: sum.Y, Z: sum.Z}
}
