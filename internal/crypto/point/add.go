package point

import (
	"math/big"

	"github.com/smallyu/go-secp256k1-arith/internal/crypto/curves"
	"github.com/smallyu/go-secp256k1-arith/internal/crypto/field"
)

var two = big.NewInt(2)

// AddAffine adds the affine point a to the Jacobian point j and returns
// the sum in Jacobian coordinates.
//
// The general case is the standard mixed Jacobian+affine addition
// formula; all subtractions run through field.Sub so every intermediate
// stays a non-negative residue. The degenerate cases the bare formula
// cannot express are handled up front: adding the point at infinity on
// either side returns the other operand, adding a point to itself
// dispatches to DoubleJacobian, and adding a point to its negation
// yields the infinity triple (0, 0, 0).
func AddAffine(j Jacobian, a Affine) Jacobian {
	p := curves.Secp256k1().P

	if IsZero(a.X, a.Y) {
		return Jacobian{
			X: new(big.Int).Set(j.X),
			Y: new(big.Int).Set(j.Y),
			Z: new(big.Int).Set(j.Z),
		}
	}
	if j.Z.Sign() == 0 {
		return ToJacobian(a.X, a.Y)
	}

	z1z1 := field.Mul(j.Z, j.Z, p)

	// u2 and s2 are the affine operand's coordinates scaled into the
	// Jacobian operand's frame: u2 = x2·z1², s2 = y2·z1³.
	u2 := field.Mul(a.X, z1z1, p)
	s2 := field.Mul(field.Mul(a.Y, z1z1, p), j.Z, p)

	x1 := new(big.Int).Mod(j.X, p)
	y1 := new(big.Int).Mod(j.Y, p)

	if u2.Cmp(x1) == 0 {
		if s2.Cmp(y1) != 0 {
			// Same x, opposite y: the sum is the point at infinity.
			return Jacobian{X: new(big.Int), Y: new(big.Int), Z: new(big.Int)}
		}
		return DoubleJacobian(j)
	}

	h := field.Sub(u2, x1, p)
	h2 := field.Mul(h, h, p)
	i := field.Mul(big.NewInt(4), h2, p)
	jj := field.Mul(h, i, p)
	r := field.Mul(two, field.Sub(s2, y1, p), p)
	v := field.Mul(x1, i, p)

	x3 := field.Sub(field.Sub(field.Mul(r, r, p), jj, p), field.Mul(two, v, p), p)
	y3 := field.Sub(
		field.Mul(r, field.Sub(v, x3, p), p),
		field.Mul(two, field.Mul(y1, jj, p), p),
		p,
	)

	// z3 = (z1+h)² − z1² − h², which equals 2·z1·h.
	z3 := field.Add(j.Z, h, p)
	z3 = field.Mul(z3, z3, p)
	z3 = field.Sub(z3, z1z1, p)
	z3 = field.Sub(z3, h2, p)

	return Jacobian{X: x3, Y: y3, Z: z3}
}

// DoubleJacobian doubles a Jacobian point using the a=0 doubling
// formula, so it is only valid for curves with a zero Weierstrass a
// coefficient such as secp256k1.
func DoubleJacobian(j Jacobian) Jacobian {
	p := curves.Secp256k1().P

	if j.Z.Sign() == 0 || j.Y.Sign() == 0 {
		// The identity, or a point with y = 0 whose tangent is
		// vertical; either way the double is the point at infinity.
		return Jacobian{X: new(big.Int), Y: new(big.Int), Z: new(big.Int)}
	}

	a := field.Mul(j.X, j.X, p) // x²
	b := field.Mul(j.Y, j.Y, p) // y²
	c := field.Mul(b, b, p)     // y⁴

	// d = 2·((x+y²)² − x² − y⁴) = 4·x·y²
	d := field.Add(j.X, b, p)
	d = field.Mul(d, d, p)
	d = field.Sub(d, a, p)
	d = field.Sub(d, c, p)
	d = field.Mul(two, d, p)

	e := field.Mul(big.NewInt(3), a, p)
	f := field.Mul(e, e, p)

	x3 := field.Sub(f, field.Mul(two, d, p), p)
	y3 := field.Sub(
		field.Mul(e, field.Sub(d, x3, p), p),
		field.Mul(big.NewInt(8), c, p),
		p,
	)
	z3 := field.Mul(two, field.Mul(j.Y, j.Z, p), p)

	return Jacobian{X: x3, Y: y3, Z: z3}
}
