package field

import "math/big"

// Inverse returns the multiplicative inverse of z modulo p, so that
// (z * Inverse(z, p)) mod p == 1 for any 0 < z < p with p prime.
//
// It runs an iterative variant of the extended Euclidean algorithm that
// tracks a single Bézout coefficient chain: at each step the quotient
// q = r / z is used first to rotate the coefficient pair (t, newT) and
// then to rotate the remainder pair (r, z). The coefficient update must
// happen before the remainder update because it reads the pre-rotation
// t. The remainder update uses plain integer subtraction; r - q*z is
// the true Euclidean remainder and is always non-negative.
//
// Inverse(0, p) returns 0 by convention: zero has no inverse and the
// loop body never runs for a zero input.
func Inverse(z, p *big.Int) *big.Int {
	z = new(big.Int).Mod(z, p)
	r := new(big.Int).Set(p)
	t := new(big.Int)
	newT := big.NewInt(1)

	q := new(big.Int)
	qz := new(big.Int)
	for z.Sign() != 0 {
		q.Div(r, z)

		// Rotate the Bézout pair: t, newT = newT, (t - q*newT) mod p.
		// The subtraction is expressed as t + (p - q*newT mod p) to
		// stay in the non-negative residue representation.
		qn := new(big.Int).Mul(q, newT)
		qn.Mod(qn, p)
		qn.Sub(p, qn)
		qn.Add(qn, t)
		qn.Mod(qn, p)
		t, newT = newT, qn

		// Rotate the remainder pair: r, z = z, r - q*z.
		qz.Mul(q, z)
		rem := new(big.Int).Sub(r, qz)
		r, z = z, rem
	}

	return t
}
