package curves

import "math/big"

// Params holds the parameters of a short Weierstrass curve
// y² = x³ + A·x + B over the prime field of modulus P, together with
// the group order N and the generator (Gx, Gy).
//
// The package-level secp256k1 instance is built once at init time and
// never mutated; all components share it by pointer.
type Params struct {
	Name    string
	A       *big.Int // Weierstrass coefficient a (0 for secp256k1)
	B       *big.Int // Weierstrass coefficient b (7 for secp256k1)
	P       *big.Int // field modulus
	N       *big.Int // order of the group generated by (Gx, Gy)
	Gx, Gy  *big.Int // generator point
	BitSize int
}

var secp256k1 *Params

func init() {
	secp256k1 = &Params{
		Name:    "secp256k1",
		A:       new(big.Int),
		B:       big.NewInt(7),
		P:       fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		N:       fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		Gx:      fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Gy:      fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
		BitSize: 256,
	}
}

// Secp256k1 returns the shared secp256k1 parameters. Callers must treat
// the returned value as read-only.
func Secp256k1() *Params {
	return secp256k1
}

func fromHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: invalid hex constant: " + s)
	}
	return n
}
