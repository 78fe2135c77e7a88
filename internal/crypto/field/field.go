// Package field implements modular arithmetic over an arbitrary prime
// modulus. All functions treat their inputs as read-only and allocate
// fresh results, so callers may freely share *big.Int values.
package field

import "math/big"

// Add returns (x + y) mod p.
func Add(x, y, p *big.Int) *big.Int {
	sum := new(big.Int).Add(x, y)
	return sum.Mod(sum, p)
}

// Mul returns (x * y) mod p.
func Mul(x, y, p *big.Int) *big.Int {
	prod := new(big.Int).Mul(x, y)
	return prod.Mod(prod, p)
}

// Sub returns (x - y) mod p, computed as (x + (p - y mod p)) mod p so
// every intermediate value stays a non-negative residue.
func Sub(x, y, p *big.Int) *big.Int {
	neg := new(big.Int).Mod(y, p)
	neg.Sub(p, neg)
	neg.Add(x, neg)
	return neg.Mod(neg, p)
}
