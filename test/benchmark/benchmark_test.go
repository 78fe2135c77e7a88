package benchmark

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-secp256k1-arith/internal/crypto/curves"
	"github.com/smallyu/go-secp256k1-arith/internal/crypto/field"
	"github.com/smallyu/go-secp256k1-arith/internal/crypto/point"
)

var benchZ, _ = new(big.Int).SetString(
	"5d232a47b1a73f49f8c1ce4750e38d8ba0e1c1e714a1a85a4c64b1c5f2b7fa43", 16)

// BenchmarkInverse measures the hand-rolled Euclidean inverse.
func BenchmarkInverse(b *testing.B) {
	p := curves.Secp256k1().P
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		field.Inverse(benchZ, p)
	}
}

// BenchmarkInverseStdlib is the big.Int.ModInverse baseline for the
// same input.
func BenchmarkInverseStdlib(b *testing.B) {
	p := curves.Secp256k1().P
	out := new(big.Int)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out.ModInverse(benchZ, p)
	}
}

// BenchmarkAddAffine measures the big.Int mixed Jacobian+affine adder.
func BenchmarkAddAffine(b *testing.B) {
	params := curves.Secp256k1()
	g := point.Affine{X: params.Gx, Y: params.Gy}
	j := point.AddAffine(point.ToJacobian(params.Gx, params.Gy), g) // 2G, z != 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		point.AddAffine(j, g)
	}
}

// BenchmarkAddAffineDecred is the decred specialized-field baseline for
// the same mixed addition.
func BenchmarkAddAffineDecred(b *testing.B) {
	params := curves.Secp256k1()

	var g, twoG, out secp256k1.JacobianPoint
	g.X.SetByteSlice(params.Gx.Bytes())
	g.Y.SetByteSlice(params.Gy.Bytes())
	g.Z.SetInt(1)
	secp256k1.DoubleNonConst(&g, &twoG)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		secp256k1.AddNonConst(&twoG, &g, &out)
	}
}

// BenchmarkToAffine measures the Jacobian to affine projection, which
// is dominated by the modular inverse.
func BenchmarkToAffine(b *testing.B) {
	params := curves.Secp256k1()
	j := point.AddAffine(
		point.ToJacobian(params.Gx, params.Gy),
		point.Affine{X: params.Gx, Y: params.Gy},
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		point.ToAffine(j.X, j.Y, j.Z)
	}
}

// BenchmarkIsOnCurveSecp256k1 measures the membership test.
func BenchmarkIsOnCurveSecp256k1(b *testing.B) {
	params := curves.Secp256k1()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curves.IsOnCurveSecp256k1(params.Gx, params.Gy)
	}
}

// BenchmarkAddress measures identifier derivation.
func BenchmarkAddress(b *testing.B) {
	params := curves.Secp256k1()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		point.Address(params.Gx, params.Gy)
	}
}
