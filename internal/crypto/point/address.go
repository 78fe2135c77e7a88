package point

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// AddressLen is the byte length of a derived point identifier.
const AddressLen = 20

// Address derives a 160-bit identifier from a point: the low 20 bytes
// of the Keccak-256 digest of the 64-byte big-endian encoding of x‖y.
// This is the Ethereum address convention for uncompressed public keys.
func Address(x, y *big.Int) [AddressLen]byte {
	var buf [64]byte
	trunc256(x).FillBytes(buf[:32])
	trunc256(y).FillBytes(buf[32:])

	h := sha3.NewLegacyKeccak256()
	h.Write(buf[:])
	digest := h.Sum(nil)

	var addr [AddressLen]byte
	copy(addr[:], digest[32-AddressLen:])
	return addr
}

// trunc256 keeps the low 256 bits of n, the fixed coordinate width.
func trunc256(n *big.Int) *big.Int {
	if n.BitLen() <= 256 {
		return n
	}
	t := new(big.Int).Set(n)
	mask := new(big.Int).Lsh(big.NewInt(1), 256)
	mask.Sub(mask, big.NewInt(1))
	return t.And(t, mask)
}
