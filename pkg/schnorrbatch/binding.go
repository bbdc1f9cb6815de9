package schnorrbatch

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

// AddressSize is the width of the point identifier produced by AddressBinder.
const AddressSize = 20

// PointBinder derives the compact identifier of a nonce point that is folded
// into the challenge. Signer and verifier must use the same binder.
type PointBinder interface {
	// Bind returns the identifier of point.
	Bind(point *secp256k1.PublicKey) []byte

	// Name returns a human-readable name for this binder.
	Name() string
}

// AddressBinder identifies a point by the low-order 20 bytes of the Keccak-256
// hash of its uncompressed X ‖ Y encoding, the same rule that derives an
// Ethereum account address from a public key.
type AddressBinder struct{}

// Bind implements PointBinder.
func (AddressBinder) Bind(point *secp256k1.PublicKey) []byte {
	uncompressed := point.SerializeUncompressed()
	digest := keccak256(uncompressed[1:])
	return digest[FieldSize-AddressSize:]
}

// Name implements PointBinder.
func (AddressBinder) Name() string {
	return "Address"
}

// keccak256 is the single hash primitive of the protocol.
func keccak256(chunks ...[]byte) [FieldSize]byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	var out [FieldSize]byte
	h.Sum(out[:0])
	return out
}
