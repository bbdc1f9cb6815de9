package schnorrbatch

import (
	"crypto/subtle"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/sirupsen/logrus"
)

// Verifier checks Schnorr signatures, alone or in batches.
// A Verifier holds no per-call state and is safe for concurrent use.
type Verifier struct {
	binder PointBinder
	config Config
	log    logrus.FieldLogger
}

// NewVerifier creates a verifier with the address binder and default settings.
func NewVerifier() *Verifier {
	return &Verifier{
		binder: AddressBinder{},
		config: DefaultConfig(),
		log:    logrus.StandardLogger(),
	}
}

// WithBinder sets the nonce-point binding strategy.
func (v *Verifier) WithBinder(binder PointBinder) *Verifier {
	v.binder = binder
	return v
}

// WithConfig sets the batch configuration.
func (v *Verifier) WithConfig(config Config) *Verifier {
	v.config = config
	return v
}

// WithLogger sets the logger used for batch diagnostics.
func (v *Verifier) WithLogger(log logrus.FieldLogger) *Verifier {
	v.log = log
	return v
}

// Binder returns the binding strategy in use.
func (v *Verifier) Binder() PointBinder {
	return v.binder
}

var defaultVerifier = NewVerifier()

// Verify checks one signature using the address binder.
//
// Args:
//   - parity: ParityEven (27) or ParityOdd (28)
//   - pubkeyX: 32-byte x-coordinate of the public key
//   - message: 32-byte message digest
//   - challenge, response: the signature's e and s, 32 bytes each
//
// Returns:
//   - true if the signature is valid. A wrong signature is false with a nil
//     error; only malformed input returns a *FormatError.
func Verify(parity byte, pubkeyX, message, challenge, response []byte) (bool, error) {
	pub, err := NewPublicKey(parity, pubkeyX)
	if err != nil {
		return false, err
	}
	msg, err := NewMessage(message)
	if err != nil {
		return false, err
	}
	sig, err := NewSignature(challenge, response)
	if err != nil {
		return false, err
	}
	return defaultVerifier.VerifySignature(pub, msg, sig)
}

// VerifySignature checks sig against message under pub.
func (v *Verifier) VerifySignature(pub PublicKey, message Message, sig Signature) (bool, error) {
	point, err := decodePublicKey(pub)
	if err != nil {
		return false, formatError("VerifySignature", err)
	}
	return v.check(point, pub, message, sig), nil
}

// decodePublicKey decompresses pub into a curve point.
func decodePublicKey(pub PublicKey) (*secp256k1.PublicKey, error) {
	if !pub.Parity.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParity, pub.Parity)
	}
	var compressed [1 + FieldSize]byte
	compressed[0] = pub.Parity.compressedPrefix()
	copy(compressed[1:], pub.X[:])
	point, err := secp256k1.ParsePubKey(compressed[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPointDecode, err)
	}
	return point, nil
}

// check recomputes R' = s·G − e·P, binds it and compares the rebuilt
// challenge with sig.E. Scalars are reduced modulo the group order.
func (v *Verifier) check(point *secp256k1.PublicKey, pub PublicKey, message Message, sig Signature) bool {
	var s, e secp256k1.ModNScalar
	s.SetBytes(&sig.S)
	e.SetBytes(&sig.E)
	e.Negate()

	var p, sG, eP, r secp256k1.JacobianPoint
	point.AsJacobian(&p)
	secp256k1.ScalarBaseMultNonConst(&s, &sG)
	secp256k1.ScalarMultNonConst(&e, &p, &eP)
	secp256k1.AddNonConst(&sG, &eP, &r)

	// The point at infinity has no address.
	if (r.X.IsZero() && r.Y.IsZero()) || r.Z.IsZero() {
		return false
	}
	r.ToAffine()
	nonce := secp256k1.NewPublicKey(&r.X, &r.Y)

	expected := Challenge(v.binder.Bind(nonce), pub.Parity, pub.X, message)
	return subtle.ConstantTimeCompare(expected[:], sig.E[:]) == 1
}
