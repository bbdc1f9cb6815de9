package schnorrbatch

// FieldSize is the width in bytes of every scalar, coordinate, digest and
// payload value carried by the protocol.
const FieldSize = 32

// DepositFieldCount is the number of values a deposit payload must carry.
const DepositFieldCount = 5

// Parity is the symbolic marker for the y-coordinate parity of a public key.
// The values mirror the recovery ids used by on-chain verifiers.
type Parity uint8

const (
	ParityEven Parity = 27
	ParityOdd  Parity = 28
)

// Valid reports whether p is one of the two reserved markers.
func (p Parity) Valid() bool {
	return p == ParityEven || p == ParityOdd
}

// compressedPrefix returns the SEC1 compressed-point prefix for p.
func (p Parity) compressedPrefix() byte {
	return byte(p) - 27 + 2
}

// ParityFromPrefix converts a SEC1 compressed-point prefix (0x02 or 0x03) into a Parity.
func ParityFromPrefix(prefix byte) (Parity, error) {
	switch prefix {
	case 0x02:
		return ParityEven, nil
	case 0x03:
		return ParityOdd, nil
	}
	return 0, formatErrorf("ParityFromPrefix", ErrInvalidParity, "prefix 0x%02x", prefix)
}

// Value is one fixed-width payload field.
type Value [FieldSize]byte

// ValueList is an ordered payload hashed into the message a signature attests to.
type ValueList []Value

// Message is the 32-byte digest a signature is computed against.
type Message [FieldSize]byte

// PublicKey identifies a signer by the parity and x-coordinate of its point.
type PublicKey struct {
	Parity Parity
	X      [FieldSize]byte
}

// Signature is a Schnorr signature carrying the challenge e and the response s.
// The nonce point itself is never transmitted.
type Signature struct {
	E [FieldSize]byte
	S [FieldSize]byte
}

// BatchItem pairs a signature with the key it was produced under.
type BatchItem struct {
	Signature Signature
	PublicKey PublicKey
}

// Report is the per-item outcome of a batch verification.
type Report struct {
	Valid   bool   // AND of all entries in Items
	Items   []bool // Verdict of every item, in input order
	Checked int    // Number of items whose curve check actually ran
}

// Failed returns the indices of items that did not verify.
func (r *Report) Failed() []int {
	var failed []int
	for i, ok := range r.Items {
		if !ok {
			failed = append(failed, i)
		}
	}
	return failed
}

// NewPublicKey builds a PublicKey from a parity marker and a 32-byte x-coordinate.
// It checks format only; the point itself is decoded during verification.
func NewPublicKey(parity byte, x []byte) (PublicKey, error) {
	var pub PublicKey
	if !Parity(parity).Valid() {
		return pub, formatErrorf("NewPublicKey", ErrInvalidParity, "got %d", parity)
	}
	if len(x) != FieldSize {
		return pub, formatErrorf("NewPublicKey", ErrFieldWidth, "x is %d bytes", len(x))
	}
	pub.Parity = Parity(parity)
	copy(pub.X[:], x)
	return pub, nil
}

// NewSignature builds a Signature from a 32-byte challenge and a 32-byte response.
func NewSignature(e, s []byte) (Signature, error) {
	var sig Signature
	if len(e) != FieldSize {
		return sig, formatErrorf("NewSignature", ErrFieldWidth, "e is %d bytes", len(e))
	}
	if len(s) != FieldSize {
		return sig, formatErrorf("NewSignature", ErrFieldWidth, "s is %d bytes", len(s))
	}
	copy(sig.E[:], e)
	copy(sig.S[:], s)
	return sig, nil
}

// NewMessage copies a 32-byte digest into a Message.
func NewMessage(b []byte) (Message, error) {
	var m Message
	if len(b) != FieldSize {
		return m, formatErrorf("NewMessage", ErrFieldWidth, "message is %d bytes", len(b))
	}
	copy(m[:], b)
	return m, nil
}

// NewValueList builds a ValueList, rejecting any value that is not FieldSize bytes.
func NewValueList(values [][]byte) (ValueList, error) {
	list := make(ValueList, len(values))
	for i, v := range values {
		if len(v) != FieldSize {
			return nil, formatErrorf("NewValueList", ErrFieldWidth, "value %d is %d bytes", i, len(v))
		}
		copy(list[i][:], v)
	}
	return list, nil
}

// DepositFields names the five slots of a deposit payload. Only their order
// matters to verification.
type DepositFields struct {
	Value  Value
	Fee    Value
	Limit  Value
	Height Value
	Tag    Value
}

// ValueList returns the fields in protocol order.
func (d DepositFields) ValueList() ValueList {
	return ValueList{d.Value, d.Fee, d.Limit, d.Height, d.Tag}
}
