package schnorrbatch

import (
	"errors"
	"fmt"
)

var (
	// ErrPointDecode indicates the public key x-coordinate is not on the curve.
	ErrPointDecode = errors.New("schnorrbatch: point not on curve")

	// ErrInvalidParity indicates a parity marker other than ParityEven or ParityOdd.
	ErrInvalidParity = errors.New("schnorrbatch: invalid parity marker")

	// ErrFieldWidth indicates a field that is not exactly FieldSize bytes.
	ErrFieldWidth = errors.New("schnorrbatch: invalid field width")

	// ErrLengthMismatch indicates a batch whose signature and payload counts differ.
	ErrLengthMismatch = errors.New("schnorrbatch: signatures and payloads length mismatch")
)

var (
	// ErrNoSignatures is returned by the multisig variant when no signatures are given.
	ErrNoSignatures = &PreconditionError{Reason: "no signatures provided"}

	// ErrInvalidPayloadLength is returned by the multisig variant when the payload
	// does not have exactly DepositFieldCount values.
	ErrInvalidPayloadLength = &PreconditionError{Reason: "invalid payload length"}
)

// FormatError reports malformed input: a bad curve point, a wrong-width field
// or mismatched batch lengths. It is raised before any curve arithmetic.
type FormatError struct {
	Op  string // Operation that rejected the input
	Err error  // Underlying sentinel
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("schnorrbatch.%s: %v", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// PreconditionError reports a structural violation of the multisig variant.
// Reason is stable and safe to match on.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "schnorrbatch: " + e.Reason
}

func formatError(op string, err error) error {
	return &FormatError{Op: op, Err: err}
}

func formatErrorf(op string, err error, format string, args ...interface{}) error {
	return &FormatError{Op: op, Err: fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))}
}
