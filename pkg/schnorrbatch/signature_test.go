package schnorrbatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParity(t *testing.T) {
	assert.True(t, ParityEven.Valid())
	assert.True(t, ParityOdd.Valid())
	assert.False(t, Parity(0).Valid())
	assert.False(t, Parity(2).Valid())
	assert.False(t, Parity(29).Valid())

	assert.Equal(t, byte(0x02), ParityEven.compressedPrefix())
	assert.Equal(t, byte(0x03), ParityOdd.compressedPrefix())

	p, err := ParityFromPrefix(0x02)
	require.NoError(t, err)
	assert.Equal(t, ParityEven, p)

	p, err = ParityFromPrefix(0x03)
	require.NoError(t, err)
	assert.Equal(t, ParityOdd, p)

	_, err = ParityFromPrefix(0x04)
	assert.ErrorIs(t, err, ErrInvalidParity)
}

func TestNewValueList(t *testing.T) {
	list, err := NewValueList([][]byte{make([]byte, 32), make([]byte, 32)})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = NewValueList([][]byte{make([]byte, 32), make([]byte, 31)})
	require.ErrorIs(t, err, ErrFieldWidth)

	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "NewValueList", formatErr.Op)
}

func TestReport_Failed(t *testing.T) {
	r := &Report{Items: []bool{true, false, true, false}}
	assert.Equal(t, []int{1, 3}, r.Failed())

	r = &Report{Valid: true, Items: []bool{true}}
	assert.Empty(t, r.Failed())
}

func TestDepositFields_Order(t *testing.T) {
	d := DepositFields{Value: value(1), Fee: value(2), Limit: value(3), Height: value(4), Tag: value(5)}
	list := d.ValueList()
	require.Len(t, list, DepositFieldCount)
	for i, v := range list {
		assert.Equal(t, value(byte(i+1)), v)
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "schnorrbatch: no signatures provided", ErrNoSignatures.Error())
	assert.Equal(t, "schnorrbatch: invalid payload length", ErrInvalidPayloadLength.Error())

	err := formatError("VerifyBatch", ErrLengthMismatch)
	assert.Equal(t, "schnorrbatch.VerifyBatch: schnorrbatch: signatures and payloads length mismatch", err.Error())
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
