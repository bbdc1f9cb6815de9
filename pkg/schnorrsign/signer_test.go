package schnorrsign

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrbatch"
)

func TestPublicKeyOf(t *testing.T) {
	key, err := ParsePrivateKey("0x0000000000000000000000000000000000000000000000000000000000000001")
	require.NoError(t, err)

	pub := PublicKeyOf(key)
	// G has an even y-coordinate.
	assert.Equal(t, schnorrbatch.ParityEven, pub.Parity)
	assert.Equal(t,
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hex.EncodeToString(pub.X[:]))
}

func TestParsePrivateKey_Invalid(t *testing.T) {
	_, err := ParsePrivateKey("zz")
	require.Error(t, err)

	_, err = ParsePrivateKey("0x0102")
	require.Error(t, err)

	_, err = ParsePrivateKey("0x0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
}

func TestSign_Verifies(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	var msg schnorrbatch.Message
	msg[0] = 0x42

	item, err := NewSigner().Sign(key, msg)
	require.NoError(t, err)

	ok, err := schnorrbatch.NewVerifier().VerifySignature(item.PublicKey, msg, item.Signature)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSign_FreshNonce(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	var msg schnorrbatch.Message
	signer := NewSigner()

	a, err := signer.Sign(key, msg)
	require.NoError(t, err)
	b, err := signer.Sign(key, msg)
	require.NoError(t, err)

	assert.NotEqual(t, a.Signature, b.Signature)
}

func TestSignIndependent_LengthMismatch(t *testing.T) {
	keys, err := RandomKeys(2)
	require.NoError(t, err)
	payload, err := RandomPayload(5)
	require.NoError(t, err)

	_, err = NewSigner().SignIndependent(keys, []schnorrbatch.ValueList{payload})
	require.Error(t, err)
}

func TestRandomPayload(t *testing.T) {
	payload, err := RandomPayload(5)
	require.NoError(t, err)
	require.Len(t, payload, 5)
	assert.NotEqual(t, payload[0], payload[1])
}
