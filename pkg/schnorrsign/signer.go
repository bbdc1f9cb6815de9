// Package schnorrsign produces signatures accepted by package schnorrbatch.
//
// It exists for tests, fixtures and tooling. Key custody and nonce sourcing in
// production belong to the caller.
package schnorrsign

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrbatch"
)

// Signer signs messages with a fixed binding strategy.
type Signer struct {
	binder schnorrbatch.PointBinder
}

// NewSigner creates a signer that uses the address binder.
func NewSigner() *Signer {
	return &Signer{binder: schnorrbatch.AddressBinder{}}
}

// WithBinder sets the nonce-point binding strategy. It must match the verifier's.
func (s *Signer) WithBinder(binder schnorrbatch.PointBinder) *Signer {
	s.binder = binder
	return s
}

// GenerateKey returns a fresh random private key.
func GenerateKey() (*btcec.PrivateKey, error) {
	return btcec.NewPrivateKey()
}

// ParsePrivateKey decodes a 32-byte hex private key, handling the 0x prefix.
func ParsePrivateKey(s string) (*btcec.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	if len(b) != schnorrbatch.FieldSize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", schnorrbatch.FieldSize, len(b))
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	if priv.Key.IsZero() {
		return nil, errors.New("private key is zero modulo the curve order")
	}
	return priv, nil
}

// PublicKeyOf returns the parity and x-coordinate of priv's public key.
func PublicKeyOf(priv *btcec.PrivateKey) schnorrbatch.PublicKey {
	compressed := priv.PubKey().SerializeCompressed()
	// SerializeCompressed always yields a 0x02 or 0x03 prefix.
	parity, _ := schnorrbatch.ParityFromPrefix(compressed[0])
	pub := schnorrbatch.PublicKey{Parity: parity}
	copy(pub.X[:], compressed[1:])
	return pub
}

// Sign signs message with priv using a fresh random nonce.
func (s *Signer) Sign(priv *btcec.PrivateKey, message schnorrbatch.Message) (schnorrbatch.BatchItem, error) {
	nonce, err := btcec.NewPrivateKey()
	if err != nil {
		return schnorrbatch.BatchItem{}, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return s.SignWithNonce(priv, nonce, message), nil
}

// SignWithNonce signs message with priv using the caller's nonce k:
//
//	R = k·G
//	e = Challenge(bind(R), parity, px, message)
//	s = k + priv·e mod n
//
// Reusing a nonce across messages leaks the private key.
func (s *Signer) SignWithNonce(priv, nonce *btcec.PrivateKey, message schnorrbatch.Message) schnorrbatch.BatchItem {
	pub := PublicKeyOf(priv)
	challenge := schnorrbatch.Challenge(s.binder.Bind(nonce.PubKey()), pub.Parity, pub.X, message)

	var e, resp btcec.ModNScalar
	e.SetBytes(&challenge)
	resp.Mul2(&priv.Key, &e).Add(&nonce.Key)

	return schnorrbatch.BatchItem{
		Signature: schnorrbatch.Signature{E: challenge, S: resp.Bytes()},
		PublicKey: pub,
	}
}

// SignJoint signs JointMessage(payloads) with every key.
func (s *Signer) SignJoint(keys []*btcec.PrivateKey, payloads []schnorrbatch.ValueList) ([]schnorrbatch.BatchItem, error) {
	return s.signAll(keys, schnorrbatch.JointMessage(payloads))
}

// SignIndependent signs PayloadMessage(payloads[i]) with keys[i].
func (s *Signer) SignIndependent(keys []*btcec.PrivateKey, payloads []schnorrbatch.ValueList) ([]schnorrbatch.BatchItem, error) {
	if len(keys) != len(payloads) {
		return nil, fmt.Errorf("%d keys, %d payloads", len(keys), len(payloads))
	}
	items := make([]schnorrbatch.BatchItem, len(keys))
	for i, key := range keys {
		item, err := s.Sign(key, schnorrbatch.PayloadMessage(payloads[i]))
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// SignDeposit signs PayloadMessage(payload) with every key.
func (s *Signer) SignDeposit(keys []*btcec.PrivateKey, payload schnorrbatch.ValueList) ([]schnorrbatch.BatchItem, error) {
	return s.signAll(keys, schnorrbatch.PayloadMessage(payload))
}

func (s *Signer) signAll(keys []*btcec.PrivateKey, message schnorrbatch.Message) ([]schnorrbatch.BatchItem, error) {
	items := make([]schnorrbatch.BatchItem, len(keys))
	for i, key := range keys {
		item, err := s.Sign(key, message)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}
