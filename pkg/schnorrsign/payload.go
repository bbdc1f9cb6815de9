package schnorrsign

import (
	"crypto/rand"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/mahdiidarabi/schnorr-batch/pkg/schnorrbatch"
)

// RandomPayload returns a payload of n random 32-byte values.
func RandomPayload(n int) (schnorrbatch.ValueList, error) {
	list := make(schnorrbatch.ValueList, n)
	for i := range list {
		if _, err := rand.Read(list[i][:]); err != nil {
			return nil, fmt.Errorf("failed to read random value: %w", err)
		}
	}
	return list, nil
}

// RandomKeys returns n fresh private keys.
func RandomKeys(n int) ([]*btcec.PrivateKey, error) {
	keys := make([]*btcec.PrivateKey, n)
	for i := range keys {
		key, err := GenerateKey()
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}
