// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sig

import (
	"testing"

	"github.com/luxfi/geth/crypto"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, message [32]byte) ([64]byte, byte, [33]byte) {
	t.Helper()
	priv, err := crypto.GenerateKey()
	require.NoError(t, err)

	full, err := crypto.Sign(message[:], priv)
	require.NoError(t, err)

	var signature [64]byte
	copy(signature[:], full[:64])
	recoveryID := full[64]

	compressed := crypto.CompressPubkey(&priv.PublicKey)
	var pub [33]byte
	copy(pub[:], compressed)

	return signature, recoveryID, pub
}

func TestRecoverMatchesSigner(t *testing.T) {
	message := [32]byte{1, 2, 3}
	signature, recoveryID, pub := sign(t, message)

	recovered, err := Recover(message, signature, recoveryID)
	require.NoError(t, err)
	require.Equal(t, pub, recovered)
}

func TestVerifySucceeds(t *testing.T) {
	message := [32]byte{4, 5, 6}
	signature, recoveryID, pub := sign(t, message)

	require.NoError(t, Verify(message, signature, recoveryID, pub))
}

func TestVerifyWrongKeyFails(t *testing.T) {
	message := [32]byte{7, 8, 9}
	signature, recoveryID, _ := sign(t, message)

	var other [33]byte
	other[0] = 0x02

	err := Verify(message, signature, recoveryID, other)
	require.ErrorIs(t, err, ErrWrongSignature)
}

func TestVerifyInvalidRecoveryID(t *testing.T) {
	message := [32]byte{10}
	signature, _, pub := sign(t, message)

	err := Verify(message, signature, 4, pub)
	require.ErrorIs(t, err, ErrInvalidSignature)
}
