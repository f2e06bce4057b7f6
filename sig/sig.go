// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sig verifies the secp256k1 recoverable signatures that
// authorize every bridge, commission, and upgrade mutation.
package sig

import (
	"errors"

	"github.com/luxfi/geth/crypto"
)

// ErrInvalidSignature is returned when a signature does not recover to any
// public key (malformed signature or recovery id).
var ErrInvalidSignature = errors.New("sig: invalid signature")

// ErrWrongSignature is returned when a signature recovers cleanly but does
// not match the expected public key.
var ErrWrongSignature = errors.New("sig: wrong signature")

// Recover recovers the 33-byte compressed secp256k1 public key that
// produced signature over message. message is expected to already be a
// 32-byte digest (the root of a Merkle tree, or another canonical-codec
// message); this function does not hash its input again.
func Recover(message [32]byte, signature [64]byte, recoveryID byte) ([33]byte, error) {
	var sig65 [65]byte
	copy(sig65[:64], signature[:])
	sig65[64] = recoveryID

	pub, err := crypto.SigToPub(message[:], sig65[:])
	if err != nil {
		return [33]byte{}, ErrInvalidSignature
	}

	compressed := crypto.CompressPubkey(pub)
	var out [33]byte
	copy(out[:], compressed)
	return out, nil
}

// Verify recovers the signer of message and requires it to byte-equal
// target. Recovery failure yields ErrInvalidSignature; a clean recovery
// that does not match target yields ErrWrongSignature.
func Verify(message [32]byte, signature [64]byte, recoveryID byte, target [33]byte) error {
	recovered, err := Recover(message, signature, recoveryID)
	if err != nil {
		return err
	}
	if recovered != target {
		return ErrWrongSignature
	}
	return nil
}
