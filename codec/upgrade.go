// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	luxcrypto "github.com/luxfi/crypto"
)

// UpgradeMessage computes the double-keccak digest an operator signs to
// authorize installing new program code:
//
//	keccak(keccak(bufferContents) || NetworkIdentifier || amount_bytes(nonce) || programID)
//
// The inner digest binds the signature to the exact bytes being installed;
// the outer digest is computed over that digest plus the usual
// network/nonce/program framing. Do not collapse this into a single hash —
// the double application is load-bearing per the protocol this bridge
// speaks.
func UpgradeMessage(bufferContents []byte, programID [32]byte, nonce uint64) [32]byte {
	inner := luxcrypto.Keccak256(bufferContents)

	buf := make([]byte, 0, len(inner)+len(NetworkIdentifier)+32+32)
	buf = append(buf, inner...)
	buf = append(buf, []byte(NetworkIdentifier)...)
	amt := AmountBytes(nonce)
	buf = append(buf, amt[:]...)
	buf = append(buf, programID[:]...)

	var out [32]byte
	copy(out[:], luxcrypto.Keccak256(buf))
	return out
}
