// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec produces the exact byte sequences that get hashed into
// Merkle leaves and authorization messages. Every encoding here must stay
// byte-for-byte stable: operator signatures are produced off-chain against
// the identical bytes.
package codec

import "github.com/holiman/uint256"

// NetworkIdentifier is the fixed ASCII identifier of the destination chain
// baked into every withdrawal leaf and the upgrade message. It is a wire
// constant inherited from the protocol this bridge speaks, not a dependency
// on any particular chain runtime.
const NetworkIdentifier = "Solana"

// AmountBytes serializes amount big-endian into a 32-byte zero-padded
// buffer, the exact-width integer encoding Merkle leaves carry amounts in.
func AmountBytes(amount uint64) [32]byte {
	var out [32]byte
	uint256.NewInt(amount).WriteToSlice(out[:])
	return out
}

// ParseAmountBytes is the inverse of AmountBytes. It does not validate that
// the value fits in 64 bits; callers that need strict round-trip checking
// should do so explicitly.
func ParseAmountBytes(b [32]byte) uint64 {
	return new(uint256.Int).SetBytes(b[:]).Uint64()
}
