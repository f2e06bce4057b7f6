// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// OwnershipMessage is the message that authorizes TransferOwnership: the
// raw bytes of the new compressed public key, with no additional framing.
// The operator signs keccak256 of these bytes (ownershipDigest in the
// bridge and upgrade packages), since recovery needs a 32-byte digest.
func OwnershipMessage(newPublicKey [33]byte) []byte {
	out := make([]byte, 33)
	copy(out, newPublicKey[:])
	return out
}
