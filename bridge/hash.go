// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	luxcrypto "github.com/luxfi/crypto"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/codec"
)

func luxKeccak256(data []byte) []byte {
	return luxcrypto.Keccak256(data)
}

// ownershipDigest is the message an operator signs to authorize
// TransferOwnership: keccak256 of the raw new public key.
func ownershipDigest(newPublicKey [33]byte) [32]byte {
	var out [32]byte
	copy(out[:], luxKeccak256(codec.OwnershipMessage(newPublicKey)))
	return out
}

// isBridgeMirror reports whether meta names adminAddr as its update
// authority, meaning the mint is a mirror this bridge created on a prior
// withdrawal rather than an asset native to this chain.
func isBridgeMirror(meta TokenMetadata, adminAddr common.Address) bool {
	return meta.UpdateAuthority == adminAddr
}
