// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	luxcrypto "github.com/luxfi/crypto"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/codec"
)

func luxKeccak256(data []byte) []byte {
	return luxcrypto.Keccak256(data)
}

func deriveFromSeeds(programID common.Address, seed [32]byte) common.Address {
	buf := make([]byte, 0, len(programID)+len(seed))
	buf = append(buf, programID.Bytes()...)
	buf = append(buf, seed[:]...)
	return common.BytesToAddress(luxKeccak256(buf))
}

// ownershipDigest is the message an operator signs to authorize
// TransferOwnership: keccak256 of the raw new public key.
func ownershipDigest(newPublicKey [33]byte) [32]byte {
	var out [32]byte
	copy(out[:], luxKeccak256(codec.OwnershipMessage(newPublicKey)))
	return out
}
