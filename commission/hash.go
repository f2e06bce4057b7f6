// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commission

import (
	luxcrypto "github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
)

func luxKeccak256(data []byte) []byte {
	return luxcrypto.Keccak256(data)
}

// deriveFromSeeds computes the PDA of programID for a single 32-byte seed,
// the same scheme bridge.DeriveAddress uses.
func deriveFromSeeds(programID common.Address, seed [32]byte) common.Address {
	buf := make([]byte, 0, len(programID)+len(seed))
	buf = append(buf, programID.Bytes()...)
	buf = append(buf, seed[:]...)
	return common.BytesToAddress(luxKeccak256(buf))
}
