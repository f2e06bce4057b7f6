// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package merkle reconstructs a Merkle root from a leaf hash and an
// ordered sibling path, using sorted-pair keccak256 combination.
package merkle

import (
	"bytes"

	luxcrypto "github.com/luxfi/crypto"
)

// ComputeRoot reconstructs the root over a sorted-pair binary Merkle tree.
// At every step the current hash and the next sibling are compared as
// 32-byte big-endian values; the larger of the two is placed first. This
// means a sibling equal to the running hash is placed first too — ties
// break toward the sibling, never toward the leaf under reconstruction.
//
// An empty path is permitted: the leaf hash itself is returned as the root.
func ComputeRoot(leaf [32]byte, path [][32]byte) [32]byte {
	hash := leaf
	for _, sibling := range path {
		var combined [64]byte
		if bytes.Compare(sibling[:], hash[:]) >= 0 {
			copy(combined[:32], sibling[:])
			copy(combined[32:], hash[:])
		} else {
			copy(combined[:32], hash[:])
			copy(combined[32:], sibling[:])
		}
		copy(hash[:], luxcrypto.Keccak256(combined[:]))
	}
	return hash
}
