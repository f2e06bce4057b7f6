// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package merkle

import (
	"testing"

	luxcrypto "github.com/luxfi/crypto"
	"github.com/stretchr/testify/require"
)

func TestEmptyPathReturnsLeaf(t *testing.T) {
	leaf := [32]byte{1, 2, 3}
	root := ComputeRoot(leaf, nil)
	require.Equal(t, leaf, root)
}

func TestSingleSiblingMatchesManualCombination(t *testing.T) {
	leaf := [32]byte{1}
	sibling := [32]byte{2}

	root := ComputeRoot(leaf, [][32]byte{sibling})

	// sibling (0x02...) > leaf (0x01...) lexicographically, so sibling goes first.
	var combined [64]byte
	copy(combined[:32], sibling[:])
	copy(combined[32:], leaf[:])
	var want [32]byte
	copy(want[:], luxcrypto.Keccak256(combined[:]))

	require.Equal(t, want, root)
}

func TestTieBreakPlacesSiblingFirst(t *testing.T) {
	leaf := [32]byte{9}
	sibling := leaf // equal hashes

	root := ComputeRoot(leaf, [][32]byte{sibling})

	var combined [64]byte
	copy(combined[:32], sibling[:])
	copy(combined[32:], leaf[:])
	var want [32]byte
	copy(want[:], luxcrypto.Keccak256(combined[:]))

	require.Equal(t, want, root)
}

func TestMultiLevelPath(t *testing.T) {
	leaf := [32]byte{0xaa}
	path := [][32]byte{{0x01}, {0xff}, {0x10}}

	root := ComputeRoot(leaf, path)
	require.NotEqual(t, leaf, root)

	// Recomputing by hand must reproduce the same root.
	hash := leaf
	for _, sib := range path {
		var a, b [32]byte
		if greaterOrEqual(sib, hash) {
			a, b = sib, hash
		} else {
			a, b = hash, sib
		}
		var combined [64]byte
		copy(combined[:32], a[:])
		copy(combined[32:], b[:])
		copy(hash[:], luxcrypto.Keccak256(combined[:]))
	}
	require.Equal(t, hash, root)
}

func greaterOrEqual(a, b [32]byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return true
}
