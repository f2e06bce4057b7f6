// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	luxcrypto "github.com/luxfi/crypto"
)

// TransferData is the tagged union of the three kinds of withdrawal leaf
// payload. Each variant knows how to encode itself into the exact byte
// order a legacy signer would have produced.
type TransferData interface {
	encodeOperation() []byte
}

// NativeTransfer is the leaf payload for WithdrawNative.
type NativeTransfer struct {
	Amount uint64
}

func (t NativeTransfer) encodeOperation() []byte {
	amt := AmountBytes(t.Amount)
	return amt[:]
}

// FTTransfer is the leaf payload for WithdrawFT.
type FTTransfer struct {
	Mint     [32]byte
	Amount   uint64
	Name     string
	Symbol   string
	URI      string
	Decimals uint8
}

func (t FTTransfer) encodeOperation() []byte {
	var out []byte
	out = append(out, t.Mint[:]...)
	out = append(out, []byte(t.Name)...)
	out = append(out, []byte(t.URI)...)
	amt := AmountBytes(t.Amount)
	out = append(out, amt[:]...)
	out = append(out, []byte(t.Symbol)...)
	out = append(out, t.Decimals)
	return out
}

// NFTTransfer is the leaf payload for WithdrawNFT. Collection is the
// collection mint when the token's metadata names a collection (spec §4.C
// NFT-collection rule); it is nil for a collection-less NFT.
type NFTTransfer struct {
	Collection *[32]byte
	TokenMint  [32]byte
	Name       string
	Symbol     string
	URI        string
}

func (t NFTTransfer) encodeOperation() []byte {
	var out []byte
	if t.Collection != nil {
		out = append(out, t.Collection[:]...)
	}
	out = append(out, []byte(t.Name)...)
	out = append(out, t.TokenMint[:]...)
	out = append(out, []byte(t.URI)...)
	out = append(out, []byte(t.Symbol)...)
	return out
}

// WithdrawLeaf computes the leaf hash for an authorized withdrawal:
//
//	leaf_bytes = data || origin || NetworkIdentifier || receiver || programID
//	leaf_hash  = keccak256(leaf_bytes)
func WithdrawLeaf(data TransferData, origin, receiver, programID [32]byte) [32]byte {
	buf := data.encodeOperation()
	buf = append(buf, origin[:]...)
	buf = append(buf, []byte(NetworkIdentifier)...)
	buf = append(buf, receiver[:]...)
	buf = append(buf, programID[:]...)
	var out [32]byte
	copy(out[:], luxcrypto.Keccak256(buf))
	return out
}
