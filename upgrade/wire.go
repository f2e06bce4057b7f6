// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/codec"
)

// Instruction tags for the upgrade authority's wire protocol.
const (
	TagInitializeAdmin   byte = 0
	TagTransferOwnership byte = 1
	TagUpgrade           byte = 2
)

func putSignature(w *codec.Writer, signature [64]byte, recoveryID byte) {
	w.PutFixed(signature[:])
	w.PutU8(recoveryID)
}

func readSignature(r *codec.Reader) (signature [64]byte, recoveryID byte, err error) {
	b, err := r.ReadFixed(64)
	if err != nil {
		return signature, 0, err
	}
	copy(signature[:], b)
	recoveryID, err = r.ReadU8()
	return signature, recoveryID, err
}

func decodeInitializeAdmin(data []byte) (seeds [32]byte, publicKey [33]byte, managedContract common.Address, err error) {
	r := codec.NewReader(data)
	seedBytes, err := r.ReadFixed(32)
	if err != nil {
		return seeds, publicKey, managedContract, ErrWrongArgsSize
	}
	copy(seeds[:], seedBytes)

	pkBytes, err := r.ReadFixed(33)
	if err != nil {
		return seeds, publicKey, managedContract, ErrWrongArgsSize
	}
	copy(publicKey[:], pkBytes)

	contractBytes, err := r.ReadFixed(20)
	if err != nil {
		return seeds, publicKey, managedContract, ErrWrongArgsSize
	}
	managedContract = common.BytesToAddress(contractBytes)
	return seeds, publicKey, managedContract, nil
}

// EncodeInitializeAdmin serializes an InitializeAdmin call.
func EncodeInitializeAdmin(seeds [32]byte, publicKey [33]byte, managedContract common.Address) []byte {
	w := codec.NewWriter(TagInitializeAdmin)
	w.PutFixed(seeds[:])
	w.PutFixed(publicKey[:])
	w.PutFixed(managedContract[:])
	return w.Bytes()
}

func decodeTransferOwnership(data []byte) (adminAddr common.Address, newPublicKey [33]byte, signature [64]byte, recoveryID byte, err error) {
	r := codec.NewReader(data)
	addrBytes, err := r.ReadFixed(20)
	if err != nil {
		return adminAddr, newPublicKey, signature, 0, ErrWrongArgsSize
	}
	adminAddr = common.BytesToAddress(addrBytes)

	pkBytes, err := r.ReadFixed(33)
	if err != nil {
		return adminAddr, newPublicKey, signature, 0, ErrWrongArgsSize
	}
	copy(newPublicKey[:], pkBytes)

	signature, recoveryID, err = readSignature(r)
	if err != nil {
		return adminAddr, newPublicKey, signature, 0, ErrWrongArgsSize
	}
	return adminAddr, newPublicKey, signature, recoveryID, nil
}

// EncodeTransferOwnership serializes a TransferOwnership call.
func EncodeTransferOwnership(adminAddr common.Address, newPublicKey [33]byte, signature [64]byte, recoveryID byte) []byte {
	w := codec.NewWriter(TagTransferOwnership)
	w.PutFixed(adminAddr[:])
	w.PutFixed(newPublicKey[:])
	putSignature(w, signature, recoveryID)
	return w.Bytes()
}

func decodeUpgrade(data []byte) (adminAddr common.Address, bufferContents []byte, signature [64]byte, recoveryID byte, err error) {
	r := codec.NewReader(data)
	addrBytes, err := r.ReadFixed(20)
	if err != nil {
		return adminAddr, nil, signature, 0, ErrWrongArgsSize
	}
	adminAddr = common.BytesToAddress(addrBytes)

	buf, err := r.ReadString()
	if err != nil {
		return adminAddr, nil, signature, 0, ErrWrongArgsSize
	}
	bufferContents = []byte(buf)

	signature, recoveryID, err = readSignature(r)
	if err != nil {
		return adminAddr, nil, signature, 0, ErrWrongArgsSize
	}
	return adminAddr, bufferContents, signature, recoveryID, nil
}

// EncodeUpgrade serializes an Upgrade call.
func EncodeUpgrade(adminAddr common.Address, bufferContents []byte, signature [64]byte, recoveryID byte) []byte {
	w := codec.NewWriter(TagUpgrade)
	w.PutFixed(adminAddr[:])
	w.PutString(string(bufferContents))
	putSignature(w, signature, recoveryID)
	return w.Bytes()
}
