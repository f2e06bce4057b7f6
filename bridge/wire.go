// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/codec"
)

// Instruction tags for the bridge admin's wire protocol. programID is never
// carried on the wire: it is always the precompile's own dispatch address,
// supplied by the EVM call frame.
const (
	TagInitializeAdmin   byte = 0
	TagTransferOwnership byte = 1
	TagDepositNative     byte = 2
	TagDepositFT         byte = 3
	TagDepositNFT        byte = 4
	TagWithdrawNative    byte = 5
	TagWithdrawFT        byte = 6
	TagWithdrawNFT       byte = 7
	TagMintCollection    byte = 8
)

func putAddress(w *codec.Writer, addr common.Address) {
	w.PutFixed(addr.Bytes())
}

func readAddress(r *codec.Reader) (common.Address, error) {
	b, err := r.ReadFixed(20)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(b), nil
}

func putWord(w *codec.Writer, word [32]byte) {
	w.PutFixed(word[:])
}

func readWord(r *codec.Reader) (word [32]byte, err error) {
	b, err := r.ReadFixed(32)
	if err != nil {
		return word, err
	}
	copy(word[:], b)
	return word, nil
}

func putBytes(w *codec.Writer, b []byte) {
	w.PutString(string(b))
}

func readBytes(r *codec.Reader) ([]byte, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func putPath(w *codec.Writer, path [][32]byte) {
	w.PutU8(byte(len(path)))
	for _, sibling := range path {
		putWord(w, sibling)
	}
}

func readPath(r *codec.Reader) ([][32]byte, error) {
	n, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	path := make([][32]byte, n)
	for i := range path {
		word, err := readWord(r)
		if err != nil {
			return nil, err
		}
		path[i] = word
	}
	return path, nil
}

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

func putOptionalWord(w *codec.Writer, word *[32]byte) {
	w.PutOption(word != nil, func(w *codec.Writer) {
		putWord(w, *word)
	})
}

func readOptionalWord(r *codec.Reader) (*[32]byte, error) {
	var out *[32]byte
	_, err := r.ReadOption(func(r *codec.Reader) error {
		word, err := readWord(r)
		if err != nil {
			return err
		}
		out = &word
		return nil
	})
	return out, err
}

// putOptionalBytes and readOptionalBytes carry bundle_data (spec §6): an
// opaque payload deposits may attach for the destination chain to
// interpret. Nothing on this side inspects it.
func putOptionalBytes(w *codec.Writer, b []byte) {
	w.PutOption(b != nil, func(w *codec.Writer) {
		putBytes(w, b)
	})
}

func readOptionalBytes(r *codec.Reader) ([]byte, error) {
	var out []byte
	_, err := r.ReadOption(func(r *codec.Reader) error {
		b, err := readBytes(r)
		if err != nil {
			return err
		}
		out = b
		return nil
	})
	return out, err
}

// decodeInitializeAdmin parses an InitializeAdmin call: the seeds the caller
// claims derive its own admin PDA, the operator public key, and the
// commission engine's program address.
func decodeInitializeAdmin(data []byte) (seeds [32]byte, publicKey [33]byte, commissionProgram common.Address, err error) {
	r := codec.NewReader(data)
	seeds, err = readWord(r)
	if err != nil {
		return seeds, publicKey, commissionProgram, ErrWrongArgsSize
	}
	pkBytes, err := r.ReadFixed(33)
	if err != nil {
		return seeds, publicKey, commissionProgram, ErrWrongArgsSize
	}
	copy(publicKey[:], pkBytes)
	commissionProgram, err = readAddress(r)
	if err != nil {
		return seeds, publicKey, commissionProgram, ErrWrongArgsSize
	}
	return seeds, publicKey, commissionProgram, nil
}

// EncodeInitializeAdmin serializes an InitializeAdmin call.
func EncodeInitializeAdmin(seeds [32]byte, publicKey [33]byte, commissionProgram common.Address) []byte {
	w := codec.NewWriter(TagInitializeAdmin)
	putWord(w, seeds)
	w.PutFixed(publicKey[:])
	putAddress(w, commissionProgram)
	return w.Bytes()
}

func decodeTransferOwnership(data []byte) (adminAddr common.Address, newPublicKey [33]byte, signature [64]byte, recoveryID byte, err error) {
	r := codec.NewReader(data)
	adminAddr, err = readAddress(r)
	if err != nil {
		return adminAddr, newPublicKey, signature, 0, ErrWrongArgsSize
	}
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
	putAddress(w, adminAddr)
	w.PutFixed(newPublicKey[:])
	putSignature(w, signature, recoveryID)
	return w.Bytes()
}

func decodeDepositNative(data []byte) (adminAddr common.Address, amount uint64, receiverAddress []byte, networkTo string, err error) {
	r := codec.NewReader(data)
	adminAddr, err = readAddress(r)
	if err != nil {
		return adminAddr, 0, nil, "", ErrWrongArgsSize
	}
	amount, err = r.ReadU64()
	if err != nil {
		return adminAddr, 0, nil, "", ErrWrongArgsSize
	}
	receiverAddress, err = readBytes(r)
	if err != nil {
		return adminAddr, 0, nil, "", ErrWrongArgsSize
	}
	networkTo, err = r.ReadString()
	if err != nil {
		return adminAddr, 0, nil, "", ErrWrongArgsSize
	}
	if _, err = readOptionalBytes(r); err != nil { // bundle_data, unused
		return adminAddr, 0, nil, "", ErrWrongArgsSize
	}
	if _, err = readOptionalWord(r); err != nil { // bundle_seed, unused
		return adminAddr, 0, nil, "", ErrWrongArgsSize
	}
	return adminAddr, amount, receiverAddress, networkTo, nil
}

// EncodeDepositNative serializes a DepositNative call.
func EncodeDepositNative(adminAddr common.Address, amount uint64, receiverAddress []byte, networkTo string) []byte {
	w := codec.NewWriter(TagDepositNative)
	putAddress(w, adminAddr)
	w.PutU64(amount)
	putBytes(w, receiverAddress)
	w.PutString(networkTo)
	putOptionalBytes(w, nil)
	putOptionalWord(w, nil)
	return w.Bytes()
}

func decodeDepositFT(data []byte) (adminAddr, mint common.Address, amount uint64, receiverAddress []byte, networkTo string, err error) {
	r := codec.NewReader(data)
	adminAddr, err = readAddress(r)
	if err != nil {
		return adminAddr, mint, 0, nil, "", ErrWrongArgsSize
	}
	mint, err = readAddress(r)
	if err != nil {
		return adminAddr, mint, 0, nil, "", ErrWrongArgsSize
	}
	amount, err = r.ReadU64()
	if err != nil {
		return adminAddr, mint, 0, nil, "", ErrWrongArgsSize
	}
	receiverAddress, err = readBytes(r)
	if err != nil {
		return adminAddr, mint, 0, nil, "", ErrWrongArgsSize
	}
	networkTo, err = r.ReadString()
	if err != nil {
		return adminAddr, mint, 0, nil, "", ErrWrongArgsSize
	}
	if _, err = readOptionalBytes(r); err != nil { // bundle_data, unused
		return adminAddr, mint, 0, nil, "", ErrWrongArgsSize
	}
	if _, err = readOptionalWord(r); err != nil { // bundle_seed, unused
		return adminAddr, mint, 0, nil, "", ErrWrongArgsSize
	}
	return adminAddr, mint, amount, receiverAddress, networkTo, nil
}

// EncodeDepositFT serializes a DepositFT call.
func EncodeDepositFT(adminAddr, mint common.Address, amount uint64, receiverAddress []byte, networkTo string) []byte {
	w := codec.NewWriter(TagDepositFT)
	putAddress(w, adminAddr)
	putAddress(w, mint)
	w.PutU64(amount)
	putBytes(w, receiverAddress)
	w.PutString(networkTo)
	putOptionalBytes(w, nil)
	putOptionalWord(w, nil)
	return w.Bytes()
}

func decodeDepositNFT(data []byte) (adminAddr, tokenMint common.Address, receiverAddress []byte, networkTo string, err error) {
	r := codec.NewReader(data)
	adminAddr, err = readAddress(r)
	if err != nil {
		return adminAddr, tokenMint, nil, "", ErrWrongArgsSize
	}
	tokenMint, err = readAddress(r)
	if err != nil {
		return adminAddr, tokenMint, nil, "", ErrWrongArgsSize
	}
	receiverAddress, err = readBytes(r)
	if err != nil {
		return adminAddr, tokenMint, nil, "", ErrWrongArgsSize
	}
	networkTo, err = r.ReadString()
	if err != nil {
		return adminAddr, tokenMint, nil, "", ErrWrongArgsSize
	}
	if _, err = readOptionalBytes(r); err != nil { // bundle_data, unused
		return adminAddr, tokenMint, nil, "", ErrWrongArgsSize
	}
	if _, err = readOptionalWord(r); err != nil { // bundle_seed, unused
		return adminAddr, tokenMint, nil, "", ErrWrongArgsSize
	}
	return adminAddr, tokenMint, receiverAddress, networkTo, nil
}

// EncodeDepositNFT serializes a DepositNFT call.
func EncodeDepositNFT(adminAddr, tokenMint common.Address, receiverAddress []byte, networkTo string) []byte {
	w := codec.NewWriter(TagDepositNFT)
	putAddress(w, adminAddr)
	putAddress(w, tokenMint)
	putBytes(w, receiverAddress)
	w.PutString(networkTo)
	putOptionalBytes(w, nil)
	putOptionalWord(w, nil)
	return w.Bytes()
}

func decodeWithdrawNative(data []byte) (adminAddr common.Address, origin, receiver [32]byte, amount uint64, path [][32]byte, signature [64]byte, recoveryID byte, err error) {
	r := codec.NewReader(data)
	adminAddr, err = readAddress(r)
	if err != nil {
		return adminAddr, origin, receiver, 0, nil, signature, 0, ErrWrongArgsSize
	}
	origin, err = readWord(r)
	if err != nil {
		return adminAddr, origin, receiver, 0, nil, signature, 0, ErrWrongArgsSize
	}
	receiver, err = readWord(r)
	if err != nil {
		return adminAddr, origin, receiver, 0, nil, signature, 0, ErrWrongArgsSize
	}
	amount, err = r.ReadU64()
	if err != nil {
		return adminAddr, origin, receiver, 0, nil, signature, 0, ErrWrongArgsSize
	}
	path, err = readPath(r)
	if err != nil {
		return adminAddr, origin, receiver, 0, nil, signature, 0, ErrWrongArgsSize
	}
	signature, recoveryID, err = readSignature(r)
	if err != nil {
		return adminAddr, origin, receiver, 0, nil, signature, 0, ErrWrongArgsSize
	}
	return adminAddr, origin, receiver, amount, path, signature, recoveryID, nil
}

// EncodeWithdrawNative serializes a WithdrawNative call.
func EncodeWithdrawNative(adminAddr common.Address, origin, receiver [32]byte, amount uint64, path [][32]byte, signature [64]byte, recoveryID byte) []byte {
	w := codec.NewWriter(TagWithdrawNative)
	putAddress(w, adminAddr)
	putWord(w, origin)
	putWord(w, receiver)
	w.PutU64(amount)
	putPath(w, path)
	putSignature(w, signature, recoveryID)
	return w.Bytes()
}

func decodeWithdrawFT(data []byte) (adminAddr common.Address, origin, receiver [32]byte, mint [32]byte, amount uint64, name, symbol, uri string, decimals uint8, path [][32]byte, signature [64]byte, recoveryID byte, err error) {
	r := codec.NewReader(data)
	adminAddr, err = readAddress(r)
	if err != nil {
		return
	}
	origin, err = readWord(r)
	if err != nil {
		return
	}
	receiver, err = readWord(r)
	if err != nil {
		return
	}
	mint, err = readWord(r)
	if err != nil {
		return
	}
	amount, err = r.ReadU64()
	if err != nil {
		return
	}
	name, err = r.ReadString()
	if err != nil {
		return
	}
	symbol, err = r.ReadString()
	if err != nil {
		return
	}
	uri, err = r.ReadString()
	if err != nil {
		return
	}
	decimals, err = r.ReadU8()
	if err != nil {
		return
	}
	path, err = readPath(r)
	if err != nil {
		return
	}
	signature, recoveryID, err = readSignature(r)
	return
}

// EncodeWithdrawFT serializes a WithdrawFT call.
func EncodeWithdrawFT(adminAddr common.Address, origin, receiver, mint [32]byte, amount uint64, name, symbol, uri string, decimals uint8, path [][32]byte, signature [64]byte, recoveryID byte) []byte {
	w := codec.NewWriter(TagWithdrawFT)
	putAddress(w, adminAddr)
	putWord(w, origin)
	putWord(w, receiver)
	putWord(w, mint)
	w.PutU64(amount)
	w.PutString(name)
	w.PutString(symbol)
	w.PutString(uri)
	w.PutU8(decimals)
	putPath(w, path)
	putSignature(w, signature, recoveryID)
	return w.Bytes()
}

func decodeWithdrawNFT(data []byte) (adminAddr common.Address, origin, receiver [32]byte, collection *[32]byte, tokenMint [32]byte, name, symbol, uri string, path [][32]byte, signature [64]byte, recoveryID byte, err error) {
	r := codec.NewReader(data)
	adminAddr, err = readAddress(r)
	if err != nil {
		return
	}
	origin, err = readWord(r)
	if err != nil {
		return
	}
	receiver, err = readWord(r)
	if err != nil {
		return
	}
	collection, err = readOptionalWord(r)
	if err != nil {
		return
	}
	tokenMint, err = readWord(r)
	if err != nil {
		return
	}
	name, err = r.ReadString()
	if err != nil {
		return
	}
	symbol, err = r.ReadString()
	if err != nil {
		return
	}
	uri, err = r.ReadString()
	if err != nil {
		return
	}
	path, err = readPath(r)
	if err != nil {
		return
	}
	signature, recoveryID, err = readSignature(r)
	return
}

// EncodeWithdrawNFT serializes a WithdrawNFT call.
func EncodeWithdrawNFT(adminAddr common.Address, origin, receiver [32]byte, collection *[32]byte, tokenMint [32]byte, name, symbol, uri string, path [][32]byte, signature [64]byte, recoveryID byte) []byte {
	w := codec.NewWriter(TagWithdrawNFT)
	putAddress(w, adminAddr)
	putWord(w, origin)
	putWord(w, receiver)
	putOptionalWord(w, collection)
	putWord(w, tokenMint)
	w.PutString(name)
	w.PutString(symbol)
	w.PutString(uri)
	putPath(w, path)
	putSignature(w, signature, recoveryID)
	return w.Bytes()
}

func decodeMintCollection(data []byte) (adminAddr common.Address, tokenSeed [32]byte, meta TokenMeta, err error) {
	r := codec.NewReader(data)
	adminAddr, err = readAddress(r)
	if err != nil {
		return
	}
	tokenSeed, err = readWord(r)
	if err != nil {
		return
	}
	meta.Name, err = r.ReadString()
	if err != nil {
		return
	}
	meta.Symbol, err = r.ReadString()
	if err != nil {
		return
	}
	meta.URI, err = r.ReadString()
	if err != nil {
		return
	}
	meta.Decimals, err = r.ReadU8()
	return
}

// EncodeMintCollection serializes a MintCollection call.
func EncodeMintCollection(adminAddr common.Address, tokenSeed [32]byte, meta TokenMeta) []byte {
	w := codec.NewWriter(TagMintCollection)
	putAddress(w, adminAddr)
	putWord(w, tokenSeed)
	w.PutString(meta.Name)
	w.PutString(meta.Symbol)
	w.PutString(meta.URI)
	w.PutU8(meta.Decimals)
	return w.Bytes()
}
