// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tokenstate is the production TokenHost: it implements the
// fungible-token and metadata standards the bridge and commission engine
// depend on (spec §1's explicit out-of-scope collaborators) directly on
// top of contract.StateDB, so this module runs standalone without a
// separate token program wired in. Every (mint, owner) pair gets its own
// derived address whose native balance IS the token balance, reusing the
// same AddBalance/SubBalance/GetBalance primitives every other precompile
// in this tree uses.
package tokenstate

import (
	"encoding/binary"
	"math/big"

	luxcrypto "github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/contract"
	"github.com/luxfi/bridgecore/token"
)

var (
	slotMintAuthority = common.Hash{0x00}
	slotMintDecimals  = common.Hash{0x01}
	slotMetaInit      = common.Hash{0x02}
	slotMetaDecimals  = common.Hash{0x03}
	slotMetaCollection = common.Hash{0x04}
)

// StateHost is a contract.StateDB-backed TokenHost. It satisfies both
// bridge.TokenHost and commission.TokenHost (their method sets are
// subsets of this one).
type StateHost struct {
	state contract.StateDB
}

// New wraps state as a TokenHost.
func New(state contract.StateDB) *StateHost {
	return &StateHost{state: state}
}

func associatedAddress(mint, owner common.Address) common.Address {
	buf := make([]byte, 0, 40)
	buf = append(buf, mint.Bytes()...)
	buf = append(buf, owner.Bytes()...)
	return common.BytesToAddress(luxcrypto.Keccak256(buf))
}

func (h *StateHost) EnsureAssociatedAccount(owner, mint common.Address) error {
	addr := associatedAddress(mint, owner)
	if !h.state.Exists(addr) {
		h.state.CreateAccount(addr)
	}
	return nil
}

func (h *StateHost) Transfer(mint, from, to common.Address, amount uint64) error {
	fromAddr := associatedAddress(mint, from)
	toAddr := associatedAddress(mint, to)
	amt := new(big.Int).SetUint64(amount)
	if h.state.GetBalance(fromAddr).Cmp(amt) < 0 {
		return ErrInsufficientBalance
	}
	if !h.state.Exists(toAddr) {
		h.state.CreateAccount(toAddr)
	}
	h.state.SubBalance(fromAddr, amt)
	h.state.AddBalance(toAddr, amt)
	return nil
}

func (h *StateHost) Burn(mint, owner common.Address, amount uint64) error {
	addr := associatedAddress(mint, owner)
	amt := new(big.Int).SetUint64(amount)
	if h.state.GetBalance(addr).Cmp(amt) < 0 {
		return ErrInsufficientBalance
	}
	h.state.SubBalance(addr, amt)
	return nil
}

func (h *StateHost) MintTo(mint, mintAuthority, owner common.Address, amount uint64) error {
	authorityWord := h.state.GetState(mint, slotMintAuthority)
	if common.BytesToAddress(authorityWord[12:]) != mintAuthority {
		return ErrWrongMintAuthority
	}
	addr := associatedAddress(mint, owner)
	if !h.state.Exists(addr) {
		h.state.CreateAccount(addr)
	}
	h.state.AddBalance(addr, new(big.Int).SetUint64(amount))
	return nil
}

func (h *StateHost) CreateMint(addr, mintAuthority common.Address, decimals uint8) error {
	if h.state.Exists(addr) {
		return ErrMintExists
	}
	h.state.CreateAccount(addr)

	var authorityWord, decimalsWord common.Hash
	copy(authorityWord[12:], mintAuthority.Bytes())
	decimalsWord[31] = decimals
	h.state.SetState(addr, slotMintAuthority, authorityWord)
	h.state.SetState(addr, slotMintDecimals, decimalsWord)
	return nil
}

func (h *StateHost) MintExists(addr common.Address) bool {
	return h.state.Exists(addr)
}

func (h *StateHost) AssociatedBalance(mint, owner common.Address) uint64 {
	addr := associatedAddress(mint, owner)
	return h.state.GetBalance(addr).Uint64()
}

func (h *StateHost) NativeTransfer(from, to common.Address, amount *big.Int) error {
	if h.state.GetBalance(from).Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	h.state.SubBalance(from, amount)
	h.state.AddBalance(to, amount)
	return nil
}

func (h *StateHost) NativeBalance(addr common.Address) *big.Int {
	return h.state.GetBalance(addr)
}

func (h *StateHost) CreateMetadata(mint, updateAuthority common.Address, meta token.Meta, collection *common.Address) error {
	nameSlot, symbolSlot, uriSlot, updateAuthoritySlot := metaFieldSlots()

	var initWord, decimalsWord, updateAuthorityWord common.Hash
	initWord[31] = 1
	decimalsWord[31] = meta.Decimals
	copy(updateAuthorityWord[12:], updateAuthority.Bytes())

	h.state.SetState(mint, slotMetaInit, initWord)
	h.state.SetState(mint, slotMetaDecimals, decimalsWord)
	h.state.SetState(mint, updateAuthoritySlot, updateAuthorityWord)
	h.setString(mint, nameSlot, meta.Name)
	h.setString(mint, symbolSlot, meta.Symbol)
	h.setString(mint, uriSlot, meta.URI)

	var collectionWord common.Hash
	if collection != nil {
		collectionWord[0] = 1
		copy(collectionWord[12:], collection.Bytes())
	}
	h.state.SetState(mint, slotMetaCollection, collectionWord)
	return nil
}

func (h *StateHost) Metadata(mint common.Address) (token.Metadata, bool) {
	initWord := h.state.GetState(mint, slotMetaInit)
	if initWord[31] == 0 {
		return token.Metadata{}, false
	}

	nameSlot, symbolSlot, uriSlot, updateAuthoritySlot := metaFieldSlots()
	decimalsWord := h.state.GetState(mint, slotMetaDecimals)
	collectionWord := h.state.GetState(mint, slotMetaCollection)
	updateAuthorityWord := h.state.GetState(mint, updateAuthoritySlot)

	meta := token.Metadata{
		Name:            h.getString(mint, nameSlot),
		Symbol:          h.getString(mint, symbolSlot),
		URI:             h.getString(mint, uriSlot),
		Decimals:        decimalsWord[31],
		UpdateAuthority: common.BytesToAddress(updateAuthorityWord[12:]),
	}
	if collectionWord[0] == 1 {
		collection := common.BytesToAddress(collectionWord[12:])
		meta.Collection = &collection
	}
	return meta, true
}

func metaFieldSlots() (name, symbol, uri, updateAuthority common.Hash) {
	return common.Hash{0x05}, common.Hash{0x06}, common.Hash{0x07}, common.Hash{0x08}
}

// setString spills an arbitrary-length string across as many consecutive
// slots after base as needed: base holds the byte length, base+1.. hold
// 32-byte chunks of the content.
func (h *StateHost) setString(addr common.Address, base common.Hash, s string) {
	var lengthWord common.Hash
	binary.BigEndian.PutUint64(lengthWord[24:], uint64(len(s)))
	h.state.SetState(addr, base, lengthWord)

	data := []byte(s)
	baseIndex := new(big.Int).SetBytes(base[:])
	for i := 0; i < len(data); i += 32 {
		end := i + 32
		if end > len(data) {
			end = len(data)
		}
		var chunk common.Hash
		copy(chunk[:], data[i:end])
		slot := common.BigToHash(new(big.Int).Add(baseIndex, big.NewInt(int64(i/32+1))))
		h.state.SetState(addr, slot, chunk)
	}
}

func (h *StateHost) getString(addr common.Address, base common.Hash) string {
	lengthWord := h.state.GetState(addr, base)
	length := binary.BigEndian.Uint64(lengthWord[24:])
	if length == 0 {
		return ""
	}

	out := make([]byte, 0, length)
	baseIndex := new(big.Int).SetBytes(base[:])
	for uint64(len(out)) < length {
		slot := common.BigToHash(new(big.Int).Add(baseIndex, big.NewInt(int64(len(out)/32+1))))
		chunk := h.state.GetState(addr, slot)
		remaining := length - uint64(len(out))
		if remaining > 32 {
			remaining = 32
		}
		out = append(out, chunk[:remaining]...)
	}
	return string(out)
}
