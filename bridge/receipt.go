// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"encoding/binary"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/contract"
)

// TokenType identifies which asset kind a withdrawal receipt or deposit
// concerns.
type TokenType uint8

const (
	TokenNative TokenType = iota
	TokenFT
	TokenNFT
)

var (
	slotReceiptTypeInit = common.Hash{0x00}
	slotReceiptMint     = common.Hash{0x01}
	slotReceiptAmount   = common.Hash{0x02}
	slotReceiptOrigin   = common.Hash{0x03}
	slotReceiptReceiver = common.Hash{0x04}
)

// Receipt mirrors the "Withdraw receipt" entity of spec §3: the full
// record of one completed external-chain deposit that has been withdrawn
// on this chain. Its existence at ReceiptAddress(programID, origin) is the
// entire replay guard — there is no other bookkeeping.
type Receipt struct {
	TokenType     TokenType
	Mint          *common.Address
	Amount        uint64
	Origin        [32]byte
	Receiver      [32]byte
	IsInitialized bool
}

// ReceiptAddress computes the deterministic address a Withdraw receipt for
// origin lives at under programID.
func ReceiptAddress(programID common.Address, origin [32]byte) common.Address {
	return DeriveAddress(programID, origin)
}

// CreateReceipt allocates the Withdraw receipt for origin. If a receipt
// already exists at that address — meaning this origin was already
// processed — it fails with ErrAlreadyInUse instead of overwriting
// anything, which is the bridge's entire replay guard (spec invariant #2).
func CreateReceipt(
	state contract.StateDB,
	programID common.Address,
	origin [32]byte,
	tokenType TokenType,
	mint *common.Address,
	amount uint64,
	receiver [32]byte,
) (common.Address, error) {
	addr := ReceiptAddress(programID, origin)
	if state.Exists(addr) {
		return common.Address{}, ErrAlreadyInUse
	}

	state.CreateAccount(addr)

	var typeInit, mintWord, amountWord common.Hash
	typeInit[0] = byte(tokenType)
	typeInit[31] = 1
	if mint != nil {
		copy(mintWord[12:], mint.Bytes())
	}
	binary.BigEndian.PutUint64(amountWord[24:], amount)

	state.SetState(addr, slotReceiptTypeInit, typeInit)
	state.SetState(addr, slotReceiptMint, mintWord)
	state.SetState(addr, slotReceiptAmount, amountWord)
	state.SetState(addr, slotReceiptOrigin, common.Hash(origin))
	state.SetState(addr, slotReceiptReceiver, common.Hash(receiver))

	return addr, nil
}

// LoadReceipt reads back the receipt for origin, if any.
func LoadReceipt(state contract.StateDB, programID common.Address, origin [32]byte) (Receipt, bool) {
	addr := ReceiptAddress(programID, origin)
	if !state.Exists(addr) {
		return Receipt{}, false
	}

	typeInit := state.GetState(addr, slotReceiptTypeInit)
	mintWord := state.GetState(addr, slotReceiptMint)
	amountWord := state.GetState(addr, slotReceiptAmount)
	originWord := state.GetState(addr, slotReceiptOrigin)
	receiverWord := state.GetState(addr, slotReceiptReceiver)

	r := Receipt{
		TokenType:     TokenType(typeInit[0]),
		Amount:        binary.BigEndian.Uint64(amountWord[24:]),
		Origin:        originWord,
		Receiver:      receiverWord,
		IsInitialized: typeInit[31] != 0,
	}
	if r.TokenType != TokenNative {
		mint := common.BytesToAddress(mintWord[:])
		r.Mint = &mint
	}
	return r, true
}
