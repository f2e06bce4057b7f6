// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commission

import (
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/codec"
	"github.com/luxfi/bridgecore/contract"
)

// Instruction tags for the commission program's wire protocol (spec §6).
const (
	TagInitializeAdmin  byte = 0
	TagChargeCommission byte = 1
	TagAddFeeToken      byte = 2
	TagRemoveFeeToken   byte = 3
	TagUpdateFeeToken   byte = 4
	TagWithdraw         byte = 5
)

// EncodeChargeCommission serializes a ChargeCommission instruction call.
// Besides the fee token itself, the payload carries depositKind and
// depositAmount: the kind and amount of the deposit this charge is meant to
// accompany, the form the deposit/charge coupling check (spec §4.D) decodes
// back out of the preceding instruction in the same transaction.
func EncodeChargeCommission(owner common.Address, token Token, depositKind TokenKind, depositAmount uint64) []byte {
	w := codec.NewWriter(TagChargeCommission)
	w.PutFixed(owner[:])
	putToken(w, token)
	w.PutU8(byte(depositKind))
	w.PutU64(depositAmount)
	return w.Bytes()
}

// DecodeChargeCommission parses the payload EncodeChargeCommission produces,
// returning ErrWrongArgsSize on malformed input.
func DecodeChargeCommission(data []byte) (owner common.Address, token Token, depositKind TokenKind, depositAmount uint64, err error) {
	if len(data) < 1 || data[0] != TagChargeCommission {
		return common.Address{}, Token{}, 0, 0, ErrWrongArgsSize
	}
	r := codec.NewReader(data[1:])
	ownerBytes, err := r.ReadFixed(20)
	if err != nil {
		return common.Address{}, Token{}, 0, 0, ErrWrongArgsSize
	}
	owner = common.BytesToAddress(ownerBytes)

	token, err = readToken(r)
	if err != nil {
		return common.Address{}, Token{}, 0, 0, ErrWrongArgsSize
	}

	kindByte, err := r.ReadU8()
	if err != nil {
		return common.Address{}, Token{}, 0, 0, ErrWrongArgsSize
	}
	depositKind = TokenKind(kindByte)

	depositAmount, err = r.ReadU64()
	if err != nil {
		return common.Address{}, Token{}, 0, 0, ErrWrongArgsSize
	}
	return owner, token, depositKind, depositAmount, nil
}

// ChargeCommission moves token's amount from owner to the commission
// admin's own address, rejecting NFT fees (spec §4.D: reserved, never
// chargeable) and tokens absent from the acceptable list.
func ChargeCommission(state contract.StateDB, host TokenHost, commissionAdminAddr, owner common.Address, token Token) error {
	admin := LoadAdmin(state, commissionAdminAddr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}
	if token.Kind == KindNFT {
		return ErrNotSupported
	}

	found := false
	for _, accepted := range admin.AcceptableTokens {
		if accepted.Equal(token) {
			found = true
			break
		}
	}
	if !found {
		return ErrNotAcceptable
	}

	if token.Kind == KindNative {
		return host.NativeTransfer(owner, commissionAdminAddr, new(big.Int).SetUint64(token.Amount))
	}
	if err := host.EnsureAssociatedAccount(commissionAdminAddr, token.Mint); err != nil {
		return err
	}
	return host.Transfer(token.Mint, owner, commissionAdminAddr, token.Amount)
}

// VerifyDepositCharge enforces the deposit/charge coupling invariant
// (spec §4.D): the instruction immediately preceding the current one, in
// the same transaction, must be a ChargeCommission call against
// commissionAdminAddr whose recorded deposit kind and amount exactly match
// this deposit's own.
func VerifyDepositCharge(txCtx contract.TxContext, commissionProgram, commissionAdminAddr common.Address, depositKind TokenKind, depositAmount uint64) error {
	index := txCtx.CurrentIndex()
	if index == 0 {
		return ErrWrongCommissionProgram
	}
	prev, ok := txCtx.CallAt(index - 1)
	if !ok {
		return ErrWrongCommissionProgram
	}
	if prev.Program != commissionProgram {
		return ErrWrongCommissionProgram
	}
	if prev.FirstAccount != commissionAdminAddr {
		return ErrWrongCommissionAccount
	}

	_, _, chargedKind, chargedAmount, err := DecodeChargeCommission(prev.Data)
	if err != nil {
		return ErrWrongCommissionArguments
	}
	if chargedKind != depositKind || chargedAmount != depositAmount {
		return ErrWrongCommissionArguments
	}
	return nil
}
