// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/commission"
	"github.com/luxfi/bridgecore/contract"
)

const (
	maxReceiverLen = 64
	maxNetworkLen  = 20
)

func checkDepositArgs(amount uint64, receiverAddress []byte, networkTo string) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	if len(receiverAddress) > maxReceiverLen {
		return ErrReceiverTooLong
	}
	if len(networkTo) > maxNetworkLen {
		return ErrNetworkTooLong
	}
	return nil
}

func verifyCharge(txCtx contract.TxContext, admin Admin, commissionAdminAddr common.Address, depositKind commission.TokenKind, depositAmount uint64) error {
	return commission.VerifyDepositCharge(txCtx, admin.CommissionProgram, commissionAdminAddr, depositKind, depositAmount)
}

// DepositNative locks amount of the chain's native balance in adminAddr's
// custody for release on the destination chain. The preceding instruction
// in the same transaction must be a ChargeCommission call recording this
// exact kind and amount (spec §4.D).
func DepositNative(
	accessibleState contract.AccessibleState,
	host TokenHost,
	adminAddr, commissionAdminAddr, owner common.Address,
	amount uint64,
	receiverAddress []byte,
	networkTo string,
) error {
	if err := checkDepositArgs(amount, receiverAddress, networkTo); err != nil {
		return err
	}

	state := accessibleState.GetStateDB()
	admin := loadAdmin(state, adminAddr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}
	if err := verifyCharge(accessibleState.GetTxContext(), admin, commissionAdminAddr, commission.KindNative, amount); err != nil {
		return err
	}

	return host.NativeTransfer(owner, adminAddr, new(big.Int).SetUint64(amount))
}

// DepositFT moves amount of mint from owner's custody toward the
// destination chain. If mint's metadata names adminAddr as its update
// authority — meaning mint is a bridge-minted mirror of an asset native to
// some other chain —
// the tokens are burned rather than custodied, since the canonical supply
// already lives on the origin chain.
func DepositFT(
	accessibleState contract.AccessibleState,
	host TokenHost,
	adminAddr, commissionAdminAddr, owner, mint common.Address,
	amount uint64,
	receiverAddress []byte,
	networkTo string,
) error {
	if err := checkDepositArgs(amount, receiverAddress, networkTo); err != nil {
		return err
	}
	if !host.MintExists(mint) {
		return ErrUninitializedMint
	}

	state := accessibleState.GetStateDB()
	admin := loadAdmin(state, adminAddr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}
	if err := verifyCharge(accessibleState.GetTxContext(), admin, commissionAdminAddr, commission.KindFT, amount); err != nil {
		return err
	}

	meta, ok := host.Metadata(mint)
	if !ok {
		return ErrUninitializedMeta
	}
	if isBridgeMirror(meta, adminAddr) {
		return host.Burn(mint, owner, amount)
	}

	if err := host.EnsureAssociatedAccount(adminAddr, mint); err != nil {
		return err
	}
	return host.Transfer(mint, owner, adminAddr, amount)
}

// DepositNFT moves the single unit of tokenMint from owner's custody
// toward the destination chain, burning it when tokenMint is a
// bridge-minted mirror and custodying it otherwise.
func DepositNFT(
	accessibleState contract.AccessibleState,
	host TokenHost,
	adminAddr, commissionAdminAddr, owner, tokenMint common.Address,
	receiverAddress []byte,
	networkTo string,
) error {
	if err := checkDepositArgs(1, receiverAddress, networkTo); err != nil {
		return err
	}
	if !host.MintExists(tokenMint) {
		return ErrUninitializedMint
	}

	state := accessibleState.GetStateDB()
	admin := loadAdmin(state, adminAddr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}
	if err := verifyCharge(accessibleState.GetTxContext(), admin, commissionAdminAddr, commission.KindNFT, 1); err != nil {
		return err
	}

	meta, ok := host.Metadata(tokenMint)
	if !ok {
		return ErrUninitializedMeta
	}
	if isBridgeMirror(meta, adminAddr) {
		return host.Burn(tokenMint, owner, 1)
	}

	if err := host.EnsureAssociatedAccount(adminAddr, tokenMint); err != nil {
		return err
	}
	return host.Transfer(tokenMint, owner, adminAddr, 1)
}
