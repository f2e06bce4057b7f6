// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commission

import (
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/codec"
	"github.com/luxfi/bridgecore/contract"
	"github.com/luxfi/bridgecore/merkle"
	"github.com/luxfi/bridgecore/sig"
)

// mutationLeaf reproduces the leaf an operator signs for a fee-list
// mutation: the commission leaf for the operation, bound to the nonce that
// must currently be stored on-chain, so a captured signature cannot be
// replayed once the nonce has advanced. The operator signs the Merkle root
// reconstructed from this leaf and the accompanying path, not the leaf
// itself.
func mutationLeaf(opTag byte, token Token, nonce uint64) [32]byte {
	leaf := codec.CommissionLeaf(opTag, token.mintPtr(), token.Amount)
	nonceBytes := codec.AmountBytes(nonce)
	buf := append(leaf, nonceBytes[:]...)
	var out [32]byte
	copy(out[:], luxKeccak256(buf))
	return out
}

func verifySigned(admin Admin, opTag byte, token Token, nonce uint64, path [][32]byte, signature [64]byte, recoveryID byte) error {
	leaf := mutationLeaf(opTag, token, nonce)
	root := merkle.ComputeRoot(leaf, path)
	return sig.Verify(root, signature, recoveryID, admin.PublicKey)
}

// AddFeeToken appends token to the acceptable list after verifying the
// operator's signature over the Merkle root rooted at (OpAddToken, token,
// Nonces.Add), then bumps Nonces.Add.
func AddFeeToken(state contract.StateDB, addr common.Address, token Token, path [][32]byte, signature [64]byte, recoveryID byte) error {
	admin := LoadAdmin(state, addr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}
	if len(admin.AcceptableTokens) >= MaxTokens {
		return ErrTooManyTokens
	}
	if err := verifySigned(admin, codec.OpAddToken, token, admin.Nonces.Add, path, signature, recoveryID); err != nil {
		return err
	}

	admin.AcceptableTokens = append(admin.AcceptableTokens, token)
	admin.Nonces.Add++
	StoreAdmin(state, addr, admin)
	return nil
}

// RemoveFeeToken removes the first acceptable-list entry equal to token
// after verifying the operator's signature, then bumps Nonces.Remove.
func RemoveFeeToken(state contract.StateDB, addr common.Address, token Token, path [][32]byte, signature [64]byte, recoveryID byte) error {
	admin := LoadAdmin(state, addr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}
	if err := verifySigned(admin, codec.OpRemoveToken, token, admin.Nonces.Remove, path, signature, recoveryID); err != nil {
		return err
	}

	index := -1
	for i, accepted := range admin.AcceptableTokens {
		if accepted.Equal(token) {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrTokenNotFound
	}
	admin.AcceptableTokens = append(admin.AcceptableTokens[:index], admin.AcceptableTokens[index+1:]...)
	admin.Nonces.Remove++
	StoreAdmin(state, addr, admin)
	return nil
}

// UpdateFeeToken replaces the amount of the acceptable-list entry that
// shares token's variant (kind and, for FT/NFT, mint) after verifying the
// operator's signature, then bumps Nonces.Update.
func UpdateFeeToken(state contract.StateDB, addr common.Address, token Token, path [][32]byte, signature [64]byte, recoveryID byte) error {
	admin := LoadAdmin(state, addr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}
	if err := verifySigned(admin, codec.OpUpdateToken, token, admin.Nonces.Update, path, signature, recoveryID); err != nil {
		return err
	}

	index := -1
	for i, accepted := range admin.AcceptableTokens {
		if accepted.SameVariant(token) {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrTokenNotFound
	}
	admin.AcceptableTokens[index].Amount = token.Amount
	admin.Nonces.Update++
	StoreAdmin(state, addr, admin)
	return nil
}

// Withdraw drains token's amount of token's kind/mint from the commission
// admin's own balance to destination, after verifying the operator's
// signature, then bumps Nonces.Withdraw.
func Withdraw(state contract.StateDB, host TokenHost, addr, destination common.Address, token Token, path [][32]byte, signature [64]byte, recoveryID byte) error {
	admin := LoadAdmin(state, addr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}
	if err := verifySigned(admin, codec.OpWithdrawToken, token, admin.Nonces.Withdraw, path, signature, recoveryID); err != nil {
		return err
	}

	var err error
	if token.Kind == KindNative {
		err = host.NativeTransfer(addr, destination, new(big.Int).SetUint64(token.Amount))
	} else {
		err = host.Transfer(token.Mint, addr, destination, token.Amount)
	}
	if err != nil {
		return err
	}

	admin.Nonces.Withdraw++
	StoreAdmin(state, addr, admin)
	return nil
}
