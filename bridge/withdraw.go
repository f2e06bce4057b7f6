// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"math/big"
	"strings"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/codec"
	"github.com/luxfi/bridgecore/contract"
	"github.com/luxfi/bridgecore/merkle"
	"github.com/luxfi/bridgecore/sig"
)

func trimNUL(s string) string {
	return strings.TrimRight(s, "\x00")
}

// receiverToOwner maps a 32-byte cross-chain receiver address to the local
// account that should receive the withdrawn funds: the low 20 bytes, the
// same convention the codec package uses wherever a 32-byte word embeds an
// address.
func receiverToOwner(receiver [32]byte) common.Address {
	return common.BytesToAddress(receiver[12:])
}

func verifyAuthorization(admin Admin, leaf [32]byte, path [][32]byte, signature [64]byte, recoveryID byte) error {
	root := merkle.ComputeRoot(leaf, path)
	return sig.Verify(root, signature, recoveryID, admin.PublicKey)
}

// WithdrawNative releases amount of native balance from adminAddr's
// custody to the account named by receiver.
func WithdrawNative(
	accessibleState contract.AccessibleState,
	host TokenHost,
	programID, adminAddr common.Address,
	origin, receiver [32]byte,
	amount uint64,
	path [][32]byte,
	signature [64]byte,
	recoveryID byte,
) error {
	state := accessibleState.GetStateDB()
	admin := loadAdmin(state, adminAddr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}

	leaf := codec.WithdrawLeaf(codec.NativeTransfer{Amount: amount}, origin, receiver, [32]byte(common.BytesToHash(programID.Bytes())))
	if err := verifyAuthorization(admin, leaf, path, signature, recoveryID); err != nil {
		return err
	}

	if _, err := CreateReceipt(state, programID, origin, TokenNative, nil, amount, receiver); err != nil {
		return err
	}

	owner := receiverToOwner(receiver)
	return host.NativeTransfer(adminAddr, owner, new(big.Int).SetUint64(amount))
}

// WithdrawFT releases amount of mint to the account named by receiver,
// creating mint as a bridge-minted mirror the first time an asset from
// origin arrives and minting the shortfall whenever custody alone cannot
// cover the amount.
func WithdrawFT(
	accessibleState contract.AccessibleState,
	host TokenHost,
	programID, adminAddr common.Address,
	origin, receiver [32]byte,
	mint [32]byte,
	amount uint64,
	name, symbol, uri string,
	decimals uint8,
	path [][32]byte,
	signature [64]byte,
	recoveryID byte,
) error {
	state := accessibleState.GetStateDB()
	admin := loadAdmin(state, adminAddr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}

	name, symbol, uri = trimNUL(name), trimNUL(symbol), trimNUL(uri)
	leaf := codec.WithdrawLeaf(codec.FTTransfer{
		Mint: mint, Amount: amount, Name: name, Symbol: symbol, URI: uri, Decimals: decimals,
	}, origin, receiver, [32]byte(common.BytesToHash(programID.Bytes())))
	if err := verifyAuthorization(admin, leaf, path, signature, recoveryID); err != nil {
		return err
	}

	mintAddr := DeriveAddress(adminAddr, mint)
	if !host.MintExists(mintAddr) {
		if err := host.CreateMint(mintAddr, adminAddr, decimals); err != nil {
			return err
		}
		if err := host.CreateMetadata(mintAddr, adminAddr, TokenMeta{Name: name, Symbol: symbol, URI: uri, Decimals: decimals}, nil); err != nil {
			return err
		}
	}

	if _, err := CreateReceipt(state, programID, origin, TokenFT, &mintAddr, amount, receiver); err != nil {
		return err
	}

	owner := receiverToOwner(receiver)
	if err := host.EnsureAssociatedAccount(owner, mintAddr); err != nil {
		return err
	}

	custodied := host.AssociatedBalance(mintAddr, adminAddr)
	fromCustody := amount
	if fromCustody > custodied {
		fromCustody = custodied
	}
	shortfall := amount - fromCustody

	if fromCustody > 0 {
		if err := host.Transfer(mintAddr, adminAddr, owner, fromCustody); err != nil {
			return err
		}
	}
	if shortfall > 0 {
		if err := host.MintTo(mintAddr, adminAddr, owner, shortfall); err != nil {
			return err
		}
	}
	return nil
}

// WithdrawNFT releases the single unit of tokenMint to the account named
// by receiver. When collection is non-nil, the leaf is hashed using the
// collection mint's own recorded name/symbol rather than tokenMint's —
// the collection's metadata is the authoritative source, since a
// cross-chain message carrying a forged name/symbol for an individual
// token would otherwise verify under its own signature. tokenMint's own
// uri is still used. If tokenMint's metadata already names a different
// collection, the call is rejected: a collection, once recorded for a
// mirror mint, cannot be silently swapped out from under an existing
// signature.
func WithdrawNFT(
	accessibleState contract.AccessibleState,
	host TokenHost,
	programID, adminAddr common.Address,
	origin, receiver [32]byte,
	collection *[32]byte,
	tokenMint [32]byte,
	name, symbol, uri string,
	path [][32]byte,
	signature [64]byte,
	recoveryID byte,
) error {
	state := accessibleState.GetStateDB()
	admin := loadAdmin(state, adminAddr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}

	name, symbol, uri = trimNUL(name), trimNUL(symbol), trimNUL(uri)

	var collectionAddr *common.Address
	leafName, leafSymbol := name, symbol
	if collection != nil {
		c := DeriveAddress(adminAddr, *collection)
		collectionAddr = &c
		collMeta, ok := host.Metadata(c)
		if !ok {
			return ErrWrongMetadata
		}
		leafName, leafSymbol = collMeta.Name, collMeta.Symbol
	}

	leaf := codec.WithdrawLeaf(codec.NFTTransfer{
		Collection: collection, TokenMint: tokenMint, Name: leafName, Symbol: leafSymbol, URI: uri,
	}, origin, receiver, [32]byte(common.BytesToHash(programID.Bytes())))
	if err := verifyAuthorization(admin, leaf, path, signature, recoveryID); err != nil {
		return err
	}

	mintAddr := DeriveAddress(adminAddr, tokenMint)

	if host.MintExists(mintAddr) {
		existing, ok := host.Metadata(mintAddr)
		if ok && existing.Collection != nil && collectionAddr != nil && *existing.Collection != *collectionAddr {
			return ErrWrongMetadata
		}
	} else {
		if err := host.CreateMint(mintAddr, adminAddr, 0); err != nil {
			return err
		}
		if err := host.CreateMetadata(mintAddr, adminAddr, TokenMeta{Name: name, Symbol: symbol, URI: uri}, collectionAddr); err != nil {
			return err
		}
	}

	if _, err := CreateReceipt(state, programID, origin, TokenNFT, &mintAddr, 1, receiver); err != nil {
		return err
	}

	owner := receiverToOwner(receiver)
	if err := host.EnsureAssociatedAccount(owner, mintAddr); err != nil {
		return err
	}

	custodied := host.AssociatedBalance(mintAddr, adminAddr)
	if custodied > 0 {
		return host.Transfer(mintAddr, adminAddr, owner, 1)
	}
	return host.MintTo(mintAddr, adminAddr, owner, 1)
}
