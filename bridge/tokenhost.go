// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/token"
)

// TokenMeta is the signed metadata an operator provides when a bridge-
// minted mirror mint or collection is created for the first time:
// spec §6's signed_meta.
type TokenMeta = token.Meta

// TokenMetadata is what the bridge reads back off an existing mint's
// metadata record, including an optional collection reference used by the
// NFT-collection rule in WithdrawNFT (spec §4.C).
type TokenMetadata = token.Metadata

// TokenHost is everything the bridge needs from the host chain's
// fungible-token and token-metadata standards. These concerns are
// explicitly out of scope for this core (spec §1): the bridge only
// consumes this interface, never implements the standards themselves.
type TokenHost interface {
	// EnsureAssociatedAccount creates owner's associated account for mint
	// if it does not already exist. It is a no-op if the account exists.
	EnsureAssociatedAccount(owner, mint common.Address) error

	// Transfer moves amount of mint from the from-owner's associated
	// account to the to-owner's associated account.
	Transfer(mint, from, to common.Address, amount uint64) error

	// Burn destroys amount of mint from owner's associated account.
	Burn(mint, owner common.Address, amount uint64) error

	// MintTo creates amount of mint into owner's associated account.
	// mintAuthority must equal the mint's recorded authority.
	MintTo(mint, mintAuthority, owner common.Address, amount uint64) error

	// CreateMint creates a new mint at addr with the given decimals and
	// mint authority. It fails if addr already holds a mint.
	CreateMint(addr, mintAuthority common.Address, decimals uint8) error

	// MintExists reports whether addr already holds an initialized mint.
	MintExists(addr common.Address) bool

	// AssociatedBalance returns owner's balance of mint, or zero if the
	// associated account does not exist.
	AssociatedBalance(mint, owner common.Address) uint64

	// NativeTransfer moves amount of the chain's native balance from from
	// to to.
	NativeTransfer(from, to common.Address, amount *big.Int) error

	// NativeBalance returns addr's native balance.
	NativeBalance(addr common.Address) *big.Int

	// CreateMetadata creates a metadata record for mint with the given
	// fields and update authority.
	CreateMetadata(mint, updateAuthority common.Address, meta TokenMeta, collection *common.Address) error

	// Metadata reads back the metadata record for mint. ok is false when
	// no metadata record exists (ErrUninitializedMeta territory).
	Metadata(mint common.Address) (TokenMetadata, bool)
}
