// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"github.com/luxfi/geth/common"
)

// MintCollection creates the on-chain NFT collection mint addressed by
// tokenSeed, with adminAddr as both mint authority and metadata update
// authority. Anyone may call it — spec's Open Question on whether this
// needs an operator signature is decided in favor of "no": a collection
// mint carries no value on its own, and WithdrawNFT's collection-metadata
// check (spec §4.C) is what actually gates minted supply, not this call.
func MintCollection(
	host TokenHost,
	adminAddr common.Address,
	tokenSeed [32]byte,
	meta TokenMeta,
) (common.Address, error) {
	mint := DeriveAddress(adminAddr, tokenSeed)
	if host.MintExists(mint) {
		return common.Address{}, ErrAlreadyInUse
	}

	if err := host.CreateMint(mint, adminAddr, 0); err != nil {
		return common.Address{}, err
	}
	if err := host.EnsureAssociatedAccount(adminAddr, mint); err != nil {
		return common.Address{}, err
	}
	if err := host.MintTo(mint, adminAddr, adminAddr, 1); err != nil {
		return common.Address{}, err
	}
	if err := host.CreateMetadata(mint, adminAddr, meta, nil); err != nil {
		return common.Address{}, err
	}
	return mint, nil
}
