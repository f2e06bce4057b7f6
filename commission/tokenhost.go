// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commission

import (
	"math/big"

	"github.com/luxfi/geth/common"
)

// TokenHost is the slice of the host chain's fungible-token standard the
// commission engine needs: enough to move fee tokens in and out of the
// commission admin's own balance. It is the commission-package counterpart
// of bridge.TokenHost, kept separate so this package does not depend on
// bridge's wider mint/metadata surface.
type TokenHost interface {
	// EnsureAssociatedAccount creates owner's associated account for mint
	// if it does not already exist.
	EnsureAssociatedAccount(owner, mint common.Address) error

	// Transfer moves amount of mint from the from-owner's associated
	// account to the to-owner's associated account.
	Transfer(mint, from, to common.Address, amount uint64) error

	// NativeTransfer moves amount of the chain's native balance from from
	// to to.
	NativeTransfer(from, to common.Address, amount *big.Int) error
}
