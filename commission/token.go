// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package commission implements the fee engine that sits beside the
// bridge: an enumerable list of acceptable fee tokens, a charge-on-deposit
// guard enforced across instructions, and operator-signed mutation of the
// fee list.
package commission

import "github.com/luxfi/geth/common"

// TokenKind is the CommissionToken variant tag from spec §3: Native and FT
// are chargeable; NFT is reserved and always rejected by ChargeCommission.
type TokenKind uint8

const (
	KindNative TokenKind = iota
	KindFT
	KindNFT
)

// Token is the CommissionToken value type: a variant tag, an optional
// embedded mint (present for FT/NFT), and an amount. Amount means
// different things in different contexts — the configured fee for an
// acceptable-list entry, or the amount being charged/withdrawn for an
// instruction argument — the type itself is context-free.
type Token struct {
	Kind   TokenKind
	Mint   common.Address
	Amount uint64
}

// Equal reports full variant equality: same kind, same embedded mint (for
// FT/NFT), and same amount. This is the equality ChargeCommission and
// RemoveFeeToken use to find a matching acceptable-list entry.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind || t.Amount != other.Amount {
		return false
	}
	if t.Kind == KindNative {
		return true
	}
	return t.Mint == other.Mint
}

// SameVariant reports whether t and other share a kind and (for FT/NFT)
// mint, ignoring amount. UpdateFeeToken matches by variant only.
func (t Token) SameVariant(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == KindNative {
		return true
	}
	return t.Mint == other.Mint
}

func (t Token) mintPtr() *[32]byte {
	if t.Kind == KindNative {
		return nil
	}
	var m [32]byte
	copy(m[12:], t.Mint.Bytes())
	return &m
}
