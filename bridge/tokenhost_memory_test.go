// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"errors"
	"math/big"

	"github.com/luxfi/geth/common"
)

// memoryTokenHost is an in-memory TokenHost used only by this package's
// tests: a minimal stand-in for the host chain's token and metadata
// standards, just enough to drive deposit/withdraw round trips.
type memoryTokenHost struct {
	mints     map[common.Address]mintRecord
	balances  map[[2]common.Address]uint64
	native    map[common.Address]*big.Int
	metadata  map[common.Address]TokenMetadata
}

type mintRecord struct {
	authority common.Address
	decimals  uint8
}

func newMemoryTokenHost() *memoryTokenHost {
	return &memoryTokenHost{
		mints:    make(map[common.Address]mintRecord),
		balances: make(map[[2]common.Address]uint64),
		native:   make(map[common.Address]*big.Int),
		metadata: make(map[common.Address]TokenMetadata),
	}
}

func (h *memoryTokenHost) key(mint, owner common.Address) [2]common.Address {
	return [2]common.Address{mint, owner}
}

func (h *memoryTokenHost) EnsureAssociatedAccount(owner, mint common.Address) error {
	k := h.key(mint, owner)
	if _, ok := h.balances[k]; !ok {
		h.balances[k] = 0
	}
	return nil
}

func (h *memoryTokenHost) Transfer(mint, from, to common.Address, amount uint64) error {
	fk, tk := h.key(mint, from), h.key(mint, to)
	if h.balances[fk] < amount {
		return errors.New("memoryTokenHost: insufficient balance")
	}
	h.balances[fk] -= amount
	h.balances[tk] += amount
	return nil
}

func (h *memoryTokenHost) Burn(mint, owner common.Address, amount uint64) error {
	k := h.key(mint, owner)
	if h.balances[k] < amount {
		return errors.New("memoryTokenHost: insufficient balance")
	}
	h.balances[k] -= amount
	return nil
}

func (h *memoryTokenHost) MintTo(mint, mintAuthority, owner common.Address, amount uint64) error {
	rec, ok := h.mints[mint]
	if !ok || rec.authority != mintAuthority {
		return errors.New("memoryTokenHost: wrong mint authority")
	}
	k := h.key(mint, owner)
	h.balances[k] += amount
	return nil
}

func (h *memoryTokenHost) CreateMint(addr, mintAuthority common.Address, decimals uint8) error {
	if _, ok := h.mints[addr]; ok {
		return errors.New("memoryTokenHost: mint already exists")
	}
	h.mints[addr] = mintRecord{authority: mintAuthority, decimals: decimals}
	return nil
}

func (h *memoryTokenHost) MintExists(addr common.Address) bool {
	_, ok := h.mints[addr]
	return ok
}

func (h *memoryTokenHost) AssociatedBalance(mint, owner common.Address) uint64 {
	return h.balances[h.key(mint, owner)]
}

func (h *memoryTokenHost) NativeTransfer(from, to common.Address, amount *big.Int) error {
	if h.native[from] == nil {
		h.native[from] = big.NewInt(0)
	}
	if h.native[from].Cmp(amount) < 0 {
		return errors.New("memoryTokenHost: insufficient native balance")
	}
	if h.native[to] == nil {
		h.native[to] = big.NewInt(0)
	}
	h.native[from].Sub(h.native[from], amount)
	h.native[to].Add(h.native[to], amount)
	return nil
}

func (h *memoryTokenHost) NativeBalance(addr common.Address) *big.Int {
	if h.native[addr] == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(h.native[addr])
}

func (h *memoryTokenHost) CreateMetadata(mint, updateAuthority common.Address, meta TokenMeta, collection *common.Address) error {
	h.metadata[mint] = TokenMetadata{
		Name:            meta.Name,
		Symbol:          meta.Symbol,
		URI:             meta.URI,
		Decimals:        meta.Decimals,
		Collection:      collection,
		UpdateAuthority: updateAuthority,
	}
	return nil
}

func (h *memoryTokenHost) Metadata(mint common.Address) (TokenMetadata, bool) {
	m, ok := h.metadata[mint]
	return m, ok
}

var _ TokenHost = (*memoryTokenHost)(nil)
