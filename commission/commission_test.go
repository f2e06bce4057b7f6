// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commission

import (
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"

	"github.com/luxfi/bridgecore/codec"
	"github.com/luxfi/bridgecore/contract"
	"github.com/luxfi/bridgecore/merkle"
)

// memoryState is a minimal in-memory contract.StateDB for tests.
type memoryState struct {
	storage map[common.Address]map[common.Hash]common.Hash
	exists  map[common.Address]bool
}

func newMemoryState() *memoryState {
	return &memoryState{
		storage: make(map[common.Address]map[common.Hash]common.Hash),
		exists:  make(map[common.Address]bool),
	}
}

func (s *memoryState) GetState(addr common.Address, key common.Hash) common.Hash {
	return s.storage[addr][key]
}

func (s *memoryState) SetState(addr common.Address, key common.Hash, value common.Hash) {
	if s.storage[addr] == nil {
		s.storage[addr] = make(map[common.Hash]common.Hash)
	}
	s.storage[addr][key] = value
}

func (s *memoryState) GetBalance(common.Address) *big.Int  { return big.NewInt(0) }
func (s *memoryState) AddBalance(common.Address, *big.Int) {}
func (s *memoryState) SubBalance(common.Address, *big.Int) {}

func (s *memoryState) Exists(addr common.Address) bool {
	return s.exists[addr]
}

func (s *memoryState) CreateAccount(addr common.Address) {
	s.exists[addr] = true
}

var _ contract.StateDB = (*memoryState)(nil)

// memoryTokenHost is a minimal in-memory commission.TokenHost for tests.
type memoryTokenHost struct {
	balances map[[2]common.Address]uint64
	native   map[common.Address]*big.Int
}

func newMemoryTokenHost() *memoryTokenHost {
	return &memoryTokenHost{
		balances: make(map[[2]common.Address]uint64),
		native:   make(map[common.Address]*big.Int),
	}
}

func (h *memoryTokenHost) EnsureAssociatedAccount(owner, mint common.Address) error {
	return nil
}

func (h *memoryTokenHost) Transfer(mint, from, to common.Address, amount uint64) error {
	h.balances[[2]common.Address{mint, from}] -= amount
	h.balances[[2]common.Address{mint, to}] += amount
	return nil
}

func (h *memoryTokenHost) NativeTransfer(from, to common.Address, amount *big.Int) error {
	if h.native[from] == nil {
		h.native[from] = big.NewInt(0)
	}
	if h.native[to] == nil {
		h.native[to] = big.NewInt(0)
	}
	h.native[from].Sub(h.native[from], amount)
	h.native[to].Add(h.native[to], amount)
	return nil
}

var _ TokenHost = (*memoryTokenHost)(nil)

func generateOperator(t *testing.T) ([33]byte, func(opTag byte, token Token, nonce uint64) ([64]byte, byte)) {
	t.Helper()
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	var pk [33]byte
	copy(pk[:], crypto.CompressPubkey(&priv.PublicKey))

	sign := func(opTag byte, token Token, nonce uint64) ([64]byte, byte) {
		root := merkle.ComputeRoot(mutationLeaf(opTag, token, nonce), nil)
		sigBytes, err := crypto.Sign(root[:], priv)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		var out [64]byte
		copy(out[:], sigBytes[:64])
		return out, sigBytes[64]
	}
	return pk, sign
}

func TestInitializeAdminAcceptableList(t *testing.T) {
	state := newMemoryState()
	addr := common.HexToAddress("0x1010101010101010101010101010101010101010")
	pk, _ := generateOperator(t)

	tokens := make([]Token, MaxTokens+1)
	if err := InitializeAdmin(state, addr, pk, tokens); err != ErrTooManyTokens {
		t.Fatalf("expected ErrTooManyTokens, got %v", err)
	}

	tokens = []Token{{Kind: KindNative, Amount: 5}}
	if err := InitializeAdmin(state, addr, pk, tokens); err != nil {
		t.Fatalf("InitializeAdmin: %v", err)
	}
	if err := InitializeAdmin(state, addr, pk, tokens); err != ErrAlreadyInUse {
		t.Fatalf("expected ErrAlreadyInUse on re-init, got %v", err)
	}

	admin := LoadAdmin(state, addr)
	if len(admin.AcceptableTokens) != 1 || !admin.AcceptableTokens[0].Equal(tokens[0]) {
		t.Fatalf("acceptable list round-trip failed: %+v", admin.AcceptableTokens)
	}
}

func TestAddFeeTokenNonceMonotonic(t *testing.T) {
	state := newMemoryState()
	addr := common.HexToAddress("0x2020202020202020202020202020202020202020")
	pk, sign := generateOperator(t)
	if err := InitializeAdmin(state, addr, pk, nil); err != nil {
		t.Fatalf("InitializeAdmin: %v", err)
	}

	token := Token{Kind: KindFT, Mint: common.HexToAddress("0xAAAA"), Amount: 1}
	sig, recoveryID := sign(codec.OpAddToken, token, 0)
	if err := AddFeeToken(state, addr, token, nil, sig, recoveryID); err != nil {
		t.Fatalf("AddFeeToken: %v", err)
	}

	admin := LoadAdmin(state, addr)
	if admin.Nonces.Add != 1 {
		t.Fatalf("nonce not advanced: %+v", admin.Nonces)
	}

	// Replaying the same signature against the now-stale nonce must fail:
	// verifySigned recomputes the digest against the current (advanced)
	// nonce, which no longer matches what was signed.
	if err := AddFeeToken(state, addr, token, nil, sig, recoveryID); err == nil {
		t.Fatalf("expected replayed signature to fail after nonce advanced")
	}

	second := Token{Kind: KindFT, Mint: common.HexToAddress("0xBBBB"), Amount: 2}
	sig2, rid2 := sign(codec.OpAddToken, second, 1)
	if err := AddFeeToken(state, addr, second, nil, sig2, rid2); err != nil {
		t.Fatalf("AddFeeToken second: %v", err)
	}

	admin = LoadAdmin(state, addr)
	if len(admin.AcceptableTokens) != 2 {
		t.Fatalf("expected 2 acceptable tokens, got %d", len(admin.AcceptableTokens))
	}
}

func TestRemoveAndUpdateFeeToken(t *testing.T) {
	state := newMemoryState()
	addr := common.HexToAddress("0x3030303030303030303030303030303030303030")
	pk, sign := generateOperator(t)
	token := Token{Kind: KindFT, Mint: common.HexToAddress("0xCCCC"), Amount: 7}
	if err := InitializeAdmin(state, addr, pk, []Token{token}); err != nil {
		t.Fatalf("InitializeAdmin: %v", err)
	}

	updated := Token{Kind: KindFT, Mint: token.Mint, Amount: 9}
	sig, rid := sign(codec.OpUpdateToken, updated, 0)
	if err := UpdateFeeToken(state, addr, updated, nil, sig, rid); err != nil {
		t.Fatalf("UpdateFeeToken: %v", err)
	}
	admin := LoadAdmin(state, addr)
	if admin.AcceptableTokens[0].Amount != 9 {
		t.Fatalf("amount not updated: %+v", admin.AcceptableTokens)
	}

	sig2, rid2 := sign(codec.OpRemoveToken, updated, 0)
	if err := RemoveFeeToken(state, addr, updated, nil, sig2, rid2); err != nil {
		t.Fatalf("RemoveFeeToken: %v", err)
	}
	admin = LoadAdmin(state, addr)
	if len(admin.AcceptableTokens) != 0 {
		t.Fatalf("expected empty acceptable list, got %+v", admin.AcceptableTokens)
	}
}

func TestChargeCommission(t *testing.T) {
	state := newMemoryState()
	addr := common.HexToAddress("0x4040404040404040404040404040404040404040")
	pk, _ := generateOperator(t)
	fee := Token{Kind: KindNative, Amount: 50}
	if err := InitializeAdmin(state, addr, pk, []Token{fee}); err != nil {
		t.Fatalf("InitializeAdmin: %v", err)
	}

	host := newMemoryTokenHost()
	owner := common.HexToAddress("0x5050505050505050505050505050505050505050")
	host.native[owner] = big.NewInt(1000)

	if err := ChargeCommission(state, host, addr, owner, fee); err != nil {
		t.Fatalf("ChargeCommission: %v", err)
	}
	if got := host.native[addr]; got.Cmp(big.NewInt(50)) != 0 {
		t.Fatalf("admin balance = %s, want 50", got)
	}

	notAccepted := Token{Kind: KindNative, Amount: 999}
	if err := ChargeCommission(state, host, addr, owner, notAccepted); err != ErrNotAcceptable {
		t.Fatalf("expected ErrNotAcceptable, got %v", err)
	}

	nftFee := Token{Kind: KindNFT, Mint: common.HexToAddress("0xDEAD"), Amount: 1}
	if err := ChargeCommission(state, host, addr, owner, nftFee); err != ErrNotSupported {
		t.Fatalf("expected ErrNotSupported for NFT fee, got %v", err)
	}
}

func TestWithdrawCommission(t *testing.T) {
	state := newMemoryState()
	addr := common.HexToAddress("0x6060606060606060606060606060606060606060")
	pk, sign := generateOperator(t)
	if err := InitializeAdmin(state, addr, pk, nil); err != nil {
		t.Fatalf("InitializeAdmin: %v", err)
	}

	host := newMemoryTokenHost()
	host.native[addr] = big.NewInt(500)
	destination := common.HexToAddress("0x7070707070707070707070707070707070707070")

	withdrawal := Token{Kind: KindNative, Amount: 100}
	sig, rid := sign(codec.OpWithdrawToken, withdrawal, 0)
	if err := Withdraw(state, host, addr, destination, withdrawal, nil, sig, rid); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	if got := host.native[destination]; got.Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("destination balance = %s, want 100", got)
	}

	admin := LoadAdmin(state, addr)
	if admin.Nonces.Withdraw != 1 {
		t.Fatalf("withdraw nonce not advanced: %+v", admin.Nonces)
	}
}

// memoryTxContext lets a test stage a sequence of CallRecords, mimicking
// the atomic transaction VerifyDepositCharge inspects.
type memoryTxContext struct {
	calls   []contract.CallRecord
	current int
}

func (c *memoryTxContext) CallAt(index int) (contract.CallRecord, bool) {
	if index < 0 || index >= len(c.calls) {
		return contract.CallRecord{}, false
	}
	return c.calls[index], true
}

func (c *memoryTxContext) CurrentIndex() int { return c.current }

var _ contract.TxContext = (*memoryTxContext)(nil)

func TestVerifyDepositChargeErrorTaxonomy(t *testing.T) {
	commissionProgram := common.HexToAddress("0x9090909090909090909090909090909090909090")
	commissionAdminAddr := common.HexToAddress("0xA0A0A0A0A0A0A0A0A0A0A0A0A0A0A0A0A0A0A0A0")
	owner := common.HexToAddress("0xB0B0B0B0B0B0B0B0B0B0B0B0B0B0B0B0B0B0B0B0")
	wrongProgram := common.HexToAddress("0xC0C0C0C0C0C0C0C0C0C0C0C0C0C0C0C0C0C0C0C0")

	fee := Token{Kind: KindNative, Amount: 10}
	chargeData := EncodeChargeCommission(owner, fee, KindNative, 100)

	// Preceding call from the wrong program entirely.
	tx := &memoryTxContext{
		calls: []contract.CallRecord{
			{Program: wrongProgram, FirstAccount: commissionAdminAddr, Data: chargeData},
			{},
		},
		current: 1,
	}
	if err := VerifyDepositCharge(tx, commissionProgram, commissionAdminAddr, KindNative, 100); err != ErrWrongCommissionProgram {
		t.Fatalf("expected ErrWrongCommissionProgram, got %v", err)
	}

	// Right program, wrong admin account.
	tx = &memoryTxContext{
		calls: []contract.CallRecord{
			{Program: commissionProgram, FirstAccount: wrongProgram, Data: chargeData},
			{},
		},
		current: 1,
	}
	if err := VerifyDepositCharge(tx, commissionProgram, commissionAdminAddr, KindNative, 100); err != ErrWrongCommissionAccount {
		t.Fatalf("expected ErrWrongCommissionAccount, got %v", err)
	}

	// Right program and account, but the charged deposit amount diverges
	// from the current deposit's own amount.
	tx = &memoryTxContext{
		calls: []contract.CallRecord{
			{Program: commissionProgram, FirstAccount: commissionAdminAddr, Data: chargeData},
			{},
		},
		current: 1,
	}
	if err := VerifyDepositCharge(tx, commissionProgram, commissionAdminAddr, KindNative, 999); err != ErrWrongCommissionArguments {
		t.Fatalf("expected ErrWrongCommissionArguments, got %v", err)
	}

	// Matching program, account, kind, and amount succeeds.
	if err := VerifyDepositCharge(tx, commissionProgram, commissionAdminAddr, KindNative, 100); err != nil {
		t.Fatalf("VerifyDepositCharge: %v", err)
	}
}
