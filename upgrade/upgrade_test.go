// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/crypto"

	"github.com/luxfi/bridgecore/codec"
	"github.com/luxfi/bridgecore/contract"
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

func generateOperator(t *testing.T) ([33]byte, func(digest [32]byte) ([64]byte, byte)) {
	t.Helper()
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	var pk [33]byte
	copy(pk[:], crypto.CompressPubkey(&priv.PublicKey))

	sign := func(digest [32]byte) ([64]byte, byte) {
		sigBytes, err := crypto.Sign(digest[:], priv)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		var out [64]byte
		copy(out[:], sigBytes[:64])
		return out, sigBytes[64]
	}
	return pk, sign
}

func TestInitializeAndTransferOwnership(t *testing.T) {
	state := newMemoryState()
	programID := common.HexToAddress("0x1212121212121212121212121212121212121212")
	managed := common.HexToAddress("0x3434343434343434343434343434343434343434")
	pk, sign := generateOperator(t)

	var seeds [32]byte
	copy(seeds[:], []byte("upgrade-admin-seed"))
	adminAddr := DeriveAddress(programID, seeds)

	if err := InitializeAdmin(state, programID, adminAddr, seeds, pk, managed); err != nil {
		t.Fatalf("InitializeAdmin: %v", err)
	}
	if err := InitializeAdmin(state, programID, adminAddr, seeds, pk, managed); err != ErrAlreadyInUse {
		t.Fatalf("expected ErrAlreadyInUse, got %v", err)
	}

	admin := loadAdmin(state, adminAddr)
	if admin.Contract != managed || admin.PublicKey != pk {
		t.Fatalf("admin not stored correctly: %+v", admin)
	}

	newPK, _ := generateOperator(t)
	digest := ownershipDigest(newPK)
	sig, recoveryID := sign(digest)
	if err := TransferOwnership(state, adminAddr, newPK, sig, recoveryID); err != nil {
		t.Fatalf("TransferOwnership: %v", err)
	}

	admin = loadAdmin(state, adminAddr)
	if admin.PublicKey != newPK {
		t.Fatalf("public key not rotated")
	}
}

func TestUpgradeAdvancesNonceAndRecordsVersion(t *testing.T) {
	state := newMemoryState()
	programID := common.HexToAddress("0x5656565656565656565656565656565656565656")
	managed := common.HexToAddress("0x7878787878787878787878787878787878787878")

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	var pk [33]byte
	copy(pk[:], crypto.CompressPubkey(&priv.PublicKey))

	var seeds [32]byte
	copy(seeds[:], []byte("upgrade-admin-seed-2"))
	adminAddr := DeriveAddress(programID, seeds)
	if err := InitializeAdmin(state, programID, adminAddr, seeds, pk, managed); err != nil {
		t.Fatalf("InitializeAdmin: %v", err)
	}

	bufferContents := []byte("new precompile release bytes")
	sign := func(nonce uint64) ([64]byte, byte) {
		message := codec.UpgradeMessage(bufferContents, [32]byte(common.BytesToHash(programID.Bytes())), nonce)
		sigBytes, err := crypto.Sign(message[:], priv)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		var out [64]byte
		copy(out[:], sigBytes[:64])
		return out, sigBytes[64]
	}

	sig, recoveryID := sign(0)
	if err := Upgrade(state, programID, adminAddr, bufferContents, sig, recoveryID); err != nil {
		t.Fatalf("Upgrade: %v", err)
	}

	admin := loadAdmin(state, adminAddr)
	if admin.Nonce != 1 {
		t.Fatalf("nonce not advanced: %d", admin.Nonce)
	}

	want := common.BytesToHash(luxKeccak256(bufferContents))
	if got := ActiveVersion(state, adminAddr); got != want {
		t.Fatalf("active version = %x, want %x", got, want)
	}

	// Replaying the same signature after the nonce has advanced fails:
	// the digest now binds to a stale nonce.
	if err := Upgrade(state, programID, adminAddr, bufferContents, sig, recoveryID); err == nil {
		t.Fatalf("expected replayed signature to fail after nonce advanced")
	}
}
