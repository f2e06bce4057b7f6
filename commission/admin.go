// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commission

import (
	"encoding/binary"
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/contract"
)

// MaxTokens is the acceptable-token list length ceiling from spec §3.
const MaxTokens = 10

var (
	slotCount             = common.Hash{0x00}
	slotNonces            = common.Hash{0x01}
	slotInit              = common.Hash{0x02}
	slotPublicKeyLow      = common.Hash{0x03}
	slotPublicKeyHigh = common.Hash{0x04}
)

const tokenSlotBase = 5

// Nonces are the four monotonically non-decreasing operation counters from
// spec §3, one per mutating operation.
type Nonces struct {
	Add      uint64
	Remove   uint64
	Update   uint64
	Withdraw uint64
}

// Admin mirrors the CommissionAdmin entity of spec §3.
type Admin struct {
	PublicKey        [33]byte
	AcceptableTokens []Token
	Nonces           Nonces
	IsInitialized    bool
}

// DeriveAddress computes the PDA of the commission admin for the bridge
// admin it serves: keccak256(programID || keccak256("commission_admin" ||
// bridgeAdmin)), truncated to 20 bytes.
func DeriveAddress(programID common.Address, bridgeAdmin common.Address) common.Address {
	seed := make([]byte, 0, 16+20)
	seed = append(seed, []byte("commission_admin")...)
	seed = append(seed, bridgeAdmin.Bytes()...)
	var seed32 [32]byte
	copy(seed32[:], luxKeccak256(seed))
	return deriveFromSeeds(programID, seed32)
}

func tokenSlot(index int) (kindMint, amount common.Hash) {
	base := tokenSlotBase + index*2
	return common.BigToHash(big.NewInt(int64(base))), common.BigToHash(big.NewInt(int64(base + 1)))
}

// LoadAdmin reads the CommissionAdmin stored at addr.
func LoadAdmin(state contract.StateDB, addr common.Address) Admin {
	initWord := state.GetState(addr, slotInit)
	a := Admin{IsInitialized: initWord[31] != 0}
	if !a.IsInitialized {
		return a
	}

	countWord := state.GetState(addr, slotCount)
	count := int(binary.BigEndian.Uint64(countWord[24:]))

	noncesWord := state.GetState(addr, slotNonces)
	a.Nonces = Nonces{
		Add:      binary.BigEndian.Uint64(noncesWord[0:8]),
		Remove:   binary.BigEndian.Uint64(noncesWord[8:16]),
		Update:   binary.BigEndian.Uint64(noncesWord[16:24]),
		Withdraw: binary.BigEndian.Uint64(noncesWord[24:32]),
	}

	pkLow := state.GetState(addr, slotPublicKeyLow)
	pkHigh := state.GetState(addr, slotPublicKeyHigh)
	copy(a.PublicKey[:32], pkLow[:])
	a.PublicKey[32] = pkHigh[30]

	for i := 0; i < count; i++ {
		kindMintSlot, amountSlot := tokenSlot(i)
		kindMint := state.GetState(addr, kindMintSlot)
		amount := state.GetState(addr, amountSlot)
		tok := Token{
			Kind:   TokenKind(kindMint[0]),
			Mint:   common.BytesToAddress(kindMint[12:]),
			Amount: binary.BigEndian.Uint64(amount[24:]),
		}
		a.AcceptableTokens = append(a.AcceptableTokens, tok)
	}
	return a
}

// StoreAdmin writes the full CommissionAdmin back to addr.
func StoreAdmin(state contract.StateDB, addr common.Address, a Admin) {
	var initWord common.Hash
	if a.IsInitialized {
		initWord[31] = 1
	}
	state.SetState(addr, slotInit, initWord)

	var countWord common.Hash
	binary.BigEndian.PutUint64(countWord[24:], uint64(len(a.AcceptableTokens)))
	state.SetState(addr, slotCount, countWord)

	var noncesWord common.Hash
	binary.BigEndian.PutUint64(noncesWord[0:8], a.Nonces.Add)
	binary.BigEndian.PutUint64(noncesWord[8:16], a.Nonces.Remove)
	binary.BigEndian.PutUint64(noncesWord[16:24], a.Nonces.Update)
	binary.BigEndian.PutUint64(noncesWord[24:32], a.Nonces.Withdraw)
	state.SetState(addr, slotNonces, noncesWord)

	var pkLow, pkHigh common.Hash
	copy(pkLow[:], a.PublicKey[:32])
	pkHigh[30] = a.PublicKey[32]
	state.SetState(addr, slotPublicKeyLow, pkLow)
	state.SetState(addr, slotPublicKeyHigh, pkHigh)

	for i, tok := range a.AcceptableTokens {
		kindMintSlot, amountSlot := tokenSlot(i)
		var kindMint, amount common.Hash
		kindMint[0] = byte(tok.Kind)
		copy(kindMint[12:], tok.Mint.Bytes())
		binary.BigEndian.PutUint64(amount[24:], tok.Amount)
		state.SetState(addr, kindMintSlot, kindMint)
		state.SetState(addr, amountSlot, amount)
	}
}

// InitializeAdmin allocates the CommissionAdmin PDA with the initial
// acceptable-token list. Fails with ErrAlreadyInUse if addr is already
// initialized, and with ErrTooManyTokens if the initial list already
// exceeds MaxTokens.
func InitializeAdmin(state contract.StateDB, addr common.Address, publicKey [33]byte, acceptableTokens []Token) error {
	existing := LoadAdmin(state, addr)
	if existing.IsInitialized {
		return ErrAlreadyInUse
	}
	if len(acceptableTokens) > MaxTokens {
		return ErrTooManyTokens
	}

	state.CreateAccount(addr)
	StoreAdmin(state, addr, Admin{
		PublicKey:        publicKey,
		AcceptableTokens: acceptableTokens,
		IsInitialized:    true,
	})
	return nil
}
