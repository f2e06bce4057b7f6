// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package upgrade implements the upgrade-authority precompile: the single
// operator key that authorizes installing new code for a managed
// precompile and records which code hash is currently active.
package upgrade

import (
	"encoding/binary"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/codec"
	"github.com/luxfi/bridgecore/contract"
	"github.com/luxfi/bridgecore/sig"
)

var (
	slotPublicKeyLow      = common.Hash{0x00}
	slotPublicKeyHighInit = common.Hash{0x01}
	slotContract          = common.Hash{0x02}
	slotNonce             = common.Hash{0x03}
	slotActiveVersion     = common.Hash{0x04}
)

// Admin mirrors the UpgradeAdmin entity: the operator public key
// authorized to install new code, the precompile address it governs, and
// the monotonic nonce every Upgrade call must advance.
type Admin struct {
	PublicKey     [33]byte
	Contract      common.Address
	Nonce         uint64
	IsInitialized bool
}

// DeriveAddress computes the program-derived address for seeds under
// programID, the same CREATE2-style construction the bridge and
// commission admins use.
func DeriveAddress(programID common.Address, seeds [32]byte) common.Address {
	return deriveFromSeeds(programID, seeds)
}

func loadAdmin(state contract.StateDB, addr common.Address) Admin {
	low := state.GetState(addr, slotPublicKeyLow)
	highInit := state.GetState(addr, slotPublicKeyHighInit)
	contractWord := state.GetState(addr, slotContract)
	nonceWord := state.GetState(addr, slotNonce)

	var a Admin
	copy(a.PublicKey[:32], low[:])
	a.PublicKey[32] = highInit[0]
	a.IsInitialized = highInit[31] != 0
	a.Contract = common.BytesToAddress(contractWord[:])
	a.Nonce = binary.BigEndian.Uint64(nonceWord[24:])
	return a
}

func storeAdmin(state contract.StateDB, addr common.Address, a Admin) {
	var low, highInit, contractWord, nonceWord common.Hash
	copy(low[:], a.PublicKey[:32])
	highInit[0] = a.PublicKey[32]
	if a.IsInitialized {
		highInit[31] = 1
	}
	copy(contractWord[12:], a.Contract.Bytes())
	binary.BigEndian.PutUint64(nonceWord[24:], a.Nonce)

	state.SetState(addr, slotPublicKeyLow, low)
	state.SetState(addr, slotPublicKeyHighInit, highInit)
	state.SetState(addr, slotContract, contractWord)
	state.SetState(addr, slotNonce, nonceWord)
}

// ActiveVersion returns the keccak256 hash of the code buffer most
// recently approved for addr's managed contract, or the zero hash if no
// Upgrade has ever succeeded.
func ActiveVersion(state contract.StateDB, addr common.Address) common.Hash {
	return state.GetState(addr, slotActiveVersion)
}

// InitializeAdmin allocates the UpgradeAdmin PDA. adminAddr must equal
// DeriveAddress(programID, seeds) or the call fails with ErrWrongSeeds.
func InitializeAdmin(
	state contract.StateDB,
	programID common.Address,
	adminAddr common.Address,
	seeds [32]byte,
	publicKey [33]byte,
	managedContract common.Address,
) error {
	if DeriveAddress(programID, seeds) != adminAddr {
		return ErrWrongSeeds
	}

	existing := loadAdmin(state, adminAddr)
	if existing.IsInitialized {
		return ErrAlreadyInUse
	}

	state.CreateAccount(adminAddr)
	storeAdmin(state, adminAddr, Admin{
		PublicKey:     publicKey,
		Contract:      managedContract,
		IsInitialized: true,
	})
	return nil
}

// TransferOwnership rotates the UpgradeAdmin's public key, authorized by
// the operator signing newPublicKey with the current key.
func TransferOwnership(
	state contract.StateDB,
	adminAddr common.Address,
	newPublicKey [33]byte,
	signature [64]byte,
	recoveryID byte,
) error {
	admin := loadAdmin(state, adminAddr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}

	message := ownershipDigest(newPublicKey)
	if err := sig.Verify(message, signature, recoveryID, admin.PublicKey); err != nil {
		return err
	}

	admin.PublicKey = newPublicKey
	storeAdmin(state, adminAddr, admin)
	return nil
}

// Upgrade authorizes installing bufferContents as the new code for the
// admin's managed contract. The operator signs UpgradeMessage(
// bufferContents, programID, Nonce); a successful call records
// keccak256(bufferContents) as the active version and advances Nonce,
// so a captured signature cannot be replayed.
func Upgrade(
	state contract.StateDB,
	programID, adminAddr common.Address,
	bufferContents []byte,
	signature [64]byte,
	recoveryID byte,
) error {
	admin := loadAdmin(state, adminAddr)
	if !admin.IsInitialized {
		return ErrNotInitialized
	}

	message := codec.UpgradeMessage(bufferContents, [32]byte(common.BytesToHash(programID.Bytes())), admin.Nonce)
	if err := sig.Verify(message, signature, recoveryID, admin.PublicKey); err != nil {
		return err
	}

	state.SetState(adminAddr, slotActiveVersion, common.BytesToHash(luxKeccak256(bufferContents)))
	admin.Nonce++
	storeAdmin(state, adminAddr, admin)
	return nil
}
