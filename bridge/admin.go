// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bridge implements the on-chain core of the cross-chain token
// bridge: the BridgeAdmin lifecycle, deposit/withdraw for native, fungible,
// and non-fungible assets, withdrawal-receipt replay guards, and
// bridge-minted mirror tokens.
package bridge

import (
	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/contract"
	"github.com/luxfi/bridgecore/sig"
)

// Storage slots for the BridgeAdmin account. Admin state lives at the
// admin's own derived address, not at the precompile's dispatch address.
var (
	slotPublicKeyLow      = common.Hash{0x00}
	slotPublicKeyHighInit = common.Hash{0x01}
	slotCommissionProgram = common.Hash{0x02}
)

// Admin mirrors the BridgeAdmin entity of spec §3: the 33-byte compressed
// operator public key, the partner commission engine's program identity,
// and whether the account has been initialized.
type Admin struct {
	PublicKey         [33]byte
	CommissionProgram common.Address
	IsInitialized     bool
}

// DeriveAddress computes the program-derived address for seeds under
// programID: keccak256(programID || seeds), truncated to the low 20 bytes.
// This is the CREATE2-style generalization of a Solana PDA used throughout
// this module: the address is a deterministic function of seeds and
// program identity, and only code holding programID's authority may write
// to it.
func DeriveAddress(programID common.Address, seeds [32]byte) common.Address {
	buf := make([]byte, 0, len(programID)+len(seeds))
	buf = append(buf, programID.Bytes()...)
	buf = append(buf, seeds[:]...)
	return common.BytesToAddress(luxKeccak256(buf))
}

// loadAdmin reads an Admin from its derived storage address. It never
// errors: an account that has never been written reads back as the zero
// value, which has IsInitialized == false.
func loadAdmin(state contract.StateDB, addr common.Address) Admin {
	low := state.GetState(addr, slotPublicKeyLow)
	highInit := state.GetState(addr, slotPublicKeyHighInit)
	commissionWord := state.GetState(addr, slotCommissionProgram)

	var a Admin
	copy(a.PublicKey[:32], low[:])
	a.PublicKey[32] = highInit[0]
	a.IsInitialized = highInit[31] != 0
	a.CommissionProgram = common.BytesToAddress(commissionWord[:])
	return a
}

func storeAdmin(state contract.StateDB, addr common.Address, a Admin) {
	var low, highInit, commissionWord common.Hash
	copy(low[:], a.PublicKey[:32])
	highInit[0] = a.PublicKey[32]
	if a.IsInitialized {
		highInit[31] = 1
	}
	copy(commissionWord[12:], a.CommissionProgram.Bytes())

	state.SetState(addr, slotPublicKeyLow, low)
	state.SetState(addr, slotPublicKeyHighInit, highInit)
	state.SetState(addr, slotCommissionProgram, commissionWord)
}

// InitializeAdmin allocates the BridgeAdmin PDA and records its public key
// and commission-engine program identity. adminAddr is the address the
// caller claims is the BridgeAdmin; it must equal DeriveAddress(programID,
// seeds) or the call fails with ErrWrongSeeds. Re-initializing an account
// that is already initialized fails with ErrAlreadyInUse.
func InitializeAdmin(
	state contract.StateDB,
	programID common.Address,
	adminAddr common.Address,
	seeds [32]byte,
	publicKey [33]byte,
	commissionProgram common.Address,
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
		PublicKey:         publicKey,
		CommissionProgram: commissionProgram,
		IsInitialized:     true,
	})
	return nil
}

// TransferOwnership rotates the BridgeAdmin's public key. The operator
// authorizes the rotation by signing newPublicKey with the current key;
// recovery failure yields sig.ErrInvalidSignature and a mismatched signer
// yields sig.ErrWrongSignature.
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
