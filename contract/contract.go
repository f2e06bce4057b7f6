// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract defines the narrow interface the bridge and commission
// precompiles use to reach into host-chain state. It deliberately mirrors
// the StatefulPrecompiledContract shape used across this module's other
// precompiles so the bridge slots into the same registration and dispatch
// machinery as every other address in registry.
package contract

import (
	"math/big"

	"github.com/luxfi/geth/common"
)

// StateDB is the subset of host account/storage state a precompile may
// read and mutate. Keys and values are 32-byte storage slots scoped to the
// address passed with them (an admin's or receipt's derived address, not
// only the precompile's dispatch address), like EVM SLOAD/SSTORE.
type StateDB interface {
	GetState(addr common.Address, key common.Hash) common.Hash
	SetState(addr common.Address, key common.Hash, value common.Hash)

	GetBalance(addr common.Address) *big.Int
	AddBalance(addr common.Address, amount *big.Int)
	SubBalance(addr common.Address, amount *big.Int)

	// Exists reports whether addr has been touched (created) in this state.
	// The bridge uses this to implement allocate-if-absent semantics for
	// withdraw receipts: Exists(receiptAddr) == false is the replay check.
	Exists(addr common.Address) bool
	CreateAccount(addr common.Address)
}

// CallRecord describes one instruction within the enclosing atomic
// transaction, in the order the host scheduled it. It is the generalized
// analogue of Solana's instructions sysvar: enough to let a precompile
// inspect its siblings within the same transaction.
type CallRecord struct {
	Program      common.Address
	FirstAccount common.Address
	Data         []byte
}

// TxContext exposes the ordered list of calls that make up the current
// atomic transaction, so a precompile can enforce cross-instruction
// invariants such as "the call before me must be a matching fee charge".
type TxContext interface {
	// CallAt returns the call at the given index within the transaction,
	// or ok=false if the index is out of range.
	CallAt(index int) (CallRecord, bool)
	// CurrentIndex is the index of the call presently executing.
	CurrentIndex() int
}

// BlockContext exposes block-level values a precompile may need.
type BlockContext interface {
	BlockNumber() *big.Int
	Timestamp() uint64
}

// AccessibleState is everything a Run implementation receives about its
// execution environment.
type AccessibleState interface {
	GetStateDB() StateDB
	GetTxContext() TxContext
	GetBlockContext() BlockContext
}

// StatefulPrecompiledContract is the common shape of every precompile in
// this module: it prices its own input and executes against host state.
type StatefulPrecompiledContract interface {
	Address() common.Address
	RequiredGas(input []byte) uint64
	Run(
		accessibleState AccessibleState,
		caller common.Address,
		addr common.Address,
		input []byte,
		suppliedGas uint64,
		readOnly bool,
	) (ret []byte, remainingGas uint64, err error)
}

// Configurator performs one-time state initialization for a module when it
// activates, analogous to InitializeAdmin being invoked by a deploy script.
type Configurator interface {
	Configure(state StateDB) error
}
