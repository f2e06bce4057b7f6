// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"fmt"

	"github.com/luxfi/geth/common"
	log "github.com/luxfi/log"

	"github.com/luxfi/bridgecore/commission"
	"github.com/luxfi/bridgecore/contract"
	"github.com/luxfi/bridgecore/modules"
	"github.com/luxfi/bridgecore/registry"
	"github.com/luxfi/bridgecore/tokenstate"
)

// logger reports instruction outcomes. Precompiles have no request-scoped
// context to thread a logger through, so it's package level like the
// teacher's client-level loggers.
var logger = log.NewTestLogger(log.InfoLevel)

var _ contract.StatefulPrecompiledContract = (*Contract)(nil)
var _ contract.Configurator = (*configurator)(nil)

// ConfigKey names this precompile in config files.
const ConfigKey = "bridgeAdminConfig"

// ContractAddress is where the bridge admin lives on the C-Chain. It also
// serves as the programID seeds are derived against: every BridgeAdmin PDA
// on this chain is DeriveAddress(ContractAddress, seeds).
var ContractAddress = common.HexToAddress(registry.BridgeAdminCChain)

// Precompile is the singleton Run/RequiredGas implementation.
var Precompile = &Contract{}

// Module is this precompile's registration record.
var Module = modules.Module{
	ConfigKey:    ConfigKey,
	Address:      ContractAddress,
	Contract:     Precompile,
	Configurator: &configurator{},
}

func init() {
	if err := modules.RegisterModule(Module); err != nil {
		panic(err)
	}
}

// Gas costs per instruction, calibrated by storage touches and whether the
// call recovers a signature.
const (
	GasInitializeAdmin   uint64 = 45_000
	GasTransferOwnership uint64 = 30_000
	GasDepositNative     uint64 = 35_000
	GasDepositFT         uint64 = 40_000
	GasDepositNFT        uint64 = 40_000
	GasWithdrawNative    uint64 = 40_000
	GasWithdrawFT        uint64 = 60_000
	GasWithdrawNFT       uint64 = 60_000
	GasMintCollection    uint64 = 45_000
)

type configurator struct{}

// Configure performs no state initialization; InitializeAdmin is an
// ordinary instruction call, not a genesis hook.
func (*configurator) Configure(state contract.StateDB) error {
	return nil
}

// Contract implements the bridge admin's instruction dispatch.
type Contract struct{}

func (c *Contract) Address() common.Address {
	return ContractAddress
}

func (c *Contract) RequiredGas(input []byte) uint64 {
	if len(input) == 0 {
		return GasDepositNative
	}
	switch input[0] {
	case TagInitializeAdmin:
		return GasInitializeAdmin
	case TagTransferOwnership:
		return GasTransferOwnership
	case TagDepositNative:
		return GasDepositNative
	case TagDepositFT:
		return GasDepositFT
	case TagDepositNFT:
		return GasDepositNFT
	case TagWithdrawNative:
		return GasWithdrawNative
	case TagWithdrawFT:
		return GasWithdrawFT
	case TagWithdrawNFT:
		return GasWithdrawNFT
	case TagMintCollection:
		return GasMintCollection
	default:
		return GasDepositNative
	}
}

func (c *Contract) Run(
	accessibleState contract.AccessibleState,
	caller common.Address,
	addr common.Address,
	input []byte,
	suppliedGas uint64,
	readOnly bool,
) (ret []byte, remainingGas uint64, err error) {
	if len(input) < 1 {
		return nil, suppliedGas, fmt.Errorf("bridge: empty input")
	}

	gas := c.RequiredGas(input)
	if suppliedGas < gas {
		return nil, 0, fmt.Errorf("bridge: out of gas")
	}
	remainingGas = suppliedGas - gas

	if readOnly {
		return nil, remainingGas, fmt.Errorf("bridge: cannot write in read-only mode")
	}

	state := accessibleState.GetStateDB()
	host := tokenstate.New(state)
	tag, data := input[0], input[1:]

	switch tag {
	case TagInitializeAdmin:
		seeds, publicKey, commissionProgram, decodeErr := decodeInitializeAdmin(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		adminAddr := DeriveAddress(addr, seeds)
		if err := InitializeAdmin(state, addr, adminAddr, seeds, publicKey, commissionProgram); err != nil {
			return nil, remainingGas, err
		}

	case TagTransferOwnership:
		adminAddr, newPublicKey, signature, recoveryID, decodeErr := decodeTransferOwnership(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := TransferOwnership(state, adminAddr, newPublicKey, signature, recoveryID); err != nil {
			return nil, remainingGas, err
		}

	case TagDepositNative:
		adminAddr, amount, receiverAddress, networkTo, decodeErr := decodeDepositNative(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := DepositNative(accessibleState, host, adminAddr, commission.ContractAddress, caller, amount, receiverAddress, networkTo); err != nil {
			logger.Error("deposit native failed", "caller", caller, "err", err)
			return nil, remainingGas, err
		}
		logger.Info("native deposit recorded", "caller", caller, "amount", amount, "networkTo", networkTo)

	case TagDepositFT:
		adminAddr, mint, amount, receiverAddress, networkTo, decodeErr := decodeDepositFT(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := DepositFT(accessibleState, host, adminAddr, commission.ContractAddress, caller, mint, amount, receiverAddress, networkTo); err != nil {
			return nil, remainingGas, err
		}

	case TagDepositNFT:
		adminAddr, tokenMint, receiverAddress, networkTo, decodeErr := decodeDepositNFT(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := DepositNFT(accessibleState, host, adminAddr, commission.ContractAddress, caller, tokenMint, receiverAddress, networkTo); err != nil {
			return nil, remainingGas, err
		}

	case TagWithdrawNative:
		adminAddr, origin, receiver, amount, path, signature, recoveryID, decodeErr := decodeWithdrawNative(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := WithdrawNative(accessibleState, host, addr, adminAddr, origin, receiver, amount, path, signature, recoveryID); err != nil {
			logger.Error("withdraw native failed", "receiver", receiver, "err", err)
			return nil, remainingGas, err
		}
		logger.Info("native withdrawal settled", "receiver", receiver, "amount", amount)

	case TagWithdrawFT:
		adminAddr, origin, receiver, mint, amount, name, symbol, uri, decimals, path, signature, recoveryID, decodeErr := decodeWithdrawFT(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := WithdrawFT(accessibleState, host, addr, adminAddr, origin, receiver, mint, amount, name, symbol, uri, decimals, path, signature, recoveryID); err != nil {
			return nil, remainingGas, err
		}

	case TagWithdrawNFT:
		adminAddr, origin, receiver, collection, tokenMint, name, symbol, uri, path, signature, recoveryID, decodeErr := decodeWithdrawNFT(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := WithdrawNFT(accessibleState, host, addr, adminAddr, origin, receiver, collection, tokenMint, name, symbol, uri, path, signature, recoveryID); err != nil {
			return nil, remainingGas, err
		}

	case TagMintCollection:
		adminAddr, tokenSeed, meta, decodeErr := decodeMintCollection(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if _, err := MintCollection(host, adminAddr, tokenSeed, meta); err != nil {
			return nil, remainingGas, err
		}

	default:
		return nil, remainingGas, fmt.Errorf("bridge: unknown instruction tag %d", tag)
	}

	result := make([]byte, 32)
	result[31] = 1
	return result, remainingGas, nil
}
