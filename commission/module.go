// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commission

import (
	"fmt"

	"github.com/luxfi/geth/common"
	log "github.com/luxfi/log"

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
const ConfigKey = "commissionAdminConfig"

// ContractAddress is where the commission engine lives on the C-Chain.
var ContractAddress = common.HexToAddress(registry.CommissionAdminCChain)

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

// Gas costs per instruction, calibrated by storage touches: a handful of
// SLOAD/SSTORE each, plus a signature recovery for the operator-signed
// mutations and Withdraw.
const (
	GasInitializeAdmin  uint64 = 40_000
	GasChargeCommission uint64 = 30_000
	GasAddFeeToken      uint64 = 35_000
	GasRemoveFeeToken   uint64 = 35_000
	GasUpdateFeeToken   uint64 = 35_000
	GasWithdraw         uint64 = 30_000
)

type configurator struct{}

// Configure performs no state initialization; InitializeAdmin is an
// ordinary instruction call, not a genesis hook.
func (*configurator) Configure(state contract.StateDB) error {
	return nil
}

// Contract implements the commission engine's instruction dispatch.
type Contract struct{}

func (c *Contract) Address() common.Address {
	return ContractAddress
}

func (c *Contract) RequiredGas(input []byte) uint64 {
	if len(input) == 0 {
		return GasChargeCommission
	}
	switch input[0] {
	case TagInitializeAdmin:
		return GasInitializeAdmin
	case TagChargeCommission:
		return GasChargeCommission
	case TagAddFeeToken:
		return GasAddFeeToken
	case TagRemoveFeeToken:
		return GasRemoveFeeToken
	case TagUpdateFeeToken:
		return GasUpdateFeeToken
	case TagWithdraw:
		return GasWithdraw
	default:
		return GasChargeCommission
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
		return nil, suppliedGas, fmt.Errorf("commission: empty input")
	}

	gas := c.RequiredGas(input)
	if suppliedGas < gas {
		return nil, 0, fmt.Errorf("commission: out of gas")
	}
	remainingGas = suppliedGas - gas

	state := accessibleState.GetStateDB()
	host := tokenstate.New(state)
	tag, data := input[0], input[1:]

	if readOnly && tag != TagChargeCommission {
		if tag == TagInitializeAdmin || tag == TagAddFeeToken || tag == TagRemoveFeeToken || tag == TagUpdateFeeToken || tag == TagWithdraw {
			return nil, remainingGas, fmt.Errorf("commission: cannot write in read-only mode")
		}
	}

	switch tag {
	case TagInitializeAdmin:
		publicKey, acceptableTokens, decodeErr := decodeInitializeAdmin(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := InitializeAdmin(state, addr, publicKey, acceptableTokens); err != nil {
			logger.Error("commission initialize admin failed", "addr", addr, "err", err)
			return nil, remainingGas, err
		}
		logger.Info("commission admin initialized", "addr", addr, "tokens", len(acceptableTokens))
	case TagChargeCommission:
		// depositKind/depositAmount stay in this call's data for the deposit
		// instruction that follows to cross-check; they are not consulted here.
		owner, token, _, _, decodeErr := DecodeChargeCommission(input)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := ChargeCommission(state, host, addr, owner, token); err != nil {
			logger.Error("charge commission failed", "owner", owner, "err", err)
			return nil, remainingGas, err
		}
	case TagAddFeeToken:
		token, path, signature, recoveryID, decodeErr := decodeFeeTokenMutation(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := AddFeeToken(state, addr, token, path, signature, recoveryID); err != nil {
			logger.Error("add fee token failed", "err", err)
			return nil, remainingGas, err
		}
	case TagRemoveFeeToken:
		token, path, signature, recoveryID, decodeErr := decodeFeeTokenMutation(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := RemoveFeeToken(state, addr, token, path, signature, recoveryID); err != nil {
			logger.Error("remove fee token failed", "err", err)
			return nil, remainingGas, err
		}
	case TagUpdateFeeToken:
		token, path, signature, recoveryID, decodeErr := decodeFeeTokenMutation(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := UpdateFeeToken(state, addr, token, path, signature, recoveryID); err != nil {
			logger.Error("update fee token failed", "err", err)
			return nil, remainingGas, err
		}
	case TagWithdraw:
		destination, token, path, signature, recoveryID, decodeErr := decodeWithdraw(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := Withdraw(state, host, addr, destination, token, path, signature, recoveryID); err != nil {
			logger.Error("commission withdraw failed", "destination", destination, "err", err)
			return nil, remainingGas, err
		}
	default:
		return nil, remainingGas, fmt.Errorf("commission: unknown instruction tag %d", tag)
	}

	result := make([]byte, 32)
	result[31] = 1
	return result, remainingGas, nil
}
