// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import (
	"fmt"

	"github.com/luxfi/geth/common"
	log "github.com/luxfi/log"

	"github.com/luxfi/bridgecore/contract"
	"github.com/luxfi/bridgecore/modules"
	"github.com/luxfi/bridgecore/registry"
)

// logger reports instruction outcomes. Precompiles have no request-scoped
// context to thread a logger through, so it's package level like the
// teacher's client-level loggers.
var logger = log.NewTestLogger(log.InfoLevel)

var _ contract.StatefulPrecompiledContract = (*Contract)(nil)
var _ contract.Configurator = (*configurator)(nil)

// ConfigKey names this precompile in config files.
const ConfigKey = "upgradeAdminConfig"

// ContractAddress is where the upgrade authority lives on the C-Chain.
var ContractAddress = common.HexToAddress(registry.UpgradeAdminCChain)

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

// Gas costs per instruction.
const (
	GasInitializeAdmin   uint64 = 40_000
	GasTransferOwnership uint64 = 30_000
	GasUpgrade           uint64 = 35_000
)

type configurator struct{}

func (*configurator) Configure(state contract.StateDB) error {
	return nil
}

// Contract implements the upgrade authority's instruction dispatch.
type Contract struct{}

func (c *Contract) Address() common.Address {
	return ContractAddress
}

func (c *Contract) RequiredGas(input []byte) uint64 {
	if len(input) == 0 {
		return GasUpgrade
	}
	switch input[0] {
	case TagInitializeAdmin:
		return GasInitializeAdmin
	case TagTransferOwnership:
		return GasTransferOwnership
	case TagUpgrade:
		return GasUpgrade
	default:
		return GasUpgrade
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
		return nil, suppliedGas, fmt.Errorf("upgrade: empty input")
	}

	gas := c.RequiredGas(input)
	if suppliedGas < gas {
		return nil, 0, fmt.Errorf("upgrade: out of gas")
	}
	remainingGas = suppliedGas - gas

	if readOnly {
		return nil, remainingGas, fmt.Errorf("upgrade: cannot write in read-only mode")
	}

	state := accessibleState.GetStateDB()
	tag, data := input[0], input[1:]

	switch tag {
	case TagInitializeAdmin:
		seeds, publicKey, managedContract, decodeErr := decodeInitializeAdmin(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		adminAddr := DeriveAddress(addr, seeds)
		if err := InitializeAdmin(state, addr, adminAddr, seeds, publicKey, managedContract); err != nil {
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

	case TagUpgrade:
		adminAddr, bufferContents, signature, recoveryID, decodeErr := decodeUpgrade(data)
		if decodeErr != nil {
			return nil, remainingGas, decodeErr
		}
		if err := Upgrade(state, addr, adminAddr, bufferContents, signature, recoveryID); err != nil {
			logger.Error("code upgrade rejected", "adminAddr", adminAddr, "err", err)
			return nil, remainingGas, err
		}
		logger.Info("active version recorded", "adminAddr", adminAddr, "managedContract", loadAdmin(state, adminAddr).Contract)

	default:
		return nil, remainingGas, fmt.Errorf("upgrade: unknown instruction tag %d", tag)
	}

	result := make([]byte, 32)
	result[31] = 1
	return result, remainingGas, nil
}
