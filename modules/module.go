// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modules

import (
	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/contract"
)

// Module is the registration record for one stateful precompile: the
// address it lives at, the contract that answers calls to that address,
// and the configurator that prepares state the first time the module
// activates.
type Module struct {
	ConfigKey    string
	Address      common.Address
	Contract     contract.StatefulPrecompiledContract
	Configurator contract.Configurator
}

// moduleArray implements sort.Interface so RegisterModule can keep
// registeredModules ordered by address for deterministic iteration.
type moduleArray []Module

func (u moduleArray) Len() int {
	return len(u)
}

func (u moduleArray) Less(i, j int) bool {
	return common.BytesToHash(u[i].Address[:]).Big().Cmp(common.BytesToHash(u[j].Address[:]).Big()) < 0
}

func (u moduleArray) Swap(i, j int) {
	u[i], u[j] = u[j], u[i]
}
