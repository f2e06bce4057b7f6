// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"fmt"

	"github.com/luxfi/geth/common"
)

// ============================================================================
// PRECOMPILE ADDRESS SCHEME - Aligned with LP Numbering (LP-0099)
// ============================================================================
//
// All Lux-native precompiles use trailing-significant 20-byte addresses:
//   Format: 0x0000000000000000000000000000000000PCII
//
// The address ends with the 16-bit LP number (PCII) for easy identification.
// The selector encodes:
//   0x 0000...0000 P C II
//                  │ │ └┴─ Item/function (8 bits)
//                  │ └──── Chain slot    (4 bits)
//                  └────── Family page   (4 bits, aligned with LP-Pxxx)
//
// This module only occupies the bridge family page (P=6, LP-6xxx): the
// deposit/withdraw bridge admin, the commission engine, and the upgrade
// admin each get their own item slot on the C-Chain.

const (
	// =========================================================================
	// PAGE 6: BRIDGES (0x6CII) → LP-6xxx
	// =========================================================================

	// BridgeAdminCChain is the BridgeAdmin precompile: deposit/withdraw/mint
	// state machine (LP-6100).
	BridgeAdminCChain = "0x0000000000000000000000000000000000006100"

	// CommissionAdminCChain is the commission/fee engine precompile that the
	// bridge admin cross-checks every deposit against (LP-6101).
	CommissionAdminCChain = "0x0000000000000000000000000000000000006101"

	// UpgradeAdminCChain is the upgrade-authority precompile guarding
	// program-upgrade messages with a double-keccak digest (LP-6102).
	UpgradeAdminCChain = "0x0000000000000000000000000000000000006102"
)

// PrecompileAddress calculates address from (P, C, II) nibbles
// P = Family page (aligned with LP-Pxxx), C = Chain slot, II = Item
// Returns trailing-significant format: 0x0000000000000000000000000000000000PCII
func PrecompileAddress(p, c, ii uint8) common.Address {
	if p > 15 || c > 15 {
		return common.Address{}
	}
	selector := fmt.Sprintf("%x%x%02x", p, c, ii)
	addr := "0000000000000000000000000000000000" + selector
	return common.HexToAddress("0x" + addr)
}

// ChainSlot returns the C-nibble for a chain name.
func ChainSlot(chain string) uint8 {
	switch chain {
	case "C", "c":
		return 2
	case "B", "b":
		return 5
	default:
		return 0xFF
	}
}

// FamilyPage returns the P-nibble for a family name (aligned with LP-Pxxx).
func FamilyPage(family string) uint8 {
	switch family {
	case "Bridge", "bridge":
		return 6 // LP-6xxx
	default:
		return 0xFF
	}
}

// PrecompileInfo contains metadata about a precompile.
type PrecompileInfo struct {
	Address     string
	Name        string
	Description string
	GasBase     uint64
	Chains      []string
	LPRange     string
}

// AllPrecompiles lists the precompiles this module registers.
var AllPrecompiles = []PrecompileInfo{
	{BridgeAdminCChain, "BRIDGE_ADMIN", "Cross-chain deposit/withdraw/mirror-mint state machine", 75000, []string{"C"}, "LP-6xxx"},
	{CommissionAdminCChain, "COMMISSION_ADMIN", "Per-deposit fee-token accounting and withdrawal", 50000, []string{"C"}, "LP-6xxx"},
	{UpgradeAdminCChain, "UPGRADE_ADMIN", "Program-upgrade authorization", 30000, []string{"C"}, "LP-6xxx"},
}

// ChainPrecompiles defines which precompiles are enabled for each chain.
var ChainPrecompiles = map[string][]string{
	"C": {BridgeAdminCChain, CommissionAdminCChain, UpgradeAdminCChain},
}

// GetPrecompileAddress returns the address for a precompile by name.
func GetPrecompileAddress(name string) common.Address {
	for _, p := range AllPrecompiles {
		if p.Name == name {
			return common.HexToAddress(p.Address)
		}
	}
	return common.Address{}
}

// GetChainPrecompiles returns all precompile addresses for a chain.
func GetChainPrecompiles(chainLetter string) []common.Address {
	addrs, ok := ChainPrecompiles[chainLetter]
	if !ok {
		return nil
	}

	result := make([]common.Address, len(addrs))
	for i, addr := range addrs {
		result[i] = common.HexToAddress(addr)
	}
	return result
}

// IsPrecompileEnabled checks if a precompile is enabled for a chain.
func IsPrecompileEnabled(chainLetter string, precompileAddr common.Address) bool {
	addrs := ChainPrecompiles[chainLetter]

	for _, addr := range addrs {
		if common.HexToAddress(addr) == precompileAddr {
			return true
		}
	}
	return false
}

// GetPrecompilesByFamily returns all precompiles for a family page.
func GetPrecompilesByFamily(family string) []PrecompileInfo {
	page := FamilyPage(family)
	if page == 0xFF {
		return nil
	}

	lpRange := "LP-" + string('0'+page) + "xxx"
	var result []PrecompileInfo
	for _, p := range AllPrecompiles {
		if p.LPRange == lpRange {
			result = append(result, p)
		}
	}
	return result
}
