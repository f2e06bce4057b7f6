// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package token holds the small value types the bridge, commission, and
// tokenstate packages all need to agree on, so that a single TokenHost
// implementation can satisfy every consumer's interface without those
// packages importing one another.
package token

import "github.com/luxfi/geth/common"

// Meta is the signed metadata an operator provides when a bridge-minted
// mirror mint or collection is created for the first time.
type Meta struct {
	Name     string
	Symbol   string
	URI      string
	Decimals uint8
}

// Metadata is what a TokenHost reads back off an existing mint's metadata
// record, including an optional collection reference. UpdateAuthority is
// the account that created the mint's metadata; a bridge checks it against
// its own admin address to tell a bridge-minted mirror from a mint that
// is native to the current chain.
type Metadata struct {
	Name            string
	Symbol          string
	URI             string
	Decimals        uint8
	Collection      *common.Address
	UpdateAuthority common.Address
}
