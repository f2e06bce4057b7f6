// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Commission op tags, matching the variant discriminants an off-chain
// signer produces for AddFeeToken / RemoveFeeToken / UpdateFeeToken /
// Withdraw.
const (
	OpAddToken      byte = 0
	OpRemoveToken   byte = 1
	OpUpdateToken   byte = 2
	OpWithdrawToken byte = 3
)

// CommissionLeaf encodes op_tag || mint? || amount_bytes(amount). mint is
// nil for the Native token variant and present for FT/NFT.
func CommissionLeaf(opTag byte, mint *[32]byte, amount uint64) []byte {
	out := make([]byte, 0, 1+32+32)
	out = append(out, opTag)
	if mint != nil {
		out = append(out, mint[:]...)
	}
	amt := AmountBytes(amount)
	out = append(out, amt[:]...)
	return out
}
