// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountBytesZeroPadding(t *testing.T) {
	b := AmountBytes(1_000_000)
	for i := 0; i < 24; i++ {
		require.Zerof(t, b[i], "byte %d must be zero", i)
	}
	require.Equal(t, uint64(1_000_000), ParseAmountBytes(b))
}

func TestAmountBytesInjective(t *testing.T) {
	a := AmountBytes(1)
	b := AmountBytes(2)
	require.NotEqual(t, a, b)
}

func TestNativeTransferEncoding(t *testing.T) {
	nt := NativeTransfer{Amount: 42}
	got := nt.encodeOperation()
	want := AmountBytes(42)
	require.Equal(t, want[:], got)
}

func TestFTTransferFieldOrder(t *testing.T) {
	mint := [32]byte{1, 2, 3}
	ft := FTTransfer{
		Mint:     mint,
		Amount:   500,
		Name:     "Wrapped",
		Symbol:   "WRP",
		URI:      "ipfs://x",
		Decimals: 6,
	}
	got := ft.encodeOperation()

	var want []byte
	want = append(want, mint[:]...)
	want = append(want, []byte("Wrapped")...)
	want = append(want, []byte("ipfs://x")...)
	amt := AmountBytes(500)
	want = append(want, amt[:]...)
	want = append(want, []byte("WRP")...)
	want = append(want, 6)

	require.Equal(t, want, got)
}

func TestNFTTransferWithoutCollection(t *testing.T) {
	mint := [32]byte{9}
	nft := NFTTransfer{
		TokenMint: mint,
		Name:      "Card #1",
		Symbol:    "CARD",
		URI:       "ipfs://card1",
	}
	got := nft.encodeOperation()

	var want []byte
	want = append(want, []byte("Card #1")...)
	want = append(want, mint[:]...)
	want = append(want, []byte("ipfs://card1")...)
	want = append(want, []byte("CARD")...)

	require.Equal(t, want, got)
}

func TestWithdrawLeafDeterministic(t *testing.T) {
	origin := [32]byte{1}
	receiver := [32]byte{2}
	programID := [32]byte{3}

	h1 := WithdrawLeaf(NativeTransfer{Amount: 7}, origin, receiver, programID)
	h2 := WithdrawLeaf(NativeTransfer{Amount: 7}, origin, receiver, programID)
	require.Equal(t, h1, h2)

	h3 := WithdrawLeaf(NativeTransfer{Amount: 8}, origin, receiver, programID)
	require.NotEqual(t, h1, h3)
}

func TestCommissionLeafNative(t *testing.T) {
	leaf := CommissionLeaf(OpAddToken, nil, 100)
	require.Equal(t, byte(OpAddToken), leaf[0])
	require.Len(t, leaf, 1+32)
}

func TestCommissionLeafFT(t *testing.T) {
	mint := [32]byte{5}
	leaf := CommissionLeaf(OpWithdrawToken, &mint, 100)
	require.Len(t, leaf, 1+32+32)
	require.Equal(t, mint[:], leaf[1:33])
}

func TestUpgradeMessageDoubleHash(t *testing.T) {
	buf := []byte("program bytes")
	programID := [32]byte{7}
	m1 := UpgradeMessage(buf, programID, 1)
	m2 := UpgradeMessage(buf, programID, 2)
	require.NotEqual(t, m1, m2, "nonce must be bound into the digest")
}

func TestWireRoundTrip(t *testing.T) {
	w := NewWriter(2) // DepositNative
	w.PutU64(1_000_000).PutString("Ethereum").PutString("0xabc").PutFixed(make([]byte, 32))

	r := NewReader(w.Bytes()[1:])
	amount, err := r.ReadU64()
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), amount)

	network, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "Ethereum", network)

	receiver, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "0xabc", receiver)

	seeds, err := r.ReadFixed(32)
	require.NoError(t, err)
	require.Len(t, seeds, 32)
}

func TestWireOptionRoundTrip(t *testing.T) {
	w := NewWriter(3)
	w.PutOption(true, func(w *Writer) { w.PutFixed([]byte{1, 2, 3, 4}) })

	r := NewReader(w.Bytes()[1:])
	var got []byte
	present, err := r.ReadOption(func(r *Reader) error {
		b, err := r.ReadFixed(4)
		got = b
		return err
	})
	require.NoError(t, err)
	require.True(t, present)
	require.Equal(t, []byte{1, 2, 3, 4}, got)
}
