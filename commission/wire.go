// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commission

import (
	"github.com/luxfi/geth/common"

	"github.com/luxfi/bridgecore/codec"
)

func putToken(w *codec.Writer, token Token) {
	w.PutU8(byte(token.Kind))
	w.PutOption(token.Kind != KindNative, func(w *codec.Writer) {
		w.PutFixed(token.Mint[:])
	})
	w.PutU64(token.Amount)
}

func readToken(r *codec.Reader) (Token, error) {
	kind, err := r.ReadU8()
	if err != nil {
		return Token{}, err
	}
	token := Token{Kind: TokenKind(kind)}

	hasMint, err := r.ReadOption(func(r *codec.Reader) error {
		mintBytes, err := r.ReadFixed(20)
		if err != nil {
			return err
		}
		token.Mint = common.BytesToAddress(mintBytes)
		return nil
	})
	if err != nil {
		return Token{}, err
	}
	if hasMint == (token.Kind == KindNative) {
		return Token{}, ErrWrongArgsSize
	}

	token.Amount, err = r.ReadU64()
	if err != nil {
		return Token{}, err
	}
	return token, nil
}

func putPath(w *codec.Writer, path [][32]byte) {
	w.PutU8(byte(len(path)))
	for _, sibling := range path {
		w.PutFixed(sibling[:])
	}
}

func readPath(r *codec.Reader) ([][32]byte, error) {
	n, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	path := make([][32]byte, n)
	for i := range path {
		b, err := r.ReadFixed(32)
		if err != nil {
			return nil, err
		}
		copy(path[i][:], b)
	}
	return path, nil
}

func putSignature(w *codec.Writer, signature [64]byte, recoveryID byte) {
	w.PutFixed(signature[:])
	w.PutU8(recoveryID)
}

func readSignature(r *codec.Reader) (signature [64]byte, recoveryID byte, err error) {
	sigBytes, err := r.ReadFixed(64)
	if err != nil {
		return signature, 0, err
	}
	copy(signature[:], sigBytes)
	recoveryID, err = r.ReadU8()
	return signature, recoveryID, err
}

// EncodeInitializeAdmin serializes an InitializeAdmin instruction call.
func EncodeInitializeAdmin(publicKey [33]byte, acceptableTokens []Token) []byte {
	w := codec.NewWriter(TagInitializeAdmin)
	w.PutFixed(publicKey[:])
	w.PutU8(byte(len(acceptableTokens)))
	for _, tok := range acceptableTokens {
		putToken(w, tok)
	}
	return w.Bytes()
}

func decodeInitializeAdmin(data []byte) (publicKey [33]byte, acceptableTokens []Token, err error) {
	r := codec.NewReader(data)
	pkBytes, err := r.ReadFixed(33)
	if err != nil {
		return publicKey, nil, ErrWrongArgsSize
	}
	copy(publicKey[:], pkBytes)

	count, err := r.ReadU8()
	if err != nil {
		return publicKey, nil, ErrWrongArgsSize
	}
	for i := 0; i < int(count); i++ {
		tok, err := readToken(r)
		if err != nil {
			return publicKey, nil, ErrWrongArgsSize
		}
		acceptableTokens = append(acceptableTokens, tok)
	}
	return publicKey, acceptableTokens, nil
}

// EncodeFeeTokenMutation serializes Add/Remove/UpdateFeeToken calls, which
// all share the same (token, path, signature, recoveryID) shape.
func EncodeFeeTokenMutation(tag byte, token Token, path [][32]byte, signature [64]byte, recoveryID byte) []byte {
	w := codec.NewWriter(tag)
	putToken(w, token)
	putPath(w, path)
	putSignature(w, signature, recoveryID)
	return w.Bytes()
}

func decodeFeeTokenMutation(data []byte) (token Token, path [][32]byte, signature [64]byte, recoveryID byte, err error) {
	r := codec.NewReader(data)
	token, err = readToken(r)
	if err != nil {
		return Token{}, nil, signature, 0, ErrWrongArgsSize
	}
	path, err = readPath(r)
	if err != nil {
		return Token{}, nil, signature, 0, ErrWrongArgsSize
	}
	signature, recoveryID, err = readSignature(r)
	if err != nil {
		return Token{}, nil, signature, 0, ErrWrongArgsSize
	}
	return token, path, signature, recoveryID, nil
}

// EncodeWithdraw serializes a Withdraw instruction call.
func EncodeWithdraw(destination common.Address, token Token, path [][32]byte, signature [64]byte, recoveryID byte) []byte {
	w := codec.NewWriter(TagWithdraw)
	w.PutFixed(destination[:])
	putToken(w, token)
	putPath(w, path)
	putSignature(w, signature, recoveryID)
	return w.Bytes()
}

func decodeWithdraw(data []byte) (destination common.Address, token Token, path [][32]byte, signature [64]byte, recoveryID byte, err error) {
	r := codec.NewReader(data)
	destBytes, err := r.ReadFixed(20)
	if err != nil {
		return common.Address{}, Token{}, nil, signature, 0, ErrWrongArgsSize
	}
	destination = common.BytesToAddress(destBytes)

	token, err = readToken(r)
	if err != nil {
		return common.Address{}, Token{}, nil, signature, 0, ErrWrongArgsSize
	}
	path, err = readPath(r)
	if err != nil {
		return common.Address{}, Token{}, nil, signature, 0, ErrWrongArgsSize
	}
	signature, recoveryID, err = readSignature(r)
	if err != nil {
		return common.Address{}, Token{}, nil, signature, 0, ErrWrongArgsSize
	}
	return destination, token, path, signature, recoveryID, nil
}
