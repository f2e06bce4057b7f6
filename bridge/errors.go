// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import "errors"

// Protocol/Arg errors.
var (
	ErrWrongArgsSize     = errors.New("bridge: wrong argument size")
	ErrWrongSeeds        = errors.New("bridge: wrong seeds")
	ErrWrongTokenAccount = errors.New("bridge: wrong token account")
	ErrWrongMetadata     = errors.New("bridge: wrong metadata account")
	ErrWrongMint         = errors.New("bridge: wrong mint")
	ErrWrongTokenSeed    = errors.New("bridge: wrong token seed")
	ErrNoTokenMeta       = errors.New("bridge: no token metadata supplied")
	ErrUninitializedMeta = errors.New("bridge: uninitialized metadata")
	ErrUninitializedMint = errors.New("bridge: uninitialized mint")
	ErrWrongTokenType    = errors.New("bridge: wrong token type")
	ErrZeroAmount        = errors.New("bridge: amount must be nonzero")
	ErrReceiverTooLong   = errors.New("bridge: receiver address too long")
	ErrNetworkTooLong    = errors.New("bridge: destination network name too long")
)

// State errors.
var (
	ErrAlreadyInUse   = errors.New("bridge: already in use")
	ErrNotInitialized = errors.New("bridge: not initialized")
	ErrWrongBalance   = errors.New("bridge: wrong balance")
)

