// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commission

import "errors"

var (
	ErrWrongArgsSize            = errors.New("commission: wrong argument size")
	ErrAlreadyInUse             = errors.New("commission: already in use")
	ErrNotInitialized           = errors.New("commission: not initialized")
	ErrNotAcceptable            = errors.New("commission: token not acceptable")
	ErrNotSupported             = errors.New("commission: token kind not supported")
	ErrWrongNonce               = errors.New("commission: wrong nonce")
	ErrTooManyTokens            = errors.New("commission: acceptable token list full")
	ErrTokenNotFound            = errors.New("commission: token not found")
	ErrWrongBalance             = errors.New("commission: wrong balance")
	ErrWrongCommissionProgram   = errors.New("commission: wrong commission program")
	ErrWrongCommissionAccount   = errors.New("commission: wrong commission account")
	ErrWrongCommissionArguments = errors.New("commission: wrong commission arguments")
)
