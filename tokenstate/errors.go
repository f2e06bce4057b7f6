// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tokenstate

import "errors"

var (
	ErrInsufficientBalance = errors.New("tokenstate: insufficient balance")
	ErrWrongMintAuthority  = errors.New("tokenstate: wrong mint authority")
	ErrMintExists          = errors.New("tokenstate: mint already exists")
)
