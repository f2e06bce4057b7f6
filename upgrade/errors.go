// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package upgrade

import "errors"

var (
	ErrWrongArgsSize  = errors.New("upgrade: wrong argument size")
	ErrWrongSeeds     = errors.New("upgrade: wrong seeds")
	ErrAlreadyInUse   = errors.New("upgrade: already in use")
	ErrNotInitialized = errors.New("upgrade: not initialized")
)
