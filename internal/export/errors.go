// Copyright (c) 2025 Orafly Authors. All rights reserved.

package export

import "errors"

var (
	// ErrEmptySelection rejects a versioned export of zero-length text. The
	// check runs before any dialog interaction.
	ErrEmptySelection = errors.New("Cowardly refusing to create an empty migration.\nPlease select some text and try again.\n")

	// ErrEmptyFileName reports a save dialog that produced an empty name.
	ErrEmptyFileName = errors.New("Please enter a file name!")

	// ErrCancelled is returned by save dialogs when the user backs out.
	// The orchestrator treats it as success without writing anything.
	ErrCancelled = errors.New("cancelled")

	// ErrEmptyName is returned by save dialogs when the user confirms an
	// empty name. The orchestrator maps it to ErrEmptyFileName.
	ErrEmptyName = errors.New("empty name")

	// ErrUnsupportedObjectType marks selected objects the export loop
	// skips. Never fatal, the loop carries on with the next object.
	ErrUnsupportedObjectType = errors.New("not a supported object type")
)
