// Copyright 2025 The go-basalt Authors
// This file is part of the go-basalt library.
//
// Storage slot layout of the controller behind an upgradeable proxy.

package ownership

import (
	"github.com/holiman/uint256"
)

// Slots already assigned must never be reordered or repurposed across
// revisions; new fields claim slots from the reserved gap and bump the
// schema version.
const (
	// OwnerSlot holds the current owner.
	OwnerSlot = 0

	// PendingOwnerSlot holds the candidate awaiting confirmation.
	PendingOwnerSlot = 1

	// ReservedGapSlots pads the layout so future revisions can append
	// fields without shifting anything laid out after this controller.
	ReservedGapSlots = 50

	// SchemaVersion identifies the layout above.
	SchemaVersion = 1
)

// SchemaWord returns the schema version encoded as a 32-byte storage word.
func SchemaWord() [32]byte {
	return uint256.NewInt(SchemaVersion).Bytes32()
}
