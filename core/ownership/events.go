// Copyright 2025 The go-basalt Authors
// This file is part of the go-basalt library.
//
// Audit events emitted by the ownership controller, modelled as
// Solidity-ABI-compatible log entries.

package ownership

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Topic zero of every emitted entry is the keccak256 hash of the canonical
// event signature; both address arguments are indexed.
var (
	// OwnershipTransferred(previousOwner, newOwner): the owner slot changed,
	// at initialization or when a handover is accepted.
	OwnershipTransferredTopic = crypto.Keccak256Hash([]byte("OwnershipTransferred(address,address)"))

	// NewPendingOwner(oldPendingOwner, newPendingOwner): the pending slot
	// changed, by nomination, cancellation, or consumption on accept.
	NewPendingOwnerTopic = crypto.Keccak256Hash([]byte("NewPendingOwner(address,address)"))

	// NewOwner(oldOwner, newOwner): emitted by AcceptOwnership after the
	// pending slot is cleared. See the emission site for the field quirk.
	NewOwnerTopic = crypto.Keccak256Hash([]byte("NewOwner(address,address)"))
)

// EventSink receives audit entries in emission order. Append must not fail;
// durable sinks surface storage failures out of band.
type EventSink interface {
	Append(entry *types.Log)
}

// LogBuffer is an in-memory append-only EventSink.
type LogBuffer struct {
	entries []*types.Log
}

// Append records entry at the end of the buffer.
func (b *LogBuffer) Append(entry *types.Log) {
	b.entries = append(b.entries, entry)
}

// Entries returns the recorded entries in emission order.
func (b *LogBuffer) Entries() []*types.Log {
	out := make([]*types.Log, len(b.entries))
	copy(out, b.entries)
	return out
}

// discardSink drops every entry. Used when the caller passes a nil sink.
type discardSink struct{}

func (discardSink) Append(*types.Log) {}

// emit appends a two-address event with the controller's monotonic log index.
func (c *Controller) emit(topic common.Hash, first, second common.Address) {
	c.events.Append(&types.Log{
		Address: c.address,
		Topics:  []common.Hash{topic, addressWord(first), addressWord(second)},
		Index:   c.seq,
	})
	c.seq++
}

// addressWord left-pads an address into a 32-byte topic word.
func addressWord(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}
