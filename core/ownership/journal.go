// Copyright 2025 The go-basalt Authors
// This file is part of the go-basalt library.
//
// Durable persistence for controller state and the audit event journal.

package ownership

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"

	"github.com/basaltchain/go-basalt/core/rawdb"
)

// Journal is a durable EventSink: every emitted entry is appended to the
// database under the next sequence number as it is produced.
type Journal struct {
	db       ethdb.KeyValueWriter
	contract common.Address
	next     uint64
}

// JournalStore combines the database capabilities needed to resume a
// journal after a restart.
type JournalStore interface {
	ethdb.KeyValueWriter
	ethdb.Iteratee
}

// NewJournal creates a journal for the given controller address, appending
// from sequence zero. For a database that already holds entries, use
// ResumeJournal instead; starting over would overwrite the recorded history.
func NewJournal(db ethdb.KeyValueWriter, contract common.Address) *Journal {
	return &Journal{
		db:       db,
		contract: contract,
	}
}

// ResumeJournal creates a journal that appends after the last entry already
// persisted for the controller, keeping the recorded history append-only
// across restarts.
func ResumeJournal(db JournalStore, contract common.Address) *Journal {
	j := &Journal{
		db:       db,
		contract: contract,
	}
	rawdb.IterateOwnershipLogs(db, contract, func(seq uint64, _ *types.Log) bool {
		if seq >= j.next {
			j.next = seq + 1
		}
		return true
	})
	return j
}

// Append persists entry under the journal's next sequence number.
func (j *Journal) Append(entry *types.Log) {
	rawdb.WriteOwnershipLog(j.db, j.contract, j.next, entry)
	j.next++
}

// Sequence returns the next sequence number to be assigned.
func (j *Journal) Sequence() uint64 {
	return j.next
}

// Store persists the controller's slots, schema version, and event sequence
// cursor. Journal entries are written at emission time and are not part of
// this snapshot.
func (c *Controller) Store(db ethdb.KeyValueWriter) {
	rawdb.WriteOwner(db, c.address, c.owner)
	rawdb.WritePendingOwner(db, c.address, c.pendingOwner)
	rawdb.WriteSchemaVersion(db, c.address, SchemaVersion)
	rawdb.WriteEventSequence(db, c.address, uint64(c.seq))
}

// LoadController restores a controller previously persisted with Store. The
// restored controller counts as initialized: Initialize on it fails, and
// ownership can change only through the two-step protocol.
func LoadController(db ethdb.KeyValueReader, address common.Address, sink EventSink) (*Controller, error) {
	if version, ok := rawdb.ReadSchemaVersion(db, address); ok && version > SchemaVersion {
		return nil, fmt.Errorf("ownership schema version %d newer than supported %d", version, SchemaVersion)
	}
	owner, ok := rawdb.ReadOwner(db, address)
	if !ok {
		return nil, fmt.Errorf("no ownership state stored for controller %s", address)
	}

	c := NewController(address, sink)
	c.owner = owner
	if pending, ok := rawdb.ReadPendingOwner(db, address); ok {
		c.pendingOwner = pending
	}
	// Resume the log index cursor so entries emitted after the restart
	// extend the recorded history instead of reusing spent indices.
	if seq, ok := rawdb.ReadEventSequence(db, address); ok {
		c.seq = uint(seq)
	}
	c.init.done = true
	return c, nil
}
