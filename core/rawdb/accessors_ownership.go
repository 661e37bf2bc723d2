// Copyright 2025 The go-basalt Authors
// This file is part of the go-basalt library.
//
// Database accessors for system-contract ownership state.
// Handles storage and retrieval of owner slots, layout schema versions,
// and the ownership audit journal.

package rawdb

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"
)

var (
	// ownerPrefix is the prefix for owner storage
	// ownerPrefix + controller address -> owner address
	ownerPrefix = []byte("own-o-")

	// pendingOwnerPrefix is the prefix for pending owner storage
	// pendingOwnerPrefix + controller address -> pending owner address
	pendingOwnerPrefix = []byte("own-p-")

	// schemaVersionPrefix is the prefix for layout schema versions
	// schemaVersionPrefix + controller address -> schema version
	schemaVersionPrefix = []byte("own-v-")

	// eventSequencePrefix is the prefix for event sequence cursors
	// eventSequencePrefix + controller address -> next event sequence
	eventSequencePrefix = []byte("own-s-")

	// ownershipLogPrefix is the prefix for the audit journal
	// ownershipLogPrefix + controller address + sequence -> JSON log entry
	ownershipLogPrefix = []byte("own-l-")
)

// ownerKey returns the database key for a controller's owner slot
func ownerKey(contract common.Address) []byte {
	return append(ownerPrefix, contract.Bytes()...)
}

// pendingOwnerKey returns the database key for a controller's pending owner slot
func pendingOwnerKey(contract common.Address) []byte {
	return append(pendingOwnerPrefix, contract.Bytes()...)
}

// schemaVersionKey returns the database key for a controller's schema version
func schemaVersionKey(contract common.Address) []byte {
	return append(schemaVersionPrefix, contract.Bytes()...)
}

// eventSequenceKey returns the database key for a controller's event sequence cursor
func eventSequenceKey(contract common.Address) []byte {
	return append(eventSequencePrefix, contract.Bytes()...)
}

// ownershipLogKey returns the database key for a journal entry
func ownershipLogKey(contract common.Address, seq uint64) []byte {
	key := make([]byte, 0, len(ownershipLogPrefix)+common.AddressLength+8)
	key = append(key, ownershipLogPrefix...)
	key = append(key, contract.Bytes()...)
	key = append(key,
		byte(seq>>56), byte(seq>>48), byte(seq>>40), byte(seq>>32),
		byte(seq>>24), byte(seq>>16), byte(seq>>8), byte(seq),
	)
	return key
}

// ReadOwner reads the owner for a controller
func ReadOwner(db ethdb.KeyValueReader, contract common.Address) (common.Address, bool) {
	data, err := db.Get(ownerKey(contract))
	if err != nil || len(data) != common.AddressLength {
		return common.Address{}, false
	}
	return common.BytesToAddress(data), true
}

// WriteOwner writes the owner for a controller
func WriteOwner(db ethdb.KeyValueWriter, contract, owner common.Address) {
	if err := db.Put(ownerKey(contract), owner.Bytes()); err != nil {
		panic("failed to write owner: " + err.Error())
	}
}

// ReadPendingOwner reads the pending owner for a controller
func ReadPendingOwner(db ethdb.KeyValueReader, contract common.Address) (common.Address, bool) {
	data, err := db.Get(pendingOwnerKey(contract))
	if err != nil || len(data) != common.AddressLength {
		return common.Address{}, false
	}
	return common.BytesToAddress(data), true
}

// WritePendingOwner writes the pending owner for a controller
func WritePendingOwner(db ethdb.KeyValueWriter, contract, pending common.Address) {
	if err := db.Put(pendingOwnerKey(contract), pending.Bytes()); err != nil {
		panic("failed to write pending owner: " + err.Error())
	}
}

// ReadSchemaVersion reads the layout schema version for a controller
func ReadSchemaVersion(db ethdb.KeyValueReader, contract common.Address) (uint64, bool) {
	data, err := db.Get(schemaVersionKey(contract))
	if err != nil || len(data) != 8 {
		return 0, false
	}

	version := uint64(data[0])<<56 | uint64(data[1])<<48 | uint64(data[2])<<40 |
		uint64(data[3])<<32 | uint64(data[4])<<24 | uint64(data[5])<<16 |
		uint64(data[6])<<8 | uint64(data[7])

	return version, true
}

// WriteSchemaVersion writes the layout schema version for a controller
func WriteSchemaVersion(db ethdb.KeyValueWriter, contract common.Address, version uint64) {
	data := make([]byte, 8)
	data[0] = byte(version >> 56)
	data[1] = byte(version >> 48)
	data[2] = byte(version >> 40)
	data[3] = byte(version >> 32)
	data[4] = byte(version >> 24)
	data[5] = byte(version >> 16)
	data[6] = byte(version >> 8)
	data[7] = byte(version)

	if err := db.Put(schemaVersionKey(contract), data); err != nil {
		panic("failed to write schema version: " + err.Error())
	}
}

// ReadEventSequence reads the next event sequence for a controller
func ReadEventSequence(db ethdb.KeyValueReader, contract common.Address) (uint64, bool) {
	data, err := db.Get(eventSequenceKey(contract))
	if err != nil || len(data) != 8 {
		return 0, false
	}

	seq := uint64(data[0])<<56 | uint64(data[1])<<48 | uint64(data[2])<<40 |
		uint64(data[3])<<32 | uint64(data[4])<<24 | uint64(data[5])<<16 |
		uint64(data[6])<<8 | uint64(data[7])

	return seq, true
}

// WriteEventSequence writes the next event sequence for a controller
func WriteEventSequence(db ethdb.KeyValueWriter, contract common.Address, seq uint64) {
	data := make([]byte, 8)
	data[0] = byte(seq >> 56)
	data[1] = byte(seq >> 48)
	data[2] = byte(seq >> 40)
	data[3] = byte(seq >> 32)
	data[4] = byte(seq >> 24)
	data[5] = byte(seq >> 16)
	data[6] = byte(seq >> 8)
	data[7] = byte(seq)

	if err := db.Put(eventSequenceKey(contract), data); err != nil {
		panic("failed to write event sequence: " + err.Error())
	}
}

// ReadOwnershipLog reads one journal entry for a controller
func ReadOwnershipLog(db ethdb.KeyValueReader, contract common.Address, seq uint64) (*types.Log, bool) {
	blob, err := db.Get(ownershipLogKey(contract, seq))
	if err != nil {
		return nil, false
	}
	entry := new(types.Log)
	if err := json.Unmarshal(blob, entry); err != nil {
		return nil, false
	}
	return entry, true
}

// WriteOwnershipLog writes one journal entry for a controller
func WriteOwnershipLog(db ethdb.KeyValueWriter, contract common.Address, seq uint64, entry *types.Log) {
	blob, err := json.Marshal(entry)
	if err != nil {
		panic("failed to encode ownership log: " + err.Error())
	}
	if err := db.Put(ownershipLogKey(contract, seq), blob); err != nil {
		panic("failed to write ownership log: " + err.Error())
	}
}

// IterateOwnershipLogs iterates a controller's journal in sequence order.
// The iteration stops early when fn returns false.
func IterateOwnershipLogs(db ethdb.Iteratee, contract common.Address, fn func(seq uint64, entry *types.Log) bool) {
	prefix := append(append([]byte{}, ownershipLogPrefix...), contract.Bytes()...)
	it := db.NewIterator(prefix, nil)
	defer it.Release()

	for it.Next() {
		key := it.Key()
		suffix := key[len(prefix):]
		if len(suffix) != 8 {
			continue
		}
		seq := uint64(suffix[0])<<56 | uint64(suffix[1])<<48 | uint64(suffix[2])<<40 |
			uint64(suffix[3])<<32 | uint64(suffix[4])<<24 | uint64(suffix[5])<<16 |
			uint64(suffix[6])<<8 | uint64(suffix[7])

		entry := new(types.Log)
		if err := json.Unmarshal(it.Value(), entry); err != nil {
			continue
		}
		if !fn(seq, entry) {
			break
		}
	}
}
