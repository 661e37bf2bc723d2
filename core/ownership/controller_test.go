// Copyright 2025 The go-basalt Authors

package ownership

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	addrA = common.HexToAddress("0x1111111111111111111111111111111111111111")
	addrB = common.HexToAddress("0x2222222222222222222222222222222222222222")
	addrC = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func asCaller(addr common.Address) CallContext {
	return StaticCallContext{From: addr}
}

// newInitializedController returns a controller initialized by addrA with an
// in-memory event buffer.
func newInitializedController(t *testing.T) (*Controller, *LogBuffer) {
	t.Helper()
	buf := new(LogBuffer)
	c := NewController(NativeControllerAddress, buf)
	if err := c.Initialize(asCaller(addrA)); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return c, buf
}

func TestInitializeSetsOwner(t *testing.T) {
	c, buf := newInitializedController(t)

	if c.Owner() != addrA {
		t.Errorf("owner = %s, want %s", c.Owner(), addrA)
	}
	if c.TransferPending() {
		t.Error("fresh controller should have no pending transfer")
	}
	if c.PendingOwner() != (common.Address{}) {
		t.Errorf("pending owner = %s, want zero", c.PendingOwner())
	}

	entries := buf.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 event after init, got %d", len(entries))
	}
	assertEvent(t, entries[0], OwnershipTransferredTopic, common.Address{}, addrA)
}

func TestInitializeRunsOnce(t *testing.T) {
	c, _ := newInitializedController(t)

	if err := c.Initialize(asCaller(addrB)); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Initialize: got %v, want ErrAlreadyInitialized", err)
	}
	if c.Owner() != addrA {
		t.Errorf("owner changed by rejected re-init: %s", c.Owner())
	}
}

func TestNonOwnerRejected(t *testing.T) {
	c, buf := newInitializedController(t)
	before := len(buf.Entries())

	calls := map[string]error{
		"ProposePendingOwner": c.ProposePendingOwner(asCaller(addrB), addrC),
		"RenounceOwnership":   c.RenounceOwnership(asCaller(addrB)),
		"TransferOwnership":   c.TransferOwnership(asCaller(addrB), addrC),
	}
	for name, err := range calls {
		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("%s by non-owner: got %v, want ErrNotOwner", name, err)
		}
	}

	if c.Owner() != addrA || c.PendingOwner() != (common.Address{}) {
		t.Error("state mutated by rejected calls")
	}
	if len(buf.Entries()) != before {
		t.Error("events emitted by rejected calls")
	}
}

func TestUninitializedControllerRejectsPrivilegedCalls(t *testing.T) {
	c := NewController(NativeControllerAddress, nil)

	// The zero owner sentinel must not grant the zero address privileges
	// before initialization runs.
	if err := c.ProposePendingOwner(asCaller(common.Address{}), addrB); !errors.Is(err, ErrNotOwner) {
		t.Errorf("propose by zero caller pre-init: got %v, want ErrNotOwner", err)
	}
	if err := c.RenounceOwnership(asCaller(common.Address{})); !errors.Is(err, ErrNotOwner) {
		t.Errorf("renounce by zero caller pre-init: got %v, want ErrNotOwner", err)
	}
	if c.TransferPending() {
		t.Error("uninitialized controller gained a pending transfer")
	}
}

func TestProposeOverwritesCandidate(t *testing.T) {
	c, _ := newInitializedController(t)

	if err := c.ProposePendingOwner(asCaller(addrA), addrB); err != nil {
		t.Fatalf("propose B failed: %v", err)
	}
	if err := c.ProposePendingOwner(asCaller(addrA), addrC); err != nil {
		t.Fatalf("propose C failed: %v", err)
	}
	if c.PendingOwner() != addrC {
		t.Fatalf("pending owner = %s, want %s", c.PendingOwner(), addrC)
	}

	// The displaced candidate retains no rights.
	if err := c.AcceptOwnership(asCaller(addrB)); !errors.Is(err, ErrNotPendingOwner) {
		t.Fatalf("accept by displaced candidate: got %v, want ErrNotPendingOwner", err)
	}
	if err := c.AcceptOwnership(asCaller(addrC)); err != nil {
		t.Fatalf("accept by current candidate failed: %v", err)
	}
	if c.Owner() != addrC {
		t.Errorf("owner = %s, want %s", c.Owner(), addrC)
	}
}

func TestAcceptConsumesCandidate(t *testing.T) {
	c, _ := newInitializedController(t)

	if err := c.ProposePendingOwner(asCaller(addrA), addrB); err != nil {
		t.Fatalf("propose failed: %v", err)
	}
	if err := c.AcceptOwnership(asCaller(addrB)); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	if c.Owner() != addrB {
		t.Errorf("owner = %s, want %s", c.Owner(), addrB)
	}
	if c.TransferPending() {
		t.Error("pending transfer should be consumed")
	}

	// Nobody can accept twice, the new owner included.
	for _, caller := range []common.Address{addrA, addrB, addrC} {
		if err := c.AcceptOwnership(asCaller(caller)); !errors.Is(err, ErrNotPendingOwner) {
			t.Errorf("second accept by %s: got %v, want ErrNotPendingOwner", caller, err)
		}
	}
}

func TestAcceptWithNoCandidate(t *testing.T) {
	c, _ := newInitializedController(t)

	if err := c.AcceptOwnership(asCaller(addrB)); !errors.Is(err, ErrNotPendingOwner) {
		t.Errorf("accept with no candidate: got %v, want ErrNotPendingOwner", err)
	}
	// The zero sentinel matches nobody, even a zero-address caller.
	if err := c.AcceptOwnership(asCaller(common.Address{})); !errors.Is(err, ErrNotPendingOwner) {
		t.Errorf("accept by zero caller: got %v, want ErrNotPendingOwner", err)
	}
}

func TestDisabledOperations(t *testing.T) {
	c, buf := newInitializedController(t)
	before := len(buf.Entries())

	if err := c.RenounceOwnership(asCaller(addrA)); !errors.Is(err, ErrOperationDisabled) {
		t.Errorf("RenounceOwnership by owner: got %v, want ErrOperationDisabled", err)
	}
	if err := c.TransferOwnership(asCaller(addrA), addrB); !errors.Is(err, ErrOperationDisabled) {
		t.Errorf("TransferOwnership by owner: got %v, want ErrOperationDisabled", err)
	}
	if err := c.TransferOwnership(asCaller(addrA), common.Address{}); !errors.Is(err, ErrOperationDisabled) {
		t.Errorf("TransferOwnership(zero) by owner: got %v, want ErrOperationDisabled", err)
	}

	if c.Owner() != addrA || c.PendingOwner() != (common.Address{}) {
		t.Error("disabled operations mutated state")
	}
	if len(buf.Entries()) != before {
		t.Error("disabled operations emitted events")
	}
}

func TestHandoverScenario(t *testing.T) {
	c, buf := newInitializedController(t)

	if err := c.ProposePendingOwner(asCaller(addrA), addrB); err != nil {
		t.Fatalf("propose failed: %v", err)
	}
	if !c.TransferPending() || c.PendingOwner() != addrB {
		t.Fatal("expected pending transfer to B")
	}

	if err := c.AcceptOwnership(asCaller(addrB)); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if c.Owner() != addrB || c.TransferPending() {
		t.Fatal("expected owner B with no pending transfer")
	}

	// Full emission order: init transfer, nomination, then the accept
	// triplet. The NewOwner entry records the post-clear zero address in
	// its new-owner field.
	entries := buf.Entries()
	if len(entries) != 5 {
		t.Fatalf("expected 5 events, got %d", len(entries))
	}
	assertEvent(t, entries[0], OwnershipTransferredTopic, common.Address{}, addrA)
	assertEvent(t, entries[1], NewPendingOwnerTopic, common.Address{}, addrB)
	assertEvent(t, entries[2], OwnershipTransferredTopic, addrA, addrB)
	assertEvent(t, entries[3], NewOwnerTopic, addrA, common.Address{})
	assertEvent(t, entries[4], NewPendingOwnerTopic, addrB, common.Address{})

	for i, entry := range entries {
		if entry.Index != uint(i) {
			t.Errorf("entry %d has log index %d", i, entry.Index)
		}
		if entry.Address != NativeControllerAddress {
			t.Errorf("entry %d attributed to %s", i, entry.Address)
		}
	}
}

func TestCancelScenario(t *testing.T) {
	c, buf := newInitializedController(t)

	if err := c.ProposePendingOwner(asCaller(addrA), addrB); err != nil {
		t.Fatalf("propose failed: %v", err)
	}
	if err := c.ProposePendingOwner(asCaller(addrA), common.Address{}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if c.TransferPending() {
		t.Error("cancel should clear the pending transfer")
	}
	if c.Owner() != addrA {
		t.Errorf("owner = %s, want %s", c.Owner(), addrA)
	}
	if err := c.AcceptOwnership(asCaller(addrB)); !errors.Is(err, ErrNotPendingOwner) {
		t.Errorf("accept after cancel: got %v, want ErrNotPendingOwner", err)
	}

	entries := buf.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 events, got %d", len(entries))
	}
	assertEvent(t, entries[2], NewPendingOwnerTopic, addrB, common.Address{})
}

func TestOwnershipTransferredTopicMatchesABI(t *testing.T) {
	// Canonical OpenZeppelin event signature hash.
	want := common.HexToHash("0x8be0079c531659141344cd1fd0a4f28419497f9722a3daafe3b4186f6b6457e0")
	if OwnershipTransferredTopic != want {
		t.Errorf("OwnershipTransferred topic = %s, want %s", OwnershipTransferredTopic, want)
	}
}

func TestAPIQueries(t *testing.T) {
	c, _ := newInitializedController(t)
	api := NewAPI(c)

	if api.Owner() != addrA {
		t.Errorf("api owner = %s, want %s", api.Owner(), addrA)
	}
	if api.TransferPending() {
		t.Error("api should report no pending transfer")
	}

	if err := c.ProposePendingOwner(asCaller(addrA), addrB); err != nil {
		t.Fatalf("propose failed: %v", err)
	}
	if !api.TransferPending() || api.PendingOwner() != addrB {
		t.Error("api should report pending transfer to B")
	}
}

func assertEvent(t *testing.T, entry *types.Log, topic common.Hash, first, second common.Address) {
	t.Helper()
	if len(entry.Topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(entry.Topics))
	}
	if entry.Topics[0] != topic {
		t.Errorf("topic = %s, want %s", entry.Topics[0], topic)
	}
	if entry.Topics[1] != addressWord(first) {
		t.Errorf("first arg = %s, want %s", entry.Topics[1], addressWord(first))
	}
	if entry.Topics[2] != addressWord(second) {
		t.Errorf("second arg = %s, want %s", entry.Topics[2], addressWord(second))
	}
}
