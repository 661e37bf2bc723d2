// Copyright 2025 The go-basalt Authors
// This file is part of the go-basalt library.
//
// Controller implements the two-step ownership handover state machine for
// go-basalt system contracts.

package ownership

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

var (
	// Well-known native controller address (deterministic CREATE2 style)
	NativeControllerAddress = common.HexToAddress("0x00000000000000000000000000000000000Ac715")

	ErrNotOwner           = errors.New("caller is not the owner")
	ErrNotPendingOwner    = errors.New("caller is not the pending owner")
	ErrOperationDisabled  = errors.New("operation is disabled")
	ErrAlreadyInitialized = errors.New("ownership already initialized")
)

// Controller is the native two-step ownership controller. The zero address
// is the empty sentinel for both fields: owner is never zero after
// initialization, pendingOwner is zero whenever no handover is in flight.
type Controller struct {
	address common.Address

	owner        common.Address
	pendingOwner common.Address

	init   Initializer
	events EventSink
	seq    uint
}

// NewController creates an uninitialized controller attributed to address.
// Emitted audit entries go to sink; a nil sink discards them.
func NewController(address common.Address, sink EventSink) *Controller {
	if sink == nil {
		sink = discardSink{}
	}
	return &Controller{
		address: address,
		events:  sink,
	}
}

// Address returns the controller's contract address.
func (c *Controller) Address() common.Address {
	return c.address
}

// Initialize installs the initiating principal as the first owner. It runs
// exactly once over the controller's lifetime; later calls fail with
// ErrAlreadyInitialized and change nothing.
func (c *Controller) Initialize(ctx CallContext) error {
	return c.init.RunOnce(func() {
		c.setOwner(ctx.Caller())
		log.Info("Ownership initialized", "controller", c.address, "owner", c.owner)
	})
}

// Owner returns the current owner. No side effects, callable by anyone.
func (c *Controller) Owner() common.Address {
	return c.owner
}

// PendingOwner returns the candidate awaiting confirmation, or the zero
// address when no handover is in flight.
func (c *Controller) PendingOwner() common.Address {
	return c.pendingOwner
}

// TransferPending reports whether a handover is awaiting acceptance.
func (c *Controller) TransferPending() bool {
	return c.pendingOwner != (common.Address{})
}

// requireOwner aborts the calling operation unless ctx resolves to the
// current owner. Every privileged operation checks this before anything
// else. Before initialization the owner slot holds the zero sentinel, which
// matches nobody: the zero address never gains privileges.
func (c *Controller) requireOwner(ctx CallContext) error {
	caller := ctx.Caller()
	if c.owner == (common.Address{}) || caller != c.owner {
		log.Warn("Privileged ownership call rejected", "controller", c.address, "caller", caller, "owner", c.owner)
		return ErrNotOwner
	}
	return nil
}

// ProposePendingOwner nominates candidate as the next owner. A prior
// nomination is overwritten and retains no rights. Proposing the zero
// address cancels an in-flight handover.
func (c *Controller) ProposePendingOwner(ctx CallContext, candidate common.Address) error {
	if err := c.requireOwner(ctx); err != nil {
		return err
	}
	previous := c.pendingOwner
	c.pendingOwner = candidate
	c.emit(NewPendingOwnerTopic, previous, candidate)

	log.Info("Pending owner proposed", "controller", c.address, "previous", previous, "candidate", candidate)
	return nil
}

// AcceptOwnership completes the handover: the caller must be the recorded
// pending owner, becomes the owner, and the nomination is consumed. With no
// candidate recorded the zero sentinel matches nobody, so the call fails.
func (c *Controller) AcceptOwnership(ctx CallContext) error {
	caller := ctx.Caller()
	if c.pendingOwner == (common.Address{}) || caller != c.pendingOwner {
		return ErrNotPendingOwner
	}

	oldOwner := c.owner
	oldPending := c.pendingOwner

	c.setOwner(c.pendingOwner)
	c.pendingOwner = common.Address{}

	// The new-owner field below reads the pending slot after the clear, so
	// it records the zero address. Downstream log consumers depend on this
	// exact shape; do not "fix" it without coordinating a log-schema bump.
	c.emit(NewOwnerTopic, oldOwner, c.pendingOwner)
	c.emit(NewPendingOwnerTopic, oldPending, common.Address{})

	log.Info("Ownership accepted", "controller", c.address, "previous", oldOwner, "owner", c.owner)
	return nil
}

// RenounceOwnership is retired. The entry point remains for callers that
// expect it, but it fails unconditionally once the owner guard passes.
func (c *Controller) RenounceOwnership(ctx CallContext) error {
	if err := c.requireOwner(ctx); err != nil {
		return err
	}
	return ErrOperationDisabled
}

// TransferOwnership is retired in favor of the two-step handover
// (ProposePendingOwner then AcceptOwnership). The entry point remains but
// fails unconditionally once the owner guard passes.
func (c *Controller) TransferOwnership(ctx CallContext, newOwner common.Address) error {
	if err := c.requireOwner(ctx); err != nil {
		return err
	}
	return ErrOperationDisabled
}

// setOwner unconditionally installs newOwner and emits the transfer event.
// No guard: its only callers are the initialization path and the accept step.
func (c *Controller) setOwner(newOwner common.Address) {
	old := c.owner
	c.owner = newOwner
	c.emit(OwnershipTransferredTopic, old, newOwner)
}
