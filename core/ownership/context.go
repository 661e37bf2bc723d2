// Copyright 2025 The go-basalt Authors
// This file is part of the go-basalt library.
//
// Collaborator contracts: caller identity resolution and the run-once
// initialization guard.

package ownership

import (
	"github.com/ethereum/go-ethereum/common"
)

// CallContext resolves the effective calling principal for the current
// invocation, abstracting any meta-transaction or relay indirection the
// execution layer applies before the call reaches the controller.
type CallContext interface {
	Caller() common.Address
}

// StaticCallContext is a CallContext with a fixed caller, for direct calls
// that involve no relay indirection.
type StaticCallContext struct {
	From common.Address
}

func (ctx StaticCallContext) Caller() common.Address {
	return ctx.From
}

// Initializer guards a setup routine so it executes exactly once over the
// lifetime of the enclosing entity. The host ledger serializes execution, so
// a plain flag suffices; no locking.
type Initializer struct {
	done bool
}

// RunOnce executes fn on the first call and fails with ErrAlreadyInitialized
// on every later call, without running fn.
func (i *Initializer) RunOnce(fn func()) error {
	if i.done {
		return ErrAlreadyInitialized
	}
	i.done = true
	fn()
	return nil
}

// Initialized reports whether the guarded routine has run.
func (i *Initializer) Initialized() bool {
	return i.done
}
