// Copyright 2025 The go-basalt Authors
// This file is part of the go-basalt library.

/*
Package ownership implements the native two-step ownership controller for
go-basalt system contracts.

A single privileged principal (the owner) gates sensitive operations. Handing
the role over is deliberately split in two: the current owner nominates a
candidate, and the candidate must accept before anything changes. A fat-finger
transfer to a dead address therefore never bricks the contract, because an
unaccepted nomination can be overwritten or cancelled at will.

# Protocol

	Owner A                          Candidate B
	   |                                 |
	   | ProposePendingOwner(B)          |
	   +-------------------------------->|
	   |                           AcceptOwnership()
	   |<--------------------------------+
	   |   owner = B, pending cleared    |

Nominations overwrite: proposing C while B is pending strips B of any claim.
Proposing the zero address cancels the handover outright. The legacy one-step
TransferOwnership and RenounceOwnership entry points are retired; they keep
their signatures for ABI compatibility but always fail with
ErrOperationDisabled.

# Events

Every mutation appends Solidity-ABI-compatible log entries (keccak256
signature topics, indexed address arguments) to an EventSink in a fixed
order. LogBuffer keeps them in memory; Journal persists them through
core/rawdb so auditors can replay the full handover history.

# Execution model

The host ledger serializes calls, so the controller carries no locks. Every
operation validates all preconditions before its first mutation or emission,
giving all-or-nothing semantics per call.
*/
package ownership
