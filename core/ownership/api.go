// Copyright 2025 The go-basalt Authors
// This file is part of the go-basalt library.

package ownership

import (
	"github.com/ethereum/go-ethereum/common"
)

// API is the read-only query surface for registration with the node's RPC
// layer. Mutations go through transaction execution, never through RPC.
type API struct {
	controller *Controller
}

// NewAPI creates an RPC API wrapper around a controller.
func NewAPI(controller *Controller) *API {
	return &API{controller: controller}
}

// Owner returns the current owner.
func (api *API) Owner() common.Address {
	return api.controller.Owner()
}

// PendingOwner returns the candidate awaiting confirmation, or the zero
// address when no handover is in flight.
func (api *API) PendingOwner() common.Address {
	return api.controller.PendingOwner()
}

// TransferPending reports whether a handover is awaiting acceptance.
func (api *API) TransferPending() bool {
	return api.controller.TransferPending()
}
