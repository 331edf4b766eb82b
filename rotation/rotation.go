// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

// Package rotation orchestrates TLS certificate renewal for certificate
// authorities and crypto rotation with restart for peers, against the
// Fabric operations console.
package rotation

import (
	"context"

	"github.com/s7santosh/fabricops/pkg/errors"
	fabsdk "github.com/s7santosh/fabricops/pkg/sdk"
)

const (
	// CAListFile is the export file holding the enumerated CA descriptors.
	CAListFile = "All_CAs.json"

	// UpdatedPeerFile is the export file holding the updated peer descriptor.
	UpdatedPeerFile = "updated_peer.json"
)

var (
	// ErrFailedCAList indicates that enumerating certificate authorities failed.
	ErrFailedCAList = errors.New("failed to list certificate authorities")

	// ErrFailedRenewal indicates that a TLS certificate renewal request failed.
	ErrFailedRenewal = errors.New("failed to renew CA TLS certificate")

	// ErrRenewalNotAccepted indicates the console did not accept a TLS renewal action.
	ErrRenewalNotAccepted = errors.New("CA TLS certificate renewal was not accepted")

	// ErrFailedPeerLookup indicates that resolving a peer by display name failed.
	ErrFailedPeerLookup = errors.New("failed to look up peer")

	// ErrPeerNotUpdated indicates the requested crypto configuration matches the
	// peer's current one, so no update took place.
	ErrPeerNotUpdated = errors.New("peer crypto configuration was not updated")

	// ErrFailedPeerUpdate indicates that the peer update request failed.
	ErrFailedPeerUpdate = errors.New("failed to update peer")

	// ErrFailedRestart indicates that the peer restart request failed.
	ErrFailedRestart = errors.New("failed to restart peer")

	// ErrRestartNotAccepted indicates the console did not accept a peer restart action.
	ErrRestartNotAccepted = errors.New("peer restart was not accepted")

	// ErrFailedExport indicates that exporting a descriptor to a file failed.
	ErrFailedExport = errors.New("failed to export descriptor")
)

// Report summarizes a CA TLS renewal run.
type Report struct {
	Total   int      `json:"total"`
	Renewed []string `json:"renewed,omitempty"`
}

// Service specifies an API that must be fulfilled by the rotation service
// implementation, and all of its decorators (e.g. logging).
type Service interface {
	// RenewAllCATLS enumerates the certificate authorities registered with
	// the console, exports the raw descriptor list to All_CAs.json, and
	// renews the TLS certificate of each one in order, halting on the first
	// failure.
	RenewAllCATLS(ctx context.Context) (Report, error)

	// RotatePeerCrypto updates the crypto configuration of the peer with the
	// given display name and restarts it. The sequence fails before any file
	// is written or restart issued when the requested configuration matches
	// the current one, and fails with the console's response message when the
	// restart is not accepted. The updated descriptor is exported to
	// updated_peer.json.
	RotatePeerCrypto(ctx context.Context, name string, crypto fabsdk.Crypto) (fabsdk.Peer, error)
}
