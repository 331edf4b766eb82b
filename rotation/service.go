// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package rotation

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/s7santosh/fabricops/pkg/errors"
	fabsdk "github.com/s7santosh/fabricops/pkg/sdk"
)

var _ Service = (*rotationService)(nil)

type rotationService struct {
	sdk      fabsdk.SDK
	exporter Exporter
}

// New returns new rotation service.
func New(sdk fabsdk.SDK, exporter Exporter) Service {
	return &rotationService{
		sdk:      sdk,
		exporter: exporter,
	}
}

func (rs *rotationService) RenewAllCATLS(ctx context.Context) (Report, error) {
	cas, sdkerr := rs.sdk.CertificateAuthorities(ctx)
	if sdkerr != nil {
		return Report{}, errors.Wrap(ErrFailedCAList, sdkerr)
	}

	if err := rs.exporter.ExportJSON(CAListFile, cas); err != nil {
		return Report{}, errors.Wrap(ErrFailedExport, err)
	}

	report := Report{Total: len(cas)}
	for _, ca := range cas {
		res, sdkerr := rs.sdk.RenewCATLSCertificate(ctx, ca.ID())
		if sdkerr != nil {
			return report, errors.Wrap(ErrFailedRenewal, sdkerr)
		}
		if !res.Accepted {
			return report, errors.Wrap(ErrRenewalNotAccepted, errors.New(actionMessage(res)))
		}
		report.Renewed = append(report.Renewed, ca.DisplayName())
	}

	return report, nil
}

func (rs *rotationService) RotatePeerCrypto(ctx context.Context, name string, crypto fabsdk.Crypto) (fabsdk.Peer, error) {
	peer, sdkerr := rs.sdk.PeerByName(ctx, name)
	if sdkerr != nil {
		return fabsdk.Peer{}, errors.Wrap(ErrFailedPeerLookup, sdkerr)
	}

	if cryptoEqual(peer.Crypto, crypto) {
		return fabsdk.Peer{}, errors.Wrap(ErrPeerNotUpdated, errors.New("peer "+name+" already has the requested crypto configuration"))
	}

	updated, sdkerr := rs.sdk.UpdatePeer(ctx, peer.ID, fabsdk.PeerUpdate{Crypto: crypto})
	if sdkerr != nil {
		return fabsdk.Peer{}, errors.Wrap(ErrFailedPeerUpdate, sdkerr)
	}

	if err := rs.exporter.ExportJSON(UpdatedPeerFile, updated); err != nil {
		return updated, errors.Wrap(ErrFailedExport, err)
	}

	res, sdkerr := rs.sdk.RestartPeer(ctx, peer.ID)
	if sdkerr != nil {
		return updated, errors.Wrap(ErrFailedRestart, sdkerr)
	}
	if !res.Accepted {
		return updated, errors.Wrap(ErrRestartNotAccepted, errors.New(actionMessage(res)))
	}

	return updated, nil
}

// actionMessage renders a rejected action response for error reporting.
func actionMessage(res fabsdk.ActionResponse) string {
	b, err := json.Marshal(res)
	if err != nil {
		return res.Message
	}
	return string(b)
}

// cryptoEqual reports whether two crypto blobs are the same configuration.
// Both sides are normalized through a JSON round trip so that values read
// from files compare equal to values decoded from console responses.
func cryptoEqual(current, requested fabsdk.Crypto) bool {
	return reflect.DeepEqual(normalize(current), normalize(requested))
}

func normalize(c fabsdk.Crypto) map[string]any {
	if len(c) == 0 {
		return nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return map[string]any(c)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any(c)
	}
	return out
}
