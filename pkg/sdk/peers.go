// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/s7santosh/fabricops/pkg/errors"
)

// Crypto is the opaque crypto configuration blob of a peer. It is supplied
// by the caller and passed through to the console unchanged.
type Crypto map[string]any

// Peer represents a peer component descriptor.
type Peer struct {
	ID            string `json:"id"`
	Type          string `json:"type,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
	MSPID         string `json:"msp_id,omitempty"`
	APIURL        string `json:"api_url,omitempty"`
	OperationsURL string `json:"operations_url,omitempty"`
	Location      string `json:"location,omitempty"`
	Version       string `json:"version,omitempty"`
	Crypto        Crypto `json:"crypto,omitempty"`
}

// PeerUpdate carries the peer fields that can be updated.
type PeerUpdate struct {
	Crypto Crypto `json:"crypto"`
}

type restartReq struct {
	Restart bool `json:"restart"`
}

func (sdk *fabricSDK) Peers(ctx context.Context) ([]Peer, errors.SDKError) {
	url := fmt.Sprintf("%s/%s?deployment_attrs=included&type=%s", sdk.consoleURL, componentsEndpoint, componentTypePeer)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var components []Peer
	if err := json.Unmarshal(body, &components); err != nil {
		return nil, errors.NewSDKError(err)
	}

	peers := make([]Peer, 0, len(components))
	for _, p := range components {
		if p.Type == componentTypePeer {
			peers = append(peers, p)
		}
	}

	return peers, nil
}

func (sdk *fabricSDK) PeerByName(ctx context.Context, name string) (Peer, errors.SDKError) {
	if name == "" {
		return Peer{}, errors.NewSDKError(errors.ErrMissingName)
	}

	peers, sdkerr := sdk.Peers(ctx)
	if sdkerr != nil {
		return Peer{}, sdkerr
	}

	for _, p := range peers {
		if p.DisplayName == name {
			return p, nil
		}
	}

	return Peer{}, errors.NewSDKError(errors.Wrap(ErrPeerNotFound, errors.New(name)))
}

func (sdk *fabricSDK) UpdatePeer(ctx context.Context, id string, pu PeerUpdate) (Peer, errors.SDKError) {
	if id == "" {
		return Peer{}, errors.NewSDKError(errors.ErrMissingID)
	}
	d, err := json.Marshal(pu)
	if err != nil {
		return Peer{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/%s/%s", sdk.consoleURL, kubernetesEndpoint, componentTypePeer, id)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodPut, url, d, nil, http.StatusOK)
	if sdkerr != nil {
		return Peer{}, sdkerr
	}

	var peer Peer
	if err := json.Unmarshal(body, &peer); err != nil {
		return Peer{}, errors.NewSDKError(err)
	}

	return peer, nil
}

func (sdk *fabricSDK) RestartPeer(ctx context.Context, id string) (ActionResponse, errors.SDKError) {
	if id == "" {
		return ActionResponse{}, errors.NewSDKError(errors.ErrMissingID)
	}
	d, err := json.Marshal(restartReq{Restart: true})
	if err != nil {
		return ActionResponse{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/%s/%s/actions", sdk.consoleURL, kubernetesEndpoint, componentTypePeer, id)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodPost, url, d, nil, http.StatusOK, http.StatusAccepted)
	if sdkerr != nil {
		return ActionResponse{}, sdkerr
	}

	var res ActionResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return ActionResponse{}, errors.NewSDKError(err)
	}

	return res, nil
}
