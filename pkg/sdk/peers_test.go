// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/s7santosh/fabricops/pkg/errors"
	sdk "github.com/s7santosh/fabricops/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	crypto = sdk.Crypto{
		"enrollment": map[string]any{
			"ca": map[string]any{"host": "org1ca.example.com", "port": "7054"},
		},
	}

	peer = sdk.Peer{
		ID:          "org1peer",
		Type:        "fabric-peer",
		DisplayName: "Org1 Peer",
		MSPID:       "Org1MSP",
		APIURL:      "grpcs://org1peer.example.com:7051",
		Crypto:      crypto,
	}

	peerComponents = []map[string]any{
		{"id": "org1ca", "display_name": "Org1 CA", "type": "fabric-ca"},
		{
			"id":           peer.ID,
			"type":         peer.Type,
			"display_name": peer.DisplayName,
			"msp_id":       peer.MSPID,
			"api_url":      peer.APIURL,
			"crypto":       map[string]any(peer.Crypto),
		},
	}
)

func TestPeers(t *testing.T) {
	cases := []struct {
		desc   string
		status int
		body   any
		peers  []sdk.Peer
		err    errors.SDKError
	}{
		{
			desc:   "list peers filtering other components",
			status: http.StatusOK,
			body:   peerComponents,
			peers:  []sdk.Peer{peer},
		},
		{
			desc:   "list with empty console",
			status: http.StatusOK,
			body:   []map[string]any{},
			peers:  []sdk.Peer{},
		},
		{
			desc:   "list with unauthorized credentials",
			status: http.StatusUnauthorized,
			body:   map[string]any{"message": "invalid credentials"},
			err:    errors.NewSDKErrorWithStatus(errors.New("invalid credentials"), http.StatusUnauthorized),
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/ak/api/v3/components", r.URL.Path)
				assert.Equal(t, "included", r.URL.Query().Get("deployment_attrs"))
				assert.Equal(t, "fabric-peer", r.URL.Query().Get("type"))

				jsonResponse(t, w, tc.status, tc.body)
			}))
			defer srv.Close()

			peers, err := setupSDK(srv.URL).Peers(context.Background())
			assert.Equal(t, tc.err, err)
			assert.Equal(t, tc.peers, peers)
		})
	}
}

func TestPeerByName(t *testing.T) {
	cases := []struct {
		desc string
		name string
		peer sdk.Peer
		err  error
	}{
		{
			desc: "get peer by display name",
			name: peer.DisplayName,
			peer: peer,
		},
		{
			desc: "get peer with unknown display name",
			name: "unknown",
			peer: sdk.Peer{},
			err:  sdk.ErrPeerNotFound,
		},
		{
			desc: "get peer with empty display name",
			name: "",
			peer: sdk.Peer{},
			err:  errors.ErrMissingName,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				jsonResponse(t, w, http.StatusOK, peerComponents)
			}))
			defer srv.Close()

			p, err := setupSDK(srv.URL).PeerByName(context.Background(), tc.name)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			} else {
				assert.Nil(t, err)
			}
			assert.Equal(t, tc.peer, p)
		})
	}
}

func TestUpdatePeer(t *testing.T) {
	updatedCrypto := sdk.Crypto{
		"enrollment": map[string]any{
			"ca": map[string]any{"host": "org1ca.example.com", "port": "7054", "tls_cert": "bmV3Y2VydA=="},
		},
	}
	updated := peer
	updated.Crypto = updatedCrypto

	cases := []struct {
		desc   string
		id     string
		status int
		body   any
		peer   sdk.Peer
		err    errors.SDKError
	}{
		{
			desc:   "update peer crypto",
			id:     peer.ID,
			status: http.StatusOK,
			body:   updated,
			peer:   updated,
		},
		{
			desc:   "update non-existent peer",
			id:     "invalid",
			status: http.StatusNotFound,
			body:   map[string]any{"message": "no components by this id exist"},
			err:    errors.NewSDKErrorWithStatus(errors.New("no components by this id exist"), http.StatusNotFound),
		},
		{
			desc: "update peer with empty id",
			id:   "",
			err:  errors.NewSDKError(errors.ErrMissingID),
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, fmt.Sprintf("/ak/api/v3/kubernetes/components/fabric-peer/%s", tc.id), r.URL.Path)

				var pu sdk.PeerUpdate
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(body, &pu))
				assert.Equal(t, sdk.PeerUpdate{Crypto: updatedCrypto}, pu)

				jsonResponse(t, w, tc.status, tc.body)
			}))
			defer srv.Close()

			p, err := setupSDK(srv.URL).UpdatePeer(context.Background(), tc.id, sdk.PeerUpdate{Crypto: updatedCrypto})
			assert.Equal(t, tc.err, err)
			assert.Equal(t, tc.peer, p)
		})
	}
}

func TestRestartPeer(t *testing.T) {
	cases := []struct {
		desc   string
		id     string
		status int
		body   any
		res    sdk.ActionResponse
		err    errors.SDKError
	}{
		{
			desc:   "restart accepted",
			id:     peer.ID,
			status: http.StatusAccepted,
			body:   map[string]any{"accepted": true, "message": "accepted"},
			res:    sdk.ActionResponse{Accepted: true, Message: "accepted"},
		},
		{
			desc:   "restart not accepted",
			id:     peer.ID,
			status: http.StatusOK,
			body:   map[string]any{"accepted": false, "message": "component is busy"},
			res:    sdk.ActionResponse{Accepted: false, Message: "component is busy"},
		},
		{
			desc:   "restart with console failure",
			id:     peer.ID,
			status: http.StatusServiceUnavailable,
			body:   map[string]any{"message": "deployer unavailable"},
			err:    errors.NewSDKErrorWithStatus(errors.New("deployer unavailable"), http.StatusServiceUnavailable),
		},
		{
			desc: "restart with empty id",
			id:   "",
			err:  errors.NewSDKError(errors.ErrMissingID),
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, fmt.Sprintf("/ak/api/v3/kubernetes/components/fabric-peer/%s/actions", tc.id), r.URL.Path)

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"restart":true}`, string(body))

				jsonResponse(t, w, tc.status, tc.body)
			}))
			defer srv.Close()

			res, err := setupSDK(srv.URL).RestartPeer(context.Background(), tc.id)
			assert.Equal(t, tc.err, err)
			assert.Equal(t, tc.res, res)
		})
	}
}
