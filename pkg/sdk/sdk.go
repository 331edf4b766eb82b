// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/s7santosh/fabricops/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"moul.io/http2curl"
)

const (
	// CTJSON represents JSON content type.
	CTJSON ContentType = "application/json"

	// CTForm represents the form content type used by the token endpoint.
	CTForm ContentType = "application/x-www-form-urlencoded"

	// AuthTypeBasic authenticates every console call with the API key and secret.
	AuthTypeBasic = "basic"

	// AuthTypeIAM exchanges the API key for a bearer token at the token endpoint.
	AuthTypeIAM = "iam"

	BearerPrefix = "Bearer "

	componentsEndpoint = "ak/api/v3/components"
	kubernetesEndpoint = "ak/api/v3/kubernetes/components"

	componentTypeCA   = "fabric-ca"
	componentTypePeer = "fabric-peer"
)

// ContentType represents all possible content types.
type ContentType string

var _ SDK = (*fabricSDK)(nil)

var (
	// ErrFailedList indicates that listing console components failed.
	ErrFailedList = errors.New("failed to list console components")

	// ErrFailedFetch indicates that fetching of component data failed.
	ErrFailedFetch = errors.New("failed to fetch component")

	// ErrFailedUpdate indicates that component update failed.
	ErrFailedUpdate = errors.New("failed to update component")

	// ErrFailedAction indicates that submitting a component action failed.
	ErrFailedAction = errors.New("failed to submit component action")

	// ErrPeerNotFound indicates that no peer matches the requested display name.
	ErrPeerNotFound = errors.New("peer not found")

	// ErrFailedTokenExchange indicates that the IAM token exchange failed.
	ErrFailedTokenExchange = errors.New("failed to exchange API key for access token")
)

// ActionResponse is the console's acknowledgement of a component action.
type ActionResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message,omitempty"`
}

// SDK contains the Fabric operations console API.
type SDK interface {
	// CertificateAuthorities returns all certificate authorities registered
	// with the console, in the order the console reports them.
	//
	// example:
	//  cas, _ := sdk.CertificateAuthorities(ctx)
	//  fmt.Println(cas)
	CertificateAuthorities(ctx context.Context) ([]CertificateAuthority, errors.SDKError)

	// CertificateAuthority returns a single certificate authority by component id.
	//
	// example:
	//  ca, _ := sdk.CertificateAuthority(ctx, "org1ca")
	//  fmt.Println(ca)
	CertificateAuthority(ctx context.Context, id string) (CertificateAuthority, errors.SDKError)

	// RenewCATLSCertificate asks the console to renew the TLS certificate of
	// the certificate authority with the given component id.
	//
	// example:
	//  res, _ := sdk.RenewCATLSCertificate(ctx, "org1ca")
	//  fmt.Println(res.Accepted)
	RenewCATLSCertificate(ctx context.Context, id string) (ActionResponse, errors.SDKError)

	// Peers returns all peers registered with the console.
	//
	// example:
	//  peers, _ := sdk.Peers(ctx)
	//  fmt.Println(peers)
	Peers(ctx context.Context) ([]Peer, errors.SDKError)

	// PeerByName returns the peer whose display name matches name.
	//
	// example:
	//  peer, _ := sdk.PeerByName(ctx, "Org1 Peer")
	//  fmt.Println(peer)
	PeerByName(ctx context.Context, name string) (Peer, errors.SDKError)

	// UpdatePeer updates the crypto configuration of the peer with the given
	// component id and returns the updated peer descriptor.
	//
	// example:
	//  peer, _ := sdk.UpdatePeer(ctx, "org1peer", sdk.PeerUpdate{Crypto: crypto})
	//  fmt.Println(peer)
	UpdatePeer(ctx context.Context, id string, pu PeerUpdate) (Peer, errors.SDKError)

	// RestartPeer submits a restart action for the peer with the given
	// component id.
	//
	// example:
	//  res, _ := sdk.RestartPeer(ctx, "org1peer")
	//  fmt.Println(res.Accepted)
	RestartPeer(ctx context.Context, id string) (ActionResponse, errors.SDKError)
}

type fabricSDK struct {
	consoleURL    string
	authType      string
	apiKey        string
	apiSecret     string
	tokenEndpoint string

	client   *http.Client
	curlFlag bool

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// Config contains sdk configuration parameters.
type Config struct {
	ConsoleURL    string
	AuthType      string
	APIKey        string
	APISecret     string
	TokenEndpoint string

	Timeout         time.Duration
	TLSVerification bool
	CurlFlag        bool
}

// NewSDK returns new Fabric operations console SDK instance.
func NewSDK(conf Config) SDK {
	return &fabricSDK{
		consoleURL:    conf.ConsoleURL,
		authType:      conf.AuthType,
		apiKey:        conf.APIKey,
		apiSecret:     conf.APISecret,
		tokenEndpoint: conf.TokenEndpoint,

		client: &http.Client{
			Timeout: conf.Timeout,
			Transport: otelhttp.NewTransport(&http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			}),
		},
		curlFlag: conf.CurlFlag,
	}
}

// processRequest creates and sends a new HTTP request, and checks for errors in the HTTP response.
// It then returns the response headers, the response body, and the associated error(s) (if any).
func (sdk *fabricSDK) processRequest(ctx context.Context, method, reqURL string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// Sets a default value for the Content-Type.
	// Overridden if Content-Type is passed in the headers arguments.
	req.Header.Add("Content-Type", string(CTJSON))

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	if sdkerr := sdk.authenticate(ctx, req); sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	if sdk.curlFlag {
		curlCommand, err := http2curl.GetCurlCommand(req)
		if err != nil {
			return nil, nil, errors.NewSDKError(err)
		}
		log.Println(curlCommand.String())
	}

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}

func (sdk *fabricSDK) authenticate(ctx context.Context, req *http.Request) errors.SDKError {
	switch sdk.authType {
	case AuthTypeIAM:
		token, sdkerr := sdk.token(ctx)
		if sdkerr != nil {
			return sdkerr
		}
		req.Header.Set("Authorization", BearerPrefix+token)
	default:
		req.SetBasicAuth(sdk.apiKey, sdk.apiSecret)
	}

	return nil
}
