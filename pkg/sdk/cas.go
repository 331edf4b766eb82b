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

// CertificateAuthority is an opaque certificate authority descriptor as
// returned by the console. Beyond the component id and display name, which
// address follow-up actions, fields are carried verbatim.
type CertificateAuthority map[string]any

// ID returns the component id of the certificate authority.
func (ca CertificateAuthority) ID() string {
	return stringField(ca, "id")
}

// DisplayName returns the display name of the certificate authority.
func (ca CertificateAuthority) DisplayName() string {
	return stringField(ca, "display_name")
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

type renewTLSReq struct {
	Renew renewTLS `json:"renew"`
}

type renewTLS struct {
	TLSCert bool `json:"tls_cert"`
}

func (sdk *fabricSDK) CertificateAuthorities(ctx context.Context) ([]CertificateAuthority, errors.SDKError) {
	url := fmt.Sprintf("%s/%s?deployment_attrs=included&type=%s", sdk.consoleURL, componentsEndpoint, componentTypeCA)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var components []CertificateAuthority
	if err := json.Unmarshal(body, &components); err != nil {
		return nil, errors.NewSDKError(err)
	}

	// The console may return all component types regardless of the filter.
	cas := make([]CertificateAuthority, 0, len(components))
	for _, c := range components {
		if stringField(c, "type") == componentTypeCA {
			cas = append(cas, c)
		}
	}

	return cas, nil
}

func (sdk *fabricSDK) CertificateAuthority(ctx context.Context, id string) (CertificateAuthority, errors.SDKError) {
	if id == "" {
		return CertificateAuthority{}, errors.NewSDKError(errors.ErrMissingID)
	}
	url := fmt.Sprintf("%s/%s/%s?deployment_attrs=included", sdk.consoleURL, componentsEndpoint, id)

	_, body, sdkerr := sdk.processRequest(ctx, http.MethodGet, url, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return CertificateAuthority{}, sdkerr
	}

	var ca CertificateAuthority
	if err := json.Unmarshal(body, &ca); err != nil {
		return CertificateAuthority{}, errors.NewSDKError(err)
	}

	return ca, nil
}

func (sdk *fabricSDK) RenewCATLSCertificate(ctx context.Context, id string) (ActionResponse, errors.SDKError) {
	if id == "" {
		return ActionResponse{}, errors.NewSDKError(errors.ErrMissingID)
	}
	d, err := json.Marshal(renewTLSReq{Renew: renewTLS{TLSCert: true}})
	if err != nil {
		return ActionResponse{}, errors.NewSDKError(err)
	}

	url := fmt.Sprintf("%s/%s/%s/%s/actions", sdk.consoleURL, kubernetesEndpoint, componentTypeCA, id)

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
