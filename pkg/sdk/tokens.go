// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/s7santosh/fabricops/pkg/errors"
)

const (
	apikeyGrantType = "urn:ibm:params:oauth:grant-type:apikey"

	// tokenExpiryMargin is subtracted from the reported token lifetime so a
	// token is never used right at its expiry boundary.
	tokenExpiryMargin = time.Minute
)

type tokenRes struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

// token returns a cached IAM access token, exchanging the API key at the
// token endpoint when no valid token is held.
func (sdk *fabricSDK) token(ctx context.Context) (string, errors.SDKError) {
	sdk.mu.Lock()
	defer sdk.mu.Unlock()

	if sdk.accessToken != "" && time.Now().Before(sdk.tokenExpiry) {
		return sdk.accessToken, nil
	}

	form := url.Values{
		"grant_type": {apikeyGrantType},
		"apikey":     {sdk.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sdk.tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.NewSDKError(errors.Wrap(ErrFailedTokenExchange, err))
	}
	req.Header.Set("Content-Type", string(CTForm))
	req.Header.Set("Accept", string(CTJSON))

	resp, err := sdk.client.Do(req)
	if err != nil {
		return "", errors.NewSDKError(errors.Wrap(ErrFailedTokenExchange, err))
	}
	defer resp.Body.Close()

	if sdkerr := errors.CheckError(resp, http.StatusOK); sdkerr != nil {
		return "", sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewSDKError(errors.Wrap(ErrFailedTokenExchange, err))
	}

	var tr tokenRes
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", errors.NewSDKError(errors.Wrap(ErrFailedTokenExchange, err))
	}
	if tr.AccessToken == "" {
		return "", errors.NewSDKError(ErrFailedTokenExchange)
	}

	sdk.accessToken = tr.AccessToken
	sdk.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenExpiryMargin)

	return sdk.accessToken, nil
}
