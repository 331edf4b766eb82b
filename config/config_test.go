// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/s7santosh/fabricops/config"
	"github.com/s7santosh/fabricops/pkg/errors"
	fabsdk "github.com/s7santosh/fabricops/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const varsFile = `---
api_endpoint: https://console.example.com
api_authtype: basic
api_key: org1admin
api_secret: org1adminpw
api_timeout: 30s
organization: Org1
peer_name: Org1 Peer
crypto_path: crypto.json
output_dir: /tmp/fabricops
`

func writeVarsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "org1-vars.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cases := []struct {
		desc    string
		vars    string
		envs    map[string]string
		cfg     config.Config
		err     error
		missing bool
	}{
		{
			desc: "load vars file",
			vars: varsFile,
			cfg: config.Config{
				APIEndpoint:     "https://console.example.com",
				APIAuthType:     fabsdk.AuthTypeBasic,
				APIKey:          "org1admin",
				APISecret:       "org1adminpw",
				APITimeout:      30 * time.Second,
				TLSVerification: true,
				Organization:    "Org1",
				PeerName:        "Org1 Peer",
				CryptoPath:      "crypto.json",
				OutputDir:       "/tmp/fabricops",
				LogLevel:        "info",
			},
		},
		{
			desc: "environment overrides vars file",
			vars: varsFile,
			envs: map[string]string{
				"FABRICOPS_API_KEY":    "ops",
				"FABRICOPS_API_SECRET": "opspw",
				"FABRICOPS_LOG_LEVEL":  "debug",
			},
			cfg: config.Config{
				APIEndpoint:     "https://console.example.com",
				APIAuthType:     fabsdk.AuthTypeBasic,
				APIKey:          "ops",
				APISecret:       "opspw",
				APITimeout:      30 * time.Second,
				TLSVerification: true,
				Organization:    "Org1",
				PeerName:        "Org1 Peer",
				CryptoPath:      "crypto.json",
				OutputDir:       "/tmp/fabricops",
				LogLevel:        "debug",
			},
		},
		{
			desc: "defaults apply without vars file",
			cfg: config.Config{
				APIAuthType:     fabsdk.AuthTypeBasic,
				APITimeout:      60 * time.Second,
				TLSVerification: true,
				OutputDir:       ".",
				LogLevel:        "info",
			},
		},
		{
			desc:    "missing vars file",
			missing: true,
			err:     config.ErrReadVarsFile,
		},
		{
			desc: "malformed vars file",
			vars: "api_endpoint: [",
			err:  config.ErrParseVarsFile,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			for k, v := range tc.envs {
				t.Setenv(k, v)
			}

			path := ""
			switch {
			case tc.missing:
				path = filepath.Join(t.TempDir(), "nonexistent.yml")
			case tc.vars != "":
				path = writeVarsFile(t, tc.vars)
			}

			cfg, err := config.Load(path)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), "expected %s got %s", tc.err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		APIEndpoint: "https://console.example.com",
		APIAuthType: fabsdk.AuthTypeBasic,
		APIKey:      "org1admin",
		APISecret:   "org1adminpw",
	}

	cases := []struct {
		desc   string
		mutate func(cfg config.Config) config.Config
		err    error
	}{
		{
			desc:   "valid basic config",
			mutate: func(cfg config.Config) config.Config { return cfg },
		},
		{
			desc: "valid iam config",
			mutate: func(cfg config.Config) config.Config {
				cfg.APIAuthType = fabsdk.AuthTypeIAM
				cfg.APISecret = ""
				cfg.APITokenEndpoint = "https://iam.example.com/identity/token"
				return cfg
			},
		},
		{
			desc: "missing endpoint",
			mutate: func(cfg config.Config) config.Config {
				cfg.APIEndpoint = ""
				return cfg
			},
			err: config.ErrMissingEndpoint,
		},
		{
			desc: "missing api key",
			mutate: func(cfg config.Config) config.Config {
				cfg.APIKey = ""
				return cfg
			},
			err: config.ErrMissingAPIKey,
		},
		{
			desc: "missing api secret for basic auth",
			mutate: func(cfg config.Config) config.Config {
				cfg.APISecret = ""
				return cfg
			},
			err: config.ErrMissingAPISecret,
		},
		{
			desc: "missing token endpoint for iam auth",
			mutate: func(cfg config.Config) config.Config {
				cfg.APIAuthType = fabsdk.AuthTypeIAM
				return cfg
			},
			err: config.ErrMissingTokenEndpoint,
		},
		{
			desc: "unsupported auth type",
			mutate: func(cfg config.Config) config.Config {
				cfg.APIAuthType = "oauth"
				return cfg
			},
			err: config.ErrInvalidAuthType,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.mutate(valid).Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Contains(err, tc.err), "expected %s got %s", tc.err, err)
		})
	}
}
