// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the organization vars file and environment overrides
// used to reach the Fabric operations console.
package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/s7santosh/fabricops/pkg/errors"
	fabsdk "github.com/s7santosh/fabricops/pkg/sdk"
	"gopkg.in/yaml.v3"
)

var (
	// ErrReadVarsFile indicates that the vars file could not be read.
	ErrReadVarsFile = errors.New("failed to read vars file")

	// ErrParseVarsFile indicates that the vars file could not be parsed.
	ErrParseVarsFile = errors.New("failed to parse vars file")

	// ErrParseEnv indicates that environment overrides could not be parsed.
	ErrParseEnv = errors.New("failed to parse environment configuration")

	// ErrMissingEndpoint indicates a missing console API endpoint.
	ErrMissingEndpoint = errors.New("missing console API endpoint")

	// ErrMissingAPIKey indicates a missing console API key.
	ErrMissingAPIKey = errors.New("missing console API key")

	// ErrMissingAPISecret indicates a missing API secret for basic authentication.
	ErrMissingAPISecret = errors.New("missing console API secret")

	// ErrMissingTokenEndpoint indicates a missing token endpoint for IAM authentication.
	ErrMissingTokenEndpoint = errors.New("missing token endpoint")

	// ErrInvalidAuthType indicates an unsupported authentication type.
	ErrInvalidAuthType = errors.New("invalid auth type")
)

// Config carries the console credentials and orchestration settings. Fields
// mirror the organization vars file, with FABRICOPS_ environment variables
// taking precedence.
type Config struct {
	APIEndpoint      string        `yaml:"api_endpoint"       env:"FABRICOPS_API_ENDPOINT"`
	APIAuthType      string        `yaml:"api_authtype"       env:"FABRICOPS_API_AUTHTYPE"`
	APIKey           string        `yaml:"api_key"            env:"FABRICOPS_API_KEY"`
	APISecret        string        `yaml:"api_secret"         env:"FABRICOPS_API_SECRET"`
	APITokenEndpoint string        `yaml:"api_token_endpoint" env:"FABRICOPS_API_TOKEN_ENDPOINT"`
	APITimeout       time.Duration `yaml:"api_timeout"        env:"FABRICOPS_API_TIMEOUT"`
	TLSVerification  bool          `yaml:"tls_verification"   env:"FABRICOPS_TLS_VERIFICATION"`

	Organization string `yaml:"organization" env:"FABRICOPS_ORGANIZATION"`
	PeerName     string `yaml:"peer_name"    env:"FABRICOPS_PEER_NAME"`
	CryptoPath   string `yaml:"crypto_path"  env:"FABRICOPS_CRYPTO_PATH"`

	OutputDir string `yaml:"output_dir" env:"FABRICOPS_OUTPUT_DIR"`
	LogLevel  string `yaml:"log_level"  env:"FABRICOPS_LOG_LEVEL"`
}

func defaults() Config {
	return Config{
		APIAuthType:     fabsdk.AuthTypeBasic,
		APITimeout:      60 * time.Second,
		TLSVerification: true,
		OutputDir:       ".",
		LogLevel:        "info",
	}
}

// Load reads the vars file at path, if any, and applies environment
// overrides on top of it.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(ErrReadVarsFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(ErrParseVarsFile, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(ErrParseEnv, err)
	}

	return cfg, nil
}

// Validate checks that the configuration is sufficient for the selected
// authentication type.
func (cfg Config) Validate() error {
	if cfg.APIEndpoint == "" {
		return ErrMissingEndpoint
	}
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}

	switch cfg.APIAuthType {
	case fabsdk.AuthTypeBasic:
		if cfg.APISecret == "" {
			return ErrMissingAPISecret
		}
	case fabsdk.AuthTypeIAM:
		if cfg.APITokenEndpoint == "" {
			return ErrMissingTokenEndpoint
		}
	default:
		return errors.Wrap(ErrInvalidAuthType, errors.New(cfg.APIAuthType))
	}

	return nil
}
