// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

// Package main contains the fabricops entry point, a CLI for operating
// Hyperledger Fabric components through the operations console.
package main

import (
	"log"
	"os"

	"github.com/s7santosh/fabricops/cli"
	"github.com/s7santosh/fabricops/config"
	"github.com/s7santosh/fabricops/logger"
	fabsdk "github.com/s7santosh/fabricops/pkg/sdk"
	"github.com/s7santosh/fabricops/rotation"
	"github.com/s7santosh/fabricops/rotation/middleware"
	"github.com/spf13/cobra"
)

func main() {
	var exitCode int
	defer logger.ExitWithError(&exitCode)

	var varsFile string
	var curl bool

	rootCmd := &cobra.Command{
		Use:   "fabricops <command>",
		Short: "Hyperledger Fabric console operations CLI",
		Long: `Operate certificate authorities and peers registered with a Fabric
operations console: enumerate components, renew CA TLS certificates, and
rotate peer crypto configurations.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(varsFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			slogger, err := logger.New(os.Stderr, cfg.LogLevel)
			if err != nil {
				return err
			}

			s := fabsdk.NewSDK(fabsdk.Config{
				ConsoleURL:      cfg.APIEndpoint,
				AuthType:        cfg.APIAuthType,
				APIKey:          cfg.APIKey,
				APISecret:       cfg.APISecret,
				TokenEndpoint:   cfg.APITokenEndpoint,
				Timeout:         cfg.APITimeout,
				TLSVerification: cfg.TLSVerification,
				CurlFlag:        curl,
			})
			cli.SetSDK(s)

			svc := rotation.New(s, rotation.NewFileExporter(cfg.OutputDir))
			svc = middleware.NewLogging(svc, slogger)
			cli.SetService(svc)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&varsFile, "config", "c", "", "Path to the organization vars file")
	rootCmd.PersistentFlags().BoolVarP(&curl, "curl", "x", false, "Convert HTTP requests to cURL commands")

	rootCmd.AddCommand(cli.NewCAsCmd())
	rootCmd.AddCommand(cli.NewPeersCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		exitCode = 1
	}
}
