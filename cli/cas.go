// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	all      = "all"
	get      = "get"
	renewTLS = "renew-tls"

	// Usage strings for certificate authority operations.
	usageCAGet      = "fabricops cas <ca_id|all> get"
	usageCARenewTLS = "fabricops cas <ca_id|all> renew-tls"
)

func NewCAsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cas <ca_id_or_all> <operation>",
		Short: "Certificate authorities management",
		Long: `Format: <ca_id|all> <operation>

Examples:
  cas all get              # Get all certificate authorities
  cas <ca_id> get          # Get specific certificate authority
  cas all renew-tls        # Renew the TLS certificate of every certificate authority
  cas <ca_id> renew-tls    # Renew the TLS certificate of a specific certificate authority`,

		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			caParams := args[0]
			operation := args[1]
			opArgs := args[2:]

			switch operation {
			case get:
				handleCAGet(cmd, caParams, opArgs)
			case renewTLS:
				handleCARenewTLS(cmd, caParams, opArgs)
			default:
				logErrorCmd(*cmd, fmt.Errorf("unknown operation: %s", operation))
			}
		},
	}

	return cmd
}

func handleCAGet(cmd *cobra.Command, caParams string, args []string) {
	if len(args) != 0 {
		logUsageCmd(*cmd, usageCAGet)
		return
	}

	if caParams == all {
		l, err := sdk.CertificateAuthorities(cmd.Context())
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}
		logJSONCmd(*cmd, l)
		return
	}

	ca, err := sdk.CertificateAuthority(cmd.Context(), caParams)
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	logJSONCmd(*cmd, ca)
}

func handleCARenewTLS(cmd *cobra.Command, caParams string, args []string) {
	if len(args) != 0 {
		logUsageCmd(*cmd, usageCARenewTLS)
		return
	}

	if caParams == all {
		report, err := svc.RenewAllCATLS(cmd.Context())
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}
		logJSONCmd(*cmd, report)
		return
	}

	res, err := sdk.RenewCATLSCertificate(cmd.Context(), caParams)
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	logJSONCmd(*cmd, res)
}
