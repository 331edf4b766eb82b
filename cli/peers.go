// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	fabsdk "github.com/s7santosh/fabricops/pkg/sdk"
	"github.com/spf13/cobra"
)

const (
	update  = "update"
	restart = "restart"
	rotate  = "rotate"

	// Usage strings for peer operations.
	usagePeerGet     = "fabricops peers <name|all> get"
	usagePeerUpdate  = "fabricops peers <name> update <JSON_crypto|@crypto_file>"
	usagePeerRestart = "fabricops peers <name> restart"
	usagePeerRotate  = "fabricops peers <name> rotate <JSON_crypto|@crypto_file>"
)

func NewPeersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peers <name_or_all> <operation> [args...]",
		Short: "Peers management",
		Long: `Format: <name|all> <operation> [additional_args...]

Examples:
  peers all get                             # Get all peers
  peers <name> get                          # Get specific peer by display name
  peers <name> update <JSON_crypto|@file>   # Update a peer's crypto configuration
  peers <name> restart                      # Restart a peer
  peers <name> rotate <JSON_crypto|@file>   # Update crypto and restart in one step`,

		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			peerParams := args[0]
			operation := args[1]
			opArgs := args[2:]

			switch operation {
			case get:
				handlePeerGet(cmd, peerParams, opArgs)
			case update:
				handlePeerUpdate(cmd, peerParams, opArgs)
			case restart:
				handlePeerRestart(cmd, peerParams, opArgs)
			case rotate:
				handlePeerRotate(cmd, peerParams, opArgs)
			default:
				logErrorCmd(*cmd, fmt.Errorf("unknown operation: %s", operation))
			}
		},
	}

	return cmd
}

func handlePeerGet(cmd *cobra.Command, peerParams string, args []string) {
	if len(args) != 0 {
		logUsageCmd(*cmd, usagePeerGet)
		return
	}

	if peerParams == all {
		l, err := sdk.Peers(cmd.Context())
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}
		logJSONCmd(*cmd, l)
		return
	}

	p, err := sdk.PeerByName(cmd.Context(), peerParams)
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	logJSONCmd(*cmd, p)
}

func handlePeerUpdate(cmd *cobra.Command, name string, args []string) {
	if len(args) != 1 {
		logUsageCmd(*cmd, usagePeerUpdate)
		return
	}

	crypto, err := readCrypto(args[0])
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	p, err := sdk.PeerByName(cmd.Context(), name)
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	updated, err := sdk.UpdatePeer(cmd.Context(), p.ID, fabsdk.PeerUpdate{Crypto: crypto})
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	logJSONCmd(*cmd, updated)
}

func handlePeerRestart(cmd *cobra.Command, name string, args []string) {
	if len(args) != 0 {
		logUsageCmd(*cmd, usagePeerRestart)
		return
	}

	p, err := sdk.PeerByName(cmd.Context(), name)
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	res, err := sdk.RestartPeer(cmd.Context(), p.ID)
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	logJSONCmd(*cmd, res)
}

func handlePeerRotate(cmd *cobra.Command, name string, args []string) {
	if len(args) != 1 {
		logUsageCmd(*cmd, usagePeerRotate)
		return
	}

	crypto, err := readCrypto(args[0])
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	updated, err := svc.RotatePeerCrypto(cmd.Context(), name, crypto)
	if err != nil {
		logErrorCmd(*cmd, err)
		return
	}

	logJSONCmd(*cmd, updated)
}

// readCrypto parses the crypto argument, either inline JSON or a @-prefixed
// path to a JSON file.
func readCrypto(arg string) (fabsdk.Crypto, error) {
	data := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		var err error
		data, err = os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return nil, err
		}
	}

	var crypto fabsdk.Crypto
	if err := json.Unmarshal(data, &crypto); err != nil {
		return nil, err
	}

	return crypto, nil
}
