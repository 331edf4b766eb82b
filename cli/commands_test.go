// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// CRUD and common commands
const (
	getCmd     = "get"
	updateCmd  = "update"
	allCmd     = "all"
	extraArg   = "extra-arg"
	unknownCmd = "unknown"
)

// Certificate authority commands
const renewTLSCmd = "renew-tls"

// Peer commands
const (
	restartCmd = "restart"
	rotateCmd  = "rotate"
)

type outputLog uint8

const (
	usageLog outputLog = iota
	errLog
	entityLog
	okLog
)

func setFlags(cmd *cobra.Command) *cobra.Command {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return cmd
}

func executeCommand(t *testing.T, rootCmd *cobra.Command, args ...string) string {
	t.Helper()

	buffer := new(bytes.Buffer)
	rootCmd.SetOut(buffer)
	rootCmd.SetErr(buffer)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())

	return buffer.String()
}
