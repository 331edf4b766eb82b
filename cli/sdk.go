// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	fabsdk "github.com/s7santosh/fabricops/pkg/sdk"
	"github.com/s7santosh/fabricops/rotation"
)

// Keep SDK handle in global var.
var sdk fabsdk.SDK

// Keep rotation service handle in global var.
var svc rotation.Service

// SetSDK sets console SDK instance.
func SetSDK(s fabsdk.SDK) {
	sdk = s
}

// SetService sets the rotation service instance.
func SetService(s rotation.Service) {
	svc = s
}
