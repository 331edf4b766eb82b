// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package errors

var (
	// ErrMalformedEntity indicates a malformed entity specification.
	ErrMalformedEntity = New("malformed entity specification")

	// ErrUnsupportedContentType indicates invalid content type.
	ErrUnsupportedContentType = New("invalid content type")

	// ErrUnidentified indicates unidentified error.
	ErrUnidentified = New("unidentified error")

	// ErrEmptyPath indicates empty file path.
	ErrEmptyPath = New("empty file path")

	// ErrAuthentication indicates failure occurred while authenticating against the console.
	ErrAuthentication = New("failed to perform authentication against the console")

	// ErrMissingID indicates a missing component identifier.
	ErrMissingID = New("missing component id")

	// ErrMissingName indicates a missing component display name.
	ErrMissingName = New("missing component display name")
)
