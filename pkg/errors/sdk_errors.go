// Copyright (c) FabricOps Contributors
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"encoding/json"
	"io"
	"net/http"
)

const errKey = "error"

// ErrJSONErrKey indicates response body did not contain erorr message.
var ErrJSONErrKey = New("response body expected error message json key not found")

// SDKError is an error type for fabricops SDK.
type SDKError interface {
	Error
	StatusCode() int
}

var _ SDKError = (*sdkError)(nil)

type sdkError struct {
	*customError
	statusCode int
}

func (ce *sdkError) Error() string {
	if ce == nil {
		return ""
	}
	if ce.statusCode == 0 {
		return ce.customError.Error()
	}
	return http.StatusText(ce.statusCode) + ": " + ce.customError.Error()
}

func (ce *sdkError) StatusCode() int {
	return ce.statusCode
}

// NewSDKError returns an SDK Error that formats as the given text.
func NewSDKError(err error) SDKError {
	if err == nil {
		return nil
	}

	if ce, ok := err.(*customError); ok {
		return &sdkError{
			customError: ce,
			statusCode:  0,
		}
	}

	return &sdkError{
		customError: &customError{
			msg: err.Error(),
			err: nil,
		},
		statusCode: 0,
	}
}

// NewSDKErrorWithStatus returns an SDK Error setting the status code.
func NewSDKErrorWithStatus(err error, statusCode int) SDKError {
	if err == nil {
		return nil
	}

	if ce, ok := err.(*customError); ok {
		return &sdkError{
			statusCode:  statusCode,
			customError: ce,
		}
	}

	return &sdkError{
		statusCode: statusCode,
		customError: &customError{
			msg: err.Error(),
			err: nil,
		},
	}
}

// CheckError will check the HTTP response status code and matches it with the given status codes.
// Since multiple status codes can be valid, we can pass multiple status codes to the function.
// The function then checks for errors in the HTTP response.
func CheckError(resp *http.Response, expectedStatusCodes ...int) SDKError {
	if resp == nil {
		return nil
	}

	for _, expectedStatusCode := range expectedStatusCodes {
		if resp.StatusCode == expectedStatusCode {
			return nil
		}
	}

	b, bErr := io.ReadAll(resp.Body)
	if bErr != nil {
		return NewSDKErrorWithStatus(bErr, resp.StatusCode)
	}

	var content map[string]interface{}
	if err := json.Unmarshal(b, &content); err != nil {
		return NewSDKErrorWithStatus(err, resp.StatusCode)
	}

	if msg, ok := content["message"]; ok {
		if v, ok := msg.(string); ok {
			return NewSDKErrorWithStatus(New(v), resp.StatusCode)
		}
		return NewSDKErrorWithStatus(ErrJSONErrKey, resp.StatusCode)
	}
	if msg, ok := content[errKey]; ok {
		if v, ok := msg.(string); ok {
			return NewSDKErrorWithStatus(New(v), resp.StatusCode)
		}
		return NewSDKErrorWithStatus(ErrJSONErrKey, resp.StatusCode)
	}

	return NewSDKErrorWithStatus(New(string(b)), resp.StatusCode)
}
