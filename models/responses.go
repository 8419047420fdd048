// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is returned by registration, login and token regeneration.
type TokenResponse struct {
	Token string `json:"token"`
}

// SuccessResponse is returned by delete endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
