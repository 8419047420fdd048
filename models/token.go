// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenBody is the only part of a request body the credential resolver looks
// at when no Authorization header is sent.
type TokenBody struct {
	Token string `json:"token"`
}
