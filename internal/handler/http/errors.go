// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport itself, before a request reaches
// a service. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not a JSON object
	// of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when the {id} URL parameter does not fit an
	// int64. The router only lets digits through, so this means overflow.
	ErrInvalidID = errors.New("not found")
)
