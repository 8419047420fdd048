// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the payloads accepted by the blog API before they
// reach storage: credentials, article, comment and category requests.
//
// Services call Validate after authorization, so a caller who may not act on
// a resource never learns whether the payload was well-formed.
package validators

import "context"

// Validator validates a payload accepted by the API.
type Validator interface {
	Validate(ctx context.Context, value any) error
}
