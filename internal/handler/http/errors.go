// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMissingRequestHeader is reported when a route requires a header that
// the request does not carry.
var ErrMissingRequestHeader = errors.New("required request header is not present")
