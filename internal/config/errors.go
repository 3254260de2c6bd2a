// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot be used to start the service.
var (
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, a malformed listen address or a non-positive timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty application name or an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port number must be in range 0-65535")
	errHostFormat    = errors.New("host must be `localhost` or an IP-address")
)

var errNoNonLoopbackAddress = errors.New("no non-loopback IPv4 address found")
