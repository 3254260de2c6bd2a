// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"sort"
	"strconv"
)

// Property keys served by [Environment].
const (
	KeyLocalServerPort      = "local.server.port"
	KeyServerPort           = "server.port"
	KeyApplicationName      = "spring.application.name"
	KeyCloudClientHostname  = "spring.cloud.client.hostname"
	KeyCloudClientIPAddress = "spring.cloud.client.ip-address"
)

// AbsentValue is how an unset property is rendered in logs and responses.
const AbsentValue = "null"

// Environment is a read-only key to string lookup built once at start-up.
// It is safe for concurrent use because it is never mutated after
// [NewEnvironment] returns.
type Environment struct {
	properties map[string]string
}

// NewEnvironment builds the property set from the merged configuration and
// the port actually bound by the HTTP listener. A non-positive localPort
// leaves local.server.port unset.
func NewEnvironment(cfg *StructuredConfig, localPort int) *Environment {
	properties := make(map[string]string)

	set := func(key, value string) {
		if value != "" {
			properties[key] = value
		}
	}

	set(KeyApplicationName, cfg.App.Name)
	set(KeyCloudClientHostname, cfg.Cloud.Hostname)
	set(KeyCloudClientIPAddress, cfg.Cloud.IPAddress)

	if _, port, err := net.SplitHostPort(cfg.Server.HTTPAddress); err == nil {
		set(KeyServerPort, port)
	}
	if localPort > 0 {
		set(KeyLocalServerPort, strconv.Itoa(localPort))
	}

	return &Environment{properties: properties}
}

// Property returns the value stored under key and whether it is set.
func (e *Environment) Property(key string) (string, bool) {
	value, ok := e.properties[key]
	return value, ok
}

// PropertyOrAbsent returns the value stored under key or [AbsentValue].
func (e *Environment) PropertyOrAbsent(key string) string {
	if value, ok := e.properties[key]; ok {
		return value
	}
	return AbsentValue
}

// Keys returns the set property keys in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.properties))
	for key := range e.properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
