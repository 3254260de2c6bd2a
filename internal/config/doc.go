// Package config provides configuration loading, merging, and validation
// facilities for the service.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// After the HTTP listener is bound, the merged configuration is turned into an
// [Environment]: a read-only property lookup shared by the request handlers.
package config
