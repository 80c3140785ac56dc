// Package config provides configuration loading, merging, and validation
// facilities for the catalog gateway.
//
// Configuration is assembled from multiple sources; for each field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
