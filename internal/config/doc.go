// Package config provides configuration loading, merging, and validation
// facilities for the gateway, its CLI and the local session server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (path from ATS_CONFIG or -c/--config)
//  3. Environment variables (prefix ATS_)
//  4. Command-line flags
//
// The main entry point is [Load].
package config
