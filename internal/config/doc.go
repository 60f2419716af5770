// Package config provides configuration loading, merging, and validation
// facilities for the proxy server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables (a .env file in the working directory is
//     loaded first and never overrides variables already set)
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
