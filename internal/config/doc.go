// Package config provides configuration loading, merging, and validation
// for the seatable-init commands.
//
// This is the configuration of the tool itself (paths, logging, database
// access for the bootstrap commands). The variables rendered into the
// generated SeaTable files are read separately by the namespace package.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. TOML config file
//  4. Struct defaults
//
// The main entry point is [GetStructuredConfig].
package config
