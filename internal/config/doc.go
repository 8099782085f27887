// Package config provides configuration loading, merging, and validation
// for readersim.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (READERSIM_*)
//  3. JSON config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The chain is resolved exactly once, before the engine is constructed; the
// rest of the application only ever sees the final immutable value. The main
// entry point is [GetConfig].
package config
