// Package cli defines the Cobra command tree for the civix CLI. Each file
// in this package registers one top-level command (generate:module, licenses,
// config, version) with the root command. Command implementations delegate to
// internal packages for business logic and only handle flag parsing, defaults,
// and output formatting.
package cli
