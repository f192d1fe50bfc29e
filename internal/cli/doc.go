// Package cli defines the Cobra command tree for the llmtxt CLI. Each file
// in this package registers one top-level command (generate, validate, serve,
// etc.) with the root command. Commands delegate to internal packages for
// reading tables and rendering manifests and only handle flags, output
// formatting, and exit status.
package cli
