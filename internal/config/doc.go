// Package config manages user-level settings stored at ~/.llmtxt/config.yaml.
// Values can also come from LLMTXT_* environment variables, e.g.
// LLMTXT_SERVE_PORT for serve.port. Unset keys fall back to Defaults.
package config
