// Package secret resolves credential references in configuration
// values so deployments never embed literal API keys.
//
// Two reference forms are supported:
//   - Environment expansion: "${OPENAI_API_KEY}" expands strictly; a
//     missing variable is an error, not an empty string.
//   - Provider references: "secretref:<provider>:<ref>" resolves
//     through a registered Provider. The env provider ships built in.
//
// Plain literals pass through unchanged, so callers can run every
// configured credential through Resolve unconditionally.
package secret
