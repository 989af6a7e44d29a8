// Package file provides the TOML-backed configuration store and the
// resolved settings that drive the API clients.
package file
