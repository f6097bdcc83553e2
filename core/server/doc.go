// Package server holds the node-level network configuration.
//
// The server exposes the path query surface and the peer synchronization
// endpoints. Everything behind it is protected by the API key middleware when
// a key is configured. The peer list and sync cadence live here too, so the
// aggregated configuration depends only on core packages.
package server
