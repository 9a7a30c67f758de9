// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structure and derived values for server
// settings such as the listen address.
//
// # Configuration
//
// The Config struct defines the HTTP port, the serving root directory, and
// the index file name. Defaults are port 8080 and the process working
// directory.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the static feature to locate its serving root.
package server
