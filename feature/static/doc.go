// Package static serves files from the configured root directory.
//
// It is the only feature of the server: a catch-all route backed by Fiber's
// static file handler. The package resolves and validates the serving root
// at load time, then delegates everything per-request — path resolution,
// directory traversal safety, content-type detection, range requests and
// error responses — to the framework's handler.
//
// Cache busting is deliberately not implemented here. The nocache middleware
// (core/middleware/nocache) rewrites the caching headers of every response
// after this feature's handler has run.
//
// # HTTP Endpoints
//
//   - GET /<path> : Returns the file at <path> under the serving root.
//   - GET /       : Returns the configured index file (default index.html).
package static
