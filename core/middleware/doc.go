// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - NoCache: Appends the no-cache response headers (Cache-Control, Pragma,
//     Expires) to every response after the downstream handler has run, so
//     browsers never reuse a stale copy during development.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// These middleware components are designed to be registered globally
// in the main application setup.
package middleware
