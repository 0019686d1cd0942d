// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the mock handler.
//
// # Components
//
//   - RayID: Assigns a unique Request ID (RayID) to every incoming request,
//     injecting it into the context and the X-Ray-ID response header for tracing.
//   - RequestLog: Logs method, path, client ip, status and latency of every
//     request through Zap, tagged with the RayID.
//
// CORS is provided by Fiber's own cors middleware and is wired directly in cmd.
// Register RayID first so that everything after it can be correlated.
package middleware
