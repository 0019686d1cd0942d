// Package mock serves one configurable route with a fixed response.
//
// # Response Resolution
//
// The Resolver decides, on every request, what the configured response
// specifier stands for:
//
//   - An existing regular file: its raw bytes, typed by extension
//     (.json, .txt, .html, anything else is application/octet-stream).
//     A .json file must hold valid JSON or the request fails.
//   - An s3://<key> object, when object storage is enabled: same rules as a file.
//   - Anything else: the specifier itself, as application/json when it parses
//     as JSON and text/plain otherwise.
//
// Nothing is cached. A literal that happens to match a file name on disk is
// served as that file.
//
// # HTTP Endpoint
//
//   - ANY <endpoint> : the resolved response with the configured status, or a
//     500 with a fixed plain-text message when the source file is unreadable or
//     holds invalid JSON.
package mock
