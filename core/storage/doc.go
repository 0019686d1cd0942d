// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that response bodies can live in an S3 or
// MinIO bucket instead of the local filesystem. The backend is optional and
// disabled by default; when enabled, a response specifier of the form
// s3://<key> names an object in the configured bucket.
//
// # Client Interface
//
// The Client interface exposes only what response resolution needs, which keeps
// it easy to mock in unit tests (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket at startup.
//   - StatObject: Probes whether an object exists, the analogue of a file stat.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "mocks")
package storage
