// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so drift reports can be published to AWS S3
// or a self-hosted MinIO instance as CI artifacts.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (with size and options).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "ci-reports")
package storage
