// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so snapshot
// storage can be mocked in tests (see core/storage/mocks). Both AWS S3 and
// self-hosted MinIO endpoints are supported.
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the snapshot bucket exists.
//   - PutObject / GetObject: upload and download snapshots.
//   - ListObjects: list snapshots under a prefix.
//   - RemoveObject: delete a snapshot.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
