// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the service
// needs: bucket checks, uploads of fair media, listing and removal. Both AWS S3
// and self-hosted MinIO instances are supported.
//
// The Client interface keeps storage interactions mockable in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
//	_, err = client.PutObject(ctx, bucket, storage.ObjectPath("media", imgID), r, size, opts)
package storage
