// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the catalog needs: the loader reads
// the manifest and chunk files from a bucket, and the scraper uploads freshly built chunks. Both AWS
// S3 and self-hosted MinIO work.
//
// ReadObject and WriteObject are helpers over Client. ReadObject maps a missing key to
// ErrObjectNotFound so callers can tell "absent" apart from transport failures.
//
// The Client interface makes storage easy to mock in tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, "catalog", "data/manifest.json")
package storage
