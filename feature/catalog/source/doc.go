// Package source abstracts where catalog files come from.
//
// A catalog is a manifest.json plus the chunk files it lists, all addressed by name relative to a
// data root. Three sources exist:
//
//   - StorageSource: a MinIO/S3 bucket, objects under a key prefix (default "data").
//   - HTTPSource: a static web server, fetched with resty.
//   - DirSource: a local directory, as written by the scrape command.
//
// Every source maps a missing file to ErrNotFound; HTTP failures other than 404 surface as
// *StatusError.
package source
