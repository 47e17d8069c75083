// Package blobstore abstracts where reflection files are read from.
//
// Readers only ever consume blobs; nothing in this module writes them.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-process byte slices
//   - s3.Store: Amazon S3, whole-object downloads via the transfer manager
//   - minio.Store: MinIO and other S3-compatible servers
//   - CachingStore: LRU of fetched objects in front of any other store
//
// Use ReadAll to obtain a blob's full contents; it picks the cheapest path
// (Fetcher, Mappable, then ranged ReadAt).
package blobstore
