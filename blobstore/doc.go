// Package blobstore abstracts where sieve snapshots live.
//
// A BlobStore reads and writes small immutable blobs by name. Local
// filesystem and in-memory implementations live here; S3 (with an optional
// DynamoDB catalog) and MinIO backends live in the s3 and minio
// subpackages.
package blobstore
