// Package minio implements sink.Sink for MinIO and S3-compatible object
// storage, so generated corpora can be published straight to a bucket.
package minio
