package storage

import (
	"context"
	"io"
)

// Object is a stored blob opened for reading.
type Object struct {
	Body          io.ReadCloser
	ContentLength int64
}

// ImageStorage is the blob store holding article images. Articles own their
// blobs: deleting an article releases its key here.
type ImageStorage interface {
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
}
