// Package storage abstracts where gallery media lives. Two drivers ship:
//
//   - "local" — local filesystem (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Boot once at startup:
//
//	storage.Connect()
//
// then write and resolve media:
//
//	storage.Put("gallery/bottle.jpg", data)
//	url := storage.URL("gallery/bottle.jpg")
package storage

import "io"

// Disk is the driver interface. It covers exactly what the gallery module
// needs: write, read, existence, public URL and delete.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for path. Caller closes it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// URL returns the public URL for path.
	URL(path string) string

	// Delete removes the file. Deleting a missing file is not an error.
	Delete(path string) error
}
