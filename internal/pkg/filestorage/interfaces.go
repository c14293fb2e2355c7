package filestorage

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Upload is an image read into memory and ready to be sent as a multipart part.
type Upload struct {
	Filename    string
	ContentType string
	data        []byte
}

// Size returns the number of bytes.
func (u *Upload) Size() int64 { return int64(len(u.data)) }

// Reader returns a fresh reader over the content, so a request can be retried
// by the transport.
func (u *Upload) Reader() io.Reader { return bytes.NewReader(u.data) }

// Source turns operator input into validated image uploads.
type Source interface {
	// Open reads an image from the local filesystem.
	Open(path string) (*Upload, error)

	// FromHeader reads an image received in a multipart request.
	FromHeader(fileHeader *multipart.FileHeader) (*Upload, error)

	// Read reads an image from r.
	Read(r io.Reader, name string) (*Upload, error)
}
