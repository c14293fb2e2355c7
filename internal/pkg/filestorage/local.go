package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/logger"
)

// LocalSource reads images from disk or from multipart headers and checks
// their content type by sniffing the bytes.
type LocalSource struct {
	maxSize int64
}

// NewLocalSource returns a source accepting images up to maxSize bytes.
func NewLocalSource(maxSize int64) *LocalSource {
	return &LocalSource{maxSize: maxSize}
}

// Open reads an image from path.
func (s *LocalSource) Open(path string) (*Upload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	return s.Read(f, filepath.Base(path))
}

// FromHeader reads an image from a multipart file header. A nil header means no
// file was sent and yields a nil upload.
func (s *LocalSource) FromHeader(fileHeader *multipart.FileHeader) (*Upload, error) {
	if fileHeader == nil {
		return nil, nil
	}
	if s.maxSize > 0 && fileHeader.Size > s.maxSize {
		return nil, s.tooLarge(fileHeader.Filename)
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer f.Close()

	return s.Read(f, fileHeader.Filename)
}

// Read validates an image streamed from r; name is the client-side filename.
func (s *LocalSource) Read(r io.Reader, name string) (*Upload, error) {
	limit := s.maxSize
	if limit <= 0 {
		limit = 10 << 20
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", name, err)
	}
	if int64(len(data)) > limit {
		return nil, s.tooLarge(name)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, apperrors.NewCustomError(apperrors.ErrUploadRejected,
			fmt.Sprintf("%s is not an image (detected %s)", displayName(name), mtype.String()))
	}

	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = uuid.NewString()
	}
	if filepath.Ext(name) == "" {
		name += mtype.Extension()
	}

	logger.Debug().Str("filename", name).Str("mime", mtype.String()).Int("bytes", len(data)).Msg("Image accepted")
	return &Upload{Filename: name, ContentType: mtype.String(), data: data}, nil
}

func (s *LocalSource) tooLarge(name string) error {
	return apperrors.NewCustomError(apperrors.ErrUploadRejected,
		fmt.Sprintf("%s exceeds the %d byte upload limit", displayName(name), s.maxSize))
}

func displayName(name string) string {
	if name == "" {
		return "file"
	}
	return filepath.Base(name)
}
