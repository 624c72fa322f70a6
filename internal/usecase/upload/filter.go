package upload

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/marcos-nsantos/photo-albums-backend/internal/domain"
	"github.com/marcos-nsantos/photo-albums-backend/internal/pkg/apperror"
)

const (
	DefaultMaxFileSize = 10 << 20

	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeGIF  = "image/gif"
	MimeWebP = "image/webp"

	minSignatureLen = 4
)

var allowedMimeTypes = map[string]bool{
	MimeJPEG: true,
	MimePNG:  true,
	MimeGIF:  true,
	MimeWebP: true,
}

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

var (
	sigJPEG = []byte{0xFF, 0xD8, 0xFF}
	sigPNG  = []byte{0x89, 0x50, 0x4E, 0x47}
	sigGIF  = []byte{0x47, 0x49, 0x46, 0x38}
	sigRIFF = []byte("RIFF")
	sigWEBP = []byte("WEBP")
)

// AcceptedFile is the outcome of a successful acceptance check.
type AcceptedFile struct {
	MimeType  string
	Extension string
	Size      int64
}

type Filter struct {
	maxSize int64
}

func NewFilter(maxSize int64) *Filter {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &Filter{maxSize: maxSize}
}

// Accept runs the checks in a fixed order and reports the first failure.
// It has no side effects.
func (f *Filter) Accept(data []byte, filename, declaredMime string, declaredSize int64) (*AcceptedFile, error) {
	if len(data) == 0 || strings.TrimSpace(filename) == "" {
		return nil, invalidFile("no file provided")
	}

	if declaredSize > f.maxSize || int64(len(data)) > f.maxSize {
		return nil, invalidFile(fmt.Sprintf("file too large: maximum size is %d MB", f.maxSize>>20))
	}

	mime := strings.ToLower(strings.TrimSpace(declaredMime))
	if !allowedMimeTypes[mime] {
		return nil, invalidFile("unsupported file type: only JPEG, PNG, GIF and WebP images are allowed")
	}

	ext := Extension(filename)
	if !allowedExtensions[ext] {
		return nil, invalidFile("unsupported file extension: only .jpg, .jpeg, .png, .gif and .webp are allowed")
	}

	if len(data) < minSignatureLen {
		return nil, invalidFile("file is too small or corrupted")
	}

	sniffed := SniffImageType(data)
	if sniffed == "" {
		return nil, invalidFile("file content is not a valid image")
	}
	if sniffed != mime {
		return nil, invalidFile("file content does not match declared type")
	}

	return &AcceptedFile{MimeType: sniffed, Extension: ext, Size: int64(len(data))}, nil
}

// Extension returns the lowercased text after the last dot of the filename.
// A name without a dot is taken whole, so "JPG" yields "jpg".
func Extension(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		filename = filename[i+1:]
	}
	return strings.ToLower(filename)
}

// SniffImageType returns the MIME type implied by the leading magic bytes, or
// an empty string when none of the supported signatures match.
func SniffImageType(data []byte) string {
	switch {
	case bytes.HasPrefix(data, sigJPEG):
		return MimeJPEG
	case bytes.HasPrefix(data, sigPNG):
		return MimePNG
	case bytes.HasPrefix(data, sigGIF):
		return MimeGIF
	case len(data) >= 12 && bytes.HasPrefix(data, sigRIFF) && bytes.Equal(data[8:12], sigWEBP):
		return MimeWebP
	default:
		return ""
	}
}

func invalidFile(msg string) error {
	return apperror.InvalidFile(msg, domain.ErrInvalidFile)
}
