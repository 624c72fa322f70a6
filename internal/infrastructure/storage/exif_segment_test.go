package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/valueobject"
)

var minimalJPEG = []byte{0xFF, 0xD8, 0xFF, 0xD9}

// cyclicIFDs chains IFD0 at 8 to an empty IFD at 14 whose next pointer leads back to 8.
func cyclicIFDs() []byte {
	le := binary.LittleEndian
	buf := new(bytes.Buffer)
	buf.Write([]byte{'I', 'I', 0x2A, 0x00})
	_ = binary.Write(buf, le, uint32(8))
	_ = binary.Write(buf, le, uint16(0))
	_ = binary.Write(buf, le, uint32(14))
	_ = binary.Write(buf, le, uint16(0))
	_ = binary.Write(buf, le, uint32(8))
	return buf.Bytes()
}

// hugeShortTag declares a SHORT tag whose byte length wraps a 32-bit multiply.
func hugeShortTag() []byte {
	le := binary.LittleEndian
	buf := new(bytes.Buffer)
	buf.Write([]byte{'I', 'I', 0x2A, 0x00})
	_ = binary.Write(buf, le, uint32(8))
	_ = binary.Write(buf, le, uint16(1))
	writeIFDEntry(buf, 0x0132, 3, 0x80000001, 0)
	_ = binary.Write(buf, le, uint32(0))
	return buf.Bytes()
}

// oversizedPNG rewrites the IHDR of a tiny PNG to claim w x h pixels and fixes the CRC.
func oversizedPNG(t testing.TB, w, h uint32) []byte {
	t.Helper()
	data := encodePNG(t, solidImage(1, 1, color.White))
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func extractWithin(t testing.TB, e *MetadataExtractor, data []byte, limit time.Duration) storage.ImageMetadata {
	t.Helper()
	done := make(chan storage.ImageMetadata, 1)
	go func() { done <- e.Extract(context.Background(), data) }()

	select {
	case meta := <-done:
		return meta
	case <-time.After(limit):
		t.Fatalf("Extract did not return within %s on a %d byte input", limit, len(data))
		return storage.ImageMetadata{}
	}
}

func TestCheckTIFF(t *testing.T) {
	tests := []struct {
		name    string
		tiff    []byte
		wantErr bool
	}{
		{name: "dates in ifd0 and exif ifd", tiff: buildTIFF("2022:01:02 03:04:05", "2021:07:04 10:30:00")},
		{name: "two ifds pointing at each other", tiff: cyclicIFDs(), wantErr: true},
		{name: "value length overflows", tiff: hugeShortTag(), wantErr: true},
		{name: "bad byte order", tiff: []byte("XX*\x00\x08\x00\x00\x00"), wantErr: true},
		{name: "ifd offset past the end", tiff: []byte("II*\x00\xff\x00\x00\x00"), wantErr: true},
		{name: "truncated header", tiff: []byte("II*"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkTIFF(tt.tiff)
			if tt.wantErr {
				assert.ErrorIs(t, err, errMalformedExif)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("self referencing exif pointer", func(t *testing.T) {
		le := binary.LittleEndian
		buf := new(bytes.Buffer)
		buf.Write([]byte{'I', 'I', 0x2A, 0x00})
		_ = binary.Write(buf, le, uint32(8))
		_ = binary.Write(buf, le, uint16(1))
		writeIFDEntry(buf, tagExifIFD, 4, 1, 8)
		_ = binary.Write(buf, le, uint32(0))

		assert.ErrorIs(t, checkTIFF(buf.Bytes()), errMalformedExif)
	})
}

func TestJPEGExifPayload(t *testing.T) {
	tiff := buildTIFF("2022:01:02 03:04:05", "")

	t.Run("finds app1 block", func(t *testing.T) {
		got, err := jpegExifPayload(withExif(minimalJPEG, tiff))
		require.NoError(t, err)
		assert.Equal(t, tiff, got)
	})

	t.Run("not a jpeg", func(t *testing.T) {
		_, err := jpegExifPayload(encodePNG(t, solidImage(2, 2, color.Black)))
		assert.ErrorIs(t, err, errNoExifSegment)
	})

	t.Run("segment length past the end", func(t *testing.T) {
		_, err := jpegExifPayload([]byte{0xFF, 0xD8, 0xFF, 0xE1, 0xFF, 0xFF, 'E', 'x'})
		assert.ErrorIs(t, err, errMalformedExif)
	})
}

func TestMetadataExtractor_HostileInput(t *testing.T) {
	extractor := NewMetadataExtractor(DefaultMaxPixels, zap.NewNop())

	t.Run("cyclic ifd chain", func(t *testing.T) {
		data := withExif(minimalJPEG, cyclicIFDs())
		require.Len(t, data, 34)

		meta := extractWithin(t, extractor, data, 5*time.Second)

		assert.Nil(t, meta.AcquisitionDate)
		assert.Equal(t, valueobject.DefaultColor, meta.DominantColor)
	})

	t.Run("tag count overflowing the value length", func(t *testing.T) {
		meta := extractWithin(t, extractor, withExif(minimalJPEG, hugeShortTag()), 5*time.Second)

		assert.Nil(t, meta.AcquisitionDate)
		assert.Equal(t, valueobject.DefaultColor, meta.DominantColor)
	})

	t.Run("header claiming 60000x60000 pixels", func(t *testing.T) {
		data := oversizedPNG(t, 60000, 60000)

		_, err := dominantColor(data, DefaultMaxPixels)
		assert.True(t, errors.Is(err, errTooManyPixels))

		meta := extractWithin(t, extractor, data, 5*time.Second)
		assert.Equal(t, valueobject.DefaultColor, meta.DominantColor)
	})

	t.Run("configured pixel cap applies", func(t *testing.T) {
		small := NewMetadataExtractor(100, zap.NewNop())
		data := encodePNG(t, solidImage(50, 50, color.NRGBA{R: 255, A: 255}))

		assert.Equal(t, valueobject.DefaultColor, small.Extract(context.Background(), data).DominantColor)
		assert.Equal(t, "#ff0000", extractor.Extract(context.Background(), data).DominantColor)
	})
}

func FuzzExtract(f *testing.F) {
	f.Add(encodePNG(f, solidImage(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})))
	f.Add(withExif(encodeJPEG(f, solidImage(8, 8, color.White)), buildTIFF("2022:01:02 03:04:05", "2021:07:04 10:30:00")))
	f.Add(withExif(minimalJPEG, cyclicIFDs()))
	f.Add(withExif(minimalJPEG, hugeShortTag()))
	f.Add(oversizedPNG(f, 60000, 60000))
	f.Add([]byte{0xFF, 0xD8, 0xFF})

	extractor := NewMetadataExtractor(1_000_000, zap.NewNop())

	f.Fuzz(func(t *testing.T, data []byte) {
		meta := extractWithin(t, extractor, data, 5*time.Second)

		assert.Regexp(t, `^#[0-9a-f]{6}$`, meta.DominantColor)
	})
}
