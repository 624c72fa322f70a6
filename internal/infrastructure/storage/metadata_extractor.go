package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"github.com/marcos-nsantos/photo-albums-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-albums-backend/internal/domain/valueobject"
)

const (
	colorSampleWidth  = 200
	colorSampleHeight = 200
	exifDateLayout    = "2006:01:02 15:04:05"
	exifTimeout       = 2 * time.Second

	DefaultMaxPixels = 50_000_000
)

var (
	errNoExifDate    = errors.New("no exif date")
	errTooManyPixels = errors.New("image exceeds pixel limit")
)

type MetadataExtractor struct {
	maxPixels int64
	logger    *zap.Logger
}

// NewMetadataExtractor refuses to decode images whose header declares more
// than maxPixels pixels; zero or less selects DefaultMaxPixels.
func NewMetadataExtractor(maxPixels int64, logger *zap.Logger) *MetadataExtractor {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &MetadataExtractor{maxPixels: maxPixels, logger: logger}
}

// Extract never fails: a missing capture date is reported as nil and an
// undecodable image yields the default color.
func (e *MetadataExtractor) Extract(ctx context.Context, data []byte) storage.ImageMetadata {
	meta := storage.ImageMetadata{DominantColor: valueobject.DefaultColor}

	if ts, err := e.captureDate(ctx, data); err == nil {
		meta.AcquisitionDate = &ts
	} else {
		e.logger.Debug("no embedded capture date", zap.Error(err))
	}

	color, err := dominantColor(data, e.maxPixels)
	if err != nil {
		e.logger.Warn("dominant color extraction failed", zap.Error(err))
		return meta
	}
	meta.DominantColor = color

	return meta
}

// captureDate only hands goexif a TIFF block that passed checkTIFF, and
// gives up when the deadline passes.
func (e *MetadataExtractor) captureDate(ctx context.Context, data []byte) (time.Time, error) {
	tiff, err := jpegExifPayload(data)
	if err != nil {
		return time.Time{}, err
	}
	if err := checkTIFF(tiff); err != nil {
		return time.Time{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, exifTimeout)
	defer cancel()

	type result struct {
		ts  time.Time
		err error
	}
	done := make(chan result, 1)
	go func() {
		ts, err := parseCaptureDate(tiff)
		done <- result{ts: ts, err: err}
	}()

	select {
	case r := <-done:
		return r.ts, r.err
	case <-ctx.Done():
		e.logger.Warn("exif parsing abandoned", zap.Error(ctx.Err()))
		return time.Time{}, ctx.Err()
	}
}

func parseCaptureDate(tiff []byte) (time.Time, error) {
	x, err := exif.Decode(bytes.NewReader(tiff))
	if err != nil {
		return time.Time{}, fmt.Errorf("decoding exif: %w", err)
	}

	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		raw, err := tag.StringVal()
		if err != nil {
			continue
		}
		raw = strings.TrimRight(strings.TrimSpace(raw), "\x00")
		ts, err := time.ParseInLocation(exifDateLayout, raw, time.UTC)
		if err != nil {
			continue
		}
		return ts, nil
	}

	return time.Time{}, errNoExifDate
}

func dominantColor(data []byte, maxPixels int64) (string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("reading image header: %w", err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > maxPixels {
		return "", fmt.Errorf("%w: %dx%d", errTooManyPixels, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	sample := imaging.Fit(img, colorSampleWidth, colorSampleHeight, imaging.Lanczos)
	b := sample.Bounds()
	pixels := b.Dx() * b.Dy()
	if pixels == 0 {
		return "", errors.New("empty image")
	}

	var r, g, bl float64
	for y := 0; y < b.Dy(); y++ {
		row := sample.Pix[y*sample.Stride : y*sample.Stride+b.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			r += float64(row[i])
			g += float64(row[i+1])
			bl += float64(row[i+2])
		}
	}

	n := float64(pixels)
	return valueobject.NewRGBFromMeans(r/n, g/n, bl/n).Hex(), nil
}
