package storage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	maxIFDs       = 8
	maxIFDEntries = 512
	maxExifTags   = 2048

	tagExifIFD    = 0x8769
	tagGPSIFD     = 0x8825
	tagInteropIFD = 0xA005
)

var (
	errNoExifSegment = errors.New("no exif segment")
	errMalformedExif = errors.New("malformed exif")

	exifHeader = []byte("Exif\x00\x00")
)

// exifTypeSizes maps TIFF field types to their element size in bytes.
var exifTypeSizes = map[uint16]uint64{
	1: 1, 2: 1, 3: 2, 4: 4, 5: 8, 6: 1,
	7: 1, 8: 2, 9: 4, 10: 8, 11: 4, 12: 8,
}

// jpegExifPayload walks the JPEG marker segments up to the start of scan and
// returns the TIFF block of the first APP1 Exif segment.
func jpegExifPayload(data []byte) ([]byte, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, errNoExifSegment
	}

	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return nil, errNoExifSegment
		}
		marker := data[pos+1]
		if marker == 0xFF {
			pos++
			continue
		}
		if marker == 0xD9 || marker == 0xDA {
			return nil, errNoExifSegment
		}
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			pos += 2
			continue
		}

		segLen := int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
		if segLen < 2 || pos+2+segLen > len(data) {
			return nil, errMalformedExif
		}
		payload := data[pos+4 : pos+2+segLen]
		if marker == 0xE1 && bytes.HasPrefix(payload, exifHeader) {
			return payload[len(exifHeader):], nil
		}
		pos += 2 + segLen
	}

	return nil, errNoExifSegment
}

// checkTIFF verifies that every IFD reachable from the header, including the
// Exif, GPS and interoperability sub-directories, lies inside the block, is
// visited once, and only declares values that fit in the block.
func checkTIFF(tiff []byte) error {
	if len(tiff) < 8 {
		return errMalformedExif
	}

	var order binary.ByteOrder
	switch string(tiff[:4]) {
	case "II*\x00":
		order = binary.LittleEndian
	case "MM\x00*":
		order = binary.BigEndian
	default:
		return errMalformedExif
	}

	w := &tiffWalker{data: tiff, order: order, visited: make(map[uint32]struct{})}

	offset := order.Uint32(tiff[4:8])
	for offset != 0 {
		next, err := w.dir(offset)
		if err != nil {
			return err
		}
		offset = next
	}
	return nil
}

type tiffWalker struct {
	data    []byte
	order   binary.ByteOrder
	visited map[uint32]struct{}
	tags    int
}

func (w *tiffWalker) dir(offset uint32) (uint32, error) {
	if _, seen := w.visited[offset]; seen {
		return 0, fmt.Errorf("%w: ifd at %d visited twice", errMalformedExif, offset)
	}
	if len(w.visited) >= maxIFDs {
		return 0, fmt.Errorf("%w: more than %d ifds", errMalformedExif, maxIFDs)
	}
	w.visited[offset] = struct{}{}

	size := uint64(len(w.data))
	if uint64(offset)+2 > size {
		return 0, errMalformedExif
	}
	count := uint64(w.order.Uint16(w.data[offset:]))
	if count > maxIFDEntries {
		return 0, fmt.Errorf("%w: %d entries in one ifd", errMalformedExif, count)
	}
	end := uint64(offset) + 2 + 12*count
	if end+4 > size {
		return 0, errMalformedExif
	}

	w.tags += int(count)
	if w.tags > maxExifTags {
		return 0, fmt.Errorf("%w: more than %d tags", errMalformedExif, maxExifTags)
	}

	var subDirs []uint32
	for i := uint64(0); i < count; i++ {
		entry := w.data[uint64(offset)+2+12*i:][:12]
		tag := w.order.Uint16(entry[0:])
		typ := w.order.Uint16(entry[2:])
		n := uint64(w.order.Uint32(entry[4:]))

		typeSize, ok := exifTypeSizes[typ]
		if !ok {
			return 0, fmt.Errorf("%w: unknown field type %d", errMalformedExif, typ)
		}
		valLen := typeSize * n
		if valLen > size {
			return 0, fmt.Errorf("%w: tag %#x declares %d values", errMalformedExif, tag, n)
		}
		if valLen > 4 && uint64(w.order.Uint32(entry[8:]))+valLen > size {
			return 0, fmt.Errorf("%w: tag %#x points past the segment", errMalformedExif, tag)
		}

		if (tag == tagExifIFD || tag == tagGPSIFD || tag == tagInteropIFD) && n >= 1 {
			switch typ {
			case 3:
				subDirs = append(subDirs, uint32(w.order.Uint16(entry[8:])))
			case 4, 9:
				subDirs = append(subDirs, w.order.Uint32(entry[8:]))
			}
		}
	}

	for _, sub := range subDirs {
		if _, err := w.dir(sub); err != nil {
			return 0, err
		}
	}

	return w.order.Uint32(w.data[end:]), nil
}
