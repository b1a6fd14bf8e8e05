package metadata

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

// Common errors returned by Reader.Read.
var (
	ErrFileNotFound = errors.New("file does not exist")
	ErrNoMetadata   = errors.New("EXIF metadata not found")
	ErrDecode       = errors.New("failed to decode EXIF metadata")
)

// headerSize is the number of bytes goexif reads to sniff the container.
const headerSize = 4

// introMarkerMsg is reported by goexif when the first APP1 segment does not
// carry EXIF, for example an XMP-only segment.
const introMarkerMsg = "failed to find exif intro marker"

// Reader opens image files and decodes their EXIF metadata.
type Reader struct {
	source Source       // source is used to open the image files
	log    *slog.Logger // log is the logger for diagnostic output
}

// NewReader creates a Reader backed by the given Source.
func NewReader(source Source, log *slog.Logger) *Reader {
	return &Reader{source: source, log: log}
}

// RegisterMakerNotes enables decoding of vendor maker notes (Canon, Nikon)
// for every subsequent Read. The goexif parser registry is process wide,
// so this is called once at startup.
func RegisterMakerNotes() {
	exif.RegisterParsers(mknote.All...)
}

// Read opens the file at path and decodes its metadata. The file is closed
// before Read returns. The returned error wraps ErrFileNotFound,
// ErrNoMetadata or ErrDecode.
func (r *Reader) Read(ctx context.Context, path string) (*Handle, error) {
	r.log.DebugContext(ctx, "Reading metadata", "path", path)

	file, err := r.source.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer file.Close()

	buf := bufio.NewReader(file)
	if _, err = buf.Peek(headerSize); err != nil {
		if !isNoMetadata(err) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		r.log.DebugContext(ctx, "File too short to carry metadata", "path", path, "error", err)
		return nil, ErrNoMetadata
	}

	data, err := exif.Decode(buf)
	if err != nil {
		if isNoMetadata(err) {
			return nil, ErrNoMetadata
		}
		if data == nil || exif.IsCriticalError(err) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		r.log.DebugContext(ctx, "Metadata decoded with non-critical errors", "path", path, "error", err)
	}

	return &Handle{exif: data}, nil
}

// isNoMetadata reports whether a decode error means the file simply has no
// EXIF segment.
func isNoMetadata(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	return strings.Contains(err.Error(), introMarkerMsg)
}
