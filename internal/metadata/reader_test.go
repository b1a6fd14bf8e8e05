package metadata_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/metamap/internal/metadata"
	"github.com/UnknownOlympus/metamap/internal/metadata/exiftest"
	"github.com/UnknownOlympus/metamap/internal/models"
	"github.com/UnknownOlympus/metamap/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(source metadata.Source) *metadata.Reader {
	return metadata.NewReader(source, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestReader_Read(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	reader := newReader(metadata.OSSource{})
	ctx := context.Background()

	t.Run("file does not exist", func(t *testing.T) {
		handle, err := reader.Read(ctx, filepath.Join(dir, "missing.jpg"))

		require.ErrorIs(t, err, metadata.ErrFileNotFound)
		assert.Nil(t, handle)
	})

	t.Run("file without metadata", func(t *testing.T) {
		file := filet.TmpFile(t, dir, string(exiftest.NoMetadata()))

		handle, err := reader.Read(ctx, file.Name())

		require.ErrorIs(t, err, metadata.ErrNoMetadata)
		assert.Nil(t, handle)
	})

	t.Run("empty file", func(t *testing.T) {
		file := filet.TmpFile(t, dir, "")

		handle, err := reader.Read(ctx, file.Name())

		require.ErrorIs(t, err, metadata.ErrNoMetadata)
		assert.Nil(t, handle)
	})

	t.Run("file shorter than a header", func(t *testing.T) {
		file := filet.TmpFile(t, dir, string([]byte{0xFF, 0xD8}))

		handle, err := reader.Read(ctx, file.Name())

		require.ErrorIs(t, err, metadata.ErrNoMetadata)
		assert.Nil(t, handle)
	})

	t.Run("xmp only segment", func(t *testing.T) {
		file := filet.TmpFile(t, dir, string(exiftest.XMPOnly()))

		handle, err := reader.Read(ctx, file.Name())

		require.ErrorIs(t, err, metadata.ErrNoMetadata)
		assert.Nil(t, handle)
	})

	t.Run("corrupt exif segment", func(t *testing.T) {
		file := filet.TmpFile(t, dir, string(exiftest.CorruptTIFF()))

		handle, err := reader.Read(ctx, file.Name())

		require.ErrorIs(t, err, metadata.ErrDecode)
		require.NotErrorIs(t, err, metadata.ErrNoMetadata)
		assert.Nil(t, handle)
	})

	t.Run("broken interop directory", func(t *testing.T) {
		fixture := exiftest.JPEG(exiftest.Options{GPS: exiftest.Pittsburgh(), BrokenInterop: true})
		file := filet.TmpFile(t, dir, string(fixture))

		handle, err := reader.Read(ctx, file.Name())

		require.NoError(t, err)
		require.NotNil(t, handle)
		gps := handle.GPS()
		assert.True(t, gps.Latitude.Ok())
		assert.True(t, gps.Longitude.Ok())
		assert.Equal(t, models.West, gps.LongitudeRef.Value)
	})

	t.Run("file with gps data", func(t *testing.T) {
		file := filet.TmpFile(t, dir, string(exiftest.JPEG(exiftest.Options{GPS: exiftest.Pittsburgh()})))

		handle, err := reader.Read(ctx, file.Name())

		require.NoError(t, err)
		require.NotNil(t, handle)
		gps := handle.GPS()
		assert.True(t, gps.Latitude.Ok())
		assert.Equal(t, models.North, gps.LatitudeRef.Value)
		assert.Equal(t, models.West, gps.LongitudeRef.Value)
	})
}

func TestReader_ReadOpenError(t *testing.T) {
	source := mocks.NewSource(t)
	source.On("Open", "locked.jpg").Return(nil, assert.AnError).Once()

	handle, err := newReader(source).Read(context.Background(), "locked.jpg")

	require.ErrorIs(t, err, metadata.ErrDecode)
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, handle)
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestReader_ReadClosesFile(t *testing.T) {
	body := &closeRecorder{Reader: bytes.NewReader(exiftest.JPEG(exiftest.Options{Make: "Canon"}))}
	source := mocks.NewSource(t)
	source.On("Open", "photo.jpg").Return(body, nil).Once()

	handle, err := newReader(source).Read(context.Background(), "photo.jpg")

	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.True(t, body.closed)
}
