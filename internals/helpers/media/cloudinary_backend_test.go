package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestUploadFailsOnUnreadableImage(t *testing.T) {
	b := &CloudinaryBackend{encodeWebP: true}

	// the read error must fail this file rather than fall back to a
	// partially consumed reader
	_, err := b.Upload(context.Background(), brokenReader{}, "image", "a.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReencodeFallsBackOnUndecodableBytes(t *testing.T) {
	b := &CloudinaryBackend{encodeWebP: true, maxDim: 1600, quality: 80}

	raw := []byte("definitely not an image")
	out, err := io.ReadAll(b.reencode(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestReencodeProducesBoundedWebP(t *testing.T) {
	b := &CloudinaryBackend{encodeWebP: true, maxDim: 4, quality: 80}

	src := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for x := 0; x < 16; x++ {
		for y := 0; y < 8; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 32), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	out, err := io.ReadAll(b.reencode(buf.Bytes()))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 4)
	assert.LessOrEqual(t, bounds.Dy(), 4)
}
