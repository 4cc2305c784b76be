package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// stripe returns a 2x2 image with a red top row and a blue bottom row.
func stripe() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	return img
}

func TestDecodeOpaquePNGIsRGB(t *testing.T) {
	path := writeFile(t, "stripe.png", encodePNG(t, stripe()))

	img, err := Decode(path)
	require.NoError(t, err)

	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, 3, img.Channels)
	require.Len(t, img.Pix, 2*2*3)

	// Flipped: the first stored row is the bottom (blue) row.
	assert.Equal(t, []byte{0, 0, 255}, img.Pix[0:3])
	assert.Equal(t, []byte{255, 0, 0}, img.Pix[6:9])
}

func TestDecodeTranslucentPNGIsRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 0x80})

	img, err := DecodeBytes(encodePNG(t, src), "alpha.png")
	require.NoError(t, err)

	assert.Equal(t, 4, img.Channels)
	require.Len(t, img.Pix, 4)
	assert.Equal(t, byte(0x80), img.Pix[3])
	assert.InDelta(t, 255, int(img.Pix[0]), 2)
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, stripe(), nil))

	img, err := DecodeBytes(buf.Bytes(), "stripe.jpg")
	require.NoError(t, err)
	assert.Equal(t, 3, img.Channels)
	assert.Len(t, img.Pix, 2*2*3)
}

func TestDecodeGrayIsUnsupported(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))

	_, err := DecodeBytes(encodePNG(t, gray), "gray.png")
	assert.ErrorIs(t, err, ErrUnsupportedChannels)
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"garbage.jpg", []byte("definitely not an image")},
		{"empty.png", nil},
		{"truncated.png", encodePNG(t, stripe())[:20]},
		{"doc.pdf", append([]byte("%PDF-1.4\n"), make([]byte, 32)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes(tt.data, tt.name)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.ErrorIs(t, err, ErrDecode)
}
