// Package texture decodes image files into upload-ready pixel buffers and
// keeps the registry of GPU textures addressed by tag.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrDecode is returned when a file cannot be read or parsed as an image.
	ErrDecode = errors.New("texture decode failed")
	// ErrUnsupportedChannels is returned for images that are neither RGB nor RGBA.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)

// Image is a decoded texture. Rows are tightly packed and stored bottom row
// first, matching the texture coordinates of the generated meshes.
type Image struct {
	Width    int
	Height   int
	Channels int // 3 (RGB) or 4 (RGBA)
	Pix      []byte
}

// Decode reads and decodes an image file.
func Decode(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return DecodeBytes(data, path)
}

// DecodeBytes decodes image data. name is used for error messages and to
// recognise TGA files, which carry no magic number.
func DecodeBytes(data []byte, name string) (*Image, error) {
	img, err := decodeImage(data, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
	}

	channels := channelsOf(img)
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %s has %d", ErrUnsupportedChannels, name, channels)
	}

	b := img.Bounds()
	return &Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Pix:      pack(transform.FlipV(img), channels),
	}, nil
}

func decodeImage(data []byte, name string) (image.Image, error) {
	if filetype.IsImage(data) {
		img, _, err := image.Decode(bytes.NewReader(data))
		return img, err
	}
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}

	kind, _ := filetype.Match(data)
	if kind == filetype.Unknown {
		return nil, errors.New("unrecognised format")
	}
	return nil, fmt.Errorf("not an image (%s)", kind.MIME.Value)
}

// channelsOf reports how many channels the source image stores.
func channelsOf(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.RGBA:
		return opaqueChannels(m.Opaque())
	case *image.RGBA64:
		return opaqueChannels(m.Opaque())
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	return 4
}

func opaqueChannels(opaque bool) int {
	if opaque {
		return 3
	}
	return 4
}

// pack converts img to tightly packed RGB or straight-alpha RGBA bytes.
func pack(img *image.RGBA, channels int) []byte {
	b := img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*channels)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if channels == 3 {
				i := img.PixOffset(x, y)
				out = append(out, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
				continue
			}
			c := color.NRGBAModel.Convert(img.RGBAAt(x, y)).(color.NRGBA)
			out = append(out, c.R, c.G, c.B, c.A)
		}
	}
	return out
}
