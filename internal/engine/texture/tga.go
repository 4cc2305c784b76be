package texture

import (
	"errors"
	"fmt"
	"image"
)

// TGA image types.
const (
	TGATypeUncompressed = 2  // uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

type tgaHeader struct {
	idLength  int
	imageType byte
	width     int
	height    int
	bpp       int
	topDown   bool
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, errors.New("tga: header too short")
	}
	h := tgaHeader{
		idLength:  int(data[0]),
		imageType: data[2],
		width:     int(data[12]) | int(data[13])<<8,
		height:    int(data[14]) | int(data[15])<<8,
		bpp:       int(data[16]),
		topDown:   data[17]&0x20 != 0,
	}

	switch {
	case data[1] != 0:
		return h, errors.New("tga: color-mapped images not supported")
	case h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE:
		return h, fmt.Errorf("tga: unsupported image type %d", h.imageType)
	case h.bpp != 24 && h.bpp != 32:
		return h, fmt.Errorf("tga: unsupported bit depth %d", h.bpp)
	case h.width == 0 || h.height == 0:
		return h, errors.New("tga: empty image")
	}
	return h, nil
}

// DecodeTGA decodes an uncompressed or RLE true-color TGA. 24-bit files
// decode to an opaque *image.RGBA, 32-bit files to *image.NRGBA.
func DecodeTGA(data []byte) (image.Image, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}

	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, errors.New("tga: truncated id field")
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))
	d := tgaDecoder{h: h, img: img, src: data[offset:], bytesPerPixel: h.bpp / 8}

	if h.imageType == TGATypeUncompressed {
		err = d.raw()
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}

	if h.bpp == 24 {
		// Every alpha is 0xff, so the straight and premultiplied forms agree.
		return &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}, nil
	}
	return img, nil
}

type tgaDecoder struct {
	h             tgaHeader
	img           *image.NRGBA
	src           []byte
	pos           int
	bytesPerPixel int
}

// next returns the next BGR(A) pixel from the source.
func (d *tgaDecoder) next() ([]byte, error) {
	end := d.pos + d.bytesPerPixel
	if end > len(d.src) {
		return nil, errors.New("tga: pixel data truncated")
	}
	px := d.src[d.pos:end]
	d.pos = end
	return px, nil
}

// put stores pixel i (file order) into the image.
func (d *tgaDecoder) put(i int, px []byte) {
	x, y := i%d.h.width, i/d.h.width
	if !d.h.topDown {
		y = d.h.height - 1 - y
	}
	o := d.img.PixOffset(x, y)
	d.img.Pix[o+0] = px[2]
	d.img.Pix[o+1] = px[1]
	d.img.Pix[o+2] = px[0]
	d.img.Pix[o+3] = 0xff
	if d.bytesPerPixel == 4 {
		d.img.Pix[o+3] = px[3]
	}
}

func (d *tgaDecoder) raw() error {
	for i := 0; i < d.h.width*d.h.height; i++ {
		px, err := d.next()
		if err != nil {
			return err
		}
		d.put(i, px)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	total := d.h.width * d.h.height
	for i := 0; i < total; {
		if d.pos >= len(d.src) {
			return errors.New("tga: rle data truncated")
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7f) + 1
		repeat := packet&0x80 != 0

		var px []byte
		for n := 0; n < count && i < total; n++ {
			if !repeat || n == 0 {
				var err error
				if px, err = d.next(); err != nil {
					return err
				}
			}
			d.put(i, px)
			i++
		}
	}
	return nil
}
