// Package export encodes rendered frames to image files.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// Format selects the on-disk frame encoding.
type Format string

const (
	WebP Format = "webp"
	TGA  Format = "tga"
	BMP  Format = "bmp"
	PNG  Format = "png"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case WebP, TGA, BMP, PNG:
		return Format(s), nil
	}
	return "", fmt.Errorf("export: unknown format %q (want webp, tga, bmp or png)", s)
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *image.NRGBA, f Format) error {
	switch f {
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case PNG:
		return png.Encode(w, img)
	}
	return fmt.Errorf("export: unknown format %q", f)
}
