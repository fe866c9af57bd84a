package export

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func testFrame() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	// One opaque yellow point on a transparent background, like a rendered
	// frame.
	i := img.PixOffset(3, 2)
	img.Pix[i] = 255
	img.Pix[i+1] = 255
	img.Pix[i+3] = 255
	return img
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"webp", "tga", "bmp", "png"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", name, err)
		}
		if f.Ext() != name {
			t.Errorf("Ext() = %q, want %q", f.Ext(), name)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("ParseFormat should reject unsupported formats")
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testFrame(), PNG); err != nil {
		t.Fatalf("Encode png: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 6 {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}
}

func TestEncodeBMPRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testFrame(), BMP); err != nil {
		t.Fatalf("Encode bmp: %v", err)
	}
	decoded, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 6 {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}
}

func TestEncodeWebPAndTGA(t *testing.T) {
	for _, f := range []Format{WebP, TGA} {
		var buf bytes.Buffer
		if err := Encode(&buf, testFrame(), f); err != nil {
			t.Errorf("Encode %s: %v", f, err)
			continue
		}
		if buf.Len() == 0 {
			t.Errorf("Encode %s wrote nothing", f)
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testFrame(), Format("gif")); err == nil {
		t.Error("Encode with an unknown format should fail")
	}
}

func TestDownsample(t *testing.T) {
	t.Run("reduces to target size", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 16, 12))
		for i := range src.Pix {
			src.Pix[i] = 255
		}
		dst := Downsample(src, 8, 6)
		if dst.Bounds().Dx() != 8 || dst.Bounds().Dy() != 6 {
			t.Errorf("bounds = %v, want 8x6", dst.Bounds())
		}
		// Solid white stays solid white through the filter.
		i := dst.PixOffset(4, 3)
		if dst.Pix[i] != 255 || dst.Pix[i+3] != 255 {
			t.Errorf("center pixel = %v", dst.Pix[i:i+4])
		}
	})

	t.Run("no-op when already small", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 8, 6))
		if got := Downsample(src, 8, 6); got != src {
			t.Error("Downsample should return the input unchanged")
		}
	})
}
