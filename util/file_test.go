package util

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func TestDecodeImage(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, png.Encode(buf, testImage(12, 8)))

		img, err := DecodeImage(buf)
		require.NoError(t, err)
		assert.Equal(t, 12, img.Bounds().Dx())
		assert.Equal(t, 8, img.Bounds().Dy())
	})

	t.Run("jpeg", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, jpeg.Encode(buf, testImage(20, 10), nil))

		img, err := DecodeImage(buf)
		require.NoError(t, err)
		assert.Equal(t, 20, img.Bounds().Dx())
		assert.Equal(t, 10, img.Bounds().Dy())
	})

	t.Run("损坏的数据", func(t *testing.T) {
		_, err := DecodeImage(strings.NewReader("this is not an image"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decode image")
	})
}

func TestEncodePNG(t *testing.T) {
	buf, err := EncodePNG(testImage(5, 5))
	require.NoError(t, err)

	decoded, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 5, decoded.Bounds().Dx())
}

func TestAllowedFile(t *testing.T) {
	allowed := []string{"png", "jpg", "jpeg", "webp"}

	tests := []struct {
		filename string
		want     bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"photo.WebP", true},
		{"photo.txt", false},
		{"photo.gif", false},
		{"photo", false},
		{"", false},
		{".png", true},
		{"archive.tar.png", true},
		{"photo.png.exe", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedFile(tt.filename, allowed))
		})
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "photo_no_background.png", OutputName("photo.jpg"))
	assert.Equal(t, "my.photo_no_background.png", OutputName("my.photo.png"))
	assert.Equal(t, "photo_no_background.png", OutputName("photo"))
	assert.Equal(t, "image_no_background.png", OutputName(".png"))
}
