package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, w, h int) *bytes.Buffer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf
}

func TestCreateThumb(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		size  uint
		wantW uint16
		wantH uint16
	}{
		{"landscape", 200, 100, 50, 50, 25},
		{"portrait", 100, 200, 50, 25, 50},
		{"smaller than box", 20, 10, 50, 20, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			got, err := CreateThumb(tt.size, pngImage(t, tt.w, tt.h), out)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, got.NewX)
			assert.Equal(t, tt.wantH, got.NewY)
			assert.Equal(t, uint16(tt.w), got.OldX)
			assert.Equal(t, uint16(tt.h), got.OldY)
			assert.Equal(t, int64(out.Len()), got.ThumbSize)

			_, format, err := image.DecodeConfig(bytes.NewReader(out.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, "jpeg", format)
		})
	}
}

func TestCreateThumbRejectsNonImages(t *testing.T) {
	_, err := CreateThumb(50, bytes.NewBufferString("definitely not an image"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(0))
	ts := time.Date(2023, 10, 2, 14, 5, 0, 0, time.Local)
	assert.Equal(t, "2 Oct 2023 14:05", FormatDate(ts.UnixMilli()))
}

func TestRandSalt(t *testing.T) {
	a, b := RandSalt(32), RandSalt(32)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 44) // base64 of 32 bytes
}
