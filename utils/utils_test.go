package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"holiday.jpg", "holiday.jpg"},
		{"my photo (1).jpg", "my_photo__1_.jpg"},
		{"../../etc/passwd", "_._.._etc_passwd"},
		{"höliday.jpg", "h_liday.jpg"},
		{"IMG_1234.HEIC", "IMG_1234.HEIC"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFileName(tt.in); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateThumb(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, src); err != nil {
		t.Fatal(err)
	}

	var thumb bytes.Buffer
	result, err := CreateThumb(50, &encoded, &thumb)
	if err != nil {
		t.Fatalf("CreateThumb() error = %v", err)
	}
	if result.OldX != 200 || result.OldY != 100 {
		t.Errorf("original size = %dx%d, want 200x100", result.OldX, result.OldY)
	}
	if result.NewX != 50 || result.NewY != 25 {
		t.Errorf("thumb size = %dx%d, want 50x25", result.NewX, result.NewY)
	}
	if result.ThumbSize != int64(thumb.Len()) {
		t.Errorf("reported size %d does not match written %d", result.ThumbSize, thumb.Len())
	}
	decoded, _, err := image.Decode(&thumb)
	if err != nil {
		t.Fatalf("thumb does not decode: %v", err)
	}
	if decoded.Bounds().Dx() != 50 || decoded.Bounds().Dy() != 25 {
		t.Errorf("decoded thumb = %v", decoded.Bounds())
	}
}
