package tagger

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestFitCoverDownscales(t *testing.T) {
	data := encodeJPEG(t, 2000, 1000)

	out, err := fitCover(data, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if img.Bounds().Dx() != 1000 || img.Bounds().Dy() != 500 {
		t.Errorf("expected 1000x500, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestFitCoverKeepsSmallImages(t *testing.T) {
	data := encodeJPEG(t, 600, 600)

	out, err := fitCover(data, 1500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("small covers should pass through unchanged")
	}
}

func TestLoadCoverMissing(t *testing.T) {
	_, err := LoadCover(t.TempDir(), 1500)
	if err == nil {
		t.Fatal("expected error for missing Cover.jpg")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist for missing cover, got %v", err)
	}
}

func TestLoadCoverUndecodable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, CoverFileName), []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCover(dir, 1500)
	if err == nil {
		t.Fatal("expected error for undecodable cover")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("decode failure must not look like a missing file: %v", err)
	}
}

func TestLoadCover(t *testing.T) {
	dir := t.TempDir()
	data := encodeJPEG(t, 400, 400)
	if err := os.WriteFile(filepath.Join(dir, CoverFileName), data, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := LoadCover(dir, 1500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("expected cover bytes to round-trip")
	}
}

func TestDetectImageMIME(t *testing.T) {
	cases := []struct {
		data []byte
		want string
	}{
		{[]byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"},
		{[]byte{0x89, 0x50, 0x4E, 0x47}, "image/png"},
		{[]byte("GIF89a"), "image/gif"},
		{[]byte{0x00}, "image/jpeg"},
	}
	for _, c := range cases {
		if got := detectImageMIME(c.data); got != c.want {
			t.Errorf("expected %s, got %s", c.want, got)
		}
	}
}
