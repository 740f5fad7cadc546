package tagger

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"

	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"

	"go3tag/internal/shared"
)

// CoverFileName is the artwork file looked up next to the audio files.
const CoverFileName = "Cover.jpg"

// LoadCover reads the cover image from a directory. Images exceeding
// maxSize in either dimension are downscaled and re-encoded as JPEG;
// maxSize <= 0 disables resizing. A missing cover reports fs.ErrNotExist
// so callers can tell absence apart from an unreadable image.
func LoadCover(dir string, maxSize int) ([]byte, error) {
	path := filepath.Join(dir, CoverFileName)
	if !shared.FileExists(path) {
		return nil, fmt.Errorf("no %s in %s: %w", CoverFileName, dir, fs.ErrNotExist)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if maxSize <= 0 {
		return data, nil
	}
	return fitCover(data, maxSize)
}

// fitCover downscales an image to fit within maxSize x maxSize, keeping
// the aspect ratio. Images already within bounds are returned unchanged.
func fitCover(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxSize && height <= maxSize {
		return data, nil
	}

	ratio := float64(width) / float64(height)
	if width >= height {
		width = maxSize
		height = int(float64(maxSize) / ratio)
	} else {
		height = maxSize
		width = int(float64(maxSize) * ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// Catmull-Rom for high-quality scaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("failed to encode cover image: %w", err)
	}
	return buf.Bytes(), nil
}

// detectImageMIME detects the image format from the data
func detectImageMIME(data []byte) string {
	if len(data) < 4 {
		return "image/jpeg" // Default fallback
	}

	// Check for PNG signature (89 50 4E 47)
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "image/png"
	}

	// Check for JPEG signature (FF D8)
	if data[0] == 0xFF && data[1] == 0xD8 {
		return "image/jpeg"
	}

	// Check for GIF signature (GIF8)
	if data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x38 {
		return "image/gif"
	}

	// Default to JPEG if we can't determine
	return "image/jpeg"
}
