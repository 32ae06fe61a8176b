package imgproc

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/tiff" // Register TIFF decoder
)

// LoadImage loads a color buffer from a PNG, JPEG, GIF, or TIFF file.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return RGBAImageFromImage(img), nil
}

// SaveImage writes an image to disk, choosing the codec from the file
// extension (png, jpg/jpeg, gif; anything else falls back to PNG).
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".gif":
		return gif.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}

// SaveGrayImage writes a grayscale buffer to disk.
func SaveGrayImage(img *GrayImage, path string) error {
	return SaveImage(img.Gray, path)
}

// EncodeBase64PNG renders an image as a base64 PNG string, the transport
// encoding the calling layer ships results in.
func EncodeBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeBase64PNG parses a base64 PNG string back into a color buffer.
func DecodeBase64PNG(data string) (*RGBAImage, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}
	return RGBAImageFromImage(img), nil
}
