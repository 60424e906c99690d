// Package media provides image processing utilities
package media

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

var dataURLPattern = regexp.MustCompile(`^data:image/([a-zA-Z0-9.+-]+);base64,`)

// ImageProcessor normalizes uploaded images before they are sent to the
// caption gateway.
type ImageProcessor struct {
	maxDimension int
	jpegQuality  int
}

// NewImageProcessor creates a new ImageProcessor instance.
func NewImageProcessor(maxDimension int) *ImageProcessor {
	return &ImageProcessor{
		maxDimension: maxDimension,
		jpegQuality:  85,
	}
}

// NormalizeBase64Image accepts a base64 data URL (png, jpeg or webp),
// downscales it to fit within the configured maximum dimension, and
// re-encodes it as a JPEG data URL. Images already within bounds are
// still re-encoded so the gateway always receives JPEG.
func (p *ImageProcessor) NormalizeBase64Image(data string) (string, error) {
	if data == "" {
		return "", fmt.Errorf("empty base64 data")
	}

	format := extractFormat(data)
	if format == "" {
		return "", fmt.Errorf("unsupported image format")
	}

	b64Data := dataURLPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	img, err := decodeImage(decoded, format)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s image: %w", format, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.maxDimension || bounds.Dy() > p.maxDimension {
		img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.jpegQuality}); err != nil {
		return "", fmt.Errorf("failed to encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func decodeImage(data []byte, format string) (image.Image, error) {
	switch format {
	case "webp":
		return webp.Decode(bytes.NewReader(data))
	case "png":
		return png.Decode(bytes.NewReader(data))
	case "jpeg", "jpg":
		return jpeg.Decode(bytes.NewReader(data))
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		return img, err
	}
}

// extractFormat auto-detects the image format from the data URL MIME type.
func extractFormat(data string) string {
	if strings.Contains(data, "data:image/png") {
		return "png"
	} else if strings.Contains(data, "data:image/jpeg") || strings.Contains(data, "data:image/jpg") {
		return "jpeg"
	} else if strings.Contains(data, "data:image/webp") {
		return "webp"
	}
	return ""
}
