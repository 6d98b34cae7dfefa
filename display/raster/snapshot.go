package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Formats lists the snapshot formats which Encode understands.
var Formats = []string{"png", "webp", "tga"}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "tga":
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("unknown snapshot format: %q", format)
	}
}

// FormatOf returns the snapshot format implied by the extension of path.
func FormatOf(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if ext == f {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown snapshot format: %q (want one of %v)", filepath.Ext(path), Formats)
}

// Save writes img to path, in the format given by its extension.
func Save(path string, img image.Image) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s (while creating snapshot)", err)
	}

	err = Encode(f, img, format)
	if err != nil {
		f.Close()
		return fmt.Errorf("%s (while encoding %s snapshot)", err, format)
	}

	logger.Infof("wrote %s", path)
	return f.Close()
}
