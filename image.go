package launchericon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
	"github.com/medistock/launchericon/utils"
	"golang.org/x/image/bmp"
)

// Format is an output image format, named after its file extension.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
)

var supportedFormats = []Format{PNG, WebP, JPEG, BMP}

// Supported reports whether an encoder is available for the format.
func (f Format) Supported() bool {
	return utils.Contains(supportedFormats, f)
}

// ParseFormat normalizes a format name: case is ignored and "jpg" is an alias of JPEG.
// The result may still be unsupported.
func ParseFormat(name string) Format {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	if name == "jpg" {
		return JPEG
	}
	return Format(name)
}

// FormatFromExt returns the format matching the extension of path.
func FormatFromExt(path string) (Format, error) {
	f := ParseFormat(filepath.Ext(path))
	if !f.Supported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return f, nil
}

// EncodeOptions holds the settings of the lossy encoders.
type EncodeOptions struct {
	// Quality ranges from 1 to 100 and is ignored by the lossless formats.
	Quality  int
	Lossless bool
}

func (o EncodeOptions) quality() int {
	if o.Quality == 0 {
		return defaultQuality
	}
	return utils.Clamp(o.Quality, 1, 100)
}

// Encode writes the image to w in the requested format.
func Encode(w io.Writer, img image.Image, f Format, o EncodeOptions) error {
	switch f {
	case PNG:
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case JPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(o.quality()))
	case BMP:
		return bmp.Encode(w, img)
	case WebP:
		return webp.Encode(w, img, webp.Options{
			Quality:  o.quality(),
			Lossless: o.Lossless,
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteImage encodes the image to path, the format being inferred from the extension.
// Missing parent directories are created and an existing file is overwritten.
func WriteImage(img image.Image, path string, o EncodeOptions) (err error) {
	f, err := FormatFromExt(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}

	dst, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close the destination file: %w", cerr)
		}
		if err != nil {
			// remove the partially written image file in case of an error
			os.Remove(path)
		}
	}()

	return Encode(dst, img, f, o)
}

// WriteWithIntermediate writes the image as a PNG next to path, decodes it back
// and converts it to the format of path. The intermediate PNG is removed
// afterwards unless keep is set; failing to remove it is reported as an error.
func WriteWithIntermediate(img image.Image, path string, o EncodeOptions, keep bool) (err error) {
	tmp := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	if tmp == path {
		return WriteImage(img, path, o)
	}
	if err := WriteImage(img, tmp, o); err != nil {
		return fmt.Errorf("intermediate png: %w", err)
	}
	if !keep {
		defer func() {
			if rerr := os.Remove(tmp); rerr != nil && !os.IsNotExist(rerr) && err == nil {
				err = fmt.Errorf("could not remove the intermediate file: %w", rerr)
			}
		}()
	}

	src, err := imaging.Open(tmp)
	if err != nil {
		return fmt.Errorf("unable to open the intermediate png: %w", err)
	}
	return WriteImage(src, path, o)
}
