// Package media implements deterministic image normalization for uploads.
package media

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"vicinity/internal/middleware"

	xdraw "golang.org/x/image/draw"
)

// AspectRatio selects the crop policy applied before resizing.
type AspectRatio string

const (
	// AspectSquare crops the largest centered square from the source.
	AspectSquare AspectRatio = "square"
	// Aspect16x9 crops the source symmetrically to a 16:9 frame.
	Aspect16x9 AspectRatio = "16:9"
)

const jpegQuality = 85

var (
	// ErrUnreadableImage indicates the source file could not be decoded.
	ErrUnreadableImage = errors.New("media: unreadable image")
	// ErrUnsupportedAspect indicates an unrecognized aspect-ratio tag.
	// Unknown tags are a hard error, not a silent pass-through.
	ErrUnsupportedAspect = errors.New("media: unsupported aspect ratio")
)

// CropRect computes the centered crop for a w×h source under the given
// aspect policy. Offsets use floor division, so a fractional center shifts
// the crop up/left by at most one pixel.
func CropRect(w, h int, aspect AspectRatio) (image.Rectangle, error) {
	switch aspect {
	case AspectSquare:
		edge := w
		if h < w {
			edge = h
		}
		left := (w - edge) / 2
		top := (h - edge) / 2
		return image.Rect(left, top, left+edge, top+edge), nil

	case Aspect16x9:
		// Compare cross products instead of float ratios: w/h vs 16/9.
		switch {
		case 9*w > 16*h: // wider than 16:9, crop width
			newW := h * 16 / 9
			left := (w - newW) / 2
			return image.Rect(left, 0, left+newW, h), nil
		case 9*w < 16*h: // taller than 16:9, crop height
			newH := w * 9 / 16
			top := (h - newH) / 2
			return image.Rect(0, top, w, top+newH), nil
		default:
			return image.Rect(0, 0, w, h), nil
		}

	default:
		return image.Rectangle{}, fmt.Errorf("%w: %q", ErrUnsupportedAspect, aspect)
	}
}

// ResizeAndCrop normalizes the image at path: centered crop to the aspect
// policy, then resample to exactly width×height, overwriting the file in its
// original format. The file write is not transactional with any database
// record referencing it; callers accept that a crash in between can orphan
// the file.
func ResizeAndCrop(path string, width, height int, aspect AspectRatio) error {
	err := normalizeFile(path, width, height, aspect)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	middleware.MediaNormalizations.WithLabelValues(string(aspect), outcome).Inc()
	return err
}

func normalizeFile(path string, width, height int, aspect AspectRatio) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	src, format, err := image.Decode(f)
	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	if closeErr != nil {
		return closeErr
	}

	bounds := src.Bounds()
	crop, err := CropRect(bounds.Dx(), bounds.Dy(), aspect)
	if err != nil {
		return err
	}
	// Translate the crop into the source's coordinate space.
	crop = crop.Add(bounds.Min)

	// Flatten to RGBA; the RGB conversion step of the pipeline.
	cropped := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Draw(cropped, cropped.Bounds(), src, crop.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), xdraw.Src, nil)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	switch format {
	case "png":
		err = png.Encode(out, dst)
	case "gif":
		err = gif.Encode(out, dst, nil)
	default:
		err = jpeg.Encode(out, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
