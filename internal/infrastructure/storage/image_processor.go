package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/marcos-nsantos/image-scaler/internal/domain"
	"github.com/marcos-nsantos/image-scaler/internal/domain/valueobject"
)

const DefaultJPEGQuality = 90

type ImageProcessorImpl struct {
	quality      int
	interpolator draw.Interpolator
}

func NewImageProcessor(quality int) *ImageProcessorImpl {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &ImageProcessorImpl{
		quality:      quality,
		interpolator: draw.CatmullRom,
	}
}

func (p *ImageProcessorImpl) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeImage, err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidImage, b.Dx(), b.Dy())
	}

	return img, nil
}

// Resize steps down by at most a factor of two per pass until both axes
// reach the target. A single large-ratio bicubic pass rings and aliases.
// An axis that is already below its target is set to the target on the
// first pass.
func (p *ImageProcessorImpl) Resize(img image.Image, width, height int) image.Image {
	width, height = max(width, 1), max(height, 1)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	current := img

	for {
		w = nextStep(w, width)
		h = nextStep(h, height)

		dst := newCanvas(w, h)
		p.interpolator.Scale(dst, dst.Bounds(), current, current.Bounds(), draw.Over, nil)
		current = dst

		if w == width && h == height {
			return current
		}
	}
}

func nextStep(size, target int) int {
	if size > target {
		size /= 2
		if size < target {
			size = target
		}
		return size
	}
	return target
}

// SquareCrop keeps the centered min(w,h) square. The source rectangle is
// anchored at (w-side)/2 rather than w/2-side/2 so an odd difference between
// the sides cannot shrink it, and it is clipped to the image bounds.
func (p *ImageProcessorImpl) SquareCrop(img image.Image) image.Image {
	b := img.Bounds()
	side := min(b.Dx(), b.Dy())

	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	src := image.Rect(x0, y0, x0+side, y0+side).Intersect(b)

	dst := newCanvas(side, side)
	p.interpolator.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)
	return dst
}

func (p *ImageProcessorImpl) Encode(img image.Image, codec valueobject.Codec) ([]byte, error) {
	var format imaging.Format
	switch codec {
	case valueobject.CodecJPEG:
		format = imaging.JPEG
	case valueobject.CodecPNG:
		format = imaging.PNG
	default:
		return nil, fmt.Errorf("%w: codec %s", domain.ErrUnsupportedType, codec)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", codec, err)
	}
	return buf.Bytes(), nil
}

// newCanvas is pre-filled opaque white so transparent sources do not
// composite into dark fringes.
func newCanvas(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return dst
}
