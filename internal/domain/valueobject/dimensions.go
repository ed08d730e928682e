package valueobject

import (
	"fmt"

	"github.com/marcos-nsantos/image-scaler/internal/domain"
)

type Dimensions struct {
	Width  int
	Height int
}

// FitWithin scales width x height so the larger side becomes bound,
// preserving the aspect ratio. The result is floor(bound/max(w,h) * side)
// computed in integers, so the binding side is exactly bound. The free side
// never drops below one pixel.
func FitWithin(width, height, bound int) (Dimensions, error) {
	if width <= 0 || height <= 0 {
		return Dimensions{}, fmt.Errorf("%w: %dx%d", domain.ErrInvalidImage, width, height)
	}
	if bound <= 0 {
		return Dimensions{}, fmt.Errorf("%w: %d", domain.ErrInvalidScaleTarget, bound)
	}

	if width >= height {
		h := int(int64(bound) * int64(height) / int64(width))
		return Dimensions{Width: bound, Height: max(h, 1)}, nil
	}

	w := int(int64(bound) * int64(width) / int64(height))
	return Dimensions{Width: max(w, 1), Height: bound}, nil
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
