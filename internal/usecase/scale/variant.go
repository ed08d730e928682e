package scale

import (
	"fmt"
	"image"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/storage"
	"github.com/marcos-nsantos/image-scaler/internal/domain/entity"
)

type variantSpec struct {
	kind   entity.VariantKind
	derive func(p storage.ImageProcessor, resized image.Image) image.Image
}

// variantSpecs is the per-target fan-out. Every spec derives from the same
// resized raster.
var variantSpecs = []variantSpec{
	{
		kind:   entity.VariantResized,
		derive: func(_ storage.ImageProcessor, resized image.Image) image.Image { return resized },
	},
	{
		kind:   entity.VariantSquared,
		derive: func(p storage.ImageProcessor, resized image.Image) image.Image { return p.SquareCrop(resized) },
	},
}

// DestinationKey must stay byte-compatible with keys already in buckets:
// "<prefix>-<dimension>-<source>" and "<prefix>-<dimension>-squared-<source>".
func DestinationKey(prefix string, dimension int, kind entity.VariantKind, sourceKey string) string {
	if kind == entity.VariantSquared {
		return fmt.Sprintf("%s-%d-squared-%s", prefix, dimension, sourceKey)
	}
	return fmt.Sprintf("%s-%d-%s", prefix, dimension, sourceKey)
}
