package scale

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/repository"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/storage"
	"github.com/marcos-nsantos/image-scaler/internal/domain"
	"github.com/marcos-nsantos/image-scaler/internal/domain/entity"
	"github.com/marcos-nsantos/image-scaler/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/pagination"
)

type Config struct {
	Prefix       string
	Targets      []int
	ContentTypes valueobject.ContentTypes
	Workers      int
}

type Service struct {
	store        storage.ObjectStore
	processor    storage.ImageProcessor
	catalog      repository.VariantRepository
	logger       *zap.Logger
	classifier   Classifier
	prefix       string
	targets      []int
	contentTypes valueobject.ContentTypes
	workers      int
}

// NewService copies the targets and content types so callers cannot change
// them under a running service. Repeated targets are kept once, in first
// position. catalog may be nil, in which case written variants are not
// recorded.
func NewService(
	store storage.ObjectStore,
	processor storage.ImageProcessor,
	catalog repository.VariantRepository,
	logger *zap.Logger,
	cfg Config,
) *Service {
	contentTypes := cfg.ContentTypes
	if contentTypes == nil {
		contentTypes = valueobject.DefaultContentTypes()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Service{
		store:        store,
		processor:    processor,
		catalog:      catalog,
		logger:       logger,
		classifier:   NewClassifier(cfg.Prefix),
		prefix:       cfg.Prefix,
		targets:      uniqueTargets(cfg.Targets),
		contentTypes: contentTypes.Clone(),
		workers:      workers,
	}
}

func uniqueTargets(targets []int) []int {
	seen := make(map[int]bool, len(targets))
	out := make([]int, 0, len(targets))
	for _, t := range targets {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) Process(ctx context.Context, bucket, key string) (*Result, error) {
	logger := s.logger.With(zap.String("bucket", bucket), zap.String("key", key))

	codec, err := s.classifier.Classify(key)
	if err != nil {
		reason, ok := skipReason(err)
		if !ok {
			return nil, err
		}
		logger.Info("skipping object", zap.String("reason", string(reason)), zap.Error(err))
		return Skipped(reason), nil
	}

	contentType, ok := s.contentTypes.Lookup(codec)
	if !ok {
		return nil, fmt.Errorf("%w: codec %s", domain.ErrUnknownContentType, codec)
	}

	data, err := s.store.Get(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("reading source image: %w", err)
	}

	src, err := s.processor.Decode(data)
	if err != nil {
		return nil, err
	}

	perTarget := make([][]entity.Variant, len(s.targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, target := range s.targets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			variants, err := s.scaleTarget(gctx, bucket, key, src, codec, contentType, target)
			if err != nil {
				return fmt.Errorf("scaling to %d: %w", target, err)
			}
			perTarget[i] = variants
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scaling aborted: %w", err)
	}

	variants := make([]entity.Variant, 0, len(s.targets)*len(variantSpecs))
	for _, vs := range perTarget {
		variants = append(variants, vs...)
	}

	logger.Info("scaled image",
		zap.String("source_size", valueobject.Dimensions{Width: src.Bounds().Dx(), Height: src.Bounds().Dy()}.String()),
		zap.Int("variants", len(variants)),
	)

	return OK(variants), nil
}

func (s *Service) scaleTarget(
	ctx context.Context,
	bucket, key string,
	src image.Image,
	codec valueobject.Codec,
	contentType string,
	target int,
) ([]entity.Variant, error) {
	dims, err := valueobject.FitWithin(src.Bounds().Dx(), src.Bounds().Dy(), target)
	if err != nil {
		return nil, err
	}

	resized := s.processor.Resize(src, dims.Width, dims.Height)

	variants := make([]entity.Variant, 0, len(variantSpecs))
	for _, spec := range variantSpecs {
		img := spec.derive(s.processor, resized)

		encoded, err := s.processor.Encode(img, codec)
		if err != nil {
			return nil, err
		}

		dstKey := DestinationKey(s.prefix, target, spec.kind, key)
		size := int64(len(encoded))
		if err := s.store.Put(ctx, bucket, dstKey, bytes.NewReader(encoded), contentType, size); err != nil {
			return nil, fmt.Errorf("writing %s: %w", dstKey, err)
		}

		variant := entity.NewVariant(bucket, key, dstKey, spec.kind, target,
			img.Bounds().Dx(), img.Bounds().Dy(), contentType, size)

		if s.catalog != nil {
			if err := s.catalog.Upsert(ctx, variant); err != nil {
				return nil, fmt.Errorf("recording %s: %w", dstKey, err)
			}
		}

		s.logger.Debug("wrote variant",
			zap.String("bucket", bucket),
			zap.String("key", dstKey),
			zap.String("kind", string(spec.kind)),
			zap.Int("width", variant.Width),
			zap.Int("height", variant.Height),
			zap.Int64("size", size),
		)
		variants = append(variants, *variant)
	}

	return variants, nil
}

func (s *Service) ListVariants(ctx context.Context, bucket, sourceKey string) ([]entity.Variant, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogDisabled
	}
	return s.catalog.ListBySource(ctx, bucket, sourceKey)
}

func (s *Service) ListBucketVariants(ctx context.Context, bucket string, page, perPage int) ([]entity.Variant, *pagination.Info, error) {
	if s.catalog == nil {
		return nil, nil, domain.ErrCatalogDisabled
	}

	params := pagination.NewParams(page, perPage)
	variants, total, err := s.catalog.ListByBucket(ctx, bucket, params)
	if err != nil {
		return nil, nil, err
	}

	return variants, pagination.NewInfo(params, total), nil
}
