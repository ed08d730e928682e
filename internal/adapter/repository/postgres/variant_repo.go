package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/image-scaler/internal/domain/entity"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/pagination"
)

const variantColumns = `id, bucket, source_key, key, kind, dimension, width, height, content_type, size, created_at`

type VariantRepo struct {
	pool *pgxpool.Pool
}

func NewVariantRepo(pool *pgxpool.Pool) *VariantRepo {
	return &VariantRepo{pool: pool}
}

// Upsert records a written variant. Rewriting the same key keeps the
// original row ID and creation time, and both are copied back into variant.
func (r *VariantRepo) Upsert(ctx context.Context, variant *entity.Variant) error {
	query := `
		INSERT INTO variants (id, bucket, source_key, key, kind, dimension, width, height, content_type, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		ON CONFLICT (bucket, key) DO UPDATE SET
			source_key   = EXCLUDED.source_key,
			kind         = EXCLUDED.kind,
			dimension    = EXCLUDED.dimension,
			width        = EXCLUDED.width,
			height       = EXCLUDED.height,
			content_type = EXCLUDED.content_type,
			size         = EXCLUDED.size,
			updated_at   = EXCLUDED.updated_at
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		variant.ID, variant.Bucket, variant.SourceKey, variant.Key, string(variant.Kind),
		variant.Dimension, variant.Width, variant.Height, variant.ContentType, variant.Size,
		variant.CreatedAt,
	).Scan(&variant.ID, &variant.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting variant: %w", err)
	}
	return nil
}

func (r *VariantRepo) ListBySource(ctx context.Context, bucket, sourceKey string) ([]entity.Variant, error) {
	query := `
		SELECT ` + variantColumns + `
		FROM variants
		WHERE bucket = $1 AND source_key = $2
		ORDER BY dimension ASC, kind ASC
	`
	rows, err := r.pool.Query(ctx, query, bucket, sourceKey)
	if err != nil {
		return nil, fmt.Errorf("querying variants: %w", err)
	}
	defer rows.Close()

	return scanVariants(rows)
}

func (r *VariantRepo) ListByBucket(ctx context.Context, bucket string, params pagination.Params) ([]entity.Variant, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM variants WHERE bucket = $1`, bucket).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting variants: %w", err)
	}

	query := `
		SELECT ` + variantColumns + `
		FROM variants
		WHERE bucket = $1
		ORDER BY source_key ASC, dimension ASC, kind ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, bucket, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("querying variants: %w", err)
	}
	defer rows.Close()

	variants, err := scanVariants(rows)
	if err != nil {
		return nil, 0, err
	}
	return variants, total, nil
}

func scanVariants(rows pgx.Rows) ([]entity.Variant, error) {
	variants := []entity.Variant{}
	for rows.Next() {
		var v entity.Variant
		var kind string
		if err := rows.Scan(
			&v.ID, &v.Bucket, &v.SourceKey, &v.Key, &kind,
			&v.Dimension, &v.Width, &v.Height, &v.ContentType, &v.Size, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning variant: %w", err)
		}
		v.Kind = entity.VariantKind(kind)
		variants = append(variants, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating variants: %w", err)
	}
	return variants, nil
}
