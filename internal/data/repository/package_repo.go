package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"travel-agency/internal/data/entity"
	"travel-agency/pkg/database"

	"go.uber.org/zap"
)

type PackageRepository interface {
	FindAll(ctx context.Context) ([]entity.Package, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

// FindAll returns every published package in display order.
func (r *packageRepository) FindAll(ctx context.Context) ([]entity.Package, error) {
	query := `
		SELECT id, title, destination, duration, price, original_price,
		       rating, review_count, category, image, highlights, included,
		       itinerary, gallery
		FROM packages
		WHERE deleted_at IS NULL
		ORDER BY display_order, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find packages", zap.Error(err))
		return nil, fmt.Errorf("failed to find packages: %w", err)
	}
	defer rows.Close()

	var packages []entity.Package
	for rows.Next() {
		var (
			pkg       entity.Package
			image     *string
			itinerary []byte
		)
		err := rows.Scan(
			&pkg.ID,
			&pkg.Title,
			&pkg.Destination,
			&pkg.Duration,
			&pkg.Price,
			&pkg.OriginalPrice,
			&pkg.Rating,
			&pkg.ReviewCount,
			&pkg.Category,
			&image,
			&pkg.Highlights,
			&pkg.Included,
			&itinerary,
			&pkg.Gallery,
		)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		if image != nil {
			pkg.Image = *image
		}
		if len(itinerary) > 0 {
			if err := json.Unmarshal(itinerary, &pkg.Itinerary); err != nil {
				r.log.Warn("Invalid itinerary JSON",
					zap.Int("package_id", pkg.ID),
					zap.Error(err),
				)
			}
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Packages found", zap.Int("count", len(packages)))
	return packages, nil
}
