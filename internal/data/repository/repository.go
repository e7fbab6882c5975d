package repository

import (
	"context"

	"travel-agency/internal/data/entity"
	"travel-agency/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Package  PackageRepository
	BlogPost BlogPostRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Package:  NewPackageRepository(db, log),
		BlogPost: NewBlogPostRepository(db, log),
	}
}

// Packages and BlogPosts let the repository act as a catalog source.
func (r *Repository) Packages(ctx context.Context) ([]entity.Package, error) {
	return r.Package.FindAll(ctx)
}

func (r *Repository) BlogPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return r.BlogPost.FindAll(ctx)
}
