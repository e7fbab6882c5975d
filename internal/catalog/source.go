package catalog

import (
	"context"
	"fmt"

	"travel-agency/internal/data/entity"

	"go.uber.org/zap"
)

// Source supplies the catalog collections at load time.
type Source interface {
	Packages(ctx context.Context) ([]entity.Package, error)
	BlogPosts(ctx context.Context) ([]entity.BlogPost, error)
}

// PackageLister is anything that can list packages, such as the backend
// package resource.
type PackageLister interface {
	List(ctx context.Context) ([]entity.Package, error)
}

// Load fetches both collections from src and replaces the store contents.
// A failed collection leaves the store's previous contents in place.
func Load(ctx context.Context, store *Store, src Source, log *zap.Logger) error {
	packages, err := src.Packages(ctx)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}
	posts, err := src.BlogPosts(ctx)
	if err != nil {
		return fmt.Errorf("load blog posts: %w", err)
	}

	store.ReplacePackages(packages)
	store.ReplaceBlogPosts(posts)

	log.Info("Catalog loaded",
		zap.Int("packages", len(packages)),
		zap.Int("blog_posts", len(posts)),
	)
	return nil
}

// BackendSource reads packages from the content backend and blog posts from
// a fallback source, since the backend exposes no blog endpoint.
type BackendSource struct {
	packages PackageLister
	posts    Source
}

func NewBackendSource(packages PackageLister, posts Source) *BackendSource {
	return &BackendSource{packages: packages, posts: posts}
}

func (s *BackendSource) Packages(ctx context.Context) ([]entity.Package, error) {
	return s.packages.List(ctx)
}

func (s *BackendSource) BlogPosts(ctx context.Context) ([]entity.BlogPost, error) {
	return s.posts.BlogPosts(ctx)
}
