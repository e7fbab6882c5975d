package wire

import (
	"travel-agency/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Route("/api/packages", func(r chi.Router) {
		r.Get("/", catalogHandler.ListPackages)
		r.Get("/facets", catalogHandler.PackageFacets)
		r.Get("/{id}", catalogHandler.GetPackage)
	})

	r.Route("/api/blog", func(r chi.Router) {
		r.Get("/", catalogHandler.ListBlogPosts)
		r.Get("/facets", catalogHandler.BlogFacets)
		r.Get("/{id}", catalogHandler.GetBlogPost)
	})
}
