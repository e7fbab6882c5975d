package wire

import (
	"travel-agency/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, handler *adaptor.Handler) {
	// Public landing page
	r.Get("/api/homepage", handler.Homepage.GetHomepage)

	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/homepage", handler.Homepage.GetContent)
		r.Put("/homepage", handler.Homepage.UpdateContent)

		r.Post("/catalog/refresh", handler.Catalog.Refresh)

		r.Route("/destinations", func(r chi.Router) {
			r.Get("/", handler.Destination.ListDestinations)
			r.Post("/", handler.Destination.CreateDestination)
			r.Put("/{id}", handler.Destination.UpdateDestination)
			r.Delete("/{id}", handler.Destination.DeleteDestination)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", handler.Category.ListCategories)
			r.Post("/", handler.Category.CreateCategory)
			r.Put("/{id}", handler.Category.UpdateCategory)
			r.Delete("/{id}", handler.Category.DeleteCategory)
		})

		r.Route("/packages", func(r chi.Router) {
			r.Get("/", handler.PackageAdmin.ListPackages)
			r.Post("/", handler.PackageAdmin.CreatePackage)
			r.Put("/{id}", handler.PackageAdmin.UpdatePackage)
			r.Delete("/{id}", handler.PackageAdmin.DeletePackage)
		})
	})
}
