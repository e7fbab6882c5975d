package adaptor

import (
	"net/http"

	"travel-agency/internal/dto/request"
	"travel-agency/internal/usecase"
	"travel-agency/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	packagesLink = "/packages"
	blogLink     = "/blog"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListPackages handles GET /api/packages
func (h *CatalogHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListPackages(r.Context(), parseCatalogQuery(r))
	if err != nil {
		respondError(w, h.log, err, "list packages", "")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// PackageFacets handles GET /api/packages/facets
func (h *CatalogHandler) PackageFacets(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.PackageFacets(r.Context()))
}

// GetPackage handles GET /api/packages/{id}
func (h *CatalogHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.GetPackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get package", packagesLink)
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// ListBlogPosts handles GET /api/blog
func (h *CatalogHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListBlogPosts(r.Context(), parseCatalogQuery(r))
	if err != nil {
		respondError(w, h.log, err, "list blog posts", "")
		return
	}

	utils.ResponseSuccess(w, "success", posts)
}

// BlogFacets handles GET /api/blog/facets
func (h *CatalogHandler) BlogFacets(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.BlogFacets(r.Context()))
}

// GetBlogPost handles GET /api/blog/{id}
func (h *CatalogHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetBlogPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get blog post", blogLink)
		return
	}

	utils.ResponseSuccess(w, "success", post)
}

// Refresh handles POST /api/admin/catalog/refresh
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Refresh(r.Context())
	if err != nil {
		respondError(w, h.log, err, "refresh catalog", "")
		return
	}

	utils.ResponseSuccess(w, "Catalog refreshed", counts)
}

func parseCatalogQuery(r *http.Request) *request.CatalogQuery {
	query := r.URL.Query()
	return &request.CatalogQuery{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
		},
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Price:    query.Get("price"),
		Sort:     query.Get("sort"),
	}
}
