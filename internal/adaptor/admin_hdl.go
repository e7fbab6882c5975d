package adaptor

import (
	"net/http"

	"travel-agency/internal/data/entity"
	"travel-agency/internal/dto/request"
	"travel-agency/internal/usecase"
	"travel-agency/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HomepageHandler struct {
	service usecase.HomepageService
	log     *zap.Logger
}

func NewHomepageHandler(service usecase.HomepageService, log *zap.Logger) *HomepageHandler {
	return &HomepageHandler{
		service: service,
		log:     log.With(zap.String("handler", "homepage")),
	}
}

// GetHomepage handles GET /api/homepage
func (h *HomepageHandler) GetHomepage(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.View(r.Context()))
}

// GetContent handles GET /api/admin/homepage
func (h *HomepageHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Content(r.Context()))
}

// UpdateContent handles PUT /api/admin/homepage
func (h *HomepageHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var doc entity.Homepage
	if !decodeAndValidate(w, r, &doc) {
		return
	}

	saved, err := h.service.Update(r.Context(), doc)
	if err != nil {
		respondError(w, h.log, err, "update homepage", "")
		return
	}

	utils.ResponseSuccess(w, "Homepage updated", saved)
}

type DestinationHandler struct {
	service usecase.DestinationService
	log     *zap.Logger
}

func NewDestinationHandler(service usecase.DestinationService, log *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		service: service,
		log:     log.With(zap.String("handler", "destination")),
	}
}

// ListDestinations handles GET /api/admin/destinations
func (h *DestinationHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list destinations", "")
		return
	}

	utils.ResponseSuccess(w, "success", destinations)
}

// CreateDestination handles POST /api/admin/destinations
func (h *DestinationHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req request.DestinationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	destination, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create destination", "")
		return
	}

	utils.ResponseCreated(w, "Destination created", destination)
}

// UpdateDestination handles PUT /api/admin/destinations/{id}
func (h *DestinationHandler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	var req request.DestinationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	destination, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "update destination", "")
		return
	}

	utils.ResponseSuccess(w, "Destination updated", destination)
}

// DeleteDestination handles DELETE /api/admin/destinations/{id}
func (h *DestinationHandler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "delete destination", "")
		return
	}

	utils.ResponseSuccess(w, "Destination deleted", nil)
}

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// ListCategories handles GET /api/admin/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list categories", "")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// CreateCategory handles POST /api/admin/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create category", "")
		return
	}

	utils.ResponseCreated(w, "Category created", category)
}

// UpdateCategory handles PUT /api/admin/categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "update category", "")
		return
	}

	utils.ResponseSuccess(w, "Category updated", category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "delete category", "")
		return
	}

	utils.ResponseSuccess(w, "Category deleted", nil)
}

type PackageAdminHandler struct {
	service usecase.PackageAdminService
	log     *zap.Logger
}

func NewPackageAdminHandler(service usecase.PackageAdminService, log *zap.Logger) *PackageAdminHandler {
	return &PackageAdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "package_admin")),
	}
}

// ListPackages handles GET /api/admin/packages
func (h *PackageAdminHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list packages", "")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// CreatePackage handles POST /api/admin/packages
func (h *PackageAdminHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.PackageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create package", "")
		return
	}

	utils.ResponseCreated(w, "Package created", pkg)
}

// UpdatePackage handles PUT /api/admin/packages/{id}
func (h *PackageAdminHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.PackageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "update package", "")
		return
	}

	utils.ResponseSuccess(w, "Package updated", pkg)
}

// DeletePackage handles DELETE /api/admin/packages/{id}
func (h *PackageAdminHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "delete package", "")
		return
	}

	utils.ResponseSuccess(w, "Package deleted", nil)
}
