// internal/wire/wire.go
package wire

import (
	"net/http"

	"travel-agency/internal/adaptor"
	"travel-agency/internal/usecase"
	"travel-agency/pkg/middleware"
	"travel-agency/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the router and the services behind it.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

func Wiring(deps usecase.Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	if config.HTTP.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.AllowedOrigins))

	limiter := middleware.NewRateLimiter(config.HTTP.RateLimitRPS, config.HTTP.RateLimitBurst, logger)

	wireCatalog(r, handler.Catalog)
	wireAdmin(r, handler)
	wireBooking(r, handler.Booking, limiter)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
