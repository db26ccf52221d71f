package router

import (
	_ "harvesthub/docs"
	"harvesthub/handler"
	"harvesthub/service"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires every route. gatherer serves /metrics; nil uses the default registry.
func NewRouter(farmerHandler *handler.FarmerHandler, authHandler *handler.AuthHandler, authService *service.AuthService, gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()
	requireAuth := handler.AuthMiddleware(authService)

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /api/auth/register", handler.ErrorHandlingMiddleware(farmerHandler.Register))
	mux.Handle("POST /api/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/photos", handler.ErrorHandlingMiddleware(farmerHandler.UploadPhoto))

	mux.Handle("GET /api/farmers/me", requireAuth(handler.ErrorHandlingMiddleware(farmerHandler.GetMe)))
	mux.Handle("PUT /api/farmers/me/photo", requireAuth(handler.ErrorHandlingMiddleware(farmerHandler.UpdateMyPhoto)))

	mux.Handle("GET /api/admin/farmers/{id}",
		requireAuth(handler.AdminMiddleware(handler.ErrorHandlingMiddleware(farmerHandler.GetFarmerByID))))

	return handler.RequestLogger(mux)
}
