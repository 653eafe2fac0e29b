package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/export"
	"resume-tailor/internal/extract"
	"resume-tailor/internal/records"
	"resume-tailor/internal/services/health"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/internal/users"
)

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config         config.Config
	Sessions       middleware.SessionResolver
	Health         *health.Service
	UsersHandler   *users.Handler
	ExtractHandler *extract.Handler
	RecordsHandler *records.Handler
	ExportHandler  *export.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Auth routes and the health check are public; everything else requires an
// active session.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	deps.UsersHandler.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Session(deps.Sessions))
	deps.ExtractHandler.RegisterRoutes(protected)
	deps.RecordsHandler.RegisterRoutes(protected)
	deps.ExportHandler.RegisterRoutes(protected)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
