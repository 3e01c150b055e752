package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"limitless-backend/internal/requests"
	"limitless-backend/internal/resumes"
	"limitless-backend/internal/shared/auth"
	"limitless-backend/internal/shared/config"
	"limitless-backend/internal/shared/server/middleware"
	"limitless-backend/internal/users"
)

// RouterDeps carries the wired handlers the router needs.
type RouterDeps struct {
	Config          config.Config
	Tokens          *auth.Tokens
	UsersHandler    *users.Handler
	RequestsHandler *requests.Handler
	ResumesHandler  *resumes.Handler
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "LimitLess API is live")
	})

	api := r.Group("/api")

	// Unauthenticated writes get a modest per-client throttle.
	limiter := middleware.NewRateLimiter(nil)
	throttled := middleware.RateLimit(limiter, middleware.RateLimitRule{Rate: 1, Burst: 10})

	public := api.Group("")
	public.Use(throttled)
	deps.UsersHandler.RegisterRoutes(public)
	deps.RequestsHandler.RegisterPublicRoutes(public)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(deps.Tokens))
	deps.RequestsHandler.RegisterProtectedRoutes(protected)
	deps.ResumesHandler.RegisterRoutes(protected)

	return r
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
