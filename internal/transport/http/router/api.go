package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"jobtrack-api/internal/core/auth"
	"jobtrack-api/internal/core/cache"
	"jobtrack-api/internal/domain"
	mdw "jobtrack-api/internal/transport/http/middleware"
	resp "jobtrack-api/internal/transport/http/response"
)

type Deps struct {
	Users domain.UserRepository
	Jobs  domain.JobRepository
	JWTer *auth.JWTer
	Cache *cache.Cache // 可选
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.SecureHeaders(),
		cors.Default(),
		mdw.RateLimitPerIP(rate.Limit(10), 100),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	api := r.Group("/api/v1")
	protected := api.Group("")
	protected.Use(mdw.AuthJWT(d.JWTer))

	reg := NewRegistry()
	reg.Add(NewAuthModule(d.Users, d.JWTer, d.Cache))
	reg.Add(NewJobsModule(d.Jobs))
	reg.Mount(api, protected)

	r.NoRoute(func(c *gin.Context) {
		resp.Err(c, http.StatusNotFound, "route does not exist")
	})

	return r
}
