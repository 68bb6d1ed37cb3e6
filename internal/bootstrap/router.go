package bootstrap

import (
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/config"
	httpapi "github.com/GoSim-25-26J-441/taskboard-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/api/http/middleware"
	authhttp "github.com/GoSim-25-26J-441/taskboard-backend/internal/auth/http"
	authmiddleware "github.com/GoSim-25-26J-441/taskboard-backend/internal/auth/middleware"
	projectshttp "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/http"
	taskshttp "github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/http"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORS        config.CORSConfig
	Services    *Services
	// DB and Redis are reported by the health check; nil means disabled.
	DB    httpapi.Pinger
	Redis httpapi.Pinger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.CORS)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	svc := dep.Services
	requireUser := authmiddleware.RequireUser(svc.Sessions, svc.Identity)

	authGroup := r.Group("/auth")
	authhttp.New(svc.Auth).Register(
		authGroup.Group("", svc.AuthLimiter.Middleware()),
		authGroup.Group("", requireUser),
	)

	projectshttp.New(svc.Projects, svc.Members).Register(r.Group("/projects", requireUser))
	taskshttp.New(svc.Tasks).Register(r.Group("/tasks", requireUser))

	return r
}

// corsConfig allows the configured origins; an empty list or "*" allows any
// origin without credentials.
func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.AllowedOrigins
	c.AllowCredentials = true
	return c
}
