package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"relotrack/internal/handler"
	"relotrack/pkg/mq"
	"relotrack/pkg/rbac"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	clientHandler *handler.ClientHandler,
	milestoneHandler *handler.MilestoneHandler,
	statsHandler *handler.StatsHandler,
	jwtSecret string,
	db *pgxpool.Pool,
	publisher *mq.Publisher,
) *Router {
	r := gin.Default()
	r.Use(TraceMiddleware(), MetricsMiddleware())

	// Health endpoints first
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.GET("/clients", RequirePermission(rbac.PermissionReadClient), clientHandler.ListClients)
		auth.GET("/clients/:id", RequirePermission(rbac.PermissionReadClient), clientHandler.GetClient)
		auth.POST("/clients", RequirePermission(rbac.PermissionCreateClient), clientHandler.CreateClient)
		auth.DELETE("/clients/:id", RequirePermission(rbac.PermissionDeleteClient), clientHandler.DeleteClient)
		auth.POST("/milestones/:id/status", RequirePermission(rbac.PermissionUpdateMilestone), milestoneHandler.UpdateStatus)
		auth.GET("/stats", RequirePermission(rbac.PermissionReadClient), statsHandler.GetStats)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
