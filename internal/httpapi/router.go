package httpapi

import (
	"fmt"
	"net/http"

	"github.com/axiomai/axiom-server/internal/chat"
	"github.com/axiomai/axiom-server/internal/common"
	"github.com/axiomai/axiom-server/internal/config"
	"github.com/axiomai/axiom-server/internal/httpapi/handlers"
	"github.com/axiomai/axiom-server/internal/httpapi/middleware"
	"github.com/axiomai/axiom-server/internal/store/redisstore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(gdb *gorm.DB, cfg config.Config, rds *redisstore.Store, completer chat.Completer) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery(cfg.IsProduction()))
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, fmt.Sprintf("Route %s not found", c.Request.URL.Path))
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	h := handlers.NewHandler(gdb, cfg, rds, completer)

	r.GET("/health", h.Health)
	r.GET("/health/ping", h.Ping)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/session", h.Session)

	protected := r.Group("/")
	protected.Use(middleware.AuthRequired(gdb, cfg))
	{
		protected.GET("/auth/me", h.Me)

		protected.POST("/chats", h.CreateChat)
		protected.GET("/chats", h.ListChats)
		protected.POST("/chats/send", h.SendMessage)
		protected.GET("/chats/:id", h.GetChat)
		protected.PATCH("/chats/:id", h.UpdateChat)
		protected.DELETE("/chats/:id", h.DeleteChat)
		protected.GET("/chats/:id/messages", h.ListMessages)
		protected.POST("/chats/:id/messages", h.AddMessage)
		protected.DELETE("/chats/:id/messages", h.ClearMessages)

		adminGroup := protected.Group("/admin")
		adminGroup.Use(middleware.RequireRole("admin"))
		adminGroup.GET("/dashboard", h.Dashboard)
	}

	return r
}
