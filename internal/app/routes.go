package app

import (
	"printshop/internal/auth"
	"printshop/internal/cache"
	"printshop/internal/config"
	"printshop/internal/handlers"
	"printshop/internal/service"
	"printshop/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, st store.Store, sessions auth.SessionStore, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")

	userSvc := service.NewUserService(st)
	authHandler := handlers.NewAuthHandler(sessions, userSvc, cfg.Session.TTL.Duration())
	registerAuthRoutes(api, authHandler, sessions)

	var catalogCache *cache.CatalogCache
	if rdb != nil {
		catalogCache = cache.NewCatalogCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}
	catalogSvc := service.NewCatalogService(st, catalogCache)
	productHandler := handlers.NewProductHandler(catalogSvc)
	registerProductRoutes(api, productHandler, sessions, st)

	orderSvc := service.NewOrderService(st)
	orderHandler := handlers.NewOrderHandler(orderSvc, userSvc)
	registerOrderRoutes(api, orderHandler, sessions, st)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Print Shop API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, sessions auth.SessionStore) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.GET("/user", auth.RequireSession(sessions), h.CurrentUser)
}

func registerProductRoutes(api *gin.RouterGroup, h *handlers.ProductHandler, sessions auth.SessionStore, st store.Store) {
	api.GET("/products", h.List)
	api.GET("/products/:id", h.GetByID)

	admin := api.Group("", auth.RequireSession(sessions), auth.RequireAdmin(st))
	admin.POST("/products", h.Create)
	admin.PATCH("/products/:id", h.Update)
	admin.DELETE("/products/:id", h.Delete)
}

func registerOrderRoutes(api *gin.RouterGroup, h *handlers.OrderHandler, sessions auth.SessionStore, st store.Store) {
	authed := api.Group("", auth.RequireSession(sessions))
	authed.GET("/orders", h.List)
	authed.POST("/orders", h.Create)

	admin := authed.Group("", auth.RequireAdmin(st))
	admin.PATCH("/orders/:id/status", h.UpdateStatus)
}
