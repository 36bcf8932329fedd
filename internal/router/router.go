package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dhaba/internal/domain"
	"dhaba/internal/handler"
	"dhaba/internal/middleware"
	"dhaba/internal/service"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Tenant  *handler.TenantHandler
	User    *handler.UserHandler
	Menu    *handler.MenuHandler
	Table   *handler.TableHandler
	Order   *handler.OrderHandler
	Invoice *handler.InvoiceHandler
	Report  *handler.ReportHandler
	Health  *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, corsOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", h.Auth.Me)

	// Staff management (restaurant-scoped, owner/manager only)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleOwner), h.User.Delete)

	// Menu management; writes are owner/manager only, reads open to all staff
	menu := protected.Group("/menu")
	menu.GET("/categories", h.Menu.ListCategories)
	menu.POST("/categories", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Menu.CreateCategory)
	menu.PUT("/categories/:id", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Menu.UpdateCategory)
	menu.DELETE("/categories/:id", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Menu.DeleteCategory)
	menu.GET("/items", h.Menu.ListItems)
	menu.GET("/items/:id", h.Menu.GetItem)
	menu.POST("/items", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Menu.CreateItem)
	menu.PUT("/items/:id", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Menu.UpdateItem)
	menu.DELETE("/items/:id", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Menu.DeleteItem)
	menu.POST("/items/:id/image", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Menu.UploadItemImage)
	menu.GET("/items/:id/image", h.Menu.GetItemImageURL)

	// Dining tables
	tables := protected.Group("/tables")
	tables.GET("", h.Table.List)
	tables.POST("", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Table.Create)
	tables.PUT("/:id", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Table.Update)
	tables.DELETE("/:id", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Table.Delete)

	// Order workflow
	orders := protected.Group("/orders")
	orders.POST("", h.Order.Create)
	orders.GET("", h.Order.List)
	orders.GET("/:id", h.Order.GetByID)
	orders.PUT("/:id/items", h.Order.UpdateItems)
	orders.PATCH("/:id/status", h.Order.ChangeStatus)
	orders.POST("/:id/settle", h.Order.Settle)
	orders.POST("/:id/cancel", middleware.RequireRole(domain.RoleOwner, domain.RoleManager), h.Order.Cancel)

	// Billing documents
	orders.GET("/:id/receipt", h.Invoice.Receipt)
	orders.GET("/:id/invoice", h.Invoice.Invoice)
	orders.GET("/:id/kot", h.Invoice.KOT)

	// Reporting (owner/manager only)
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireRole(domain.RoleOwner, domain.RoleManager))
	reports.GET("/register", h.Report.SalesRegister)
	reports.GET("/register/export", h.Report.ExportRegister)
	reports.GET("/daily", h.Report.DailySummary)
	reports.POST("/day-close", h.Report.DayClose)

	// Admin routes - restaurant management (owner only)
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleOwner))
	admin.POST("/tenants", h.Tenant.Create)
	admin.GET("/tenants", h.Tenant.List)
	admin.GET("/tenants/:id", h.Tenant.GetByID)
	admin.PUT("/tenants/:id", h.Tenant.Update)
	admin.DELETE("/tenants/:id", h.Tenant.Delete)

	return r
}
