package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/api"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/infra/metrics"
	"nagoyameshi/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Class   access.Class
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth            *api.AuthHandler
	User            *api.UserHandler
	Home            *api.HomeHandler
	Restaurant      *api.RestaurantHandler
	Category        *api.CategoryHandler
	Review          *api.ReviewHandler
	Reservation     *api.ReservationHandler
	Favorite        *api.FavoriteHandler
	Subscription    *api.SubscriptionHandler
	Content         *api.ContentHandler
	AdminRestaurant *api.AdminRestaurantHandler
	AdminCategory   *api.AdminCategoryHandler
	AdminUser       *api.AdminUserHandler
}

// NewRouter installs middleware and routes and returns the access table the
// routes were classified into.
func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, reg *metrics.Registry, authMiddleware *middleware.AuthMiddleware, h Handlers) *access.Table {
	table := access.NewTable()
	setupMiddleware(engine, cfg, logger, reg, authMiddleware, table)
	setupRoutes(engine, table, reg, h)
	return table
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, reg *metrics.Registry, authMiddleware *middleware.AuthMiddleware, table *access.Table) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.WrapLogger(logger, cfg.Log).LoggingMiddleware())
	engine.Use(middleware.Metrics(reg))
	engine.Use(middleware.ErrorHandler())
	// the gate needs the caller, so authentication runs first
	engine.Use(authMiddleware.Authenticate())
	engine.Use(middleware.AccessGate(table))
}

func setupRoutes(engine *gin.Engine, table *access.Table, reg *metrics.Registry, h Handlers) {
	root := &engine.RouterGroup
	addRoutes(root, table, []route{
		{Method: http.MethodGet, Path: "/health", Class: access.ClassPublic, Handler: healthCheck},
		{Method: http.MethodGet, Path: "/metrics", Class: access.ClassPublic, Handler: gin.WrapH(reg.Handler())},
	})

	if gin.Mode() == gin.DebugMode {
		addRoutes(root, table, []route{
			{Method: http.MethodGet, Path: "/swagger/*any", Class: access.ClassPublic, Handler: ginSwagger.WrapHandler(swaggerFiles.Handler)},
		})
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, table, []route{
			{Method: http.MethodGet, Path: "/home", Class: access.ClassPublic, Handler: h.Home.Home},
			{Method: http.MethodGet, Path: "/categories", Class: access.ClassPublic, Handler: h.Category.List},
			{Method: http.MethodGet, Path: "/holidays", Class: access.ClassPublic, Handler: h.Category.Holidays},
			{Method: http.MethodGet, Path: "/terms", Class: access.ClassPublic, Handler: h.Content.Term},
			{Method: http.MethodGet, Path: "/company", Class: access.ClassPublic, Handler: h.Content.Company},
		})

		auth := apiGroup.Group("/auth")
		addRoutes(auth, table, []route{
			{Method: http.MethodPost, Path: "/signup", Class: access.ClassPublic, Handler: h.Auth.Signup},
			{Method: http.MethodPost, Path: "/login", Class: access.ClassPublic, Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/refresh", Class: access.ClassPublic, Handler: h.Auth.Refresh},
			{Method: http.MethodPost, Path: "/logout", Class: access.ClassAuthenticated, Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Class: access.ClassAuthenticated, Handler: h.Auth.Me},
		})

		addRoutes(apiGroup.Group("/user"), table, []route{
			{Method: http.MethodGet, Path: "", Class: access.ClassAuthenticated, Handler: h.User.Get},
			{Method: http.MethodPut, Path: "", Class: access.ClassAuthenticated, Handler: h.User.Update},
		})

		addRoutes(apiGroup.Group("/restaurants"), table, []route{
			{Method: http.MethodGet, Path: "", Class: access.ClassPublic, Handler: h.Restaurant.List},
			{Method: http.MethodGet, Path: "/:id", Class: access.ClassPublic, Handler: h.Restaurant.Get},
			{Method: http.MethodGet, Path: "/:id/reviews", Class: access.ClassMemberBasic, Handler: h.Review.ListForRestaurant},
			{Method: http.MethodPost, Path: "/:id/reviews", Class: access.ClassMemberPremium, Handler: h.Review.Create},
			{Method: http.MethodPost, Path: "/:id/reservations", Class: access.ClassMemberPremium, Handler: h.Reservation.Create},
			{Method: http.MethodPost, Path: "/:id/favorites", Class: access.ClassMemberPremium, Handler: h.Favorite.Add},
		})

		addRoutes(apiGroup.Group("/reviews"), table, []route{
			{Method: http.MethodPut, Path: "/:id", Class: access.ClassMemberPremium, Handler: h.Review.Update},
			{Method: http.MethodDelete, Path: "/:id", Class: access.ClassMemberPremium, Handler: h.Review.Delete},
		})

		addRoutes(apiGroup.Group("/reservations"), table, []route{
			{Method: http.MethodGet, Path: "", Class: access.ClassMemberPremium, Handler: h.Reservation.ListOwn},
			{Method: http.MethodDelete, Path: "/:id", Class: access.ClassMemberPremium, Handler: h.Reservation.Cancel},
		})

		addRoutes(apiGroup.Group("/favorites"), table, []route{
			{Method: http.MethodGet, Path: "", Class: access.ClassMemberPremium, Handler: h.Favorite.ListOwn},
			{Method: http.MethodDelete, Path: "/:id", Class: access.ClassMemberPremium, Handler: h.Favorite.Remove},
		})

		addRoutes(apiGroup.Group("/subscription"), table, []route{
			{Method: http.MethodPost, Path: "", Class: access.ClassFreeOnly, Handler: h.Subscription.Subscribe},
			{Method: http.MethodGet, Path: "", Class: access.ClassMemberPremium, Handler: h.Subscription.Get},
			{Method: http.MethodPut, Path: "/payment-method", Class: access.ClassMemberPremium, Handler: h.Subscription.UpdatePaymentMethod},
			{Method: http.MethodDelete, Path: "", Class: access.ClassMemberPremium, Handler: h.Subscription.Cancel},
		})

		admin := apiGroup.Group("/admin")
		addRoutes(admin, table, []route{
			{Method: http.MethodGet, Path: "/dashboard", Class: access.ClassAdminOnly, Handler: h.AdminUser.Dashboard},
			{Method: http.MethodGet, Path: "/users", Class: access.ClassAdminOnly, Handler: h.AdminUser.List},
			{Method: http.MethodGet, Path: "/users/:id", Class: access.ClassAdminOnly, Handler: h.AdminUser.Get},

			{Method: http.MethodGet, Path: "/restaurants", Class: access.ClassAdminOnly, Handler: h.AdminRestaurant.List},
			{Method: http.MethodGet, Path: "/restaurants/:id", Class: access.ClassAdminOnly, Handler: h.AdminRestaurant.Get},
			{Method: http.MethodPost, Path: "/restaurants", Class: access.ClassAdminOnly, Handler: h.AdminRestaurant.Create},
			{Method: http.MethodPut, Path: "/restaurants/:id", Class: access.ClassAdminOnly, Handler: h.AdminRestaurant.Update},
			{Method: http.MethodDelete, Path: "/restaurants/:id", Class: access.ClassAdminOnly, Handler: h.AdminRestaurant.Delete},

			{Method: http.MethodGet, Path: "/categories", Class: access.ClassAdminOnly, Handler: h.AdminCategory.List},
			{Method: http.MethodGet, Path: "/categories/:id", Class: access.ClassAdminOnly, Handler: h.AdminCategory.Get},
			{Method: http.MethodPost, Path: "/categories", Class: access.ClassAdminOnly, Handler: h.AdminCategory.Create},
			{Method: http.MethodPut, Path: "/categories/:id", Class: access.ClassAdminOnly, Handler: h.AdminCategory.Update},
			{Method: http.MethodDelete, Path: "/categories/:id", Class: access.ClassAdminOnly, Handler: h.AdminCategory.Delete},

			{Method: http.MethodPut, Path: "/terms", Class: access.ClassAdminOnly, Handler: h.Content.UpdateTerm},
			{Method: http.MethodPut, Path: "/company", Class: access.ClassAdminOnly, Handler: h.Content.UpdateCompany},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// addRoutes registers each route with gin and records its access class under
// the same template gin reports from FullPath.
func addRoutes(g *gin.RouterGroup, table *access.Table, rs []route) {
	for _, r := range rs {
		h := r.Handler
		table.Set(r.Method, fullPath(g.BasePath(), r.Path), r.Class)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func fullPath(base, rel string) string {
	if rel == "" {
		return base
	}
	if base == "/" {
		return rel
	}
	return base + rel
}
