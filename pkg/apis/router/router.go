package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sukryu/pAdmin/pkg/apis/handlers"
	"github.com/sukryu/pAdmin/pkg/apis/routes"
	"github.com/sukryu/pAdmin/pkg/controllers"
	"github.com/sukryu/pAdmin/pkg/middleware"
	"github.com/sukryu/pAdmin/pkg/utils/jwt"
)

type Router struct {
	paths           routes.Paths
	authHandler     *handlers.AuthHandler
	resourceHandler *handlers.ResourceHandler
	jwtManager      *jwt.JWTManager
	logger          *zap.Logger
}

func NewRouter(
	paths routes.Paths,
	authHandler *handlers.AuthHandler,
	resourceHandler *handlers.ResourceHandler,
	jwtManager *jwt.JWTManager,
	logger *zap.Logger,
) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		paths:           paths,
		authHandler:     authHandler,
		resourceHandler: resourceHandler,
		jwtManager:      jwtManager,
		logger:          logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorMiddleware(r.logger))

	public := router.Group(r.paths.Base)
	{
		public.POST("/login", r.authHandler.Login)
	}

	protected := router.Group(r.paths.Base)
	protected.Use(middleware.JWTAuth(r.jwtManager))
	protected.Use(middleware.RequireRole(controllers.AdminRole))
	{
		h := r.resourceHandler
		protected.GET("/resources", h.Catalog)
		protected.GET("/resources/:resource", h.List)
		protected.GET("/resources/:resource/meta", h.Meta)
		protected.GET("/resources/:resource/create", h.CreateForm)
		protected.POST("/resources/:resource/create", h.Create)
		protected.GET("/resources/:resource/:id/edit", h.EditForm)
		protected.POST("/resources/:resource/:id/edit", h.Update)
		protected.POST("/resources/:resource/:id/delete", h.Delete)
	}

	return router
}
