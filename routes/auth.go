package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ojohpeters/Farmers-marketplace/auth"
	userControllers "github.com/ojohpeters/Farmers-marketplace/controllers/user"
	"github.com/ojohpeters/Farmers-marketplace/middleware"
)

func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(deps.DB))
		authGroup.POST("/login", auth.Login(deps.DB))
	}

	// Authenticated profile access
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(deps.DB))
	}
}
