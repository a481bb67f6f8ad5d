package routes

import (
	"guytogo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addAuthRoutes(rg *gin.RouterGroup, a *app) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", a.identityHandler.SignUp)
		auth.POST("/login", a.identityHandler.Login)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, a *app) {
	products := rg.Group(PathProducts)
	{
		products.GET("", a.productHandler.ListProducts)
		products.GET("/:id", a.productHandler.GetProduct)
	}
}
