package routes

import (
	"guytogo/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func addAdminRoutes(rg *gin.RouterGroup, a *app) {
	admin := rg.Group(PathAdmin,
		middleware.RequireAuth(a.tokens),
		middleware.RequireAdmin(a.identityUseCase, a.cfg.AdminEmail),
	)

	requests := admin.Group(PathPaymentRequests)
	{
		requests.GET("", a.paymentRequestHandler.AdminList)
		requests.GET("/:id", a.paymentRequestHandler.AdminGet)
		requests.GET("/:id/verification", a.paymentRequestHandler.Verify)
		requests.POST("/:id/approve", a.decisionHandler.Approve)
		requests.POST("/:id/decline", a.decisionHandler.Decline)
	}

	products := admin.Group(PathProducts)
	{
		products.POST("", a.productHandler.CreateProduct)
		products.DELETE("/:id", a.productHandler.DeleteProduct)
	}

	admin.GET("/users", a.identityHandler.ListUsers)
}
