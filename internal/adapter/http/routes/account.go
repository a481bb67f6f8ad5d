package routes

import (
	"guytogo/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// addAccountRoutes mounts everything a signed-in user can do for themselves.
func addAccountRoutes(rg *gin.RouterGroup, a *app) {
	authed := rg.Group("", middleware.RequireAuth(a.tokens))

	me := authed.Group(PathMe)
	{
		me.GET("", a.identityHandler.Me)
		me.PATCH("", a.identityHandler.UpdateMe)
		me.GET("/library", a.productHandler.Library)
		me.GET(PathPaymentRequests, a.paymentRequestHandler.ListMine)
	}

	authed.POST(PathOrders, a.paymentRequestHandler.SubmitOrder)
	authed.POST(PathSubscriptions+"/payments", a.paymentRequestHandler.SubmitSubscriptionPayment)

	plans := authed.Group(PathLessonPlans)
	{
		plans.POST("", a.lessonPlanHandler.Generate)
		plans.GET("", a.lessonPlanHandler.History)
		plans.DELETE("/:id", a.lessonPlanHandler.Delete)
	}
}
