package handlers

import (
	"errors"
	"guytogo/internal/adapter/http/middleware"
	"guytogo/internal/usecase"
	"guytogo/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}

// actorID returns the acting user id, writing 401 when the route was mounted
// without RequireAuth.
func actorID(c *gin.Context) (string, bool) {
	actor, ok := middleware.Actor(c)
	if !ok {
		writeError(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized))
		return "", false
	}
	return actor.UserID, true
}

// mapCommonError covers the sentinels shared by every handler.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIdentityNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidIdentityID):
		return pkg.NewDomainErrorSimple("INVALID_USER_ID", "Invalid user id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRequestNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUEST_NOT_FOUND", "Payment request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentRequestID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_REQUEST_ID", "Invalid payment request id", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
