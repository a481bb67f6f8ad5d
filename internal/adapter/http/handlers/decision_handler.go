package handlers

import (
	"errors"
	response "guytogo/internal/adapter/http/dto/response"
	"guytogo/internal/usecase"
	"guytogo/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DecisionHandler lets the administrator approve or decline a payment request.
type DecisionHandler struct {
	usecase usecase.IEntitlementUseCase
}

func NewDecisionHandler(uc usecase.IEntitlementUseCase) *DecisionHandler {
	return &DecisionHandler{usecase: uc}
}

// Approve godoc
// @Summary      Approve a pending payment request and grant the entitlement
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Payment request ID"
// @Success      200  {object}  response.PaymentRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /admin/payment-requests/{id}/approve [post]
func (h *DecisionHandler) Approve(c *gin.Context) {
	h.decide(c, usecase.DecisionApprove)
}

// Decline godoc
// @Summary      Decline a pending payment request
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Payment request ID"
// @Success      200  {object}  response.PaymentRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /admin/payment-requests/{id}/decline [post]
func (h *DecisionHandler) Decline(c *gin.Context) {
	h.decide(c, usecase.DecisionDecline)
}

func (h *DecisionHandler) decide(c *gin.Context, outcome usecase.DecisionOutcome) {
	id := c.Param("id")
	log.Printf("[entitlement][handler] decide start request_id=%s outcome=%s", id, outcome)

	updated, err := h.usecase.Decide(c.Request.Context(), id, outcome)
	if err != nil {
		log.Printf("[entitlement][handler] decide failed request_id=%s err=%v", id, err)
		if updated.ID != "" && errors.Is(err, usecase.ErrIdentityNotFound) {
			appErr := pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Request resolved, but its user no longer exists", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
				"request": response.FromPaymentRequest(updated),
			})
			return
		}
		writeError(c, mapDecisionError(err))
		return
	}
	log.Printf("[entitlement][handler] decide success request_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromPaymentRequest(updated))
}

func mapDecisionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentRequestAlreadyResolved):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUEST_ALREADY_RESOLVED", "Payment request already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOutcome):
		return pkg.NewDomainErrorSimple("INVALID_OUTCOME", "Outcome must be approve or decline", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
