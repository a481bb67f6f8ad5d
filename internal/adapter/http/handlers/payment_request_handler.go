package handlers

import (
	"errors"
	request "guytogo/internal/adapter/http/dto/request"
	response "guytogo/internal/adapter/http/dto/response"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase"
	"guytogo/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentRequestHandler serves submission of payment claims and the
// administrator's review screens.
type PaymentRequestHandler struct {
	usecase usecase.IPaymentRequestUseCase
}

func NewPaymentRequestHandler(uc usecase.IPaymentRequestUseCase) *PaymentRequestHandler {
	return &PaymentRequestHandler{usecase: uc}
}

// SubmitOrder godoc
// @Summary      Claim an MMG payment for a cart of products
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.OrderRequest  true  "Order"
// @Success      201   {object}  response.PaymentRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *PaymentRequestHandler) SubmitOrder(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req request.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] submit-order invalid payload user_id=%s err=%v", userID, err)
		writeError(c, invalidRequest())
		return
	}

	created, err := h.usecase.SubmitOrder(c.Request.Context(), userID, req.ToLines(), req.ToDetails())
	if err != nil {
		log.Printf("[payment][handler] submit-order failed user_id=%s err=%v", userID, err)
		writeError(c, mapPaymentRequestError(err))
		return
	}
	log.Printf("[payment][handler] submit-order success request_id=%s amount=%d", created.ID, created.Amount)

	c.JSON(http.StatusCreated, response.FromPaymentRequest(created))
}

// SubmitSubscriptionPayment godoc
// @Summary      Claim an MMG payment for the yearly subscription
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.SubscriptionPaymentRequest  true  "Transaction"
// @Success      201   {object}  response.PaymentRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /subscriptions/payments [post]
func (h *PaymentRequestHandler) SubmitSubscriptionPayment(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req request.SubscriptionPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest())
		return
	}

	created, err := h.usecase.SubmitSubscriptionPayment(c.Request.Context(), userID, req.ToDetails())
	if err != nil {
		log.Printf("[payment][handler] submit-subscription failed user_id=%s err=%v", userID, err)
		writeError(c, mapPaymentRequestError(err))
		return
	}
	log.Printf("[payment][handler] submit-subscription success request_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromPaymentRequest(created))
}

// ListMine godoc
// @Summary      The caller's payment requests, newest first
// @Tags         me
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.PaymentRequestResponse
// @Router       /me/payment-requests [get]
func (h *PaymentRequestHandler) ListMine(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, mapPaymentRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRequests(list))
}

// AdminList godoc
// @Summary      Payment requests for review, newest first
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        status  query     string  false  "pending (default) or all"
// @Success      200     {array}   response.PaymentRequestResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /admin/payment-requests [get]
func (h *PaymentRequestHandler) AdminList(c *gin.Context) {
	status := strings.ToLower(strings.TrimSpace(c.DefaultQuery("status", "pending")))

	var (
		list []entities.PaymentRequest
		err  error
	)
	switch status {
	case "pending":
		list, err = h.usecase.ListPending(c.Request.Context())
	case "all":
		list, err = h.usecase.ListAll(c.Request.Context())
	default:
		writeError(c, pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "status must be pending or all", http.StatusBadRequest))
		return
	}
	if err != nil {
		log.Printf("[payment][handler] admin list failed status=%s err=%v", status, err)
		writeError(c, mapPaymentRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRequests(list))
}

// AdminGet godoc
// @Summary      One payment request
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Payment request ID"
// @Success      200  {object}  response.PaymentRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/payment-requests/{id} [get]
func (h *PaymentRequestHandler) AdminGet(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRequest(r))
}

// Verify godoc
// @Summary      Look the claimed transaction up at the payment provider
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Payment request ID"
// @Success      200  {object}  response.PaymentVerificationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /admin/payment-requests/{id}/verification [get]
func (h *PaymentRequestHandler) Verify(c *gin.Context) {
	id := c.Param("id")
	r, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapPaymentRequestError(err))
		return
	}
	lookup, err := h.usecase.Verify(c.Request.Context(), r.ID)
	if err != nil {
		log.Printf("[payment][handler] verify failed request_id=%s err=%v", r.ID, err)
		writeError(c, mapPaymentRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentLookup(r, lookup))
}

func mapPaymentRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyOrder):
		return pkg.NewDomainErrorSimple("EMPTY_ORDER", "Order has no items", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be at least 1", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransactionDetails):
		return pkg.NewDomainErrorSimple("INVALID_TRANSACTION_DETAILS", "Transaction id, sender name and sender phone are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
