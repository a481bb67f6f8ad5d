package handlers

import (
	"errors"
	request "guytogo/internal/adapter/http/dto/request"
	response "guytogo/internal/adapter/http/dto/response"
	"guytogo/internal/usecase"
	"guytogo/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the catalog and the caller's digital library.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts godoc
// @Summary      Catalog, newest first
// @Tags         products
// @Produce      json
// @Success      200  {array}  response.ProductResponse
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[product][handler] list failed err=%v", err)
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(list))
}

// GetProduct godoc
// @Summary      Catalog entry
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// CreateProduct godoc
// @Summary      Add a catalog entry and alert every user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CreateProductRequest  true  "Product"
// @Success      201   {object}  response.ProductResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /admin/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[product][handler] create invalid payload err=%v", err)
		writeError(c, invalidRequest())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		log.Printf("[product][handler] create failed err=%v", err)
		writeError(c, mapProductError(err))
		return
	}
	log.Printf("[product][handler] create success product_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromProduct(created))
}

// DeleteProduct godoc
// @Summary      Remove a catalog entry (owners keep the id)
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[product][handler] delete failed product_id=%s err=%v", id, err)
		writeError(c, mapProductError(err))
		return
	}
	log.Printf("[product][handler] delete success product_id=%s", id)
	c.Status(http.StatusNoContent)
}

// Library godoc
// @Summary      Products the caller owns, with download links
// @Tags         me
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.ProductResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /me/library [get]
func (h *ProductHandler) Library(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	list, err := h.usecase.Library(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[product][handler] library failed user_id=%s err=%v", userID, err)
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLibrary(list))
}

func mapProductError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidProduct) {
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Invalid product", http.StatusBadRequest)
	}
	return mapCommonError(err)
}
