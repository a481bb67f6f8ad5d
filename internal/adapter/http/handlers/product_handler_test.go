package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"guytogo/internal/adapter/http/handlers/mocks"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProductHandler_Catalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list hides file url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "p1", FileURL: "https://files/p1.pdf"}}, nil)
		h := NewProductHandler(uc)
		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		w := doJSON(r, http.MethodGet, "/v1/products", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["file_url"] != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Product{}, usecase.ErrProductNotFound)
		h := NewProductHandler(uc)
		r := gin.New()
		r.GET("/v1/products/:id", h.GetProduct)

		w := doJSON(r, http.MethodGet, "/v1/products/nope", "")
		if w.Code != http.StatusNotFound || errorCode(t, w) != "PRODUCT_NOT_FOUND" {
			t.Fatalf("expected 404 PRODUCT_NOT_FOUND, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestProductHandler_Admin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Product{}, usecase.ErrInvalidProduct)
		h := NewProductHandler(uc)
		r := gin.New()
		r.POST("/v1/admin/products", h.CreateProduct)

		w := doJSON(r, http.MethodPost, "/v1/admin/products", `{"title":"Kit","category":"Worksheets","price":-5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), usecase.ProductInput{
			Title:        "Kit",
			Category:     "Worksheets",
			Price:        1500,
			ResourceType: entities.ResourceTypeLink,
		}).Return(entities.Product{ID: "p-9", Title: "Kit"}, nil)
		h := NewProductHandler(uc)
		r := gin.New()
		r.POST("/v1/admin/products", h.CreateProduct)

		w := doJSON(r, http.MethodPost, "/v1/admin/products", `{"title":"Kit","category":"Worksheets","price":1500,"resource_type":"link"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)
		uc.EXPECT().Delete(gomock.Any(), "p-2").Return(usecase.ErrProductNotFound)
		h := NewProductHandler(uc)
		r := gin.New()
		r.DELETE("/v1/admin/products/:id", h.DeleteProduct)

		if w := doJSON(r, http.MethodDelete, "/v1/admin/products/p-1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodDelete, "/v1/admin/products/p-2", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProductHandler_Library(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProductUseCase(ctrl)
	uc.EXPECT().Library(gomock.Any(), "u-1").Return([]entities.Product{{ID: "p1", FileURL: "https://files/p1.pdf"}}, nil)
	h := NewProductHandler(uc)
	r := gin.New()
	r.GET("/v1/me/library", asUser("u-1"), h.Library)

	w := doJSON(r, http.MethodGet, "/v1/me/library", "")
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || len(body) != 1 || body[0]["file_url"] != "https://files/p1.pdf" {
		t.Fatalf("unexpected library response: %d %s", w.Code, w.Body.String())
	}
}
