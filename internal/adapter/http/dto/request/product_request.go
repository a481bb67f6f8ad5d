package request

import (
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase"
	"strings"
)

type CreateProductRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Category     string `json:"category" binding:"required"`
	ImageURL     string `json:"image_url"`
	FileURL      string `json:"file_url"`
	ResourceType string `json:"resource_type"`
}

func (r CreateProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Category:     r.Category,
		ImageURL:     r.ImageURL,
		FileURL:      r.FileURL,
		ResourceType: entities.ResourceType(strings.ToUpper(strings.TrimSpace(r.ResourceType))),
	}
}
