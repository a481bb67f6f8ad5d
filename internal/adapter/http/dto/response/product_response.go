package response

import (
	"guytogo/internal/domain/entities"
	"time"
)

type ProductResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"image_url"`
	FileURL      string    `json:"file_url,omitempty"`
	ResourceType string    `json:"resource_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromProduct hides the download link; it is only exposed through the
// owner's library.
func FromProduct(p entities.Product) ProductResponse {
	r := fromProduct(p)
	r.FileURL = ""
	return r
}

func FromProducts(list []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromLibrary(list []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, fromProduct(p))
	}
	return out
}

func fromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Category:     p.Category,
		ImageURL:     p.ImageURL,
		FileURL:      p.FileURL,
		ResourceType: string(p.ResourceType),
		CreatedAt:    p.CreatedAt,
	}
}
