package entities

import "time"

// ResourceType is the kind of digital resource a product gives access to.
type ResourceType string

const (
	ResourceTypePDF   ResourceType = "PDF"
	ResourceTypeImage ResourceType = "IMAGE"
	ResourceTypeLink  ResourceType = "LINK"
)

// Valid reports whether t is a known resource type.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceTypePDF, ResourceTypeImage, ResourceTypeLink:
		return true
	}
	return false
}

// Product is a purchasable digital resource.
//
// Monetary representation:
//   - Price is a whole currency amount (no minor units), never negative.
type Product struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Price        int64        `json:"price"`
	Category     string       `json:"category"`
	ImageURL     string       `json:"image_url"`
	FileURL      string       `json:"file_url"`
	ResourceType ResourceType `json:"resource_type"`
	CreatedAt    time.Time    `json:"created_at"`
}
