package interfaces

import (
	"context"
	"guytogo/internal/domain/entities"
)

// IProductRepository abstracts persistence for the catalog.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}
