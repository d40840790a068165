package ports

import (
	"context"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

// CategoryGateway es el puerto de salida hacia el servicio remoto de categorías.
// Cualquier fallo (red, HTTP no 2xx, cuerpo inválido) se reporta envolviendo domain.ErrRemote.
type CategoryGateway interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, c entity.Category) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, c entity.Category) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// ProductGateway es el puerto de salida hacia el servicio remoto de productos.
type ProductGateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, p entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, p entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
