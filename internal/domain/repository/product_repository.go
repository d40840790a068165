package repository

import (
	"context"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y List rellenan Product.Category con el nombre de la categoría.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}
