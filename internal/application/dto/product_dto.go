package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

// ProductRequest entrada para crear o actualizar un producto.
// El mínimo de Price (0.01) se valida en el caso de uso: validator no conoce decimal.Decimal.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"max=400"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"categoryId" validate:"required,gt=0"`
}

// CategoryRefResponse categoría embebida en un producto.
type CategoryRefResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       decimal.Decimal      `json:"price"`
	CategoryID  int64                `json:"categoryId"`
	Category    *CategoryRefResponse `json:"category,omitempty"`
}

// NewProductRequest arma el cuerpo a enviar a partir de la entidad.
func NewProductRequest(p entity.Product) ProductRequest {
	return ProductRequest{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
	}
}

// ToProductResponse convierte la entidad al formato de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	out := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
	}
	if p.Category != nil {
		out.Category = &CategoryRefResponse{ID: p.Category.ID, Nombre: p.Category.Nombre}
	}
	return out
}

// Entity convierte la respuesta remota en entidad.
func (r ProductResponse) Entity() entity.Product {
	p := entity.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
	}
	if r.Category != nil {
		p.Category = &entity.CategoryRef{ID: r.Category.ID, Nombre: r.Category.Nombre}
	}
	return p
}
