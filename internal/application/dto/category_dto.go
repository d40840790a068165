package dto

import "github.com/jhoicas/catalogo-web/internal/domain/entity"

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=3,max=50"`
	Descripcion string `json:"descripcion" validate:"max=255"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// NewCategoryRequest arma el cuerpo a enviar a partir de la entidad.
func NewCategoryRequest(c entity.Category) CategoryRequest {
	return CategoryRequest{Nombre: c.Nombre, Descripcion: c.Descripcion}
}

// ToCategoryResponse convierte la entidad al formato de salida.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion}
}

// Entity convierte la respuesta remota en entidad.
func (r CategoryResponse) Entity() entity.Category {
	return entity.Category{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion}
}
