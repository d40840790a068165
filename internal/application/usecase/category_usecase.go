package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías (lado backend).
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products}
}

// Create valida y persiste una categoría nueva.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	in = normalizeCategory(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Category{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.ToCategoryResponse(c)
	return &out, nil
}

// GetByID obtiene una categoría; domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToCategoryResponse(c)
	return &out, nil
}

// Update reemplaza nombre y descripción.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	in = normalizeCategory(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Nombre = in.Nombre
	c.Descripcion = in.Descripcion
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.ToCategoryResponse(c)
	return &out, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ToCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría sin productos; domain.ErrCategoryInUse si aún tiene.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.products.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("contar productos de la categoría: %w", err)
	}
	if n > 0 {
		return domain.ErrCategoryInUse
	}
	return uc.repo.Delete(ctx, id)
}

func normalizeCategory(in dto.CategoryRequest) dto.CategoryRequest {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Descripcion = strings.TrimSpace(in.Descripcion)
	return in
}
