package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
)

var minPrice = decimal.RequireFromString("0.01")

// ProductUseCase casos de uso CRUD para productos (lado backend).
// Aquí se garantiza que cada producto referencie una categoría existente.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	in, err := uc.check(ctx, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, p.ID)
}

// GetByID obtiene un producto con su categoría embebida; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToProductResponse(p)
	return &out, nil
}

// Update reemplaza todos los campos editables.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	in, err := uc.check(ctx, in)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.CategoryID = in.CategoryID
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List devuelve todos los productos. El listado no se pagina: el front filtra en memoria.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ToProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) check(ctx context.Context, in dto.ProductRequest) (dto.ProductRequest, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := dto.Validate(in); err != nil {
		return in, err
	}
	if in.Price.LessThan(minPrice) {
		return in, fmt.Errorf("%w: price:min=%s", domain.ErrInvalidInput, minPrice)
	}
	cat, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return in, err
	}
	if cat == nil {
		return in, domain.ErrCategoryNotFound
	}
	return in, nil
}
