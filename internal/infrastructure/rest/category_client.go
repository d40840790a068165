package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

const categoriesPath = "/api/categories"

func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var out []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, categoriesPath, nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Category, 0, len(out))
	for _, r := range out {
		list = append(list, r.Entity())
	}
	return list, nil
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	var out dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", categoriesPath, id), nil, &out); err != nil {
		return nil, err
	}
	cat := out.Entity()
	return &cat, nil
}

func (c *Client) CreateCategory(ctx context.Context, cat entity.Category) (*entity.Category, error) {
	var out dto.CategoryResponse
	if err := c.do(ctx, http.MethodPost, categoriesPath, dto.NewCategoryRequest(cat), &out); err != nil {
		return nil, err
	}
	created := out.Entity()
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, cat entity.Category) (*entity.Category, error) {
	var out dto.CategoryResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", categoriesPath, id), dto.NewCategoryRequest(cat), &out); err != nil {
		return nil, err
	}
	updated := out.Entity()
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", categoriesPath, id), nil, nil)
}
