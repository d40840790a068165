package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

const productsPath = "/api/products"

func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, productsPath, nil, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Product, 0, len(out))
	for _, r := range out {
		list = append(list, r.Entity())
	}
	return list, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", productsPath, id), nil, &out); err != nil {
		return nil, err
	}
	p := out.Entity()
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPost, productsPath, dto.NewProductRequest(p), &out); err != nil {
		return nil, err
	}
	created := out.Entity()
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, p entity.Product) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", productsPath, id), dto.NewProductRequest(p), &out); err != nil {
		return nil, err
	}
	updated := out.Entity()
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", productsPath, id), nil, nil)
}
