package views

import (
	"context"

	"github.com/jhoicas/catalogo-web/internal/application/ports"
	"github.com/jhoicas/catalogo-web/internal/domain/catalog"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// ProductList modelo de la vista de listado de productos con filtro por categoría y texto.
type ProductList struct {
	products   ports.ProductGateway
	categories ports.CategoryGateway
	confirm    Confirm
	log        *logger.Logger

	Products   []entity.Product
	Categories []entity.Category
	Filtered   []entity.Product
	Filter     catalog.ProductFilter
	Error      string
}

func NewProductList(products ports.ProductGateway, categories ports.CategoryGateway, confirm Confirm, log *logger.Logger) *ProductList {
	return &ProductList{
		products:   products,
		categories: categories,
		confirm:    confirm,
		log:        log.Named("product_list"),
	}
}

// Load carga productos y categorías. El fallo de categorías solo se registra:
// la tabla sigue mostrándose con "Sin categoría".
func (v *ProductList) Load(ctx context.Context) error {
	err := v.LoadProducts(ctx)
	v.LoadCategories(ctx)
	return err
}

func (v *ProductList) LoadProducts(ctx context.Context) error {
	v.Error = ""
	list, err := v.products.ListProducts(ctx)
	if err != nil {
		v.Error = MsgLoadProducts
		v.log.Error().Err(err).Msg(MsgLoadProducts)
		return err
	}
	v.Products = list
	v.apply()
	return nil
}

func (v *ProductList) LoadCategories(ctx context.Context) {
	list, err := v.categories.ListCategories(ctx)
	if err != nil {
		v.log.Warn().Err(err).Msg("error al cargar categorías")
		return
	}
	v.Categories = list
}

// SetCategory fija el filtro de categoría; nil o 0 = todas.
func (v *ProductList) SetCategory(id *int64) {
	v.Filter.CategoryID = id
	v.apply()
}

func (v *ProductList) SetSearch(term string) {
	v.Filter.Search = term
	v.apply()
}

func (v *ProductList) CategoryName(id int64) string {
	return catalog.CategoryName(v.Categories, id)
}

// Delete elimina tras confirmación y recarga los productos.
func (v *ProductList) Delete(ctx context.Context, id int64) error {
	done, err := confirmDelete(ctx, v.confirm, ConfirmDeleteProduct, id, v.products.DeleteProduct, v.log, MsgDeleteProduct)
	if err != nil {
		v.Error = MsgDeleteProduct
		return err
	}
	if !done {
		return nil
	}
	return v.LoadProducts(ctx)
}

func (v *ProductList) apply() {
	v.Filtered = catalog.FilterProducts(v.Products, v.Filter)
}
