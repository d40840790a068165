package views

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-web/internal/application/ports"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/form"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// ProductForm modelo del formulario de alta/edición de producto.
// Además del producto carga las categorías para el selector.
type ProductForm struct {
	products   ports.ProductGateway
	categories ports.CategoryGateway
	nav        Navigator
	dispatch   *Dispatcher[entity.Product]
	log        *logger.Logger

	Key        string
	ID         int64
	EditMode   bool
	Form       *form.Form
	Categories []entity.Category
	State      FormState
	Error      string
}

func NewProductForm(products ports.ProductGateway, categories ports.CategoryGateway, nav Navigator,
	guard *SubmitGuard, log *logger.Logger, key string) *ProductForm {
	l := log.Named("product_form")
	return &ProductForm{
		products:   products,
		categories: categories,
		nav:        nav,
		dispatch: &Dispatcher[entity.Product]{
			Create: func(ctx context.Context, p entity.Product) error {
				_, err := products.CreateProduct(ctx, p)
				return err
			},
			Update: func(ctx context.Context, id int64, p entity.Product) error {
				_, err := products.UpdateProduct(ctx, id, p)
				return err
			},
			ListRoute:   RouteProducts,
			CreateError: MsgCreateProduct,
			UpdateError: MsgUpdateProduct,
			Nav:         nav,
			Guard:       guard,
			Log:         l,
		},
		log:   l,
		Key:   key,
		Form:  form.New(form.ProductSchema),
		State: StateEditable,
	}
}

func (v *ProductForm) Bind(idParam string) error {
	id, edit, err := parseID(idParam)
	if err != nil {
		return err
	}
	v.ID, v.EditMode = id, edit
	return nil
}

// LoadCategories llena el selector. El fallo se muestra pero no bloquea el formulario.
func (v *ProductForm) LoadCategories(ctx context.Context) {
	list, err := v.categories.ListCategories(ctx)
	if err != nil {
		v.Error = MsgLoadCategories
		v.log.Error().Err(err).Msg(MsgLoadCategories)
		return
	}
	v.Categories = list
}

// Init carga las categorías y, en edición, el producto.
func (v *ProductForm) Init(ctx context.Context, idParam string) {
	v.LoadCategories(ctx)
	if err := v.Bind(idParam); err != nil {
		v.State, v.Error = StateError, MsgLoadProduct
		v.log.Warn().Str("id", idParam).Msg("identificador inválido")
		return
	}
	if !v.EditMode {
		return
	}
	v.State = StateLoadingExisting
	p, err := v.products.GetProduct(ctx, v.ID)
	if err != nil {
		v.State, v.Error = StateError, MsgLoadProduct
		v.log.Error().Err(err).Int64("id", v.ID).Msg(MsgLoadProduct)
		return
	}
	v.Form.Patch(map[string]string{
		form.FieldName:        p.Name,
		form.FieldDescription: p.Description,
		form.FieldPrice:       p.Price.String(),
		form.FieldCategoryID:  strconv.FormatInt(p.CategoryID, 10),
	})
	v.State = StateEditable
}

func (v *ProductForm) Set(field, value string) { v.Form.Set(field, value) }

func (v *ProductForm) ErrorMessage(field string) string { return v.Form.ErrorMessage(field) }

// Submit valida, convierte precio y categoría y envía.
func (v *ProductForm) Submit(ctx context.Context) error {
	if !v.Form.Valid() {
		v.Form.MarkAllTouched()
		return domain.ErrInvalidInput
	}
	payload, err := v.payload()
	if err != nil {
		v.Form.MarkAllTouched()
		return err
	}
	v.State, v.Error = StateSubmitting, ""
	msg, err := v.dispatch.Submit(ctx, v.Key, v.EditMode, v.ID, payload)
	if err != nil {
		v.State, v.Error = StateEditable, msg
		return err
	}
	return nil
}

func (v *ProductForm) payload() (entity.Product, error) {
	price, err := decimal.NewFromString(v.Form.Value(form.FieldPrice))
	if err != nil {
		return entity.Product{}, fmt.Errorf("%w: precio: %v", domain.ErrInvalidInput, err)
	}
	catID, err := strconv.ParseInt(v.Form.Value(form.FieldCategoryID), 10, 64)
	if err != nil {
		return entity.Product{}, fmt.Errorf("%w: categoría: %v", domain.ErrInvalidInput, err)
	}
	return entity.Product{
		ID:          v.ID,
		Name:        v.Form.Value(form.FieldName),
		Description: v.Form.Value(form.FieldDescription),
		Price:       price,
		CategoryID:  catID,
	}, nil
}

func (v *ProductForm) Cancel() { v.nav.Navigate(RouteProducts) }
