package views_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-web/internal/application/views"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/form"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

func ptr(v int64) *int64 { return &v }

func seed() *fakeCatalog {
	return &fakeCatalog{
		categories: []entity.Category{
			{ID: 1, Nombre: "Herramientas"},
			{ID: 2, Nombre: "Jardín"},
		},
		products: []entity.Product{
			{ID: 1, Name: "Martillo", Description: "Acero forjado", Price: decimal.RequireFromString("12.50"), CategoryID: 1},
			{ID: 2, Name: "Manguera", Description: "15 metros", Price: decimal.RequireFromString("30"), CategoryID: 2},
			{ID: 3, Name: "Destornillador", Description: "Punta plana", Price: decimal.RequireFromString("4.99"), CategoryID: 1},
		},
	}
}

func always(answer bool) (views.Confirm, *[]string) {
	var asked []string
	return func(msg string) bool {
		asked = append(asked, msg)
		return answer
	}, &asked
}

// --- formularios ---

func TestCategoryForm_AltaExitosaNavegaUnaVez(t *testing.T) {
	fc, nav := seed(), &recNav{}
	v := views.NewCategoryForm(fc, nav, views.NewSubmitGuard(), logger.Nop(), "k1")
	v.Init(context.Background(), "")
	require.Equal(t, views.StateEditable, v.State)
	assert.False(t, v.EditMode)

	v.Set(form.FieldNombre, "Pinturas")
	require.NoError(t, v.Submit(context.Background()))

	assert.Equal(t, 1, fc.creates)
	assert.Equal(t, 0, fc.updates)
	assert.Equal(t, "Pinturas", fc.lastCategory.Nombre)
	assert.Equal(t, []string{views.RouteCategories}, nav.Routes())
}

func TestCategoryForm_NombreCortoNoLlamaAlBackend(t *testing.T) {
	fc, nav := seed(), &recNav{}
	v := views.NewCategoryForm(fc, nav, views.NewSubmitGuard(), logger.Nop(), "k1")
	v.Init(context.Background(), "")

	v.Form.Patch(map[string]string{form.FieldNombre: "ab"})
	err := v.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, fc.creates)
	assert.Empty(t, nav.Routes())
	assert.Equal(t, "Mínimo 3 caracteres", v.ErrorMessage(form.FieldNombre), "submit marca todo como tocado")
	assert.Empty(t, v.ErrorMessage(form.FieldDescripcion))
}

func TestCategoryForm_EdicionPrecargaYActualiza(t *testing.T) {
	fc, nav := seed(), &recNav{}
	v := views.NewCategoryForm(fc, nav, views.NewSubmitGuard(), logger.Nop(), "k1")
	v.Init(context.Background(), "2")

	require.Equal(t, views.StateEditable, v.State)
	assert.True(t, v.EditMode)
	assert.Equal(t, "Jardín", v.Form.Value(form.FieldNombre))
	assert.Empty(t, v.ErrorMessage(form.FieldNombre), "la precarga no marca tocado")

	v.Set(form.FieldNombre, "Jardinería")
	require.NoError(t, v.Submit(context.Background()))
	assert.Equal(t, 1, fc.updates)
	assert.Equal(t, 0, fc.creates)
	assert.Equal(t, int64(2), fc.lastUpdateID)
	assert.Equal(t, []string{views.RouteCategories}, nav.Routes())
}

func TestCategoryForm_FalloDeCargaPasaAError(t *testing.T) {
	fc := seed()
	fc.failGet = true
	v := views.NewCategoryForm(fc, &recNav{}, nil, logger.Nop(), "k1")
	v.Init(context.Background(), "1")

	assert.Equal(t, views.StateError, v.State)
	assert.Equal(t, views.MsgLoadCategory, v.Error)
}

func TestCategoryForm_IdInvalido(t *testing.T) {
	v := views.NewCategoryForm(seed(), &recNav{}, nil, logger.Nop(), "k1")
	v.Init(context.Background(), "abc")
	assert.Equal(t, views.StateError, v.State)
	assert.Equal(t, views.MsgLoadCategory, v.Error)
}

func TestCategoryForm_FalloAlGuardarConservaValores(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"", views.MsgCreateCategory},
		{"1", views.MsgUpdateCategory},
	}
	for _, tc := range cases {
		fc, nav := seed(), &recNav{}
		fc.failWrite = true
		v := views.NewCategoryForm(fc, nav, views.NewSubmitGuard(), logger.Nop(), "k1")
		v.Init(context.Background(), tc.id)
		v.Set(form.FieldNombre, "Electricidad")

		err := v.Submit(context.Background())
		require.Error(t, err)
		assert.Equal(t, tc.want, v.Error)
		assert.Equal(t, views.StateEditable, v.State)
		assert.Equal(t, "Electricidad", v.Form.Value(form.FieldNombre))
		assert.Empty(t, nav.Routes())
	}
}

func TestCategoryForm_DobleEnvioNoRepiteLlamada(t *testing.T) {
	fc, nav := seed(), &recNav{}
	fc.block = make(chan struct{})
	fc.entered = make(chan struct{}, 1)
	guard := views.NewSubmitGuard()

	first := views.NewCategoryForm(fc, nav, guard, logger.Nop(), "mismo-form")
	first.Set(form.FieldNombre, "Pinturas")
	done := make(chan error, 1)
	go func() { done <- first.Submit(context.Background()) }()
	<-fc.entered

	second := views.NewCategoryForm(fc, nav, guard, logger.Nop(), "mismo-form")
	second.Set(form.FieldNombre, "Pinturas")
	err := second.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmitInProgress)
	assert.Equal(t, views.MsgSubmitInProgress, second.Error)

	close(fc.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, fc.creates)
	assert.Equal(t, []string{views.RouteCategories}, nav.Routes())

	// liberado el guard, un nuevo envío procede
	fc.block, fc.entered = nil, nil
	require.NoError(t, second.Submit(context.Background()))
	assert.Equal(t, 2, fc.creates)
}

func TestCategoryForm_Cancel(t *testing.T) {
	nav := &recNav{}
	views.NewCategoryForm(seed(), nav, nil, logger.Nop(), "").Cancel()
	assert.Equal(t, []string{views.RouteCategories}, nav.Routes())
}

func TestProductForm_AltaConviertePrecioYCategoria(t *testing.T) {
	fc, nav := seed(), &recNav{}
	v := views.NewProductForm(fc, fc, nav, views.NewSubmitGuard(), logger.Nop(), "p1")
	v.Init(context.Background(), "")
	require.Len(t, v.Categories, 2)

	v.Set(form.FieldName, "Serrucho")
	v.Set(form.FieldPrice, "19.90")
	v.Set(form.FieldCategoryID, "1")
	require.NoError(t, v.Submit(context.Background()))

	assert.Equal(t, 1, fc.creates)
	assert.True(t, fc.lastProduct.Price.Equal(decimal.RequireFromString("19.9")))
	assert.Equal(t, int64(1), fc.lastProduct.CategoryID)
	assert.Equal(t, []string{views.RouteProducts}, nav.Routes())
}

func TestProductForm_Validaciones(t *testing.T) {
	fc := seed()
	v := views.NewProductForm(fc, fc, &recNav{}, nil, logger.Nop(), "p1")
	v.Init(context.Background(), "")

	v.Set(form.FieldName, "")
	v.Set(form.FieldPrice, "0")
	v.Set(form.FieldCategoryID, "x")
	assert.ErrorIs(t, v.Submit(context.Background()), domain.ErrInvalidInput)

	assert.Equal(t, "El nombre es requerido", v.ErrorMessage(form.FieldName))
	assert.Equal(t, "El valor mínimo es 0.01", v.ErrorMessage(form.FieldPrice))
	assert.Equal(t, "Debe ser un número entero", v.ErrorMessage(form.FieldCategoryID))
	assert.Equal(t, 0, fc.creates)
}

func TestProductForm_EdicionYFallos(t *testing.T) {
	fc := seed()
	v := views.NewProductForm(fc, fc, &recNav{}, nil, logger.Nop(), "p1")
	v.Init(context.Background(), "3")
	require.Equal(t, views.StateEditable, v.State)
	assert.Equal(t, "Destornillador", v.Form.Value(form.FieldName))
	assert.Equal(t, "4.99", v.Form.Value(form.FieldPrice))
	assert.Equal(t, "1", v.Form.Value(form.FieldCategoryID))

	fc.failWrite = true
	require.Error(t, v.Submit(context.Background()))
	assert.Equal(t, views.MsgUpdateProduct, v.Error)

	fc2 := seed()
	fc2.failGet = true
	v2 := views.NewProductForm(fc2, fc2, &recNav{}, nil, logger.Nop(), "p2")
	v2.Init(context.Background(), "3")
	assert.Equal(t, views.StateError, v2.State)
	assert.Equal(t, views.MsgLoadProduct, v2.Error)
}

func TestProductForm_FalloDeCategoriasNoBloquea(t *testing.T) {
	fc := seed()
	fc.failListCat = true
	v := views.NewProductForm(fc, fc, &recNav{}, nil, logger.Nop(), "p1")
	v.Init(context.Background(), "")
	assert.Equal(t, views.StateEditable, v.State)
	assert.Equal(t, views.MsgLoadCategories, v.Error)
	assert.Empty(t, v.Categories)
}

// --- listados ---

func TestCategoryList_LoadYFallo(t *testing.T) {
	fc := seed()
	v := views.NewCategoryList(fc, nil, logger.Nop())
	require.NoError(t, v.Load(context.Background()))
	assert.Len(t, v.Categories, 2)

	fc.failListCat = true
	require.Error(t, v.Load(context.Background()))
	assert.Equal(t, views.MsgLoadCategories, v.Error)
	assert.Len(t, v.Categories, 2, "conserva la última lista")
}

func TestCategoryList_DeleteRechazadoNoLlama(t *testing.T) {
	fc := seed()
	confirm, asked := always(false)
	v := views.NewCategoryList(fc, confirm, logger.Nop())
	require.NoError(t, v.Load(context.Background()))

	require.NoError(t, v.Delete(context.Background(), 1))
	assert.Equal(t, 0, fc.deletes)
	assert.Equal(t, []string{views.ConfirmDeleteCategory}, *asked)
}

func TestCategoryList_DeleteConfirmadoRecarga(t *testing.T) {
	fc := seed()
	confirm, _ := always(true)
	v := views.NewCategoryList(fc, confirm, logger.Nop())
	require.NoError(t, v.Load(context.Background()))

	require.NoError(t, v.Delete(context.Background(), 1))
	assert.Equal(t, 1, fc.deletes)
	require.Len(t, v.Categories, 1)
	assert.Equal(t, "Jardín", v.Categories[0].Nombre)
}

func TestCategoryList_DeleteFallidoConservaLista(t *testing.T) {
	fc := seed()
	fc.failDelete = true
	confirm, _ := always(true)
	v := views.NewCategoryList(fc, confirm, logger.Nop())
	require.NoError(t, v.Load(context.Background()))

	require.Error(t, v.Delete(context.Background(), 1))
	assert.Equal(t, 1, fc.deletes)
	assert.Equal(t, views.MsgDeleteCategory, v.Error)
	assert.Len(t, v.Categories, 2)
}

func TestProductList_Filtros(t *testing.T) {
	fc := seed()
	v := views.NewProductList(fc, fc, nil, logger.Nop())
	require.NoError(t, v.Load(context.Background()))
	assert.Len(t, v.Filtered, 3)

	v.SetCategory(ptr(1))
	assert.Len(t, v.Filtered, 2)

	v.SetSearch("PLANA")
	require.Len(t, v.Filtered, 1)
	assert.Equal(t, "Destornillador", v.Filtered[0].Name)

	v.SetCategory(nil)
	v.SetSearch("")
	assert.Len(t, v.Filtered, 3)

	assert.Equal(t, "Herramientas", v.CategoryName(1))
	assert.Equal(t, "Sin categoría", v.CategoryName(99))
}

func TestProductList_FalloDeCategoriasSoloSeRegistra(t *testing.T) {
	fc := seed()
	fc.failListCat = true
	v := views.NewProductList(fc, fc, nil, logger.Nop())
	require.NoError(t, v.Load(context.Background()))
	assert.Empty(t, v.Error)
	assert.Equal(t, "Sin categoría", v.CategoryName(1))
}

func TestProductList_FalloDeProductos(t *testing.T) {
	fc := seed()
	fc.failList = true
	v := views.NewProductList(fc, fc, nil, logger.Nop())
	require.Error(t, v.Load(context.Background()))
	assert.Equal(t, views.MsgLoadProducts, v.Error)
}

func TestProductList_Delete(t *testing.T) {
	fc := seed()
	confirm, asked := always(true)
	v := views.NewProductList(fc, fc, confirm, logger.Nop())
	require.NoError(t, v.Load(context.Background()))
	v.SetCategory(ptr(1))

	require.NoError(t, v.Delete(context.Background(), 1))
	assert.Equal(t, []string{views.ConfirmDeleteProduct}, *asked)
	assert.Len(t, v.Products, 2)
	require.Len(t, v.Filtered, 1, "el filtro se reaplica tras recargar")

	fc.failDelete = true
	require.Error(t, v.Delete(context.Background(), 3))
	assert.Equal(t, views.MsgDeleteProduct, v.Error)
	assert.Len(t, v.Products, 2)
}

func TestSubmitGuard(t *testing.T) {
	g := views.NewSubmitGuard()
	assert.True(t, g.TryAcquire("a"))
	assert.False(t, g.TryAcquire("a"))
	assert.True(t, g.TryAcquire("b"))
	g.Release("a")
	assert.True(t, g.TryAcquire("a"))
}
