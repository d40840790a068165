package form_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-web/internal/domain/form"
)

func TestErrorMessage_SoloSiTocado(t *testing.T) {
	f := form.New(form.CategorySchema)
	assert.False(t, f.Valid())
	assert.Empty(t, f.ErrorMessage(form.FieldNombre), "sin tocar no hay mensaje")

	f.Touch(form.FieldNombre)
	assert.Equal(t, "El nombre es requerido", f.ErrorMessage(form.FieldNombre))
}

func TestErrorMessage_RequiredGanaAMinLength(t *testing.T) {
	f := form.New(form.CategorySchema)
	f.Set(form.FieldNombre, "")
	assert.Equal(t, "El nombre es requerido", f.ErrorMessage(form.FieldNombre))
}

func TestCategorySchema(t *testing.T) {
	tests := []struct {
		name, field, value, want string
	}{
		{"nombre corto", form.FieldNombre, "ab", "Mínimo 3 caracteres"},
		{"nombre largo", form.FieldNombre, strings.Repeat("x", 51), "Máximo 50 caracteres"},
		{"nombre límite inferior", form.FieldNombre, "abc", ""},
		{"nombre límite superior", form.FieldNombre, strings.Repeat("x", 50), ""},
		{"nombre con acentos cuenta runas", form.FieldNombre, "Díá", ""},
		{"descripción vacía es válida", form.FieldDescripcion, "", ""},
		{"descripción larga", form.FieldDescripcion, strings.Repeat("d", 256), "Máximo 255 caracteres"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := form.New(form.CategorySchema)
			f.Set(tt.field, tt.value)
			assert.Equal(t, tt.want, f.ErrorMessage(tt.field))
		})
	}
}

func TestProductSchema(t *testing.T) {
	tests := []struct {
		name, field, value, want string
	}{
		{"nombre requerido", form.FieldName, "", "El nombre es requerido"},
		{"nombre corto", form.FieldName, "a", "Mínimo 2 caracteres"},
		{"nombre largo", form.FieldName, strings.Repeat("n", 101), "Máximo 100 caracteres"},
		{"descripción larga", form.FieldDescription, strings.Repeat("d", 401), "Máximo 400 caracteres"},
		{"precio requerido", form.FieldPrice, "", "El precio es requerido"},
		{"precio cero", form.FieldPrice, "0", "El valor mínimo es 0.01"},
		{"precio negativo gana min sobre pattern", form.FieldPrice, "-1", "El valor mínimo es 0.01"},
		{"precio no numérico", form.FieldPrice, "abc", "Debe ser un número válido"},
		{"precio mínimo exacto", form.FieldPrice, "0.01", ""},
		{"categoría requerida", form.FieldCategoryID, "", "La categoría es requerida"},
		{"categoría no entera", form.FieldCategoryID, "1.5", "Debe ser un número entero"},
		{"categoría válida", form.FieldCategoryID, "12", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := form.New(form.ProductSchema)
			f.Set(tt.field, tt.value)
			assert.Equal(t, tt.want, f.ErrorMessage(tt.field))
		})
	}
}

func TestViolations_OrdenDeRegistro(t *testing.T) {
	s := form.NewSchema(form.Field{
		Name:  "codigo",
		Label: "El código",
		Rules: []form.Rule{form.Pattern(`^[A-Z]+$`, "Solo mayúsculas"), form.MinLength(4)},
	})
	f := form.New(s)
	f.Set("codigo", "ab")

	vs := f.Violations("codigo")
	require.Len(t, vs, 2)
	assert.Equal(t, form.KindPattern, vs[0].Rule.Kind)
	assert.Equal(t, form.KindMinLength, vs[1].Rule.Kind)
	assert.Equal(t, "Mínimo 4 caracteres", f.ErrorMessage("codigo"), "minlength precede a pattern")
}

func TestPatchNoMarcaTocado(t *testing.T) {
	f := form.New(form.CategorySchema)
	f.Patch(map[string]string{form.FieldNombre: "ab", "desconocido": "x"})
	assert.Equal(t, "ab", f.Value(form.FieldNombre))
	assert.False(t, f.Touched(form.FieldNombre))
	assert.Empty(t, f.ErrorMessage(form.FieldNombre))
	assert.NotContains(t, f.Values(), "desconocido")

	f.MarkAllTouched()
	assert.Equal(t, map[string]string{form.FieldNombre: "Mínimo 3 caracteres"}, f.Errors())
}

func TestValid(t *testing.T) {
	f := form.New(form.ProductSchema)
	f.Patch(map[string]string{
		form.FieldName:       "Widget",
		form.FieldPrice:      "9.99",
		form.FieldCategoryID: "1",
	})
	assert.True(t, f.Valid())

	f.Set(form.FieldPrice, "0.001")
	assert.False(t, f.Valid())
}

func TestNewSchema_CampoDuplicado(t *testing.T) {
	assert.Panics(t, func() {
		form.NewSchema(form.Field{Name: "a"}, form.Field{Name: "a"})
	})
}

func TestErrorMessage_CampoDesconocido(t *testing.T) {
	f := form.New(form.CategorySchema)
	f.Touch("otro")
	assert.Empty(t, f.ErrorMessage("otro"))
}
