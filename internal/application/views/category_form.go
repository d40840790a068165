package views

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/catalogo-web/internal/application/ports"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/internal/domain/form"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// CategoryForm modelo del formulario de alta/edición de categoría.
type CategoryForm struct {
	gw       ports.CategoryGateway
	nav      Navigator
	dispatch *Dispatcher[entity.Category]
	log      *logger.Logger

	Key      string // identifica esta instancia ante SubmitGuard
	ID       int64
	EditMode bool
	Form     *form.Form
	State    FormState
	Error    string
}

func NewCategoryForm(gw ports.CategoryGateway, nav Navigator, guard *SubmitGuard, log *logger.Logger, key string) *CategoryForm {
	l := log.Named("category_form")
	return &CategoryForm{
		gw:  gw,
		nav: nav,
		dispatch: &Dispatcher[entity.Category]{
			Create: func(ctx context.Context, c entity.Category) error {
				_, err := gw.CreateCategory(ctx, c)
				return err
			},
			Update: func(ctx context.Context, id int64, c entity.Category) error {
				_, err := gw.UpdateCategory(ctx, id, c)
				return err
			},
			ListRoute:   RouteCategories,
			CreateError: MsgCreateCategory,
			UpdateError: MsgUpdateCategory,
			Nav:         nav,
			Guard:       guard,
			Log:         l,
		},
		log:   l,
		Key:   key,
		Form:  form.New(form.CategorySchema),
		State: StateEditable,
	}
}

// Bind fija el modo a partir del parámetro de ruta: vacío = alta, entero positivo = edición.
func (v *CategoryForm) Bind(idParam string) error {
	id, edit, err := parseID(idParam)
	if err != nil {
		return err
	}
	v.ID, v.EditMode = id, edit
	return nil
}

// Init prepara la vista; en edición carga la categoría y precarga el formulario.
func (v *CategoryForm) Init(ctx context.Context, idParam string) {
	if err := v.Bind(idParam); err != nil {
		v.State, v.Error = StateError, MsgLoadCategory
		v.log.Warn().Str("id", idParam).Msg("identificador inválido")
		return
	}
	if !v.EditMode {
		v.State = StateEditable
		return
	}
	v.State = StateLoadingExisting
	c, err := v.gw.GetCategory(ctx, v.ID)
	if err != nil {
		v.State, v.Error = StateError, MsgLoadCategory
		v.log.Error().Err(err).Int64("id", v.ID).Msg(MsgLoadCategory)
		return
	}
	v.Form.Patch(map[string]string{
		form.FieldNombre:      c.Nombre,
		form.FieldDescripcion: c.Descripcion,
	})
	v.State = StateEditable
}

func (v *CategoryForm) Set(field, value string) { v.Form.Set(field, value) }

func (v *CategoryForm) ErrorMessage(field string) string { return v.Form.ErrorMessage(field) }

// Submit valida y envía. Con formulario inválido marca todo como tocado y no llama al backend.
func (v *CategoryForm) Submit(ctx context.Context) error {
	if !v.Form.Valid() {
		v.Form.MarkAllTouched()
		return domain.ErrInvalidInput
	}
	v.State, v.Error = StateSubmitting, ""
	payload := entity.Category{
		ID:          v.ID,
		Nombre:      v.Form.Value(form.FieldNombre),
		Descripcion: v.Form.Value(form.FieldDescripcion),
	}
	msg, err := v.dispatch.Submit(ctx, v.Key, v.EditMode, v.ID, payload)
	if err != nil {
		v.State, v.Error = StateEditable, msg
		return err
	}
	return nil
}

func (v *CategoryForm) Cancel() { v.nav.Navigate(RouteCategories) }

// parseID interpreta el parámetro :id de la ruta.
func parseID(s string) (id int64, edit bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, domain.ErrInvalidInput
	}
	return id, true, nil
}
