package views

import (
	"context"

	"github.com/jhoicas/catalogo-web/internal/application/ports"
	"github.com/jhoicas/catalogo-web/internal/domain/entity"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// CategoryList modelo de la vista de listado de categorías.
type CategoryList struct {
	gw      ports.CategoryGateway
	confirm Confirm
	log     *logger.Logger

	Categories []entity.Category
	Error      string
}

func NewCategoryList(gw ports.CategoryGateway, confirm Confirm, log *logger.Logger) *CategoryList {
	return &CategoryList{gw: gw, confirm: confirm, log: log.Named("category_list")}
}

// Load trae todas las categorías. En fallo deja la lista anterior y fija Error.
func (v *CategoryList) Load(ctx context.Context) error {
	v.Error = ""
	list, err := v.gw.ListCategories(ctx)
	if err != nil {
		v.Error = MsgLoadCategories
		v.log.Error().Err(err).Msg(MsgLoadCategories)
		return err
	}
	v.Categories = list
	return nil
}

// Delete elimina tras confirmación y recarga. Si falla conserva la lista actual.
func (v *CategoryList) Delete(ctx context.Context, id int64) error {
	done, err := confirmDelete(ctx, v.confirm, ConfirmDeleteCategory, id, v.gw.DeleteCategory, v.log, MsgDeleteCategory)
	if err != nil {
		v.Error = MsgDeleteCategory
		return err
	}
	if !done {
		return nil
	}
	return v.Load(ctx)
}
