package web

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-web/internal/application/views"
	"github.com/jhoicas/catalogo-web/internal/domain"
)

// CategoryList GET /categories
func (h *Handler) CategoryList(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list := views.NewCategoryList(h.deps.Categories, nil, h.log)
	_ = list.Load(ctx)
	return h.render(c, fiber.StatusOK, "categories", fiber.Map{"Title": "Categorías", "List": list})
}

// CategoryNew GET /categories/new
func (h *Handler) CategoryNew(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	v := views.NewCategoryForm(h.deps.Categories, &redirectNav{}, h.deps.Guard, h.log, uuid.NewString())
	v.Init(ctx, "")
	return h.categoryForm(c, fiber.StatusOK, v)
}

// CategoryEdit GET /categories/:id/edit
func (h *Handler) CategoryEdit(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	v := views.NewCategoryForm(h.deps.Categories, &redirectNav{}, h.deps.Guard, h.log, uuid.NewString())
	if err := v.Bind(c.Params("id")); err != nil {
		return fiber.ErrNotFound
	}
	v.Init(ctx, c.Params("id"))
	status := fiber.StatusOK
	if v.State == views.StateError {
		status = fiber.StatusBadGateway
	}
	return h.categoryForm(c, status, v)
}

// CategoryCreate POST /categories
func (h *Handler) CategoryCreate(c *fiber.Ctx) error {
	return h.categorySubmit(c, "")
}

// CategoryUpdate POST /categories/:id
func (h *Handler) CategoryUpdate(c *fiber.Ctx) error {
	return h.categorySubmit(c, c.Params("id"))
}

func (h *Handler) categorySubmit(c *fiber.Ctx, idParam string) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	nav := &redirectNav{}
	v := views.NewCategoryForm(h.deps.Categories, nav, h.deps.Guard, h.log, formKey(c))
	if err := v.Bind(idParam); err != nil {
		return fiber.ErrNotFound
	}
	for _, f := range v.Form.Schema().Fields() {
		v.Set(f.Name, strings.TrimSpace(c.FormValue(f.Name)))
	}
	if err := v.Submit(ctx); err != nil {
		return h.categoryForm(c, submitStatus(err), v)
	}
	return c.Redirect(nav.route, fiber.StatusSeeOther)
}

func (h *Handler) categoryForm(c *fiber.Ctx, status int, v *views.CategoryForm) error {
	action := views.RouteCategories
	title := "Nueva categoría"
	if v.EditMode {
		action = fmt.Sprintf("%s/%d", views.RouteCategories, v.ID)
		title = "Editar categoría"
	}
	return h.render(c, status, "category_form", fiber.Map{"Title": title, "View": v, "Action": action})
}

// CategoryConfirmDelete GET /categories/:id/delete
func (h *Handler) CategoryConfirmDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	return h.render(c, fiber.StatusOK, "confirm", fiber.Map{
		"Title":   "Eliminar categoría",
		"Message": views.ConfirmDeleteCategory,
		"Action":  fmt.Sprintf("%s/%d/delete", views.RouteCategories, id),
		"Back":    views.RouteCategories,
	})
}

// CategoryDelete POST /categories/:id/delete. Sin confirm=si no se elimina nada.
// Si se elimina, redirige (303) al listado; si falla, pinta la lista previa con el mensaje.
func (h *Handler) CategoryDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	confirmed := c.FormValue("confirm") == confirmYes
	if !confirmed {
		return c.Redirect(views.RouteCategories, fiber.StatusSeeOther)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list := views.NewCategoryList(h.deps.Categories, func(string) bool { return confirmed }, h.log)
	_ = list.Load(ctx)
	if err := list.Delete(ctx, int64(id)); err != nil && list.Error == views.MsgDeleteCategory {
		status := fiber.StatusBadGateway
		if errors.Is(err, domain.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return h.render(c, status, "categories", fiber.Map{"Title": "Categorías", "List": list})
	}
	return c.Redirect(views.RouteCategories, fiber.StatusSeeOther)
}
