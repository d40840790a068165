package web

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-web/internal/application/views"
	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/domain/catalog"
)

// loadProductList carga el listado y aplica los filtros ?categoryId=&q=.
func (h *Handler) loadProductList(c *fiber.Ctx) (*views.ProductList, error) {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list := views.NewProductList(h.deps.Products, h.deps.Categories, nil, h.log)
	err := list.Load(ctx)
	applyFilters(c, list)
	return list, err
}

// requestFilter lee ?categoryId=&q= de la petición. q se conserva tal cual.
func requestFilter(c *fiber.Ctx) catalog.ProductFilter {
	var f catalog.ProductFilter
	if raw := strings.TrimSpace(c.Query("categoryId")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			f.CategoryID = &id
		}
	}
	f.Search = c.Query("q")
	return f
}

func applyFilters(c *fiber.Ctx, list *views.ProductList) {
	f := requestFilter(c)
	list.SetCategory(f.CategoryID)
	list.SetSearch(f.Search)
}

// filterQuery reconstruye la query string del filtro ("" si no filtra nada).
func filterQuery(f catalog.ProductFilter) string {
	q := url.Values{}
	if id := f.CategoryID; id != nil && *id > 0 {
		q.Set("categoryId", strconv.FormatInt(*id, 10))
	}
	if f.Search != "" {
		q.Set("q", f.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func selectedCategory(list *views.ProductList) int64 {
	if list.Filter.CategoryID == nil {
		return 0
	}
	return *list.Filter.CategoryID
}

// ProductList GET /products?categoryId=&q=
func (h *Handler) ProductList(c *fiber.Ctx) error {
	list, _ := h.loadProductList(c)
	return h.renderProducts(c, fiber.StatusOK, list)
}

func (h *Handler) renderProducts(c *fiber.Ctx, status int, list *views.ProductList) error {
	return h.render(c, status, "products", fiber.Map{
		"Title":            "Productos",
		"List":             list,
		"SelectedCategory": selectedCategory(list),
		"Query":            filterQuery(list.Filter),
	})
}

// ProductNew GET /products/new
func (h *Handler) ProductNew(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	v := h.newProductForm(&redirectNav{}, uuid.NewString())
	v.Init(ctx, "")
	return h.productForm(c, fiber.StatusOK, v)
}

// ProductEdit GET /products/:id/edit
func (h *Handler) ProductEdit(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	v := h.newProductForm(&redirectNav{}, uuid.NewString())
	if err := v.Bind(c.Params("id")); err != nil {
		return fiber.ErrNotFound
	}
	v.Init(ctx, c.Params("id"))
	status := fiber.StatusOK
	if v.State == views.StateError {
		status = fiber.StatusBadGateway
	}
	return h.productForm(c, status, v)
}

// ProductCreate POST /products
func (h *Handler) ProductCreate(c *fiber.Ctx) error {
	return h.productSubmit(c, "")
}

// ProductUpdate POST /products/:id
func (h *Handler) ProductUpdate(c *fiber.Ctx) error {
	return h.productSubmit(c, c.Params("id"))
}

func (h *Handler) newProductForm(nav views.Navigator, key string) *views.ProductForm {
	return views.NewProductForm(h.deps.Products, h.deps.Categories, nav, h.deps.Guard, h.log, key)
}

func (h *Handler) productSubmit(c *fiber.Ctx, idParam string) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	nav := &redirectNav{}
	v := h.newProductForm(nav, formKey(c))
	if err := v.Bind(idParam); err != nil {
		return fiber.ErrNotFound
	}
	for _, f := range v.Form.Schema().Fields() {
		v.Set(f.Name, strings.TrimSpace(c.FormValue(f.Name)))
	}
	if err := v.Submit(ctx); err != nil {
		// el selector necesita las opciones para volver a pintarse
		msg := v.Error
		v.LoadCategories(ctx)
		if msg != "" {
			v.Error = msg
		}
		return h.productForm(c, submitStatus(err), v)
	}
	return c.Redirect(nav.route, fiber.StatusSeeOther)
}

func (h *Handler) productForm(c *fiber.Ctx, status int, v *views.ProductForm) error {
	action := views.RouteProducts
	title := "Nuevo producto"
	if v.EditMode {
		action = fmt.Sprintf("%s/%d", views.RouteProducts, v.ID)
		title = "Editar producto"
	}
	return h.render(c, status, "product_form", fiber.Map{"Title": title, "View": v, "Action": action})
}

// ProductConfirmDelete GET /products/:id/delete. Los filtros del listado viajan en la query.
func (h *Handler) ProductConfirmDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	query := filterQuery(requestFilter(c))
	return h.render(c, fiber.StatusOK, "confirm", fiber.Map{
		"Title":   "Eliminar producto",
		"Message": views.ConfirmDeleteProduct,
		"Action":  fmt.Sprintf("%s/%d/delete%s", views.RouteProducts, id, query),
		"Back":    views.RouteProducts + query,
	})
}

// ProductDelete POST /products/:id/delete. Sin confirm=si no se elimina nada.
// Si se elimina, redirige (303) al listado con los mismos filtros; si falla, pinta la lista previa.
func (h *Handler) ProductDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	back := views.RouteProducts + filterQuery(requestFilter(c))
	confirmed := c.FormValue("confirm") == confirmYes
	if !confirmed {
		return c.Redirect(back, fiber.StatusSeeOther)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	list := views.NewProductList(h.deps.Products, h.deps.Categories, func(string) bool { return confirmed }, h.log)
	_ = list.Load(ctx)
	applyFilters(c, list)
	if err := list.Delete(ctx, int64(id)); err != nil && list.Error == views.MsgDeleteProduct {
		status := fiber.StatusBadGateway
		if errors.Is(err, domain.ErrNotFound) {
			status = fiber.StatusNotFound
		}
		return h.renderProducts(c, status, list)
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}
