// Package catalog contiene las reglas puras del listado de productos: filtro por categoría y texto
// y resolución del nombre de categoría para mostrar.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/catalogo-web/internal/domain/entity"
)

// UncategorizedLabel se muestra cuando el producto apunta a una categoría desconocida.
const UncategorizedLabel = "Sin categoría"

// ProductFilter es el estado de filtros del listado. CategoryID nil (o 0) significa "todas".
type ProductFilter struct {
	CategoryID *int64
	Search     string
}

// Active indica si el filtro restringe algo.
func (f ProductFilter) Active() bool {
	return f.categoryID() != 0 || f.Search != ""
}

func (f ProductFilter) categoryID() int64 {
	if f.CategoryID == nil {
		return 0
	}
	return *f.CategoryID
}

// FilterProducts devuelve, en el mismo orden, los productos que cumplen el filtro.
// La búsqueda es por subcadena en nombre o descripción, sin distinguir mayúsculas (plegado Unicode).
// El término se compara tal cual: solo "" significa sin búsqueda, los espacios cuentan.
func FilterProducts(products []entity.Product, f ProductFilter) []entity.Product {
	catID := f.categoryID()
	term := f.Search
	if catID == 0 && term == "" {
		out := make([]entity.Product, len(products))
		copy(out, products)
		return out
	}

	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if catID != 0 && p.CategoryID != catID {
			continue
		}
		if needle != "" &&
			!strings.Contains(fold.String(p.Name), needle) &&
			!strings.Contains(fold.String(p.Description), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CategoryName busca el nombre de la categoría id en categories.
func CategoryName(categories []entity.Category, id int64) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Nombre
		}
	}
	return UncategorizedLabel
}
