package views

import (
	"strings"
	"time"

	"github.com/jhoicas/catalogo-web/internal/application/ports"
)

// Report arma el listado exportable a partir de los productos filtrados.
func (v *ProductList) Report(title, sourceURL string, now time.Time) ports.CatalogReport {
	rows := make([]ports.CatalogRow, 0, len(v.Filtered))
	for _, p := range v.Filtered {
		rows = append(rows, ports.CatalogRow{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    v.CategoryName(p.CategoryID),
			Price:       p.Price,
		})
	}
	return ports.CatalogReport{
		Title:       title,
		GeneratedAt: now,
		Filter:      v.FilterLabel(),
		SourceURL:   sourceURL,
		Rows:        rows,
	}
}

// FilterLabel describe el filtro activo, p. ej. "Categoría: Jardín | Búsqueda: manguera".
func (v *ProductList) FilterLabel() string {
	var parts []string
	if id := v.Filter.CategoryID; id != nil && *id != 0 {
		parts = append(parts, "Categoría: "+v.CategoryName(*id))
	}
	if s := v.Filter.Search; s != "" {
		parts = append(parts, "Búsqueda: "+s)
	}
	return strings.Join(parts, " | ")
}
