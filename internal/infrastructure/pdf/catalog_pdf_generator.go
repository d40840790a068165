// Package pdf genera el listado de productos del catálogo en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                    │  Fecha de generación   │
//	│  Filtro aplicado                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto / Descripción | Categoría | Precio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: cantidad de productos                              │
//	│  FOOTER: QR con el enlace al listado (opcional)             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-web/internal/application/ports"
)

var _ ports.CatalogPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.CatalogPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCatalogPDF(ctx context.Context, r ports.CatalogReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	title := nonEmpty(r.Title, "Catálogo de productos")

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(g.author, "catalogo-web"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(r.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(len(r.Rows)))

	if r.SourceURL != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(qrRow(r.SourceURL))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, r ports.CatalogReport) core.Row {
	filtro := nonEmpty(r.Filter, "Todos los productos")
	return row.New(18).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(filtro, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Categoría", 3, align.Left),
		h("Precio", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por producto; la descripción va bajo el nombre, recortada.
func tableDetailRows(items []ports.CatalogRow) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		r := row.New(10).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.ID),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(
				text.New(it.Name, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1}),
				text.New(truncate(it.Description, 90), props.Text{Size: 7, Top: 5, Left: 1, Color: colorGray}),
			),
			col.New(3).Add(text.New(
				it.Category,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatPrice(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func summaryRow(n int) core.Row {
	label := "1 producto"
	if n != 1 {
		label = fmt.Sprintf("%d productos", n)
	}
	return row.New(8).Add(
		col.New(12).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func qrRow(url string) core.Row {
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(url, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Escanea el código para abrir este listado.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(url, props.Text{Size: 7, Top: 10, Left: 3, Color: colorPrimary}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatPrice da formato con puntos de miles y coma decimal.
// Ej: 25000 → "$25.000,00", 1234.5 → "$1.234,50"
func formatPrice(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := "$" + groupThousands(intPart) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// truncate recorta s a max runas agregando "…".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
