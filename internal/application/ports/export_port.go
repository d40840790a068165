package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CatalogRow una fila del listado exportado.
type CatalogRow struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
}

// CatalogReport listado de productos ya filtrado, listo para exportar.
type CatalogReport struct {
	Title       string
	GeneratedAt time.Time
	Filter      string // descripción legible del filtro aplicado; vacío = sin filtro
	SourceURL   string // opcional; el PDF lo incluye como QR
	Rows        []CatalogRow
}

// CatalogPDFGenerator genera la representación PDF del listado.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, r CatalogReport) ([]byte, error)
}

// CatalogXMLEncoder serializa el listado a XML.
type CatalogXMLEncoder interface {
	EncodeCatalogXML(ctx context.Context, r CatalogReport) ([]byte, error)
}
