package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-web/internal/application/ports"
)

func TestGenerateCatalogPDF(t *testing.T) {
	g := NewMarotoPDFGenerator("tests")
	out, err := g.GenerateCatalogPDF(context.Background(), ports.CatalogReport{
		Title:       "Catálogo",
		GeneratedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Filter:      "Categoría: Jardín",
		SourceURL:   "http://localhost:8080/products?categoryId=2",
		Rows: []ports.CatalogRow{
			{ID: 1, Name: "Manguera", Description: "15 metros", Category: "Jardín", Price: decimal.RequireFromString("30")},
			{ID: 2, Name: "Rastrillo", Category: "Jardín", Price: decimal.RequireFromString("12.5")},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateCatalogPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoPDFGenerator("").GenerateCatalogPDF(ctx, ports.CatalogReport{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatPrice(t *testing.T) {
	cases := map[string]string{
		"0.01":       "$0,01",
		"12.5":       "$12,50",
		"25000":      "$25.000,00",
		"1234567.89": "$1.234.567,89",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatPrice(decimal.RequireFromString(in)), in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 10))
	assert.Equal(t, "árbo…", truncate("árboles", 5))
}
