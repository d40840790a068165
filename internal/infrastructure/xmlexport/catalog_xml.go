// Package xmlexport serializa el listado de productos a XML con etree.
package xmlexport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/catalogo-web/internal/application/ports"
)

// Namespace del documento <catalogo>.
const NsCatalog = "urn:catalogo-web:productos:1"

var _ ports.CatalogXMLEncoder = (*Encoder)(nil)

// Encoder implementa ports.CatalogXMLEncoder.
type Encoder struct {
	indent int
}

func NewEncoder() *Encoder { return &Encoder{indent: 2} }

// EncodeCatalogXML produce:
//
//	<catalogo xmlns="..." generado="..." total="N">
//	  <filtro>...</filtro>
//	  <producto id="1">
//	    <nombre/> <descripcion/> <categoria/> <precio moneda="COP">9.99</precio>
//	  </producto>
//	</catalogo>
func (e *Encoder) EncodeCatalogXML(ctx context.Context, r ports.CatalogReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalogo")
	root.CreateAttr("xmlns", NsCatalog)
	root.CreateAttr("generado", r.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("total", strconv.Itoa(len(r.Rows)))
	if r.Title != "" {
		root.CreateElement("titulo").SetText(r.Title)
	}
	if r.Filter != "" {
		root.CreateElement("filtro").SetText(r.Filter)
	}

	for _, row := range r.Rows {
		p := root.CreateElement("producto")
		p.CreateAttr("id", strconv.FormatInt(row.ID, 10))
		p.CreateElement("nombre").SetText(row.Name)
		if row.Description != "" {
			p.CreateElement("descripcion").SetText(row.Description)
		}
		p.CreateElement("categoria").SetText(row.Category)
		price := p.CreateElement("precio")
		price.CreateAttr("moneda", "COP")
		price.SetText(row.Price.StringFixed(2))
	}

	doc.Indent(e.indent)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return out.Bytes(), nil
}
