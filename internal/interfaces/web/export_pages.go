package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const exportTitle = "Catálogo de productos"

// ProductExportPDF GET /products/export.pdf?categoryId=&q=
func (h *Handler) ProductExportPDF(c *fiber.Ctx) error {
	list, err := h.loadProductList(c)
	if err != nil {
		return h.renderError(c, fiber.StatusBadGateway, list.Error, "/products")
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	source := c.BaseURL() + "/products" + filterQuery(list.Filter)
	out, err := h.deps.PDF.GenerateCatalogPDF(ctx, list.Report(exportTitle, source, time.Now()))
	if err != nil {
		h.log.Error().Err(err).Msg("error al generar PDF")
		return fiber.ErrInternalServerError
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo.pdf"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(out)
}

// ProductExportXML GET /products/export.xml?categoryId=&q=
func (h *Handler) ProductExportXML(c *fiber.Ctx) error {
	list, err := h.loadProductList(c)
	if err != nil {
		return h.renderError(c, fiber.StatusBadGateway, list.Error, "/products")
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.deps.XML.EncodeCatalogXML(ctx, list.Report(exportTitle, "", time.Now()))
	if err != nil {
		h.log.Error().Err(err).Msg("error al generar XML")
		return fiber.ErrInternalServerError
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo.xml"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}
