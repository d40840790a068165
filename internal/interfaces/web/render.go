package web

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-web/internal/domain"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/rest"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

// confirmYes es el valor que envía el botón de la página de confirmación.
const confirmYes = "si"

// Handler agrupa los handlers de página.
type Handler struct {
	deps Deps
	log  *logger.Logger
}

func (h *Handler) render(c *fiber.Ctx, status int, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["AppName"] = h.deps.AppName
	if tok, _ := c.Locals("csrf").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Status(status).Render(tmpl, data)
}

func (h *Handler) renderError(c *fiber.Ctx, status int, msg, back string) error {
	return h.render(c, status, "error", fiber.Map{"Title": "Error", "Message": msg, "Back": back})
}

func (h *Handler) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Ocurrió un error inesperado"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		if status == fiber.StatusNotFound {
			msg = "Página no encontrada"
		}
	}
	if status >= fiber.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	}
	if rerr := h.renderError(c, status, msg, ""); rerr != nil {
		return c.Status(status).SendString(msg)
	}
	return nil
}

// ctx deriva el contexto de la llamada remota: timeout configurado y request id propagado.
func (h *Handler) ctx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	ctx := c.UserContext()
	if rid, _ := c.Locals("requestid").(string); rid != "" {
		ctx = rest.WithRequestID(ctx, rid)
	}
	return context.WithTimeout(ctx, h.deps.Timeout)
}

// formKey devuelve el identificador de instancia de formulario enviado, o uno nuevo.
func formKey(c *fiber.Ctx) string {
	if k := c.FormValue("form_id"); k != "" {
		if _, err := uuid.Parse(k); err == nil {
			return k
		}
	}
	return uuid.NewString()
}

// redirectNav traduce la navegación del view model en una redirección HTTP.
type redirectNav struct{ route string }

func (n *redirectNav) Navigate(route string) { n.route = route }

// submitStatus elige el status de la respuesta cuando un envío no terminó en navegación.
func submitStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSubmitInProgress):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadGateway
	}
}
