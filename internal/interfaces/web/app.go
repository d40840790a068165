// Package web sirve el front end del catálogo: páginas HTML renderizadas en servidor
// sobre los view models de internal/application/views.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-web/internal/application/ports"
	"github.com/jhoicas/catalogo-web/internal/application/views"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Deps dependencias del front web.
type Deps struct {
	Categories ports.CategoryGateway
	Products   ports.ProductGateway
	PDF        ports.CatalogPDFGenerator
	XML        ports.CatalogXMLEncoder
	Guard      *views.SubmitGuard // compartido entre peticiones; nil = uno nuevo
	Log        *logger.Logger

	AppName string
	Timeout time.Duration // por llamada al backend

	CSRF      bool // desactivado en tests
	RateLimit int  // peticiones por minuto e IP; 0 = sin límite
}

// NewEngine carga las plantillas embebidas.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("price", func(d decimal.Decimal) string { return "$" + d.StringFixed(2) })
	return engine
}

// New construye la aplicación Fiber con middlewares y rutas.
func New(deps Deps) *fiber.App {
	if deps.Guard == nil {
		deps.Guard = views.NewSubmitGuard()
	}
	if deps.Timeout <= 0 {
		deps.Timeout = 10 * time.Second
	}
	if deps.AppName == "" {
		deps.AppName = "Catálogo"
	}
	h := &Handler{deps: deps, log: deps.Log.Named("web")}

	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		Views:        NewEngine(),
		ViewsLayout:  "layout",
		ErrorHandler: h.errorHandler,
	})
	app.Server().MaxRequestBodySize = 1 << 20

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(deps.Log.Middleware())
	app.Use(helmet.New())
	if deps.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        deps.RateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return h.renderError(c, fiber.StatusTooManyRequests, "Demasiadas peticiones, intente en un momento", "")
			},
		}))
	}
	if deps.CSRF {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:csrf",
			CookieName:     "csrf_",
			CookieSameSite: "Lax",
			ContextKey:     "csrf",
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				h.log.Warn().Err(err).Str("path", c.Path()).Msg("csrf rechazado")
				return h.renderError(c, fiber.StatusForbidden, "Verificación de seguridad fallida, recargue la página", "")
			},
		}))
	}

	h.routes(app)
	return app
}

func (h *Handler) routes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(views.RouteProducts, fiber.StatusFound)
	})

	cat := app.Group(views.RouteCategories)
	cat.Get("/", h.CategoryList)
	cat.Get("/new", h.CategoryNew)
	cat.Post("/", h.CategoryCreate)
	cat.Get("/:id/edit", h.CategoryEdit)
	cat.Post("/:id", h.CategoryUpdate)
	cat.Get("/:id/delete", h.CategoryConfirmDelete)
	cat.Post("/:id/delete", h.CategoryDelete)

	prod := app.Group(views.RouteProducts)
	prod.Get("/", h.ProductList)
	prod.Get("/export.pdf", h.ProductExportPDF)
	prod.Get("/export.xml", h.ProductExportXML)
	prod.Get("/new", h.ProductNew)
	prod.Post("/", h.ProductCreate)
	prod.Get("/:id/edit", h.ProductEdit)
	prod.Post("/:id", h.ProductUpdate)
	prod.Get("/:id/delete", h.ProductConfirmDelete)
	prod.Post("/:id/delete", h.ProductDelete)
}
