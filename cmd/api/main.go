package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/catalogo-web/internal/application/usecase"
	"github.com/jhoicas/catalogo-web/internal/domain/repository"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalogo-web/internal/interfaces/http"
	"github.com/jhoicas/catalogo-web/pkg/config"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

func main() {
	cfg, err := config.Load(8081)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage).
		Msg("iniciando API del catálogo")

	ctx := context.Background()

	var (
		categoryRepo repository.CategoryRepository
		productRepo  repository.ProductRepository
	)
	switch cfg.Storage {
	case "memory":
		store := memory.NewStore()
		categoryRepo, productRepo = store.Categories(), store.Products()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		categoryRepo = postgres.NewCategoryRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: la API no exige token de servicio")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(log.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
