package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/catalogo-web/internal/application/views"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/rest"
	"github.com/jhoicas/catalogo-web/internal/infrastructure/xmlexport"
	"github.com/jhoicas/catalogo-web/internal/interfaces/web"
	"github.com/jhoicas/catalogo-web/pkg/config"
	"github.com/jhoicas/catalogo-web/pkg/logger"
)

func main() {
	cfg, err := config.Load(8080)
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando front web del catálogo")

	client := rest.NewClient(rest.Options{
		BaseURL:    cfg.Backend.BaseURL,
		Timeout:    cfg.Backend.Timeout(),
		ClientName: cfg.App.Name,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		JWTExpMin:  cfg.JWT.Expiration,
	}, log)

	app := web.New(web.Deps{
		Categories: client,
		Products:   client,
		PDF:        pdf.NewMarotoPDFGenerator(cfg.App.Name),
		XML:        xmlexport.NewEncoder(),
		Guard:      views.NewSubmitGuard(),
		Log:        log,
		AppName:    cfg.App.Name,
		Timeout:    cfg.Backend.Timeout(),
		CSRF:       true,
		RateLimit:  120,
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
