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

	"github.com/jhoicas/Empleados-admin/internal/application/screen"
	"github.com/jhoicas/Empleados-admin/internal/application/usecase"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
	"github.com/jhoicas/Empleados-admin/internal/infrastructure/apiclient"
	infrapdf "github.com/jhoicas/Empleados-admin/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Empleados-admin/internal/interfaces/http"
	"github.com/jhoicas/Empleados-admin/pkg/config"
	"github.com/jhoicas/Empleados-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
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
		Str("api", cfg.API.BaseURL).
		Msg("iniciando pantalla de empleados")

	client := apiclient.NewEmployeeClient(cfg.API.BaseURL, cfg.API.Timeout, log)

	alerts := screen.NewNotifier(cfg.UI.AlertDuration)
	defer alerts.Close()

	orchestrator := screen.NewOrchestrator(
		client,
		alerts,
		screen.NewForm(employee.NewValidator()),
		screen.NewConfirmDialog(),
		cfg.UI.Locale,
		log,
	)

	// PDF: listado de empleados con el formato de fecha de la pantalla
	rosterUC := usecase.NewRosterUseCase(client, infrapdf.NewMarotoRosterGenerator(screen.DateLayout(cfg.UI.Locale)))

	// Carga inicial; si falla, la pantalla arranca vacía con la alerta de error.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.API.Timeout)
	if err := orchestrator.LoadAll(loadCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial de empleados fallida")
	}
	cancelLoad()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout + time.Second*10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empleados Admin",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Screen:   orchestrator,
		RosterUC: rosterUC,
		Logger:   log,
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
