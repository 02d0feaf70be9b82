// Command mockapi sirve el contrato REST /api/Empleados en memoria para
// desarrollo local de la pantalla.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/application/usecase"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
	"github.com/jhoicas/Empleados-admin/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/Empleados-admin/internal/interfaces/http"
	"github.com/jhoicas/Empleados-admin/pkg/config"
	"github.com/jhoicas/Empleados-admin/pkg/logger"
)

// seed empleados iniciales del backend de desarrollo.
var seed = []dto.CreateEmployeeRequest{
	{Name: "Ana García", Code: "A001", Email: "ana.garcia@empresa.com", Age: 34},
	{Name: "Luis Pérez", Code: "B002", Email: "luis.perez@empresa.com", Age: 41},
	{Name: "María López", Code: "C003", Email: "maria.lopez@empresa.com", Age: 28},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	}).Named("mockapi")

	employeeUC := usecase.NewEmployeeUseCase(memory.NewEmployeeRepository(), employee.NewValidator())
	for _, in := range seed {
		if _, err := employeeUC.Create(in); err != nil {
			log.Fatal().Err(err).Str("code", in.Code).Msg("cargar datos iniciales")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-mockapi",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "mockapi"})
	})

	httpRouter.MockAPIRouter(app, httpRouter.MockAPIDeps{EmployeeUC: employeeUC})

	go func() {
		log.Info().Str("addr", cfg.MockAPI.Addr()).Int("empleados", len(seed)).Msg("backend de desarrollo escuchando")
		if err := app.Listen(cfg.MockAPI.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("backend de desarrollo detenido")
}
