package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-admin/internal/application/screen"
	"github.com/jhoicas/Empleados-admin/internal/application/usecase"
	"github.com/jhoicas/Empleados-admin/pkg/logger"
)

// RouterDeps dependencias para el router de la pantalla.
type RouterDeps struct {
	Screen   *screen.Orchestrator
	RosterUC *usecase.RosterUseCase
	Logger   *logger.Logger
}

// Router registra la página HTML y la API de la pantalla.
func Router(app *fiber.App, deps RouterDeps) {
	h := NewScreenHandler(deps.Screen, deps.RosterUC, deps.Logger)

	app.Get("/", h.Page)

	s := app.Group("/screen")
	s.Get("/", h.State)
	s.Post("/reload", h.Reload)
	s.Patch("/form", h.SetField)
	s.Post("/form", h.Submit)
	s.Post("/employees/:id/edit", h.Edit)
	s.Post("/edit/cancel", h.CancelEdit)
	s.Post("/employees/:code/delete", h.RequestDelete)
	s.Post("/delete/confirm", h.ConfirmDelete)
	s.Post("/delete/cancel", h.CancelDelete)
	s.Post("/alerts/:id/dismiss", h.DismissAlert)
	s.Get("/roster.pdf", h.RosterPDF)
}

// MockAPIDeps dependencias para el backend de desarrollo.
type MockAPIDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
}

// MockAPIRouter registra el contrato REST /api/Empleados.
func MockAPIRouter(app *fiber.App, deps MockAPIDeps) {
	api := app.Group("/api")

	employees := api.Group("/Empleados")
	h := NewEmployeeAPIHandler(deps.EmployeeUC)
	employees.Get("/", h.List)
	employees.Post("/", h.Create)
	employees.Get("/:code", h.GetByCode)
	employees.Put("/:id", h.Update)
	employees.Delete("/:code", h.Delete)
}
