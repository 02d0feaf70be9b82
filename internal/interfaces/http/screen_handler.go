package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/application/screen"
	"github.com/jhoicas/Empleados-admin/internal/application/usecase"
	"github.com/jhoicas/Empleados-admin/internal/domain"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
	"github.com/jhoicas/Empleados-admin/pkg/logger"
)

// ScreenHandler expone el estado de la pantalla de empleados.
// Los envíos de formularios HTML redirigen a "/"; las peticiones JSON reciben el Snapshot.
type ScreenHandler struct {
	o      *screen.Orchestrator
	roster *usecase.RosterUseCase
	log    *logger.Logger
}

// NewScreenHandler construye el handler.
func NewScreenHandler(o *screen.Orchestrator, roster *usecase.RosterUseCase, log *logger.Logger) *ScreenHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ScreenHandler{o: o, roster: roster, log: log.Named("http")}
}

// Page godoc
// @Summary      Pantalla HTML de empleados
// @Tags         screen
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *ScreenHandler) Page(c *fiber.Ctx) error {
	html, err := renderPage(h.o.Snapshot())
	if err != nil {
		h.log.Error().Err(err).Msg("error al renderizar la pantalla")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}

// State godoc
// @Summary      Estado completo de la pantalla
// @Tags         screen
// @Produce      json
// @Success      200  {object}  screen.Snapshot
// @Router       /screen [get]
func (h *ScreenHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.o.Snapshot())
}

// Reload godoc
// @Summary      Recargar la lista de empleados
// @Tags         screen
// @Produce      json
// @Success      200  {object}  screen.Snapshot
// @Failure      502  {object}  screen.Snapshot
// @Router       /screen/reload [post]
func (h *ScreenHandler) Reload(c *fiber.Ctx) error {
	if err := h.o.LoadAll(c.UserContext()); err != nil {
		return h.respond(c, fiber.StatusBadGateway)
	}
	return h.respond(c, fiber.StatusOK)
}

// SetField godoc
// @Summary      Cambiar un campo del formulario
// @Tags         screen
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FieldChange  true  "Campo y valor"
// @Success      200   {object}  screen.Snapshot
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /screen/form [patch]
func (h *ScreenHandler) SetField(c *fiber.Ctx) error {
	var in dto.FieldChange
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.o.SetField(employee.Field(in.Field), in.Value); err != nil {
		return fieldError(c, err)
	}
	return h.respond(c, fiber.StatusOK)
}

// Submit godoc
// @Summary      Enviar el formulario (alta o edición)
// @Description  Aplica los valores recibidos y envía. En edición el código no se modifica.
// @Tags         screen
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FormValues  false  "Valores del formulario"
// @Success      200   {object}  screen.Snapshot
// @Failure      422   {object}  screen.Snapshot
// @Failure      502   {object}  screen.Snapshot
// @Router       /screen/form [post]
func (h *ScreenHandler) Submit(c *fiber.Ctx) error {
	if len(c.Body()) > 0 {
		var in dto.FormValues
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		if err := h.applyValues(in); err != nil {
			return fieldError(c, err)
		}
	}

	err := h.o.SubmitForm(c.UserContext())
	switch {
	case errors.Is(err, domain.ErrInvalidForm):
		return h.respond(c, fiber.StatusUnprocessableEntity)
	case err != nil:
		return h.respond(c, fiber.StatusBadGateway)
	}
	return h.respond(c, fiber.StatusOK)
}

// applyValues copia al formulario los campos presentes. El código se ignora
// mientras esté bloqueado por la edición.
func (h *ScreenHandler) applyValues(in dto.FormValues) error {
	form := h.o.Form()
	values := map[employee.Field]*string{
		employee.FieldName:  in.Name,
		employee.FieldCode:  in.Code,
		employee.FieldEmail: in.Email,
		employee.FieldAge:   in.Age,
	}
	for _, f := range employee.Fields {
		v := values[f]
		if v == nil {
			continue
		}
		if f == employee.FieldCode && form.Mode() == screen.FormEdit {
			continue
		}
		if err := h.o.SetField(f, *v); err != nil {
			return err
		}
	}
	return nil
}

// Edit godoc
// @Summary      Poner un empleado en edición
// @Tags         screen
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  screen.Snapshot
// @Failure      404  {object}  screen.Snapshot
// @Router       /screen/employees/{id}/edit [post]
func (h *ScreenHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	h.o.Table().EditRequested(id)
	if h.o.Snapshot().EditingID == nil {
		return h.respond(c, fiber.StatusNotFound)
	}
	return h.respond(c, fiber.StatusOK)
}

// CancelEdit godoc
// @Summary      Cancelar la edición
// @Tags         screen
// @Produce      json
// @Success      200  {object}  screen.Snapshot
// @Router       /screen/edit/cancel [post]
func (h *ScreenHandler) CancelEdit(c *fiber.Ctx) error {
	h.o.CancelEdit()
	return h.respond(c, fiber.StatusOK)
}

// RequestDelete godoc
// @Summary      Pedir confirmación para dar de baja
// @Tags         screen
// @Produce      json
// @Param        code  path  string  true  "Código del empleado"
// @Success      200   {object}  screen.Snapshot
// @Router       /screen/employees/{code}/delete [post]
func (h *ScreenHandler) RequestDelete(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "código es requerido"})
	}
	h.o.Table().DeleteRequested(code)
	return h.respond(c, fiber.StatusOK)
}

// ConfirmDelete godoc
// @Summary      Confirmar la baja pendiente
// @Tags         screen
// @Produce      json
// @Success      200  {object}  screen.Snapshot
// @Failure      502  {object}  screen.Snapshot
// @Router       /screen/delete/confirm [post]
func (h *ScreenHandler) ConfirmDelete(c *fiber.Ctx) error {
	if err := h.o.ConfirmDelete(c.UserContext()); err != nil {
		return h.respond(c, fiber.StatusBadGateway)
	}
	return h.respond(c, fiber.StatusOK)
}

// CancelDelete godoc
// @Summary      Cancelar la baja pendiente
// @Tags         screen
// @Produce      json
// @Success      200  {object}  screen.Snapshot
// @Router       /screen/delete/cancel [post]
func (h *ScreenHandler) CancelDelete(c *fiber.Ctx) error {
	h.o.CancelDelete()
	return h.respond(c, fiber.StatusOK)
}

// DismissAlert godoc
// @Summary      Cerrar una alerta
// @Tags         screen
// @Produce      json
// @Param        id   path  int  true  "ID de la alerta"
// @Success      200  {object}  screen.Snapshot
// @Failure      404  {object}  screen.Snapshot
// @Router       /screen/alerts/{id}/dismiss [post]
func (h *ScreenHandler) DismissAlert(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if !h.o.DismissAlert(id) {
		return h.respond(c, fiber.StatusNotFound)
	}
	return h.respond(c, fiber.StatusOK)
}

// RosterPDF godoc
// @Summary      Descargar el listado de empleados en PDF
// @Tags         screen
// @Produce      application/pdf
// @Param        active  query  bool  false  "Solo empleados activos"
// @Success      200
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /screen/roster.pdf [get]
func (h *ScreenHandler) RosterPDF(c *fiber.Ctx) error {
	out, filename, err := h.roster.Export(c.UserContext(), c.QueryBool("active", false))
	if err != nil {
		h.log.Error().Err(err).Msg("error al exportar el listado")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Attachment(filename)
	return c.Send(out)
}

// respond redirige los formularios HTML y devuelve el Snapshot al resto.
func (h *ScreenHandler) respond(c *fiber.Ctx, status int) error {
	if isFormPost(c) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Status(status).JSON(h.o.Snapshot())
}

func isFormPost(c *fiber.Ctx) bool {
	ct := string(c.Request().Header.ContentType())
	return strings.HasPrefix(ct, fiber.MIMEApplicationForm) || strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

func fieldError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FIELD", Message: err.Error()})
	case errors.Is(err, domain.ErrFieldLocked):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FIELD_LOCKED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
