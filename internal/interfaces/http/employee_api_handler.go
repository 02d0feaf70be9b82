package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/application/usecase"
	"github.com/jhoicas/Empleados-admin/internal/domain"
)

// EmployeeAPIHandler expone el contrato REST /Empleados sobre el repositorio en memoria.
type EmployeeAPIHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeAPIHandler construye el handler.
func NewEmployeeAPIHandler(uc *usecase.EmployeeUseCase) *EmployeeAPIHandler {
	return &EmployeeAPIHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados (incluye dados de baja)
// @Tags         empleados
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/Empleados [get]
func (h *EmployeeAPIHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Obtener empleado por código
// @Tags         empleados
// @Produce      json
// @Param        code  path  string  true  "Código del empleado"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/Empleados/{code} [get]
func (h *EmployeeAPIHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Params("code"))
	if err != nil {
		return apiError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/Empleados [post]
func (h *EmployeeAPIHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return apiError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del empleado"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Datos del empleado"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/Empleados/{id} [put]
func (h *EmployeeAPIHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return apiError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Dar de baja un empleado (soft delete)
// @Tags         empleados
// @Param        code  path  string  true  "Código del empleado"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/Empleados/{code} [delete]
func (h *EmployeeAPIHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("code")); err != nil {
		return apiError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// apiError traduce los errores de dominio a códigos HTTP.
func apiError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrCodeImmutable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
