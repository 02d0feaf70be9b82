package ports

import (
	"context"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
)

// EmployeeDirectory define el puerto de salida hacia la API REST de empleados.
// Toda implementación debe devolver los fallos como *domain.APIError; el llamador
// nunca ve excepciones de transporte crudas.
type EmployeeDirectory interface {
	// List obtiene todos los empleados (incluye los dados de baja).
	List(ctx context.Context) ([]entity.Employee, error)
	// Get obtiene un empleado por su código de negocio.
	Get(ctx context.Context, code string) (*entity.Employee, error)
	// Create registra un empleado; el servidor asigna id y fecha de alta.
	Create(ctx context.Context, in dto.CreateEmployeeRequest) (*entity.Employee, error)
	// Update actualiza el empleado con el id indicado.
	Update(ctx context.Context, id int, in dto.UpdateEmployeeRequest) (*entity.Employee, error)
	// Delete da de baja (soft delete) al empleado con el código indicado.
	Delete(ctx context.Context, code string) error
}
