package repository

import "github.com/jhoicas/Empleados-admin/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// GetBy* devuelve (nil, nil) si no existe.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id int) (*entity.Employee, error)
	GetByCode(code string) (*entity.Employee, error)
	Update(e *entity.Employee) error
	List() ([]*entity.Employee, error)
}
