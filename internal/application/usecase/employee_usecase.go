package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/domain"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
	"github.com/jhoicas/Empleados-admin/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD del backend de empleados (alta, edición y baja lógica).
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	rules *employee.Validator
	now   func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, rules *employee.Validator) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, rules: rules, now: time.Now}
}

// List lista todos los empleados, incluidos los dados de baja.
func (uc *EmployeeUseCase) List() ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.FromEntity(*e))
	}
	return items, nil
}

// GetByCode obtiene un empleado por código; (nil, nil) si no existe.
func (uc *EmployeeUseCase) GetByCode(code string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByCode(code)
	if err != nil || e == nil {
		return nil, err
	}
	out := dto.FromEntity(*e)
	return &out, nil
}

// Create registra un empleado nuevo con fecha de alta actual.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	name := employee.Normalize(employee.FieldName, in.Name)
	code := employee.Normalize(employee.FieldCode, in.Code)
	email := employee.Normalize(employee.FieldEmail, in.Email)
	if err := uc.rules.ValidateDraft(name, code, email, in.Age); err != nil {
		return nil, err
	}

	now := uc.now().UTC().Truncate(time.Second)
	e := &entity.Employee{
		Code:          code,
		Name:          name,
		Email:         email,
		Age:           in.Age,
		AdmissionDate: &now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	out := dto.FromEntity(*e)
	return &out, nil
}

// Update actualiza nombre, email y edad. Código y fecha de alta se conservan;
// un código distinto en la entrada se rechaza. (nil, nil) si no existe.
func (uc *EmployeeUseCase) Update(id int, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if code := employee.Normalize(employee.FieldCode, in.Code); code != "" && !strings.EqualFold(code, e.Code) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCodeImmutable, e.Code)
	}

	name := employee.Normalize(employee.FieldName, in.Name)
	email := employee.Normalize(employee.FieldEmail, in.Email)
	if err := uc.rules.ValidateDraft(name, e.Code, email, in.Age); err != nil {
		return nil, err
	}
	e.Name, e.Email, e.Age = name, email, in.Age
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	out := dto.FromEntity(*e)
	return &out, nil
}

// Delete da de baja (soft delete) por código. Repetir la baja no cambia la fecha.
func (uc *EmployeeUseCase) Delete(code string) error {
	e, err := uc.repo.GetByCode(code)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if e.IsTerminated() {
		return nil
	}
	now := uc.now().UTC().Truncate(time.Second)
	e.TerminationDate = &now
	return uc.repo.Update(e)
}
