// Package memory implementa los puertos de persistencia en memoria de proceso.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Empleados-admin/internal/domain"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
	"github.com/jhoicas/Empleados-admin/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo almacén de empleados en memoria. Asigna ids correlativos.
type EmployeeRepo struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]entity.Employee
}

// NewEmployeeRepository construye el repositorio vacío.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{byID: make(map[int]entity.Employee)}
}

// Create asigna el id y persiste. El código es único sin distinguir mayúsculas.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cur := range r.byID {
		if strings.EqualFold(cur.Code, e.Code) {
			return fmt.Errorf("insert employee %s: %w", e.Code, domain.ErrDuplicate)
		}
	}
	r.nextID++
	e.ID = r.nextID
	r.byID[e.ID] = clone(*e)
	return nil
}

// GetByID obtiene un empleado por id.
func (r *EmployeeRepo) GetByID(id int) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := clone(e)
	return &out, nil
}

// GetByCode obtiene un empleado por código.
func (r *EmployeeRepo) GetByCode(code string) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.byID {
		if strings.EqualFold(e.Code, code) {
			out := clone(e)
			return &out, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro con el mismo id.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[e.ID]; !ok {
		return fmt.Errorf("update employee %d: %w", e.ID, domain.ErrNotFound)
	}
	r.byID[e.ID] = clone(*e)
	return nil
}

// List devuelve todos los empleados ordenados por id.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		c := clone(e)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// clone copia también las fechas para que nadie modifique el almacén por puntero.
func clone(e entity.Employee) entity.Employee {
	if e.AdmissionDate != nil {
		t := *e.AdmissionDate
		e.AdmissionDate = &t
	}
	if e.TerminationDate != nil {
		t := *e.TerminationDate
		e.TerminationDate = &t
	}
	return e
}
