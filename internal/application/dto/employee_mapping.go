package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
)

// dateLayouts formatos de fecha aceptados desde la API, del más al menos específico.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ToEntity convierte la respuesta de la API en la entidad de dominio.
func (r EmployeeResponse) ToEntity() entity.Employee {
	return entity.Employee{
		ID:              r.ID,
		Code:            r.Code,
		Name:            r.Name,
		Email:           r.Email,
		Age:             r.Age,
		AdmissionDate:   ParseDate(r.AdmissionDate),
		TerminationDate: ParseDate(r.TerminationDate),
	}
}

// FromEntity construye la respuesta de la API a partir de la entidad.
func FromEntity(e entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		Code:            e.Code,
		Email:           e.Email,
		Age:             e.Age,
		AdmissionDate:   FormatDate(e.AdmissionDate),
		TerminationDate: FormatDate(e.TerminationDate),
	}
}

// ParseDate interpreta una fecha de la API. Vacío, nulo o ilegible equivale a ausente.
func ParseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	raw := strings.TrimSpace(*s)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate serializa una fecha en RFC3339; nil si está ausente.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
