package entity

import "time"

// Employee representa un empleado registrado en el backend.
// ID y Code los asigna/fija el servidor y el cliente nunca los modifica.
type Employee struct {
	ID              int
	Code            string
	Name            string
	Email           string
	Age             int
	AdmissionDate   *time.Time
	TerminationDate *time.Time // presente = dado de baja (soft delete)
}

// IsTerminated indica si el empleado fue dado de baja.
func (e Employee) IsTerminated() bool {
	return e.TerminationDate != nil
}
