package dto

// EmployeeDraft valores capturados por el usuario antes de que el servidor
// asigne identidad y fechas.
type EmployeeDraft struct {
	Name  string `json:"nombre" form:"nombre"`
	Code  string `json:"codEmpleado" form:"codEmpleado"`
	Email string `json:"email" form:"email"`
	Age   int    `json:"edad" form:"edad"`
}

// CreateEmployeeRequest entrada para crear un empleado (POST /Empleados).
type CreateEmployeeRequest EmployeeDraft

// UpdateEmployeeRequest entrada para actualizar un empleado (PUT /Empleados/{id}).
// Code debe ser siempre el del registro original.
type UpdateEmployeeRequest EmployeeDraft

// EmployeeResponse salida de un empleado tal como la entrega la API.
// Las fechas llegan como texto (con o sin zona horaria) y se interpretan al mapear.
type EmployeeResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"nombre"`
	Code            string  `json:"codEmpleado"`
	Email           string  `json:"email"`
	Age             int     `json:"edad"`
	AdmissionDate   *string `json:"fechaAlta,omitempty"`
	TerminationDate *string `json:"fechaBaja"`
}
