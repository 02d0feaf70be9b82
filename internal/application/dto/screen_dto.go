package dto

// FieldChange cambio de un único campo del formulario de la pantalla.
type FieldChange struct {
	Field string `json:"field" form:"field"`
	Value string `json:"value" form:"value"`
}

// FormValues valores crudos del formulario tal como los envía el navegador.
// Un campo nil no se modifica.
type FormValues struct {
	Name  *string `json:"nombre" form:"nombre"`
	Code  *string `json:"codEmpleado" form:"codEmpleado"`
	Email *string `json:"email" form:"email"`
	Age   *string `json:"edad" form:"edad"`
}
