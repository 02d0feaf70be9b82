package screen

import (
	"fmt"

	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
)

// Mensajes de la pantalla.
const (
	MsgUpdated = "Empleado actualizado con éxito!"
	MsgDeleted = "Empleado eliminado correctamente!"

	MsgErrLoad   = "Error al cargar empleados"
	MsgErrCreate = "Error al crear el empleado"
	MsgErrUpdate = "Error al actualizar el empleado"
	MsgErrDelete = "Error al eliminar el empleado"

	MsgNoEmployees = "No hay empleados registrados"
	MsgLoading     = "Cargando empleados..."

	DeleteTitle   = "⚠️ Confirmar Eliminación"
	DeleteMessage = "¿Estás seguro de que deseas eliminar este empleado? Esta acción no se puede deshacer."
	DeleteConfirm = "Sí, Eliminar"
	DeleteCancel  = "Cancelar"
)

// MsgCreated mensaje de alta exitosa.
func MsgCreated(name string) string {
	return fmt.Sprintf("Empleado %q creado con éxito!", name)
}

// FieldMessage texto de ayuda para un campo que incumple rule.
func FieldMessage(f employee.Field, rule employee.Rule) string {
	switch rule {
	case employee.RuleRequired:
		return fieldLabel(f) + " es obligatorio"
	case employee.RuleMinLength:
		return fmt.Sprintf("Debe tener al menos %d caracteres", employee.NameMinLength)
	case employee.RuleMaxLength:
		return fmt.Sprintf("Máximo %d caracteres", employee.CodeMaxLength)
	case employee.RuleEmail:
		return "Email inválido"
	case employee.RuleInteger:
		return "Debe ser un número entero"
	case employee.RuleMin:
		return fmt.Sprintf("La edad mínima es %d años", employee.MinAge)
	case employee.RuleMax:
		return fmt.Sprintf("La edad máxima es %d años", employee.MaxAge)
	default:
		return "Valor inválido"
	}
}

func fieldLabel(f employee.Field) string {
	switch f {
	case employee.FieldName:
		return "El nombre"
	case employee.FieldCode:
		return "El código"
	case employee.FieldEmail:
		return "El email"
	case employee.FieldAge:
		return "La edad"
	default:
		return string(f)
	}
}
