// Package employee contiene las reglas de negocio de los datos de un empleado:
// límites de validación, normalización de campos y el motor de reglas compartido
// entre el formulario de la pantalla y el backend de desarrollo.
package employee

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Empleados-admin/internal/domain"
)

// Límites de validación.
const (
	NameMinLength = 3
	CodeMaxLength = 4
	MinAge        = 16
	MaxAge        = 100
)

// Field identifica un campo del borrador; el valor coincide con el nombre en la API.
type Field string

const (
	FieldName  Field = "nombre"
	FieldCode  Field = "codEmpleado"
	FieldEmail Field = "email"
	FieldAge   Field = "edad"
)

// Fields lista los campos en orden de presentación.
var Fields = []Field{FieldName, FieldCode, FieldEmail, FieldAge}

// Rule nombre de la regla incumplida por un campo.
type Rule string

const (
	RuleRequired  Rule = "required"
	RuleMinLength Rule = "minlength"
	RuleMaxLength Rule = "maxlength"
	RuleEmail     Rule = "email"
	RuleInteger   Rule = "integer"
	RuleMin       Rule = "min"
	RuleMax       Rule = "max"
)

var stringTags = map[Field]string{
	FieldName:  fmt.Sprintf("required,min=%d", NameMinLength),
	FieldCode:  fmt.Sprintf("required,max=%d", CodeMaxLength),
	FieldEmail: "required,email",
}

var ageRangeTag = fmt.Sprintf("gte=%d,lte=%d", MinAge, MaxAge)

// Validator evalúa las reglas de cada campo usando go-playground/validator.
type Validator struct {
	v *validator.Validate
}

// NewValidator construye el motor de reglas.
func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

// CheckField normaliza raw y devuelve la primera regla incumplida, o "" si es válido.
func (r *Validator) CheckField(f Field, raw string) Rule {
	value := Normalize(f, raw)
	if f == FieldAge {
		return r.checkAge(value)
	}
	tag, ok := stringTags[f]
	if !ok {
		return ""
	}
	return ruleFor(r.v.Var(value, tag))
}

func (r *Validator) checkAge(value string) Rule {
	if value == "" {
		return RuleRequired
	}
	if err := r.v.Var(value, "number"); err != nil {
		return RuleInteger
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		// solo dígitos pero fuera de rango de int
		return RuleMax
	}
	return r.checkAgeValue(n)
}

func (r *Validator) checkAgeValue(n int) Rule {
	return ruleFor(r.v.Var(n, ageRangeTag))
}

// ValidateDraft valida un borrador ya tipado (lado servidor). Devuelve un error que
// envuelve domain.ErrInvalidInput con el detalle de cada campo incumplido.
func (r *Validator) ValidateDraft(name, code, email string, age int) error {
	var errs []error
	for f, v := range map[Field]string{FieldName: name, FieldCode: code, FieldEmail: email} {
		if rule := r.CheckField(f, v); rule != "" {
			errs = append(errs, fmt.Errorf("%s: %s", f, rule))
		}
	}
	if rule := r.checkAgeValue(age); rule != "" {
		errs = append(errs, fmt.Errorf("%s: %s", FieldAge, rule))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrInvalidInput}, errs...)...)
	}
	return nil
}

// ruleFor traduce la primera etiqueta fallida de validator a una Rule.
func ruleFor(err error) Rule {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return RuleRequired
	}
	switch verrs[0].Tag() {
	case "required":
		return RuleRequired
	case "min":
		return RuleMinLength
	case "max":
		return RuleMaxLength
	case "email":
		return RuleEmail
	case "number":
		return RuleInteger
	case "gte":
		return RuleMin
	case "lte":
		return RuleMax
	default:
		return Rule(verrs[0].Tag())
	}
}

// Normalize aplica la política de normalización antes de validar o enviar:
// todo se recorta; el nombre colapsa espacios internos; el código va en
// mayúsculas y el email en minúsculas.
func Normalize(f Field, raw string) string {
	switch f {
	case FieldName:
		return strings.Join(strings.Fields(raw), " ")
	case FieldCode:
		return strings.ToUpper(strings.TrimSpace(raw))
	case FieldEmail:
		return strings.ToLower(strings.TrimSpace(raw))
	default:
		return strings.TrimSpace(raw)
	}
}
