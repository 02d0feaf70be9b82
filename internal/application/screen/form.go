package screen

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/domain"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
)

// FormMode modo del formulario.
type FormMode string

const (
	FormCreate FormMode = "create"
	FormEdit   FormMode = "edit"
)

// FieldState estado de un campo: valor crudo, si fue tocado y la regla incumplida.
type FieldState struct {
	Value    string        `json:"value"`
	Touched  bool          `json:"touched"`
	Disabled bool          `json:"disabled"`
	Error    employee.Rule `json:"error,omitempty"`
	Message  string        `json:"message,omitempty"` // solo si Touched y hay Error
}

// FormState copia inmutable del formulario.
type FormState struct {
	Mode   FormMode                      `json:"mode"`
	Valid  bool                          `json:"valid"`
	Fields map[employee.Field]FieldState `json:"fields"`
}

// Form borrador validado campo a campo de un empleado.
// El valor cero no está inicializado: Reset no hace nada y el resto de
// operaciones lo inicializan bajo demanda.
type Form struct {
	mu     sync.Mutex
	rules  *employee.Validator
	mode   FormMode
	fields map[employee.Field]*FieldState
}

// NewForm construye el formulario en modo creación.
func NewForm(rules *employee.Validator) *Form {
	f := &Form{rules: rules}
	f.init()
	return f
}

func (f *Form) init() {
	if f.rules == nil {
		f.rules = employee.NewValidator()
	}
	f.mode = FormCreate
	f.fields = make(map[employee.Field]*FieldState, len(employee.Fields))
	for _, name := range employee.Fields {
		f.fields[name] = &FieldState{}
		f.check(name)
	}
}

func (f *Form) ensure() {
	if f.fields == nil {
		f.init()
	}
}

// SetValue cambia el valor de un campo y lo revalida.
func (f *Form) SetValue(name employee.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensure()

	fs, ok := f.fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownField, name)
	}
	if fs.Disabled {
		return fmt.Errorf("%w: %s", domain.ErrFieldLocked, name)
	}
	fs.Value = value
	fs.Touched = true
	f.check(name)
	return nil
}

// Value devuelve el valor crudo de un campo (también si está deshabilitado).
func (f *Form) Value(name employee.Field) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensure()
	if fs, ok := f.fields[name]; ok {
		return fs.Value
	}
	return ""
}

// Touch marca un campo como tocado para que muestre sus errores.
func (f *Form) Touch(name employee.Field) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensure()
	if fs, ok := f.fields[name]; ok {
		fs.Touched = true
	}
}

// HasError indica si el campo incumple rule y ya fue tocado.
func (f *Form) HasError(name employee.Field, rule employee.Rule) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensure()
	fs, ok := f.fields[name]
	return ok && fs.Touched && fs.Error == rule
}

// Valid indica si todos los campos cumplen sus reglas.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensure()
	return f.valid()
}

// Mode devuelve el modo actual.
func (f *Form) Mode() FormMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensure()
	return f.mode
}

// Edit pasa a modo edición con los datos de e, bloqueando el código.
// Con e == nil vuelve a modo creación.
func (f *Form) Edit(e *entity.Employee) {
	if e == nil {
		f.Reset()
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensure()

	values := map[employee.Field]string{
		employee.FieldName:  e.Name,
		employee.FieldCode:  e.Code,
		employee.FieldEmail: e.Email,
		employee.FieldAge:   strconv.Itoa(e.Age),
	}
	for name, fs := range f.fields {
		*fs = FieldState{Value: values[name]}
		f.check(name)
	}
	f.fields[employee.FieldCode].Disabled = true
	f.mode = FormEdit
}

// Submit valida. Si algo falla marca todos los campos como tocados y devuelve false;
// si no, devuelve el borrador normalizado, incluido el código aunque esté bloqueado.
// Decidir si es alta o edición le corresponde al llamador.
func (f *Form) Submit() (dto.EmployeeDraft, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensure()

	for name := range f.fields {
		f.check(name)
	}
	if !f.valid() {
		for _, fs := range f.fields {
			fs.Touched = true
		}
		return dto.EmployeeDraft{}, false
	}
	age, _ := strconv.Atoi(employee.Normalize(employee.FieldAge, f.fields[employee.FieldAge].Value))
	return dto.EmployeeDraft{
		Name:  employee.Normalize(employee.FieldName, f.fields[employee.FieldName].Value),
		Code:  employee.Normalize(employee.FieldCode, f.fields[employee.FieldCode].Value),
		Email: employee.Normalize(employee.FieldEmail, f.fields[employee.FieldEmail].Value),
		Age:   age,
	}, true
}

// Reset limpia los valores y rehabilita el código. No hace nada si el formulario
// no fue inicializado.
func (f *Form) Reset() {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fields == nil {
		return
	}
	for name, fs := range f.fields {
		*fs = FieldState{}
		f.check(name)
	}
	f.mode = FormCreate
}

// State devuelve una copia del formulario.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensure()

	out := FormState{Mode: f.mode, Valid: f.valid(), Fields: make(map[employee.Field]FieldState, len(f.fields))}
	for name, fs := range f.fields {
		c := *fs
		if c.Touched && c.Error != "" {
			c.Message = FieldMessage(name, c.Error)
		}
		out.Fields[name] = c
	}
	return out
}

func (f *Form) check(name employee.Field) {
	fs := f.fields[name]
	fs.Error = f.rules.CheckField(name, fs.Value)
}

func (f *Form) valid() bool {
	for _, fs := range f.fields {
		if fs.Error != "" {
			return false
		}
	}
	return true
}
