package employee_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-admin/internal/domain"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
)

func TestCheckField_LimitesDeEdad(t *testing.T) {
	r := employee.NewValidator()

	cases := []struct {
		raw  string
		want employee.Rule
	}{
		{"15", employee.RuleMin},
		{"16", ""},
		{"100", ""},
		{"101", employee.RuleMax},
		{"", employee.RuleRequired},
		{"  ", employee.RuleRequired},
		{"veinte", employee.RuleInteger},
		{"30.5", employee.RuleInteger},
		{"-20", employee.RuleInteger},
		{strings.Repeat("9", 40), employee.RuleMax},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, r.CheckField(employee.FieldAge, tc.raw), "edad %q", tc.raw)
	}
}

func TestCheckField_LongitudDeCodigo(t *testing.T) {
	r := employee.NewValidator()

	assert.Equal(t, employee.Rule(""), r.CheckField(employee.FieldCode, "E001"))
	assert.Equal(t, employee.RuleMaxLength, r.CheckField(employee.FieldCode, "E0001"))
	assert.Equal(t, employee.RuleRequired, r.CheckField(employee.FieldCode, ""))
	// se recorta antes de validar
	assert.Equal(t, employee.Rule(""), r.CheckField(employee.FieldCode, " e01 "))
}

func TestCheckField_NombreYEmail(t *testing.T) {
	r := employee.NewValidator()

	assert.Equal(t, employee.Rule(""), r.CheckField(employee.FieldName, "Ana"))
	assert.Equal(t, employee.RuleMinLength, r.CheckField(employee.FieldName, "Al"))
	assert.Equal(t, employee.RuleMinLength, r.CheckField(employee.FieldName, "  Al  "))
	assert.Equal(t, employee.RuleRequired, r.CheckField(employee.FieldName, ""))

	assert.Equal(t, employee.Rule(""), r.CheckField(employee.FieldEmail, "a@x.com"))
	assert.Equal(t, employee.RuleEmail, r.CheckField(employee.FieldEmail, "a-x.com"))
	assert.Equal(t, employee.RuleRequired, r.CheckField(employee.FieldEmail, " "))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Ana María", employee.Normalize(employee.FieldName, "  Ana   María "))
	assert.Equal(t, "E001", employee.Normalize(employee.FieldCode, " e001"))
	assert.Equal(t, "ana@x.com", employee.Normalize(employee.FieldEmail, " Ana@X.com "))
	assert.Equal(t, "30", employee.Normalize(employee.FieldAge, " 30 "))
}

func TestValidateDraft(t *testing.T) {
	r := employee.NewValidator()

	require.NoError(t, r.ValidateDraft("Ana", "A001", "a@x.com", 30))

	err := r.ValidateDraft("Al", "A00001", "no-es-email", 15)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	for _, f := range []string{"nombre", "codEmpleado", "email", "edad"} {
		assert.Contains(t, err.Error(), f)
	}
}
