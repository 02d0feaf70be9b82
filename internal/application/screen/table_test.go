package screen_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-admin/internal/application/screen"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	return &t
}

func TestTable_UnaFilaOcultaVacio(t *testing.T) {
	tb := screen.NewTable("es-ES", nil, nil)
	r := screen.Roster{Version: 1, Employees: []entity.Employee{{ID: 1, Code: "A001", Name: "Ana", Email: "a@x.com", Age: 30}}}

	view := tb.Render(r, false)
	require.Len(t, view.Rows, 1)
	assert.False(t, view.Empty)
	assert.Empty(t, view.EmptyMessage)
	assert.Equal(t, "-", view.Rows[0].Admission, "fecha ausente usa marcador")
	assert.Equal(t, "-", view.Rows[0].Termination)
}

func TestTable_VacioYCargando(t *testing.T) {
	tb := screen.NewTable("es-ES", nil, nil)

	view := tb.Render(screen.Roster{}, false)
	assert.True(t, view.Empty)
	assert.Equal(t, "No hay empleados registrados", view.EmptyMessage)

	view = tb.Render(screen.Roster{}, true)
	assert.True(t, view.Loading)
	assert.Equal(t, "Cargando empleados...", view.LoadingMessage)
	assert.Empty(t, view.EmptyMessage, "mientras carga no se muestra el estado vacío")
}

func TestTable_FechasLocalizadas(t *testing.T) {
	e := entity.Employee{ID: 1, Code: "A001", Name: "Ana", AdmissionDate: date(2024, time.January, 5), TerminationDate: date(2024, time.March, 9)}

	es := screen.NewTable("es-ES", nil, nil).Render(screen.Roster{Version: 1, Employees: []entity.Employee{e}}, false)
	assert.Equal(t, "5/1/2024", es.Rows[0].Admission)
	assert.Equal(t, "9/3/2024", es.Rows[0].Termination)
	assert.True(t, es.Rows[0].Terminated)

	us := screen.NewTable("en-US", nil, nil).Render(screen.Roster{Version: 1, Employees: []entity.Employee{e}}, false)
	assert.Equal(t, "1/5/2024", us.Rows[0].Admission)
}

func TestDateLayout_RespaldoEspañol(t *testing.T) {
	assert.Equal(t, "2/1/2006", screen.DateLayout("no-es-un-locale!!"))
	assert.Equal(t, "2/1/2006", screen.DateLayout("es-MX"))
	assert.Equal(t, "02/01/2006", screen.DateLayout("en-GB"))
}

func TestTable_SoloReconstruyeSiCambiaLaVersion(t *testing.T) {
	tb := screen.NewTable("es-ES", nil, nil)
	list := []entity.Employee{{ID: 1, Code: "A001", Name: "Ana"}}

	tb.Render(screen.Roster{Version: 1, Employees: list}, false)
	tb.Render(screen.Roster{Version: 1, Employees: list}, true)
	assert.Equal(t, 1, tb.RenderCount())

	tb.Render(screen.Roster{Version: 2, Employees: append([]entity.Employee(nil), list...)}, false)
	assert.Equal(t, 2, tb.RenderCount())
}

func TestTable_FilasDevueltasNoCompartenCache(t *testing.T) {
	tb := screen.NewTable("es-ES", nil, nil)
	r := screen.Roster{Version: 1, Employees: []entity.Employee{{ID: 1, Code: "A001", Name: "Ana"}}}

	first := tb.Render(r, false)
	first.Rows[0].Name = "Modificada"

	second := tb.Render(r, false)
	assert.Equal(t, 1, tb.RenderCount())
	assert.Equal(t, "Ana", second.Rows[0].Name)
}

func TestTable_AccionesDeFila(t *testing.T) {
	var editID int
	var deleteCode string
	tb := screen.NewTable("es-ES", func(id int) { editID = id }, func(code string) { deleteCode = code })

	tb.EditRequested(7)
	tb.DeleteRequested("E001")

	assert.Equal(t, 7, editID)
	assert.Equal(t, "E001", deleteCode)
	assert.NotPanics(t, func() { screen.NewTable("es-ES", nil, nil).EditRequested(1) })
}
