package http_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-admin/internal/application/screen"
	"github.com/jhoicas/Empleados-admin/internal/application/usecase"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
	"github.com/jhoicas/Empleados-admin/internal/infrastructure/apiclient"
	"github.com/jhoicas/Empleados-admin/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Empleados-admin/internal/interfaces/http"
)

// newScreenApp levanta el backend de desarrollo en un httptest.Server y la
// pantalla apuntando a él con el cliente HTTP real.
func newScreenApp(t *testing.T) (*fiber.App, *screen.Orchestrator) {
	t.Helper()
	backend := httptest.NewServer(adaptor.FiberApp(buildMockAPI()))
	t.Cleanup(backend.Close)

	client := apiclient.NewEmployeeClient(backend.URL+"/api", 5*time.Second, nil)
	alerts := screen.NewNotifier(time.Minute)
	t.Cleanup(alerts.Close)

	o := screen.NewOrchestrator(client, alerts, screen.NewForm(employee.NewValidator()), screen.NewConfirmDialog(), "es-ES", nil)
	require.NoError(t, o.LoadAll(context.Background()))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Screen:   o,
		RosterUC: usecase.NewRosterUseCase(client, pdf.NewMarotoRosterGenerator(screen.DateLayout("es-ES"))),
	})
	return app, o
}

func doForm(t *testing.T, app *fiber.App, path string, values url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func createAna(t *testing.T, app *fiber.App) screen.Snapshot {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/screen/form", anaJSON)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return decode[screen.Snapshot](t, resp)
}

func TestScreen_EstadoInicialVacio(t *testing.T) {
	app, _ := newScreenApp(t)

	snap := decode[screen.Snapshot](t, doJSON(t, app, http.MethodGet, "/screen", ""))
	assert.True(t, snap.Table.Empty)
	assert.Equal(t, screen.MsgNoEmployees, snap.Table.EmptyMessage)
	assert.Equal(t, screen.FormCreate, snap.Form.Mode)
	assert.False(t, snap.Form.Valid)
}

func TestScreen_AltaRecargaLista(t *testing.T) {
	app, _ := newScreenApp(t)

	snap := createAna(t, app)
	require.Len(t, snap.Table.Rows, 1)
	assert.Equal(t, "A001", snap.Table.Rows[0].Code)
	assert.NotEqual(t, screen.DatePlaceholder, snap.Table.Rows[0].Admission)
	assert.Equal(t, screen.DatePlaceholder, snap.Table.Rows[0].Termination)
	require.NotEmpty(t, snap.Alerts)
	assert.Equal(t, screen.MsgCreated("Ana"), snap.Alerts[len(snap.Alerts)-1].Message)
	assert.Equal(t, "", snap.Form.Fields[employee.FieldName].Value, "el formulario se limpia tras el alta")
}

func TestScreen_FormularioInvalido422(t *testing.T) {
	app, _ := newScreenApp(t)

	resp := doJSON(t, app, http.MethodPost, "/screen/form", `{"nombre":"Al"}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	snap := decode[screen.Snapshot](t, resp)

	name := snap.Form.Fields[employee.FieldName]
	assert.True(t, name.Touched)
	assert.Equal(t, employee.RuleMinLength, name.Error)
	assert.NotEmpty(t, name.Message)
	assert.Empty(t, snap.Alerts, "un formulario inválido no muestra alertas")
}

func TestScreen_SetFieldCampoDesconocido(t *testing.T) {
	app, _ := newScreenApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/screen/form", `{"field":"salario","value":"1"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, "/screen/form", `{"field":"nombre","value":"Ana"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	snap := decode[screen.Snapshot](t, resp)
	assert.Equal(t, "Ana", snap.Form.Fields[employee.FieldName].Value)
}

func TestScreen_EdicionBloqueaCodigo(t *testing.T) {
	app, _ := newScreenApp(t)
	id := createAna(t, app).Table.Rows[0].ID

	resp := doJSON(t, app, http.MethodPost, "/screen/employees/"+itoa(id)+"/edit", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	snap := decode[screen.Snapshot](t, resp)
	require.NotNil(t, snap.EditingID)
	assert.Equal(t, id, *snap.EditingID)
	assert.True(t, snap.Form.Fields[employee.FieldCode].Disabled)

	resp = doJSON(t, app, http.MethodPatch, "/screen/form", `{"field":"codEmpleado","value":"Z999"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/screen/form", `{"nombre":"Ana María","codEmpleado":"Z999"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	snap = decode[screen.Snapshot](t, resp)
	require.Len(t, snap.Table.Rows, 1)
	assert.Equal(t, "Ana María", snap.Table.Rows[0].Name)
	assert.Equal(t, "A001", snap.Table.Rows[0].Code, "el código no cambia en edición")
	assert.Nil(t, snap.EditingID)
	assert.Equal(t, screen.MsgUpdated, snap.Alerts[len(snap.Alerts)-1].Message)
}

func TestScreen_EditarInexistente404(t *testing.T) {
	app, _ := newScreenApp(t)

	resp := doJSON(t, app, http.MethodPost, "/screen/employees/99/edit", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestScreen_BajaConConfirmacion(t *testing.T) {
	app, _ := newScreenApp(t)
	createAna(t, app)

	snap := decode[screen.Snapshot](t, doJSON(t, app, http.MethodPost, "/screen/employees/A001/delete", ""))
	assert.True(t, snap.Confirm.Visible)
	assert.Equal(t, screen.DeleteTitle, snap.Confirm.Title)
	assert.Equal(t, "A001", snap.PendingDelete)
	assert.False(t, snap.Table.Rows[0].Terminated, "pedir la baja no llama a la red")

	resp := doJSON(t, app, http.MethodPost, "/screen/delete/confirm", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	snap = decode[screen.Snapshot](t, resp)
	assert.False(t, snap.Confirm.Visible)
	assert.Empty(t, snap.PendingDelete)
	assert.True(t, snap.Table.Rows[0].Terminated)
	assert.Equal(t, screen.MsgDeleted, snap.Alerts[len(snap.Alerts)-1].Message)
}

func TestScreen_CancelarBaja(t *testing.T) {
	app, _ := newScreenApp(t)
	createAna(t, app)
	doJSON(t, app, http.MethodPost, "/screen/employees/A001/delete", "")

	snap := decode[screen.Snapshot](t, doJSON(t, app, http.MethodPost, "/screen/delete/cancel", ""))
	assert.False(t, snap.Confirm.Visible)
	assert.Empty(t, snap.PendingDelete)
	assert.False(t, snap.Table.Rows[0].Terminated)
}

func TestScreen_CerrarAlerta(t *testing.T) {
	app, _ := newScreenApp(t)
	snap := createAna(t, app)
	id := snap.Alerts[0].ID

	resp := doJSON(t, app, http.MethodPost, "/screen/alerts/"+itoa(id)+"/dismiss", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[screen.Snapshot](t, resp).Alerts)

	resp = doJSON(t, app, http.MethodPost, "/screen/alerts/"+itoa(id)+"/dismiss", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestScreen_FormularioHTMLRedirige(t *testing.T) {
	app, o := newScreenApp(t)

	resp := doForm(t, app, "/screen/form", url.Values{
		"nombre":      {"Luis"},
		"codEmpleado": {"b002"},
		"email":       {"luis@x.com"},
		"edad":        {"40"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	roster := o.Employees()
	require.Len(t, roster.Employees, 1)
	assert.Equal(t, "B002", roster.Employees[0].Code)
}

func TestScreen_PaginaHTML(t *testing.T) {
	app, _ := newScreenApp(t)
	createAna(t, app)

	resp := doJSON(t, app, http.MethodGet, "/", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "Gestión de Empleados")
	assert.Contains(t, html, "A001")
	assert.Contains(t, html, `action="/screen/employees/A001/delete"`)
}

func TestScreen_ListadoPDF(t *testing.T) {
	app, _ := newScreenApp(t)
	createAna(t, app)

	resp := doJSON(t, app, http.MethodGet, "/screen/roster.pdf", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestScreen_RecargaConBackendCaido(t *testing.T) {
	backend := httptest.NewServer(adaptor.FiberApp(buildMockAPI()))
	client := apiclient.NewEmployeeClient(backend.URL+"/api", time.Second, nil)
	backend.Close()

	alerts := screen.NewNotifier(time.Minute)
	t.Cleanup(alerts.Close)
	o := screen.NewOrchestrator(client, alerts, screen.NewForm(nil), screen.NewConfirmDialog(), "es-ES", nil)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Screen: o})

	resp := doJSON(t, app, http.MethodPost, "/screen/reload", "")
	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	snap := decode[screen.Snapshot](t, resp)
	require.Len(t, snap.Alerts, 1)
	assert.Equal(t, screen.MsgErrLoad, snap.Alerts[0].Message)
	assert.Equal(t, screen.AlertError, snap.Alerts[0].Kind)
}
