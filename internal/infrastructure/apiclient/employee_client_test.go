package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/domain"
	"github.com/jhoicas/Empleados-admin/internal/infrastructure/apiclient"
)

// recordedRequest lo que el servidor falso recibió.
type recordedRequest struct {
	Method    string
	Path      string
	Body      map[string]interface{}
	RequestID string
}

// fakeAPI servidor de pruebas que registra cada petición y responde con status/body fijos.
type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := recordedRequest{Method: r.Method, Path: r.URL.EscapedPath(), RequestID: r.Header.Get("X-Request-ID")}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&rec.Body)
	}
	f.mu.Lock()
	f.requests = append(f.requests, rec)
	status, body := f.status, f.body
	f.mu.Unlock()

	if body != "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "el servidor debe haber recibido una petición")
	return f.requests[len(f.requests)-1]
}

func newClient(t *testing.T, status int, body string) (*apiclient.EmployeeClient, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{status: status, body: body}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return apiclient.NewEmployeeClient(srv.URL+"/api/", time.Second, nil), api
}

func requireAPIError(t *testing.T, err error) *domain.APIError {
	t.Helper()
	require.Error(t, err)
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr), "el error debe estar normalizado como *domain.APIError, fue %T", err)
	return apiErr
}

func TestList_DecodificaEmpleados(t *testing.T) {
	c, api := newClient(t, http.StatusOK, `[
		{"id":1,"codEmpleado":"A001","nombre":"Ana","email":"a@x.com","edad":30,"fechaAlta":"2024-01-15T10:30:00","fechaBaja":null},
		{"id":2,"codEmpleado":"B002","nombre":"Beto","email":"b@x.com","edad":41,"fechaBaja":"2024-02-01T00:00:00Z"}
	]`)

	list, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, "A001", list[0].Code)
	require.NotNil(t, list[0].AdmissionDate)
	assert.False(t, list[0].IsTerminated())
	assert.True(t, list[1].IsTerminated())

	req := api.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/Empleados", req.Path)
	assert.NotEmpty(t, req.RequestID, "cada petición lleva X-Request-ID")
}

func TestCreate_EnviaBorrador(t *testing.T) {
	c, api := newClient(t, http.StatusCreated,
		`{"id":7,"codEmpleado":"C003","nombre":"Carla","email":"c@x.com","edad":25,"fechaAlta":"2024-05-01T08:00:00Z"}`)

	out, err := c.Create(context.Background(), dto.CreateEmployeeRequest{Name: "Carla", Code: "C003", Email: "c@x.com", Age: 25})
	require.NoError(t, err)
	assert.Equal(t, 7, out.ID)
	require.NotNil(t, out.AdmissionDate)

	req := api.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/Empleados", req.Path)
	assert.Equal(t, "Carla", req.Body["nombre"])
	assert.Equal(t, "C003", req.Body["codEmpleado"])
	assert.Equal(t, "c@x.com", req.Body["email"])
	assert.EqualValues(t, 25, req.Body["edad"])
}

func TestUpdate_UsaIDEnLaRuta(t *testing.T) {
	c, api := newClient(t, http.StatusOK, `{"id":7,"codEmpleado":"C003","nombre":"Carla M","email":"c@x.com","edad":26}`)

	_, err := c.Update(context.Background(), 7, dto.UpdateEmployeeRequest{Name: "Carla M", Code: "C003", Email: "c@x.com", Age: 26})
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/Empleados/7", req.Path)
	assert.Equal(t, "C003", req.Body["codEmpleado"])
}

func TestDelete_UsaCodigoEnLaRutaYAcepta204(t *testing.T) {
	c, api := newClient(t, http.StatusNoContent, "")

	require.NoError(t, c.Delete(context.Background(), "E001"))

	req := api.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/Empleados/E001", req.Path)
}

func TestGet_EscapaCodigo(t *testing.T) {
	c, api := newClient(t, http.StatusOK, `{"id":3,"codEmpleado":"A/1","nombre":"Ana","email":"a@x.com","edad":30}`)

	out, err := c.Get(context.Background(), "A/1")
	require.NoError(t, err)
	assert.Equal(t, "A/1", out.Code)
	assert.Equal(t, "/api/Empleados/A%2F1", api.last(t).Path)
}

func TestErrores_TablaDeMensajesPorStatus(t *testing.T) {
	cases := map[int]string{
		http.StatusBadRequest:          "Los datos enviados no son válidos",
		http.StatusUnauthorized:        "No autorizado",
		http.StatusForbidden:           "Acceso prohibido",
		http.StatusNotFound:            "Recurso no encontrado",
		http.StatusInternalServerError: "Error interno del servidor",
		http.StatusBadGateway:          "Error desconocido",
		http.StatusConflict:            "Error desconocido",
	}
	for status, msg := range cases {
		c, _ := newClient(t, status, `{"code":"X","message":"detalle del backend"}`)

		_, err := c.List(context.Background())
		apiErr := requireAPIError(t, err)
		assert.Equal(t, status, apiErr.Status)
		assert.Equal(t, msg, apiErr.Message, "status %d", status)
		assert.Contains(t, apiErr.Details, "detalle del backend")
	}
}

func TestErrores_DetalleLargoSeCortaSinPartirRunas(t *testing.T) {
	// 400 eñes ocupan 800 bytes; el corte en 512 caería en mitad de una runa
	body := "x" + strings.Repeat("ñ", 400)
	c, _ := newClient(t, http.StatusInternalServerError, body)

	_, err := c.List(context.Background())
	apiErr := requireAPIError(t, err)
	assert.True(t, utf8.ValidString(apiErr.Details))
	assert.NotContains(t, apiErr.Details, body)
	assert.Contains(t, apiErr.Details, " - xñ")
}

func TestErrores_UnwrapADominio(t *testing.T) {
	c, _ := newClient(t, http.StatusNotFound, "")

	err := c.Delete(context.Background(), "ZZZZ")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestErrores_TransporteSinServidor(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := apiclient.NewEmployeeClient(base, time.Second, nil)
	_, err := c.List(context.Background())

	apiErr := requireAPIError(t, err)
	assert.Equal(t, 0, apiErr.Status, "un fallo de transporte no tiene status HTTP")
	assert.Contains(t, apiErr.Message, "Error:")
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

func TestErrores_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := apiclient.NewEmployeeClient(srv.URL, 50*time.Millisecond, nil)
	_, err := c.List(context.Background())

	apiErr := requireAPIError(t, err)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "Error: tiempo de espera agotado", apiErr.Message)
}

func TestErrores_CuerpoInvalido(t *testing.T) {
	c, _ := newClient(t, http.StatusOK, `no es json`)

	_, err := c.List(context.Background())
	apiErr := requireAPIError(t, err)
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Equal(t, "Respuesta inválida del servidor", apiErr.Message)
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Error interno del servidor", apiclient.StatusMessage(500))
	assert.Equal(t, "Error desconocido", apiclient.StatusMessage(418))
}
