// Package apiclient implementa el cliente HTTP de la API REST de empleados.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/application/ports"
	"github.com/jhoicas/Empleados-admin/internal/domain"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
	"github.com/jhoicas/Empleados-admin/pkg/logger"
)

// Verificar en tiempo de compilación que EmployeeClient implementa EmployeeDirectory.
var _ ports.EmployeeDirectory = (*EmployeeClient)(nil)

const (
	employeesPath = "/Empleados"

	// DefaultTimeout presupuesto por petición si no se configura otro.
	DefaultTimeout = 30 * time.Second

	maxBodyBytes = 1 << 20

	// maxDetailBytes tope del cuerpo de error copiado en APIError.Details.
	maxDetailBytes = 512
)

// EmployeeClient adaptador que implementa EmployeeDirectory sobre net/http.
type EmployeeClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewEmployeeClient construye el cliente. baseURL es la raíz de la API
// (ej. "http://localhost:5010/api"); timeout <= 0 usa DefaultTimeout.
func NewEmployeeClient(baseURL string, timeout time.Duration, log *logger.Logger) *EmployeeClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &EmployeeClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("apiclient"),
	}
}

// List GET /Empleados.
func (c *EmployeeClient) List(ctx context.Context) ([]entity.Employee, error) {
	var out []dto.EmployeeResponse
	if err := c.do(ctx, http.MethodGet, employeesPath, nil, &out); err != nil {
		return nil, err
	}
	items := make([]entity.Employee, 0, len(out))
	for _, r := range out {
		items = append(items, r.ToEntity())
	}
	return items, nil
}

// Get GET /Empleados/{code}.
func (c *EmployeeClient) Get(ctx context.Context, code string) (*entity.Employee, error) {
	var out dto.EmployeeResponse
	if err := c.do(ctx, http.MethodGet, employeesPath+"/"+url.PathEscape(code), nil, &out); err != nil {
		return nil, err
	}
	e := out.ToEntity()
	return &e, nil
}

// Create POST /Empleados.
func (c *EmployeeClient) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	var out dto.EmployeeResponse
	if err := c.do(ctx, http.MethodPost, employeesPath, in, &out); err != nil {
		return nil, err
	}
	e := out.ToEntity()
	return &e, nil
}

// Update PUT /Empleados/{id}.
func (c *EmployeeClient) Update(ctx context.Context, id int, in dto.UpdateEmployeeRequest) (*entity.Employee, error) {
	var out dto.EmployeeResponse
	if err := c.do(ctx, http.MethodPut, employeesPath+"/"+strconv.Itoa(id), in, &out); err != nil {
		return nil, err
	}
	e := out.ToEntity()
	return &e, nil
}

// Delete DELETE /Empleados/{code}. El servidor marca fechaBaja; no borra físicamente.
func (c *EmployeeClient) Delete(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, employeesPath+"/"+url.PathEscape(code), nil, nil)
}

// do ejecuta la petición y decodifica el cuerpo en out (si no es nil).
// Cualquier fallo sale como *domain.APIError.
func (c *EmployeeClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	target := c.baseURL + path
	requestID := uuid.NewString()

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return &domain.APIError{Message: "Error: no se pudo serializar la petición", Details: err.Error()}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &domain.APIError{Message: "Error: petición inválida", Details: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := transportError(method, target, err)
		c.log.Warn().Str("request_id", requestID).Str("method", method).Str("url", target).
			Err(err).Msg("petición sin respuesta del servidor")
		return apiErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return transportError(method, target, err)
	}

	c.log.Debug().Str("request_id", requestID).Str("method", method).Str("url", target).
		Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("petición completada")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverError(method, target, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		if out != nil {
			return &domain.APIError{
				Status:  resp.StatusCode,
				Message: "Respuesta vacía del servidor",
				Details: fmt.Sprintf("%s %s: cuerpo vacío", method, target),
			}
		}
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.APIError{
			Status:  resp.StatusCode,
			Message: "Respuesta inválida del servidor",
			Details: fmt.Sprintf("%s %s: %v", method, target, err),
		}
	}
	return nil
}

// StatusMessage traduce un código HTTP al mensaje mostrado al usuario.
func StatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Los datos enviados no son válidos"
	case http.StatusUnauthorized:
		return "No autorizado"
	case http.StatusForbidden:
		return "Acceso prohibido"
	case http.StatusNotFound:
		return "Recurso no encontrado"
	case http.StatusInternalServerError:
		return "Error interno del servidor"
	default:
		return "Error desconocido"
	}
}

func serverError(method, target string, status int, body []byte) *domain.APIError {
	details := fmt.Sprintf("%s %s: %d %s", method, target, status, http.StatusText(status))
	if text := strings.TrimSpace(string(body)); text != "" {
		details += " - " + truncate(text, maxDetailBytes)
	}
	return &domain.APIError{Status: status, Message: StatusMessage(status), Details: details}
}

// truncate corta s a lo sumo en max bytes sin partir una runa UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := 0
	for i := range s {
		if i > max {
			break
		}
		cut = i
	}
	return s[:cut]
}

func transportError(method, target string, err error) *domain.APIError {
	reason := "no se pudo contactar al servidor"
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		reason = "tiempo de espera agotado"
	} else if errors.Is(err, context.Canceled) {
		reason = "petición cancelada"
	}
	return &domain.APIError{
		Status:  0,
		Message: "Error: " + reason,
		Details: fmt.Sprintf("%s %s: %v", method, target, err),
	}
}
