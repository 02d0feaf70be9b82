package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
)

// RosterPDFGenerator genera el listado de empleados en PDF.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, title string, generatedAt time.Time, employees []entity.Employee) ([]byte, error)
}
