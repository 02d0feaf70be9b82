package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Empleados-admin/internal/application/ports"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
)

// RosterTitle título del listado exportado.
const RosterTitle = "Listado de Empleados"

// RosterUseCase exporta la lista de empleados a PDF.
type RosterUseCase struct {
	dir ports.EmployeeDirectory
	gen ports.RosterPDFGenerator
	now func() time.Time
}

// NewRosterUseCase construye el caso de uso.
func NewRosterUseCase(dir ports.EmployeeDirectory, gen ports.RosterPDFGenerator) *RosterUseCase {
	return &RosterUseCase{dir: dir, gen: gen, now: time.Now}
}

// Export pide la lista al directorio y genera el PDF. Con activeOnly se omiten
// los dados de baja. Devuelve los bytes y un nombre de archivo sugerido.
func (uc *RosterUseCase) Export(ctx context.Context, activeOnly bool) ([]byte, string, error) {
	list, err := uc.dir.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("roster: listar empleados: %w", err)
	}
	if activeOnly {
		active := make([]entity.Employee, 0, len(list))
		for _, e := range list {
			if !e.IsTerminated() {
				active = append(active, e)
			}
		}
		list = active
	}

	now := uc.now()
	out, err := uc.gen.GenerateRosterPDF(ctx, RosterTitle, now, list)
	if err != nil {
		return nil, "", fmt.Errorf("roster: %w", err)
	}
	return out, RosterFilename(now), nil
}

// RosterFilename nombre del PDF para una fecha.
func RosterFilename(t time.Time) string {
	return "empleados-" + t.Format("20060102") + ".pdf"
}
