// Package pdf genera el listado de empleados en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título              │  Fecha de generación          │
//	│  RESUMEN: total / activos / dados de baja                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Email | Edad | Alta | Baja         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Empleados-admin/internal/application/ports"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorMuted   = &props.Color{Red: 160, Green: 160, Blue: 160}
)

const datePlaceholder = "-"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

// MarotoRosterGenerator implementa ports.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct {
	dateLayout string
}

// NewMarotoRosterGenerator construye el generador. dateLayout es el formato de
// las columnas de fecha; vacío usa dd/mm/aaaa.
func NewMarotoRosterGenerator(dateLayout string) *MarotoRosterGenerator {
	if dateLayout == "" {
		dateLayout = "02/01/2006"
	}
	return &MarotoRosterGenerator{dateLayout: dateLayout}
}

// GenerateRosterPDF genera el PDF y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRosterPDF(
	_ context.Context,
	title string,
	generatedAt time.Time,
	employees []entity.Employee,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, generatedAt))
	m.AddRows(summaryRow(employees))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(employees) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No hay empleados registrados", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range g.tableRows(employees) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales de la plantilla.
func summaryRow(employees []entity.Employee) core.Row {
	terminated := 0
	for _, e := range employees {
		if e.IsTerminated() {
			terminated++
		}
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total: %d   |   Activos: %d   |   Dados de baja: %d",
			len(employees), len(employees)-terminated, terminated,
		), props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 1, align.Left),
		h("Nombre", 3, align.Left),
		h("Email", 4, align.Left),
		h("Edad", 1, align.Center),
		h("Alta", 1, align.Center),
		h("Baja", 2, align.Center),
	)
}

// tableRows: una fila por empleado; los dados de baja en gris claro.
func (g *MarotoRosterGenerator) tableRows(employees []entity.Employee) []core.Row {
	result := make([]core.Row, 0, len(employees))
	for _, e := range employees {
		var color *props.Color
		if e.IsTerminated() {
			color = colorMuted
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(e.Code, 1, align.Left),
			cell(e.Name, 3, align.Left),
			cell(e.Email, 4, align.Left),
			cell(strconv.Itoa(e.Age), 1, align.Center),
			cell(g.formatDate(e.AdmissionDate), 1, align.Center),
			cell(g.formatDate(e.TerminationDate), 2, align.Center),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Listado generado desde la API de empleados. Las bajas son lógicas y conservan el registro.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *MarotoRosterGenerator) formatDate(d *time.Time) string {
	if d == nil || d.IsZero() {
		return datePlaceholder
	}
	return d.Format(g.dateLayout)
}
