package screen

import (
	"slices"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
)

// DatePlaceholder texto para fechas ausentes.
const DatePlaceholder = "-"

// Formatos de fecha por idioma soportado; el primero es el de respaldo.
var (
	supportedLocales = []language.Tag{
		language.MustParse("es-ES"),
		language.MustParse("en-US"),
		language.MustParse("en-GB"),
		language.MustParse("pt-BR"),
	}
	localeLayouts = []string{
		"2/1/2006",
		"1/2/2006",
		"02/01/2006",
		"02/01/2006",
	}
	localeMatcher = language.NewMatcher(supportedLocales)
)

// DateLayout devuelve el formato de fecha corta para un locale BCP 47.
func DateLayout(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return localeLayouts[0]
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return localeLayouts[0]
	}
	return localeLayouts[idx]
}

// Row fila ya formateada de la tabla.
type Row struct {
	ID          int    `json:"id"`
	Code        string `json:"codEmpleado"`
	Name        string `json:"nombre"`
	Email       string `json:"email"`
	Age         int    `json:"edad"`
	Admission   string `json:"fechaAlta"`
	Termination string `json:"fechaBaja"`
	Terminated  bool   `json:"terminated"`
}

// TableView proyección lista para pintar.
type TableView struct {
	Rows           []Row  `json:"rows"`
	Loading        bool   `json:"loading"`
	Empty          bool   `json:"empty"`
	LoadingMessage string `json:"loadingMessage,omitempty"`
	EmptyMessage   string `json:"emptyMessage,omitempty"`
}

// Roster lista inmutable de empleados. Version identifica la lista: cambia
// cada vez que se reemplaza y nunca se modifica en sitio.
type Roster struct {
	Version   uint64
	Employees []entity.Employee
}

// Table proyección de la lista de empleados con acciones por fila.
// Solo reconstruye las filas cuando cambia la versión de la lista recibida.
type Table struct {
	mu       sync.Mutex
	layout   string
	onEdit   func(id int)
	onDelete func(code string)

	cachedVersion uint64
	cached        []Row
	hasCache      bool
	renders       int
}

// NewTable construye la tabla. onEdit/onDelete pueden ser nil.
func NewTable(locale string, onEdit func(id int), onDelete func(code string)) *Table {
	return &Table{layout: DateLayout(locale), onEdit: onEdit, onDelete: onDelete}
}

// Render proyecta r. loading lo decide el llamador. Las filas devueltas son una
// copia: modificarlas no altera la caché.
func (t *Table) Render(r Roster, loading bool) TableView {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasCache || t.cachedVersion != r.Version {
		t.cached = t.rows(r.Employees)
		t.cachedVersion = r.Version
		t.hasCache = true
		t.renders++
	}

	view := TableView{Rows: slices.Clone(t.cached), Loading: loading, Empty: len(t.cached) == 0}
	switch {
	case loading:
		view.LoadingMessage = MsgLoading
	case view.Empty:
		view.EmptyMessage = MsgNoEmployees
	}
	return view
}

// EditRequested dispara la acción de edición de la fila id.
func (t *Table) EditRequested(id int) {
	if t.onEdit != nil {
		t.onEdit(id)
	}
}

// DeleteRequested dispara la acción de baja de la fila code.
func (t *Table) DeleteRequested(code string) {
	if t.onDelete != nil {
		t.onDelete(code)
	}
}

// FormatDate fecha corta en el formato de la tabla, o DatePlaceholder.
func (t *Table) FormatDate(d *time.Time) string {
	if d == nil || d.IsZero() {
		return DatePlaceholder
	}
	return d.Format(t.layout)
}

func (t *Table) rows(list []entity.Employee) []Row {
	out := make([]Row, 0, len(list))
	for _, e := range list {
		out = append(out, Row{
			ID:          e.ID,
			Code:        e.Code,
			Name:        e.Name,
			Email:       e.Email,
			Age:         e.Age,
			Admission:   t.FormatDate(e.AdmissionDate),
			Termination: t.FormatDate(e.TerminationDate),
			Terminated:  e.IsTerminated(),
		})
	}
	return out
}
