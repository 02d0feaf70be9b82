// Package screen contiene el estado de la pantalla de gestión de empleados:
// alertas, confirmación de baja, formulario, tabla y el orquestador que los coordina
// contra la API REST.
//
// Flujo:
//
//	carga:     Directory.List → Orchestrator → Table
//	mutación:  Form → Orchestrator → Directory → Orchestrator recarga → Table/Alertas
//
// Tras cada mutación exitosa la lista se vuelve a pedir completa al servidor en
// lugar de parchearse localmente, para reflejar siempre los campos que asigna
// el backend (id, fechas, baja lógica).
package screen

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/application/ports"
	"github.com/jhoicas/Empleados-admin/internal/domain"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
	"github.com/jhoicas/Empleados-admin/pkg/logger"
)

// Snapshot copia inmutable de todo el estado de la pantalla.
type Snapshot struct {
	Version       uint64            `json:"version"`
	Employees     []entity.Employee `json:"-"`
	Loading       bool              `json:"loading"`
	Editing       *entity.Employee  `json:"-"`
	EditingID     *int              `json:"editingId"`
	PendingDelete string            `json:"pendingDelete,omitempty"`
	Form          FormState         `json:"form"`
	Table         TableView         `json:"table"`
	Alerts        []Alert           `json:"alerts"`
	Confirm       ConfirmState      `json:"confirm"`
}

// Orchestrator controlador de la pantalla. Sus métodos bloquean durante la llamada
// de red; el mutex nunca se mantiene durante ella, así que operaciones solapadas
// son posibles y cada una aplica su resultado al terminar.
type Orchestrator struct {
	dir     ports.EmployeeDirectory
	alerts  *Notifier
	form    *Form
	confirm *ConfirmDialog
	table   *Table
	log     *logger.Logger

	mu            sync.Mutex
	roster        Roster
	loading       bool
	editing       *entity.Employee
	pendingDelete string
}

// NewOrchestrator construye el orquestador inyectando todas sus dependencias.
func NewOrchestrator(
	dir ports.EmployeeDirectory,
	alerts *Notifier,
	form *Form,
	confirm *ConfirmDialog,
	locale string,
	log *logger.Logger,
) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	o := &Orchestrator{
		dir:     dir,
		alerts:  alerts,
		form:    form,
		confirm: confirm,
		log:     log.Named("screen"),
	}
	o.table = NewTable(locale, o.RequestEdit, o.RequestDelete)
	return o
}

// Table devuelve la tabla cuyas acciones de fila llaman a RequestEdit / RequestDelete.
func (o *Orchestrator) Table() *Table { return o.table }

// Alerts devuelve el notificador.
func (o *Orchestrator) Alerts() *Notifier { return o.alerts }

// Form devuelve el formulario.
func (o *Orchestrator) Form() *Form { return o.form }

// LoadAll pide la lista completa. Si falla muestra una alerta y conserva la lista anterior.
func (o *Orchestrator) LoadAll(ctx context.Context) error {
	o.mu.Lock()
	o.loading = true
	o.mu.Unlock()

	list, err := o.dir.List(ctx)

	o.mu.Lock()
	o.loading = false
	if err != nil {
		o.mu.Unlock()
		o.alerts.Show(MsgErrLoad, AlertError)
		o.log.Error().Err(err).Msg("error al cargar empleados")
		return err
	}
	o.roster = Roster{Version: o.roster.Version + 1, Employees: list}
	rebind, stale := o.rebindEditingLocked()
	if stale {
		o.form.Reset()
	}
	o.mu.Unlock()

	if rebind != nil {
		o.log.Debug().Int("id", rebind.ID).Msg("edición reasociada a la lista recargada")
	}
	return nil
}

// rebindEditingLocked apunta la edición al mismo id en la lista nueva. Si el
// registro ya no existe la edición se descarta (stale = true).
// La edición y el modo del formulario cambian siempre juntos bajo o.mu.
func (o *Orchestrator) rebindEditingLocked() (rebind *entity.Employee, stale bool) {
	if o.editing == nil {
		return nil, false
	}
	if e := findByID(o.roster.Employees, o.editing.ID); e != nil {
		o.editing = e
		return e, false
	}
	o.editing = nil
	return nil, true
}

// Submit crea o actualiza según haya un empleado en edición. En edición el código
// enviado es siempre el del registro original.
func (o *Orchestrator) Submit(ctx context.Context, draft dto.EmployeeDraft) error {
	o.mu.Lock()
	var editing *entity.Employee
	if o.editing != nil {
		e := *o.editing
		editing = &e
	}
	o.mu.Unlock()

	if editing != nil {
		return o.update(ctx, *editing, draft)
	}
	return o.create(ctx, draft)
}

func (o *Orchestrator) create(ctx context.Context, draft dto.EmployeeDraft) error {
	if _, err := o.dir.Create(ctx, dto.CreateEmployeeRequest(draft)); err != nil {
		o.alerts.Show(MsgErrCreate, AlertError)
		o.log.Error().Err(err).Str("code", draft.Code).Msg("error al crear empleado")
		return err
	}
	o.alerts.Show(MsgCreated(draft.Name), AlertSuccess)
	o.finishSubmit(nil)
	_ = o.LoadAll(ctx)
	return nil
}

func (o *Orchestrator) update(ctx context.Context, original entity.Employee, draft dto.EmployeeDraft) error {
	in := dto.UpdateEmployeeRequest(draft)
	in.Code = original.Code

	if _, err := o.dir.Update(ctx, original.ID, in); err != nil {
		o.alerts.Show(MsgErrUpdate, AlertError)
		o.log.Error().Err(err).Int("id", original.ID).Msg("error al actualizar empleado")
		return err
	}
	o.alerts.Show(MsgUpdated, AlertSuccess)
	o.finishSubmit(&original.ID)
	_ = o.LoadAll(ctx)
	return nil
}

// finishSubmit cierra la edición y limpia el formulario solo si la edición sigue
// siendo la del inicio del envío (startedID nil para un alta). Si mientras tanto
// se empezó otra edición o se canceló, el formulario queda como el usuario lo dejó.
func (o *Orchestrator) finishSubmit(startedID *int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case startedID == nil && o.editing != nil:
		return
	case startedID != nil && (o.editing == nil || o.editing.ID != *startedID):
		return
	}
	o.editing = nil
	o.form.Reset()
}

// SetField cambia un campo del formulario.
func (o *Orchestrator) SetField(f employee.Field, value string) error {
	return o.form.SetValue(f, value)
}

// SubmitForm valida el formulario y, si es válido, llama a Submit. Un formulario
// inválido no llega a la red ni muestra alertas: devuelve domain.ErrInvalidForm.
func (o *Orchestrator) SubmitForm(ctx context.Context) error {
	draft, ok := o.form.Submit()
	if !ok {
		return domain.ErrInvalidForm
	}
	return o.Submit(ctx, draft)
}

// RequestEdit busca id en la lista en memoria y lo pone en edición; si no existe
// la edición queda vacía y el formulario vuelve a modo creación.
func (o *Orchestrator) RequestEdit(id int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.editing = findByID(o.roster.Employees, id)
	var target *entity.Employee
	if o.editing != nil {
		e := *o.editing
		target = &e
	}
	o.form.Edit(target)
}

// CancelEdit vuelve a modo creación.
func (o *Orchestrator) CancelEdit() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.editing = nil
	o.form.Reset()
}

// RequestDelete recuerda el código pendiente y abre la confirmación. No llama a la red.
func (o *Orchestrator) RequestDelete(code string) {
	o.mu.Lock()
	o.pendingDelete = code
	o.mu.Unlock()

	o.confirm.Show(Prompt{
		Title:        DeleteTitle,
		Message:      DeleteMessage,
		ConfirmLabel: DeleteConfirm,
		CancelLabel:  DeleteCancel,
	})
}

// ConfirmDelete da de baja el código pendiente, si lo hay. La baja no se reintenta:
// el pendiente se limpia tanto si sale bien como si falla.
func (o *Orchestrator) ConfirmDelete(ctx context.Context) error {
	o.confirm.Confirm()

	o.mu.Lock()
	code := o.pendingDelete
	o.mu.Unlock()
	if code == "" {
		return nil
	}

	err := o.dir.Delete(ctx, code)

	o.mu.Lock()
	if o.pendingDelete == code {
		o.pendingDelete = ""
	}
	o.mu.Unlock()

	if err != nil {
		o.alerts.Show(MsgErrDelete, AlertError)
		o.log.Error().Err(err).Str("code", code).Msg("error al eliminar empleado")
		return err
	}
	o.alerts.Show(MsgDeleted, AlertSuccess)
	_ = o.LoadAll(ctx)
	return nil
}

// CancelDelete descarta la baja pendiente sin llamar a la red.
func (o *Orchestrator) CancelDelete() {
	o.confirm.Cancel()
	o.mu.Lock()
	o.pendingDelete = ""
	o.mu.Unlock()
}

// DismissAlert cierra una alerta.
func (o *Orchestrator) DismissAlert(id int) bool {
	return o.alerts.Dismiss(id)
}

// Employees devuelve la lista actual.
func (o *Orchestrator) Employees() Roster {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.roster
}

// Snapshot devuelve una copia de todo el estado visible.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	roster := o.roster
	loading := o.loading
	pending := o.pendingDelete
	var editing *entity.Employee
	var editingID *int
	if o.editing != nil {
		e := *o.editing
		editing = &e
		id := e.ID
		editingID = &id
	}
	form := o.form.State()
	o.mu.Unlock()

	return Snapshot{
		Version:       roster.Version,
		Employees:     slices.Clone(roster.Employees),
		Loading:       loading,
		Editing:       editing,
		EditingID:     editingID,
		PendingDelete: pending,
		Form:          form,
		Table:         o.table.Render(roster, loading),
		Alerts:        o.alerts.Alerts(),
		Confirm:       o.confirm.State(),
	}
}

// findByID devuelve un puntero a una copia del empleado con id, o nil.
func findByID(list []entity.Employee, id int) *entity.Employee {
	for i := range list {
		if list[i].ID == id {
			e := list[i]
			return &e
		}
	}
	return nil
}
