package screen

import "sync"

// Etiquetas por defecto de los botones del diálogo.
const (
	DefaultConfirmLabel = "Confirmar"
	DefaultCancelLabel  = "Cancelar"
)

// Prompt contenido de una confirmación.
type Prompt struct {
	Title        string `json:"title"`
	Message      string `json:"message"`
	ConfirmLabel string `json:"confirmLabel"`
	CancelLabel  string `json:"cancelLabel"`
}

// ConfirmState estado visible del diálogo.
type ConfirmState struct {
	Prompt
	Visible bool `json:"visible"`
}

// ConfirmDialog una única pregunta sí/no pendiente; no encola.
// No sabe qué operación espera la respuesta: eso lo guarda quien lo abre.
type ConfirmDialog struct {
	mu    sync.Mutex
	state ConfirmState
}

// NewConfirmDialog construye el diálogo oculto.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{}
}

// Show reemplaza cualquier pregunta previa y la hace visible.
func (d *ConfirmDialog) Show(p Prompt) {
	if p.ConfirmLabel == "" {
		p.ConfirmLabel = DefaultConfirmLabel
	}
	if p.CancelLabel == "" {
		p.CancelLabel = DefaultCancelLabel
	}
	d.mu.Lock()
	d.state = ConfirmState{Prompt: p, Visible: true}
	d.mu.Unlock()
}

// Confirm acepta y oculta. Devuelve si había una pregunta visible.
func (d *ConfirmDialog) Confirm() bool {
	return d.hide()
}

// Cancel rechaza y oculta. Devuelve si había una pregunta visible.
func (d *ConfirmDialog) Cancel() bool {
	return d.hide()
}

// State devuelve el estado actual.
func (d *ConfirmDialog) State() ConfirmState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *ConfirmDialog) hide() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	was := d.state.Visible
	d.state.Visible = false
	return was
}
