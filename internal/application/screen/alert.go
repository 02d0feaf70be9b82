package screen

import (
	"sync"
	"time"
)

// DefaultAlertDuration tiempo que una alerta permanece visible.
const DefaultAlertDuration = 3500 * time.Millisecond

// AlertKind tipo de alerta.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)

// Icon devuelve el icono asociado al tipo.
func (k AlertKind) Icon() string {
	if k == AlertError {
		return "❌"
	}
	return "✅"
}

// Alert mensaje transitorio visible en pantalla.
type Alert struct {
	ID      int       `json:"id"`
	Message string    `json:"message"`
	Kind    AlertKind `json:"kind"`
	Icon    string    `json:"icon"`
}

// Notifier cola ordenada de alertas que se retiran solas tras una duración fija.
type Notifier struct {
	mu       sync.Mutex
	duration time.Duration
	nextID   int
	alerts   []Alert
	timers   map[int]*time.Timer
	closed   bool
}

// NewNotifier construye el notificador; duration <= 0 usa DefaultAlertDuration.
func NewNotifier(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultAlertDuration
	}
	return &Notifier{duration: duration, timers: make(map[int]*time.Timer)}
}

// Show encola una alerta y programa su retiro automático.
func (n *Notifier) Show(message string, kind AlertKind) Alert {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	a := Alert{ID: n.nextID, Message: message, Kind: kind, Icon: kind.Icon()}
	n.alerts = append(n.alerts, a)
	if !n.closed {
		id := a.ID
		n.timers[id] = time.AfterFunc(n.duration, func() { n.Dismiss(id) })
	}
	return a
}

// Dismiss retira una alerta; devuelve false si ya no estaba.
func (n *Notifier) Dismiss(id int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}
	for i, a := range n.alerts {
		if a.ID == id {
			kept := make([]Alert, 0, len(n.alerts)-1)
			kept = append(kept, n.alerts[:i]...)
			n.alerts = append(kept, n.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// Clear vacía la cola.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopTimers()
	n.alerts = nil
}

// Alerts devuelve una copia de las alertas visibles en orden de inserción.
func (n *Notifier) Alerts() []Alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Alert, len(n.alerts))
	copy(out, n.alerts)
	return out
}

// Close detiene los temporizadores pendientes. Las alertas posteriores ya no expiran.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.stopTimers()
}

func (n *Notifier) stopTimers() {
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
}
