package screen

// RenderCount número de veces que la tabla reconstruyó sus filas.
func (t *Table) RenderCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.renders
}
