package screen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Empleados-admin/internal/application/screen"
)

func TestConfirmDialog_EtiquetasPorDefecto(t *testing.T) {
	d := screen.NewConfirmDialog()
	assert.False(t, d.State().Visible)

	d.Show(screen.Prompt{Title: "Título", Message: "¿Seguro?"})

	st := d.State()
	assert.True(t, st.Visible)
	assert.Equal(t, "Confirmar", st.ConfirmLabel)
	assert.Equal(t, "Cancelar", st.CancelLabel)
}

func TestConfirmDialog_ShowReemplazaPregunta(t *testing.T) {
	d := screen.NewConfirmDialog()
	d.Show(screen.Prompt{Title: "A", Message: "a", ConfirmLabel: "Sí"})
	d.Show(screen.Prompt{Title: "B", Message: "b"})

	st := d.State()
	assert.Equal(t, "B", st.Title)
	assert.Equal(t, "Confirmar", st.ConfirmLabel, "la pregunta nueva no hereda etiquetas")
}

func TestConfirmDialog_ConfirmYCancelOcultan(t *testing.T) {
	d := screen.NewConfirmDialog()

	d.Show(screen.Prompt{Title: "A", Message: "a"})
	assert.True(t, d.Confirm())
	assert.False(t, d.State().Visible)
	assert.False(t, d.Confirm(), "sin pregunta visible no hay nada que confirmar")

	d.Show(screen.Prompt{Title: "B", Message: "b"})
	assert.True(t, d.Cancel())
	assert.False(t, d.State().Visible)
	assert.Equal(t, "B", d.State().Title, "ocultar no borra el contenido")
}
