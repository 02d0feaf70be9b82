// Command empleados gestiona empleados contra la API REST desde la terminal
// con las mismas reglas de validación que la pantalla.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/Empleados-admin/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("cargar configuración: "+err.Error()))
		os.Exit(1)
	}

	root := newRootCmd(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
