package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Empleados-admin/internal/application/ports"
	"github.com/jhoicas/Empleados-admin/internal/infrastructure/apiclient"
	"github.com/jhoicas/Empleados-admin/pkg/config"
	"github.com/jhoicas/Empleados-admin/pkg/logger"
)

// cli estado compartido por los subcomandos.
type cli struct {
	cfg     *config.Config
	apiURL  string
	timeout time.Duration
	verbose bool
	log     *logger.Logger
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	c := &cli{cfg: cfg, log: logger.Nop()}

	root := &cobra.Command{
		Use:   "empleados",
		Short: "Gestión de empleados desde la terminal",
		Long: `Consulta y modifica empleados contra la API REST /Empleados.

Subcomandos:
  list    - Lista los empleados (incluye dados de baja)
  get     - Muestra un empleado por código
  create  - Da de alta un empleado
  update  - Actualiza un empleado por id (el código no cambia)
  delete  - Da de baja un empleado por código (pide confirmación)
  export  - Descarga el listado en PDF
  version - Muestra la versión`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if c.verbose {
				level = "debug"
			}
			c.log = logger.New(logger.Config{Env: "development", Level: level, Out: cmd.ErrOrStderr()})
		},
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api-url", cfg.API.BaseURL, "URL base de la API REST (env API_BASE_URL)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", cfg.API.Timeout, "Tiempo máximo por petición")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Registra las peticiones HTTP")

	root.AddCommand(
		c.listCmd(),
		c.getCmd(),
		c.createCmd(),
		c.updateCmd(),
		c.deleteCmd(),
		c.exportCmd(),
		versionCmd(),
	)
	return root
}

// directory cliente HTTP hacia la API configurada.
func (c *cli) directory() ports.EmployeeDirectory {
	return apiclient.NewEmployeeClient(c.apiURL, c.timeout, c.log)
}

func printLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
