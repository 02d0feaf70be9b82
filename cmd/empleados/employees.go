package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Empleados-admin/internal/application/dto"
	"github.com/jhoicas/Empleados-admin/internal/application/screen"
	"github.com/jhoicas/Empleados-admin/internal/application/usecase"
	"github.com/jhoicas/Empleados-admin/internal/domain"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
	"github.com/jhoicas/Empleados-admin/internal/domain/entity"
	infrapdf "github.com/jhoicas/Empleados-admin/internal/infrastructure/pdf"
)

// ── list / get ────────────────────────────────────────────────────────────────

func (c *cli) listCmd() *cobra.Command {
	var asJSON, activeOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los empleados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.directory().List(cmd.Context())
			if err != nil {
				return err
			}
			if activeOnly {
				list = active(list)
			}
			if asJSON {
				return writeJSON(cmd, list)
			}
			printLine(cmd.OutOrStdout(), c.renderTable(list))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Salida en JSON con los nombres de la API")
	cmd.Flags().BoolVar(&activeOnly, "activos", false, "Omite los dados de baja")
	return cmd
}

func (c *cli) getCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get <codigo>",
		Short: "Muestra un empleado por código",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.directory().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, []entity.Employee{*e})
			}
			c.printEmployee(cmd, *e)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Salida en JSON con los nombres de la API")
	return cmd
}

// renderTable reutiliza la proyección de la pantalla para formatear fechas y vacíos.
func (c *cli) renderTable(list []entity.Employee) string {
	view := screen.NewTable(c.cfg.UI.Locale, nil, nil).Render(screen.Roster{Version: 1, Employees: list}, false)
	if view.Empty {
		return mutedStyle.Render(view.EmptyMessage)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("ID", "CÓDIGO", "NOMBRE", "EMAIL", "EDAD", "ALTA", "BAJA").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range view.Rows {
		t.Row(strconv.Itoa(r.ID), r.Code, r.Name, r.Email, strconv.Itoa(r.Age), r.Admission, r.Termination)
	}
	return t.String()
}

func (c *cli) printEmployee(cmd *cobra.Command, e entity.Employee) {
	tbl := screen.NewTable(c.cfg.UI.Locale, nil, nil)
	out := cmd.OutOrStdout()
	printLine(out, labelStyle.Render("ID")+strconv.Itoa(e.ID))
	printLine(out, labelStyle.Render("Código")+e.Code)
	printLine(out, labelStyle.Render("Nombre")+e.Name)
	printLine(out, labelStyle.Render("Email")+e.Email)
	printLine(out, labelStyle.Render("Edad")+strconv.Itoa(e.Age))
	printLine(out, labelStyle.Render("Alta")+tbl.FormatDate(e.AdmissionDate))
	printLine(out, labelStyle.Render("Baja")+tbl.FormatDate(e.TerminationDate))
}

// ── create / update ───────────────────────────────────────────────────────────

func (c *cli) createCmd() *cobra.Command {
	var name, code, email, age string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Da de alta un empleado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := screen.NewForm(employee.NewValidator())
			draft, err := submitForm(form, map[employee.Field]string{
				employee.FieldName:  name,
				employee.FieldCode:  code,
				employee.FieldEmail: email,
				employee.FieldAge:   age,
			})
			if err != nil {
				return err
			}
			if _, err := c.directory().Create(cmd.Context(), dto.CreateEmployeeRequest(draft)); err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), successStyle.Render(screen.AlertSuccess.Icon()+" "+screen.MsgCreated(draft.Name)))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "nombre", "", "Nombre completo (mínimo 3 caracteres)")
	cmd.Flags().StringVar(&code, "codigo", "", "Código de empleado (máximo 4 caracteres)")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&age, "edad", "", "Edad (16 a 100)")
	return cmd
}

func (c *cli) updateCmd() *cobra.Command {
	var name, email, age string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualiza un empleado por id; el código no cambia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id inválido %q: %w", args[0], domain.ErrInvalidInput)
			}
			dir := c.directory()
			list, err := dir.List(cmd.Context())
			if err != nil {
				return err
			}
			current := findEmployee(list, id)
			if current == nil {
				return fmt.Errorf("empleado %d: %w", id, domain.ErrNotFound)
			}

			form := screen.NewForm(employee.NewValidator())
			form.Edit(current)
			changes := map[employee.Field]string{}
			if cmd.Flags().Changed("nombre") {
				changes[employee.FieldName] = name
			}
			if cmd.Flags().Changed("email") {
				changes[employee.FieldEmail] = email
			}
			if cmd.Flags().Changed("edad") {
				changes[employee.FieldAge] = age
			}
			draft, err := submitForm(form, changes)
			if err != nil {
				return err
			}

			in := dto.UpdateEmployeeRequest(draft)
			in.Code = current.Code
			if _, err := dir.Update(cmd.Context(), current.ID, in); err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), successStyle.Render(screen.AlertSuccess.Icon()+" "+screen.MsgUpdated))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "nombre", "", "Nombre completo")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&age, "edad", "", "Edad")
	return cmd
}

// submitForm aplica values y valida con las reglas de la pantalla.
func submitForm(form *screen.Form, values map[employee.Field]string) (dto.EmployeeDraft, error) {
	for _, f := range employee.Fields {
		v, ok := values[f]
		if !ok {
			continue
		}
		if err := form.SetValue(f, v); err != nil {
			return dto.EmployeeDraft{}, err
		}
	}
	draft, ok := form.Submit()
	if ok {
		return draft, nil
	}

	st := form.State()
	var errs []error
	for _, f := range employee.Fields {
		if msg := st.Fields[f].Message; msg != "" {
			errs = append(errs, fmt.Errorf("  %s: %s", f, msg))
		}
	}
	return dto.EmployeeDraft{}, fmt.Errorf("%w\n%w", domain.ErrInvalidForm, errors.Join(errs...))
}

// ── delete ────────────────────────────────────────────────────────────────────

func (c *cli) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <codigo>",
		Short: "Da de baja un empleado por código",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if !yes && !confirm(cmd) {
				printLine(cmd.OutOrStdout(), mutedStyle.Render("Operación cancelada"))
				return nil
			}
			if err := c.directory().Delete(cmd.Context(), code); err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), successStyle.Render(screen.AlertSuccess.Icon()+" "+screen.MsgDeleted))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "No pedir confirmación")
	return cmd
}

// confirm muestra la misma pregunta que la pantalla y lee la respuesta.
func confirm(cmd *cobra.Command) bool {
	out := cmd.OutOrStdout()
	printLine(out, headerStyle.Render(screen.DeleteTitle))
	_, _ = fmt.Fprintf(out, "%s [s/N]: ", screen.DeleteMessage)

	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true
	default:
		return false
	}
}

// ── export ────────────────────────────────────────────────────────────────────

func (c *cli) exportCmd() *cobra.Command {
	var output string
	var activeOnly bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Descarga el listado de empleados en PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := infrapdf.NewMarotoRosterGenerator(screen.DateLayout(c.cfg.UI.Locale))
			out, filename, err := usecase.NewRosterUseCase(c.directory(), gen).Export(cmd.Context(), activeOnly)
			if err != nil {
				return err
			}
			if output == "" {
				output = filename
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("guardar %s: %w", output, err)
			}
			printLine(cmd.OutOrStdout(), successStyle.Render(screen.AlertSuccess.Icon()+" Listado guardado en "+output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Archivo de salida (por defecto empleados-AAAAMMDD.pdf)")
	cmd.Flags().BoolVar(&activeOnly, "activos", false, "Omite los dados de baja")
	return cmd
}

// ── helpers ───────────────────────────────────────────────────────────────────

func writeJSON(cmd *cobra.Command, list []entity.Employee) error {
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.FromEntity(e))
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func active(list []entity.Employee) []entity.Employee {
	out := make([]entity.Employee, 0, len(list))
	for _, e := range list {
		if !e.IsTerminated() {
			out = append(out, e)
		}
	}
	return out
}

func findEmployee(list []entity.Employee, id int) *entity.Employee {
	for i := range list {
		if list[i].ID == id {
			e := list[i]
			return &e
		}
	}
	return nil
}
