package http

import (
	"bytes"
	"html/template"
	"net/url"

	"github.com/jhoicas/Empleados-admin/internal/application/screen"
	"github.com/jhoicas/Empleados-admin/internal/domain/employee"
)

// pageField campo del formulario listo para pintar.
type pageField struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Message  string
	Disabled bool
}

type pageData struct {
	Snapshot screen.Snapshot
	Fields   []pageField
	Editing  bool
}

var fieldInputs = map[employee.Field]struct{ label, typ string }{
	employee.FieldName:  {"Nombre", "text"},
	employee.FieldCode:  {"Código", "text"},
	employee.FieldEmail: {"Email", "email"},
	employee.FieldAge:   {"Edad", "number"},
}

var pageTemplate = template.Must(template.New("screen").Funcs(template.FuncMap{
	"pathEscape": url.PathEscape,
}).Parse(pageHTML))

func renderPage(snap screen.Snapshot) ([]byte, error) {
	data := pageData{Snapshot: snap, Editing: snap.Form.Mode == screen.FormEdit}
	for _, f := range employee.Fields {
		fs := snap.Form.Fields[f]
		in := fieldInputs[f]
		data.Fields = append(data.Fields, pageField{
			Name:     string(f),
			Label:    in.label,
			Type:     in.typ,
			Value:    fs.Value,
			Message:  fs.Message,
			Disabled: fs.Disabled,
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Gestión de Empleados</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
.alert { padding: .5rem 1rem; margin-bottom: .5rem; border-radius: 4px; display: flex; justify-content: space-between; }
.alert.success { background: #e6f4ea; }
.alert.error { background: #fdecea; }
.error-text { color: #b00020; font-size: .85rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border-bottom: 1px solid #ddd; padding: .4rem; text-align: left; }
tr.terminated td { color: #999; }
.modal { position: fixed; inset: 0; background: rgba(0,0,0,.4); display: flex; align-items: center; justify-content: center; }
.modal > div { background: #fff; padding: 1.5rem; border-radius: 6px; max-width: 28rem; }
form.inline { display: inline; }
</style>
</head>
<body>
<h1>Gestión de Empleados</h1>

{{range .Snapshot.Alerts}}
<div class="alert {{.Kind}}">
  <span>{{.Icon}} {{.Message}}</span>
  <form class="inline" method="post" action="/screen/alerts/{{.ID}}/dismiss"><button type="submit">×</button></form>
</div>
{{end}}

<h2>{{if .Editing}}Editar empleado{{else}}Nuevo empleado{{end}}</h2>
<form method="post" action="/screen/form">
{{range .Fields}}
  <div>
    <label for="{{.Name}}">{{.Label}}</label>
    <input id="{{.Name}}" name="{{.Name}}" type="{{.Type}}" value="{{.Value}}"{{if .Disabled}} readonly{{end}}>
    {{with .Message}}<div class="error-text">{{.}}</div>{{end}}
  </div>
{{end}}
  <button type="submit">{{if .Editing}}Actualizar{{else}}Crear{{end}}</button>
</form>
{{if .Editing}}
<form method="post" action="/screen/edit/cancel"><button type="submit">Cancelar</button></form>
{{end}}

<h2>Empleados</h2>
<form class="inline" method="post" action="/screen/reload"><button type="submit">Recargar</button></form>
<a href="/screen/roster.pdf">Descargar PDF</a>

{{with .Snapshot.Table}}
{{if .Loading}}<p>{{.LoadingMessage}}</p>
{{else if .Empty}}<p>{{.EmptyMessage}}</p>
{{else}}
<table>
  <thead><tr><th>Código</th><th>Nombre</th><th>Email</th><th>Edad</th><th>Alta</th><th>Baja</th><th></th></tr></thead>
  <tbody>
  {{range .Rows}}
    <tr{{if .Terminated}} class="terminated"{{end}}>
      <td>{{.Code}}</td><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.Age}}</td>
      <td>{{.Admission}}</td><td>{{.Termination}}</td>
      <td>
        <form class="inline" method="post" action="/screen/employees/{{.ID}}/edit"><button type="submit">Editar</button></form>
        <form class="inline" method="post" action="/screen/employees/{{pathEscape .Code}}/delete"><button type="submit">Eliminar</button></form>
      </td>
    </tr>
  {{end}}
  </tbody>
</table>
{{end}}
{{end}}

{{with .Snapshot.Confirm}}{{if .Visible}}
<div class="modal"><div>
  <h3>{{.Title}}</h3>
  <p>{{.Message}}</p>
  <form class="inline" method="post" action="/screen/delete/confirm"><button type="submit">{{.ConfirmLabel}}</button></form>
  <form class="inline" method="post" action="/screen/delete/cancel"><button type="submit">{{.CancelLabel}}</button></form>
</div></div>
{{end}}{{end}}
</body>
</html>
`
