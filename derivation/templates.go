package derivation

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"
)

func templateToString(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}

func joinInt(s []int, prefix, sep string) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = prefix + strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

func newTemplate(name, content string) *template.Template {
	tmpl, err := template.New(name).Funcs(
		template.FuncMap{"joinInt": joinInt}).Parse(content)
	if err != nil {
		panic(err)
	}
	return tmpl
}

var programTemplate = newTemplate("derivation", `
{{ range .Lines -}}
line({{ .Index }}, {{ .Term }}).
{{ end -}}
{{ range .Lines -}}
{{ if .IsAssumption -}}
assumption({{ .Index }}).
{{ else -}}
step({{ .Index }}, [{{ joinInt .Refs "" ", " }}]).
{{ end -}}
{{ end }}
derivable(I) :- assumption(I).
derivable(I) :- step(I, Refs), all_derivable(Refs).
all_derivable([]).
all_derivable([R|Rs]) :- derivable(R), all_derivable(Rs).
`)
