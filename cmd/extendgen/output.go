package main

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

var generatedTemplate = template.Must(template.New("component_gen").Parse(
	`// Code generated by extendgen. DO NOT EDIT.

package {{ .PackageName }}

import (
	"github.com/a-peyrard/extend"
	"github.com/a-peyrard/extend/option"
)

const (
{{- range .Operations }}
	// {{ .ConstName }} identifies the extendable "{{ .Named }}" operation of {{ $.StructName }}.
	{{ .ConstName }} extend.Op = "{{ .Named }}"
{{- end }}
)

// new{{ .StructName }}Component declares the extendable operations of {{ .StructName }}.
func new{{ .StructName }}Component({{ .Receiver }} *{{ .StructName }}, opts ...option.Option[extend.ComponentOptions]) (*extend.Component, error) {
	declarations := []option.Option[extend.ComponentOptions]{
{{- range .Operations }}
		extend.WithOperation({{ .ConstName }}, func(_ ...any) (any, error) {
			return nil, {{ $.Receiver }}.{{ .MethodName }}()
		}),
{{- end }}
	}
	return extend.NewComponent("{{ .Named }}", append(declarations, opts...)...)
}
{{ range .Operations }}
// {{ .WrapperName }} runs the base "{{ .Named }}" implementation, then notifies the attached
// extensions handling it, in attachment order.
func ({{ $.Receiver }} *{{ $.StructName }}) {{ .WrapperName }}() error {
	_, err := {{ $.Receiver }}.component.Invoke({{ .ConstName }})
	return err
}
{{ end -}}
`))

// render produces the generated file content for the given component, gofmt
// formatted.
func render(definition *ComponentDefinition) ([]byte, error) {
	var buf bytes.Buffer
	if err := generatedTemplate.Execute(&buf, definition); err != nil {
		return nil, fmt.Errorf("failed to execute template:\n\t%w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code is not valid Go:\n\t%w", err)
	}
	return formatted, nil
}
