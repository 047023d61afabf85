package gen

import "text/template"

// templateData holds all data needed for the bindings template.
type templateData struct {
	PackageName string
	Filename    string
	TypeName    string
	RecvType    string
	Imports     []string
	Fields      []fieldData
}

// fieldData renders one generated binding property.
type fieldData struct {
	FieldName       string
	Key             string
	BindingProperty string
	BackingName     string
	// Init holds the backing constructor statements; indentation is
	// left to go/format.
	Init []string
}

var bindingsTemplate = template.Must(
	template.New("bindings").
		Parse(`// Code generated by varbindgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{range .Fields}}
// {{.BindingProperty}} returns the variable binding for the {{.FieldName}}
// field. The binding is created on first access and cached.
func (v {{$.RecvType}}) {{.BindingProperty}}() *binding.VariableBinding {
	return v.Ensure({{printf "%q" .Key}}, v.{{.BackingName}})
}

func (v {{$.RecvType}}) {{.BackingName}}() *binding.VariableBinding {
	b := binding.NewVariableBinding()
{{- range .Init}}
	{{.}}
{{- end}}
	return b
}
{{end}}
// variableBindings returns every generated binding of {{.TypeName}} in
// declaration order.
func (v {{.RecvType}}) variableBindings() []*binding.VariableBinding {
	return []*binding.VariableBinding{
{{- range .Fields}}
		v.{{.BindingProperty}}(),
{{- end}}
	}
}

// GetVariables returns the display name of every binding that has a
// value, keyed by variable key.
func (v {{.RecvType}}) GetVariables() map[string]string {
	vars := make(map[string]string)
{{- range .Fields}}
	if b := v.{{.BindingProperty}}(); b.HasValue() {
		vars[{{printf "%q" .Key}}] = b.Name()
	}
{{- end}}
	return vars
}

// SetVariables assigns display names from vars. Keys that are absent or
// map to a blank value leave their binding untouched.
func (v {{.RecvType}}) SetVariables(vars map[string]string) {
{{- range .Fields}}
	if name, ok := vars[{{printf "%q" .Key}}]; ok && strings.TrimSpace(name) != "" {
		v.{{.BindingProperty}}().SetName(name)
	}
{{- end}}
}

// ClearVariables unsets the display name of every binding that has been
// instantiated.
func (v {{.RecvType}}) ClearVariables() {
	v.VariableSet.Clear()
}

// HasAnyVariables reports whether any generated binding has a value.
func (v {{.RecvType}}) HasAnyVariables() bool {
	for _, b := range v.variableBindings() {
		if b.HasValue() {
			return true
		}
	}
	return false
}

// SetVariableOptions assigns the same options to every generated
// binding.
func (v {{.RecvType}}) SetVariableOptions(options []binding.VariableOption) {
	for _, b := range v.variableBindings() {
		b.SetOptions(options)
	}
}

// SetVariableOptionsByKey assigns options per variable key. Keys absent
// from the mapping leave their binding unchanged.
func (v {{.RecvType}}) SetVariableOptionsByKey(options map[string][]binding.VariableOption) {
{{- range .Fields}}
	if opts, ok := options[{{printf "%q" .Key}}]; ok {
		v.{{.BindingProperty}}().SetOptions(opts)
	}
{{- end}}
}

// SetVariableScopeEnabled toggles one scope filter on every generated
// binding.
func (v {{.RecvType}}) SetVariableScopeEnabled(scope binding.Scope, enabled bool) {
	for _, b := range v.variableBindings() {
		b.SetScopeEnabled(scope, enabled)
	}
}
`))
