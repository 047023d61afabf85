// Package gen emits one companion source file per containing type from
// resolved field generation info. Output goes through text/template and
// go/format so every unit is gofmt-clean.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"varbind/internal/resolve"
)

// DefaultSuffix is appended to the normalized type name to form the
// generated file name.
const DefaultSuffix = "_variables.gen.go"

// Config holds configuration for code generation.
type Config struct {
	// Suffix is the generated file name suffix.
	Suffix string
	// SortFold makes generated bindings sort option names
	// case-insensitively.
	SortFold bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{Suffix: DefaultSuffix}
}

// Generator generates companion files from resolved type generations.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultSuffix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the unit name, derived from the fully qualified type
	// name with separators normalized.
	Filename string
	// PkgPath is the package the file belongs to.
	PkgPath string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits one file per type generation. Types with zero fields
// never reach this point; the resolver drops them.
func (g *Generator) Generate(generations []resolve.TypeGeneration) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for i := range generations {
		file, err := g.generateType(&generations[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", generations[i].Type.FullName(), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateType emits the companion file for a single containing type.
func (g *Generator) generateType(gen *resolve.TypeGeneration) (*GeneratedFile, error) {
	data := g.buildTemplateData(gen)

	var buf bytes.Buffer
	if err := bindingsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: data.Filename,
			PkgPath:  gen.Type.PkgPath,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		PkgPath:  gen.Type.PkgPath,
		Content:  formatted,
	}, nil
}

// buildTemplateData constructs the template data for one type.
func (g *Generator) buildTemplateData(gen *resolve.TypeGeneration) *templateData {
	data := &templateData{
		PackageName: gen.Type.PkgName,
		Filename:    g.unitName(gen.Type),
		TypeName:    gen.Type.Name,
		RecvType:    recvType(gen.Type),
	}

	imports := map[string]bool{
		"varbind/binding": true,
		// SetVariables always tests for blank values.
		"strings": true,
	}

	for _, field := range gen.Fields {
		fd := fieldData{
			FieldName:       field.FieldName,
			Key:             field.Key,
			BindingProperty: field.BindingProperty,
			BackingName:     field.BackingName,
			Init:            g.initStatements(field, imports),
		}

		data.Fields = append(data.Fields, fd)
	}

	for path := range imports {
		data.Imports = append(data.Imports, path)
	}

	sort.Strings(data.Imports)

	return data
}

// initStatements builds the body of a backing constructor helper: the
// statements run once when the binding is first accessed.
func (g *Generator) initStatements(field resolve.FieldGenerationInfo, imports map[string]bool) []string {
	var stmts []string

	if g.config.SortFold {
		stmts = append(stmts, "b.SetSortFold(true)")
	}

	switch field.OptionsSeq {
	case resolve.SeqList:
		stmts = append(stmts, fmt.Sprintf("b.SetOptions(%s)", field.OptionsExpr))

	case resolve.SeqArray:
		stmts = append(stmts,
			fmt.Sprintf("opts := %s", field.OptionsExpr),
			"b.SetOptions(opts[:])")

	case resolve.SeqLazy:
		imports["iter"] = true
		imports["slices"] = true
		stmts = append(stmts,
			fmt.Sprintf("b.SetOptions(slices.Collect(iter.Seq[binding.VariableOption](%s)))", field.OptionsExpr))
	}

	if field.SuggestionsExpr != "" {
		imports["context"] = true
		stmts = append(stmts, suggestionsAdapter(field, imports)...)
	}

	return stmts
}

// suggestionsAdapter wraps the resolved suggestions source in a
// binding.SuggestionsProvider, materializing lazy or array results.
func suggestionsAdapter(field resolve.FieldGenerationInfo, imports map[string]bool) []string {
	var ret string

	switch field.SuggestionsSeq {
	case resolve.SeqArray:
		ret = "return res[:], nil"

	case resolve.SeqLazy:
		imports["iter"] = true
		imports["slices"] = true
		ret = "return slices.Collect(iter.Seq[binding.VariableOption](res)), nil"

	default:
		ret = "return res, nil"
	}

	return []string{
		"b.SetSuggestionsProvider(func(ctx context.Context) ([]binding.VariableOption, error) {",
		fmt.Sprintf("res, err := %s(ctx)", field.SuggestionsExpr),
		"if err != nil {",
		"return nil, err",
		"}",
		ret,
		"})",
	}
}

// unitName derives the output unit name from the fully qualified type
// name, normalizing path separators so the name is unique and stable
// across builds.
func (g *Generator) unitName(ref resolve.TypeRef) string {
	qualified := ref.Name
	if ref.PkgPath != "" {
		qualified = ref.PkgPath + "_" + ref.Name
	}

	normalized := strings.NewReplacer("/", "_", ".", "_", "-", "_").Replace(qualified)

	return strings.ToLower(normalized) + g.config.Suffix
}

// recvType renders the pointer receiver type, repeating generic type
// parameter names when the type is generic.
func recvType(ref resolve.TypeRef) string {
	if len(ref.TypeParams) == 0 {
		return "*" + ref.Name
	}

	return "*" + ref.Name + "[" + strings.Join(ref.TypeParams, ", ") + "]"
}
