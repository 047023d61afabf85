package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varbind/internal/resolve"
)

func editorGeneration() resolve.TypeGeneration {
	return resolve.TypeGeneration{
		Type: resolve.TypeRef{
			PkgPath: "example/editors",
			PkgName: "editors",
			Name:    "TaskEditor",
		},
		Fields: []resolve.FieldGenerationInfo{
			{
				FieldName:         "_isApproved",
				PropertyName:      "IsApproved",
				BindingProperty:   "IsApprovedVariable",
				BackingName:       "isApprovedVariable",
				Key:               "IsApproved",
				OptionsExpr:       "v.TaskOptions()",
				OptionsSeq:        resolve.SeqList,
				SuggestionsExpr:   "v.GetIsApprovedSuggestionsAsync",
				SuggestionsSeq:    resolve.SeqList,
				SuggestionsStatic: false,
			},
			{
				FieldName:       "_comment",
				PropertyName:    "Comment",
				BindingProperty: "CommentVariable",
				BackingName:     "commentVariable",
				Key:             "Comment",
			},
		},
	}
}

func TestGenerator_Generate_Accessors(t *testing.T) {
	gen := NewGenerator(DefaultConfig())
	files, err := gen.Generate([]resolve.TypeGeneration{editorGeneration()})

	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)

	assert.Equal(t, "example_editors_taskeditor_variables.gen.go", files[0].Filename)
	assert.Equal(t, "example/editors", files[0].PkgPath)

	assert.Contains(t, content, "// Code generated by varbindgen. DO NOT EDIT.")
	assert.Contains(t, content, "package editors")

	// Lazy accessor and backing constructor per field.
	assert.Contains(t, content, "func (v *TaskEditor) IsApprovedVariable() *binding.VariableBinding {")
	assert.Contains(t, content, `return v.Ensure("IsApproved", v.isApprovedVariable)`)
	assert.Contains(t, content, "func (v *TaskEditor) isApprovedVariable() *binding.VariableBinding {")
	assert.Contains(t, content, "b.SetOptions(v.TaskOptions())")
	assert.Contains(t, content, "res, err := v.GetIsApprovedSuggestionsAsync(ctx)")

	// Comment has no sources: bare constructor.
	assert.Contains(t, content, "func (v *TaskEditor) commentVariable() *binding.VariableBinding {")
	assert.NotContains(t, content, "commentVariable() *binding.VariableBinding {\n\tb := binding.NewVariableBinding()\n\tb.SetOptions")
}

func TestGenerator_Generate_GroupHelpers(t *testing.T) {
	gen := NewGenerator(DefaultConfig())
	files, err := gen.Generate([]resolve.TypeGeneration{editorGeneration()})

	require.NoError(t, err)
	content := string(files[0].Content)

	assert.Contains(t, content, "func (v *TaskEditor) variableBindings() []*binding.VariableBinding {")
	assert.Contains(t, content, "func (v *TaskEditor) GetVariables() map[string]string {")
	assert.Contains(t, content, "func (v *TaskEditor) SetVariables(vars map[string]string) {")
	assert.Contains(t, content, "func (v *TaskEditor) ClearVariables() {")
	assert.Contains(t, content, "func (v *TaskEditor) HasAnyVariables() bool {")
	assert.Contains(t, content, "func (v *TaskEditor) SetVariableOptions(options []binding.VariableOption) {")
	assert.Contains(t, content, "func (v *TaskEditor) SetVariableOptionsByKey(options map[string][]binding.VariableOption) {")
	assert.Contains(t, content, "func (v *TaskEditor) SetVariableScopeEnabled(scope binding.Scope, enabled bool) {")

	// Declaration order in the enumerator.
	approvedAt := strings.Index(content, "v.IsApprovedVariable(),")
	commentAt := strings.Index(content, "v.CommentVariable(),")
	require.GreaterOrEqual(t, approvedAt, 0)
	require.GreaterOrEqual(t, commentAt, 0)
	assert.Less(t, approvedAt, commentAt)

	// Blank values must not overwrite bindings.
	assert.Contains(t, content, `if name, ok := vars["Comment"]; ok && strings.TrimSpace(name) != "" {`)
}

func TestGenerator_Generate_LazySequencesAreCollected(t *testing.T) {
	generation := resolve.TypeGeneration{
		Type: resolve.TypeRef{
			PkgPath: "example/editors",
			PkgName: "editors",
			Name:    "RunEditor",
		},
		Fields: []resolve.FieldGenerationInfo{{
			FieldName:         "_retries",
			PropertyName:      "Retries",
			BindingProperty:   "RetriesVariable",
			BackingName:       "retriesVariable",
			Key:               "Retries",
			OptionsExpr:       "v.StreamOptions()",
			OptionsSeq:        resolve.SeqLazy,
			SuggestionsExpr:   "StreamSuggestions",
			SuggestionsStatic: true,
			SuggestionsSeq:    resolve.SeqLazy,
		}},
	}

	gen := NewGenerator(DefaultConfig())
	files, err := gen.Generate([]resolve.TypeGeneration{generation})

	require.NoError(t, err)
	content := string(files[0].Content)

	assert.Contains(t, content, "b.SetOptions(slices.Collect(iter.Seq[binding.VariableOption](v.StreamOptions())))")
	assert.Contains(t, content, "res, err := StreamSuggestions(ctx)")
	assert.Contains(t, content, "return slices.Collect(iter.Seq[binding.VariableOption](res)), nil")
	assert.Contains(t, content, `"iter"`)
	assert.Contains(t, content, `"slices"`)
}

func TestGenerator_Generate_ArrayOptionsAreCopied(t *testing.T) {
	generation := resolve.TypeGeneration{
		Type: resolve.TypeRef{
			PkgPath: "example/editors",
			PkgName: "editors",
			Name:    "RunEditor",
		},
		Fields: []resolve.FieldGenerationInfo{{
			FieldName:       "_retries",
			PropertyName:    "Retries",
			BindingProperty: "RetriesVariable",
			BackingName:     "retriesVariable",
			Key:             "Retries",
			OptionsExpr:     "FixedOptions()",
			OptionsSeq:      resolve.SeqArray,
		}},
	}

	gen := NewGenerator(DefaultConfig())
	files, err := gen.Generate([]resolve.TypeGeneration{generation})

	require.NoError(t, err)
	content := string(files[0].Content)

	assert.Contains(t, content, "opts := FixedOptions()")
	assert.Contains(t, content, "b.SetOptions(opts[:])")
}

func TestGenerator_Generate_GenericReceiver(t *testing.T) {
	generation := resolve.TypeGeneration{
		Type: resolve.TypeRef{
			PkgPath:    "example/editors",
			PkgName:    "editors",
			Name:       "Editor",
			TypeParams: []string{"T", "U"},
		},
		Fields: []resolve.FieldGenerationInfo{{
			FieldName:       "_value",
			PropertyName:    "Value",
			BindingProperty: "ValueVariable",
			BackingName:     "valueVariable",
			Key:             "Value",
		}},
	}

	gen := NewGenerator(DefaultConfig())
	files, err := gen.Generate([]resolve.TypeGeneration{generation})

	require.NoError(t, err)
	content := string(files[0].Content)

	assert.Contains(t, content, "func (v *Editor[T, U]) ValueVariable() *binding.VariableBinding {")
	assert.Contains(t, content, "func (v *Editor[T, U]) GetVariables() map[string]string {")
}

func TestGenerator_Generate_SortFold(t *testing.T) {
	gen := NewGenerator(Config{SortFold: true})
	files, err := gen.Generate([]resolve.TypeGeneration{editorGeneration()})

	require.NoError(t, err)
	assert.Contains(t, string(files[0].Content), "b.SetSortFold(true)")
}

func TestGenerator_Generate_CustomSuffix(t *testing.T) {
	gen := NewGenerator(Config{Suffix: "_bindings.go"})
	files, err := gen.Generate([]resolve.TypeGeneration{editorGeneration()})

	require.NoError(t, err)
	assert.Equal(t, "example_editors_taskeditor_bindings.go", files[0].Filename)
}
