// Package resolve implements candidate validation, data-source
// resolution and grouping for variable binding generation. The
// algorithm is pure: all symbol information arrives pre-classified
// through the type member catalog, so the package never touches
// go/types.
package resolve

import (
	"go/token"
	"strings"
)

// SequenceKind classifies a member result as a sequence of
// binding.VariableOption. The kind drives the materialize-or-assign
// choice during emission.
type SequenceKind int

const (
	// SeqNone means the result is not an option sequence.
	SeqNone SequenceKind = iota
	// SeqList is []binding.VariableOption or a named type over it; the
	// value can be assigned directly.
	SeqList
	// SeqArray is a fixed-size option array; the value is copied into a
	// slice before assignment.
	SeqArray
	// SeqLazy is a lazy sequence (iter.Seq); the value is collected
	// eagerly before assignment.
	SeqLazy
)

// String returns a human-readable kind name.
func (k SequenceKind) String() string {
	switch k {
	case SeqList:
		return "list"
	case SeqArray:
		return "array"
	case SeqLazy:
		return "lazy"
	default:
		return "none"
	}
}

// MemberKind identifies how a catalog member is declared.
type MemberKind int

const (
	// MemberMethod is a method declared directly on the type.
	MemberMethod MemberKind = iota
	// MemberField is a readable struct field of the type.
	MemberField
	// MemberFunc is a package-level function of the declaring package.
	MemberFunc
)

// Member is one entry of the type member catalog: a method, field or
// package-level function with its signature pre-classified.
type Member struct {
	Name string
	Kind MemberKind
	// Static is true for package-level functions.
	Static bool
	// NumParams is the declared parameter count (0 for fields).
	NumParams int
	// CtxParam is true when the sole parameter is context.Context.
	CtxParam bool
	// NumResults is the declared result count (1 for fields).
	NumResults int
	// Sequence classifies the first result (or the field type) as an
	// option sequence.
	Sequence SequenceKind
	// ErrResult is true when the second result is error.
	ErrResult bool
	// Pos is the member's declaration location when known.
	Pos token.Position
}

// TypeMembers is the member catalog for one containing type: members
// declared directly on the type (not promoted through embedding) plus
// the package-scope functions of its declaring package.
type TypeMembers struct {
	Own     []Member
	Package []Member
}

// lookupOwn finds a member declared on the type itself.
func (m TypeMembers) lookupOwn(name string) (Member, bool) {
	for _, member := range m.Own {
		if member.Name == name {
			return member, true
		}
	}

	return Member{}, false
}

// lookupStatic finds a package-scope function.
func (m TypeMembers) lookupStatic(name string) (Member, bool) {
	for _, member := range m.Package {
		if member.Name == name {
			return member, true
		}
	}

	return Member{}, false
}

// memberNames lists every catalog member name, own members first.
func (m TypeMembers) memberNames() []string {
	names := make([]string, 0, len(m.Own)+len(m.Package))
	for _, member := range m.Own {
		names = append(names, member.Name)
	}

	for _, member := range m.Package {
		names = append(names, member.Name)
	}

	return names
}

// TypeRef identifies a containing type.
type TypeRef struct {
	PkgPath string
	PkgName string
	Name    string
	// TypeParams holds generic type parameter names in declaration
	// order, empty for non-generic types.
	TypeParams []string
	Pos        token.Position
}

// FullName returns the fully qualified type name.
func (t TypeRef) FullName() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Candidate is one annotated field under consideration. Candidates are
// constructed once per annotated field per pass and discarded after
// emission.
type Candidate struct {
	Type      TypeRef
	FieldName string
	FieldPos  token.Position

	// NotExtensible is set when the containing type does not embed
	// binding.VariableSet.
	NotExtensible bool
	// MissingObservable is set when the field lacks the companion
	// observable annotation.
	MissingObservable bool

	// OptionsSource is the explicit options source name, if any.
	OptionsSource string
	// SuggestionsSource is the explicit suggestions source name, if any.
	SuggestionsSource string
}

// FieldGenerationInfo is the resolved, emission-ready projection of a
// valid candidate.
type FieldGenerationInfo struct {
	FieldName string
	// PropertyName is the derived public name, e.g. "IsApproved".
	PropertyName string
	// BindingProperty is the generated accessor name, PropertyName plus
	// the "Variable" suffix.
	BindingProperty string
	// BackingName is the camel-cased binding property name; it names the
	// unexported constructor helper backing the accessor.
	BackingName string
	// Key is the stable serialization identity, equal to PropertyName.
	Key string

	// OptionsExpr is the options retrieval expression relative to the
	// receiver identifier, empty when no options source is configured.
	OptionsExpr string
	// OptionsSeq classifies the options result; SeqList assigns
	// directly, SeqArray and SeqLazy materialize first.
	OptionsSeq SequenceKind

	// SuggestionsExpr is the suggestions source expression, empty when
	// no suggestions are configured.
	SuggestionsExpr string
	// SuggestionsStatic is true for package-level suggestion sources.
	SuggestionsStatic bool
	// SuggestionsSeq classifies the awaited suggestion result.
	SuggestionsSeq SequenceKind
}

// MaterializeOptions reports whether the options value needs an eager
// copy into a concrete list before assignment.
func (f FieldGenerationInfo) MaterializeOptions() bool {
	return f.OptionsSeq == SeqArray || f.OptionsSeq == SeqLazy
}

// TypeGeneration is one emission unit: a containing type with its valid
// fields in declaration order.
type TypeGeneration struct {
	Type   TypeRef
	Fields []FieldGenerationInfo
}

// recv is the receiver identifier used in recorded invocation
// expressions and in emitted methods.
const recv = "v"

// instanceExpr builds the invocation expression for an instance member.
func instanceExpr(m Member) string {
	if m.Kind == MemberField {
		return recv + "." + m.Name
	}

	return recv + "." + m.Name + "()"
}

// staticExpr builds the invocation expression for a package-level
// function. Generated code lives in the declaring package, so the call
// is unqualified.
func staticExpr(m Member) string {
	return m.Name + "()"
}

// memberRef builds the value expression for a suggestion source: a
// method value for instance members, a bare function name for static
// ones.
func memberRef(m Member) string {
	if m.Static {
		return m.Name
	}

	return recv + "." + m.Name
}

// isBlank reports whether s is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
