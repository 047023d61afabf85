package analyze

import (
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"varbind/internal/resolve"
)

// Well-known types of the runtime object model.
const (
	bindingPkgPath = "varbind/binding"
	optionTypeName = "VariableOption"
	setTypeName    = "VariableSet"
)

// ownMembers catalogs the members declared directly on the type:
// methods with a receiver of the type itself plus readable struct
// fields. Members promoted through embedding are deliberately absent.
func ownMembers(pkg *packages.Package, named *types.Named, st *types.Struct) []resolve.Member {
	var members []resolve.Member

	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		members = append(members, funcMember(pkg.Fset, m, resolve.MemberMethod, false))
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if field.Embedded() {
			continue
		}

		members = append(members, resolve.Member{
			Name:       field.Name(),
			Kind:       resolve.MemberField,
			NumResults: 1,
			Sequence:   classifySequence(field.Type()),
			Pos:        pkg.Fset.Position(field.Pos()),
		})
	}

	return members
}

// packageFuncs catalogs the package-scope functions of pkg. These are
// the "static" members available to source resolution.
func packageFuncs(pkg *packages.Package) []resolve.Member {
	var members []resolve.Member

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok {
			continue
		}

		members = append(members, funcMember(pkg.Fset, fn, resolve.MemberFunc, true))
	}

	return members
}

// funcMember classifies a function or method signature into a catalog
// member.
func funcMember(fset *token.FileSet, fn *types.Func, kind resolve.MemberKind, static bool) resolve.Member {
	sig := fn.Signature()

	m := resolve.Member{
		Name:       fn.Name(),
		Kind:       kind,
		Static:     static,
		NumParams:  sig.Params().Len(),
		NumResults: sig.Results().Len(),
		Pos:        fset.Position(fn.Pos()),
	}

	if m.NumParams == 1 {
		m.CtxParam = isContext(sig.Params().At(0).Type())
	}

	if m.NumResults >= 1 {
		m.Sequence = classifySequence(sig.Results().At(0).Type())
	}

	if m.NumResults >= 2 {
		m.ErrResult = isErrorType(sig.Results().At(1).Type())
	}

	return m
}

// classifySequence classifies t as a sequence of binding.VariableOption.
// Named types and aliases are unwrapped to their underlying shape, so a
// "type TaskOptions []binding.VariableOption" classifies as a list.
func classifySequence(t types.Type) resolve.SequenceKind {
	t = types.Unalias(t)
	if named, ok := t.(*types.Named); ok {
		t = named.Underlying()
	}

	switch u := t.(type) {
	case *types.Slice:
		if isVariableOption(u.Elem()) {
			return resolve.SeqList
		}

	case *types.Array:
		if isVariableOption(u.Elem()) {
			return resolve.SeqArray
		}

	case *types.Signature:
		// iter.Seq[binding.VariableOption] and equivalent push
		// iterators: func(yield func(VariableOption) bool).
		if isOptionYield(u) {
			return resolve.SeqLazy
		}
	}

	return resolve.SeqNone
}

// isOptionYield reports whether sig is a push iterator over variable
// options.
func isOptionYield(sig *types.Signature) bool {
	if sig.Params().Len() != 1 || sig.Results().Len() != 0 {
		return false
	}

	yield, ok := types.Unalias(sig.Params().At(0).Type()).(*types.Signature)
	if !ok {
		return false
	}

	if yield.Params().Len() != 1 || yield.Results().Len() != 1 {
		return false
	}

	if !isVariableOption(yield.Params().At(0).Type()) {
		return false
	}

	basic, ok := yield.Results().At(0).Type().(*types.Basic)

	return ok && basic.Kind() == types.Bool
}

// isVariableOption reports whether t is binding.VariableOption.
func isVariableOption(t types.Type) bool {
	return isNamed(t, bindingPkgPath, optionTypeName)
}

// embedsVariableSet reports whether st embeds binding.VariableSet,
// directly or through a pointer. This is the extensibility marker for
// variable generation.
func embedsVariableSet(st *types.Struct) bool {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		t := field.Type()
		if ptr, ok := t.(*types.Pointer); ok {
			t = ptr.Elem()
		}

		if isNamed(t, bindingPkgPath, setTypeName) {
			return true
		}
	}

	return false
}

// isContext reports whether t is context.Context.
func isContext(t types.Type) bool {
	return isNamed(t, "context", "Context")
}

// isErrorType reports whether t is the built-in error type.
func isErrorType(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

// isNamed reports whether t is the named type pkgPath.name.
func isNamed(t types.Type, pkgPath, name string) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Name() == name && obj.Pkg() != nil && obj.Pkg().Path() == pkgPath
}
