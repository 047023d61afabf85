package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"varbind/internal/resolve"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Struct tag keys recognized on candidate fields.
const (
	// tagKey marks a field for variable binding generation. Its value
	// is a comma-separated list of "options=Name" and
	// "suggestions=Name" entries; unknown entries are ignored.
	tagKey = "variable"
	// observableKey is the companion annotation required on every
	// candidate field.
	observableKey = "observable"
)

// Scan is the projection of one compilation snapshot: every candidate
// field plus the member catalog for each containing type.
type Scan struct {
	Candidates []resolve.Candidate
	// Catalog maps TypeRef.FullName to the type's member catalog.
	Catalog map[string]resolve.TypeMembers
	// Dirs maps package paths to their source directories, for placing
	// generated files.
	Dirs map[string]string
}

// Load loads the specified package patterns and scans them for
// annotated fields.
func Load(patterns ...string) (*Scan, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	s := &Scan{
		Catalog: make(map[string]resolve.TypeMembers),
		Dirs:    make(map[string]string),
	}

	for _, pkg := range pkgs {
		s.scanPackage(pkg)
	}

	return s, nil
}

// scanPackage collects candidates and catalogs from one loaded package.
func (s *Scan) scanPackage(pkg *packages.Package) {
	if len(pkg.GoFiles) > 0 {
		s.Dirs[pkg.PkgPath] = filepath.Dir(pkg.GoFiles[0])
	}

	var funcs []resolve.Member // built lazily, shared per package

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		candidates := s.scanStruct(pkg, named, st)
		if len(candidates) == 0 {
			continue
		}

		if funcs == nil {
			funcs = packageFuncs(pkg)
		}

		s.Candidates = append(s.Candidates, candidates...)
		s.Catalog[candidates[0].Type.FullName()] = resolve.TypeMembers{
			Own:     ownMembers(pkg, named, st),
			Package: funcs,
		}
	}
}

// scanStruct returns one candidate per variable-tagged field of st, in
// declaration order.
func (s *Scan) scanStruct(pkg *packages.Package, named *types.Named, st *types.Struct) []resolve.Candidate {
	var candidates []resolve.Candidate

	ref := typeRef(pkg, named)
	extensible := embedsVariableSet(st)

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		tag := reflect.StructTag(st.Tag(i))
		raw, tagged := tag.Lookup(tagKey)
		if !tagged {
			continue
		}

		options, suggestions := parseVariableTag(raw)
		_, observable := tag.Lookup(observableKey)

		candidates = append(candidates, resolve.Candidate{
			Type:              ref,
			FieldName:         field.Name(),
			FieldPos:          pkg.Fset.Position(field.Pos()),
			NotExtensible:     !extensible,
			MissingObservable: !observable,
			OptionsSource:     options,
			SuggestionsSource: suggestions,
		})
	}

	return candidates
}

// parseVariableTag splits a variable tag value into its options and
// suggestions source names. Unknown entries are ignored.
func parseVariableTag(raw string) (options, suggestions string) {
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)

		switch {
		case strings.HasPrefix(part, "options="):
			options = strings.TrimPrefix(part, "options=")
		case strings.HasPrefix(part, "suggestions="):
			suggestions = strings.TrimPrefix(part, "suggestions=")
		}
	}

	return options, suggestions
}

// typeRef builds the resolve-facing reference for a named struct type.
func typeRef(pkg *packages.Package, named *types.Named) resolve.TypeRef {
	obj := named.Obj()

	ref := resolve.TypeRef{
		PkgPath: pkg.PkgPath,
		PkgName: pkg.Name,
		Name:    obj.Name(),
		Pos:     pkg.Fset.Position(obj.Pos()),
	}

	if params := named.TypeParams(); params != nil {
		for i := 0; i < params.Len(); i++ {
			ref.TypeParams = append(ref.TypeParams, params.At(i).Obj().Name())
		}
	}

	return ref
}
