package resolve

import (
	"fmt"

	"varbind/internal/diagnostic"
	"varbind/internal/match"
)

// conventionalSuggestions returns the conventional suggestions source
// name tried when no explicit name is configured.
func conventionalSuggestions(property string) string {
	return "Get" + property + "SuggestionsAsync"
}

// Resolve validates candidates against the member catalog, resolves
// their optional data sources and groups the survivors by containing
// type. Diagnostics are collected for every invalid candidate; sibling
// fields of the same type are independent, so a type with at least one
// valid field still yields a generation unit.
//
// The catalog is keyed by TypeRef.FullName.
func Resolve(candidates []Candidate, catalog map[string]TypeMembers) ([]TypeGeneration, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	// Group by containing type, preserving first-seen type order and
	// candidate order within a type.
	var order []string
	groups := make(map[string][]Candidate)

	for _, c := range candidates {
		key := c.Type.FullName()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}

		groups[key] = append(groups[key], c)
	}

	var generations []TypeGeneration

	for _, key := range order {
		group := groups[key]
		members := catalog[key]

		gen := TypeGeneration{Type: group[0].Type}

		for _, c := range group {
			info, ok := resolveCandidate(c, members, &diags)
			if ok {
				gen.Fields = append(gen.Fields, info)
			}
		}

		// A type with zero valid fields emits nothing; its diagnostics
		// have already been recorded.
		if len(gen.Fields) > 0 {
			generations = append(generations, gen)
		}
	}

	return generations, diags
}

// resolveCandidate validates one candidate and resolves its data
// sources. Validation categories are independent and first-match-wins.
func resolveCandidate(c Candidate, members TypeMembers, diags *diagnostic.Diagnostics) (FieldGenerationInfo, bool) {
	typeName := c.Type.FullName()

	if c.NotExtensible {
		diags.AddError(diagnostic.CodeNotExtensible,
			fmt.Sprintf("type %s must embed binding.VariableSet to generate variable bindings", typeName),
			typeName, c.FieldName, c.FieldPos)

		return FieldGenerationInfo{}, false
	}

	if c.MissingObservable {
		diags.AddError(diagnostic.CodeMissingObservable,
			fmt.Sprintf("field %s is missing the companion observable annotation", c.FieldName),
			typeName, c.FieldName, c.FieldPos)

		return FieldGenerationInfo{}, false
	}

	property := DerivePropertyName(c.FieldName)
	if !isExportedIdent(property) {
		diags.AddError(diagnostic.CodeUnderivableName,
			fmt.Sprintf("cannot derive a property name from field %q", c.FieldName),
			typeName, c.FieldName, c.FieldPos)

		return FieldGenerationInfo{}, false
	}

	bindingProperty := bindingPropertyName(property)

	info := FieldGenerationInfo{
		FieldName:       c.FieldName,
		PropertyName:    property,
		BindingProperty: bindingProperty,
		BackingName:     backingName(bindingProperty),
		Key:             property,
	}

	if !resolveOptions(c, members, &info, diags) {
		return FieldGenerationInfo{}, false
	}

	if !resolveSuggestions(c, members, property, &info, diags) {
		return FieldGenerationInfo{}, false
	}

	return info, true
}

// resolveOptions resolves the explicit options source, if configured.
// The search covers the type's own members (not promoted ones) before
// package-scope functions.
func resolveOptions(c Candidate, members TypeMembers, info *FieldGenerationInfo, diags *diagnostic.Diagnostics) bool {
	if c.OptionsSource == "" {
		return true
	}

	typeName := c.Type.FullName()

	member, found := members.lookupOwn(c.OptionsSource)
	if !found {
		member, found = members.lookupStatic(c.OptionsSource)
	}

	if !found {
		msg := fmt.Sprintf("options source %q not found on %s", c.OptionsSource, typeName)
		if hint, ok := match.Closest(c.OptionsSource, members.memberNames()); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", hint)
		}

		diags.AddError(diagnostic.CodeOptionsNotFound, msg, typeName, c.FieldName, c.FieldPos)

		return false
	}

	if !validOptionsMember(member) {
		pos := member.Pos
		if !pos.IsValid() {
			pos = c.FieldPos
		}

		diags.AddError(diagnostic.CodeOptionsSignature,
			fmt.Sprintf("options source %q must be a field or niladic function yielding a sequence of binding.VariableOption", c.OptionsSource),
			typeName, c.FieldName, pos)

		return false
	}

	if member.Static {
		info.OptionsExpr = staticExpr(member)
	} else {
		info.OptionsExpr = instanceExpr(member)
	}

	info.OptionsSeq = member.Sequence

	return true
}

// validOptionsMember checks the options source contract: a readable
// field of option-sequence type, or a zero-parameter method or function
// with a single option-sequence result.
func validOptionsMember(m Member) bool {
	if m.Sequence == SeqNone {
		return false
	}

	if m.Kind == MemberField {
		return true
	}

	return m.NumParams == 0 && m.NumResults == 1
}

// resolveSuggestions resolves the suggestions source. An explicit name
// that fails to resolve is an error; a conventional-name miss is silent,
// but a conventional hit with the wrong signature is still an error.
func resolveSuggestions(c Candidate, members TypeMembers, property string, info *FieldGenerationInfo, diags *diagnostic.Diagnostics) bool {
	name := c.SuggestionsSource
	explicit := name != ""

	if !explicit {
		name = conventionalSuggestions(property)
	}

	member, found := members.lookupOwn(name)
	if found && member.Kind == MemberField {
		// Fields cannot serve as suggestion sources.
		found = false
	}

	if !found {
		member, found = members.lookupStatic(name)
	}

	if !found {
		if !explicit {
			return true // no suggestions configured
		}

		msg := fmt.Sprintf("suggestions source %q must be func(context.Context) (sequence of binding.VariableOption, error)", name)
		if hint, ok := match.Closest(name, members.memberNames()); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", hint)
		}

		diags.AddError(diagnostic.CodeSuggestsSignature, msg,
			c.Type.FullName(), c.FieldName, c.FieldPos)

		return false
	}

	if !validSuggestionsMember(member) {
		diags.AddError(diagnostic.CodeSuggestsSignature,
			fmt.Sprintf("suggestions source %q must be func(context.Context) (sequence of binding.VariableOption, error)", name),
			c.Type.FullName(), c.FieldName, c.FieldPos)

		return false
	}

	info.SuggestionsExpr = memberRef(member)
	info.SuggestionsStatic = member.Static
	info.SuggestionsSeq = member.Sequence

	return true
}

// validSuggestionsMember checks the suggestions source contract: exactly
// one context.Context parameter and an (option sequence, error) result
// pair.
func validSuggestionsMember(m Member) bool {
	return m.Kind != MemberField &&
		m.NumParams == 1 && m.CtxParam &&
		m.NumResults == 2 && m.Sequence != SeqNone && m.ErrResult
}
