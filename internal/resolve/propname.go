package resolve

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// prefixMarker is the conventional field prefix stripped before casing.
const prefixMarker = "m_"

// bindingSuffix is appended to the derived property name to form the
// generated accessor name.
const bindingSuffix = "Variable"

// DerivePropertyName derives the public property name from a field name:
// strip the conventional prefix marker, then leading underscores; if the
// remainder is empty fall back to the raw field name unchanged; a single
// remaining character is upper-cased whole, otherwise only the first
// character is upper-cased.
//
//	_isApproved -> IsApproved
//	m_x         -> X
//	_a          -> A
//	value       -> Value
func DerivePropertyName(field string) string {
	name := strings.TrimPrefix(field, prefixMarker)
	name = strings.TrimLeft(name, "_")

	if name == "" {
		return field
	}

	runes := []rune(name)
	if len(runes) == 1 {
		return strings.ToUpper(name)
	}

	return string(unicode.ToUpper(runes[0])) + string(runes[1:])
}

// bindingPropertyName returns the generated accessor name for a derived
// property name.
func bindingPropertyName(property string) string {
	return property + bindingSuffix
}

// backingName returns the camel-cased, unexported counterpart of a
// binding property name. It names the constructor helper backing the
// accessor.
func backingName(bindingProperty string) string {
	r, size := utf8.DecodeRuneInString(bindingProperty)
	if r == utf8.RuneError {
		return bindingProperty
	}

	return string(unicode.ToLower(r)) + bindingProperty[size:]
}

// isExportedIdent reports whether name is a valid exported Go
// identifier. Derived property names failing this test cannot back a
// generated accessor.
func isExportedIdent(name string) bool {
	if !token.IsIdentifier(name) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(name)

	return unicode.IsUpper(r)
}
