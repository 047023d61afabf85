package binding

import (
	"context"
	"strings"
)

// VariableOption is one selectable variable. Options are immutable value
// objects; identity for de-duplication is the name compared
// case-insensitively.
type VariableOption struct {
	// Name is the free-form, case-sensitive option name.
	Name string
	// Scope classifies where the variable is meaningful.
	Scope Scope
	// Suggested marks options sourced from the asynchronous provider.
	Suggested bool
}

// SuggestionsProvider fetches suggested options. The context is cancelled
// when the fetch is superseded by a newer one.
type SuggestionsProvider func(ctx context.Context) ([]VariableOption, error)

// nameKey folds an option name for case-insensitive identity.
func nameKey(name string) string {
	return strings.ToLower(name)
}

// mergeOptions combines suggested and base options into one flat
// collection. Suggested options are inserted first and force-tagged as
// suggested; base options are inserted only when their name is not
// already present. Insertion order is preserved.
func mergeOptions(base, suggested []VariableOption) []VariableOption {
	merged := make([]VariableOption, 0, len(base)+len(suggested))
	seen := make(map[string]struct{}, len(base)+len(suggested))

	for _, opt := range suggested {
		key := nameKey(opt.Name)
		if _, ok := seen[key]; ok {
			continue
		}

		opt.Suggested = true
		seen[key] = struct{}{}
		merged = append(merged, opt)
	}

	for _, opt := range base {
		key := nameKey(opt.Name)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		merged = append(merged, opt)
	}

	return merged
}
