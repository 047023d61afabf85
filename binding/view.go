package binding

import (
	"sort"
	"strings"
)

// OptionGroup is one group of the two-level grouped view: options
// sharing the same suggested flag and scope, in sorted order.
type OptionGroup struct {
	Suggested bool
	Scope     Scope
	Options   []VariableOption
}

// View returns the combined view: the merged collection filtered by the
// scope toggles and the free-text filter, then stably sorted with
// suggested options first, then by scope ascending, then by name.
func (b *VariableBinding) View() []VariableOption {
	view := make([]VariableOption, 0, len(b.merged))
	for _, opt := range b.merged {
		if b.includes(opt) {
			view = append(view, opt)
		}
	}

	sort.SliceStable(view, func(i, j int) bool {
		return b.less(view[i], view[j])
	})

	return view
}

// GroupedView returns the combined view grouped first by suggested flag,
// then by scope. Group order follows the view sort.
func (b *VariableBinding) GroupedView() []OptionGroup {
	var groups []OptionGroup
	for _, opt := range b.View() {
		n := len(groups)
		if n == 0 || groups[n-1].Suggested != opt.Suggested || groups[n-1].Scope != opt.Scope {
			groups = append(groups, OptionGroup{Suggested: opt.Suggested, Scope: opt.Scope})
			n++
		}

		groups[n-1].Options = append(groups[n-1].Options, opt)
	}

	return groups
}

// includes applies the scope toggles and the case-insensitive substring
// filter to a single option.
func (b *VariableBinding) includes(opt VariableOption) bool {
	if opt.Scope.Valid() && !b.scopes[opt.Scope] {
		return false
	}

	if b.filter == "" {
		return true
	}

	return strings.Contains(strings.ToLower(opt.Name), strings.ToLower(b.filter))
}

// less orders two options for the view sort: suggested descending, scope
// ascending, then name ascending. Name comparison is ordinal unless
// SetSortFold enabled case folding.
func (b *VariableBinding) less(x, y VariableOption) bool {
	if x.Suggested != y.Suggested {
		return x.Suggested
	}

	if x.Scope != y.Scope {
		return x.Scope < y.Scope
	}

	if b.sortFold {
		return strings.ToLower(x.Name) < strings.ToLower(y.Name)
	}

	return x.Name < y.Name
}
