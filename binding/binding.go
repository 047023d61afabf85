package binding

import (
	"context"
	"strings"
	"sync/atomic"
)

// VariableBinding is the runtime object bound to one logical variable
// slot. It merges a base option collection with an asynchronously
// refreshed suggested collection and exposes a filterable, sortable,
// grouped view over the result.
//
// A binding is owned by a single execution context. Option collections
// and toggles are not guarded by locks; only the suggestion-refresh path
// is safe against overlapping calls (see EnsureSuggestions).
type VariableBinding struct {
	name      string
	options   []VariableOption
	suggested []VariableOption
	merged    []VariableOption

	scopes   [scopeCount]bool
	filter   string
	sortFold bool

	provider SuggestionsProvider
	loading  atomic.Bool
	fetch    atomic.Pointer[fetchToken]

	notifier notifier
}

// fetchToken identifies one in-flight suggestion fetch.
type fetchToken struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewVariableBinding returns a binding with no options, no provider, and
// every scope enabled.
func NewVariableBinding() *VariableBinding {
	b := &VariableBinding{}
	for i := range b.scopes {
		b.scopes[i] = true
	}

	return b
}

// Subscribe registers a change listener and returns its unsubscribe
// function.
func (b *VariableBinding) Subscribe(fn Listener) func() {
	return b.notifier.subscribe(fn)
}

// Name returns the display name, or the empty string when unset.
func (b *VariableBinding) Name() string {
	return b.name
}

// SetName assigns the display name. Blank or whitespace-only names mean
// "unset".
func (b *VariableBinding) SetName(name string) {
	if b.name == name {
		return
	}

	b.name = name
	b.notifier.emit(Change{Kind: FieldChanged, Field: "Name"})
}

// HasValue reports whether the display name is non-blank.
func (b *VariableBinding) HasValue() bool {
	return strings.TrimSpace(b.name) != ""
}

// Options returns the base option collection.
func (b *VariableBinding) Options() []VariableOption {
	return b.options
}

// SetOptions replaces the base option collection wholesale and rebuilds
// the combined view.
func (b *VariableBinding) SetOptions(options []VariableOption) {
	b.options = append([]VariableOption(nil), options...)
	b.remerge()
}

// Suggested returns the suggested option collection.
func (b *VariableBinding) Suggested() []VariableOption {
	return b.suggested
}

// SetSuggested replaces the suggested option collection wholesale and
// rebuilds the combined view. Normally called by EnsureSuggestions.
func (b *VariableBinding) SetSuggested(options []VariableOption) {
	b.suggested = append([]VariableOption(nil), options...)
	b.remerge()
}

// SetSuggestionsProvider installs the asynchronous suggestions source.
func (b *VariableBinding) SetSuggestionsProvider(provider SuggestionsProvider) {
	b.provider = provider
}

// ScopeEnabled reports whether options of the given scope are included
// in the view.
func (b *VariableBinding) ScopeEnabled(scope Scope) bool {
	if !scope.Valid() {
		return false
	}

	return b.scopes[scope]
}

// SetScopeEnabled toggles inclusion of one scope level. The filter is
// re-applied without rebuilding the merge.
func (b *VariableBinding) SetScopeEnabled(scope Scope, enabled bool) {
	if !scope.Valid() || b.scopes[scope] == enabled {
		return
	}

	b.scopes[scope] = enabled
	b.notifier.emit(Change{Kind: ViewInvalidated})
}

// Filter returns the free-text search filter.
func (b *VariableBinding) Filter() string {
	return b.filter
}

// SetFilter assigns the free-text search filter. Matching is a
// case-insensitive substring test. The filter is re-applied without
// rebuilding the merge.
func (b *VariableBinding) SetFilter(filter string) {
	if b.filter == filter {
		return
	}

	b.filter = filter
	b.notifier.emit(Change{Kind: ViewInvalidated})
}

// SetSortFold selects case-insensitive name ordering for the view sort.
// The default is ordinal (case-sensitive) ordering.
func (b *VariableBinding) SetSortFold(fold bool) {
	if b.sortFold == fold {
		return
	}

	b.sortFold = fold
	b.notifier.emit(Change{Kind: ViewInvalidated})
}

// All returns the merged backing collection, before filtering.
func (b *VariableBinding) All() []VariableOption {
	return b.merged
}

// Loading reports whether a suggestion fetch is in flight.
func (b *VariableBinding) Loading() bool {
	return b.loading.Load()
}

// remerge rebuilds the combined collection from the base and suggested
// collections.
func (b *VariableBinding) remerge() {
	b.merged = mergeOptions(b.options, b.suggested)
	b.notifier.emit(Change{Kind: ViewInvalidated})
}

// EnsureSuggestions refreshes the suggested options from the configured
// provider. It is a no-op without a provider.
//
// A second call supersedes, never queues, an in-flight one: the previous
// fetch context is cancelled atomically and its eventual result is
// discarded. The loading flag is cleared only on the path whose fetch
// was not cancelled, so a superseded call cannot clear the flag set by
// its successor. Provider errors propagate to the caller.
func (b *VariableBinding) EnsureSuggestions(ctx context.Context) error {
	provider := b.provider
	if provider == nil {
		return nil
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	token := &fetchToken{ctx: fetchCtx, cancel: cancel}

	if prev := b.fetch.Swap(token); prev != nil {
		prev.cancel()
	}

	b.loading.Store(true)
	b.notifier.emit(Change{Kind: FieldChanged, Field: "Loading"})

	defer func() {
		if fetchCtx.Err() == nil {
			b.loading.Store(false)
			b.notifier.emit(Change{Kind: FieldChanged, Field: "Loading"})
		}
	}()

	options, err := provider(fetchCtx)
	if err != nil {
		return err
	}

	if fetchCtx.Err() == nil {
		b.SetSuggested(options)
	}

	return nil
}
