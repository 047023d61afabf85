package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewFixture() *VariableBinding {
	b := NewVariableBinding()
	b.SetOptions([]VariableOption{
		{Name: "run.attempt", Scope: ScopeTaskRun},
		{Name: "task.owner", Scope: ScopeTask},
		{Name: "file.path", Scope: ScopeFile},
		{Name: "group.id", Scope: ScopeActionGroup},
		{Name: "action.retries", Scope: ScopeAction},
		{Name: "file.name", Scope: ScopeFile},
	})
	b.SetSuggested([]VariableOption{
		{Name: "build_number", Scope: ScopeTaskRun},
		{Name: "task.name", Scope: ScopeTask},
	})

	return b
}

func TestVariableBinding_View_SortsSuggestedThenScopeThenName(t *testing.T) {
	b := viewFixture()

	got := optionNames(b.View())
	want := []string{
		// Suggested first, by scope ascending.
		"task.name",
		"build_number",
		// Base options by scope ascending, name ascending within a scope.
		"file.name",
		"file.path",
		"group.id",
		"action.retries",
		"task.owner",
		"run.attempt",
	}

	assert.Equal(t, want, got)
}

func TestVariableBinding_View_ScopeTogglesExclude(t *testing.T) {
	b := viewFixture()

	b.SetScopeEnabled(ScopeFile, false)
	b.SetScopeEnabled(ScopeTaskRun, false)

	got := optionNames(b.View())
	assert.Equal(t, []string{"task.name", "group.id", "action.retries", "task.owner"}, got)

	// Re-enabling restores the options without a new merge.
	b.SetScopeEnabled(ScopeFile, true)
	b.SetScopeEnabled(ScopeTaskRun, true)
	assert.Len(t, b.View(), 8)
}

func TestVariableBinding_View_FilterIsCaseInsensitiveSubstring(t *testing.T) {
	b := viewFixture()

	b.SetFilter("FILE")
	assert.Equal(t, []string{"file.name", "file.path"}, optionNames(b.View()))

	b.SetFilter("")
	assert.Len(t, b.View(), 8)
}

func TestVariableBinding_View_NameOrderingConfigurable(t *testing.T) {
	b := NewVariableBinding()
	b.SetOptions([]VariableOption{
		{Name: "alpha", Scope: ScopeFile},
		{Name: "Beta", Scope: ScopeFile},
	})

	// Default is ordinal: upper-case letters sort first.
	assert.Equal(t, []string{"Beta", "alpha"}, optionNames(b.View()))

	b.SetSortFold(true)
	assert.Equal(t, []string{"alpha", "Beta"}, optionNames(b.View()))
}

func TestVariableBinding_GroupedView(t *testing.T) {
	b := viewFixture()

	groups := b.GroupedView()
	require.Len(t, groups, 7)

	// Suggested groups lead, one per scope.
	assert.True(t, groups[0].Suggested)
	assert.Equal(t, ScopeTask, groups[0].Scope)
	assert.True(t, groups[1].Suggested)
	assert.Equal(t, ScopeTaskRun, groups[1].Scope)

	// Base groups follow in scope order; the two file options share one
	// group.
	assert.False(t, groups[2].Suggested)
	assert.Equal(t, ScopeFile, groups[2].Scope)
	assert.Equal(t, []string{"file.name", "file.path"}, optionNames(groups[2].Options))

	var total int
	for _, g := range groups {
		total += len(g.Options)
	}

	assert.Equal(t, 8, total)
}
