package binding

import "fmt"

// Scope classifies where a variable is meaningful, ordered from the
// coarsest level (File) to the finest (TaskRun).
type Scope int

const (
	ScopeFile Scope = iota
	ScopeActionGroup
	ScopeAction
	ScopeTask
	ScopeTaskRun
)

// scopeCount is the number of scope levels. Scope toggle arrays are
// indexed by Scope and sized by this constant.
const scopeCount = 5

// String returns a human-readable scope name.
func (s Scope) String() string {
	switch s {
	case ScopeFile:
		return "file"
	case ScopeActionGroup:
		return "action-group"
	case ScopeAction:
		return "action"
	case ScopeTask:
		return "task"
	case ScopeTaskRun:
		return "task-run"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Valid reports whether s is one of the five defined scope levels.
func (s Scope) Valid() bool {
	return s >= ScopeFile && s <= ScopeTaskRun
}

// ParseScope parses a scope name as produced by Scope.String.
func ParseScope(name string) (Scope, error) {
	for s := ScopeFile; s <= ScopeTaskRun; s++ {
		if s.String() == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unknown scope %q", name)
}

// Scopes returns all scope levels in ascending order.
func Scopes() []Scope {
	return []Scope{ScopeFile, ScopeActionGroup, ScopeAction, ScopeTask, ScopeTaskRun}
}
