package binding

import "iter"

// VariableSet holds the lazily instantiated bindings of one owning
// value. Embedding it marks a struct as extensible for variable
// generation; generated accessors store their bindings here, keyed by
// variable key.
//
// The zero value is ready to use.
type VariableSet struct {
	keys     []string
	bindings map[string]*VariableBinding
}

// Ensure returns the binding for key, constructing it with init on first
// access. The constructed instance is cached and returned on all
// subsequent calls.
func (s *VariableSet) Ensure(key string, init func() *VariableBinding) *VariableBinding {
	if b, ok := s.bindings[key]; ok {
		return b
	}

	b := init()
	if b == nil {
		b = NewVariableBinding()
	}

	if s.bindings == nil {
		s.bindings = make(map[string]*VariableBinding)
	}

	s.bindings[key] = b
	s.keys = append(s.keys, key)

	return b
}

// Get returns the binding for key if it has been instantiated.
func (s *VariableSet) Get(key string) (*VariableBinding, bool) {
	b, ok := s.bindings[key]
	return b, ok
}

// Instantiated iterates the instantiated bindings in instantiation
// order.
func (s *VariableSet) Instantiated() iter.Seq2[string, *VariableBinding] {
	return func(yield func(string, *VariableBinding) bool) {
		for _, key := range s.keys {
			if !yield(key, s.bindings[key]) {
				return
			}
		}
	}
}

// Clear unsets the display name of every instantiated binding. Bindings
// that were never accessed are left untouched.
func (s *VariableSet) Clear() {
	for _, key := range s.keys {
		s.bindings[key].SetName("")
	}
}

// HasAny reports whether any instantiated binding has a value.
func (s *VariableSet) HasAny() bool {
	for _, key := range s.keys {
		if s.bindings[key].HasValue() {
			return true
		}
	}

	return false
}
