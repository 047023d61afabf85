package binding

// ChangeKind identifies what part of a binding changed.
type ChangeKind int

const (
	// FieldChanged signals that a scalar field (name, loading) changed.
	FieldChanged ChangeKind = iota
	// ViewInvalidated signals that the combined view must be re-read.
	ViewInvalidated
)

// Change describes one mutation of a binding.
type Change struct {
	Kind ChangeKind
	// Field is the changed field name for FieldChanged events.
	Field string
}

// Listener receives change notifications from a binding.
type Listener func(Change)

// notifier is the explicit subscription contract backing change
// notifications. Listeners are invoked synchronously in subscription
// order.
type notifier struct {
	nextID    int
	listeners []subscription
}

type subscription struct {
	id int
	fn Listener
}

func (n *notifier) subscribe(fn Listener) func() {
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range n.listeners {
			if sub.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

func (n *notifier) emit(c Change) {
	for _, sub := range n.listeners {
		sub.fn(c)
	}
}
