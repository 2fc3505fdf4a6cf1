package field

// ChangeEvent is the normalized notification handed to OnChange. It carries
// the host framework's raw event alongside the candidate value and its
// validity. Events are built once per interaction and never modified.
type ChangeEvent[T any] struct {
	raw     any
	value   T
	valid   bool
	message string
}

// NewChangeEvent builds an event from a candidate value and its validation
// outcome.
func NewChangeEvent[T any](raw any, value T, err error) ChangeEvent[T] {
	ev := ChangeEvent[T]{raw: raw, value: value, valid: err == nil}
	if err != nil {
		ev.message = err.Error()
	}
	return ev
}

// Raw returns the host framework event that triggered the change.
func (e ChangeEvent[T]) Raw() any { return e.raw }

// Value returns the candidate value extracted from the raw event.
func (e ChangeEvent[T]) Value() T { return e.value }

// Valid reports whether the candidate passed validation.
func (e ChangeEvent[T]) Valid() bool { return e.valid }

// Message returns the validation message, empty when valid.
func (e ChangeEvent[T]) Message() string { return e.message }
