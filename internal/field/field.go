package field

import (
	"fmt"

	apperrors "github.com/alexisbeaulieu97/mora/pkg/errors"
)

// Accessor extracts the candidate value from a raw host event. Each
// component supplies its own: a checkbox reads its toggled state, a text
// field reads its input buffer.
type Accessor[T any] func(raw any) T

// Options configures a Field. Value and DefaultValue follow the usual
// controlled/uncontrolled split: a non-nil Value makes the field controlled
// for its whole lifetime.
type Options[T any] struct {
	Name         string
	Value        *T
	DefaultValue *T
	Required     bool
	// RequiredMessage overrides DefaultRequiredMessage.
	RequiredMessage string
	// Validations run after the required check, left to right.
	Validations []Validator[T]
	Accessor    Accessor[T]
	OnChange    func(ChangeEvent[T])
	// OnMisuse receives programmer errors such as switching modes. It may be nil.
	OnMisuse func(error)
	Measurer Measurer
}

// State is a snapshot of what presentation needs to draw a field.
type State[T any] struct {
	Value        T
	ErrorMessage string
	RenderError  bool
	AuxSizes     map[string]int
}

type phase int

const (
	phaseUninitialized phase = iota
	phaseReady
)

// Field holds the state of one editable component.
type Field[T any] struct {
	name       string
	phase      phase
	controlled bool
	external   *T
	current    T
	valid      bool
	errMessage string
	renderErr  bool
	auxSizes   map[string]int

	required string
	validate Validator[T]
	accessor Accessor[T]
	onChange func(ChangeEvent[T])
	onMisuse func(error)
	measurer Measurer
}

// New creates a field and initializes its internal value to
// Value, then DefaultValue, then the zero value of T.
func New[T any](opts Options[T]) *Field[T] {
	f := &Field[T]{
		name:     opts.Name,
		accessor: opts.Accessor,
		onChange: opts.OnChange,
		onMisuse: opts.OnMisuse,
		measurer: opts.Measurer,
		auxSizes: make(map[string]int),
	}

	validators := make([]Validator[T], 0, len(opts.Validations)+1)
	if opts.Required {
		validators = append(validators, Required[T](opts.RequiredMessage))
	}
	validators = append(validators, opts.Validations...)
	f.validate = Chain(validators...)

	if opts.Value != nil && opts.DefaultValue != nil {
		f.misuse(apperrors.MisuseConflictingValue, "both a controlled value and a default value were supplied; the default is ignored")
	}

	f.initialize(opts.Value, opts.DefaultValue)
	return f
}

func (f *Field[T]) initialize(initial, fallback *T) {
	var zero T
	f.current = Resolve(initial, Resolve(fallback, zero))
	f.controlled = initial != nil
	if f.controlled {
		v := *initial
		f.external = &v
	}
	f.valid = true
	f.phase = phaseReady
}

// Name returns the field name used by form aggregation.
func (f *Field[T]) Name() string { return f.name }

// Ready reports whether the field has been initialized through New.
func (f *Field[T]) Ready() bool { return f.phase == phaseReady }

// Controlled reports whether the caller owns the value.
func (f *Field[T]) Controlled() bool { return f.controlled }

// Value returns the value to render now: the caller's value when
// controlled, the internal one otherwise.
func (f *Field[T]) Value() T {
	if !f.controlled {
		return f.current
	}
	return Resolve(f.external, f.current)
}

// Sync hands the field the caller's current value. Controlled fields must
// be synced whenever the caller's value changes. Passing nil to a
// controlled field, or a value to an uncontrolled one, is reported as
// misuse and ignored.
func (f *Field[T]) Sync(external *T) {
	switch {
	case f.controlled && external == nil:
		f.misuse(apperrors.MisuseModeSwitch, "controlled field lost its value; keeping the last one")
	case !f.controlled && external != nil:
		f.misuse(apperrors.MisuseModeSwitch, "uncontrolled field received a value; ignoring it")
	case f.controlled:
		v := *external
		f.external = &v
	}
}

// Validate runs the field's validation policy against value.
func (f *Field[T]) Validate(value T) error {
	return f.validate(value)
}

// Valid reports the outcome of the last change. Fields start valid.
func (f *Field[T]) Valid() bool { return f.valid }

// ErrorMessage returns the message of the last failed validation.
func (f *Field[T]) ErrorMessage() string { return f.errMessage }

// RenderError reports whether the error message should be displayed. It
// stays set from a failed change until a change passes validation.
func (f *Field[T]) RenderError() bool { return f.renderErr }

// OnRawChange processes one user interaction. The candidate comes from the
// accessor, never from the raw event directly. Uncontrolled fields adopt
// the candidate; controlled fields leave it to the caller. OnChange runs
// synchronously before OnRawChange returns.
func (f *Field[T]) OnRawChange(raw any) ChangeEvent[T] {
	if f.phase != phaseReady {
		panic(fmt.Sprintf("field %q: OnRawChange before initialization; construct fields with New", f.name))
	}

	var candidate T
	if f.accessor != nil {
		candidate = f.accessor(raw)
	}

	err := f.validate(candidate)

	if !f.controlled {
		f.current = candidate
	}

	f.valid = err == nil
	f.renderErr = err != nil
	if err != nil {
		f.errMessage = err.Error()
	} else {
		f.errMessage = ""
	}

	ev := NewChangeEvent(raw, candidate, err)
	if f.onChange != nil {
		f.onChange(ev)
	}
	return ev
}

// Resize measures adornment content and records its width under slot.
// Missing or failed measurements record zero.
func (f *Field[T]) Resize(slot, content string) {
	width := 0
	if f.measurer != nil && content != "" {
		if w, ok := f.measurer.Measure(content); ok && w > 0 {
			width = w
		}
	}
	if f.auxSizes == nil {
		f.auxSizes = make(map[string]int)
	}
	f.auxSizes[slot] = width
}

// AuxSize returns the recorded width for slot.
func (f *Field[T]) AuxSize(slot string) int {
	return f.auxSizes[slot]
}

// State returns a snapshot for presentation. AuxSizes is a copy.
func (f *Field[T]) State() State[T] {
	sizes := make(map[string]int, len(f.auxSizes))
	for k, v := range f.auxSizes {
		sizes[k] = v
	}
	return State[T]{
		Value:        f.Value(),
		ErrorMessage: f.errMessage,
		RenderError:  f.renderErr,
		AuxSizes:     sizes,
	}
}

func (f *Field[T]) misuse(kind apperrors.MisuseKind, detail string) {
	if f.onMisuse == nil {
		return
	}
	f.onMisuse(apperrors.NewMisuseError(kind, f.name, detail))
}
