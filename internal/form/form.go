// Package form aggregates named fields into a values map, the way a browser
// serializes a <form>, and digests the result for change detection.
package form

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	apperrors "github.com/alexisbeaulieu97/mora/pkg/errors"
)

// multiSuffix marks names whose values collect into a list, e.g. "options[]".
const multiSuffix = "[]"

// Field is anything a form can serialize. FormValue reports false when the
// field contributes nothing, like an unchecked checkbox.
type Field interface {
	Name() string
	FormValue() (any, bool)
}

// Validatable fields can refuse a submission.
type Validatable interface {
	Field
	// SubmitError validates the field's current value.
	SubmitError() error
}

// Values maps field names to serialized values. Multi-value names map to []any.
type Values map[string]any

// Serialize walks fields in order and assembles their values. Names ending
// in "[]" accumulate into a list under the trimmed key; other names keep
// the last contributed value. Fields without a name, or named just "[]",
// are skipped. A key belongs to whichever kind contributes to it first:
// once "x" holds a single value, later "x[]" fields are skipped, and the
// reverse.
func Serialize(fields ...Field) Values {
	values := make(Values, len(fields))
	multi := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f == nil {
			continue
		}
		key, isList := strings.CutSuffix(f.Name(), multiSuffix)
		if key == "" {
			continue
		}
		if claimed, seen := multi[key]; seen && claimed != isList {
			continue
		}
		value, ok := f.FormValue()
		if !ok {
			continue
		}
		multi[key] = isList
		if isList {
			list, _ := values[key].([]any)
			values[key] = append(list, value)
			continue
		}
		values[key] = value
	}
	return values
}

// Digest hashes values into an opaque hex string. Map keys are sorted by the
// encoder, so equal values always produce equal digests.
func Digest(values Values) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode form values: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Submission is the outcome of Form.Submit.
type Submission struct {
	Values Values
	// Digest is empty unless the form hashes submissions.
	Digest string
	// Changed reports whether Digest differs from the previous submission.
	// The first submission always counts as changed.
	Changed bool
}

// Options configures a Form.
type Options struct {
	// Hash computes a digest for every submission.
	Hash bool
	// Validate refuses submissions while any Validatable field is invalid.
	Validate bool
	// OnSubmit receives each accepted submission.
	OnSubmit func(Submission)
}

// Form holds a set of registered fields.
type Form struct {
	fields     []Field
	opts       Options
	lastDigest string
	submitted  bool
}

// New creates a form over the given fields.
func New(opts Options, fields ...Field) *Form {
	f := &Form{opts: opts}
	f.Register(fields...)
	return f
}

// Register adds fields to the form, preserving order.
func (f *Form) Register(fields ...Field) {
	for _, field := range fields {
		if field != nil {
			f.fields = append(f.fields, field)
		}
	}
}

// Fields returns the registered fields.
func (f *Form) Fields() []Field {
	return f.fields
}

// Values serializes the form without submitting it.
func (f *Form) Values() Values {
	return Serialize(f.fields...)
}

// Submit serializes the form. When validation is enabled the first invalid
// field aborts the submission with a *errors.ValidationError.
func (f *Form) Submit() (Submission, error) {
	if f.opts.Validate {
		for _, field := range f.fields {
			v, ok := field.(Validatable)
			if !ok {
				continue
			}
			if err := v.SubmitError(); err != nil {
				return Submission{}, apperrors.NewValidationError(field.Name(), err.Error(), err)
			}
		}
	}

	sub := Submission{Values: f.Values(), Changed: true}
	if f.opts.Hash {
		digest, err := Digest(sub.Values)
		if err != nil {
			return Submission{}, err
		}
		sub.Digest = digest
		sub.Changed = !f.submitted || digest != f.lastDigest
		f.lastDigest = digest
	}
	f.submitted = true

	if f.opts.OnSubmit != nil {
		f.opts.OnSubmit(sub)
	}
	return sub, nil
}
