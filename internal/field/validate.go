package field

import (
	"errors"
	"reflect"
)

// DefaultRequiredMessage is shown when a required field is left empty.
const DefaultRequiredMessage = "This field is required"

// Validator classifies a candidate value. A nil error means valid; otherwise
// the error text is the message shown to the user. Validators must not
// panic: a panicking validator is a bug in the caller and is not recovered.
type Validator[T any] func(value T) error

// Required accepts truthy values only. false, "", zero numbers, nil and
// empty collections all count as missing. An empty message selects
// DefaultRequiredMessage.
func Required[T any](message string) Validator[T] {
	if message == "" {
		message = DefaultRequiredMessage
	}
	err := errors.New(message)
	return func(value T) error {
		if !Truthy(value) {
			return err
		}
		return nil
	}
}

// Check builds a validator from a predicate and the message reported when
// the predicate fails.
func Check[T any](pred func(T) bool, message string) Validator[T] {
	err := errors.New(message)
	return func(value T) error {
		if pred(value) {
			return nil
		}
		return err
	}
}

// Chain runs validators left to right and returns the first failure.
// Later validators are not evaluated once one fails. Nil entries are
// skipped.
func Chain[T any](validators ...Validator[T]) Validator[T] {
	return func(value T) error {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Truthy reports whether v would count as present in a required field.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && f == f // NaN is falsy
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return Truthy(rv.Elem().Interface())
	default:
		return !rv.IsZero()
	}
}
