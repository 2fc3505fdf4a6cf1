package field

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Rule adapts a go-playground/validator tag expression such as "email",
// "min=3" or "numeric,max=10" into a Validator. When message is empty the
// message is derived from the first failing tag.
//
// Rule panics when the tag expression itself is malformed, which is a
// mistake in the calling code rather than bad user input.
func Rule[T any](tag, message string) Validator[T] {
	return func(value T) error {
		err := validatorInstance().Var(value, tag)
		if err == nil {
			return nil
		}
		if message != "" {
			return errors.New(message)
		}
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			return errors.New(describeTag(ves[0]))
		}
		panic(fmt.Sprintf("field: invalid rule %q: %v", tag, err))
	}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return DefaultRequiredMessage
	case "email":
		return "Enter a valid email address"
	case "url", "http_url":
		return "Enter a valid URL"
	case "numeric", "number":
		return "Enter a number"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s long", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "alphanum":
		return "Use letters and digits only"
	default:
		return fmt.Sprintf("Failed the %q rule", fe.Tag())
	}
}
