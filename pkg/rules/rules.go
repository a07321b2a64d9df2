// Package rules provides ready-made validators for wizard steps.
//
// Every constructor returns an api.Validator, so the helpers compose with
// hand-written closures in the same rule list. Validators here follow the
// tri-state contract: true for valid input, false with an empty message to
// fall back to the rule's configured message, false with a non-empty
// message to override it. The constructors in this package always fall
// back; the message belongs to the rule.
//
// The most common helpers are re-exported by the passo package.
package rules

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/petrijr/passo/pkg/api"
)

// NonEmpty reports a value invalid when it is nil or a string that is
// empty or whitespace-only. Non-string values are valid whenever present.
func NonEmpty() api.Validator {
	return func(value any, _ map[string]any) (bool, string) {
		if value == nil {
			return false, ""
		}
		if s, ok := value.(string); ok {
			return strings.TrimSpace(s) != "", ""
		}
		return true, ""
	}
}

// MinLength requires a string value of at least n characters.
func MinLength(n int) api.Validator {
	return func(value any, _ map[string]any) (bool, string) {
		s, ok := value.(string)
		if !ok {
			return false, ""
		}
		return utf8.RuneCountInString(s) >= n, ""
	}
}

// MaxLength requires a string value of at most n characters.
func MaxLength(n int) api.Validator {
	return func(value any, _ map[string]any) (bool, string) {
		s, ok := value.(string)
		if !ok {
			return false, ""
		}
		return utf8.RuneCountInString(s) <= n, ""
	}
}

// Matches requires a string value matching the given regular expression.
// It panics when the expression does not compile; patterns are programmer
// input, not user input.
func Matches(pattern string) api.Validator {
	re := regexp.MustCompile(pattern)
	return func(value any, _ map[string]any) (bool, string) {
		s, ok := value.(string)
		if !ok {
			return false, ""
		}
		return re.MatchString(s), ""
	}
}

// OneOf requires a string value equal to one of the given options.
func OneOf(options ...string) api.Validator {
	return func(value any, _ map[string]any) (bool, string) {
		s, ok := value.(string)
		if !ok {
			return false, ""
		}
		for _, opt := range options {
			if s == opt {
				return true, ""
			}
		}
		return false, ""
	}
}

// Numeric requires a numeric value: any Go integer or float type, or a
// string that parses as a decimal number.
func Numeric() api.Validator {
	return func(value any, _ map[string]any) (bool, string) {
		switch v := value.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true, ""
		case string:
			_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			return err == nil, ""
		default:
			return false, ""
		}
	}
}

// FieldEquals requires the value to equal the value stored under another
// field of the same data map, e.g. a password confirmation matching the
// password.
func FieldEquals(field string) api.Validator {
	if field == "" {
		panic("rules: FieldEquals field must not be empty")
	}
	return func(value any, data map[string]any) (bool, string) {
		return reflect.DeepEqual(value, data[field]), ""
	}
}

// validate is the shared instance behind Tag. validator.New is expensive
// and the instance is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Tag adapts a go-playground/validator tag expression into an
// api.Validator, giving rule authors the full built-in tag set:
//
//	rules.Tag("required,email")
//	rules.Tag("min=3,max=80")
//	rules.Tag("numeric")
//
// Tag panics on an empty expression. An expression naming an unknown
// validation function panics at evaluation time; that is validator/v10's
// own contract for programmer error.
func Tag(tag string) api.Validator {
	if tag == "" {
		panic("rules: validation tag must not be empty")
	}
	return func(value any, _ map[string]any) (bool, string) {
		if err := validate.Var(value, tag); err != nil {
			return false, ""
		}
		return true, ""
	}
}

// Describe renders a compact human-readable summary of a validator/v10
// error, useful when surfacing Tag failures in logs or diagnostics.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errorsAs(err, &verrs) {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("failed %q (param %q)", fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("failed %q", fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	v, ok := err.(validator.ValidationErrors)
	if ok {
		*target = v
	}
	return ok
}
