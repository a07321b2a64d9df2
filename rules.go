package passo

import (
	"github.com/petrijr/passo/pkg/rules"
)

// NonEmpty reports a value invalid when it is nil or a string that is
// empty or whitespace-only.
func NonEmpty() Validator {
	return rules.NonEmpty()
}

// MinLength requires a string value of at least n characters.
func MinLength(n int) Validator {
	return rules.MinLength(n)
}

// MaxLength requires a string value of at most n characters.
func MaxLength(n int) Validator {
	return rules.MaxLength(n)
}

// Matches requires a string value matching the given regular expression.
func Matches(pattern string) Validator {
	return rules.Matches(pattern)
}

// OneOf requires a string value equal to one of the given options.
func OneOf(options ...string) Validator {
	return rules.OneOf(options...)
}

// Numeric requires a numeric value, or a string parsing as a decimal
// number.
func Numeric() Validator {
	return rules.Numeric()
}

// FieldEquals requires the value to equal the value stored under another
// field of the same data map.
func FieldEquals(field string) Validator {
	return rules.FieldEquals(field)
}

// Tag adapts a go-playground/validator tag expression into a Validator:
//
//	passo.Tag("required,email")
//	passo.Tag("min=3,max=80")
func Tag(tag string) Validator {
	return rules.Tag(tag)
}
