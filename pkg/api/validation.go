package api

// Validator checks a single field value. It receives the value stored
// under the rule's field (the zero value when absent) and the full data
// map for cross-field checks.
//
// Return values:
//   - ok true: the value is valid; msg is ignored.
//   - ok false, msg "": invalid; the rule's Message is reported.
//   - ok false, msg non-empty: invalid; msg overrides the rule's Message.
//
// Validators must be synchronous and free of side effects on navigation
// state. A panicking validator is not recovered; the panic propagates to
// the caller of ValidateCurrentStep.
type Validator func(value any, data map[string]any) (ok bool, msg string)

// ValidationRule binds a field name to a Validator and a default error
// message.
type ValidationRule struct {
	Field     string
	Validator Validator
	Message   string
}

// ValidationResult aggregates the outcome of evaluating a step's rules.
// Errors maps each failing field to its message; it is empty, never nil,
// when Valid is true.
type ValidationResult struct {
	Valid  bool
	Errors map[string]string
}

// EvaluateRules runs every rule against data and aggregates failures by
// field. Rules run in order without short-circuiting; when several rules
// fail for the same field, the last failure's message wins. A nil or empty
// rule list is valid.
func EvaluateRules(rules []ValidationRule, data map[string]any) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: make(map[string]string),
	}

	for _, rule := range rules {
		ok, msg := rule.Validator(data[rule.Field], data)
		if ok {
			continue
		}
		if msg == "" {
			msg = rule.Message
		}
		result.Errors[rule.Field] = msg
		result.Valid = false
	}

	return result
}
