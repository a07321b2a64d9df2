package api

import "testing"

func TestEvaluateRulesTriState(t *testing.T) {
	rules := []ValidationRule{
		{
			Field: "ok",
			Validator: func(any, map[string]any) (bool, string) {
				return true, "ignored"
			},
			Message: "unused",
		},
		{
			Field: "fallback",
			Validator: func(any, map[string]any) (bool, string) {
				return false, ""
			},
			Message: "default message",
		},
		{
			Field: "override",
			Validator: func(any, map[string]any) (bool, string) {
				return false, "specific message"
			},
			Message: "default message",
		},
	}

	res := EvaluateRules(rules, map[string]any{})
	if res.Valid {
		t.Fatalf("expected invalid result")
	}
	if _, ok := res.Errors["ok"]; ok {
		t.Fatalf("valid field must not carry an error")
	}
	if res.Errors["fallback"] != "default message" {
		t.Fatalf("expected rule message fallback, got %q", res.Errors["fallback"])
	}
	if res.Errors["override"] != "specific message" {
		t.Fatalf("expected validator message override, got %q", res.Errors["override"])
	}
}

func TestEvaluateRulesPassesFieldValueAndFullData(t *testing.T) {
	var gotValue any
	var gotData map[string]any

	rules := []ValidationRule{
		{
			Field: "name",
			Validator: func(value any, data map[string]any) (bool, string) {
				gotValue = value
				gotData = data
				return true, ""
			},
		},
	}

	data := map[string]any{"name": "Acme", "other": 7}
	EvaluateRules(rules, data)

	if gotValue != "Acme" {
		t.Fatalf("expected field value %q, got %v", "Acme", gotValue)
	}
	if gotData["other"] != 7 {
		t.Fatalf("expected full data map passed to validator")
	}
}

func TestEvaluateRulesEmptyRuleList(t *testing.T) {
	for _, rules := range [][]ValidationRule{nil, {}} {
		res := EvaluateRules(rules, nil)
		if !res.Valid {
			t.Fatalf("expected valid result for empty rule list")
		}
		if res.Errors == nil || len(res.Errors) != 0 {
			t.Fatalf("expected empty non-nil Errors, got %v", res.Errors)
		}
	}
}

func TestEvaluateRulesMissingFieldGetsZeroValue(t *testing.T) {
	rules := []ValidationRule{
		{
			Field: "absent",
			Validator: func(value any, _ map[string]any) (bool, string) {
				return value == nil, ""
			},
			Message: "must be absent",
		},
	}

	res := EvaluateRules(rules, map[string]any{})
	if !res.Valid {
		t.Fatalf("validator must receive nil for an absent field: %+v", res)
	}
}
