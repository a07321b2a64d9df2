// example_test.go
package api_test

import (
	"fmt"

	"github.com/petrijr/passo"
	"github.com/petrijr/passo/pkg/api"
)

// ExampleWizardDefinition shows how to build a wizard definition directly
// using the api package and drive it with a controller.
func ExampleWizardDefinition() {
	// Build a simple definition manually.
	def := api.WizardDefinition{
		Name: "BranchRegistration",
		Steps: []api.Step{
			{
				ID:       "address",
				Title:    "Branch address",
				Required: true,
				Rules: []api.ValidationRule{
					{
						Field: "city",
						Validator: func(value any, _ map[string]any) (bool, string) {
							s, ok := value.(string)
							return ok && s != "", ""
						},
						Message: "City is required",
					},
				},
			},
			{ID: "confirm", Title: "Confirm"},
		},
	}

	// Use a real controller implementation from the passo package.
	ctrl := passo.NewController(def)

	result := ctrl.ValidateCurrentStep(map[string]any{"city": ""})
	fmt.Println("valid:", result.Valid)
	fmt.Println("error:", result.Errors["city"])

	// Output:
	// valid: false
	// error: City is required
}

// ExampleEvaluateRules demonstrates the pure aggregation function behind
// ValidateCurrentStep.
func ExampleEvaluateRules() {
	rules := []api.ValidationRule{
		{
			Field: "nit",
			Validator: func(value any, _ map[string]any) (bool, string) {
				s, ok := value.(string)
				if !ok || len(s) != 9 {
					return false, "NIT must be 9 digits"
				}
				return true, ""
			},
			Message: "Invalid NIT",
		},
	}

	result := api.EvaluateRules(rules, map[string]any{"nit": "900"})
	fmt.Println(result.Errors["nit"])

	// Output:
	// NIT must be 9 digits
}
