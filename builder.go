package passo

import (
	"fmt"

	"github.com/petrijr/passo/pkg/api"
)

// WizardBuilder provides a fluent API for defining wizards:
//
//	wizard := passo.New("ProviderOnboarding").
//	    RequiredStep("organization", "Organization data").
//	    Rule("name", passo.NonEmpty(), "Organization name is required").
//	    Rule("taxId", passo.Matches(`^\d{9}$`), "Tax ID must be 9 digits").
//	    RequiredStep("branches", "Branch offices").
//	    Step("review", "Review")
//
//	ctrl := passo.NewController(wizard.Definition())
//
// Step IDs should be unique by convention; the builder does not reject
// duplicates, and lookups over a wizard with duplicate IDs match the
// first occurrence.
type WizardBuilder struct {
	def api.WizardDefinition
}

// New creates a new wizard builder with the given name.
func New(name string) *WizardBuilder {
	return &WizardBuilder{
		def: api.WizardDefinition{
			Name:  name,
			Steps: make([]api.Step, 0),
		},
	}
}

// Name returns the wizard name.
func (b *WizardBuilder) Name() string {
	return b.def.Name
}

// Definition returns the underlying WizardDefinition.
// Typically passed to one of the Controller constructors.
func (b *WizardBuilder) Definition() WizardDefinition {
	return b.def
}

// Step appends an optional step to the wizard.
func (b *WizardBuilder) Step(id, title string) *WizardBuilder {
	return b.append(id, title, false)
}

// RequiredStep appends a step that blocks forward navigation until it has
// been marked completed.
func (b *WizardBuilder) RequiredStep(id, title string) *WizardBuilder {
	return b.append(id, title, true)
}

func (b *WizardBuilder) append(id, title string, required bool) *WizardBuilder {
	if id == "" {
		panic("passo: step id must not be empty")
	}

	b.def.Steps = append(b.def.Steps, api.Step{
		ID:       id,
		Title:    title,
		Required: required,
	})
	return b
}

// Describe sets the description of the most recently added step.
func (b *WizardBuilder) Describe(text string) *WizardBuilder {
	last := b.last("Describe")
	last.Description = text
	return b
}

// Rule attaches a validation rule to the most recently added step. Rules
// are evaluated in the order they were attached.
func (b *WizardBuilder) Rule(field string, validator Validator, message string) *WizardBuilder {
	if validator == nil {
		panic(fmt.Sprintf("passo: rule for field %q has nil validator", field))
	}

	last := b.last("Rule")
	last.Rules = append(last.Rules, api.ValidationRule{
		Field:     field,
		Validator: validator,
		Message:   message,
	})
	return b
}

// last returns a pointer to the most recently added step, panicking when
// no step has been added yet.
func (b *WizardBuilder) last(op string) *api.Step {
	if len(b.def.Steps) == 0 {
		panic(fmt.Sprintf("passo: %s called before any step was added", op))
	}
	return &b.def.Steps[len(b.def.Steps)-1]
}
