// Package definition loads wizard definitions from YAML or JSON
// documents, so flows can be authored as data and shipped without a
// recompile.
//
// A document declares the wizard name and its steps; each step may carry
// validation rules expressed as go-playground/validator tag strings:
//
//	name: provider-onboarding
//	steps:
//	  - id: organization
//	    title: Organization data
//	    required: true
//	    rules:
//	      - field: name
//	        tag: required,min=3
//	        message: Organization name is required
//	  - id: review
//	    title: Review
//
// Tag strings are the only rule kind expressible in a document; rules
// needing Go code attach through the builder instead.
package definition

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petrijr/passo/pkg/api"
	"github.com/petrijr/passo/pkg/rules"
)

// Format identifies the encoding of a wizard definition document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned when a file extension maps to no
// supported Format.
var ErrUnknownFormat = errors.New("unknown definition format")

// Document is the on-disk shape of a wizard definition.
type Document struct {
	Name  string         `yaml:"name" json:"name"`
	Steps []StepDocument `yaml:"steps" json:"steps"`
}

// StepDocument is the on-disk shape of a single step.
type StepDocument struct {
	ID          string         `yaml:"id" json:"id"`
	Title       string         `yaml:"title" json:"title"`
	Description string         `yaml:"description" json:"description"`
	Required    bool           `yaml:"required" json:"required"`
	Rules       []RuleDocument `yaml:"rules" json:"rules"`
}

// RuleDocument is the on-disk shape of a validation rule. Tag is a
// go-playground/validator expression, e.g. "required,email".
type RuleDocument struct {
	Field   string `yaml:"field" json:"field"`
	Tag     string `yaml:"tag" json:"tag"`
	Message string `yaml:"message" json:"message"`
}

// Load reads a wizard definition document from r and compiles it.
func Load(r io.Reader, format Format) (api.WizardDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return api.WizardDefinition{}, fmt.Errorf("read definition: %w", err)
	}

	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return api.WizardDefinition{}, fmt.Errorf("parse yaml definition: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return api.WizardDefinition{}, fmt.Errorf("parse json definition: %w", err)
		}
	default:
		return api.WizardDefinition{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return Compile(doc)
}

// LoadFile reads a wizard definition from path, picking the Format from
// the file extension (.yaml/.yml or .json).
func LoadFile(path string) (api.WizardDefinition, error) {
	format, err := formatFromExtension(path)
	if err != nil {
		return api.WizardDefinition{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return api.WizardDefinition{}, fmt.Errorf("open definition file: %w", err)
	}
	defer f.Close()

	def, err := Load(f, format)
	if err != nil {
		return api.WizardDefinition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func formatFromExtension(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Compile validates a parsed Document and turns it into a runnable
// WizardDefinition, attaching one rules.Tag validator per declared rule.
// Duplicate step IDs are tolerated, matching the controller's
// first-match-wins lookups.
func Compile(doc Document) (api.WizardDefinition, error) {
	def := api.WizardDefinition{
		Name:  doc.Name,
		Steps: make([]api.Step, 0, len(doc.Steps)),
	}

	for i, sd := range doc.Steps {
		if sd.ID == "" {
			return api.WizardDefinition{}, fmt.Errorf("step %d: id must not be empty", i)
		}

		step := api.Step{
			ID:          sd.ID,
			Title:       sd.Title,
			Description: sd.Description,
			Required:    sd.Required,
		}

		for j, rd := range sd.Rules {
			if rd.Field == "" {
				return api.WizardDefinition{}, fmt.Errorf("step %q: rule %d: field must not be empty", sd.ID, j)
			}
			if rd.Tag == "" {
				return api.WizardDefinition{}, fmt.Errorf("step %q: rule for field %q: tag must not be empty", sd.ID, rd.Field)
			}
			step.Rules = append(step.Rules, api.ValidationRule{
				Field:     rd.Field,
				Validator: rules.Tag(rd.Tag),
				Message:   rd.Message,
			})
		}

		def.Steps = append(def.Steps, step)
	}

	return def, nil
}
