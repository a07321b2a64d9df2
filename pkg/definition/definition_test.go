package definition

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const onboardingYAML = `
name: provider-onboarding
steps:
  - id: organization
    title: Organization data
    description: Legal and tax identification
    required: true
    rules:
      - field: name
        tag: required,min=3
        message: Organization name is required
      - field: email
        tag: required,email
        message: A valid contact email is required
  - id: review
    title: Review
`

const onboardingJSON = `{
  "name": "provider-onboarding",
  "steps": [
    {
      "id": "organization",
      "title": "Organization data",
      "required": true,
      "rules": [
        {"field": "name", "tag": "required,min=3", "message": "Organization name is required"}
      ]
    },
    {"id": "review", "title": "Review"}
  ]
}`

func TestLoadYAML(t *testing.T) {
	def, err := Load(strings.NewReader(onboardingYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if def.Name != "provider-onboarding" {
		t.Fatalf("unexpected name: %q", def.Name)
	}
	if len(def.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(def.Steps))
	}

	org := def.Steps[0]
	if org.ID != "organization" || !org.Required {
		t.Fatalf("unexpected first step: %+v", org)
	}
	if org.Description != "Legal and tax identification" {
		t.Fatalf("unexpected description: %q", org.Description)
	}
	if len(org.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(org.Rules))
	}
	if def.Steps[1].Required {
		t.Fatalf("review step must be optional")
	}
}

func TestLoadJSON(t *testing.T) {
	def, err := Load(strings.NewReader(onboardingJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(def.Steps) != 2 || def.Steps[0].ID != "organization" {
		t.Fatalf("unexpected definition: %+v", def)
	}
}

func TestLoadedRulesValidate(t *testing.T) {
	def, err := Load(strings.NewReader(onboardingYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rule := def.Steps[0].Rules[0] // required,min=3
	if ok, _ := rule.Validator("ab", nil); ok {
		t.Fatalf("expected short name rejected by compiled tag rule")
	}
	if ok, _ := rule.Validator("Clinica Andina", nil); !ok {
		t.Fatalf("expected valid name accepted by compiled tag rule")
	}
	if rule.Message != "Organization name is required" {
		t.Fatalf("unexpected message: %q", rule.Message)
	}
}

func TestLoadFilePicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "wizard.yaml")
	if err := os.WriteFile(yamlPath, []byte(onboardingYAML), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	jsonPath := filepath.Join(dir, "wizard.json")
	if err := os.WriteFile(jsonPath, []byte(onboardingJSON), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	for _, path := range []string{yamlPath, jsonPath} {
		def, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) failed: %v", path, err)
		}
		if def.Name != "provider-onboarding" {
			t.Fatalf("LoadFile(%s): unexpected name %q", path, def.Name)
		}
	}

	txtPath := filepath.Join(dir, "wizard.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := LoadFile(txtPath); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestLoadRejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		format Format
	}{
		{"broken yaml", "steps: [", FormatYAML},
		{"broken json", "{", FormatJSON},
		{"missing step id", "steps:\n  - title: No id\n", FormatYAML},
		{"rule without field", "steps:\n  - id: s\n    rules:\n      - tag: required\n", FormatYAML},
		{"rule without tag", "steps:\n  - id: s\n    rules:\n      - field: name\n", FormatYAML},
	}

	for _, tc := range cases {
		if _, err := Load(strings.NewReader(tc.doc), tc.format); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	if _, err := Load(strings.NewReader("{}"), Format("toml")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestCompileToleratesDuplicateIDs(t *testing.T) {
	doc := Document{
		Name: "dupes",
		Steps: []StepDocument{
			{ID: "step", Title: "first"},
			{ID: "step", Title: "second"},
		},
	}
	def, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(def.Steps) != 2 {
		t.Fatalf("expected both steps kept, got %d", len(def.Steps))
	}
}
