// Package prompts holds the versioned prompt templates as a configuration
// artifact. The instruction text lives in YAML, not in Go code, so templates
// can be revised or overridden without touching the services that render them.
package prompts

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var embeddedTemplates []byte

// Template identifiers used by the services.
const (
	TemplateCandidateGeneration   = "candidate_generation"
	TemplateScreeningQuestions    = "screening_questions"
	TemplateCandidateProfile      = "candidate_profile"
	TemplateFeedbackConsolidation = "feedback_consolidation"
	TemplateRecruiterPersona      = "recruiter_persona"
	TemplateOutreachEmail         = "outreach_email"
)

// Template is one versioned prompt with named variable slots.
type Template struct {
	ID        string   `yaml:"id"`
	Version   string   `yaml:"version"`
	Variables []string `yaml:"variables"`
	Text      string   `yaml:"text"`
}

// Render substitutes the bound variables into the template text. Every
// variable the template declares must be bound; unbound slots would leak
// literal placeholders into a model prompt.
func (t Template) Render(vars map[string]string) (string, error) {
	pairs := make([]string, 0, len(t.Variables)*2)
	for _, name := range t.Variables {
		value, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("template %q: variable %q not bound", t.ID, name)
		}
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(t.Text), nil
}

type registryFile struct {
	Templates []Template `yaml:"templates"`
}

// Registry resolves template IDs to their current version.
type Registry struct {
	templates map[string]Template
}

// Load parses a registry from YAML bytes.
func Load(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}

	templates := make(map[string]Template, len(file.Templates))
	for _, tmpl := range file.Templates {
		if tmpl.ID == "" {
			return nil, fmt.Errorf("prompt template with empty id")
		}
		if _, exists := templates[tmpl.ID]; exists {
			return nil, fmt.Errorf("duplicate prompt template id %q", tmpl.ID)
		}
		templates[tmpl.ID] = tmpl
	}

	return &Registry{templates: templates}, nil
}

// LoadDefault loads the embedded template set, or the file at path when one
// is configured.
func LoadDefault(path string) (*Registry, error) {
	if path == "" {
		return Load(embeddedTemplates)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt templates from %s: %w", path, err)
	}
	return Load(data)
}

// Get returns the template registered under id.
func (r *Registry) Get(id string) (Template, error) {
	tmpl, ok := r.templates[id]
	if !ok {
		return Template{}, fmt.Errorf("unknown prompt template %q", id)
	}
	return tmpl, nil
}

// Render resolves and renders in one step.
func (r *Registry) Render(id string, vars map[string]string) (string, error) {
	tmpl, err := r.Get(id)
	if err != nil {
		return "", err
	}
	return tmpl.Render(vars)
}
