package competition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan is matched by every plan validation failure.
var ErrInvalidPlan = errors.New("invalid competition plan")

// Plan describes a competition paper: an ordered list of timed rounds.
type Plan struct {
	Title  string `json:"title" yaml:"title"`
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`

	// Seed makes the paper reproducible when set.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Audio turns narration on or off for every round. Defaults to on.
	Audio *bool `json:"audio,omitempty" yaml:"audio,omitempty"`

	Rounds []Round `json:"rounds" yaml:"rounds"`
}

// Round is one timed section of a paper.
type Round struct {
	Name     string `json:"name" yaml:"name"`
	Settings `yaml:",inline"`
}

// Issue captures a validation problem with a plan field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates plan validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ErrInvalidPlan.Error()
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

func (err *ValidationError) Unwrap() error { return ErrInvalidPlan }

// LoadPlan reads, parses, normalizes, and validates a plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return ParsePlan(data, filepath.Ext(path))
}

// ParsePlan decodes a plan from YAML, or from JSON when ext is ".json".
// Unknown fields are rejected. The returned plan is normalized and valid.
func ParsePlan(data []byte, ext string) (*Plan, error) {
	var plan Plan
	if strings.EqualFold(ext, ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&plan); err != nil {
			return nil, fmt.Errorf("parse plan: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&plan); err != nil {
			return nil, fmt.Errorf("parse plan: %w", err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); err != io.EOF {
			if err == nil {
				return nil, fmt.Errorf("parse plan: multiple YAML documents are not supported")
			}
			return nil, fmt.Errorf("parse plan: %w", err)
		}
	}

	plan.Normalize()
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Normalize trims names, names unnamed rounds, and fills unset round
// settings from DefaultSettings.
func (p *Plan) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Branch = strings.TrimSpace(p.Branch)

	audio := p.Audio == nil || *p.Audio
	base := DefaultSettings()
	for i := range p.Rounds {
		r := &p.Rounds[i]
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			r.Name = fmt.Sprintf("Round %d", i+1)
		}
		r.Settings = r.Settings.withDefaults(base)
		r.EnableAudio = audio
	}
}

// Validate checks a normalized plan.
func (p *Plan) Validate() error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if p.Title == "" {
		add("title", "is required")
	}
	if len(p.Rounds) == 0 {
		add("rounds", "at least one round is required")
	}

	names := map[string]struct{}{}
	for i, r := range p.Rounds {
		prefix := fmt.Sprintf("rounds[%d]", i)
		if _, dup := names[r.Name]; dup {
			add(prefix+".name", fmt.Sprintf("duplicate name %q", r.Name))
		}
		names[r.Name] = struct{}{}

		if r.QuestionCount < 1 {
			add(prefix+".question_count", "must be at least 1")
		}
		if err := r.Settings.Validate(); err != nil {
			add(prefix, err.Error())
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
